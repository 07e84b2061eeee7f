package probe

import (
	"errors"
	"fmt"

	"github.com/hangxie/parquet-probe/model"
)

var errFakeRead = errors.New("fake read failure")

// fakeSource serves pages of fixed uncompressed sizes keyed by row group and column
type fakeSource struct {
	columns  []int
	sizes    map[[2]int][]int32
	failures map[[2]int]bool
	calls    int
	closed   bool
}

func newFakeSource(numRowGroups, numColumns int) *fakeSource {
	columns := make([]int, numRowGroups)
	for i := range columns {
		columns[i] = numColumns
	}
	return &fakeSource{
		columns:  columns,
		sizes:    map[[2]int][]int32{},
		failures: map[[2]int]bool{},
	}
}

func (f *fakeSource) with(rg, col int, sizes ...int32) *fakeSource {
	f.sizes[[2]int{rg, col}] = sizes
	return f
}

func (f *fakeSource) failing(rg, col int) *fakeSource {
	f.failures[[2]int{rg, col}] = true
	return f
}

func (f *fakeSource) Pages(rg, col int) ([]model.Page, error) {
	f.calls++
	if rg < 0 || rg >= len(f.columns) {
		return nil, model.ErrInvalidRowGroupIndex
	}
	if col < 0 || col >= f.columns[rg] {
		return nil, model.ErrInvalidColumnIndex
	}
	if f.failures[[2]int{rg, col}] {
		return nil, errFakeRead
	}
	var pages []model.Page
	for i, size := range f.sizes[[2]int{rg, col}] {
		page := model.NewDataPage(int64(i)*1000, size/2, size)
		page.NumValues = size
		pages = append(pages, page)
	}
	return pages, nil
}

func (f *fakeSource) NumRowGroups() int { return len(f.columns) }

func (f *fakeSource) NumColumns(rg int) int {
	if rg < 0 || rg >= len(f.columns) {
		return 0
	}
	return f.columns[rg]
}

func (f *fakeSource) ColumnName(rg, col int) string {
	return fmt.Sprintf("col_%d", col)
}

func (f *fakeSource) Close() error {
	f.closed = true
	return nil
}

// openerFor returns an Opener serving the given sources by path
func openerFor(sources map[string]*fakeSource) Opener {
	return func(path string) (PageSource, error) {
		src, ok := sources[path]
		if !ok {
			return nil, fmt.Errorf("%s: %w", path, model.ErrOpenFile)
		}
		return src, nil
	}
}
