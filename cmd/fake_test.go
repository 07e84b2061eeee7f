package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hangxie/parquet-probe/model"
	"github.com/hangxie/parquet-probe/probe"
)

var errFakeRead = errors.New("fake read failure")

// fakeSource is a single-column file whose row groups hold data pages of
// the given sizes
type fakeSource struct {
	rowGroups [][]int32
	failing   map[int]bool
}

func (f *fakeSource) Pages(rg, col int) ([]model.Page, error) {
	if rg < 0 || rg >= len(f.rowGroups) {
		return nil, model.ErrInvalidRowGroupIndex
	}
	if col != 0 {
		return nil, model.ErrInvalidColumnIndex
	}
	if f.failing[rg] {
		return nil, errFakeRead
	}
	var pages []model.Page
	for i, size := range f.rowGroups[rg] {
		page := model.NewDataPage(int64(i), size, size)
		page.Encoding = "PLAIN"
		page.NumValues = size
		pages = append(pages, page)
	}
	return pages, nil
}

func (f *fakeSource) NumRowGroups() int             { return len(f.rowGroups) }
func (f *fakeSource) NumColumns(rg int) int         { return 1 }
func (f *fakeSource) ColumnName(rg, col int) string { return "id" }
func (f *fakeSource) Close() error                  { return nil }

func newTestSession(t *testing.T, files map[string]*fakeSource, paths ...string) *probe.Session {
	t.Helper()
	session, err := probe.NewSession(paths, func(path string) (probe.PageSource, error) {
		return files[path], nil
	}, probe.Options{})
	require.NoError(t, err)
	return session
}
