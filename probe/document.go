package probe

import (
	"fmt"

	"github.com/hangxie/parquet-probe/model"
)

// PageSource provides the pages of one opened file and the bounds used to
// validate navigation
type PageSource interface {
	Pages(rgIndex, colIndex int) ([]model.Page, error)
	NumRowGroups() int
	NumColumns(rgIndex int) int
	ColumnName(rgIndex, colIndex int) string
	Close() error
}

// Opener opens the page source for a path
type Opener func(path string) (PageSource, error)

// Document is the navigation state of one opened file: the selected row
// group and column and the pages last fetched for them
type Document struct {
	path     string
	source   PageSource
	basis    model.SizeBasis
	rowGroup int
	column   int
	pages    []model.Page
}

// NewDocument creates a document positioned at rowGroup/column. Pages are
// not fetched until Refresh is called.
func NewDocument(path string, source PageSource, rowGroup, column int, basis model.SizeBasis) *Document {
	return &Document{
		path:     path,
		source:   source,
		basis:    basis,
		rowGroup: rowGroup,
		column:   column,
	}
}

func (d *Document) Path() string        { return d.path }
func (d *Document) RowGroup() int       { return d.rowGroup }
func (d *Document) Column() int         { return d.column }
func (d *Document) Pages() []model.Page { return d.pages }

// ColumnName returns the schema path of the selected column
func (d *Document) ColumnName() string {
	return d.source.ColumnName(d.rowGroup, d.column)
}

// PageBytes returns the byte length of a page under the document's size basis
func (d *Document) PageBytes(p model.Page) int64 {
	return p.ByteLength(d.basis)
}

// TotalBytes sums the byte length of the current pages
func (d *Document) TotalBytes() int64 {
	var total int64
	for _, p := range d.pages {
		total += p.ByteLength(d.basis)
	}
	return total
}

// Refresh re-reads the pages of the current selection. On failure the
// previous pages are kept.
func (d *Document) Refresh() error {
	return d.load(d.rowGroup, d.column)
}

// MoveRowGroup moves the selected row group by delta. A target outside the
// file's row groups, or one without the selected column, is ignored and
// reported as not moved.
func (d *Document) MoveRowGroup(delta int) (bool, error) {
	target := d.rowGroup + delta
	if target < 0 || target >= d.source.NumRowGroups() {
		return false, nil
	}
	if d.column >= d.source.NumColumns(target) {
		return false, nil
	}
	if err := d.load(target, d.column); err != nil {
		return false, err
	}
	return true, nil
}

// MoveColumn moves the selected column by delta within the current row group
func (d *Document) MoveColumn(delta int) (bool, error) {
	target := d.column + delta
	if target < 0 || target >= d.source.NumColumns(d.rowGroup) {
		return false, nil
	}
	if err := d.load(d.rowGroup, target); err != nil {
		return false, err
	}
	return true, nil
}

// load fetches pages for rgIndex/colIndex and commits indices and pages
// together only when the fetch succeeds
func (d *Document) load(rgIndex, colIndex int) error {
	pages, err := d.source.Pages(rgIndex, colIndex)
	if err != nil {
		return fmt.Errorf("%s: row group %d column %d: %w", d.path, rgIndex, colIndex, err)
	}
	d.rowGroup = rgIndex
	d.column = colIndex
	d.pages = pages
	return nil
}
