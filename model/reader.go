package model

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/apache/thrift/lib/go/thrift"
	"github.com/hangxie/parquet-go/v2/parquet"

	pio "github.com/hangxie/parquet-tools/io"
)

// maxPagesPerChunk caps the number of headers read from one column chunk
const maxPagesPerChunk = 10000

// File is an opened Parquet file: the footer plus a seekable handle used to
// walk page headers. It is the page source of one inspected document.
type File struct {
	uri    string
	footer *parquet.FileMetaData
	pFile  io.ReadSeeker
	closer io.Closer
}

// Open opens a local or remote Parquet URI and reads its footer
func Open(uri string, opt pio.ReadOption) (*File, error) {
	pr, err := pio.NewParquetFileReader(uri, opt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", uri, ErrOpenFile, err)
	}
	if pr.Footer == nil {
		_ = pr.PFile.Close()
		return nil, fmt.Errorf("%s: %w", uri, ErrInvalidFooter)
	}

	return &File{
		uri:    uri,
		footer: pr.Footer,
		pFile:  pr.PFile,
		closer: pr.PFile,
	}, nil
}

// Close releases the underlying handle
func (f *File) Close() error {
	if f == nil || f.closer == nil {
		return nil
	}
	return f.closer.Close()
}

// NumRowGroups returns the number of row groups in the footer
func (f *File) NumRowGroups() int {
	if f == nil || f.footer == nil {
		return 0
	}
	return len(f.footer.RowGroups)
}

// NumColumns returns the number of column chunks in a row group, 0 when the
// row group does not exist
func (f *File) NumColumns(rgIndex int) int {
	if rgIndex < 0 || rgIndex >= f.NumRowGroups() {
		return 0
	}
	return len(f.footer.RowGroups[rgIndex].Columns)
}

// ColumnName returns the dotted schema path of a column chunk
func (f *File) ColumnName(rgIndex, colIndex int) string {
	meta, err := f.columnMeta(rgIndex, colIndex)
	if err != nil {
		return ""
	}
	return strings.Join(meta.PathInSchema, ".")
}

func (f *File) columnMeta(rgIndex, colIndex int) (*parquet.ColumnMetaData, error) {
	numRowGroups := f.NumRowGroups()
	if rgIndex < 0 || rgIndex >= numRowGroups {
		return nil, fmt.Errorf("row group index %d out of range [0, %d): %w",
			rgIndex, numRowGroups, ErrInvalidRowGroupIndex)
	}

	numColumns := f.NumColumns(rgIndex)
	if colIndex < 0 || colIndex >= numColumns {
		return nil, fmt.Errorf("column index %d out of range [0, %d): %w",
			colIndex, numColumns, ErrInvalidColumnIndex)
	}

	meta := f.footer.RowGroups[rgIndex].Columns[colIndex].MetaData
	if meta == nil {
		return nil, fmt.Errorf("column %d in row group %d has no metadata: %w",
			colIndex, rgIndex, ErrInvalidColumnIndex)
	}
	return meta, nil
}

// Pages reads every page header of a column chunk and returns the pages in
// file order. Index pages are skipped. The returned slice is complete or
// nil together with an error.
func (f *File) Pages(rgIndex, colIndex int) ([]Page, error) {
	meta, err := f.columnMeta(rgIndex, colIndex)
	if err != nil {
		return nil, err
	}

	startOffset := startOffset(meta)
	endOffset := startOffset + meta.TotalCompressedSize

	var pages []Page
	currentOffset := startOffset
	totalValuesRead := int64(0)
	headersRead := 0

	for totalValuesRead < meta.NumValues && currentOffset < endOffset && headersRead < maxPagesPerChunk {
		pageHeader, headerSize, err := readPageHeader(f.pFile, currentOffset)
		if err != nil {
			return nil, fmt.Errorf("%s row group %d column %d offset %d (%d of %d values read): %w: %w",
				f.uri, rgIndex, colIndex, currentOffset, totalValuesRead, meta.NumValues, ErrReadPage, err)
		}
		headersRead++

		page, numValues := toPage(pageHeader, currentOffset)
		if page != nil {
			pages = append(pages, page)
		}
		totalValuesRead += numValues

		nextOffset := currentOffset + headerSize + int64(pageHeader.CompressedPageSize)
		if nextOffset <= currentOffset {
			break
		}
		currentOffset = nextOffset
	}

	return pages, nil
}

// startOffset determines where the first page of a column chunk starts
func startOffset(meta *parquet.ColumnMetaData) int64 {
	if meta.DictionaryPageOffset != nil && *meta.DictionaryPageOffset > 0 {
		return *meta.DictionaryPageOffset
	}
	return meta.DataPageOffset
}

// readPageHeader decodes the thrift page header at offset and returns it
// together with the encoded header size
func readPageHeader(r io.ReadSeeker, offset int64) (*parquet.PageHeader, int64, error) {
	if _, err := r.Seek(offset, io.SeekStart); err != nil {
		return nil, 0, fmt.Errorf("failed to seek to page: %w", err)
	}

	tracker := &positionTracker{r: r, pos: offset}
	proto := thrift.NewTCompactProtocolConf(tracker, nil)

	pageHeader := parquet.NewPageHeader()
	if err := pageHeader.Read(context.Background(), proto); err != nil {
		return nil, 0, err
	}

	return pageHeader, tracker.pos - offset, nil
}

// toPage converts a decoded header into a Page and reports how many column
// values it accounts for. Index pages yield a nil page.
func toPage(header *parquet.PageHeader, offset int64) (Page, int64) {
	size := pageSize{
		Offset:           offset,
		CompressedSize:   header.CompressedPageSize,
		UncompressedSize: header.UncompressedPageSize,
	}

	switch header.Type {
	case parquet.PageType_DATA_PAGE:
		page := DataPage{pageSize: size}
		if h := header.DataPageHeader; h != nil {
			page.NumValues = h.NumValues
			page.Encoding = h.Encoding.String()
			page.DefLevelEncoding = h.DefinitionLevelEncoding.String()
			page.RepLevelEncoding = h.RepetitionLevelEncoding.String()
			if h.IsSetStatistics() && h.Statistics != nil {
				page.Statistics = &Statistics{NullCount: h.Statistics.NullCount}
			}
		}
		return page, int64(page.NumValues)
	case parquet.PageType_DATA_PAGE_V2:
		page := DataPageV2{pageSize: size}
		if h := header.DataPageHeaderV2; h != nil {
			page.NumValues = h.NumValues
			page.NumNulls = h.NumNulls
			page.NumRows = h.NumRows
			page.Encoding = h.Encoding.String()
			page.IsCompressed = h.GetIsCompressed()
		}
		return page, int64(page.NumValues)
	case parquet.PageType_DICTIONARY_PAGE:
		page := DictionaryPage{pageSize: size}
		if h := header.DictionaryPageHeader; h != nil {
			page.NumValues = h.NumValues
			page.Encoding = h.Encoding.String()
			page.IsSorted = h.GetIsSorted()
		}
		return page, 0
	}
	return nil, 0
}

var byteUnits = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}

// FormatBytes renders a byte count with a binary unit, e.g. "1.5 KiB"
func FormatBytes(n int64) string {
	value, unit := float64(n), 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%d %s", n, byteUnits[0])
	}
	return fmt.Sprintf("%.1f %s", value, byteUnits[unit])
}
