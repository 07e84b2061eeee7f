package model

// Page is one encoded page of a column chunk. The set of implementations is
// closed: DataPage, DataPageV2 and DictionaryPage.
type Page interface {
	// ByteLength returns the size of the page body for the given basis
	ByteLength(basis SizeBasis) int64

	isPage()
}

// SizeBasis selects which page size is used as the page byte length
type SizeBasis int

const (
	// SizeUncompressed measures the decoded page body
	SizeUncompressed SizeBasis = iota
	// SizeCompressed measures the page body as stored on disk
	SizeCompressed
)

// String implements fmt.Stringer
func (b SizeBasis) String() string {
	if b == SizeCompressed {
		return "compressed"
	}
	return "uncompressed"
}

// ParseSizeBasis converts a flag value to a SizeBasis
func ParseSizeBasis(s string) SizeBasis {
	if s == "compressed" {
		return SizeCompressed
	}
	return SizeUncompressed
}

// Statistics is the subset of page statistics surfaced to the inspector
type Statistics struct {
	NullCount *int64
}

// pageSize holds the fields shared by every page kind
type pageSize struct {
	Offset           int64
	CompressedSize   int32
	UncompressedSize int32
}

func (p pageSize) ByteLength(basis SizeBasis) int64 {
	if basis == SizeCompressed {
		return int64(p.CompressedSize)
	}
	return int64(p.UncompressedSize)
}

// DataPage is a DATA_PAGE (v1)
type DataPage struct {
	pageSize
	Encoding         string
	DefLevelEncoding string
	RepLevelEncoding string
	NumValues        int32
	Statistics       *Statistics
}

// DataPageV2 is a DATA_PAGE_V2
type DataPageV2 struct {
	pageSize
	Encoding     string
	NumValues    int32
	NumNulls     int32
	NumRows      int32
	IsCompressed bool
}

// DictionaryPage is a DICTIONARY_PAGE
type DictionaryPage struct {
	pageSize
	Encoding  string
	NumValues int32
	IsSorted  bool
}

func (DataPage) isPage()       {}
func (DataPageV2) isPage()     {}
func (DictionaryPage) isPage() {}

// NewDataPage builds a DataPage with the given placement and sizes
func NewDataPage(offset int64, compressed, uncompressed int32) DataPage {
	return DataPage{pageSize: pageSize{Offset: offset, CompressedSize: compressed, UncompressedSize: uncompressed}}
}

// NewDataPageV2 builds a DataPageV2 with the given placement and sizes
func NewDataPageV2(offset int64, compressed, uncompressed int32) DataPageV2 {
	return DataPageV2{pageSize: pageSize{Offset: offset, CompressedSize: compressed, UncompressedSize: uncompressed}}
}

// NewDictionaryPage builds a DictionaryPage with the given placement and sizes
func NewDictionaryPage(offset int64, compressed, uncompressed int32) DictionaryPage {
	return DictionaryPage{pageSize: pageSize{Offset: offset, CompressedSize: compressed, UncompressedSize: uncompressed}}
}
