package model

import "errors"

var (
	// ErrOpenFile is returned when a Parquet URI cannot be opened
	ErrOpenFile = errors.New("cannot open parquet file")

	// ErrInvalidFooter is returned when the file has no usable footer metadata
	ErrInvalidFooter = errors.New("invalid parquet footer")

	// ErrInvalidRowGroupIndex is returned when an invalid row group index is requested
	ErrInvalidRowGroupIndex = errors.New("invalid row group index")

	// ErrInvalidColumnIndex is returned when an invalid column index is requested
	ErrInvalidColumnIndex = errors.New("invalid column index")

	// ErrReadPage is returned when a page header in a column chunk cannot be decoded
	ErrReadPage = errors.New("cannot read page header")
)
