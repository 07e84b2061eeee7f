package cmd

import "errors"

var (
	// ErrNoURI is returned when no file is given on the command line
	ErrNoURI = errors.New("at least one parquet file is required")

	// ErrTooManyURIs is returned when more files are given than can be shown
	ErrTooManyURIs = errors.New("too many parquet files")

	// ErrNegativeIndex is returned when an initial row group or column is negative
	ErrNegativeIndex = errors.New("index must not be negative")
)
