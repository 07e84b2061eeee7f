package probe

import "errors"

var (
	// ErrStartup wraps every failure that prevents a session from starting
	ErrStartup = errors.New("cannot start session")

	// ErrNoDocuments is returned when a session is created without paths
	ErrNoDocuments = errors.New("at least one file is required")

	// ErrTooManyDocuments is returned when more files are given than palettes exist
	ErrTooManyDocuments = errors.New("too many files")
)
