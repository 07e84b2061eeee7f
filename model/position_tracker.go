package model

import (
	"context"
	"errors"
	"io"
)

var errReadOnlyTransport = errors.New("page header transport is read-only")

// positionTracker is a read-only thrift transport over the file handle that
// counts consumed bytes, so the size of a decoded page header is known
type positionTracker struct {
	r   io.Reader
	pos int64
}

func (p *positionTracker) Read(buf []byte) (int, error) {
	n, err := p.r.Read(buf)
	p.pos += int64(n)
	return n, err
}

func (p *positionTracker) Write([]byte) (int, error) {
	return 0, errReadOnlyTransport
}

func (p *positionTracker) Close() error { return nil }

func (p *positionTracker) Flush(context.Context) error { return nil }

// RemainingBytes is unknown for a file-backed stream
func (p *positionTracker) RemainingBytes() uint64 {
	return ^uint64(0)
}

func (p *positionTracker) Open() error { return nil }

func (p *positionTracker) IsOpen() bool { return true }
