package probe

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/hangxie/parquet-probe/model"
)

// Options is the startup configuration shared by every document
type Options struct {
	RowGroup int
	Column   int
	Basis    model.SizeBasis
	Logger   *slog.Logger
}

// Session owns the opened documents, the focused one and the scale used to
// size page rows comparably across documents
type Session struct {
	documents []*Document
	focused   int
	scale     int64
	basis     model.SizeBasis
	logger    *slog.Logger
}

// NewSession opens every path, positions all documents at the same row group
// and column and loads their pages. Nothing is kept open on failure.
func NewSession(paths []string, open Opener, opts Options) (*Session, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrStartup, ErrNoDocuments)
	}
	if len(paths) > MaxDocuments {
		return nil, fmt.Errorf("%w: %w: %d given, at most %d supported",
			ErrStartup, ErrTooManyDocuments, len(paths), MaxDocuments)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Session{
		documents: make([]*Document, 0, len(paths)),
		basis:     opts.Basis,
		logger:    logger,
	}
	for _, path := range paths {
		source, err := open(path)
		if err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("%w: %w", ErrStartup, err)
		}
		doc := NewDocument(path, source, opts.RowGroup, opts.Column, opts.Basis)
		s.documents = append(s.documents, doc)

		if err := doc.Refresh(); err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("%w: %w", ErrStartup, err)
		}
		logger.Info("document opened", "path", path, "row_group", doc.RowGroup(),
			"column", doc.Column(), "pages", len(doc.Pages()))
	}
	s.RecomputeScale()

	return s, nil
}

func (s *Session) Documents() []*Document { return s.documents }
func (s *Session) Focused() int           { return s.focused }
func (s *Session) Basis() model.SizeBasis { return s.basis }

// FocusedDocument returns the document receiving navigation commands
func (s *Session) FocusedDocument() *Document {
	return s.documents[s.focused]
}

// Scale is the largest total page size over all documents; 1 when no
// document has any page
func (s *Session) Scale() int64 {
	return s.scale
}

// Palette returns the theme of the document in slot i
func (s *Session) Palette(i int) Palette {
	return palettes[i%len(palettes)]
}

// CycleFocus moves focus to the next document, wrapping at the end
func (s *Session) CycleFocus() {
	s.focused = (s.focused + 1) % len(s.documents)
}

// RecomputeScale recalculates the scale from the current pages
func (s *Session) RecomputeScale() {
	var largest int64
	for _, doc := range s.documents {
		if total := doc.TotalBytes(); total > largest {
			largest = total
		}
	}
	if largest <= 0 {
		largest = 1
	}
	s.scale = largest
}

// Apply runs a navigation command against the focused document and reports
// whether the selection changed. Errors are recoverable: the document keeps
// its previous selection and pages.
func (s *Session) Apply(cmd Command) (bool, error) {
	doc := s.FocusedDocument()

	if cmd == CmdNextDocument {
		s.CycleFocus()
		s.logger.Debug("focus changed", "focused", s.focused)
		return true, nil
	}
	if !cmd.IsNavigation() {
		return false, nil
	}

	var (
		moved bool
		err   error
	)
	switch cmd {
	case CmdRowGroupUp:
		moved, err = doc.MoveRowGroup(1)
	case CmdRowGroupDown:
		moved, err = doc.MoveRowGroup(-1)
	case CmdColumnLeft:
		moved, err = doc.MoveColumn(-1)
	case CmdColumnRight:
		moved, err = doc.MoveColumn(1)
	}
	s.RecomputeScale()

	if err != nil {
		s.logger.Warn("navigation rejected", "command", cmd.String(), "path", doc.Path(), "error", err)
		return false, err
	}
	s.logger.Debug("navigation applied", "command", cmd.String(), "path", doc.Path(),
		"moved", moved, "row_group", doc.RowGroup(), "column", doc.Column(), "scale", s.scale)
	return moved, nil
}

// Close releases every page source
func (s *Session) Close() error {
	var errs []error
	for _, doc := range s.documents {
		if err := doc.source.Close(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", doc.path, err))
		}
	}
	return errors.Join(errs...)
}
