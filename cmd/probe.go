package cmd

import (
	"fmt"

	"github.com/hangxie/parquet-probe/model"
	"github.com/hangxie/parquet-probe/probe"

	pio "github.com/hangxie/parquet-tools/io"
)

// ProbeCmd is a kong command for probe
type ProbeCmd struct {
	URIs     []string `arg:"" name:"uri" predictor:"file" help:"URI of Parquet file, up to five files are shown side by side."`
	RowGroup int      `name:"row-group" short:"r" default:"0" help:"Row group to examine in every file."`
	Column   int      `name:"column" short:"c" default:"0" help:"Column to examine in every file."`
	Size     string   `name:"size" enum:"uncompressed,compressed" default:"uncompressed" help:"Page size used to scale the layout (${enum})."`
	LogFile  string   `name:"log-file" type:"path" help:"Write a debug log to this file."`
	pio.ReadOption
}

// Validate checks the command line before any file is opened
func (p ProbeCmd) Validate() error {
	if len(p.URIs) == 0 {
		return ErrNoURI
	}
	if len(p.URIs) > probe.MaxDocuments {
		return fmt.Errorf("%d files given, at most %d supported: %w", len(p.URIs), probe.MaxDocuments, ErrTooManyURIs)
	}
	if p.RowGroup < 0 {
		return fmt.Errorf("row group %d: %w", p.RowGroup, ErrNegativeIndex)
	}
	if p.Column < 0 {
		return fmt.Errorf("column %d: %w", p.Column, ErrNegativeIndex)
	}
	return nil
}

// opener opens every URI with the command's read options
func (p ProbeCmd) opener() probe.Opener {
	return func(uri string) (probe.PageSource, error) {
		f, err := model.Open(uri, p.ReadOption)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
}

// Run opens all files, then runs the interactive probe until the user quits
func (p ProbeCmd) Run() error {
	if err := p.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(p.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	session, err := probe.NewSession(p.URIs, p.opener(), probe.Options{
		RowGroup: p.RowGroup,
		Column:   p.Column,
		Basis:    model.ParseSizeBasis(p.Size),
		Logger:   logger,
	})
	if err != nil {
		logger.Error("startup failed", "error", err)
		return err
	}
	defer func() { _ = session.Close() }()

	app := NewProbeApp(session, logger)
	return app.Run()
}
