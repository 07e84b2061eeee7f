package cmd

import (
	"fmt"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/hangxie/parquet-probe/probe"
)

const keysHelp = "q/ESC=quit, ↑↓=row group, ←→=column, Tab=next file, y=copy pages"

// ProbeApp is the interactive loop: it owns the session, routes key presses
// to it and redraws the comparison view
type ProbeApp struct {
	tviewApp  *tview.Application
	view      *probeView
	session   *probe.Session
	logger    *slog.Logger
	status    string
	statusErr bool
	// stop ends the tview loop; tests replace it since tview.Application
	// cannot report whether it was stopped
	stop     func()
	copyText func(string) error
}

// NewProbeApp creates a ProbeApp for an opened session
func NewProbeApp(session *probe.Session, logger *slog.Logger) *ProbeApp {
	app := &ProbeApp{
		tviewApp: tview.NewApplication(),
		session:  session,
		logger:   logger,
		copyText: clipboard.WriteAll,
	}
	app.stop = app.tviewApp.Stop
	app.view = newProbeView(app)
	app.tviewApp.SetRoot(app.view, true)
	app.tviewApp.SetInputCapture(app.handleKey)
	return app
}

// Run blocks until the user quits
func (app *ProbeApp) Run() error {
	return app.tviewApp.Run()
}

// handleKey applies the command bound to the key. Every key, bound or not,
// is consumed so tview redraws the view.
func (app *ProbeApp) handleKey(event *tcell.EventKey) *tcell.EventKey {
	cmd := commandForKey(event)

	switch cmd {
	case probe.CmdQuit:
		app.logger.Debug("quit")
		app.stop()
	case probe.CmdCopy:
		app.copyFocused()
	case probe.CmdNone:
	default:
		if _, err := app.session.Apply(cmd); err != nil {
			app.setError(err)
		} else {
			app.setStatus("")
		}
	}
	return nil
}

// copyFocused puts the focused document's page summary on the clipboard
func (app *ProbeApp) copyFocused() {
	focused := app.session.Focused()
	doc := app.session.FocusedDocument()
	if err := app.copyText(probe.Summary(focused, doc)); err != nil {
		app.setError(fmt.Errorf("failed to copy to clipboard: %w", err))
		return
	}
	app.setStatus(fmt.Sprintf("Copied %d pages of file %s", len(doc.Pages()), probe.Label(focused)))
}

func (app *ProbeApp) setStatus(msg string) {
	app.status = msg
	app.statusErr = false
}

func (app *ProbeApp) setError(err error) {
	app.logger.Warn("command failed", "error", err)
	app.status = err.Error()
	app.statusErr = true
}

// statusText is the text of the status line
func (app *ProbeApp) statusText() string {
	if app.status == "" {
		return " Keys: " + keysHelp
	}
	return " " + app.status
}
