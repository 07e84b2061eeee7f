package cmd

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"

	"github.com/hangxie/parquet-probe/probe"
)

// newTestApp returns an app with the clipboard stubbed out and a counter of
// stop calls
func newTestApp(t *testing.T, session *probe.Session) (*ProbeApp, *int) {
	t.Helper()
	app := NewProbeApp(session, slog.New(slog.NewTextHandler(io.Discard, nil)))
	app.copyText = func(string) error { return nil }
	stops := 0
	app.stop = func() { stops++ }
	return app, &stops
}

func keyEvent(key tcell.Key, r rune) *tcell.EventKey {
	return tcell.NewEventKey(key, r, tcell.ModNone)
}

// renderToScreen draws the app view on a simulation screen of the given size
func renderToScreen(t *testing.T, app *ProbeApp, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(width, height)

	app.view.SetRect(0, 0, width, height)
	app.view.Draw(screen)
	return screen
}

func screenLine(screen tcell.Screen, y, width int) string {
	var sb strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func screenText(screen tcell.Screen, width, height int) string {
	lines := make([]string, height)
	for y := range lines {
		lines[y] = screenLine(screen, y, width)
	}
	return strings.Join(lines, "\n")
}

func Test_ProbeApp_handleKey_Navigation(t *testing.T) {
	files := map[string]*fakeSource{
		"a.parquet": {rowGroups: [][]int32{{100}, {300, 100}}},
		"b.parquet": {rowGroups: [][]int32{{200}}},
	}
	session := newTestSession(t, files, "a.parquet", "b.parquet")
	app, stops := newTestApp(t, session)
	require.Equal(t, int64(200), session.Scale())

	require.Nil(t, app.handleKey(keyEvent(tcell.KeyUp, 0)))
	require.Equal(t, 1, session.Documents()[0].RowGroup())
	require.Equal(t, int64(400), session.Scale())

	require.Nil(t, app.handleKey(keyEvent(tcell.KeyTab, 0)))
	require.Equal(t, 1, session.Focused())

	require.Nil(t, app.handleKey(keyEvent(tcell.KeyUp, 0)))
	require.Equal(t, 0, session.Documents()[1].RowGroup())
	require.False(t, app.statusErr)

	require.Nil(t, app.handleKey(keyEvent(tcell.KeyRune, 'x')))
	require.Zero(t, *stops)
}

func Test_ProbeApp_handleKey_RecoverableError(t *testing.T) {
	files := map[string]*fakeSource{
		"a.parquet": {rowGroups: [][]int32{{100}, {50}}, failing: map[int]bool{1: true}},
	}
	session := newTestSession(t, files, "a.parquet")
	app, stops := newTestApp(t, session)

	app.handleKey(keyEvent(tcell.KeyUp, 0))
	require.True(t, app.statusErr)
	require.Contains(t, app.statusText(), "fake read failure")
	require.Equal(t, 0, session.FocusedDocument().RowGroup())
	require.Zero(t, *stops)

	app.handleKey(keyEvent(tcell.KeyDown, 0))
	require.False(t, app.statusErr)
	require.Contains(t, app.statusText(), "Keys:")
}

func Test_ProbeApp_handleKey_Quit(t *testing.T) {
	for _, event := range []*tcell.EventKey{keyEvent(tcell.KeyRune, 'q'), keyEvent(tcell.KeyEscape, 0)} {
		session := newTestSession(t, map[string]*fakeSource{"a": {rowGroups: [][]int32{{1}}}}, "a")
		app, stops := newTestApp(t, session)
		require.Nil(t, app.handleKey(event))
		require.Equal(t, 1, *stops)
	}
}

func Test_ProbeApp_handleKey_Copy(t *testing.T) {
	session := newTestSession(t, map[string]*fakeSource{"a.parquet": {rowGroups: [][]int32{{10, 20}}}}, "a.parquet")
	app, _ := newTestApp(t, session)

	var copied string
	app.copyText = func(text string) error {
		copied = text
		return nil
	}
	app.handleKey(keyEvent(tcell.KeyRune, 'y'))
	require.Contains(t, copied, "#0 10b DataPage [PLAIN], values:10, page stats:N/A")
	require.Contains(t, copied, "#1 20b")
	require.Equal(t, " Copied 2 pages of file A", app.statusText())

	app.copyText = func(string) error { return errors.New("no clipboard") }
	app.handleKey(keyEvent(tcell.KeyRune, 'y'))
	require.True(t, app.statusErr)
	require.Contains(t, app.statusText(), "no clipboard")
}

func Test_probeView_Draw(t *testing.T) {
	files := map[string]*fakeSource{
		"a.parquet": {rowGroups: [][]int32{{100, 50, 50}}},
	}
	session := newTestSession(t, files, "a.parquet")
	app, _ := newTestApp(t, session)

	screen := renderToScreen(t, app, 80, 47)
	text := screenText(screen, 80, 47)

	require.Contains(t, screenLine(screen, 0, 80), appTitle)
	require.Contains(t, screenLine(screen, 1, 80), "File A: a.parquet (200 B)")
	require.Contains(t, screenLine(screen, 4, 80), "File:A Row Group: 0 Column: 0 (id) Pages:3")
	require.Contains(t, screenLine(screen, 46, 80), "Keys:")

	// panel inner area starts at row 5, rows are 20, 10 and 10 cells high
	require.True(t, strings.HasPrefix(screenLine(screen, 5, 80), "│#0 100b"))
	require.Contains(t, screenLine(screen, 25, 80), "#1 50b")
	require.Contains(t, screenLine(screen, 35, 80), "#2 50b")
	require.Contains(t, text, "DataPage [PLAIN], values:100")

	_, _, style, _ := screen.GetContent(1, 5)
	_, bg, _ := style.Decompose()
	require.Equal(t, session.Palette(0).C950, bg)
	_, _, style, _ = screen.GetContent(1, 25)
	_, bg, _ = style.Decompose()
	require.Equal(t, session.Palette(0).C800, bg)
}

func Test_probeView_Draw_ErrorStatus(t *testing.T) {
	files := map[string]*fakeSource{
		"a.parquet": {rowGroups: [][]int32{{100}, {1}}, failing: map[int]bool{1: true}},
	}
	session := newTestSession(t, files, "a.parquet")
	app, _ := newTestApp(t, session)
	app.handleKey(keyEvent(tcell.KeyUp, 0))

	screen := renderToScreen(t, app, 60, 20)
	status := screenLine(screen, 19, 60)
	require.Contains(t, status, "fake read failure")

	r, _, style, _ := screen.GetContent(1, 19)
	fg, _, _ := style.Decompose()
	require.NotEqual(t, ' ', r)
	require.Equal(t, tcell.ColorRed, fg)
}

func Test_probeView_Draw_TinyScreen(t *testing.T) {
	files := map[string]*fakeSource{
		"a": {rowGroups: [][]int32{{100, 50}}},
		"b": {rowGroups: [][]int32{{10}}},
	}
	session := newTestSession(t, files, "a", "b")
	app, _ := newTestApp(t, session)

	require.NotPanics(t, func() {
		renderToScreen(t, app, 4, 3)
		renderToScreen(t, app, 1, 1)
	})
}

func Test_probeView_Draw_FocusedTitle(t *testing.T) {
	files := map[string]*fakeSource{
		"a": {rowGroups: [][]int32{{10}}},
		"b": {rowGroups: [][]int32{{10}}},
	}
	session := newTestSession(t, files, "a", "b")
	app, _ := newTestApp(t, session)
	app.handleKey(keyEvent(tcell.KeyTab, 0))

	// two header lines plus border, then the spacing row
	screen := renderToScreen(t, app, 80, 20)
	titleBackground := func(title string) tcell.Color {
		runes := []rune(screenLine(screen, 5, 80))
		for x := range runes {
			if strings.HasPrefix(string(runes[x:]), title) {
				_, _, style, _ := screen.GetContent(x, 5)
				_, bg, _ := style.Decompose()
				return bg
			}
		}
		require.Failf(t, "title not drawn", "%q", title)
		return tcell.ColorDefault
	}

	require.Equal(t, session.Palette(1).C900, titleBackground("File:B"))
	require.NotEqual(t, session.Palette(0).C900, titleBackground("File:A"))
}
