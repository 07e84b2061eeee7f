package cmd

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/hangxie/parquet-probe/probe"
)

const appTitle = "parquet-probe"

// probeView draws the session: file header, one panel per file with page
// rows sized by probe.Layout, and the status line. Child primitives are
// rebuilt on every draw and placed on the layout rectangles.
type probeView struct {
	*tview.Box
	app *ProbeApp
}

func newProbeView(app *ProbeApp) *probeView {
	return &probeView{
		Box: tview.NewBox(),
		app: app,
	}
}

// Draw implements tview.Primitive
func (v *probeView) Draw(screen tcell.Screen) {
	v.Box.DrawForSubclass(screen, v)
	x, y, width, height := v.GetInnerRect()

	session := v.app.session
	g := probe.Layout(probe.Rect{X: x, Y: y, Width: width, Height: height}, session)

	v.drawHeader(screen, g)
	for i, panel := range g.Panels {
		v.drawPanel(screen, i, panel)
	}
	v.drawStatus(screen, g.Status)
}

func (v *probeView) drawHeader(screen tcell.Screen, g probe.Geometry) {
	frame := tview.NewBox().
		SetBorder(true).
		SetBorderColor(tcell.ColorWhite).
		SetTitle("[::b]" + appTitle).
		SetTitleColor(tcell.ColorWhite).
		SetBackgroundColor(tcell.ColorBlack)
	place(screen, frame, g.Header)

	session := v.app.session
	inner := g.HeaderInner
	for i, doc := range session.Documents() {
		if i >= inner.Height {
			break
		}
		palette := session.Palette(i)
		line := newTextView(probe.HeaderLine(i, doc), palette.C100, palette.C900).SetWrap(false)
		place(screen, line, probe.Rect{X: inner.X, Y: inner.Y + i, Width: inner.Width, Height: 1})
	}
}

func (v *probeView) drawPanel(screen tcell.Screen, i int, panel probe.PanelGeometry) {
	session := v.app.session
	doc := session.Documents()[i]
	palette := session.Palette(i)

	title := tview.Escape(probe.PanelTitle(i, doc))
	if i == session.Focused() {
		title = fmt.Sprintf("[:#%06x:b]%s", palette.C900.Hex(), title)
	}
	frame := tview.NewBox().
		SetBorder(true).
		SetBorderColor(palette.C100).
		SetTitle(title).
		SetTitleColor(palette.C100)
	place(screen, frame, panel.Outer)

	labelBackgrounds := []tcell.Color{palette.C950, palette.C800}
	pages := doc.Pages()
	for _, row := range panel.Rows {
		if row.Area.Height == 0 {
			continue
		}
		page := pages[row.Page]

		label := newTextView(probe.PageLabel(row.Page, doc.PageBytes(page)),
			palette.C100, labelBackgrounds[row.Page%len(labelBackgrounds)])
		place(screen, label, row.Label)

		content := newTextView(probe.PageText(page), palette.C100, tview.Styles.PrimitiveBackgroundColor)
		place(screen, content, row.Content)
	}
}

func (v *probeView) drawStatus(screen tcell.Screen, area probe.Rect) {
	if area.Height == 0 {
		return
	}
	fg := tcell.ColorGray
	if v.app.statusErr {
		fg = tcell.ColorRed
	}
	status := newTextView(v.app.statusText(), fg, tview.Styles.PrimitiveBackgroundColor).SetWrap(false)
	place(screen, status, area)
}

// newTextView is a word-wrapping text view filled with bg. Dynamic colors
// stay off so page text such as "[PLAIN]" is printed as is.
func newTextView(text string, fg, bg tcell.Color) *tview.TextView {
	view := tview.NewTextView().
		SetWrap(true).
		SetWordWrap(true).
		SetTextStyle(tcell.StyleDefault.Foreground(fg).Background(bg)).
		SetText(text)
	view.SetBackgroundColor(bg)
	return view
}

// place draws p on area, skipping areas without cells
func place(screen tcell.Screen, p tview.Primitive, area probe.Rect) {
	if area.Width <= 0 || area.Height <= 0 {
		return
	}
	p.SetRect(area.X, area.Y, area.Width, area.Height)
	p.Draw(screen)
}
