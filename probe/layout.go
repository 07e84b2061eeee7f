package probe

// Rect is a rectangle of terminal cells
type Rect struct {
	X, Y, Width, Height int
}

// Inset shrinks the rectangle by n cells on every side
func (r Rect) Inset(n int) Rect {
	w, h := r.Width-2*n, r.Height-2*n
	if w < 0 || h < 0 {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{X: r.X + n, Y: r.Y + n, Width: w, Height: h}
}

// Contains reports whether o lies entirely inside r
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y &&
		o.X+o.Width <= r.X+r.Width && o.Y+o.Height <= r.Y+r.Height
}

// Geometry is the partition of the screen computed by Layout
type Geometry struct {
	Header      Rect
	HeaderInner Rect
	Body        Rect
	Status      Rect
	Panels      []PanelGeometry
}

// PanelGeometry places one document: its bordered panel and one row per page
type PanelGeometry struct {
	Outer Rect
	Inner Rect
	Rows  []RowGeometry
}

// RowGeometry places one page inside a panel
type RowGeometry struct {
	Page    int
	Area    Rect
	Label   Rect
	Content Rect
}

const (
	panelSpacing = 1
	bodySpacing  = 1
	statusHeight = 1
	// labelPercent is the share of a page row used for the page label
	labelPercent = 20
)

// HeaderHeight is the height of the bordered header band listing n files
func HeaderHeight(n int) int {
	return n + 2
}

// Layout partitions area into header, body panels and status line for the
// session. Row heights are proportional to page byte length over the
// session scale, so equal sizes get equal heights in every panel.
func Layout(area Rect, s *Session) Geometry {
	sizes := make([][]int64, len(s.documents))
	for i, doc := range s.documents {
		sizes[i] = make([]int64, len(doc.pages))
		for j, p := range doc.pages {
			sizes[i][j] = doc.PageBytes(p)
		}
	}
	return layout(area, sizes, s.scale)
}

func layout(area Rect, sizes [][]int64, scale int64) Geometry {
	h := max(area.Height, 0)
	headerH := min(HeaderHeight(len(sizes)), h)
	statusH := min(statusHeight, h-headerH)
	gap := min(bodySpacing, h-headerH-statusH)
	bodyH := h - headerH - statusH - gap
	w := max(area.Width, 0)

	g := Geometry{
		Header: Rect{X: area.X, Y: area.Y, Width: w, Height: headerH},
		Body:   Rect{X: area.X, Y: area.Y + headerH + gap, Width: w, Height: bodyH},
		Status: Rect{X: area.X, Y: area.Y + h - statusH, Width: w, Height: statusH},
	}
	g.HeaderInner = g.Header.Inset(1)

	for i, outer := range splitColumns(g.Body, len(sizes)) {
		inner := outer.Inset(1)
		g.Panels = append(g.Panels, PanelGeometry{
			Outer: outer,
			Inner: inner,
			Rows:  splitRows(inner, sizes[i], scale),
		})
	}
	return g
}

// splitColumns divides area into n equal-width columns separated by
// panelSpacing; leftover cells go to the leftmost columns
func splitColumns(area Rect, n int) []Rect {
	if n <= 0 {
		return nil
	}
	spacing := panelSpacing
	if area.Width < n+(n-1)*spacing {
		spacing = 0
	}
	avail := area.Width - (n-1)*spacing
	base, rem := avail/n, avail%n

	cols := make([]Rect, n)
	x := area.X
	for i := range cols {
		width := base
		if i < rem {
			width++
		}
		cols[i] = Rect{X: x, Y: area.Y, Width: width, Height: area.Height}
		x += width + spacing
	}
	return cols
}

// splitRows stacks one row per page. Row boundaries are the rounded
// cumulative sizes scaled to the area height, so the rows never exceed the
// area and a page as large as the scale fills it.
func splitRows(area Rect, sizes []int64, scale int64) []RowGeometry {
	if len(sizes) == 0 {
		return nil
	}
	if scale <= 0 {
		scale = 1
	}
	height := int64(area.Height)
	offset := func(cum int64) int {
		y := (2*cum*height + scale) / (2 * scale)
		return int(min(max(y, 0), height))
	}

	rows := make([]RowGeometry, len(sizes))
	var cum int64
	for i, size := range sizes {
		top := offset(cum)
		cum += max(size, 0)
		bottom := offset(cum)

		row := Rect{X: area.X, Y: area.Y + top, Width: area.Width, Height: bottom - top}
		label, content := splitLabel(row)
		rows[i] = RowGeometry{Page: i, Area: row, Label: label, Content: content}
	}
	return rows
}

// splitLabel splits a page row into the label zone and the content zone
func splitLabel(row Rect) (Rect, Rect) {
	labelW := row.Width * labelPercent / 100
	contentX := labelW + 1
	if contentX > row.Width {
		contentX = row.Width
	}
	label := Rect{X: row.X, Y: row.Y, Width: labelW, Height: row.Height}
	content := Rect{X: row.X + contentX, Y: row.Y, Width: row.Width - contentX, Height: row.Height}
	return label, content
}
