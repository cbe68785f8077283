// Package screen provides a fixed-size grid of styled character cells that
// widgets draw into. The grid flattens to a string suitable for a Bubble Tea
// view, merging adjacent cells that were written by the same styled run.
package screen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"
)

// Span is a fragment of text rendered with a single style.
type Span struct {
	Text  string
	Style lipgloss.Style
}

// Line is one terminal row expressed as consecutive spans.
type Line []Span

// Text returns the concatenated text of the line's spans.
func (l Line) Text() string {
	var sb strings.Builder
	for _, s := range l {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

type cell struct {
	text  string
	style lipgloss.Style
	width int // 0 marks the continuation cell of a wide grapheme
	run   int
}

// Buffer is a grid of styled cells. Cells start out as plain spaces, so
// flattening an untouched buffer yields a blank area of the full size.
type Buffer struct {
	width  int
	height int
	cells  [][]cell
	runSeq int
}

// New returns a Buffer of the given size. Non-positive dimensions are
// clamped to zero.
func New(width, height int) *Buffer {
	width = max(width, 0)
	height = max(height, 0)
	cells := make([][]cell, height)
	for y := range cells {
		row := make([]cell, width)
		for x := range row {
			row[x] = cell{text: " ", width: 1}
		}
		cells[y] = row
	}
	return &Buffer{width: width, height: height, cells: cells}
}

// Bounds returns the buffer's area anchored at the origin.
func (b *Buffer) Bounds() Rect {
	return Rect{Width: b.width, Height: b.height}
}

// SetStyle layers style over every cell in r, clipped to the buffer. Style
// properties already set on a cell survive unless the new style overrides
// them.
func (b *Buffer) SetStyle(r Rect, style lipgloss.Style) {
	r = r.Intersection(b.Bounds())
	if r.Empty() {
		return
	}
	// Cells that shared a run before the fill must still share one after,
	// and must not merge with cells outside the fill.
	remap := make(map[int]int)
	for y := r.Top(); y < r.Bottom(); y++ {
		for x := r.Left(); x < r.Right(); x++ {
			c := &b.cells[y][x]
			c.style = style.Inherit(c.style)
			id, ok := remap[c.run]
			if !ok {
				b.runSeq++
				id = b.runSeq
				remap[c.run] = id
			}
			c.run = id
		}
	}
}

// SetLine writes the line's spans starting at (x, y), clipped to maxWidth
// cells and to the buffer. Span styles are layered over whatever style the
// cells already carry. It returns the column after the last cell written.
func (b *Buffer) SetLine(x, y int, line Line, maxWidth int) int {
	if y < 0 || y >= b.height || x >= b.width {
		return x
	}
	limit := min(x+maxWidth, b.width)
	col := max(x, 0)
	for _, span := range line {
		b.runSeq++
		run := b.runSeq
		gr := uniseg.NewGraphemes(span.Text)
		for gr.Next() {
			w := gr.Width()
			if w == 0 {
				continue
			}
			if col+w > limit {
				return col
			}
			// Writing over half of a wide grapheme leaves the other
			// half dangling; blank it out.
			if b.cells[y][col].width == 0 && col > 0 {
				b.blank(col-1, y)
			}
			if next := col + w; next < b.width && b.cells[y][next].width == 0 {
				b.blank(next, y)
			}
			c := &b.cells[y][col]
			c.text = gr.Str()
			c.style = span.Style.Inherit(c.style)
			c.width = w
			c.run = run
			for i := 1; i < w; i++ {
				cont := &b.cells[y][col+i]
				cont.text = ""
				cont.style = c.style
				cont.width = 0
				cont.run = run
			}
			col += w
		}
	}
	return col
}

func (b *Buffer) blank(x, y int) {
	b.runSeq++
	b.cells[y][x] = cell{text: " ", width: 1, run: b.runSeq}
}

// String flattens the buffer into styled text, one row per line. Adjacent
// cells from the same run render as a single styled segment so the output
// stays compact.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		var segText strings.Builder
		var segStyle lipgloss.Style
		segRun := -1
		flush := func() {
			if segText.Len() > 0 {
				sb.WriteString(segStyle.Render(segText.String()))
				segText.Reset()
			}
		}
		for x := 0; x < b.width; x++ {
			c := b.cells[y][x]
			if c.width == 0 {
				continue
			}
			if c.run != segRun {
				flush()
				segStyle = c.style
				segRun = c.run
			}
			segText.WriteString(c.text)
		}
		flush()
	}
	return sb.String()
}
