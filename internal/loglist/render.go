package loglist

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ptrager/loupe/internal/screen"
)

// StatefulWidget is the rendering capability shared by widgets whose cursor
// state lives outside the widget value. The host hands every widget an area,
// a buffer, and the state it owns for that widget.
type StatefulWidget interface {
	Render(items []Item, area screen.Rect, buf *screen.Buffer, state *State)
}

// List renders a slice of Items into a buffer region. It is an immutable
// configuration value: Style is the base for every item, HighlightStyle is
// layered over the selected item, and MatchStyle is layered over search-query
// matches.
type List struct {
	Style          lipgloss.Style
	HighlightStyle lipgloss.Style
	MatchStyle     lipgloss.Style
}

var _ StatefulWidget = List{}

// Render computes the visible window of items and writes them into buf.
//
// The window starts at state.Offset and grows forward while item heights
// fit, admitting at most one partially visible trailing item. If the
// (lazily clamped) selection fell outside that window, the window slides:
// forward growth then shrink-from-the-front when the selection is below,
// backward growth then shrink-from-the-back when it is above. The resulting
// start index is persisted as the new state.Offset, which is the only state
// mutation rendering performs.
func (l List) Render(items []Item, area screen.Rect, buf *screen.Buffer, state *State) {
	if area.Width < 1 || area.Height < 1 {
		return
	}
	if len(items) == 0 {
		return
	}
	if state.Offset >= len(items) {
		state.Offset = len(items) - 1
	}

	listHeight := area.Height
	start := state.Offset
	end := state.Offset
	height := 0
	for i := state.Offset; i < len(items); i++ {
		itemHeight := items[i].Height(area.Width)
		if height+itemHeight > listHeight {
			if height != listHeight {
				// The next item still fits partially; include it in the
				// window but only count the rows that actually fit.
				height = listHeight
				end++
			}
			break
		}
		end++
		height += itemHeight
	}

	selected := 0
	if i, ok := state.Selected(); ok {
		selected = i
	}
	selected = min(selected, len(items)-1)

	for selected >= end {
		height += items[end].Height(area.Width)
		end++
		for height > listHeight {
			height -= items[start].Height(area.Width)
			start++
		}
	}
	for selected < start {
		start--
		height += items[start].Height(area.Width)
		for height > listHeight {
			end--
			height -= items[end].Height(area.Width)
		}
	}
	state.Offset = start

	composer := Composer{Match: l.MatchStyle}
	row := area.Top()
	for i := start; i < end && i < len(items); i++ {
		item := items[i]
		itemHeight := item.Height(area.Width)
		top := row
		row += itemHeight
		if top >= area.Bottom() {
			break
		}

		visible := itemHeight
		if top+itemHeight > area.Bottom() {
			visible = area.Bottom() - top
		}
		itemArea := screen.Rect{X: area.Left(), Y: top, Width: area.Width, Height: visible}
		buf.SetStyle(itemArea, item.style.Inherit(l.Style))
		if sel, ok := state.Selected(); ok && sel == i {
			buf.SetStyle(itemArea, l.HighlightStyle)
		}

		for j, line := range composer.Compose(item.content, area.Width, state.query) {
			if top+j >= area.Bottom() {
				break
			}
			buf.SetLine(area.Left(), top+j, line, area.Width)
		}
	}
}
