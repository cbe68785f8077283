package loglist

import "github.com/charmbracelet/lipgloss"

// Item is one log entry in the list: immutable content plus the base style
// it renders with. Height is never stored; it is recomputed from the content
// and the current viewport width, since the width can change between renders.
type Item struct {
	content string
	style   lipgloss.Style
}

// NewItem returns an Item with the default style.
func NewItem(content string) Item {
	return Item{content: content}
}

// WithStyle returns a copy of the item using style as its base style.
func (it Item) WithStyle(style lipgloss.Style) Item {
	it.style = style
	return it
}

// Content returns the item's raw text.
func (it Item) Content() string {
	return it.content
}

// Height reports how many rows the item occupies when wrapped to width.
func (it Item) Height(width int) int {
	return Composer{}.Height(it.content, width)
}
