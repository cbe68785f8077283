// Package loglist implements a scrollable, keyboard-navigable list widget
// for log lines. Items wrap to the viewport width, search-query matches are
// highlighted, and a sliding window keeps the selected item visible while
// the scroll offset stays stable across renders.
package loglist

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const noSelection = -1

// State is the mutable cursor state of a log list: the index of the first
// visible item, the optional selection, the focus flag, and the active
// search query. The renderer persists Offset across renders so repeated
// draws at the same position do not rescan the collection.
type State struct {
	Offset   int
	selected int
	focused  bool
	query    string
}

// NewState returns a State with no selection.
func NewState() State {
	return State{selected: noSelection}
}

// Selected returns the selected index, if any.
func (s *State) Selected() (int, bool) {
	if s.selected == noSelection {
		return 0, false
	}
	return s.selected, true
}

// Select sets the selection. Bounds are not checked here; the renderer
// clamps lazily at draw time.
func (s *State) Select(index int) {
	s.selected = index
}

// Unselect clears the selection and resets the scroll offset. Losing the
// selection always snaps the list back to the top.
func (s *State) Unselect() {
	s.selected = noSelection
	s.Offset = 0
}

// Query returns the active search query.
func (s *State) Query() string {
	return s.query
}

// keyMap defines the inputs the list reacts to.
type keyMap struct {
	Up   key.Binding
	Down key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/ctrl+p", "Previous line"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓/ctrl+n", "Next line"),
		),
	}
}

// Model owns the item collection and its cursor state.
type Model struct {
	items []Item
	state State
	keys  keyMap
}

// New returns an empty Model with the first (future) item selected, so the
// list is usable as soon as lines arrive.
func New() *Model {
	state := NewState()
	state.Select(0)
	return &Model{state: state, keys: defaultKeyMap()}
}

// Push appends an item. Selection and scroll offset are untouched.
func (m *Model) Push(item Item) {
	m.items = append(m.items, item)
}

// Clear empties the collection and restores the initial cursor state. The
// selection points at index 0 even though the collection is empty; the
// renderer treats an empty collection as a no-op regardless.
func (m *Model) Clear() {
	m.items = nil
	m.state.Offset = 0
	m.state.Select(0)
}

// SetFindText replaces the search query used to highlight matches. Heights
// are query-independent, so this never moves the scroll position.
func (m *Model) SetFindText(query string) {
	m.state.query = query
}

// Select sets the selection without bounds checking.
func (m *Model) Select(index int) {
	m.state.Select(index)
}

// Unselect clears the selection and scrolls back to the top.
func (m *Model) Unselect() {
	m.state.Unselect()
}

// NextIfExists moves the selection down one item. It is a no-op at the last
// item, when nothing is selected, or when the collection is empty.
func (m *Model) NextIfExists() {
	if len(m.items) == 0 {
		return
	}
	if i, ok := m.state.Selected(); ok && i < len(m.items)-1 {
		m.state.Select(i + 1)
	}
}

// PreviousIfExists moves the selection up one item. It is a no-op at the
// first item or when nothing is selected.
func (m *Model) PreviousIfExists() {
	if i, ok := m.state.Selected(); ok && i > 0 {
		m.state.Select(i - 1)
	}
}

// Focus marks the list as holding input focus.
func (m *Model) Focus() { m.state.focused = true }

// Blur marks the list as not holding input focus.
func (m *Model) Blur() { m.state.focused = false }

// Focused reports whether the list holds input focus. The list itself does
// not vary its rendering on focus; the host decides what focus looks like.
func (m *Model) Focused() bool { return m.state.focused }

// Items returns the item collection for rendering.
func (m *Model) Items() []Item { return m.items }

// Len returns the number of items.
func (m *Model) Len() int { return len(m.items) }

// State returns the mutable cursor state for rendering.
func (m *Model) State() *State { return &m.state }

// Update handles a key event. Down and ctrl+n move the selection down, up
// and ctrl+p move it up; every other key is ignored. Whether the list should
// see the event at all is the host's routing decision.
func (m *Model) Update(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.NextIfExists()
	case key.Matches(msg, m.keys.Up):
		m.PreviousIfExists()
	}
}
