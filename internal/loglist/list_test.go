package loglist

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func pushLines(m *Model, lines ...string) {
	for _, line := range lines {
		m.Push(NewItem(line))
	}
}

func selectedIndex(t *testing.T, m *Model) int {
	t.Helper()
	i, ok := m.State().Selected()
	if !ok {
		t.Fatalf("expected a selection")
	}
	return i
}

func TestNew_StartsEmptyWithFirstItemSelected(t *testing.T) {
	m := New()
	if m.Len() != 0 {
		t.Fatalf("Len = %d, want 0", m.Len())
	}
	if got := selectedIndex(t, m); got != 0 {
		t.Fatalf("selected = %d, want 0", got)
	}
	if m.State().Offset != 0 {
		t.Fatalf("Offset = %d, want 0", m.State().Offset)
	}
}

func TestPush_LeavesCursorAlone(t *testing.T) {
	m := New()
	pushLines(m, "a", "b", "c")
	m.Select(1)
	m.Push(NewItem("d"))
	if got := selectedIndex(t, m); got != 1 {
		t.Fatalf("selected = %d, want 1", got)
	}
	if m.State().Offset != 0 {
		t.Fatalf("Offset = %d, want 0", m.State().Offset)
	}
	if m.Len() != 4 {
		t.Fatalf("Len = %d, want 4", m.Len())
	}
}

func TestClear_ResetsToInitialState(t *testing.T) {
	m := New()
	pushLines(m, "a", "b", "c")
	m.Select(2)
	m.State().Offset = 1

	m.Clear()

	if m.Len() != 0 {
		t.Fatalf("Len = %d, want 0", m.Len())
	}
	if m.State().Offset != 0 {
		t.Fatalf("Offset = %d, want 0", m.State().Offset)
	}
	if got := selectedIndex(t, m); got != 0 {
		t.Fatalf("selected = %d, want 0", got)
	}
}

func TestUnselect_ResetsScroll(t *testing.T) {
	m := New()
	pushLines(m, "a", "b", "c")
	m.Select(2)
	m.State().Offset = 2

	m.Unselect()

	if _, ok := m.State().Selected(); ok {
		t.Fatalf("expected no selection")
	}
	if m.State().Offset != 0 {
		t.Fatalf("Offset = %d, want 0", m.State().Offset)
	}
}

func TestNextIfExists_StopsAtLastItem(t *testing.T) {
	m := New()
	pushLines(m, "a", "b", "c")
	for i := 0; i < 10; i++ {
		m.NextIfExists()
	}
	if got := selectedIndex(t, m); got != 2 {
		t.Fatalf("selected = %d, want 2", got)
	}
}

func TestPreviousIfExists_StopsAtFirstItem(t *testing.T) {
	m := New()
	pushLines(m, "a", "b", "c")
	m.Select(2)
	for i := 0; i < 10; i++ {
		m.PreviousIfExists()
	}
	if got := selectedIndex(t, m); got != 0 {
		t.Fatalf("selected = %d, want 0", got)
	}
}

func TestNextIfExists_EmptyCollectionIsNoOp(t *testing.T) {
	m := New()
	m.NextIfExists() // must not underflow len-1
	if got := selectedIndex(t, m); got != 0 {
		t.Fatalf("selected = %d, want 0", got)
	}
}

func TestNavigation_NoOpWithoutSelection(t *testing.T) {
	m := New()
	pushLines(m, "a", "b")
	m.Unselect()
	m.NextIfExists()
	m.PreviousIfExists()
	if _, ok := m.State().Selected(); ok {
		t.Fatalf("navigation must not restore a cleared selection")
	}
}

func TestNavigation_BoundsHoldUnderRandomWalk(t *testing.T) {
	m := New()
	pushLines(m, "a", "b", "c", "d", "e")
	moves := []bool{true, true, false, true, true, true, true, false, false, false, false, false, true}
	for _, down := range moves {
		if down {
			m.NextIfExists()
		} else {
			m.PreviousIfExists()
		}
		if got := selectedIndex(t, m); got < 0 || got >= m.Len() {
			t.Fatalf("selected = %d, out of [0, %d)", got, m.Len())
		}
	}
}

func TestUpdate_KeyTable(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want int
	}{
		{"down arrow moves down", tea.KeyMsg{Type: tea.KeyDown}, 2},
		{"ctrl+n moves down", tea.KeyMsg{Type: tea.KeyCtrlN}, 2},
		{"up arrow moves up", tea.KeyMsg{Type: tea.KeyUp}, 0},
		{"ctrl+p moves up", tea.KeyMsg{Type: tea.KeyCtrlP}, 0},
		{"other keys are ignored", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := New()
			pushLines(m, "a", "b", "c")
			m.Select(1)
			m.Update(tc.msg)
			if got := selectedIndex(t, m); got != tc.want {
				t.Fatalf("selected = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestFocusBlur(t *testing.T) {
	m := New()
	if m.Focused() {
		t.Fatalf("new model should not be focused")
	}
	m.Focus()
	if !m.Focused() {
		t.Fatalf("Focus did not take")
	}
	m.Blur()
	if m.Focused() {
		t.Fatalf("Blur did not take")
	}
}

func TestSetFindText_LeavesCursorAlone(t *testing.T) {
	m := New()
	pushLines(m, "a", "b", "c")
	m.Select(2)
	m.State().Offset = 1

	m.SetFindText("b")

	if m.State().Query() != "b" {
		t.Fatalf("Query = %q, want %q", m.State().Query(), "b")
	}
	if got := selectedIndex(t, m); got != 2 {
		t.Fatalf("selected = %d, want 2", got)
	}
	if m.State().Offset != 1 {
		t.Fatalf("Offset = %d, want 1", m.State().Offset)
	}
}
