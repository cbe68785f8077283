// Package ui provides the Bubble Tea front end for Loupe. It hosts the
// log-list widget, polls the tailer for new lines, and owns search input,
// follow mode, and theming.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ptrager/loupe/internal/config"
	"github.com/ptrager/loupe/internal/loglist"
	"github.com/ptrager/loupe/internal/logtail"
	"github.com/ptrager/loupe/internal/screen"
)

// Options configure the UI.
type Options struct {
	Config    config.Config
	ThemeName string
	Follow    bool
	Tailer    *logtail.Tailer
	SeedLines []string
}

type tickMsg time.Time

// Model is the root application state for Bubble Tea.
type Model struct {
	cfg    config.Config
	theme  Theme
	styles Styles
	keys   keyMap

	list   *loglist.Model
	tailer *logtail.Tailer

	searchInput textinput.Model
	searching   bool
	follow      bool

	width  int
	height int
	ready  bool

	tailErr error
}

// New builds the root model, seeding the list with the lines read at
// startup.
func New(opts Options) *Model {
	theme := ThemeByName(opts.ThemeName)
	styles := theme.Styles()

	input := textinput.New()
	input.Placeholder = "search"
	input.CharLimit = 200
	input.Prompt = "/"

	m := &Model{
		cfg:         opts.Config,
		theme:       theme,
		styles:      styles,
		keys:        DefaultKeyMap(),
		list:        loglist.New(),
		tailer:      opts.Tailer,
		searchInput: input,
		follow:      opts.Follow,
	}
	for _, line := range opts.SeedLines {
		m.pushLine(line)
	}
	if m.follow && m.list.Len() > 0 {
		m.list.Select(m.list.Len() - 1)
	}
	return m
}

// ThemeName returns the active theme's name, for prefs persistence.
func (m *Model) ThemeName() string { return m.theme.Name }

// FollowEnabled reports whether follow mode is on, for prefs persistence.
func (m *Model) FollowEnabled() bool { return m.follow }

func (m *Model) Init() tea.Cmd {
	m.list.Focus()
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.Poll, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		m.pollTailer()
		return m, m.tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// pollTailer pulls newly appended lines into the list.
func (m *Model) pollTailer() {
	if m.tailer == nil {
		return
	}
	lines, err := m.tailer.Next()
	m.tailErr = err
	if len(lines) == 0 {
		return
	}
	for _, line := range lines {
		m.pushLine(line)
	}
	m.trimScrollback()
	if m.follow && m.list.Len() > 0 {
		m.list.Select(m.list.Len() - 1)
	}
}

func (m *Model) pushLine(line string) {
	m.list.Push(loglist.NewItem(line).WithStyle(lineStyle(line, m.styles)))
}

// trimScrollback drops the oldest items once the list exceeds the
// configured scrollback, shifting the selection so it stays on the same
// line.
func (m *Model) trimScrollback() {
	overflow := m.list.Len() - m.cfg.Scrollback
	if overflow <= 0 {
		return
	}
	kept := append([]loglist.Item(nil), m.list.Items()[overflow:]...)
	selected, hadSelection := m.list.State().Selected()
	m.list.Clear()
	for _, it := range kept {
		m.list.Push(it)
	}
	if hadSelection {
		m.list.Select(max(selected-overflow, 0))
	} else {
		m.list.Unselect()
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.SetValue(m.list.State().Query())
		m.searchInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.list.State().Query() != "" {
			m.list.SetFindText("")
			return m, nil
		}
		m.list.Unselect()
		m.follow = false
		return m, nil

	case key.Matches(msg, m.keys.Follow):
		m.follow = !m.follow
		if m.follow && m.list.Len() > 0 {
			m.list.Select(m.list.Len() - 1)
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		if m.list.Len() > 0 {
			m.list.Select(0)
		}
		m.follow = false
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		if m.list.Len() > 0 {
			m.list.Select(m.list.Len() - 1)
		}
		m.follow = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = NextTheme(m.theme.Name)
		m.styles = m.theme.Styles()
		m.restyleItems()
		return m, nil
	}

	// Everything else goes to the list's own key table. Moving off the
	// last line drops follow mode; landing back on it re-engages.
	before, hadSelection := m.list.State().Selected()
	m.list.Update(msg)
	if after, ok := m.list.State().Selected(); ok && hadSelection && after != before {
		m.follow = after == m.list.Len()-1
	}
	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.searching = false
		m.searchInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.list.SetFindText("")
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	// Highlights track the query as it is typed. Heights are
	// query-independent, so this never moves the scroll position.
	m.list.SetFindText(m.searchInput.Value())
	return m, cmd
}

// restyleItems rebuilds per-item styles after a theme change.
func (m *Model) restyleItems() {
	items := m.list.Items()
	contents := make([]string, len(items))
	for i, it := range items {
		contents[i] = it.Content()
	}
	selected, hadSelection := m.list.State().Selected()
	offset := m.list.State().Offset
	m.list.Clear()
	for _, line := range contents {
		m.pushLine(line)
	}
	if hadSelection {
		m.list.Select(selected)
	} else {
		m.list.Unselect()
	}
	m.list.State().Offset = min(offset, max(m.list.Len()-1, 0))
}

func (m *Model) View() string {
	if !m.ready {
		return "Starting loupe..."
	}

	listHeight := m.height - 2 // title above, status below
	if listHeight < 0 {
		listHeight = 0
	}

	buf := screen.New(m.width, listHeight)
	widget := loglist.List{
		Style:          m.styles.Text,
		HighlightStyle: m.styles.Selected,
		MatchStyle:     m.styles.Match,
	}
	widget.Render(m.list.Items(), buf.Bounds(), buf, m.list.State())

	var view strings.Builder
	view.WriteString(m.renderTitle())
	view.WriteByte('\n')
	view.WriteString(buf.String())
	view.WriteByte('\n')
	view.WriteString(m.renderStatus())
	return view.String()
}

func (m *Model) renderTitle() string {
	title := m.styles.Title.Render("loupe")
	path := m.styles.MutedText.Render(m.cfg.LogPath)
	return clipLine(lipgloss.JoinHorizontal(lipgloss.Top, title, path), m.width)
}

func (m *Model) renderStatus() string {
	if m.searching {
		return clipLine(m.styles.StatusBar.Render(m.searchInput.View()), m.width)
	}

	follow := "off"
	if m.follow {
		follow = "on"
	}
	parts := []string{
		fmt.Sprintf("%d lines", m.list.Len()),
		"follow " + follow,
	}
	if query := m.list.State().Query(); query != "" {
		parts = append(parts, "/"+query)
	}
	if m.tailErr != nil {
		parts = append(parts, "tail error: "+m.tailErr.Error())
	}
	parts = append(parts, m.theme.Name)
	parts = append(parts, "/ search  f follow  g/G top/bottom  q quit")
	return clipLine(m.styles.StatusBar.Render(strings.Join(parts, "  •  ")), m.width)
}

// clipLine truncates a rendered line to the terminal width.
func clipLine(line string, width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}
