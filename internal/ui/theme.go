package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the viewer.
type Theme struct {
	Name string

	Background string
	Text       string
	Muted      string
	Faint      string
	Accent     string

	// Selected log line
	SelectionBg   string
	SelectionText string

	// Search-query matches inside log lines
	MatchBg   string
	MatchText string

	// Log level colors
	Info    string
	Warning string
	Danger  string
	Debug   string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		DebugText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Debug)),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Match: lipgloss.NewStyle().
			Background(lipgloss.Color(t.MatchBg)).
			Foreground(lipgloss.Color(t.MatchText)).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)).
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true).
			Padding(0, 1),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	InfoText    lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	DebugText   lipgloss.Style

	Selected  lipgloss.Style
	Match     lipgloss.Style
	StatusBar lipgloss.Style
	Title     lipgloss.Style
}

// LevelStyle returns the text style for a log level token.
func (s Styles) LevelStyle(level string) lipgloss.Style {
	switch strings.ToUpper(level) {
	case "INFO":
		return s.InfoText
	case "WARN", "WARNING":
		return s.WarningText
	case "ERROR", "FATAL":
		return s.DangerText
	case "DEBUG", "TRACE":
		return s.DebugText
	default:
		return s.Text
	}
}

// Themes returns the built-in themes in cycling order.
func Themes() []Theme {
	return []Theme{midnightTheme(), daylightTheme()}
}

// ThemeByName returns the named theme, falling back to the first built-in
// when the name is unknown.
func ThemeByName(name string) Theme {
	for _, t := range Themes() {
		if strings.EqualFold(t.Name, name) {
			return t
		}
	}
	return Themes()[0]
}

// NextTheme returns the theme after the named one in cycling order.
func NextTheme(name string) Theme {
	themes := Themes()
	for i, t := range themes {
		if strings.EqualFold(t.Name, name) {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}

func midnightTheme() Theme {
	return Theme{
		Name:          "midnight",
		Background:    "#1a1b26",
		Text:          "#c0caf5",
		Muted:         "#565f89",
		Faint:         "#3b4261",
		Accent:        "#7aa2f7",
		SelectionBg:   "#283457",
		SelectionText: "#c0caf5",
		MatchBg:       "#e0af68",
		MatchText:     "#1a1b26",
		Info:          "#9ece6a",
		Warning:       "#e0af68",
		Danger:        "#f7768e",
		Debug:         "#7dcfff",
	}
}

func daylightTheme() Theme {
	return Theme{
		Name:          "daylight",
		Background:    "#e1e2e7",
		Text:          "#3760bf",
		Muted:         "#848cb5",
		Faint:         "#a8aecb",
		Accent:        "#2e7de9",
		SelectionBg:   "#b7c1e3",
		SelectionText: "#3760bf",
		MatchBg:       "#8c6c3e",
		MatchText:     "#e1e2e7",
		Info:          "#587539",
		Warning:       "#8c6c3e",
		Danger:        "#f52a65",
		Debug:         "#007197",
	}
}
