package ui

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

// levelRe finds the first log-level token in a line. Lines without one
// render with the plain text style.
var levelRe = regexp.MustCompile(`\b(INFO|WARN|WARNING|ERROR|FATAL|DEBUG|TRACE)\b`)

// lineLevel returns the level token of a log line, or "" when none is found.
func lineLevel(line string) string {
	if m := levelRe.FindString(line); m != "" {
		return m
	}
	return ""
}

// lineStyle returns the base style for a log line derived from its level.
func lineStyle(line string, styles Styles) lipgloss.Style {
	if level := lineLevel(line); level != "" {
		return styles.LevelStyle(level)
	}
	return styles.Text
}
