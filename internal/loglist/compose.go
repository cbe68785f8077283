package loglist

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/ptrager/loupe/internal/screen"
)

// Composer turns one item's raw text into wrapped display lines. Match is
// the style layered onto spans that equal the active search query; all other
// spans carry a zero style and inherit whatever the buffer cell already
// holds. A Composer keeps no state, so identical inputs always produce
// identical output.
type Composer struct {
	Match lipgloss.Style
}

// Compose wraps text to width cells and splits each wrapped line into spans.
// Embedded newlines force line boundaries, a word wider than width is
// hard-broken at the width boundary, and empty text yields a single empty
// line. When query is non-empty every case-sensitive occurrence inside a
// wrapped line becomes its own Match-styled span; the concatenation of a
// line's spans always equals the line's text.
//
// width must be positive; the renderer guards before calling.
func (c Composer) Compose(text string, width int, query string) []screen.Line {
	wrapped := wrap(text, width)
	lines := make([]screen.Line, 0, len(wrapped))
	for _, ln := range wrapped {
		lines = append(lines, c.highlight(ln, query))
	}
	return lines
}

// Height reports how many rows text occupies when wrapped to width. It is
// independent of any search query, so scroll geometry stays put while the
// user types.
func (c Composer) Height(text string, width int) int {
	return len(wrap(text, width))
}

// highlight splits line into spans around occurrences of query.
func (c Composer) highlight(line, query string) screen.Line {
	if query == "" || !strings.Contains(line, query) {
		return screen.Line{{Text: line}}
	}
	var spans screen.Line
	rest := line
	for {
		i := strings.Index(rest, query)
		if i < 0 {
			break
		}
		if i > 0 {
			spans = append(spans, screen.Span{Text: rest[:i]})
		}
		spans = append(spans, screen.Span{Text: query, Style: c.Match})
		rest = rest[i+len(query):]
	}
	if rest != "" {
		spans = append(spans, screen.Span{Text: rest})
	}
	return spans
}

// wrap greedily packs words into lines of at most width cells. Runs of
// spaces between words are preserved when they fit; spaces that land on a
// wrap boundary are dropped, the way a terminal reader expects.
func wrap(text string, width int) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(paragraph, width)...)
	}
	return lines
}

func wrapParagraph(paragraph string, width int) []string {
	if paragraph == "" {
		return []string{""}
	}

	var lines []string
	var cur strings.Builder
	curWidth := 0
	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		curWidth = 0
	}

	for _, token := range tokenize(paragraph) {
		if token[0] == ' ' {
			// Spaces fill the line only as far as they fit; the rest of
			// the run dies at the wrap boundary.
			for _, r := range token {
				if curWidth+1 > width {
					flush()
					break
				}
				cur.WriteRune(r)
				curWidth++
			}
			continue
		}

		tokenWidth := runewidth.StringWidth(token)
		switch {
		case curWidth+tokenWidth <= width:
			cur.WriteString(token)
			curWidth += tokenWidth
		case tokenWidth <= width:
			flush()
			cur.WriteString(token)
			curWidth = tokenWidth
		default:
			// Word wider than the viewport: hard-break at the width
			// boundary, continuing across as many lines as needed.
			for _, r := range token {
				rw := runewidth.RuneWidth(r)
				if curWidth+rw > width {
					flush()
				}
				cur.WriteRune(r)
				curWidth += rw
			}
		}
	}
	if cur.Len() > 0 || curWidth > 0 || len(lines) == 0 {
		flush()
	}
	return lines
}

// tokenize splits a paragraph into alternating runs of spaces and non-spaces.
func tokenize(s string) []string {
	var tokens []string
	start := 0
	inSpace := s[0] == ' '
	for i, r := range s {
		if (r == ' ') != inSpace {
			tokens = append(tokens, s[start:i])
			start = i
			inSpace = r == ' '
		}
	}
	tokens = append(tokens, s[start:])
	return tokens
}
