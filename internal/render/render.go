// Package render draws structured diffs and planned review comments for
// terminal preview.
package render

import (
	"fmt"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"
	"github.com/charmbracelet/lipgloss"

	"github.com/hunkbot/hunkbot/internal/diff"
	"github.com/hunkbot/hunkbot/internal/review"
)

// Color palette.
var (
	colorRed    = lipgloss.Color("#ff5555")
	colorGreen  = lipgloss.Color("#50fa7b")
	colorYellow = lipgloss.Color("#f1fa8c")
	colorBlue   = lipgloss.Color("#8be9fd")
	colorPurple = lipgloss.Color("#bd93f9")
	colorDim    = lipgloss.Color("#6272a4")
	colorFg     = lipgloss.Color("#f8f8f2")
	colorBorder = lipgloss.Color("#44475a")
)

// Style definitions.
var (
	fileHeaderStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	hunkHeaderStyle = lipgloss.NewStyle().
			Foreground(colorPurple).
			Bold(true)

	lineNumberStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Width(5).
			Align(lipgloss.Right)

	addedLineStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	deletedLineStyle = lipgloss.NewStyle().
				Foreground(colorRed)

	contextLineStyle = lipgloss.NewStyle().
				Foreground(colorFg)

	commentBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	commentPathStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Bold(true)
)

// File renders one parsed file: a header line, then every hunk with line
// numbers and syntax-highlighted content.
func File(f *diff.File) string {
	var b strings.Builder
	b.WriteString(fileHeaderStyle.Render(f.Name()))
	b.WriteString("\n")

	if f.IsBinary {
		b.WriteString(contextLineStyle.Render("(binary file)"))
		b.WriteString("\n")
		return b.String()
	}

	var contentLines []string
	for _, h := range f.Hunks {
		for _, line := range h.Lines {
			contentLines = append(contentLines, line.Text)
		}
	}
	highlighted := highlightLines(f.Name(), contentLines)
	hlIdx := 0

	for i, h := range f.Hunks {
		b.WriteString(hunkHeaderStyle.Render(h.Header))
		b.WriteString("\n")

		for _, line := range h.Lines {
			var tokens []token
			if hlIdx < len(highlighted) {
				tokens = highlighted[hlIdx].tokens
				hlIdx++
			}
			b.WriteString(renderLine(line, tokens))
			b.WriteString("\n")
		}

		if i < len(f.Hunks)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderLine(line diff.Line, tokens []token) string {
	num := lineNumberStyle.Render(fmt.Sprintf("%d", line.Num()))

	switch line.Op {
	case gitdiff.OpAdd:
		return num + " " + addedLineStyle.Render("+"+line.Text)
	case gitdiff.OpDelete:
		return num + " " + deletedLineStyle.Render("-"+line.Text)
	default:
		return num + "  " + renderTokens(line.Text, tokens)
	}
}

// renderTokens colors a context line per syntax token, falling back to the
// plain text when highlighting produced nothing usable.
func renderTokens(text string, tokens []token) string {
	if len(tokens) == 0 {
		return contextLineStyle.Render(text)
	}

	var b strings.Builder
	for _, t := range tokens {
		if t.color != "" {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(t.color)).Render(t.text))
		} else {
			b.WriteString(contextLineStyle.Render(t.text))
		}
	}
	return b.String()
}

// Comments renders the planned review comments, one bordered block per
// comment, in publication order.
func Comments(comments []review.Comment) string {
	if len(comments) == 0 {
		return "No findings.\n"
	}

	var b strings.Builder
	for _, c := range comments {
		header := commentPathStyle.Render(fmt.Sprintf("%s:%d", c.Path, c.Line))
		b.WriteString(commentBoxStyle.Render(header + "\n" + c.Body))
		b.WriteString("\n")
	}
	return b.String()
}
