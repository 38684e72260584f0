package render

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlightedLine is one source line split into colored tokens.
type highlightedLine struct {
	tokens []token
}

type token struct {
	text  string
	color string // ANSI color string, empty for default
}

// highlightLines applies syntax highlighting to source lines for a given
// filename. Returns one highlightedLine per input line.
func highlightLines(filename string, lines []string) []highlightedLine {
	lexer := lexerForFile(filename)
	if lexer == nil {
		return plainLines(lines)
	}

	source := strings.Join(lines, "\n")
	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return plainLines(lines)
	}

	style := styles.Get("dracula")
	if style == nil {
		style = styles.Fallback
	}

	result := make([]highlightedLine, 0, len(lines))
	current := highlightedLine{}

	for _, tok := range iterator.Tokens() {
		// Split tokens that span multiple lines
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				result = append(result, current)
				current = highlightedLine{}
			}
			if part != "" {
				current.tokens = append(current.tokens, token{
					text:  part,
					color: tokenColor(style, tok.Type),
				})
			}
		}
	}
	result = append(result, current)

	for len(result) < len(lines) {
		result = append(result, highlightedLine{tokens: []token{{text: ""}}})
	}

	return result
}

func plainLines(lines []string) []highlightedLine {
	result := make([]highlightedLine, len(lines))
	for i, line := range lines {
		result[i] = highlightedLine{tokens: []token{{text: line}}}
	}
	return result
}

func lexerForFile(filename string) chroma.Lexer {
	lexer := lexers.Match(filename)
	if lexer == nil {
		ext := filepath.Ext(filename)
		if ext != "" {
			lexer = lexers.Match("file" + ext)
		}
	}
	if lexer != nil {
		lexer = chroma.Coalesce(lexer)
	}
	return lexer
}

func tokenColor(style *chroma.Style, tt chroma.TokenType) string {
	entry := style.Get(tt)
	if entry.Colour.IsSet() {
		return entry.Colour.String()
	}
	return ""
}
