package ui

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Highlighter provides syntax highlighting for preset files
type Highlighter struct {
	style *chroma.Style
}

// NewHighlighter creates a new syntax highlighter
func NewHighlighter() *Highlighter {
	return &Highlighter{
		style: styles.Get("catppuccin-mocha"),
	}
}

// Highlight colors content based on the file name
func (h *Highlighter) Highlight(content, filename string) string {
	lexer := getLexerForFile(filename)
	if lexer == nil {
		return content
	}

	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return content
	}

	var result strings.Builder
	for token := iterator(); token != chroma.EOF; token = iterator() {
		style := h.style.Get(token.Type)
		if !style.Colour.IsSet() {
			result.WriteString(token.Value)
			continue
		}

		styled := lipgloss.NewStyle().Foreground(lipgloss.Color(style.Colour.String()))
		if style.Bold == chroma.Yes {
			styled = styled.Bold(true)
		}
		if style.Italic == chroma.Yes {
			styled = styled.Italic(true)
		}
		// Render per line so styles do not span newlines
		lines := strings.Split(token.Value, "\n")
		for i, line := range lines {
			if i > 0 {
				result.WriteString("\n")
			}
			if line != "" {
				result.WriteString(styled.Render(line))
			}
		}
	}

	return result.String()
}

// getLexerForFile returns the lexer for a filename. Presets are JSON with
// comments, which the JSON lexer accepts.
func getLexerForFile(filename string) chroma.Lexer {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jsonc", ".json":
		return lexers.Get("json")
	case ".yaml", ".yml":
		return lexers.Get("yaml")
	}
	return lexers.Match(filename)
}
