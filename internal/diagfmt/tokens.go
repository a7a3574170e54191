package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"diec/internal/token"
)

const tokenTextWidth = 32

var (
	tokLineStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	tokKindStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	tokKeywordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	tokLitStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// TokenOutput is the JSON form of a token.
type TokenOutput struct {
	Kind  string `json:"kind"`
	Text  string `json:"text"`
	Line  int    `json:"line"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

// FormatTokensPretty prints one token per line: line, kind, quoted text.
// Styles only apply when color is set.
func FormatTokensPretty(w io.Writer, tokens []token.Token, color bool) error {
	kindWidth := 0
	for _, t := range tokens {
		kindWidth = max(kindWidth, len(t.Kind.String()))
	}
	lineWidth := 1
	if n := len(tokens); n > 0 {
		lineWidth = len(strconv.Itoa(tokens[n-1].Line))
	}
	for _, t := range tokens {
		line := fmt.Sprintf("%*d", lineWidth, t.Line)
		kind := t.Kind.String() + strings.Repeat(" ", kindWidth-len(t.Kind.String()))
		text := runewidth.Truncate(strconv.Quote(t.Text), tokenTextWidth, "…")
		if color {
			line = tokLineStyle.Render(line)
			switch {
			case t.IsKeyword():
				kind = tokKeywordStyle.Render(kind)
			case t.IsLiteral():
				kind = tokLitStyle.Render(kind)
			default:
				kind = tokKindStyle.Render(kind)
			}
		}
		if _, err := fmt.Fprintf(w, "%s  %s  %s\n", line, kind, text); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON writes the tokens as a JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	out := make([]TokenOutput, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, TokenOutput{
			Kind:  t.Kind.String(),
			Text:  t.Text,
			Line:  t.Line,
			Start: t.Span.Start,
			End:   t.Span.End,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
