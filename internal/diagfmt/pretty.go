package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"diec/internal/diag"
	"diec/internal/source"
)

type palette struct {
	sev    map[diag.Severity]*color.Color
	code   *color.Color
	gutter *color.Color
	caret  *color.Color
	note   *color.Color
}

func newPalette(on bool) palette {
	p := palette{
		sev: map[diag.Severity]*color.Color{
			diag.SevError:   color.New(color.FgRed, color.Bold),
			diag.SevWarning: color.New(color.FgYellow, color.Bold),
			diag.SevInfo:    color.New(color.FgCyan, color.Bold),
		},
		code:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
		note:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.code, p.gutter, p.caret, p.note} {
		setColor(c, on)
	}
	for _, c := range p.sev {
		setColor(c, on)
	}
	return p
}

func setColor(c *color.Color, on bool) {
	if on {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//	   |
//	 3 |   write 1
//	   |   ^~~~~
//
// затем Notes в том же формате.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	if bag == nil {
		return nil
	}
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		if err := prettyOne(w, d, fs, opts, pal); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) error {
	file := fileOf(fs, d)
	path := "<unknown>"
	if file != nil {
		path = formatPath(file.Path, opts.PathMode, opts.BaseDir)
	}
	sev := pal.sev[d.Severity]
	if sev == nil {
		sev = pal.code
	}
	var loc string
	switch {
	case d.Line > 0 && d.Col > 0:
		loc = fmt.Sprintf("%s:%d:%d", path, d.Line, d.Col)
	case d.Line > 0:
		loc = fmt.Sprintf("%s:%d", path, d.Line)
	default:
		loc = path
	}
	if _, err := fmt.Fprintf(w, "%s: %s %s: %s\n", loc, sev.Sprint(d.Severity), pal.code.Sprint(d.Code.ID()), d.Message); err != nil {
		return err
	}
	if err := excerpt(w, file, d.Line, d.Col, opts, pal); err != nil {
		return err
	}
	if !opts.ShowNotes {
		return nil
	}
	for _, n := range d.Notes {
		if _, err := fmt.Fprintf(w, "  %s %s:%d: %s\n", pal.note.Sprint("note:"), path, n.Line, n.Msg); err != nil {
			return err
		}
		if err := excerpt(w, file, n.Line, 0, opts, pal); err != nil {
			return err
		}
	}
	return nil
}

// excerpt prints the source line with a caret under col, or under the first
// non-blank text of the line when col is unknown.
func excerpt(w io.Writer, file *source.File, line, col int, opts PrettyOpts, pal palette) error {
	if file == nil || line <= 0 || line > file.LineCount() {
		return nil
	}
	tab := opts.TabWidth
	if tab <= 0 {
		tab = 4
	}
	text := expandTabs(file.GetLine(uint32(line)), tab) //nolint:gosec // line > 0 checked above
	raw := file.GetLine(uint32(line))                   //nolint:gosec // line > 0 checked above
	num := strconv.Itoa(line)
	pad := strings.Repeat(" ", len(num))

	start, length := caretRange(raw, col, tab)
	marker := strings.Repeat(" ", start) + "^" + strings.Repeat("~", max(length-1, 0))

	_, err := fmt.Fprintf(w, "%s %s\n%s %s %s\n%s %s %s\n",
		pad, pal.gutter.Sprint("|"),
		pal.gutter.Sprint(num), pal.gutter.Sprint("|"), text,
		pad, pal.gutter.Sprint("|"), pal.caret.Sprint(marker))
	return err
}

// caretRange returns the display column and width of the marker.
func caretRange(raw string, col, tab int) (start, length int) {
	from := 0
	if col > 0 {
		from = min(col-1, len(raw))
	} else {
		from = len(raw) - len(strings.TrimLeft(raw, " \t"))
	}
	start = runewidth.StringWidth(expandTabs(raw[:from], tab))
	rest := raw[from:]
	word := rest
	if col > 0 {
		if i := strings.IndexAny(rest, " \t;()[]{},"); i > 0 {
			word = rest[:i]
		} else if i == 0 {
			word = rest[:1]
		}
	} else {
		word = strings.TrimRight(rest, " \t")
	}
	length = max(runewidth.StringWidth(word), 1)
	return start, length
}

func expandTabs(s string, width int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var sb strings.Builder
	colN := 0
	for _, r := range s {
		if r == '\t' {
			n := width - colN%width
			sb.WriteString(strings.Repeat(" ", n))
			colN += n
			continue
		}
		sb.WriteRune(r)
		colN += runewidth.RuneWidth(r)
	}
	return sb.String()
}
