package diag

import (
	"fmt"
	"strings"

	"diec/internal/source"
)

// FormatShort renders diagnostics one per line as
// "<path>:<line>:<col>: <SEV> <CODE>: <message>", followed by indented notes
// when includeNotes is set. The bag should be sorted beforehand.
func FormatShort(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if len(diags) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, d := range diags {
		path := "<unknown>"
		if fs != nil {
			if f := fs.Get(d.File); f != nil {
				path = f.Path
			}
		}
		fmt.Fprintf(&sb, "%s:%d:%d: %s %s: %s\n", path, d.Line, d.Col, d.Severity, d.Code.ID(), d.Message)
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			fmt.Fprintf(&sb, "  note: %s:%d: %s\n", path, n.Line, n.Msg)
		}
	}
	return sb.String()
}
