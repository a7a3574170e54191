package diagfmt

import (
	"encoding/json"
	"io"

	"diec/internal/diag"
	"diec/internal/source"
)

// LocationJSON is the JSON form of a source location.
type LocationJSON struct {
	File string `json:"file"`
	Line int    `json:"line"`
	Col  int    `json:"col,omitempty"`
}

// NoteJSON is the JSON form of a diagnostic note.
type NoteJSON struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// DiagnosticJSON is the JSON form of a single diagnostic.
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Title    string       `json:"title"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
}

// DiagnosticsOutput is the top-level JSON document.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// BuildDiagnosticsOutput converts the bag into its JSON document.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	out := DiagnosticsOutput{Diagnostics: []DiagnosticJSON{}}
	if bag == nil {
		return out
	}
	for _, d := range bag.Items() {
		if opts.Max > 0 && len(out.Diagnostics) >= opts.Max {
			break
		}
		path := "<unknown>"
		if f := fileOf(fs, d); f != nil {
			path = formatPath(f.Path, opts.PathMode, opts.BaseDir)
		}
		dj := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Title:    d.Code.Title(),
			Message:  d.Message,
			Location: LocationJSON{File: path, Line: d.Line, Col: d.Col},
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				dj.Notes = append(dj.Notes, NoteJSON{Line: n.Line, Message: n.Msg})
			}
		}
		out.Diagnostics = append(out.Diagnostics, dj)
	}
	out.Count = len(out.Diagnostics)
	return out
}

// JSON writes the diagnostics as an indented JSON document.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildDiagnosticsOutput(bag, fs, opts))
}
