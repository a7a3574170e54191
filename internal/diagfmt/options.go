package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	PathModeAuto PathMode = iota
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	PathMode  PathMode
	BaseDir   string // for PathModeRelative
	ShowNotes bool
	// TabWidth expands tabs in source excerpts; 0 means 4.
	TabWidth int
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	PathMode     PathMode
	BaseDir      string
	Max          int // обрезка вывода, не Bag
	IncludeNotes bool
}
