package version

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
)

// Build metadata; override with -ldflags "-X diec/internal/version.Version=...".
var (
	Version   = "0.1.0-dev"
	GitCommit = ""
	BuildDate = ""
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
)

// Colored renders Version with each numeric part highlighted. Anything
// that does not look like a semantic version is returned as is.
func Colored() string {
	var major, minor, patch int
	var rest string
	n, _ := fmt.Sscanf(Version, "%d.%d.%d%s", &major, &minor, &patch, &rest)
	if n < 3 {
		return Version
	}
	return majorColor.Sprint(major) + "." + minorColor.Sprint(minor) + "." + patchColor.Sprint(patch) + rest
}

// String is the full version line printed by "diec version".
func String() string {
	s := "diec " + Colored()
	if GitCommit != "" {
		s += " (" + GitCommit + ")"
	}
	if BuildDate != "" {
		s += " built " + BuildDate
	}
	return s + " " + runtime.Version()
}
