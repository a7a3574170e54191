package diag

// Severity orders diagnostics; the compiler itself only reports SevError,
// the driver adds warnings for cache and output problems.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

var severityNames = [...]string{SevInfo: "INFO", SevWarning: "WARNING", SevError: "ERROR"}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}
