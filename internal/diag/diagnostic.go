package diag

import (
	"diec/internal/source"
)

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	File     source.FileID
	Line     int
	Col      int
	Notes    []Note
}

// FromError converts a phase error into a Diagnostic for file.
// Errors that are not *Error become UnknownCode diagnostics without position.
func FromError(file source.FileID, err error) Diagnostic {
	if de, ok := AsError(err); ok {
		return Diagnostic{
			Severity: SevError,
			Code:     de.Code,
			Message:  de.Message,
			File:     file,
			Line:     de.Line,
			Col:      de.Col,
			Notes:    de.Notes,
		}
	}
	return Diagnostic{
		Severity: SevError,
		Code:     UnknownCode,
		Message:  err.Error(),
		File:     file,
	}
}
