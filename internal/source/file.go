package source

import "fmt"

// FileID is the index of a file inside its FileSet.
type FileID uint32

// FileFlags records how a file's bytes were obtained and cleaned up.
type FileFlags uint8

const (
	FileVirtual        FileFlags = 1 << iota // из памяти: тесты, stdin
	FileHadBOM                               // leading UTF-8 BOM was stripped
	FileNormalizedCRLF                       // \r\n rewritten to \n
)

// File is one die source with its newline index and content hash. The
// hash feeds the build cache key.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	// LineIdx holds the byte offset of every '\n'.
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a 1-based position.
type LineCol struct {
	Line uint32
	Col  uint32
}

// Span is a half-open byte range [Start, End) in one file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}
