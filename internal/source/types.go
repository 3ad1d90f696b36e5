package source

import "strings"

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, repl).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM: a leading UTF-8 BOM was stripped before lexing.
	FileHadBOM
	// FileNormalizedCRLF: CRLF pairs were rewritten to LF before lexing, so
	// string literals spanning lines hold "\n" only.
	FileNormalizedCRLF
)

// Has reports whether all bits of flag are set.
func (f FileFlags) Has(flag FileFlags) bool { return f&flag == flag }

// Normalized reports whether Content differs from the bytes on disk.
func (f FileFlags) Normalized() bool { return f&(FileHadBOM|FileNormalizedCRLF) != 0 }

// String lists the set flags, e.g. "bom,crlf".
func (f FileFlags) String() string {
	var names []string
	if f.Has(FileVirtual) {
		names = append(names, "virtual")
	}
	if f.Has(FileHadBOM) {
		names = append(names, "bom")
	}
	if f.Has(FileNormalizedCRLF) {
		names = append(names, "crlf")
	}
	return strings.Join(names, ",")
}

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // byte offsets of every '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
// Col counts codepoints, not bytes.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}
