package source

import (
	"path/filepath"
	"strings"
)

// SourceID identifies a source file. Spans carry it so that a node can be
// traced back to the file it was parsed from.
type SourceID int

// SourceFile represents a source file with its content and metadata.
type SourceFile struct {
	ID      SourceID
	Name    string   // Display name (e.g., "script.ts", "<stdin>", "<eval>")
	Path    string   // Full file path (empty for REPL/eval)
	Content string   // The source code content
	lines   []string // Cached split lines (lazy initialization)
}

var nextSourceID SourceID

// NewSourceFile creates a new source file with a fresh SourceID.
func NewSourceFile(name, path, content string) *SourceFile {
	nextSourceID++
	return &SourceFile{
		ID:      nextSourceID,
		Name:    name,
		Path:    path,
		Content: content,
	}
}

// NewEvalSource creates a source file for eval/REPL input.
func NewEvalSource(content string) *SourceFile {
	return NewSourceFile("<eval>", "", content)
}

// NewStdinSource creates a source file for stdin input.
func NewStdinSource(content string) *SourceFile {
	return NewSourceFile("<stdin>", "", content)
}

// FromFile creates a SourceFile from a file path and content.
func FromFile(filePath, content string) *SourceFile {
	return NewSourceFile(filepath.Base(filePath), filePath, content)
}

// Lines returns the source split into lines (cached).
func (sf *SourceFile) Lines() []string {
	if sf.lines == nil {
		sf.lines = strings.Split(sf.Content, "\n")
	}
	return sf.lines
}

// LineCol converts a 0-based byte offset into 1-based line and column
// numbers for diagnostics.
func (sf *SourceFile) LineCol(offset int) (line, col int) {
	line, col = 1, 1
	for i := 0; i < offset && i < len(sf.Content); i++ {
		if sf.Content[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// DisplayPath returns the best path for display (prefers Path, falls back to Name).
func (sf *SourceFile) DisplayPath() string {
	if sf.Path != "" {
		return sf.Path
	}
	return sf.Name
}

// IsFile returns true if this represents an actual file (has a path).
func (sf *SourceFile) IsFile() bool {
	return sf.Path != ""
}
