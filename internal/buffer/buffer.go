// internal/buffer/buffer.go
package buffer

import "github.com/lorikeet/reef/internal/types"

// Buffer defines line-oriented storage for one open file. Implementations
// always hold at least one line; an empty buffer is a single empty line.
type Buffer interface {
	Load(filePath string) error
	Lines() [][]byte
	Line(index int) ([]byte, error)
	LineCount() int
	LineRuneCount(index int) int

	// Editing primitives. Each marks the buffer modified only when content
	// actually changes; cursor bookkeeping belongs to the caller.
	InsertRune(pos types.Position, r rune) error
	SplitLine(pos types.Position) error
	MergeLineUp(line int) (prevLineRunes int, err error)
	DeleteRuneBefore(pos types.Position) error

	Save(filePath string) error
	Bytes() []byte
	FilePath() string
	IsModified() bool
	SetModified(bool)
}
