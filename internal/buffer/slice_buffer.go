// internal/buffer/slice_buffer.go
package buffer

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/lorikeet/reef/internal/types"
)

// SliceBuffer stores the file as a slice of lines without trailing newlines.
type SliceBuffer struct {
	lines    [][]byte
	filePath string
	modified bool
}

// NewSliceBuffer creates an empty SliceBuffer holding one empty line.
func NewSliceBuffer() *SliceBuffer {
	return &SliceBuffer{
		lines: [][]byte{[]byte("")},
	}
}

// Load reads a file into the buffer, replacing existing content. A trailing
// newline in the file does not produce an extra empty final line. On error the
// buffer content is left untouched.
func (sb *SliceBuffer) Load(filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file '%s': %w", filePath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	newLines := [][]byte{}
	for scanner.Scan() {
		line := scanner.Bytes()
		lineCopy := make([]byte, len(line))
		copy(lineCopy, line)
		newLines = append(newLines, lineCopy)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading file '%s': %w", filePath, err)
	}
	if len(newLines) == 0 {
		newLines = append(newLines, []byte(""))
	}
	sb.lines = newLines
	sb.filePath = filePath
	sb.modified = false
	return nil
}

func (sb *SliceBuffer) Lines() [][]byte {
	return sb.lines
}

func (sb *SliceBuffer) LineCount() int {
	return len(sb.lines)
}

func (sb *SliceBuffer) Line(index int) ([]byte, error) {
	if index < 0 || index >= len(sb.lines) {
		return nil, fmt.Errorf("line index %d out of bounds (0-%d)", index, len(sb.lines)-1)
	}
	return sb.lines[index], nil
}

// LineRuneCount returns the rune length of a line, 0 for out-of-range indices.
func (sb *SliceBuffer) LineRuneCount(index int) int {
	if index < 0 || index >= len(sb.lines) {
		return 0
	}
	return utf8.RuneCount(sb.lines[index])
}

// Bytes serializes the buffer: lines joined by a single newline, no trailing
// newline appended.
func (sb *SliceBuffer) Bytes() []byte {
	var buf bytes.Buffer
	for i, line := range sb.lines {
		buf.Write(line)
		if i < len(sb.lines)-1 {
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes()
}

// Save writes the buffer content to the stored filePath, replacing prior
// content entirely. A non-empty filePath argument overrides the stored path.
// The modified flag is cleared only after a successful write.
func (sb *SliceBuffer) Save(filePath string) error {
	path := sb.filePath
	if filePath != "" {
		path = filePath
	}
	if path == "" {
		return errors.New("no file path specified for saving")
	}

	if err := os.WriteFile(path, sb.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}

	sb.filePath = path
	sb.modified = false
	return nil
}

func (sb *SliceBuffer) IsModified() bool {
	return sb.modified
}

func (sb *SliceBuffer) SetModified(m bool) {
	sb.modified = m
}

func (sb *SliceBuffer) FilePath() string {
	return sb.filePath
}

// --- Editing primitives ---

// InsertRune inserts r into the line at pos. A line index past the end
// appends an empty line first rather than failing. The column is clamped to
// the line's rune count. Line count never changes for r != '\n'.
func (sb *SliceBuffer) InsertRune(pos types.Position, r rune) error {
	if pos.Line < 0 {
		return fmt.Errorf("negative line index %d", pos.Line)
	}
	if pos.Line >= len(sb.lines) {
		sb.lines = append(sb.lines, []byte(""))
		pos.Line = len(sb.lines) - 1
	}

	line := sb.lines[pos.Line]
	offset := runeOffset(line, pos.Col)

	runeBytes := make([]byte, utf8.RuneLen(r))
	utf8.EncodeRune(runeBytes, r)

	newLine := make([]byte, 0, len(line)+len(runeBytes))
	newLine = append(newLine, line[:offset]...)
	newLine = append(newLine, runeBytes...)
	newLine = append(newLine, line[offset:]...)
	sb.lines[pos.Line] = newLine

	sb.modified = true
	return nil
}

// SplitLine splits the line at pos into a head kept in place and a tail
// inserted immediately after. Line count increases by exactly one.
func (sb *SliceBuffer) SplitLine(pos types.Position) error {
	if pos.Line < 0 {
		return fmt.Errorf("negative line index %d", pos.Line)
	}
	if pos.Line >= len(sb.lines) {
		sb.lines = append(sb.lines, []byte(""))
		pos.Line = len(sb.lines) - 1
	}

	line := sb.lines[pos.Line]
	offset := runeOffset(line, pos.Col)

	head := make([]byte, offset)
	copy(head, line[:offset])
	tail := make([]byte, len(line)-offset)
	copy(tail, line[offset:])

	sb.lines[pos.Line] = head
	sb.lines = append(sb.lines[:pos.Line+1], append([][]byte{tail}, sb.lines[pos.Line+1:]...)...)

	sb.modified = true
	return nil
}

// MergeLineUp appends the given line onto the end of the previous line and
// removes it, returning the previous line's pre-merge rune count so the
// caller can place the cursor at the join point.
func (sb *SliceBuffer) MergeLineUp(line int) (int, error) {
	if line <= 0 || line >= len(sb.lines) {
		return 0, fmt.Errorf("cannot merge line %d of %d", line, len(sb.lines))
	}

	prev := sb.lines[line-1]
	prevRunes := utf8.RuneCount(prev)

	merged := make([]byte, 0, len(prev)+len(sb.lines[line]))
	merged = append(merged, prev...)
	merged = append(merged, sb.lines[line]...)
	sb.lines[line-1] = merged
	sb.lines = append(sb.lines[:line], sb.lines[line+1:]...)

	sb.modified = true
	return prevRunes, nil
}

// DeleteRuneBefore removes the rune immediately before pos within its line.
// Deleting at column 0 is the caller's line-merge case, not handled here.
func (sb *SliceBuffer) DeleteRuneBefore(pos types.Position) error {
	if pos.Line < 0 || pos.Line >= len(sb.lines) {
		return fmt.Errorf("line index %d out of bounds", pos.Line)
	}
	if pos.Col <= 0 {
		return errors.New("no rune before column 0")
	}

	line := sb.lines[pos.Line]
	start := runeOffset(line, pos.Col-1)
	end := runeOffset(line, pos.Col)
	if start == end {
		return errors.New("column past end of line")
	}

	sb.lines[pos.Line] = append(line[:start], line[end:]...)
	sb.modified = true
	return nil
}

// runeOffset converts a rune column to a byte offset, clamping to line end.
func runeOffset(line []byte, col int) int {
	if col <= 0 {
		return 0
	}
	offset := 0
	count := 0
	for offset < len(line) && count < col {
		_, size := utf8.DecodeRune(line[offset:])
		offset += size
		count++
	}
	return offset
}

// Ensure SliceBuffer satisfies the Buffer interface.
var _ Buffer = (*SliceBuffer)(nil)
