// internal/types/position.go
package types

// Position is a location within a buffer.
// Line is the 0-based line index.
// Col is the 0-based column (rune) index within the line; it may equal the
// line's rune count, meaning "insertion point after the last rune".
type Position struct {
	Line int
	Col  int // Rune index
}

// Before reports whether p is strictly before other in document order.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}
