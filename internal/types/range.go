// internal/types/range.go
package types

// Range is a span of buffer content between two positions. Start and End are
// anchors in the order they were placed; use Normalized to get document order.
type Range struct {
	Start Position
	End   Position
}

// Normalized returns the range with Start <= End in document order.
func (r Range) Normalized() Range {
	if r.End.Before(r.Start) {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

// IsEmpty reports whether the range covers no content.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}
