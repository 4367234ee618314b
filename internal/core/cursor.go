// internal/core/cursor.go
package core

import (
	"github.com/lorikeet/reef/internal/event"
	"github.com/rivo/uniseg"
)

// MoveCursor shifts the cursor by the given deltas. The candidate line and
// column are floored at zero; when the candidate line is out of bounds the
// cursor does not move at all, on either axis. Clamping to the nearest line
// would be the common editor behavior, but the no-move policy is the
// documented contract here and callers rely on it being observable.
func (e *Editor) MoveCursor(lineDelta, colDelta int) {
	targetLine := e.Cursor.Line + lineDelta
	targetCol := e.Cursor.Col + colDelta
	if targetLine < 0 {
		targetLine = 0
	}
	if targetCol < 0 {
		targetCol = 0
	}

	if targetLine >= e.buffer.LineCount() {
		return
	}

	maxCol := e.buffer.LineRuneCount(targetLine)
	if targetCol > maxCol {
		targetCol = maxCol
	}

	e.Cursor.Line = targetLine
	e.Cursor.Col = targetCol

	if e.selecting {
		e.selectionEnd = e.Cursor
	}

	e.followScrollUp()

	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: e.Cursor})
	}
}

// ClampCursor repositions the cursor to the given line and column, clamping
// the line into the buffer and the column onto the target line. Out-of-range
// inputs are silently absorbed; there is no error path.
func (e *Editor) ClampCursor(line, col int) {
	if line < 0 {
		line = 0
	}
	if last := e.buffer.LineCount() - 1; line > last {
		line = last
	}
	if col < 0 {
		col = 0
	}
	if maxCol := e.buffer.LineRuneCount(line); col > maxCol {
		col = maxCol
	}
	e.Cursor.Line = line
	e.Cursor.Col = col
	e.followScrollUp()
}

// followScrollUp pulls the scroll offset up to the cursor when the cursor
// moved above the visible window. The converse direction is intentionally
// not handled: downward movement past the viewport leaves the offset alone.
// This asymmetry is a documented limitation, kept observable rather than
// silently corrected.
func (e *Editor) followScrollUp() {
	if e.Cursor.Line < e.ScrollOffset {
		e.ScrollOffset = e.Cursor.Line
	}
}

// Home moves the cursor to column 0 of the current line.
func (e *Editor) Home() {
	e.MoveCursor(0, -e.Cursor.Col)
}

// End moves the cursor past the last rune of the current line.
func (e *Editor) End() {
	maxCol := e.buffer.LineRuneCount(e.Cursor.Line)
	e.MoveCursor(0, maxCol-e.Cursor.Col)
}

// VisualColumn computes the on-screen cell column for a rune index within a
// line, accounting for wide characters and grapheme clusters.
func VisualColumn(line []byte, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	width := 0
	runesSeen := 0
	gr := uniseg.NewGraphemes(string(line))
	for gr.Next() {
		if runesSeen >= runeIndex {
			break
		}
		width += gr.Width()
		runesSeen += len(gr.Runes())
	}
	return width
}
