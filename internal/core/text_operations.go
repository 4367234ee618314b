// internal/core/text_operations.go
package core

import (
	"fmt"

	"github.com/lorikeet/reef/internal/event"
)

// InsertRune inserts a printable rune at the cursor and advances the column
// by one. The line count never changes; newline insertion goes through
// InsertNewLine.
func (e *Editor) InsertRune(r rune) error {
	e.ClearSelection()

	// A stale column past the line end settles on the line end first.
	if maxCol := e.buffer.LineRuneCount(e.Cursor.Line); e.Cursor.Col > maxCol {
		e.Cursor.Col = maxCol
	}

	if err := e.buffer.InsertRune(e.Cursor, r); err != nil {
		return fmt.Errorf("insert failed: %w", err)
	}
	if e.Cursor.Line >= e.buffer.LineCount() {
		e.Cursor.Line = e.buffer.LineCount() - 1
	}
	e.Cursor.Col++

	e.followScrollUp()
	e.dispatchModified()
	return nil
}

// InsertNewLine splits the current line at the cursor; the cursor moves to
// the start of the tail line. Line count increases by exactly one.
func (e *Editor) InsertNewLine() error {
	e.ClearSelection()

	if maxCol := e.buffer.LineRuneCount(e.Cursor.Line); e.Cursor.Col > maxCol {
		e.Cursor.Col = maxCol
	}

	if err := e.buffer.SplitLine(e.Cursor); err != nil {
		return fmt.Errorf("newline failed: %w", err)
	}
	if e.Cursor.Line >= e.buffer.LineCount()-1 {
		e.Cursor.Line = e.buffer.LineCount() - 2
	}
	e.Cursor.Line++
	e.Cursor.Col = 0

	e.followScrollUp()
	e.dispatchModified()
	return nil
}

// DeleteBackward implements backspace. Mid-line it removes the rune before
// the cursor; at column 0 it merges the current line into the previous one
// and places the cursor at the join point. At the buffer origin it is a true
// no-op and deliberately does not mark the buffer modified.
func (e *Editor) DeleteBackward() error {
	e.ClearSelection()

	if maxCol := e.buffer.LineRuneCount(e.Cursor.Line); e.Cursor.Col > maxCol {
		e.Cursor.Col = maxCol
	}

	switch {
	case e.Cursor.Col > 0:
		if err := e.buffer.DeleteRuneBefore(e.Cursor); err != nil {
			return fmt.Errorf("delete failed: %w", err)
		}
		e.Cursor.Col--

	case e.Cursor.Line > 0:
		joinCol, err := e.buffer.MergeLineUp(e.Cursor.Line)
		if err != nil {
			return fmt.Errorf("line merge failed: %w", err)
		}
		e.Cursor.Line--
		e.Cursor.Col = joinCol

	default:
		return nil
	}

	e.followScrollUp()
	e.dispatchModified()
	return nil
}

// InsertText inserts a multi-line string at the cursor, rune by rune through
// the primitive operations so cursor and scroll bookkeeping stay consistent.
func (e *Editor) InsertText(text []byte) error {
	for _, r := range string(text) {
		var err error
		if r == '\n' {
			err = e.InsertNewLine()
		} else {
			err = e.InsertRune(r)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (e *Editor) dispatchModified() {
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeBufferModified, event.BufferModifiedData{Cursor: e.Cursor})
	}
}
