// internal/core/selection.go
package core

import (
	"bytes"
	"unicode/utf8"

	"github.com/lorikeet/reef/internal/types"
)

// StartSelection anchors a selection at the current cursor position.
// Subsequent cursor moves extend it.
func (e *Editor) StartSelection() {
	e.selecting = true
	e.selectionStart = e.Cursor
	e.selectionEnd = e.Cursor
}

// ClearSelection drops any active selection.
func (e *Editor) ClearSelection() {
	e.selecting = false
	e.selectionStart = types.Position{Line: -1, Col: -1}
	e.selectionEnd = types.Position{Line: -1, Col: -1}
}

// HasSelection reports whether a non-empty selection is active.
func (e *Editor) HasSelection() bool {
	return e.selecting && e.selectionStart != e.selectionEnd
}

// Selection returns the active selection in document order.
func (e *Editor) Selection() (types.Range, bool) {
	if !e.HasSelection() {
		return types.Range{}, false
	}
	r := types.Range{Start: e.selectionStart, End: e.selectionEnd}
	return r.Normalized(), true
}

// SelectedText extracts the selected content, lines joined by newlines.
func (e *Editor) SelectedText() []byte {
	sel, ok := e.Selection()
	if !ok {
		return nil
	}

	if sel.Start.Line == sel.End.Line {
		line, err := e.buffer.Line(sel.Start.Line)
		if err != nil {
			return nil
		}
		return sliceRunes(line, sel.Start.Col, sel.End.Col)
	}

	var out bytes.Buffer
	for ln := sel.Start.Line; ln <= sel.End.Line; ln++ {
		line, err := e.buffer.Line(ln)
		if err != nil {
			break
		}
		switch ln {
		case sel.Start.Line:
			out.Write(sliceRunes(line, sel.Start.Col, -1))
		case sel.End.Line:
			out.WriteByte('\n')
			out.Write(sliceRunes(line, 0, sel.End.Col))
		default:
			out.WriteByte('\n')
			out.Write(line)
		}
	}
	return out.Bytes()
}

// sliceRunes returns the byte span of line covering rune columns [from, to).
// A negative to means "through end of line".
func sliceRunes(line []byte, from, to int) []byte {
	start := runeByteOffset(line, from)
	end := len(line)
	if to >= 0 {
		end = runeByteOffset(line, to)
	}
	if start > end {
		start = end
	}
	span := make([]byte, end-start)
	copy(span, line[start:end])
	return span
}

func runeByteOffset(line []byte, col int) int {
	if col <= 0 {
		return 0
	}
	offset := 0
	for i := 0; i < col && offset < len(line); i++ {
		_, size := utf8.DecodeRune(line[offset:])
		offset += size
	}
	return offset
}
