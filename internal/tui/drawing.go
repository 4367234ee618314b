// internal/tui/drawing.go
package tui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/lorikeet/reef/internal/core"
	"github.com/lorikeet/reef/internal/logger"
	"github.com/lorikeet/reef/internal/theme"
	"github.com/lorikeet/reef/internal/types"
)

// DrawText writes text at (x, y) clipped to maxWidth cells, advancing by
// grapheme cluster widths. It returns the x position after the last cell
// drawn.
func DrawText(t *TUI, x, y, maxWidth int, style tcell.Style, text string) int {
	if maxWidth <= 0 {
		return x
	}
	currentX := x
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > x+maxWidth {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			t.screen.SetContent(currentX, y, runes[0], runes[1:], style)
		}
		currentX += clusterWidth
	}
	return currentX
}

// FillRow paints one screen row with spaces in the given style.
func FillRow(t *TUI, y, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, y, ' ', nil, style)
	}
}

// isPositionWithin checks if pos lies within [start, end). The end position is
// exclusive: a character at the exact end is not selected.
func isPositionWithin(pos, start, end types.Position) bool {
	if pos.Line < start.Line || pos.Line > end.Line {
		return false
	}
	if pos.Line == start.Line && pos.Col < start.Col {
		return false
	}
	if pos.Line == end.Line && pos.Col >= end.Col {
		return false
	}
	return true
}

// gutterWidth computes the line-number gutter width for a buffer, or 0 when
// the screen is too narrow to afford one.
func gutterWidth(lineCount, screenWidth int) int {
	if lineCount <= 0 {
		lineCount = 1
	}
	maxDigits := int(math.Log10(float64(lineCount))) + 1
	w := maxDigits + 1 // one space of padding
	if w >= screenWidth {
		return 0
	}
	return w
}

// DrawEditor draws the visible portion of the editor buffer into the region
// above the status bar, with a line-number gutter and selection highlighting.
func DrawEditor(t *TUI, editor *core.Editor, activeTheme *theme.Theme, tabWidth int) {
	defaultStyle := activeTheme.GetStyle("Default")
	lineNumStyle := activeTheme.GetStyle("LineNum")
	selectionStyle := activeTheme.GetStyle("Selection")

	width, height := t.Size()
	viewHeight := height - 1 // status bar occupies the last row
	if viewHeight <= 0 || width <= 0 {
		return
	}

	lines := editor.Buffer().Lines()
	viewY := editor.ScrollOffset
	sel, selectionActive := editor.Selection()

	gutter := gutterWidth(len(lines), width)
	maxDigits := gutter - 1

	for screenY := 0; screenY < viewHeight; screenY++ {
		bufferLine := screenY + viewY
		FillRow(t, screenY, width, defaultStyle)

		if bufferLine < 0 || bufferLine >= len(lines) {
			continue
		}

		if gutter > 0 {
			numStyle := lineNumStyle
			if editor.Cursor.Line == bufferLine {
				numStyle = lineNumStyle.Bold(true)
			}
			DrawText(t, 0, screenY, maxDigits, numStyle, fmt.Sprintf("%*d", maxDigits, bufferLine+1))
		}

		drawEditorLine(t, lines[bufferLine], bufferLine, screenY, gutter, width,
			defaultStyle, selectionStyle, sel, selectionActive, tabWidth)
	}
}

// drawEditorLine renders one buffer line into the text area right of the
// gutter, expanding tabs and applying the selection style per grapheme.
func drawEditorLine(t *TUI, line []byte, bufferLine, screenY, gutter, width int,
	defaultStyle, selectionStyle tcell.Style, sel types.Range, selectionActive bool, tabWidth int) {

	if tabWidth <= 0 {
		tabWidth = 4
	}

	screenX := gutter
	runeIndex := 0
	gr := uniseg.NewGraphemes(string(line))
	for gr.Next() {
		if screenX >= width {
			break
		}
		runes := gr.Runes()
		clusterWidth := gr.Width()

		style := defaultStyle
		if selectionActive {
			pos := types.Position{Line: bufferLine, Col: runeIndex}
			if isPositionWithin(pos, sel.Start, sel.End) {
				style = selectionStyle
			}
		}

		if runes[0] == '\t' {
			spaces := tabWidth - ((screenX - gutter) % tabWidth)
			for i := 0; i < spaces && screenX < width; i++ {
				t.screen.SetContent(screenX, screenY, ' ', nil, style)
				screenX++
			}
		} else {
			t.screen.SetContent(screenX, screenY, runes[0], runes[1:], style)
			for cw := 1; cw < clusterWidth && screenX+cw < width; cw++ {
				t.screen.SetContent(screenX+cw, screenY, ' ', nil, style)
			}
			screenX += clusterWidth
		}
		runeIndex += len(runes)
	}
}

// DrawEditorCursor positions the terminal cursor at the editor's cursor,
// hiding it when scrolled out of the visible region.
func DrawEditorCursor(t *TUI, editor *core.Editor) {
	width, height := t.Size()
	viewHeight := height - 1
	if viewHeight <= 0 || width <= 0 {
		t.screen.HideCursor()
		return
	}

	gutter := gutterWidth(editor.Buffer().LineCount(), width)

	cursorVisualCol := 0
	if line, err := editor.Buffer().Line(editor.Cursor.Line); err == nil {
		cursorVisualCol = core.VisualColumn(line, editor.Cursor.Col)
	} else {
		logger.DebugTagf("tui", "cursor line %d unavailable: %v", editor.Cursor.Line, err)
	}

	screenX := cursorVisualCol + gutter
	screenY := editor.Cursor.Line - editor.ScrollOffset

	if screenX < gutter || screenX >= width || screenY < 0 || screenY >= viewHeight {
		t.screen.HideCursor()
		return
	}
	t.screen.ShowCursor(screenX, screenY)
}
