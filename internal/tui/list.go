// internal/tui/list.go
package tui

import (
	"fmt"

	"github.com/lorikeet/reef/internal/fsnav"
	"github.com/lorikeet/reef/internal/textutil"
	"github.com/lorikeet/reef/internal/theme"
)

// DrawListing renders the browser view: a header row with the current path
// and sort key, then one row per visible entry. selected is highlighted;
// scroll is the index of the first entry row shown.
func DrawListing(t *TUI, listing *fsnav.Listing, selected, scroll int, activeTheme *theme.Theme) {
	defaultStyle := activeTheme.GetStyle("Default")
	headerStyle := activeTheme.GetStyle("Header")
	dirStyle := activeTheme.GetStyle("Directory")
	hiddenStyle := activeTheme.GetStyle("Hidden")
	sizeStyle := activeTheme.GetStyle("Size")
	selectionStyle := activeTheme.GetStyle("Selection")

	width, height := t.Size()
	viewHeight := height - 1 // status bar
	if viewHeight <= 0 || width <= 0 {
		return
	}

	FillRow(t, 0, width, defaultStyle)
	header := listing.CurrentPath
	if listing.Filter != "" {
		header += fmt.Sprintf("  [/%s]", listing.Filter)
	}
	header += fmt.Sprintf("  (%s)", listing.SortKey)
	DrawText(t, 0, 0, width, headerStyle, textutil.ClipLine(header, width))

	const sizeColWidth = 8
	listHeight := viewHeight - 1
	for row := 0; row < listHeight; row++ {
		y := row + 1
		FillRow(t, y, width, defaultStyle)

		idx := scroll + row
		if idx < 0 || idx >= len(listing.Entries) {
			continue
		}
		entry := listing.Entries[idx]

		style := defaultStyle
		switch {
		case entry.IsDir:
			style = dirStyle
		case entry.IsHidden:
			style = hiddenStyle
		}
		if idx == selected {
			style = selectionStyle
			FillRow(t, y, width, style)
		}

		name := entry.Name
		if entry.IsDir {
			name += "/"
		}
		nameWidth := width - sizeColWidth - 2
		if nameWidth < 1 {
			nameWidth = width
		}
		DrawText(t, 1, y, nameWidth, style, textutil.ClipLine(name, nameWidth))

		if !entry.IsDir && width > sizeColWidth+2 {
			sz := textutil.HumanSize(entry.Size)
			colStyle := sizeStyle
			if idx == selected {
				colStyle = style
			}
			DrawText(t, width-len(sz)-1, y, len(sz)+1, colStyle, sz)
		}
	}

	if len(listing.Entries) == 0 {
		DrawText(t, 1, 1, width-1, hiddenStyle, "(empty)")
	}
}

// DrawTextBlock renders pre-split lines into the region above the status bar,
// starting at the given scroll line. A non-empty title occupies the first
// row. ANSI escapes are stripped so external tool output draws cleanly.
func DrawTextBlock(t *TUI, title string, lines []string, scroll int, activeTheme *theme.Theme) {
	defaultStyle := activeTheme.GetStyle("Default")
	headerStyle := activeTheme.GetStyle("Header")

	width, height := t.Size()
	viewHeight := height - 1
	if viewHeight <= 0 || width <= 0 {
		return
	}

	top := 0
	if title != "" {
		FillRow(t, 0, width, defaultStyle)
		DrawText(t, 0, 0, width, headerStyle, textutil.ClipLine(title, width))
		top = 1
	}

	for row := top; row < viewHeight; row++ {
		FillRow(t, row, width, defaultStyle)
		idx := scroll + row - top
		if idx < 0 || idx >= len(lines) {
			continue
		}
		line := textutil.StripANSI(lines[idx])
		line = textutil.ExpandTabs(line, 4)
		line = textutil.StripControlRunes(line)
		DrawText(t, 0, row, width, defaultStyle, line)
	}
}
