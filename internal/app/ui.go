// internal/app/ui.go
package app

import (
	"fmt"

	"github.com/lorikeet/reef/internal/modehandler"
	"github.com/lorikeet/reef/internal/textutil"
	"github.com/lorikeet/reef/internal/tui"
)

// draw renders the current mode's view plus the status bar and flushes.
func (a *App) draw() {
	a.tuiManager.Clear()
	a.tuiManager.HideCursor()

	switch a.modeHandler.CurrentMode() {
	case modehandler.ModeBrowser, modehandler.ModeSearch:
		a.drawBrowser()
	case modehandler.ModePreview:
		a.drawViewer()
	case modehandler.ModeEditor:
		a.drawEditor()
	case modehandler.ModeGit:
		a.drawGit()
	}

	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	a.statusBar.Draw(screen, width, height)
	a.tuiManager.Show()
}

func (a *App) drawBrowser() {
	selected, scroll := a.modeHandler.BrowserState()
	tui.DrawListing(a.tuiManager, a.listing, selected, scroll, a.activeTheme)
	a.statusBar.SetItemInfo(fmt.Sprintf("%d items", len(a.listing.Entries)))
}

func (a *App) drawViewer() {
	title, lines, scroll := a.modeHandler.ViewerState()
	tui.DrawTextBlock(a.tuiManager, title, lines, scroll, a.activeTheme)
	a.statusBar.SetItemInfo(fmt.Sprintf("%d/%d", scroll+1, len(lines)))
}

func (a *App) drawEditor() {
	tui.DrawEditor(a.tuiManager, a.editor, a.activeTheme, a.cfg.Editor.TabWidth)
	tui.DrawEditorCursor(a.tuiManager, a.editor)
	a.statusBar.SetFileInfo(a.editor.Buffer().FilePath(), a.editor.IsModified())
	a.statusBar.SetCursorInfo(a.editor.Cursor)
	a.statusBar.SetItemInfo("")
}

// drawGit renders the git status view: branch header, then one row per
// changed file with its marker, staged entries green and the rest per theme.
func (a *App) drawGit() {
	branch, statuses, selected, scroll := a.modeHandler.GitState()

	defaultStyle := a.activeTheme.GetStyle("Default")
	headerStyle := a.activeTheme.GetStyle("Header")
	stagedStyle := a.activeTheme.GetStyle("GitStaged")
	unstagedStyle := a.activeTheme.GetStyle("GitUnstaged")
	untrackedStyle := a.activeTheme.GetStyle("GitUntracked")
	selectionStyle := a.activeTheme.GetStyle("Selection")

	width, height := a.tuiManager.Size()
	viewHeight := height - 1
	if viewHeight <= 0 || width <= 0 {
		return
	}

	tui.FillRow(a.tuiManager, 0, width, defaultStyle)
	header := fmt.Sprintf("git: %s", a.listing.CurrentPath)
	if branch != "" {
		header = fmt.Sprintf("git: %s (%s)", a.listing.CurrentPath, branch)
	}
	tui.DrawText(a.tuiManager, 0, 0, width, headerStyle, textutil.ClipLine(header, width))

	for row := 1; row < viewHeight; row++ {
		tui.FillRow(a.tuiManager, row, width, defaultStyle)
		idx := scroll + row - 1
		if idx < 0 || idx >= len(statuses) {
			continue
		}
		fs := statuses[idx]

		style := unstagedStyle
		switch {
		case fs.Staged:
			style = stagedStyle
		case fs.Kind.Rune() == '?':
			style = untrackedStyle
		}
		if idx == selected {
			style = selectionStyle
			tui.FillRow(a.tuiManager, row, width, style)
		}

		line := fmt.Sprintf(" %c %s", fs.Kind.Rune(), fs.Path)
		tui.DrawText(a.tuiManager, 0, row, width, style, textutil.ClipLine(line, width))
	}

	if len(statuses) == 0 {
		tui.DrawText(a.tuiManager, 1, 1, width-1, defaultStyle, "working tree clean")
	}
	a.statusBar.SetItemInfo(fmt.Sprintf("%d changes", len(statuses)))
}
