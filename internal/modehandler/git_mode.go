// internal/modehandler/git_mode.go
package modehandler

import (
	"strings"

	"github.com/lorikeet/reef/internal/gitstatus"
	"github.com/lorikeet/reef/internal/input"
	"github.com/lorikeet/reef/internal/logger"
)

// enterGitMode probes the current directory and shows its working tree
// status. Outside a repository it degrades to a status bar message.
func (mh *ModeHandler) enterGitMode() {
	mh.gitManager = gitstatus.NewManager(mh.listing.CurrentPath)
	if !mh.gitManager.IsRepo() {
		mh.statusBar.SetTemporaryMessage("%s: not a git repository", mh.listing.CurrentPath)
		return
	}

	statuses, err := mh.gitManager.Status()
	if err != nil {
		mh.statusBar.SetTemporaryMessage("git status failed: %v", err)
		return
	}

	branch := ""
	if branches, err := mh.gitManager.Branches(); err == nil && len(branches) > 0 {
		branch = branches[0]
	}

	mh.gitStatuses = statuses
	mh.gitBranch = branch
	mh.gitSelected = 0
	mh.gitScroll = 0
	mh.switchMode(ModeGit)
	logger.DebugTagf("git", "status view: %d entries on %q", len(statuses), branch)
}

// handleGit interprets actions in the git status view. Enter shows the diff
// of the selected file in the viewer.
func (mh *ModeHandler) handleGit(actionEvent input.ActionEvent) bool {
	switch actionEvent.Action {
	case input.ActionMoveUp:
		mh.moveGitSelection(-1)
	case input.ActionMoveDown:
		mh.moveGitSelection(1)
	case input.ActionInsertNewLine:
		mh.showGitDiff()
	case input.ActionInsertRune:
		switch actionEvent.Rune {
		case 'j':
			mh.moveGitSelection(1)
		case 'k':
			mh.moveGitSelection(-1)
		case 'd':
			mh.showGitDiff()
		case 'q':
			mh.switchMode(ModeBrowser)
		default:
			return false
		}
	case input.ActionQuit:
		mh.switchMode(ModeBrowser)
	default:
		return false
	}
	return true
}

func (mh *ModeHandler) moveGitSelection(delta int) {
	if len(mh.gitStatuses) == 0 {
		return
	}
	mh.gitSelected += delta
	if last := len(mh.gitStatuses) - 1; mh.gitSelected > last {
		mh.gitSelected = last
	}
	if mh.gitSelected < 0 {
		mh.gitSelected = 0
	}

	visible := mh.viewHeight - 1
	if visible < 1 {
		visible = 1
	}
	if mh.gitSelected < mh.gitScroll {
		mh.gitScroll = mh.gitSelected
	}
	if mh.gitSelected > mh.gitScroll+visible-1 {
		mh.gitScroll = mh.gitSelected - visible + 1
	}
}

// showGitDiff opens the viewer on the selected file's diff. Untracked files
// have no diff; the viewer says so instead of showing an empty page.
func (mh *ModeHandler) showGitDiff() {
	if mh.gitSelected < 0 || mh.gitSelected >= len(mh.gitStatuses) {
		return
	}
	fs := mh.gitStatuses[mh.gitSelected]

	diff, err := mh.gitManager.Diff(fs.Path)
	if err != nil {
		mh.statusBar.SetTemporaryMessage("git diff failed: %v", err)
		return
	}
	if strings.TrimSpace(diff) == "" {
		diff = "(no diff; file may be untracked or staged)"
	}

	mh.viewTitle = "diff: " + fs.Path
	mh.viewLines = strings.Split(diff, "\n")
	mh.viewScroll = 0
	mh.viewReturn = ModeGit
	mh.switchMode(ModePreview)
}
