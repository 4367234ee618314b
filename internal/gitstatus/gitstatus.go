// Package gitstatus shells out to git for repository status, diffs and
// branch lists. It is an external collaborator of the browser: every failure
// degrades to a message, never to a broken session, and a machine without
// git simply reports "not a repository".
package gitstatus

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/lorikeet/reef/internal/logger"
)

// StatusKind classifies one porcelain status line.
type StatusKind int

const (
	StatusUnmodified StatusKind = iota
	StatusModified
	StatusAdded
	StatusDeleted
	StatusRenamed
	StatusUntracked
	StatusIgnored
)

// Rune returns the single-character marker used in the status view.
func (k StatusKind) Rune() rune {
	switch k {
	case StatusModified:
		return 'M'
	case StatusAdded:
		return 'A'
	case StatusDeleted:
		return 'D'
	case StatusRenamed:
		return 'R'
	case StatusUntracked:
		return '?'
	case StatusIgnored:
		return '!'
	default:
		return ' '
	}
}

// FileStatus is one entry of `git status --porcelain`.
type FileStatus struct {
	Path   string
	Kind   StatusKind
	Staged bool
}

// Manager runs git commands against one working directory.
type Manager struct {
	path   string
	isRepo bool
}

// NewManager probes whether path is inside a git work tree. The probe result
// is cached for the manager's lifetime.
func NewManager(path string) *Manager {
	out, err := exec.Command("git", "-C", path, "rev-parse", "--is-inside-work-tree").Output()
	isRepo := err == nil && strings.TrimSpace(string(out)) == "true"
	if !isRepo {
		logger.DebugTagf("git", "%s is not a git work tree", path)
	}
	return &Manager{path: path, isRepo: isRepo}
}

// IsRepo reports whether the managed path is inside a repository.
func (m *Manager) IsRepo() bool {
	return m.isRepo
}

// Status returns the working tree status, one entry per changed file.
func (m *Manager) Status() ([]FileStatus, error) {
	if !m.isRepo {
		return nil, fmt.Errorf("%s: not a git repository", m.path)
	}
	out, err := exec.Command("git", "-C", m.path, "status", "--porcelain").Output()
	if err != nil {
		return nil, fmt.Errorf("git status: %w", err)
	}
	return ParsePorcelain(string(out)), nil
}

// Diff returns the unified diff of the working tree, or of a single file
// when path is non-empty.
func (m *Manager) Diff(path string) (string, error) {
	if !m.isRepo {
		return "", fmt.Errorf("%s: not a git repository", m.path)
	}
	args := []string{"-C", m.path, "diff"}
	if path != "" {
		args = append(args, "--", path)
	}
	out, err := exec.Command("git", args...).Output()
	if err != nil {
		return "", fmt.Errorf("git diff: %w", err)
	}
	return string(out), nil
}

// Branches lists local branch names.
func (m *Manager) Branches() ([]string, error) {
	if !m.isRepo {
		return nil, fmt.Errorf("%s: not a git repository", m.path)
	}
	out, err := exec.Command("git", "-C", m.path, "branch", "--format=%(refname:short)").Output()
	if err != nil {
		return nil, fmt.Errorf("git branch: %w", err)
	}
	var branches []string
	for _, line := range strings.Split(string(out), "\n") {
		if line != "" {
			branches = append(branches, line)
		}
	}
	return branches, nil
}

// ParsePorcelain converts `git status --porcelain` output into FileStatus
// entries. Unmodified lines are dropped.
func ParsePorcelain(output string) []FileStatus {
	var result []FileStatus
	for _, line := range strings.Split(output, "\n") {
		if len(line) < 4 {
			continue
		}
		index := rune(line[0])
		worktree := rune(line[1])
		path := line[3:]

		kind, staged := classify(index, worktree)
		if kind == StatusUnmodified {
			continue
		}
		result = append(result, FileStatus{Path: path, Kind: kind, Staged: staged})
	}
	return result
}

// classify maps the two porcelain marker columns to a status. The index
// column wins; worktree-only changes are unstaged.
func classify(index, worktree rune) (StatusKind, bool) {
	switch index {
	case 'A':
		return StatusAdded, true
	case 'M':
		return StatusModified, true
	case 'D':
		return StatusDeleted, true
	case 'R':
		return StatusRenamed, true
	case '?':
		return StatusUntracked, false
	case '!':
		return StatusIgnored, false
	}
	switch worktree {
	case 'M':
		return StatusModified, false
	case 'D':
		return StatusDeleted, false
	}
	return StatusUnmodified, false
}
