// internal/fsnav/listing.go
package fsnav

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/lorikeet/reef/internal/logger"
)

// Listing enumerates the direct children of one directory, filtered and
// sorted. Entries are rebuilt wholesale on every Refresh; there is no
// incremental patching.
type Listing struct {
	CurrentPath string
	Entries     []Entry
	ShowHidden  bool
	SortKey     SortKey
	Filter      string // case-insensitive substring on entry names
}

// NewListing creates a listing rooted at path and performs the initial
// refresh.
func NewListing(path string) *Listing {
	l := &Listing{
		CurrentPath: path,
		SortKey:     SortByName,
	}
	l.Refresh()
	return l
}

// Refresh re-enumerates the current directory: depth exactly one, the
// directory's own entry excluded, hidden filter then substring filter, then
// sort. An unreadable directory degrades to an empty listing; navigation
// must never block on a permission failure.
func (l *Listing) Refresh() {
	l.Entries = l.Entries[:0]

	dirEntries, err := os.ReadDir(l.CurrentPath)
	if err != nil {
		logger.DebugTagf("fsnav", "cannot read %s: %v", l.CurrentPath, err)
		return
	}

	filter := strings.ToLower(l.Filter)
	for _, de := range dirEntries {
		entry := entryFromDirEntry(l.CurrentPath, de)
		if !l.ShowHidden && entry.IsHidden {
			continue
		}
		if filter != "" && !strings.Contains(strings.ToLower(entry.Name), filter) {
			continue
		}
		l.Entries = append(l.Entries, entry)
	}

	l.sort()
}

// NavigateTo descends into path when it is a directory and refreshes.
func (l *Listing) NavigateTo(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	l.CurrentPath = path
	l.Refresh()
}

// NavigateUp moves to the parent directory and refreshes. At the filesystem
// root it stays put.
func (l *Listing) NavigateUp() {
	parent := filepath.Dir(l.CurrentPath)
	if parent == l.CurrentPath {
		return
	}
	l.CurrentPath = parent
	l.Refresh()
}

// Search sets the substring filter and refreshes. An empty query clears it.
func (l *Listing) Search(query string) {
	l.Filter = query
	l.Refresh()
}

// ToggleHidden flips hidden-file visibility and refreshes.
func (l *Listing) ToggleHidden() {
	l.ShowHidden = !l.ShowHidden
	l.Refresh()
}

// SetSortKey changes the active comparator and re-sorts in place without
// re-reading the directory.
func (l *Listing) SetSortKey(key SortKey) {
	l.SortKey = key
	l.sort()
}
