// internal/fsnav/entry.go
package fsnav

import (
	"io/fs"
	"path/filepath"
	"strings"
	"time"
)

// Entry represents a single file or directory within a listing.
type Entry struct {
	Name      string
	Path      string // absolute path
	IsDir     bool
	Size      int64
	Modified  time.Time // zero when unknown
	IsHidden  bool
	Extension string // lowercase, without the dot; empty when none
}

// entryFromDirEntry builds an Entry from a single ReadDir result. Stat
// failures degrade to a size/time-less entry rather than dropping it; a file
// we cannot stat is still navigable.
func entryFromDirEntry(dir string, de fs.DirEntry) Entry {
	name := de.Name()
	e := Entry{
		Name:     name,
		Path:     filepath.Join(dir, name),
		IsDir:    de.IsDir(),
		IsHidden: strings.HasPrefix(name, "."),
	}
	if !e.IsDir {
		e.Extension = normalizeExt(name)
	}
	if info, err := de.Info(); err == nil {
		e.Size = info.Size()
		e.Modified = info.ModTime()
	}
	return e
}

// normalizeExt extracts the lowercase extension without its leading dot.
// Dotfiles like ".gitignore" have no extension.
func normalizeExt(name string) string {
	ext := filepath.Ext(name)
	if ext == "" || ext == name {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
