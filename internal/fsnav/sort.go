// internal/fsnav/sort.go
package fsnav

import (
	"sort"
	"strings"
)

// SortKey selects the comparator applied to a listing.
type SortKey int

const (
	SortByName SortKey = iota
	SortBySize
	SortByModified
	SortByType
)

// Next cycles to the following sort key, wrapping around.
func (k SortKey) Next() SortKey {
	switch k {
	case SortByName:
		return SortBySize
	case SortBySize:
		return SortByModified
	case SortByModified:
		return SortByType
	default:
		return SortByName
	}
}

func (k SortKey) String() string {
	switch k {
	case SortByName:
		return "name"
	case SortBySize:
		return "size"
	case SortByModified:
		return "modified"
	case SortByType:
		return "type"
	default:
		return "unknown"
	}
}

// ParseSortKey maps a configuration name to its SortKey. Unknown names
// report false and leave the caller on name order.
func ParseSortKey(name string) (SortKey, bool) {
	switch strings.ToLower(name) {
	case "name":
		return SortByName, true
	case "size":
		return SortBySize, true
	case "modified":
		return SortByModified, true
	case "type":
		return SortByType, true
	default:
		return SortByName, false
	}
}

// sort orders Entries by the active key. Every comparator falls back to the
// case-insensitive name so the order is total and stable across refreshes.
func (l *Listing) sort() {
	entries := l.Entries
	switch l.SortKey {
	case SortBySize:
		// Descending by byte size. Directory sizes are whatever the listing
		// reported; they are not normalized.
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].Size != entries[j].Size {
				return entries[i].Size > entries[j].Size
			}
			return nameLess(entries[i], entries[j])
		})
	case SortByModified:
		// Descending by timestamp; entries without one sort as oldest.
		sort.SliceStable(entries, func(i, j int) bool {
			ti, tj := entries[i].Modified, entries[j].Modified
			if !ti.Equal(tj) {
				return ti.After(tj)
			}
			return nameLess(entries[i], entries[j])
		})
	case SortByType:
		// Directories before files; within a kind, ascending by extension
		// with extensionless entries first.
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].IsDir != entries[j].IsDir {
				return entries[i].IsDir
			}
			if entries[i].Extension != entries[j].Extension {
				return entries[i].Extension < entries[j].Extension
			}
			return nameLess(entries[i], entries[j])
		})
	default:
		sort.SliceStable(entries, func(i, j int) bool {
			return nameLess(entries[i], entries[j])
		})
	}
}

// nameLess compares names case-insensitively, breaking ties on the exact
// name so "A.txt" and "a.txt" have a deterministic order.
func nameLess(a, b Entry) bool {
	an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
	if an != bn {
		return an < bn
	}
	return a.Name < b.Name
}
