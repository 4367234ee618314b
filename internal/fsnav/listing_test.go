package fsnav

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// fixtureDir builds a directory with a mix of files, subdirectories and a
// hidden entry.
func fixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]int{
		"B.txt":      3,
		"a.txt":      10,
		"notes.md":   5,
		"archive.gz": 100,
		".hidden":    1,
	}
	for name, size := range files {
		if err := os.WriteFile(filepath.Join(dir, name), make([]byte, size), 0o644); err != nil {
			t.Fatalf("fixture %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0o755); err != nil {
		t.Fatalf("fixture subdir: %v", err)
	}
	return dir
}

func names(l *Listing) []string {
	out := make([]string, len(l.Entries))
	for i, e := range l.Entries {
		out[i] = e.Name
	}
	return out
}

func TestRefreshExcludesHiddenByDefault(t *testing.T) {
	l := NewListing(fixtureDir(t))
	for _, e := range l.Entries {
		if e.IsHidden {
			t.Errorf("hidden entry %q listed without ShowHidden", e.Name)
		}
	}
	if len(l.Entries) != 5 {
		t.Errorf("got %d entries %v, want 5", len(l.Entries), names(l))
	}
}

func TestToggleHiddenIncludesDotfiles(t *testing.T) {
	l := NewListing(fixtureDir(t))
	l.ToggleHidden()
	found := false
	for _, e := range l.Entries {
		if e.Name == ".hidden" {
			found = true
		}
	}
	if !found {
		t.Error(".hidden missing after ToggleHidden")
	}
}

func TestSortByNameIsCaseInsensitive(t *testing.T) {
	l := NewListing(fixtureDir(t))
	got := names(l)
	want := []string{"a.txt", "archive.gz", "B.txt", "notes.md", "subdir"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestSortBySizeDescending(t *testing.T) {
	l := NewListing(fixtureDir(t))
	l.SetSortKey(SortBySize)
	for i := 1; i < len(l.Entries); i++ {
		if l.Entries[i-1].Size < l.Entries[i].Size {
			t.Fatalf("sizes not non-increasing: %v then %v",
				l.Entries[i-1].Size, l.Entries[i].Size)
		}
	}
}

func TestSortByModifiedMissingTimestampSortsOldest(t *testing.T) {
	l := &Listing{SortKey: SortByModified}
	now := time.Now()
	l.Entries = []Entry{
		{Name: "untimed"},
		{Name: "new", Modified: now},
		{Name: "old", Modified: now.Add(-time.Hour)},
	}
	l.sort()
	got := []string{l.Entries[0].Name, l.Entries[1].Name, l.Entries[2].Name}
	want := []string{"new", "old", "untimed"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestSortByTypeDirsFirstThenExtension(t *testing.T) {
	l := NewListing(fixtureDir(t))
	l.SetSortKey(SortByType)

	if !l.Entries[0].IsDir {
		t.Fatalf("first entry %q is not a directory", l.Entries[0].Name)
	}
	// Files follow, ascending by extension: .gz, .md, .txt (extensionless
	// files would precede all of them).
	got := names(l)
	want := []string{"subdir", "archive.gz", "notes.md", "a.txt", "B.txt"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestSearchFiltersCaseInsensitively(t *testing.T) {
	l := NewListing(fixtureDir(t))
	l.Search("TXT")
	got := names(l)
	if len(got) != 2 {
		t.Fatalf("filtered entries = %v, want the two .txt files", got)
	}

	l.Search("no-such-substring")
	if len(l.Entries) != 0 {
		t.Errorf("expected empty result, got %v", names(l))
	}

	l.Search("")
	if len(l.Entries) != 5 {
		t.Errorf("clearing filter should restore all entries, got %v", names(l))
	}
}

func TestUnreadableDirectoryDegradesToEmpty(t *testing.T) {
	l := NewListing(filepath.Join(t.TempDir(), "does-not-exist"))
	if len(l.Entries) != 0 {
		t.Errorf("expected empty listing, got %v", names(l))
	}
	// Navigation remains usable afterwards.
	l.NavigateTo(fixtureDir(t))
	if len(l.Entries) == 0 {
		t.Error("listing should recover when navigating to a readable directory")
	}
}

func TestNavigateUpAndTo(t *testing.T) {
	dir := fixtureDir(t)
	l := NewListing(dir)
	sub := filepath.Join(dir, "subdir")

	l.NavigateTo(sub)
	if l.CurrentPath != sub {
		t.Fatalf("CurrentPath = %q, want %q", l.CurrentPath, sub)
	}
	if len(l.Entries) != 0 {
		t.Errorf("empty subdir should list no entries, got %v", names(l))
	}

	l.NavigateUp()
	if l.CurrentPath != dir {
		t.Fatalf("CurrentPath = %q after up, want %q", l.CurrentPath, dir)
	}

	// Navigating to a file is refused.
	l.NavigateTo(filepath.Join(dir, "a.txt"))
	if l.CurrentPath != dir {
		t.Errorf("NavigateTo a file must not change the path")
	}
}

func TestExtensionNormalization(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"file.TXT", "txt"},
		{"archive.tar.gz", "gz"},
		{"README", ""},
		{".gitignore", ""},
	}
	for _, tt := range tests {
		if got := normalizeExt(tt.name); got != tt.want {
			t.Errorf("normalizeExt(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		in     string
		want   SortKey
		wantOK bool
	}{
		{"name", SortByName, true},
		{"Size", SortBySize, true},
		{"MODIFIED", SortByModified, true},
		{"type", SortByType, true},
		{"bogus", SortByName, false},
		{"", SortByName, false},
	}
	for _, tt := range tests {
		got, ok := ParseSortKey(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseSortKey(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
