package buffer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lorikeet/reef/internal/types"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func lineStrings(sb *SliceBuffer) []string {
	out := make([]string, sb.LineCount())
	for i, l := range sb.Lines() {
		out[i] = string(l)
	}
	return out
}

func TestLoadSplitsLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"no trailing newline", "a\nb\nc", []string{"a", "b", "c"}},
		{"trailing newline yields no phantom line", "a\nb\nc\n", []string{"a", "b", "c"}},
		{"empty file is one empty line", "", []string{""}},
		{"blank interior lines kept", "a\n\nc", []string{"a", "", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sb := NewSliceBuffer()
			if err := sb.Load(writeFixture(t, tt.content)); err != nil {
				t.Fatalf("Load: %v", err)
			}
			got := lineStrings(sb)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lines %v, want %d %v", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d: got %q, want %q", i, got[i], tt.want[i])
				}
			}
			if sb.IsModified() {
				t.Error("freshly loaded buffer should not be modified")
			}
		})
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	sb := NewSliceBuffer()
	sb.lines = [][]byte{[]byte("keep")}
	if err := sb.Load(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error loading missing file")
	}
	if string(sb.lines[0]) != "keep" {
		t.Error("buffer content should be untouched after failed load")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := writeFixture(t, "a\nb\nc")
	sb := NewSliceBuffer()
	if err := sb.Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := sb.Save(""); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "a\nb\nc" {
		t.Errorf("saved content %q, want %q", data, "a\nb\nc")
	}
}

func TestSaveClearsModifiedOnlyOnSuccess(t *testing.T) {
	sb := NewSliceBuffer()
	if err := sb.InsertRune(types.Position{Line: 0, Col: 0}, 'x'); err != nil {
		t.Fatalf("InsertRune: %v", err)
	}
	if !sb.IsModified() {
		t.Fatal("insert should mark modified")
	}

	// Unwritable target: a directory path.
	if err := sb.Save(t.TempDir()); err == nil {
		t.Fatal("expected save to a directory to fail")
	}
	if !sb.IsModified() {
		t.Error("failed save must leave the modified flag set")
	}

	if err := sb.Save(filepath.Join(t.TempDir(), "out.txt")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if sb.IsModified() {
		t.Error("successful save must clear the modified flag")
	}
}

func TestInsertRune(t *testing.T) {
	sb := NewSliceBuffer()
	if err := sb.Load(writeFixture(t, "hello")); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := sb.InsertRune(types.Position{Line: 0, Col: 5}, '!'); err != nil {
		t.Fatalf("InsertRune: %v", err)
	}
	if got := string(sb.lines[0]); got != "hello!" {
		t.Errorf("got %q, want %q", got, "hello!")
	}

	// Multi-byte rune in the middle.
	if err := sb.InsertRune(types.Position{Line: 0, Col: 2}, 'é'); err != nil {
		t.Fatalf("InsertRune: %v", err)
	}
	if got := string(sb.lines[0]); got != "heéllo!" {
		t.Errorf("got %q, want %q", got, "heéllo!")
	}
	if sb.LineCount() != 1 {
		t.Errorf("insert must not change line count, got %d", sb.LineCount())
	}
}

func TestInsertRunePastEndAppendsLine(t *testing.T) {
	sb := NewSliceBuffer()
	if err := sb.InsertRune(types.Position{Line: 3, Col: 0}, 'x'); err != nil {
		t.Fatalf("InsertRune: %v", err)
	}
	if sb.LineCount() != 2 {
		t.Fatalf("expected defensive appended line, got %d lines", sb.LineCount())
	}
	if got := string(sb.lines[1]); got != "x" {
		t.Errorf("appended line %q, want %q", got, "x")
	}
}

func TestSplitLine(t *testing.T) {
	sb := NewSliceBuffer()
	if err := sb.Load(writeFixture(t, "headtail\nlast")); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := sb.SplitLine(types.Position{Line: 0, Col: 4}); err != nil {
		t.Fatalf("SplitLine: %v", err)
	}
	want := []string{"head", "tail", "last"}
	got := lineStrings(sb)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
	if sb.LineCount() != 3 {
		t.Errorf("line count %d, want 3", sb.LineCount())
	}
}

func TestMergeLineUp(t *testing.T) {
	sb := NewSliceBuffer()
	if err := sb.Load(writeFixture(t, "head\ntail")); err != nil {
		t.Fatalf("Load: %v", err)
	}
	prevRunes, err := sb.MergeLineUp(1)
	if err != nil {
		t.Fatalf("MergeLineUp: %v", err)
	}
	if prevRunes != 4 {
		t.Errorf("prev line rune count %d, want 4", prevRunes)
	}
	if got := string(sb.lines[0]); got != "headtail" {
		t.Errorf("merged line %q, want %q", got, "headtail")
	}
	if sb.LineCount() != 1 {
		t.Errorf("line count %d, want 1", sb.LineCount())
	}

	if _, err := sb.MergeLineUp(0); err == nil {
		t.Error("merging line 0 should fail")
	}
}

func TestDeleteRuneBefore(t *testing.T) {
	sb := NewSliceBuffer()
	if err := sb.Load(writeFixture(t, "héllo")); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := sb.DeleteRuneBefore(types.Position{Line: 0, Col: 2}); err != nil {
		t.Fatalf("DeleteRuneBefore: %v", err)
	}
	if got := string(sb.lines[0]); got != "hllo" {
		t.Errorf("got %q, want %q", got, "hllo")
	}

	if err := sb.DeleteRuneBefore(types.Position{Line: 0, Col: 0}); err == nil {
		t.Error("deleting before column 0 should fail")
	}
}

func TestBufferNeverEmpty(t *testing.T) {
	sb := NewSliceBuffer()
	if sb.LineCount() < 1 {
		t.Fatal("new buffer must hold at least one line")
	}
	if err := sb.Load(writeFixture(t, "")); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if sb.LineCount() != 1 {
		t.Errorf("empty file should load as one empty line, got %d", sb.LineCount())
	}
}
