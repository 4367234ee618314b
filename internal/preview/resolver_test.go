package preview

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("fixture %s: %v", name, err)
	}
	return path
}

func newTestResolver() *Resolver {
	return NewResolver(DefaultLimits())
}

func TestChainOrderIsFixed(t *testing.T) {
	want := []string{"text", "code", "image", "document", "markdown"}
	providers := newTestResolver().Providers()
	if len(providers) != len(want) {
		t.Fatalf("chain has %d providers, want %d", len(providers), len(want))
	}
	for i, p := range providers {
		if p.Name() != want[i] {
			t.Errorf("position %d: %s, want %s", i, p.Name(), want[i])
		}
	}
}

func TestMarkdownOwnsItsExtension(t *testing.T) {
	r := newTestResolver()
	for _, p := range r.Providers() {
		claims := p.CanPreview("notes.md")
		if p.Name() == "markdown" && !claims {
			t.Error("markdown provider must claim .md")
		}
		if (p.Name() == "text" || p.Name() == "code") && claims {
			t.Errorf("%s provider must not claim .md", p.Name())
		}
	}

	path := writeFile(t, "notes.md", "# Title\n\nBody text.")
	content := r.Resolve(path)
	if content.Kind() != KindText {
		t.Fatalf("kind = %v, want text", content.Kind())
	}
	if !strings.Contains(content.Text(), "Title") {
		t.Errorf("rendered markdown should carry the heading, got %q", content.Text())
	}
}

func TestPlainTextPreviewTruncatesLines(t *testing.T) {
	limits := DefaultLimits()
	limits.TextLines = 3
	r := NewResolver(limits)

	path := writeFile(t, "big.txt", "1\n2\n3\n4\n5")
	content := r.Resolve(path)
	if content.Kind() != KindText {
		t.Fatalf("kind = %v, want text", content.Kind())
	}
	if got := strings.Count(content.Text(), "\n"); got > 2 {
		t.Errorf("preview has %d newlines, want at most 2", got)
	}
}

func TestEmptyTextFileFallsThrough(t *testing.T) {
	r := newTestResolver()
	path := writeFile(t, "empty.txt", "")
	content := r.Resolve(path)
	// The text provider claims .txt but yields empty Text; the chain must
	// advance and the fallback reader still answers without an error result.
	if content.Kind() != KindText && content.Kind() != KindBinary {
		t.Fatalf("kind = %v, want text or binary", content.Kind())
	}
	if content.Kind() == KindText && content.Text() != "" {
		t.Errorf("empty file produced content %q", content.Text())
	}
}

func TestUnreadableFileYieldsBinaryDiagnostic(t *testing.T) {
	r := newTestResolver()
	content := r.Resolve(filepath.Join(t.TempDir(), "missing.xyz"))
	if content.Kind() != KindBinary {
		t.Fatalf("kind = %v, want binary", content.Kind())
	}
	if content.Text() == "" {
		t.Error("binary diagnostic must be human-readable, got empty string")
	}
}

func TestCodePreviewReturnsText(t *testing.T) {
	r := newTestResolver()
	path := writeFile(t, "main.go", "package main\n\nfunc main() {}\n")
	content := r.Resolve(path)
	if content.Kind() != KindText {
		t.Fatalf("kind = %v, want text", content.Kind())
	}
	if content.Text() == "" {
		t.Error("code preview is empty")
	}
}

func TestFallbackReadsUnknownExtension(t *testing.T) {
	r := newTestResolver()
	path := writeFile(t, "data.unknown", "plain content")
	content := r.Resolve(path)
	if content.Kind() != KindText {
		t.Fatalf("kind = %v, want text", content.Kind())
	}
	if content.Text() != "plain content" {
		t.Errorf("fallback text = %q", content.Text())
	}
}

func TestFallbackDetectsBinary(t *testing.T) {
	r := newTestResolver()
	path := filepath.Join(t.TempDir(), "blob.dat")
	if err := os.WriteFile(path, []byte{0x7F, 'E', 'L', 'F', 0x00, 0x01, 0x02}, 0o644); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	content := r.Resolve(path)
	if content.Kind() != KindBinary {
		t.Fatalf("kind = %v, want binary", content.Kind())
	}
}

func TestFallbackDecodesUTF16(t *testing.T) {
	r := newTestResolver()
	// "hi" in UTF-16LE with BOM.
	data := []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00}
	path := filepath.Join(t.TempDir(), "wide.unknown")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	content := r.Resolve(path)
	if content.Kind() != KindText {
		t.Fatalf("kind = %v, want text", content.Kind())
	}
	if content.Text() != "hi" {
		t.Errorf("decoded = %q, want %q", content.Text(), "hi")
	}
}

func TestImageFallbackWithoutRenderer(t *testing.T) {
	// A decodable PNG with no chafa installed must come back as the Image
	// variant (raw bytes); the result may be Text when chafa exists on the
	// test host.
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	path := filepath.Join(t.TempDir(), "dot.png")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("fixture: %v", err)
	}

	content := newTestResolver().Resolve(path)
	switch content.Kind() {
	case KindImage:
		if len(content.Image()) == 0 {
			t.Error("image variant carries no bytes")
		}
	case KindText:
		// chafa rendered it; equally valid.
	default:
		t.Errorf("kind = %v, want image or text", content.Kind())
	}
}

func TestDocumentProviderAbsentToolAdvancesChain(t *testing.T) {
	// Without pdftotext the document provider errors and resolution falls
	// back to a Binary diagnostic for this (binary) PDF stub; with the tool
	// present we still never see a hard failure.
	path := filepath.Join(t.TempDir(), "doc.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4\x00stub"), 0o644); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	content := newTestResolver().Resolve(path)
	if content.Kind() == KindError {
		t.Fatalf("resolution surfaced an error variant: %q", content.Text())
	}
}

func TestCaseInsensitiveExtensionMatch(t *testing.T) {
	r := newTestResolver()
	path := writeFile(t, "README.TXT", "upper case extension")
	content := r.Resolve(path)
	if content.Kind() != KindText || content.Text() == "" {
		t.Errorf("uppercase extension should match the text provider, got %v %q",
			content.Kind(), content.Text())
	}
}

func TestJSONPreviewIsPrettyPrinted(t *testing.T) {
	r := newTestResolver()
	path := writeFile(t, "data.json", `{"b":1,"a":[true,null]}`)

	content := r.Resolve(path)
	if content.Kind() != KindText {
		t.Fatalf("kind = %v, want text", content.Kind())
	}
	if !strings.Contains(content.Text(), "\n  \"a\"") {
		t.Errorf("JSON preview not re-indented:\n%s", content.Text())
	}
}

func TestInvalidJSONPreviewsRaw(t *testing.T) {
	r := newTestResolver()
	raw := `{"broken":`
	path := writeFile(t, "bad.json", raw)

	content := r.Resolve(path)
	if content.Kind() != KindText || content.Text() != raw {
		t.Errorf("invalid JSON should preview as-is, got %q", content.Text())
	}
}

func TestLDIFPreviewExpandsDN(t *testing.T) {
	r := newTestResolver()
	path := writeFile(t, "entry.ldif", "dn: cn=admin,dc=example,dc=org\nobjectClass: person")

	content := r.Resolve(path)
	if content.Kind() != KindText {
		t.Fatalf("kind = %v, want text", content.Kind())
	}
	if !strings.Contains(content.Text(), "cn=admin,\n") {
		t.Errorf("LDIF dn not expanded:\n%s", content.Text())
	}
}
