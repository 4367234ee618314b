// internal/preview/document.go
package preview

import (
	"fmt"
	"os/exec"
	"strconv"
)

// documentProvider extracts text from PDF documents via the external
// `pdftotext` inspector. A missing tool is a provider error, which advances
// the chain to the generic fallback.
type documentProvider struct {
	exts     extSet
	maxPages int
}

func newDocumentProvider(maxPages int) *documentProvider {
	return &documentProvider{
		exts:     newExtSet("pdf"),
		maxPages: maxPages,
	}
}

func (p *documentProvider) Name() string { return "document" }

func (p *documentProvider) CanPreview(path string) bool {
	return p.exts.contains(path)
}

func (p *documentProvider) GeneratePreview(path string) (Content, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return Content{}, fmt.Errorf("pdftotext not found: %w", err)
	}
	out, err := exec.Command("pdftotext", "-l", strconv.Itoa(p.maxPages), path, "-").Output()
	if err != nil {
		return Content{}, fmt.Errorf("pdftotext failed for %s: %w", path, err)
	}
	return TextContent(string(out)), nil
}
