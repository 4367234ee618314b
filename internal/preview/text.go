// internal/preview/text.go
package preview

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lorikeet/reef/internal/textutil"
)

// textProvider renders plain text files with line and width caps. Markdown
// is deliberately absent from its extension list: the markdown provider owns
// those files, and the chain order makes that ownership observable.
type textProvider struct {
	exts     extSet
	maxLines int
	maxWidth int
}

func newTextProvider(maxLines, maxWidth int) *textProvider {
	return &textProvider{
		exts: newExtSet(
			"txt", "json", "xml", "yaml", "yml", "toml", "ini", "cfg", "conf",
			"log", "csv", "env", "gitignore", "editorconfig", "properties",
			"ldif",
		),
		maxLines: maxLines,
		maxWidth: maxWidth,
	}
}

func (p *textProvider) Name() string { return "text" }

func (p *textProvider) CanPreview(path string) bool {
	return p.exts.contains(path)
}

func (p *textProvider) GeneratePreview(path string) (Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Content{}, fmt.Errorf("reading %s: %w", path, err)
	}

	text := formatByExtension(path, string(data))
	lines := strings.Split(text, "\n")
	if len(lines) > p.maxLines {
		lines = lines[:p.maxLines]
	}
	for i, line := range lines {
		lines[i] = textutil.ClipLine(line, p.maxWidth)
	}
	return TextContent(strings.Join(lines, "\n")), nil
}

// formatByExtension prettifies formats the preview can render better than
// raw text: JSON documents are re-indented, LDIF distinguished names split
// onto one component per line. Anything unparsable previews as-is.
func formatByExtension(path, text string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "json":
		if formatted, err := textutil.FormatJSON(text, 2); err == nil {
			return formatted
		}
	case "ldif":
		lines := strings.Split(text, "\n")
		for i, line := range lines {
			if dn, ok := strings.CutPrefix(line, "dn: "); ok {
				lines[i] = "dn: " + strings.ReplaceAll(textutil.FormatDN(dn), "\n", "\n    ")
			}
		}
		return strings.Join(lines, "\n")
	}
	return text
}
