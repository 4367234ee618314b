// internal/preview/markdown.go
package preview

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
)

// markdownProvider renders markdown through glamour. Rendering failures fall
// back to the raw source; a styled preview is a nicety, the content is the
// contract.
type markdownProvider struct {
	exts     extSet
	maxLines int
	wrap     int
}

func newMarkdownProvider(maxLines int) *markdownProvider {
	return &markdownProvider{
		exts:     newExtSet("md", "markdown", "mdx"),
		maxLines: maxLines,
		wrap:     100,
	}
}

func (p *markdownProvider) Name() string { return "markdown" }

func (p *markdownProvider) CanPreview(path string) bool {
	return p.exts.contains(path)
}

func (p *markdownProvider) GeneratePreview(path string) (Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Content{}, fmt.Errorf("reading %s: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) > p.maxLines {
		lines = lines[:p.maxLines]
	}
	source := strings.Join(lines, "\n")
	if source == "" {
		return TextContent(""), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(p.wrap),
		glamour.WithPreservedNewLines(),
	)
	if err != nil {
		return TextContent(source), nil
	}
	rendered, err := renderer.Render(source)
	if err != nil {
		return TextContent(source), nil
	}
	return TextContent(rendered), nil
}
