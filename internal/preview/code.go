// internal/preview/code.go
package preview

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// codeProvider renders source files with ANSI syntax highlighting. The lexer
// is matched by filename only; no content parsing beyond tokenization.
type codeProvider struct {
	exts     extSet
	maxLines int
}

func newCodeProvider(maxLines int) *codeProvider {
	return &codeProvider{
		exts: newExtSet(
			"go", "rs", "py", "js", "mjs", "ts", "tsx", "jsx", "java", "c",
			"cpp", "cc", "h", "hpp", "rb", "php", "swift", "kt", "kts",
			"scala", "cs", "hs", "clj", "ex", "exs", "erl", "lua", "pl",
			"sh", "bash", "zsh", "sql", "graphql", "svelte", "vue", "css",
			"scss", "sass", "less", "html", "htm", "vim", "r",
		),
		maxLines: maxLines,
	}
}

func (p *codeProvider) Name() string { return "code" }

func (p *codeProvider) CanPreview(path string) bool {
	return p.exts.contains(path)
}

func (p *codeProvider) GeneratePreview(path string) (Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Content{}, fmt.Errorf("reading %s: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) > p.maxLines {
		lines = lines[:p.maxLines]
	}
	text := strings.Join(lines, "\n")

	highlighted, err := highlight(path, text)
	if err != nil {
		// Unhighlighted source is still a perfectly good preview.
		return TextContent(text), nil
	}
	return TextContent(highlighted), nil
}

// highlight runs chroma over text with a lexer chosen from the filename.
func highlight(path, text string) (string, error) {
	lexer := lexers.Match(path)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", fmt.Errorf("tokenize: %w", err)
	}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return "", fmt.Errorf("format: %w", err)
	}
	return buf.String(), nil
}
