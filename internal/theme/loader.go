// internal/theme/loader.go
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
	"github.com/lorikeet/reef/internal/logger"
)

// tomlStyleDef is a single style definition in a theme file. Pointers
// distinguish missing values from explicit falses.
type tomlStyleDef struct {
	Fg        *string `toml:"fg"`
	Bg        *string `toml:"bg"`
	Bold      *bool   `toml:"bold"`
	Italic    *bool   `toml:"italic"`
	Underline *bool   `toml:"underline"`
	Reverse   *bool   `toml:"reverse"`
}

// tomlTheme is the on-disk structure of a theme file.
type tomlTheme struct {
	Name   string                  `toml:"name"`
	Styles map[string]tomlStyleDef `toml:"styles"`
}

// LoadFromFile parses a TOML theme. Styles not named in the file keep their
// built-in defaults.
func LoadFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file '%s': %w", filePath, err)
	}

	var parsed tomlTheme
	metadata, err := toml.Decode(string(data), &parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to parse theme file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("theme file '%s': unrecognized keys: %v", filePath, undecoded)
	}

	if parsed.Name == "" {
		parsed.Name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	}

	t := &Theme{
		Name:   parsed.Name,
		Styles: make(map[string]tcell.Style, len(ReefDark.Styles)),
	}
	for name, style := range ReefDark.Styles {
		t.Styles[name] = style
	}
	for name, def := range parsed.Styles {
		base := t.GetStyle(name)
		t.Styles[name] = applyStyleDef(base, def)
	}
	return t, nil
}

func applyStyleDef(style tcell.Style, def tomlStyleDef) tcell.Style {
	if def.Fg != nil {
		style = style.Foreground(parseColor(*def.Fg))
	}
	if def.Bg != nil {
		style = style.Background(parseColor(*def.Bg))
	}
	if def.Bold != nil {
		style = style.Bold(*def.Bold)
	}
	if def.Italic != nil {
		style = style.Italic(*def.Italic)
	}
	if def.Underline != nil {
		style = style.Underline(*def.Underline)
	}
	if def.Reverse != nil {
		style = style.Reverse(*def.Reverse)
	}
	return style
}

// parseColor accepts tcell color names and #rrggbb hex values.
func parseColor(s string) tcell.Color {
	if strings.HasPrefix(s, "#") {
		return tcell.GetColor(s)
	}
	if c, ok := tcell.ColorNames[strings.ToLower(s)]; ok {
		return c
	}
	logger.Warnf("unknown color '%s', using default", s)
	return tcell.ColorDefault
}
