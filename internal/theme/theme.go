// internal/theme/theme.go
package theme

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lorikeet/reef/internal/logger"
)

// Theme maps named UI elements to terminal styles.
type Theme struct {
	Name   string
	Styles map[string]tcell.Style
}

// GetStyle looks a style up by element name, falling back to "Default" and
// finally to the terminal default.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}
	if defStyle, ok := t.Styles["Default"]; ok {
		if name != "Default" {
			logger.DebugTagf("theme", "theme '%s': style '%s' not found, using Default", t.Name, name)
		}
		return defStyle
	}
	return tcell.StyleDefault
}

// ReefDark is the built-in theme.
var ReefDark Theme

func init() {
	background := tcell.NewHexColor(0x2a2f38)
	foreground := tcell.NewHexColor(0xc5cdd9)
	muted := tcell.NewHexColor(0x5c6370)
	yellow := tcell.NewHexColor(0xe5c07b)
	green := tcell.NewHexColor(0x98c379)
	cyan := tcell.NewHexColor(0x56b6c2)
	blue := tcell.NewHexColor(0x61afef)
	red := tcell.NewHexColor(0xe06c75)

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(foreground)

	ReefDark = Theme{
		Name: "Reef Dark",
		Styles: map[string]tcell.Style{
			"Default":   base,
			"Selection": base.Reverse(true),

			"Header":    base.Foreground(cyan).Bold(true),
			"Directory": base.Foreground(blue).Bold(true),
			"Hidden":    base.Foreground(muted),
			"Size":      base.Foreground(muted),
			"LineNum":   base.Foreground(muted),

			"GitStaged":    base.Foreground(green),
			"GitUnstaged":  base.Foreground(red),
			"GitUntracked": base.Foreground(yellow),

			"StatusBar":         tcell.StyleDefault.Background(background).Foreground(foreground),
			"StatusBarModified": tcell.StyleDefault.Background(background).Foreground(yellow),
			"StatusBarMessage":  tcell.StyleDefault.Background(background).Foreground(foreground).Bold(true),
		},
	}
}
