// internal/textutil/sanitize.go
package textutil

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ClipLine truncates a line to at most maxWidth terminal cells, appending an
// ellipsis when content was dropped. Width is measured in display cells, not
// runes, so wide characters count double.
func ClipLine(line string, maxWidth int) string {
	if maxWidth <= 0 || runewidth.StringWidth(line) <= maxWidth {
		return line
	}
	return runewidth.Truncate(line, maxWidth, "…")
}

// ExpandTabs replaces tabs with spaces up to the next tab stop.
func ExpandTabs(line string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(line, '\t') {
		return line
	}
	var b strings.Builder
	col := 0
	for _, r := range line {
		if r == '\t' {
			pad := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", pad))
			col += pad
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String()
}

// StripControlRunes removes non-printable control characters other than tab,
// keeping terminal output from being corrupted by stray escapes.
func StripControlRunes(line string) string {
	return strings.Map(func(r rune) rune {
		if r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7F {
			return -1
		}
		return r
	}, line)
}

var ansiPattern = regexp.MustCompile(`\x1b(\[[0-9;?]*[a-zA-Z]|\][^\x07]*(\x07|\x1b\\))`)

// StripANSI removes ANSI escape sequences (CSI and OSC) from a line. Output
// produced for a real terminal, such as highlighted source, must pass through
// here before being drawn cell by cell.
func StripANSI(line string) string {
	if !strings.ContainsRune(line, 0x1b) {
		return line
	}
	return ansiPattern.ReplaceAllString(line, "")
}

// HumanSize renders a byte count in the familiar short form (512B, 2.0K,
// 1.5M, 3.1G).
func HumanSize(size int64) string {
	const (
		kb = 1 << 10
		mb = 1 << 20
		gb = 1 << 30
	)
	switch {
	case size >= gb:
		return fmt.Sprintf("%.1fG", float64(size)/float64(gb))
	case size >= mb:
		return fmt.Sprintf("%.1fM", float64(size)/float64(mb))
	case size >= kb:
		return fmt.Sprintf("%.1fK", float64(size)/float64(kb))
	default:
		return fmt.Sprintf("%dB", size)
	}
}
