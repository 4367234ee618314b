package textutil

import (
	"strings"
	"testing"
)

func TestFormatJSON(t *testing.T) {
	got, err := FormatJSON(`{"name":"test","value":123}`, 2)
	if err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}
	if !strings.Contains(got, "\n") {
		t.Errorf("formatted JSON should span lines, got %q", got)
	}
	if !strings.Contains(got, `"name": "test"`) {
		t.Errorf("missing key/value, got %q", got)
	}
	if strings.HasSuffix(got, "\n") {
		t.Error("formatted JSON must not end with a newline")
	}

	if _, err := FormatJSON(`{not json`, 2); err == nil {
		t.Error("invalid JSON must error")
	}
}

func TestMinifyJSON(t *testing.T) {
	got, err := MinifyJSON("{\n  \"a\": 1\n}")
	if err != nil {
		t.Fatalf("MinifyJSON: %v", err)
	}
	if got != `{"a":1}` {
		t.Errorf("got %q, want %q", got, `{"a":1}`)
	}
}

func TestFormatLDAPFilter(t *testing.T) {
	got := FormatLDAPFilter("(|(objectClass=user)(objectClass=group))")
	if !strings.Contains(got, "\n") {
		t.Errorf("filter should be expanded, got %q", got)
	}
	if strings.Count(got, "(") != 3 || strings.Count(got, ")") != 3 {
		t.Errorf("parens must be preserved, got %q", got)
	}
}

func TestFormatDN(t *testing.T) {
	got := FormatDN("cn=user,ou=users,dc=example,dc=com")
	if strings.Count(got, "\n") != 3 {
		t.Errorf("expected one component per line, got %q", got)
	}
	if !strings.HasPrefix(got, "cn=user,") {
		t.Errorf("first component malformed: %q", got)
	}
}

func TestClipLine(t *testing.T) {
	tests := []struct {
		line     string
		maxWidth int
		fits     bool
	}{
		{"short", 10, true},
		{"exactly ten chars!", 18, true},
		{"this line is definitely longer than the limit", 10, false},
		{"no limit applies", 0, true},
	}
	for _, tt := range tests {
		got := ClipLine(tt.line, tt.maxWidth)
		if tt.fits && got != tt.line {
			t.Errorf("ClipLine(%q, %d) = %q, want unchanged", tt.line, tt.maxWidth, got)
		}
		if !tt.fits && !strings.HasSuffix(got, "…") {
			t.Errorf("ClipLine(%q, %d) = %q, want ellipsis suffix", tt.line, tt.maxWidth, got)
		}
	}
}

func TestExpandTabs(t *testing.T) {
	got := ExpandTabs("a\tb", 4)
	if got != "a   b" {
		t.Errorf("got %q, want %q", got, "a   b")
	}
	if s := ExpandTabs("plain", 4); s != "plain" {
		t.Errorf("tabless line changed: %q", s)
	}
}

func TestStripControlRunes(t *testing.T) {
	got := StripControlRunes("ok\x1b[31m\ttext\x00")
	if got != "ok[31m\ttext" {
		t.Errorf("got %q", got)
	}
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{512, "512B"},
		{2048, "2.0K"},
		{1536 * 1024, "1.5M"},
		{3 << 30, "3.0G"},
	}
	for _, tt := range tests {
		if got := HumanSize(tt.size); got != tt.want {
			t.Errorf("HumanSize(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no escapes", "plain text", "plain text"},
		{"color codes", "\x1b[31mred\x1b[0m plain", "red plain"},
		{"256 color", "\x1b[38;5;208morange\x1b[m", "orange"},
		{"cursor movement", "\x1b[2Jcleared", "cleared"},
		{"osc title", "\x1b]0;title\x07after", "after"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.in); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
