// internal/textutil/ldap.go
package textutil

import "strings"

// FormatLDAPFilter expands an LDAP search filter onto multiple indented
// lines, two spaces per nesting level.
func FormatLDAPFilter(filter string) string {
	var b strings.Builder
	indent := 0
	for _, r := range filter {
		switch r {
		case '(':
			b.WriteRune(r)
			indent += 2
		case ')':
			if indent >= 2 {
				indent -= 2
			}
			b.WriteByte('\n')
			b.WriteString(strings.Repeat(" ", indent))
			b.WriteRune(r)
		case '|', '&':
			b.WriteString("\n  ")
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatDN splits a distinguished name onto one line per component.
func FormatDN(dn string) string {
	var b strings.Builder
	parts := strings.Split(dn, ",")
	for i, part := range parts {
		if i > 0 {
			// Only break before key=value components; a comma inside a
			// value stays put.
			if eq := strings.IndexByte(part, '='); eq <= 0 {
				b.WriteByte(',')
				b.WriteString(part)
				continue
			}
			b.WriteString(",\n")
		}
		b.WriteString(part)
	}
	return b.String()
}
