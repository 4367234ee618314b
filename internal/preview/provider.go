// internal/preview/provider.go
package preview

import (
	"path/filepath"
	"strings"
)

// Provider renders a bounded preview for a class of file types. Providers
// are stateless beyond configuration fixed at construction; CanPreview
// decides purely on the (case-insensitive) file extension.
type Provider interface {
	Name() string
	CanPreview(path string) bool
	GeneratePreview(path string) (Content, error)
}

// extSet answers extension membership questions for providers.
type extSet map[string]struct{}

func newExtSet(exts ...string) extSet {
	s := make(extSet, len(exts))
	for _, e := range exts {
		s[e] = struct{}{}
	}
	return s
}

// contains matches the path's extension, lowercased and without the dot.
func (s extSet) contains(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return false
	}
	_, ok := s[strings.TrimPrefix(ext, ".")]
	return ok
}
