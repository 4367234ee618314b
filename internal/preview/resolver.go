// internal/preview/resolver.go
package preview

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/lorikeet/reef/internal/logger"
	"golang.org/x/text/encoding/unicode"
)

// Resolver tries an ordered list of providers and falls back to a generic
// byte/text inspection when none of them produces usable output. It is
// constructed once per session and passed by reference to whoever needs to
// resolve previews; there is no package-level registry.
type Resolver struct {
	providers []Provider
	maxBytes  int
}

// Limits bundles the truncation configuration handed to the providers at
// construction.
type Limits struct {
	TextLines     int // plain-text and markdown line cap
	TextLineWidth int // per-line rune cap for plain text
	CodeLines     int // source-code line cap
	DocumentPages int // pages handed to the document inspector
	ImageCols     int // character cells for image rendering
	ImageRows     int
	FallbackBytes int // generic fallback read cap
}

// DefaultLimits mirrors the interactive defaults.
func DefaultLimits() Limits {
	return Limits{
		TextLines:     500,
		TextLineWidth: 200,
		CodeLines:     300,
		DocumentPages: 3,
		ImageCols:     80,
		ImageRows:     40,
		FallbackBytes: 256 * 1024,
	}
}

// NewResolver builds the standard chain: most specific providers first,
// generic fallback last. The order is a contract, not an artifact; tests
// pin it.
func NewResolver(limits Limits) *Resolver {
	return &Resolver{
		providers: []Provider{
			newTextProvider(limits.TextLines, limits.TextLineWidth),
			newCodeProvider(limits.CodeLines),
			newImageProvider(limits.ImageCols, limits.ImageRows),
			newDocumentProvider(limits.DocumentPages),
			newMarkdownProvider(limits.TextLines),
		},
		maxBytes: limits.FallbackBytes,
	}
}

// Providers exposes the chain order for inspection.
func (r *Resolver) Providers() []Provider {
	return r.providers
}

// Resolve picks the preview for path. Providers are consulted in
// registration order: a claiming provider's non-empty Text or any non-Text
// result wins immediately; an empty Text result or a provider error advances
// the chain. When the chain is exhausted the generic fallback reads the file
// directly. Resolve never returns a hard failure.
func (r *Resolver) Resolve(path string) Content {
	for _, p := range r.providers {
		if !p.CanPreview(path) {
			continue
		}
		content, err := p.GeneratePreview(path)
		if err != nil {
			logger.DebugTagf("preview", "provider %s failed for %s: %v", p.Name(), path, err)
			continue
		}
		if content.IsEmptyText() {
			continue
		}
		return content
	}
	return r.fallback(path)
}

// fallback attempts to read the file as text, decoding UTF-16 when a BOM
// says so. Unreadable or binary content yields a Binary diagnostic.
func (r *Resolver) fallback(path string) Content {
	f, err := os.Open(path)
	if err != nil {
		return BinaryContent(fmt.Sprintf("[unreadable: %v]", err))
	}
	defer f.Close()

	buf := make([]byte, r.maxBytes)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return BinaryContent(fmt.Sprintf("[unreadable: %v]", err))
	}
	data := buf[:n]

	if decoded, ok := decodeUTF16(data); ok {
		data = decoded
	}
	if isBinary(data) {
		return BinaryContent(fmt.Sprintf("[binary file: %s, %d bytes read]", path, n))
	}
	if !utf8.Valid(data) {
		return BinaryContent(fmt.Sprintf("[non-UTF-8 text: %s]", path))
	}
	return TextContent(string(data))
}

var (
	utf16leBOM = []byte{0xFF, 0xFE}
	utf16beBOM = []byte{0xFE, 0xFF}
)

// decodeUTF16 converts UTF-16 content (detected by BOM) to UTF-8.
func decodeUTF16(data []byte) ([]byte, bool) {
	var endian unicode.Endianness
	switch {
	case bytes.HasPrefix(data, utf16leBOM):
		endian = unicode.LittleEndian
	case bytes.HasPrefix(data, utf16beBOM):
		endian = unicode.BigEndian
	default:
		return nil, false
	}
	dec := unicode.UTF16(endian, unicode.UseBOM).NewDecoder()
	decoded, err := dec.Bytes(data)
	if err != nil {
		return nil, false
	}
	return decoded, true
}

// isBinary applies the NUL-byte heuristic over the sampled prefix.
func isBinary(data []byte) bool {
	limit := len(data)
	if limit > 8192 {
		limit = 8192
	}
	return bytes.IndexByte(data[:limit], 0) >= 0
}
