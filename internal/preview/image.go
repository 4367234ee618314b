// internal/preview/image.go
package preview

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"os/exec"
)

// imageProvider renders raster images as character art via the external
// `chafa` renderer. Without chafa it falls back to returning the raw bytes
// as an Image result when the format decodes, so the caller can at least
// describe the picture. The chain must work with no external tools at all.
type imageProvider struct {
	exts extSet
	cols int
	rows int
}

func newImageProvider(cols, rows int) *imageProvider {
	return &imageProvider{
		exts: newExtSet("png", "jpg", "jpeg", "gif", "bmp", "webp", "ico", "tiff", "svg"),
		cols: cols,
		rows: rows,
	}
}

func (p *imageProvider) Name() string { return "image" }

func (p *imageProvider) CanPreview(path string) bool {
	return p.exts.contains(path)
}

func (p *imageProvider) GeneratePreview(path string) (Content, error) {
	if _, err := exec.LookPath("chafa"); err == nil {
		size := fmt.Sprintf("%dx%d", p.cols, p.rows)
		out, err := exec.Command("chafa", "--size", size, path).Output()
		if err == nil && len(out) > 0 {
			return TextContent(string(out)), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Content{}, fmt.Errorf("reading %s: %w", path, err)
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		return ImageContent(data), nil
	}
	return BinaryContent(fmt.Sprintf("[image: %s, %d bytes; install chafa for a rendered preview]", path, len(data))), nil
}
