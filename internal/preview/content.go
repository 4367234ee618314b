// internal/preview/content.go
package preview

// Kind tags a Content value. Exactly one representation is meaningful per
// result.
type Kind int

const (
	KindText Kind = iota
	KindBinary
	KindImage
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBinary:
		return "binary"
	case KindImage:
		return "image"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Content is the tagged result of preview generation: renderable text, a
// descriptive note about binary data, raw image bytes, or an error message
// meant for display rather than propagation.
type Content struct {
	kind    Kind
	text    string // KindText, KindBinary (description), KindError (message)
	payload []byte // KindImage
}

// TextContent wraps renderable text.
func TextContent(text string) Content {
	return Content{kind: KindText, text: text}
}

// BinaryContent wraps a human-readable description of non-text data.
func BinaryContent(description string) Content {
	return Content{kind: KindBinary, text: description}
}

// ImageContent wraps raw image bytes.
func ImageContent(data []byte) Content {
	return Content{kind: KindImage, payload: data}
}

// ErrorContent wraps a message carried as a displayable payload, not a Go
// error.
func ErrorContent(message string) Content {
	return Content{kind: KindError, text: message}
}

// Kind reports which variant is active.
func (c Content) Kind() Kind {
	return c.kind
}

// Text returns the textual payload for the Text, Binary and Error variants.
func (c Content) Text() string {
	return c.text
}

// Image returns the raw bytes of the Image variant, nil otherwise.
func (c Content) Image() []byte {
	return c.payload
}

// IsEmptyText reports whether this is a Text variant with no content; the
// resolver treats that as "try the next provider".
func (c Content) IsEmptyText() bool {
	return c.kind == KindText && c.text == ""
}
