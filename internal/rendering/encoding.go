package rendering

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// Encoding is an output character encoding for rendered documents.
type Encoding struct {
	// Name is written in the XML declaration and the Content-Type charset.
	Name string

	codec     encoding.Encoding // nil means the UTF-8 text is used as is
	asciiOnly bool
}

var (
	UTF8  = Encoding{Name: "utf-8"}
	UTF16 = Encoding{Name: "utf-16", codec: unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)}
	ASCII = Encoding{Name: "us-ascii", asciiOnly: true}
)

// ParseEncoding maps a configured encoding name to an Encoding.
// Unrecognized names fall back to UTF-8.
func ParseEncoding(name string) Encoding {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "utf-8", "utf8":
		return UTF8
	case "utf-16", "utf16", "unicode":
		return UTF16
	case "ascii", "us-ascii":
		return ASCII
	default:
		return UTF8
	}
}

// Encode converts rendered text to bytes in this encoding. UTF-16 output
// starts with a byte order mark.
func (e Encoding) Encode(text string) ([]byte, error) {
	if e.codec == nil {
		return []byte(text), nil
	}
	out, err := e.codec.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode as %s: %w", e.Name, err)
	}
	return out, nil
}

// ContentType returns the MIME type for XML in this encoding.
func (e Encoding) ContentType() string {
	return "application/xml; charset=" + e.Name
}
