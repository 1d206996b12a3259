package rendering

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// escapeMode selects which characters need entity references.
type escapeMode int

const (
	escapeText escapeMode = iota
	escapeAttr
)

// escape writes s with entity references. Text escapes & < > and a bare
// carriage return; attributes also escape quotes, tabs and newlines. When
// asciiOnly is set, runes above U+007F are written as hexadecimal character
// references.
func escape(s string, mode escapeMode, asciiOnly bool, context string) (string, error) {
	if s == "" {
		return "", nil
	}

	var result strings.Builder
	result.Grow(len(s) + len(s)/8)

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return "", &CharError{Context: context, Rune: r}
		}
		i += size

		if !isXMLChar(r) {
			return "", &CharError{Context: context, Rune: r}
		}

		switch r {
		case '&':
			result.WriteString("&amp;")
		case '<':
			result.WriteString("&lt;")
		case '>':
			result.WriteString("&gt;")
		case '\r':
			result.WriteString("&#xD;")
		case '"':
			if mode == escapeAttr {
				result.WriteString("&quot;")
			} else {
				result.WriteRune(r)
			}
		case '\n', '\t':
			if mode == escapeAttr {
				writeCharRef(&result, r)
			} else {
				result.WriteRune(r)
			}
		default:
			if asciiOnly && r > utf8.RuneSelf-1 {
				writeCharRef(&result, r)
			} else {
				result.WriteRune(r)
			}
		}
	}

	return result.String(), nil
}

func writeCharRef(b *strings.Builder, r rune) {
	b.WriteString("&#x")
	b.WriteString(strings.ToUpper(strconv.FormatInt(int64(r), 16)))
	b.WriteByte(';')
}

// isXMLChar reports whether r is in the XML 1.0 Char production.
func isXMLChar(r rune) bool {
	switch {
	case r == 0x09 || r == 0x0A || r == 0x0D:
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	default:
		return false
	}
}
