package rendering

import (
	"strings"

	"github.com/jonathan/item-converter/internal/config"
)

// xmlWriter builds an XML document element by element. The first error
// sticks; later calls are no-ops and err reports it.
type xmlWriter struct {
	buf         strings.Builder
	indent      bool
	indentChars string
	asciiOnly   bool

	stack    []frame
	startTag bool // a start tag is open and awaits '>' or ' />'
	wrote    bool // anything precedes the next top-level node
	err      error
}

type frame struct {
	name     string
	children bool
	text     bool
}

func newXMLWriter(cfg config.RenderConfig, enc Encoding) *xmlWriter {
	w := &xmlWriter{
		indent:      cfg.Indent,
		indentChars: cfg.IndentChars,
		asciiOnly:   enc.asciiOnly,
	}
	if w.indent && !config.IsXMLWhitespace(w.indentChars) {
		w.err = &RenderError{Message: "indent characters must be XML whitespace, got " + quote(w.indentChars)}
	}
	return w
}

func (w *xmlWriter) declaration(encodingName string) {
	if w.err != nil {
		return
	}
	w.buf.WriteString(`<?xml version="1.0" encoding="`)
	w.buf.WriteString(encodingName)
	w.buf.WriteString(`"?>`)
	w.wrote = true
}

func (w *xmlWriter) start(name string) {
	if w.err != nil {
		return
	}
	if !config.IsXMLName(name) || (w.asciiOnly && !isASCII(name)) {
		w.err = &RenderError{Message: "invalid element name " + quote(name)}
		return
	}

	w.closeStartTag()
	if n := len(w.stack); n > 0 {
		w.stack[n-1].children = true
	}
	w.newline(len(w.stack))

	w.buf.WriteByte('<')
	w.buf.WriteString(name)
	w.stack = append(w.stack, frame{name: name})
	w.startTag = true
	w.wrote = true
}

func (w *xmlWriter) attr(name, value string) {
	if w.err != nil {
		return
	}
	if !w.startTag {
		w.err = &RenderError{Message: "attribute " + quote(name) + " written outside a start tag"}
		return
	}
	escaped, err := escape(value, escapeAttr, w.asciiOnly, "attribute "+name)
	if err != nil {
		w.err = err
		return
	}
	w.buf.WriteByte(' ')
	w.buf.WriteString(name)
	w.buf.WriteString(`="`)
	w.buf.WriteString(escaped)
	w.buf.WriteByte('"')
}

func (w *xmlWriter) text(s string) {
	if w.err != nil || s == "" {
		return
	}
	n := len(w.stack)
	if n == 0 {
		w.err = &RenderError{Message: "text written outside the root element"}
		return
	}
	escaped, err := escape(s, escapeText, w.asciiOnly, "element "+w.stack[n-1].name)
	if err != nil {
		w.err = err
		return
	}
	w.closeStartTag()
	w.stack[n-1].text = true
	w.buf.WriteString(escaped)
}

func (w *xmlWriter) end() {
	if w.err != nil {
		return
	}
	n := len(w.stack)
	if n == 0 {
		w.err = &RenderError{Message: "unbalanced end element"}
		return
	}
	top := w.stack[n-1]
	w.stack = w.stack[:n-1]

	if w.startTag {
		w.buf.WriteString(" />")
		w.startTag = false
		return
	}
	// Elements holding text keep their end tag on the same line.
	if top.children && !top.text {
		w.newline(n - 1)
	}
	w.buf.WriteString("</")
	w.buf.WriteString(top.name)
	w.buf.WriteByte('>')
}

// element writes <name>s</name>.
func (w *xmlWriter) element(name, s string) {
	w.start(name)
	w.text(s)
	w.end()
}

func (w *xmlWriter) String() (string, error) {
	if w.err != nil {
		return "", w.err
	}
	if len(w.stack) > 0 {
		return "", &RenderError{Message: "unclosed element " + quote(w.stack[len(w.stack)-1].name)}
	}
	return w.buf.String(), nil
}

func (w *xmlWriter) closeStartTag() {
	if w.startTag {
		w.buf.WriteByte('>')
		w.startTag = false
	}
}

func (w *xmlWriter) newline(depth int) {
	if !w.indent || !w.wrote {
		return
	}
	// No indentation inside mixed content.
	if n := len(w.stack); n > 0 && w.stack[n-1].text {
		return
	}
	w.buf.WriteByte('\n')
	for range depth {
		w.buf.WriteString(w.indentChars)
	}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

func quote(s string) string {
	return `"` + s + `"`
}
