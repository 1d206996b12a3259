package jsontree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// MaxDepth is the deepest nesting of arrays and objects Parse accepts.
const MaxDepth = 64

var (
	// ErrEmptyDocument is returned when the input holds no JSON value at all.
	ErrEmptyDocument = errors.New("document is empty")

	// ErrNilDocument is returned by consumers handed a nil document.
	ErrNilDocument = errors.New("document must not be nil")
)

// SyntaxError describes input that is not a single well-formed JSON value.
type SyntaxError struct {
	Offset  int64
	Message string
	Cause   error
}

func (e *SyntaxError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid JSON at offset %d: %s: %v", e.Offset, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid JSON at offset %d: %s", e.Offset, e.Message)
}

func (e *SyntaxError) Unwrap() error {
	return e.Cause
}

// Parse decodes exactly one JSON value from data.
func Parse(data []byte) (*Value, error) {
	return Decode(bytes.NewReader(data))
}

// MustParse is like Parse but panics on error. It is meant for tests and
// documents embedded in source.
func MustParse(s string) *Value {
	v, err := Parse([]byte(s))
	if err != nil {
		panic(err)
	}
	return v
}

// Decode reads exactly one JSON value from r. Trailing non-whitespace input,
// duplicate object keys and nesting deeper than MaxDepth are rejected.
func Decode(r io.Reader) (*Value, error) {
	dec := json.NewDecoder(r)
	// Keep number literals intact; callers decide how to compare them.
	dec.UseNumber()
	p := &parser{dec: dec}

	tok, err := dec.Token()
	if err == io.EOF {
		return nil, ErrEmptyDocument
	}
	if err != nil {
		return nil, p.wrap("malformed value", err)
	}

	root, err := p.value(tok, 0)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); err != io.EOF {
		if err != nil {
			return nil, p.wrap("malformed trailing data", err)
		}
		return nil, p.fail("unexpected data after top-level value")
	}

	return root, nil
}

type parser struct {
	dec *json.Decoder
}

func (p *parser) fail(msg string) error {
	return &SyntaxError{Offset: p.dec.InputOffset(), Message: msg}
}

func (p *parser) wrap(msg string, err error) error {
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return &SyntaxError{Offset: se.Offset, Message: msg, Cause: err}
	}
	if err == io.EOF || errors.Is(err, io.ErrUnexpectedEOF) {
		return &SyntaxError{Offset: p.dec.InputOffset(), Message: "unexpected end of input", Cause: io.ErrUnexpectedEOF}
	}
	return &SyntaxError{Offset: p.dec.InputOffset(), Message: msg, Cause: err}
}

func (p *parser) next() (json.Token, error) {
	tok, err := p.dec.Token()
	if err != nil {
		return nil, p.wrap("malformed value", err)
	}
	return tok, nil
}

func (p *parser) value(tok json.Token, depth int) (*Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		if depth >= MaxDepth {
			return nil, p.fail(fmt.Sprintf("nesting exceeds maximum depth of %d", MaxDepth))
		}
		switch t {
		case '{':
			return p.object(depth + 1)
		case '[':
			return p.array(depth + 1)
		default:
			return nil, p.fail(fmt.Sprintf("unexpected delimiter %q", rune(t)))
		}
	case string:
		return NewString(t), nil
	case json.Number:
		return NewNumber(t), nil
	case bool:
		return NewBool(t), nil
	case nil:
		return NewNull(), nil
	default:
		return nil, p.fail(fmt.Sprintf("unexpected token %v", t))
	}
}

func (p *parser) object(depth int) (*Value, error) {
	v := &Value{kind: KindObject, index: make(map[string]int)}
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if tok == json.Delim('}') {
			return v, nil
		}

		key, ok := tok.(string)
		if !ok {
			return nil, p.fail("object key must be a string")
		}
		if _, dup := v.index[key]; dup {
			return nil, p.fail(fmt.Sprintf("duplicate key %q", key))
		}

		tok, err = p.next()
		if err != nil {
			return nil, err
		}
		member, err := p.value(tok, depth)
		if err != nil {
			return nil, err
		}

		v.index[key] = len(v.members)
		v.members = append(v.members, Member{Key: key, Value: member})
	}
}

func (p *parser) array(depth int) (*Value, error) {
	v := &Value{kind: KindArray}
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if tok == json.Delim(']') {
			return v, nil
		}

		item, err := p.value(tok, depth)
		if err != nil {
			return nil, err
		}
		v.items = append(v.items, item)
	}
}
