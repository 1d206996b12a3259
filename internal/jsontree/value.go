// Package jsontree provides an immutable, ordered JSON document model.
//
// A document is a tree of *Value nodes. Each node holds exactly one variant
// (object, array, string, number, bool or null). A nil *Value stands for a
// missing value: every accessor is nil-safe and reports KindUndefined, so
// lookups can be chained without intermediate checks:
//
//	header := root.Get("ReportMetadata").Get("ContactSection")
//
// Values are never mutated after Parse returns them and may be shared freely
// between goroutines.
package jsontree

import (
	"encoding/json"
	"slices"
	"strings"
)

// Member is a single key/value pair of an object, in document order.
type Member struct {
	Key   string
	Value *Value
}

// Value is one node of a parsed JSON document.
type Value struct {
	kind    Kind
	text    string // string contents or the number literal
	boolean bool
	items   []*Value
	members []Member
	index   map[string]int
}

// Kind returns the variant held by v. A nil receiver reports KindUndefined.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindUndefined
	}
	return v.kind
}

// Exists reports whether v is present in the document (it may still be null).
func (v *Value) Exists() bool {
	return v != nil
}

// Get returns the member named key, or nil when v is not an object or the key is absent.
func (v *Value) Get(key string) *Value {
	member, _ := v.Lookup(key)
	return member
}

// Lookup returns the member named key and whether it was present.
func (v *Value) Lookup(key string) (*Value, bool) {
	if v.Kind() != KindObject {
		return nil, false
	}
	i, ok := v.index[key]
	if !ok {
		return nil, false
	}
	return v.members[i].Value, true
}

// Members returns the object's members in document order.
func (v *Value) Members() []Member {
	if v.Kind() != KindObject {
		return nil
	}
	return slices.Clone(v.members)
}

// Keys returns the object's keys in document order.
func (v *Value) Keys() []string {
	if v.Kind() != KindObject {
		return nil
	}
	keys := make([]string, len(v.members))
	for i, m := range v.members {
		keys[i] = m.Key
	}
	return keys
}

// Items returns the array's elements in document order, or nil for non-arrays.
func (v *Value) Items() []*Value {
	if v.Kind() != KindArray {
		return nil
	}
	return slices.Clone(v.items)
}

// Len returns the number of array elements or object members.
func (v *Value) Len() int {
	switch v.Kind() {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.members)
	default:
		return 0
	}
}

// Str returns the string contents and true when v is a string.
func (v *Value) Str() (string, bool) {
	if v.Kind() != KindString {
		return "", false
	}
	return v.text, true
}

// Text returns the string contents, or "" when v is not a string.
func (v *Value) Text() string {
	s, _ := v.Str()
	return s
}

// IsBlank reports whether v is not a string or is a string of only whitespace.
func (v *Value) IsBlank() bool {
	return strings.TrimSpace(v.Text()) == ""
}

// Bool returns the boolean and true when v is a bool.
func (v *Value) Bool() (bool, bool) {
	if v.Kind() != KindBool {
		return false, false
	}
	return v.boolean, true
}

// Number returns the number literal and true when v is a number.
func (v *Value) Number() (json.Number, bool) {
	if v.Kind() != KindNumber {
		return "", false
	}
	return json.Number(v.text), true
}

// IsNull reports whether v is an explicit JSON null.
func (v *Value) IsNull() bool {
	return v.Kind() == KindNull
}

// NewString returns a string value.
func NewString(s string) *Value {
	return &Value{kind: KindString, text: s}
}

// NewNumber returns a number value holding the literal n.
func NewNumber(n json.Number) *Value {
	return &Value{kind: KindNumber, text: n.String()}
}

// NewBool returns a bool value.
func NewBool(b bool) *Value {
	return &Value{kind: KindBool, boolean: b}
}

// NewNull returns a null value.
func NewNull() *Value {
	return &Value{kind: KindNull}
}

// NewArray returns an array holding items.
func NewArray(items ...*Value) *Value {
	return &Value{kind: KindArray, items: slices.Clone(items)}
}

// NewObject returns an object holding members. Later duplicates of a key are
// dropped so that lookups stay unambiguous.
func NewObject(members ...Member) *Value {
	v := &Value{
		kind:    KindObject,
		members: make([]Member, 0, len(members)),
		index:   make(map[string]int, len(members)),
	}
	for _, m := range members {
		if _, dup := v.index[m.Key]; dup {
			continue
		}
		v.index[m.Key] = len(v.members)
		v.members = append(v.members, m)
	}
	return v
}
