package jsontree

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindUndefined is the kind of a missing value (a nil *Value).
	KindUndefined Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// IsScalar reports whether k is a leaf kind (string, number, bool or null).
func (k Kind) IsScalar() bool {
	switch k {
	case KindNull, KindBool, KindNumber, KindString:
		return true
	default:
		return false
	}
}
