package geom

import "strings"

// Type identifies the precision regime of a PrecisionModel.
//
// The set is closed: exactly three regimes exist. Because Type is a plain
// value enumeration, two Types with the same value are the same regime —
// there is no singleton registry to keep consistent across a persistence
// round-trip. ParseType resolves a stored name back to the canonical
// constant.
type Type int32

const (
	// TypeFloating represents full double-precision floating point.
	// This is the default precision model, and the zero value of Type.
	TypeFloating Type = iota
	// TypeFloatingSingle represents single-precision floating point.
	TypeFloatingSingle
	// TypeFixed represents a model with a fixed grid of allowable values,
	// specified by a scale factor or an explicit grid size.
	TypeFixed
)

// typeNames maps types to their canonical names. The names match the
// historical serialized form, including the space in "FLOATING SINGLE".
var typeNames = map[Type]string{
	TypeFloating:       "FLOATING",
	TypeFloatingSingle: "FLOATING SINGLE",
	TypeFixed:          "FIXED",
}

// String returns the canonical name of the type.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseType resolves a type name back to the canonical Type constant.
// It accepts the canonical names as well as relaxed lowercase and
// hyphen/underscore-separated forms ("floating-single", "floating_single").
// Returns TypeFloating and false if the name is not recognized.
func ParseType(name string) (Type, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, "-", " ")
	normalized = strings.ReplaceAll(normalized, "_", " ")
	switch normalized {
	case "FLOATING":
		return TypeFloating, true
	case "FLOATING SINGLE":
		return TypeFloatingSingle, true
	case "FIXED":
		return TypeFixed, true
	default:
		return TypeFloating, false
	}
}
