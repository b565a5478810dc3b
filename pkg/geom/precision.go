// Package geom provides the coordinate precision model for planar geometry
// pipelines: the grid of allowable numeric positions that geometric
// computations are permitted to produce and consume.
//
// Three regimes are supported. A floating model applies normal
// double-precision semantics with no rounding. A floating-single model
// truncates values to single-precision granularity. A fixed model snaps
// values to a regular grid defined by a scale factor (grid spacing 1/scale)
// or by an explicit grid size.
package geom

import (
	"errors"
	"fmt"
	"math"
)

// MaximumPreciseValue is the largest integer exactly representable in a
// double (2^53). It bounds the useful range of a fixed-precision grid and
// corresponds to almost 16 decimal digits of precision.
const MaximumPreciseValue = 9007199254740992.0

// ErrZeroScale is returned when a fixed precision model is constructed with
// a zero scale factor, which would imply an infinite or zero grid size.
var ErrZeroScale = errors.New("geom: fixed precision scale must be non-zero")

// PrecisionModel specifies the grid of allowable values for the coordinates
// of a geometry. It is an immutable value: construct once, share freely.
// The zero value is the full floating-point model.
//
// For a fixed model, input ordinates are mapped to the grid by
//
//	round(v * scale) / scale
//
// or, when an explicit grid size was requested (by passing a negative scale
// to NewFixedPrecisionModel), by
//
//	round(v / gridSize) * gridSize
//
// For example, scale 1000 keeps 3 decimal places; scale 0.001 (or an
// explicit grid size of -1000) rounds to the nearest 1000.
type PrecisionModel struct {
	modelType Type

	// scale determines the number of decimal places kept by a fixed model.
	// Always stored as a positive magnitude.
	scale float64

	// gridSize is the explicitly requested grid spacing, or 0 when the grid
	// is derived from scale on demand.
	gridSize float64
}

// NewPrecisionModel returns the default model, full floating precision.
func NewPrecisionModel() PrecisionModel {
	return PrecisionModel{modelType: TypeFloating}
}

// NewTypedPrecisionModel returns a model of the given type. A fixed model
// defaults to scale 1 (grid spacing 1).
func NewTypedPrecisionModel(t Type) PrecisionModel {
	pm := PrecisionModel{modelType: t}
	if t == TypeFixed {
		pm.setScale(1.0)
	}
	return pm
}

// NewFixedPrecisionModel returns a fixed model for the given scale factor.
//
// A negative scale requests an exact grid size instead: the grid spacing is
// its absolute value and the scale is computed as the reciprocal. This
// avoids the robustness loss of a fractional scale when the desired grid
// spacing is known exactly.
//
// A zero scale is a contract violation and is rejected with ErrZeroScale.
func NewFixedPrecisionModel(scale float64) (PrecisionModel, error) {
	if scale == 0 {
		return PrecisionModel{}, ErrZeroScale
	}
	pm := PrecisionModel{modelType: TypeFixed}
	pm.setScale(scale)
	return pm, nil
}

// setScale normalizes the caller-supplied scale during construction.
// A negative value selects an explicit grid size, with the scale set to the
// reciprocal. A positive value selects the scale directly and leaves
// gridSize 0 so the spacing is derived from scale where needed.
func (pm *PrecisionModel) setScale(scale float64) {
	if scale < 0 {
		pm.gridSize = math.Abs(scale)
		pm.scale = 1.0 / pm.gridSize
		return
	}
	pm.scale = math.Abs(scale)
	pm.gridSize = 0.0
}

// ModelType returns the precision regime of the model.
func (pm PrecisionModel) ModelType() Type {
	return pm.modelType
}

// IsFloating reports whether the model uses floating-point semantics
// (either full double or single precision).
func (pm PrecisionModel) IsFloating() bool {
	return pm.modelType == TypeFloating || pm.modelType == TypeFloatingSingle
}

// Scale returns the scale factor of a fixed model. The number of decimal
// places kept is the base-10 logarithm of the scale; fractional scales move
// the kept places left of the decimal point.
func (pm PrecisionModel) Scale() float64 {
	return pm.scale
}

// GridSize returns the spacing between adjacent allowable values of a fixed
// model: the explicitly requested grid size if one was set, otherwise the
// reciprocal of the scale. Floating models have no grid; NaN is returned.
func (pm PrecisionModel) GridSize() float64 {
	if pm.IsFloating() {
		return math.NaN()
	}
	if pm.gridSize != 0 {
		return pm.gridSize
	}
	return 1.0 / pm.scale
}

// ExplicitGridSize returns the explicitly requested grid size, or 0 when
// the grid is derived from the scale on demand. Persistence keeps this
// distinction; most callers want GridSize instead.
func (pm PrecisionModel) ExplicitGridSize() float64 {
	return pm.gridSize
}

// MakePrecise rounds a value to the model's grid.
//
// Asymmetric arithmetic rounding is used: ties round away from zero in both
// directions, so rounding behaves identically wherever the value sits on the
// number line. Banker's rounding (round-half-to-even) is not suitable here;
// its direction-dependent bias breaks the consistency guarantees downstream
// geometric algorithms rely on.
//
// NaN values pass through unchanged.
func (pm PrecisionModel) MakePrecise(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	switch pm.modelType {
	case TypeFloatingSingle:
		return float64(float32(v))
	case TypeFixed:
		// math.Round rounds half away from zero.
		if pm.gridSize > 0 {
			return math.Round(v/pm.gridSize) * pm.gridSize
		}
		return math.Round(v*pm.scale) / pm.scale
	}
	// TypeFloating: no rounding necessary.
	return v
}

// MakePreciseCoordinate rounds the planar ordinates of a coordinate to the
// model's grid, in place. Z is deliberately left untouched: elevation data
// is not assumed to share the planar grid.
func (pm PrecisionModel) MakePreciseCoordinate(c *Coordinate) {
	// Fast path for full precision.
	if pm.modelType == TypeFloating {
		return
	}
	c.X = pm.MakePrecise(c.X)
	c.Y = pm.MakePrecise(c.Y)
}

// MaximumSignificantDigits returns an estimate of the number of significant
// decimal digits the model can represent, for use by text output routines
// choosing a display precision.
//
// The estimate is deliberately rough. For fixed scales that are exact powers
// of ten it is 1 greater than the true minimal digit count, and rougher
// still otherwise; consumers rely on the over-count as a safety margin.
func (pm PrecisionModel) MaximumSignificantDigits() int {
	switch pm.modelType {
	case TypeFloatingSingle:
		return 6
	case TypeFixed:
		return 1 + int(math.Ceil(math.Log10(pm.scale)))
	default:
		return 16
	}
}

// Compare orders two models by precision strength: a model is greater than
// another if it provides more maximum significant digits. The ordering is
// approximate when a floating model is compared against a fixed one, but it
// is total, antisymmetric and transitive for all pairs.
func (pm PrecisionModel) Compare(other PrecisionModel) int {
	sigDigits := pm.MaximumSignificantDigits()
	otherSigDigits := other.MaximumSignificantDigits()
	switch {
	case sigDigits < otherSigDigits:
		return -1
	case sigDigits > otherSigDigits:
		return 1
	default:
		return 0
	}
}

// MostPrecise returns whichever of the two models allows the greater number
// of significant digits, preferring the first on ties.
func MostPrecise(a, b PrecisionModel) PrecisionModel {
	if a.Compare(b) >= 0 {
		return a
	}
	return b
}

// Equal reports whether two models describe the same precision: the same
// regime and a bit-identical scale. The grid-size bookkeeping is excluded,
// so a model built from scale 1000 equals one built from grid size 0.001.
func (pm PrecisionModel) Equal(other PrecisionModel) bool {
	return pm.modelType == other.modelType &&
		math.Float64bits(pm.scale) == math.Float64bits(other.scale)
}

// Hash returns a hash consistent with Equal: equal models hash equal.
func (pm PrecisionModel) Hash() uint64 {
	const prime = 31
	h := uint64(1)
	h = h*prime + uint64(pm.modelType)
	h = h*prime + math.Float64bits(pm.scale)
	return h
}

// String returns a human-readable description of the model. The form is
// purely descriptive and not round-trippable.
func (pm PrecisionModel) String() string {
	switch pm.modelType {
	case TypeFloating:
		return "Floating"
	case TypeFloatingSingle:
		return "Floating-Single"
	case TypeFixed:
		return fmt.Sprintf("Fixed (Scale=%v)", pm.scale)
	default:
		return "UNKNOWN"
	}
}
