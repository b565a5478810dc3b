package geom

import (
	"fmt"
	"math"
)

// NullOrdinate is the value used to indicate a null or missing ordinate,
// typically an unset Z.
var NullOrdinate = math.NaN()

// Coordinate is a plain (X, Y, Z) carrier for a single point on the plane,
// with an optional elevation.
//
// Coordinates hold no precision information of their own; they are assumed
// to be rounded to the precision model of the geometry they belong to.
type Coordinate struct {
	X float64
	Y float64
	Z float64
}

// NewCoordinate returns a 2D coordinate with a null Z ordinate.
func NewCoordinate(x, y float64) Coordinate {
	return Coordinate{X: x, Y: y, Z: NullOrdinate}
}

// NewCoordinateXYZ returns a 3D coordinate.
func NewCoordinateXYZ(x, y, z float64) Coordinate {
	return Coordinate{X: x, Y: y, Z: z}
}

// Equals2D reports whether the planar ordinates of both coordinates are
// equal. Z is ignored.
func (c Coordinate) Equals2D(other Coordinate) bool {
	return c.X == other.X && c.Y == other.Y
}

// Distance returns the planar distance to another coordinate. Z is ignored.
func (c Coordinate) Distance(other Coordinate) float64 {
	return math.Hypot(c.X-other.X, c.Y-other.Y)
}

// HasZ reports whether the coordinate carries an elevation.
func (c Coordinate) HasZ() bool {
	return !math.IsNaN(c.Z)
}

// String returns the coordinate in "(x, y, z)" form, omitting a null Z.
func (c Coordinate) String() string {
	if !c.HasZ() {
		return fmt.Sprintf("(%v, %v)", c.X, c.Y)
	}
	return fmt.Sprintf("(%v, %v, %v)", c.X, c.Y, c.Z)
}
