package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCoordinate(t *testing.T) {
	c := NewCoordinate(1.0, 2.0)
	assert.Equal(t, 1.0, c.X)
	assert.Equal(t, 2.0, c.Y)
	assert.False(t, c.HasZ())

	c3 := NewCoordinateXYZ(1.0, 2.0, 3.0)
	assert.True(t, c3.HasZ())
	assert.Equal(t, 3.0, c3.Z)
}

func TestCoordinateEquals2D(t *testing.T) {
	a := NewCoordinateXYZ(1.0, 2.0, 5.0)
	b := NewCoordinateXYZ(1.0, 2.0, 9.0)
	c := NewCoordinate(1.0, 2.5)

	assert.True(t, a.Equals2D(b), "Z must be ignored")
	assert.False(t, a.Equals2D(c))
}

func TestCoordinateDistance(t *testing.T) {
	a := NewCoordinate(0, 0)
	b := NewCoordinate(3, 4)
	assert.Equal(t, 5.0, a.Distance(b))
}

func TestCoordinateString(t *testing.T) {
	assert.Equal(t, "(1, 2)", NewCoordinate(1, 2).String())
	assert.Equal(t, "(1, 2, 3)", NewCoordinateXYZ(1, 2, 3).String())
}
