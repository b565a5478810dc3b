package wkt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/geomgrid/pkg/geom"
)

func fixedModel(t *testing.T, scale float64) geom.PrecisionModel {
	t.Helper()
	pm, err := geom.NewFixedPrecisionModel(scale)
	require.NoError(t, err)
	return pm
}

func TestWritePoint(t *testing.T) {
	w := NewWriter(geom.NewPrecisionModel())

	assert.Equal(t, "POINT (1 2)", w.WritePoint(geom.NewCoordinate(1, 2)))
	assert.Equal(t, "POINT (1.5 -2.25)", w.WritePoint(geom.NewCoordinate(1.5, -2.25)))
	assert.Equal(t, "POINT (1 2 3)", w.WritePoint(geom.NewCoordinateXYZ(1, 2, 3)))
}

func TestWriterPrecisionFromModel(t *testing.T) {
	// A fixed scale-1 model estimates a single significant digit, so the
	// writer truncates the display precision accordingly.
	coarse := NewWriter(fixedModel(t, 1))
	assert.Equal(t, "POINT (1 -3)", coarse.WritePoint(geom.NewCoordinate(1.04, -3.04)))

	fine := NewWriter(geom.NewPrecisionModel())
	assert.Equal(t, "POINT (1.04 -3.04)", fine.WritePoint(geom.NewCoordinate(1.04, -3.04)))
}

func TestWriteLineString(t *testing.T) {
	w := NewWriter(fixedModel(t, 1000))

	coords := []geom.Coordinate{
		geom.NewCoordinate(1, 1),
		geom.NewCoordinate(1, 3),
		geom.NewCoordinate(2, 3),
	}
	assert.Equal(t, "LINESTRING (1 1, 1 3, 2 3)", w.WriteLineString(coords))
	assert.Equal(t, "LINESTRING EMPTY", w.WriteLineString(nil))
}

func TestWritePolygonClosesRing(t *testing.T) {
	w := NewWriter(geom.NewPrecisionModel())

	shell := []geom.Coordinate{
		geom.NewCoordinate(1, 1),
		geom.NewCoordinate(1, 3),
		geom.NewCoordinate(2, 3),
		geom.NewCoordinate(2, 1),
	}
	assert.Equal(t, "POLYGON ((1 1, 1 3, 2 3, 2 1, 1 1))", w.WritePolygon(shell))
	assert.Equal(t, "POLYGON EMPTY", w.WritePolygon(nil))

	// Input slice must not be mutated by the implicit closing.
	assert.Len(t, shell, 4)
}

func TestFormatOrdinateAvoidsExponent(t *testing.T) {
	w := NewWriter(geom.NewPrecisionModel())
	assert.Equal(t, "POINT (100000000000000000000 0)", w.WritePoint(geom.NewCoordinate(1e20, 0)))
}
