// Package wkt renders coordinates as well-known text. The output precision
// is driven by a precision model: the writer prints as many significant
// digits as the model can represent, so a snapped fixed-grid geometry never
// gains spurious decimal noise on the way out.
package wkt

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/geomgrid/pkg/geom"
)

// maxDigits caps the ordinate width at full double precision.
const maxDigits = 16

// Writer renders coordinate sequences as WKT.
type Writer struct {
	digits int
}

// NewWriter returns a writer whose ordinate precision is taken from the
// model's maximum significant digits, clamped to [1, 16].
func NewWriter(pm geom.PrecisionModel) *Writer {
	digits := pm.MaximumSignificantDigits()
	if digits < 1 {
		digits = 1
	}
	if digits > maxDigits {
		digits = maxDigits
	}
	return &Writer{digits: digits}
}

// WritePoint renders a single coordinate as a POINT.
func (w *Writer) WritePoint(c geom.Coordinate) string {
	var sb strings.Builder
	sb.WriteString("POINT (")
	w.writeCoordinate(&sb, c)
	sb.WriteString(")")
	return sb.String()
}

// WriteLineString renders a coordinate sequence as a LINESTRING.
// An empty sequence renders as LINESTRING EMPTY.
func (w *Writer) WriteLineString(coords []geom.Coordinate) string {
	if len(coords) == 0 {
		return "LINESTRING EMPTY"
	}
	var sb strings.Builder
	sb.WriteString("LINESTRING (")
	w.writeSequence(&sb, coords)
	sb.WriteString(")")
	return sb.String()
}

// WritePolygon renders a shell ring as a POLYGON. The ring is closed
// automatically if the last coordinate does not repeat the first.
// An empty shell renders as POLYGON EMPTY.
func (w *Writer) WritePolygon(shell []geom.Coordinate) string {
	if len(shell) == 0 {
		return "POLYGON EMPTY"
	}
	ring := shell
	if !ring[0].Equals2D(ring[len(ring)-1]) {
		ring = append(append([]geom.Coordinate{}, ring...), ring[0])
	}
	var sb strings.Builder
	sb.WriteString("POLYGON ((")
	w.writeSequence(&sb, ring)
	sb.WriteString("))")
	return sb.String()
}

func (w *Writer) writeSequence(sb *strings.Builder, coords []geom.Coordinate) {
	for i, c := range coords {
		if i > 0 {
			sb.WriteString(", ")
		}
		w.writeCoordinate(sb, c)
	}
}

func (w *Writer) writeCoordinate(sb *strings.Builder, c geom.Coordinate) {
	sb.WriteString(w.formatOrdinate(c.X))
	sb.WriteString(" ")
	sb.WriteString(w.formatOrdinate(c.Y))
	if c.HasZ() {
		sb.WriteString(" ")
		sb.WriteString(w.formatOrdinate(c.Z))
	}
}

// formatOrdinate formats a value with the writer's significant-digit count,
// avoiding exponent notation for the magnitudes WKT consumers expect.
func (w *Writer) formatOrdinate(v float64) string {
	s := strconv.FormatFloat(v, 'g', w.digits, 64)
	// FormatFloat switches to exponent form for large/small magnitudes;
	// rewrite those in plain decimal.
	if strings.ContainsAny(s, "eE") {
		s = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return s
}
