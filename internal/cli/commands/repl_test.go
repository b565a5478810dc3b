package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/geomgrid/pkg/geom"
)

func TestSnapLineScalar(t *testing.T) {
	pm, err := geom.NewFixedPrecisionModel(1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, snapLine(&buf, pm, "2.5"))
	assert.Equal(t, "3\n", buf.String())

	buf.Reset()
	require.NoError(t, snapLine(&buf, pm, "-2.5"))
	assert.Equal(t, "-3\n", buf.String())
}

func TestSnapLineCoordinate(t *testing.T) {
	pm, err := geom.NewFixedPrecisionModel(1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, snapLine(&buf, pm, "2.5,-2.5,7.7"))
	assert.Equal(t, "(3, -3, 7.7)\n", buf.String())
}

func TestSnapLineBadInput(t *testing.T) {
	pm := geom.NewPrecisionModel()
	var buf bytes.Buffer
	assert.Error(t, snapLine(&buf, pm, "nope"))
	assert.Error(t, snapLine(&buf, pm, "1,nope"))
}

func TestHandleREPLCommandScaleAndGrid(t *testing.T) {
	cmd := NewREPLCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	pm := geom.NewPrecisionModel()

	pm, quit := handleREPLCommand(cmd, pm, ".scale 1000")
	assert.False(t, quit)
	assert.Equal(t, geom.TypeFixed, pm.ModelType())
	assert.Equal(t, 1000.0, pm.Scale())

	pm, _ = handleREPLCommand(cmd, pm, ".grid 0.25")
	assert.Equal(t, 0.25, pm.GridSize())
	assert.Equal(t, 4.0, pm.Scale())

	pm, _ = handleREPLCommand(cmd, pm, ".floating")
	assert.True(t, pm.IsFloating())

	_, quit = handleREPLCommand(cmd, pm, ".quit")
	assert.True(t, quit)
}

func TestHandleREPLCommandRejectsZeroScale(t *testing.T) {
	cmd := NewREPLCommand()
	var errBuf bytes.Buffer
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&errBuf)

	pm := geom.NewPrecisionModel()
	next, quit := handleREPLCommand(cmd, pm, ".scale 0")

	assert.False(t, quit)
	assert.True(t, next.IsFloating(), "model must be unchanged on error")
	assert.Contains(t, errBuf.String(), "non-zero")
}
