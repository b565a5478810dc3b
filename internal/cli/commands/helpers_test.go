package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		fields  []string
		wantX   float64
		wantY   float64
		wantZ   float64
		hasZ    bool
		wantErr bool
	}{
		{name: "2d", fields: []string{"1.5", "-2.5"}, wantX: 1.5, wantY: -2.5},
		{name: "3d", fields: []string{"1", "2", "3"}, wantX: 1, wantY: 2, wantZ: 3, hasZ: true},
		{name: "whitespace", fields: []string{" 1.5 ", " 2 "}, wantX: 1.5, wantY: 2},
		{name: "too few fields", fields: []string{"1"}, wantErr: true},
		{name: "too many fields", fields: []string{"1", "2", "3", "4"}, wantErr: true},
		{name: "non numeric", fields: []string{"a", "2"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := parseCoordinate(tt.fields)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantX, c.X)
			assert.Equal(t, tt.wantY, c.Y)
			assert.Equal(t, tt.hasZ, c.HasZ())
			if tt.hasZ {
				assert.Equal(t, tt.wantZ, c.Z)
			}
		})
	}
}

func TestReadCoordinates(t *testing.T) {
	input := strings.NewReader("x,y\n# comment\n1,2\n3.5,-4.5,9\n")

	coords, err := readCoordinates(input)
	require.NoError(t, err)
	require.Len(t, coords, 2)

	assert.Equal(t, 1.0, coords[0].X)
	assert.Equal(t, 2.0, coords[0].Y)
	assert.False(t, coords[0].HasZ())
	assert.Equal(t, 9.0, coords[1].Z)
}

func TestReadCoordinatesRejectsBadRow(t *testing.T) {
	_, err := readCoordinates(strings.NewReader("1,2\nnope,2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadCoordinatesEmptyInput(t *testing.T) {
	coords, err := readCoordinates(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, coords)
}
