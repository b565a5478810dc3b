package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/geomgrid/pkg/geom"
)

// newTestFlags mirrors the root command's persistent flag set.
func newTestFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("precision", "", "")
	flags.Float64("scale", 0, "")
	flags.String("state", "", "")
	flags.String("output", "", "")
	flags.Bool("verbose", false, "")
	return flags
}

// chdir changes to dir for the duration of the test, restoring the
// previous working directory on cleanup (stand-in for t.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func writeConfigFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "geomgrid.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	ResetConfig()
	chdir(t, t.TempDir())

	cfg, err := LoadConfig("", newTestFlags())
	require.NoError(t, err)

	assert.Equal(t, DefaultPrecision, cfg.Precision)
	assert.Zero(t, cfg.Scale)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.False(t, cfg.Verbose)
	assert.Contains(t, cfg.StatePath, filepath.Join(".geomgrid", "models.db"))
}

func TestLoadConfigFromFile(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	path := writeConfigFile(t, dir, "precision: fixed\nscale: 1000\nverbose: true\n")

	cfg, err := LoadConfig(path, newTestFlags())
	require.NoError(t, err)

	assert.Equal(t, "fixed", cfg.Precision)
	assert.Equal(t, 1000.0, cfg.Scale)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, path, GetConfigFileUsed())
}

func TestLoadConfigPrecedence(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	path := writeConfigFile(t, dir, "precision: fixed\nscale: 10\n")

	// Env beats file.
	t.Setenv("GEOMGRID_SCALE", "100")
	cfg, err := LoadConfig(path, newTestFlags())
	require.NoError(t, err)
	assert.Equal(t, 100.0, cfg.Scale)

	// Flag beats env and file.
	flags := newTestFlags()
	require.NoError(t, flags.Set("scale", "1000"))
	cfg, err = LoadConfig(path, flags)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, cfg.Scale)
	assert.Equal(t, "fixed", cfg.Precision, "unset flags must not mask file values")
}

func TestLoadConfigStateFlagMapsToStatePath(t *testing.T) {
	ResetConfig()
	chdir(t, t.TempDir())

	flags := newTestFlags()
	require.NoError(t, flags.Set("state", ":memory:"))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, ":memory:", cfg.StatePath)
}

func TestLoadConfigFindsFileUpward(t *testing.T) {
	ResetConfig()
	root := t.TempDir()
	writeConfigFile(t, root, "precision: floating-single\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	chdir(t, nested)

	cfg, err := LoadConfig("", newTestFlags())
	require.NoError(t, err)
	assert.Equal(t, "floating-single", cfg.Precision)
}

func TestPrecisionModelFromConfig(t *testing.T) {
	tests := []struct {
		name      string
		precision string
		scale     float64
		wantType  geom.Type
		wantScale float64
		wantErr   bool
	}{
		{name: "floating", precision: "floating", wantType: geom.TypeFloating},
		{name: "floating single", precision: "floating-single", wantType: geom.TypeFloatingSingle},
		{name: "fixed default scale", precision: "fixed", wantType: geom.TypeFixed, wantScale: 1},
		{name: "fixed with scale", precision: "fixed", scale: 1000, wantType: geom.TypeFixed, wantScale: 1000},
		{name: "fixed with grid size", precision: "fixed", scale: -0.001, wantType: geom.TypeFixed, wantScale: 1000},
		{name: "unknown precision", precision: "double", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Precision: tt.precision, Scale: tt.scale}
			pm, err := cfg.PrecisionModel()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, pm.ModelType())
			if tt.wantType == geom.TypeFixed {
				assert.Equal(t, tt.wantScale, pm.Scale())
			}
		})
	}
}
