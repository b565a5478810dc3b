// Package commands implements the geomgrid subcommands.
package commands

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/geomgrid/internal/cli/output"
	"github.com/leapstack-labs/geomgrid/internal/config"
	"github.com/leapstack-labs/geomgrid/internal/state"
	"github.com/leapstack-labs/geomgrid/pkg/geom"
)

// newRenderer builds a renderer for the command from the configured output
// mode, honoring a per-command --format override when present.
func newRenderer(cmd *cobra.Command, formatOverride string) *output.Renderer {
	mode := output.ModeAuto
	if cfg := config.GetCurrentConfig(); cfg != nil {
		mode = output.Mode(cfg.OutputFormat)
	}
	if formatOverride != "" {
		mode = output.Mode(formatOverride)
	}
	return output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)
}

// configuredModel builds the precision model from the loaded config.
func configuredModel() (geom.PrecisionModel, error) {
	cfg := config.GetCurrentConfig()
	if cfg == nil {
		return geom.NewPrecisionModel(), nil
	}
	return cfg.PrecisionModel()
}

// openStore opens (and migrates) the model store at the configured path.
func openStore() (*state.SQLiteStore, error) {
	cfg := config.GetCurrentConfig()
	path := config.DefaultStateFile
	if cfg != nil && cfg.StatePath != "" {
		path = cfg.StatePath
	}

	store := state.NewSQLiteStore()
	if err := store.Open(path); err != nil {
		return nil, err
	}
	if err := store.Migrate(); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

// resolveModel returns the effective precision model for a command: a named
// model from the store when --model is set, otherwise the configured one.
func resolveModel(cmd *cobra.Command) (geom.PrecisionModel, error) {
	name, _ := cmd.Flags().GetString("model")
	if name == "" {
		return configuredModel()
	}

	store, err := openStore()
	if err != nil {
		return geom.PrecisionModel{}, err
	}
	defer func() { _ = store.Close() }()

	stored, err := store.GetModel(name)
	if err != nil {
		return geom.PrecisionModel{}, err
	}
	return stored.PrecisionModel()
}

// parseCoordinate parses a single "x,y[,z]" record.
func parseCoordinate(fields []string) (geom.Coordinate, error) {
	if len(fields) < 2 || len(fields) > 3 {
		return geom.Coordinate{}, fmt.Errorf("want x,y or x,y,z, got %d fields", len(fields))
	}
	ords := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return geom.Coordinate{}, fmt.Errorf("bad ordinate %q: %w", f, err)
		}
		ords[i] = v
	}
	if len(ords) == 3 {
		return geom.NewCoordinateXYZ(ords[0], ords[1], ords[2]), nil
	}
	return geom.NewCoordinate(ords[0], ords[1]), nil
}

// readCoordinates reads "x,y[,z]" CSV records from r. A leading header row
// and comment lines starting with '#' are skipped.
func readCoordinates(r io.Reader) ([]geom.Coordinate, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	var coords []geom.Coordinate
	first := true
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		c, perr := parseCoordinate(record)
		if perr != nil {
			// Tolerate a single header row.
			if first {
				first = false
				continue
			}
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, perr)
		}
		first = false
		coords = append(coords, c)
	}
	return coords, nil
}

// readCoordinateFile reads coordinates from a CSV file.
func readCoordinateFile(path string) ([]geom.Coordinate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	coords, err := readCoordinates(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return coords, nil
}
