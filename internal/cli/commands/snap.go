package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/geomgrid/internal/config"
	"github.com/leapstack-labs/geomgrid/pkg/geom"
)

// NewSnapCommand creates the snap command.
func NewSnapCommand() *cobra.Command {
	var format string
	var modelName string

	cmd := &cobra.Command{
		Use:   "snap [files...]",
		Short: "Round coordinates to the precision model grid",
		Long: `Read "x,y[,z]" records from CSV files (or stdin when no files are
given) and round each coordinate to the effective precision model.
Z ordinates pass through unchanged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pm, err := resolveModel(cmd)
			if err != nil {
				return err
			}

			coords, err := collectCoordinates(cmd, args)
			if err != nil {
				return err
			}

			logger := config.GetLogger(cmd.Context())
			logger.Debug("snapping coordinates", "model", pm.String(), "count", len(coords))

			results := make([]snapResult, len(coords))
			for i, c := range coords {
				snapped := c
				pm.MakePreciseCoordinate(&snapped)
				results[i] = snapResult{Source: c, Snapped: snapped}
			}

			return renderSnapResults(newRenderer(cmd, format), results)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format override (text|markdown|json|csv)")
	cmd.Flags().StringVarP(&modelName, "model", "m", "", "Use a named model from the store")

	return cmd
}

// collectCoordinates reads coordinates from the given files, or from stdin
// when none are given. Files are read concurrently; input order is kept.
func collectCoordinates(cmd *cobra.Command, files []string) ([]geom.Coordinate, error) {
	if len(files) == 0 {
		coords, err := readCoordinates(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return coords, nil
	}

	perFile := make([][]geom.Coordinate, len(files))
	g, _ := errgroup.WithContext(cmd.Context())
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			coords, err := readCoordinateFile(path)
			if err != nil {
				return err
			}
			perFile[i] = coords
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var coords []geom.Coordinate
	for _, fc := range perFile {
		coords = append(coords, fc...)
	}
	return coords, nil
}
