package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/geomgrid/pkg/wkt"
)

// NewWKTCommand creates the wkt command.
func NewWKTCommand() *cobra.Command {
	var geometry string
	var modelName string
	var noSnap bool

	cmd := &cobra.Command{
		Use:   "wkt [files...]",
		Short: "Emit well-known text for coordinates",
		Long: `Read "x,y[,z]" records from CSV files (or stdin when no files are
given), snap them to the effective precision model, and emit well-known
text. The output digit count follows the model's significant-digit
estimate.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pm, err := resolveModel(cmd)
			if err != nil {
				return err
			}

			coords, err := collectCoordinates(cmd, args)
			if err != nil {
				return err
			}

			if !noSnap {
				for i := range coords {
					pm.MakePreciseCoordinate(&coords[i])
				}
			}

			w := wkt.NewWriter(pm)
			out := cmd.OutOrStdout()
			switch geometry {
			case "point", "points":
				for _, c := range coords {
					_, _ = fmt.Fprintln(out, w.WritePoint(c))
				}
			case "linestring":
				_, _ = fmt.Fprintln(out, w.WriteLineString(coords))
			case "polygon":
				_, _ = fmt.Fprintln(out, w.WritePolygon(coords))
			default:
				return fmt.Errorf("unknown geometry %q (want point, linestring or polygon)", geometry)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&geometry, "geometry", "g", "point", "Geometry to emit (point|linestring|polygon)")
	cmd.Flags().StringVarP(&modelName, "model", "m", "", "Use a named model from the store")
	cmd.Flags().BoolVar(&noSnap, "no-snap", false, "Emit coordinates as-is without grid snapping")

	_ = cmd.RegisterFlagCompletionFunc("geometry", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"point", "linestring", "polygon"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
