package commands

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/leapstack-labs/geomgrid/internal/cli/output"
	"github.com/leapstack-labs/geomgrid/internal/state"
	"github.com/leapstack-labs/geomgrid/pkg/geom"
)

// snapResult pairs an input coordinate with its grid-snapped form.
type snapResult struct {
	Source  geom.Coordinate
	Snapped geom.Coordinate
}

func formatOrdinate(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// renderSnapResults writes snap results in the renderer's mode.
func renderSnapResults(r *output.Renderer, results []snapResult) error {
	hasZ := false
	for _, res := range results {
		if res.Source.HasZ() {
			hasZ = true
			break
		}
	}

	cols := []string{"x", "y", "snapped_x", "snapped_y"}
	if hasZ {
		cols = []string{"x", "y", "z", "snapped_x", "snapped_y"}
	}

	rowValues := func(res snapResult) []string {
		if hasZ {
			return []string{
				formatOrdinate(res.Source.X),
				formatOrdinate(res.Source.Y),
				formatOrdinate(res.Source.Z),
				formatOrdinate(res.Snapped.X),
				formatOrdinate(res.Snapped.Y),
			}
		}
		return []string{
			formatOrdinate(res.Source.X),
			formatOrdinate(res.Source.Y),
			formatOrdinate(res.Snapped.X),
			formatOrdinate(res.Snapped.Y),
		}
	}

	switch r.Mode() {
	case output.ModeJSON:
		return renderSnapJSON(r, results)
	case output.ModeCSV:
		renderRowsCSV(r, cols, results, rowValues)
		return nil
	case output.ModeMarkdown:
		renderRowsMarkdown(r, cols, results, rowValues)
		return nil
	default:
		renderRowsTable(r, cols, results, rowValues)
		return nil
	}
}

func renderSnapJSON(r *output.Renderer, results []snapResult) error {
	type jsonRow struct {
		X        float64  `json:"x"`
		Y        float64  `json:"y"`
		Z        *float64 `json:"z,omitempty"`
		SnappedX float64  `json:"snapped_x"`
		SnappedY float64  `json:"snapped_y"`
	}
	rows := make([]jsonRow, 0, len(results))
	for _, res := range results {
		row := jsonRow{
			X:        res.Source.X,
			Y:        res.Source.Y,
			SnappedX: res.Snapped.X,
			SnappedY: res.Snapped.Y,
		}
		if res.Source.HasZ() {
			z := res.Source.Z
			row.Z = &z
		}
		rows = append(rows, row)
	}
	enc := json.NewEncoder(r.Writer())
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func renderRowsCSV(r *output.Renderer, cols []string, results []snapResult, rowValues func(snapResult) []string) {
	r.Println(strings.Join(cols, ","))
	for _, res := range results {
		r.Println(strings.Join(rowValues(res), ","))
	}
}

func renderRowsMarkdown(r *output.Renderer, cols []string, results []snapResult, rowValues func(snapResult) []string) {
	r.Printf("| %s |\n", strings.Join(cols, " | "))
	seps := make([]string, len(cols))
	for i := range seps {
		seps[i] = "---"
	}
	r.Printf("| %s |\n", strings.Join(seps, " | "))
	for _, res := range results {
		r.Printf("| %s |\n", strings.Join(rowValues(res), " | "))
	}
}

func renderRowsTable(r *output.Renderer, cols []string, results []snapResult, rowValues func(snapResult) []string) {
	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(cols))
	for i, col := range cols {
		headerRow[i] = col
	}
	t.AppendHeader(headerRow)

	for _, res := range results {
		values := rowValues(res)
		row := make(table.Row, len(values))
		for i, v := range values {
			row[i] = v
		}
		t.AppendRow(row)
	}

	t.Render()
	r.Printf("(%d coordinates)\n", len(results))
}

// renderModels writes the stored model list in the renderer's mode.
func renderModels(r *output.Renderer, models []*state.StoredModel) error {
	if r.Mode() == output.ModeJSON {
		type jsonModel struct {
			Name      string  `json:"name"`
			ModelType string  `json:"model_type"`
			Scale     float64 `json:"scale"`
			GridSize  float64 `json:"grid_size"`
		}
		rows := make([]jsonModel, 0, len(models))
		for _, m := range models {
			rows = append(rows, jsonModel{Name: m.Name, ModelType: m.ModelType, Scale: m.Scale, GridSize: m.GridSize})
		}
		enc := json.NewEncoder(r.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	if len(models) == 0 {
		r.Println("(no stored models)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Type", "Scale", "Grid Size", "Sig. Digits", "Updated"})

	for _, m := range models {
		pm, err := m.PrecisionModel()
		digits := ""
		gridSize := ""
		if err == nil {
			digits = strconv.Itoa(pm.MaximumSignificantDigits())
			gridSize = formatOrdinate(pm.GridSize())
		}
		t.AppendRow(table.Row{
			m.Name,
			m.ModelType,
			formatOrdinate(m.Scale),
			gridSize,
			digits,
			m.UpdatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	t.Render()
	r.Printf("(%d models)\n", len(models))
	return nil
}

// describeModel writes a one-model summary.
func describeModel(r *output.Renderer, pm geom.PrecisionModel) {
	styles := output.DefaultStyles()
	r.Println(styles.Info.Render(pm.String()))
	r.Printf("  type:               %s\n", pm.ModelType())
	if !pm.IsFloating() {
		r.Printf("  scale:              %s\n", formatOrdinate(pm.Scale()))
		r.Printf("  grid size:          %s\n", formatOrdinate(pm.GridSize()))
	}
	r.Printf("  significant digits: %d\n", pm.MaximumSignificantDigits())
	_, _ = fmt.Fprintln(r.Writer())
}
