package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/geomgrid/pkg/geom"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively snap values to the precision model grid",
		Long: `Start an interactive loop. Enter a number or an "x,y[,z]" coordinate
to see its grid-snapped form under the current model. Dot-commands
adjust the model on the fly.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pm, err := resolveModel(cmd)
			if err != nil {
				return err
			}
			return runSnapREPL(cmd, pm)
		},
	}
}

func runSnapREPL(cmd *cobra.Command, pm geom.PrecisionModel) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "geomgrid> ",
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem(".help"),
			readline.PcItem(".model"),
			readline.PcItem(".scale"),
			readline.PcItem(".grid"),
			readline.PcItem(".floating"),
			readline.PcItem(".digits"),
			readline.PcItem(".quit"),
			readline.PcItem(".exit"),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "geomgrid REPL (model: %s)\n", pm)
	_, _ = fmt.Fprintln(out, "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(out)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			quit := false
			pm, quit = handleREPLCommand(cmd, pm, line)
			if quit {
				break
			}
			continue
		}

		if err := snapLine(out, pm, line); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
	}

	return nil
}

// snapLine parses a scalar or "x,y[,z]" coordinate and prints its snapped
// form.
func snapLine(out io.Writer, pm geom.PrecisionModel, line string) error {
	if !strings.Contains(line, ",") {
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return fmt.Errorf("bad value %q", line)
		}
		_, _ = fmt.Fprintln(out, formatOrdinate(pm.MakePrecise(v)))
		return nil
	}

	c, err := parseCoordinate(strings.Split(line, ","))
	if err != nil {
		return err
	}
	pm.MakePreciseCoordinate(&c)
	_, _ = fmt.Fprintln(out, c)
	return nil
}

// handleREPLCommand executes a dot-command and returns the (possibly
// replaced) model and whether the loop should stop.
func handleREPLCommand(cmd *cobra.Command, pm geom.PrecisionModel, line string) (geom.PrecisionModel, bool) {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	parts := strings.Fields(line)

	switch strings.ToLower(parts[0]) {
	case ".quit", ".exit":
		return pm, true

	case ".help":
		printREPLHelp(out)

	case ".model":
		describeModel(newRenderer(cmd, "text"), pm)

	case ".digits":
		_, _ = fmt.Fprintln(out, pm.MaximumSignificantDigits())

	case ".floating":
		pm = geom.NewPrecisionModel()
		_, _ = fmt.Fprintf(out, "model: %s\n", pm)

	case ".scale", ".grid":
		if len(parts) < 2 {
			_, _ = fmt.Fprintf(errOut, "Usage: %s <value>\n", parts[0])
			break
		}
		v, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			_, _ = fmt.Fprintf(errOut, "Error: bad value %q\n", parts[1])
			break
		}
		// .grid requests an exact grid size, which the fixed constructor
		// selects via a negative scale.
		if parts[0] == ".grid" {
			v = -v
		}
		next, err := geom.NewFixedPrecisionModel(v)
		if err != nil {
			_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
			break
		}
		pm = next
		_, _ = fmt.Fprintf(out, "model: %s\n", pm)

	default:
		_, _ = fmt.Fprintf(errOut, "Unknown command: %s (type .help for commands)\n", parts[0])
	}

	return pm, false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help           Show this help message
  .model          Describe the current model
  .digits         Show the model's maximum significant digits
  .scale <s>      Switch to a fixed model with the given scale factor
  .grid <g>       Switch to a fixed model with the given exact grid size
  .floating       Switch back to full floating precision
  .quit / .exit   Exit the REPL

Tips:
  - Enter a number to snap it: 2.5
  - Enter a coordinate to snap X and Y: 1.2345,6.789 (Z passes through)
`
	_, _ = fmt.Fprintln(w, help)
}
