package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/geomgrid/internal/config"
)

// NewModelCommand creates the model command and its subcommands.
func NewModelCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model",
		Short: "Inspect and manage precision models",
		Long: `Without a subcommand, describe the effective precision model built
from flags, environment and config file. Subcommands manage named
models in the project's model store.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pm, err := configuredModel()
			if err != nil {
				return err
			}
			describeModel(newRenderer(cmd, ""), pm)
			return nil
		},
	}

	cmd.AddCommand(newModelListCommand())
	cmd.AddCommand(newModelSaveCommand())
	cmd.AddCommand(newModelShowCommand())
	cmd.AddCommand(newModelRemoveCommand())

	return cmd
}

func newModelListCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored precision models",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			models, err := store.ListModels()
			if err != nil {
				return err
			}
			return renderModels(newRenderer(cmd, format), models)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format override (text|json)")
	return cmd
}

func newModelSaveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save <name>",
		Short: "Store the effective precision model under a name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pm, err := configuredModel()
			if err != nil {
				return err
			}

			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			saved, err := store.SaveModel(args[0], pm)
			if err != nil {
				return err
			}

			logger := config.GetLogger(cmd.Context())
			logger.Debug("model saved", "name", saved.Name, "id", saved.ID)

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved %q: %s\n", saved.Name, pm)
			return nil
		},
	}
}

func newModelShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Describe a stored precision model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			stored, err := store.GetModel(args[0])
			if err != nil {
				return err
			}
			pm, err := stored.PrecisionModel()
			if err != nil {
				return err
			}
			describeModel(newRenderer(cmd, ""), pm)
			return nil
		},
	}
}

func newModelRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a stored precision model",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteModel(args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %q\n", args[0])
			return nil
		},
	}
}
