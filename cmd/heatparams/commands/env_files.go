package commands

import (
	"github.com/spf13/cobra"

	"github.com/vexxhost/magnum/cmd/heatparams/handlers"
)

// EnvFiles returns the command listing the environment overlays.
func EnvFiles() *cobra.Command {
	opts := handlers.EnvFilesOptions{}

	cmd := &cobra.Command{
		Use:   "env-files",
		Short: "List the environment files included with the stack",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.EnvFiles(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	addDocumentFlags(cmd, &opts.Documents)
	cmd.Flags().StringVarP(&opts.Format, "output", "o", handlers.FormatAuto, "Output format: auto, json, yaml or table")

	return cmd
}
