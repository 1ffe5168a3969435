package commands

import (
	"github.com/spf13/cobra"

	"github.com/vexxhost/magnum/cmd/heatparams/handlers"
)

// Outputs returns the command binding stack outputs onto node groups.
func Outputs() *cobra.Command {
	opts := handlers.OutputsOptions{}

	cmd := &cobra.Command{
		Use:   "outputs",
		Short: "Bind stack address outputs to the cluster node groups",
		Long: `Read the outputs of a provisioned stack and print the node group
addresses they resolve to.

The stack document is a list of {output_key, output_value} objects as
returned by the orchestration API.
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Outputs(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	addDocumentFlags(cmd, &opts.Documents)
	cmd.Flags().StringVar(&opts.StackPath, "stack", "", "Path to the stack outputs document")
	_ = cmd.MarkFlagRequired("stack")
	cmd.Flags().StringVarP(&opts.Format, "output", "o", handlers.FormatAuto, "Output format: auto, json, yaml or table")

	return cmd
}
