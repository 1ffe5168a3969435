package commands

import (
	"github.com/spf13/cobra"

	"github.com/vexxhost/magnum/cmd/heatparams/handlers"
)

// Params returns the command rendering the template parameters.
func Params() *cobra.Command {
	opts := handlers.ParamsOptions{}

	cmd := &cobra.Command{
		Use:   "params",
		Short: "Build the orchestration parameters for a cluster",
		Long: `Build the parameter set passed to the orchestration engine when creating
a cluster from a cluster template.

Labels on the cluster override template defaults. A fresh service account
key pair is generated on every run.
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Params(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	addDocumentFlags(cmd, &opts.Documents)
	cmd.Flags().StringVar(&opts.SeedPath, "seed", "", "Path to a document with pre-populated parameters")
	cmd.Flags().StringVar(&opts.UserName, "user", "", "Name of the requesting user")
	cmd.Flags().StringVar(&opts.Region, "region", "", "Region name used when no Hetzner Cloud token is configured")
	cmd.Flags().StringVarP(&opts.Format, "output", "o", handlers.FormatAuto, "Output format: auto, json, yaml or table")

	return cmd
}

func addDocumentFlags(cmd *cobra.Command, docs *handlers.Documents) {
	cmd.Flags().StringVarP(&docs.TemplatePath, "template", "t", "", "Path to the cluster template document")
	cmd.Flags().StringVar(&docs.ClusterPath, "cluster", "", "Path to the cluster document")
	_ = cmd.MarkFlagRequired("template")
	_ = cmd.MarkFlagRequired("cluster")
}
