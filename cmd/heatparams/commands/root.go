// Package commands defines the CLI command structure and flag bindings.
//
// Command execution is delegated to handler functions in the handlers
// package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/vexxhost/magnum/cmd/heatparams/handlers"
)

// Root returns the root command for the heatparams CLI.
//
// Configuration and logging are set up once before any subcommand runs and
// handed to handlers through the command context.
func Root() *cobra.Command {
	var configPath, logLevel string

	cmd := &cobra.Command{
		Use:           "heatparams",
		Short:         "Render Kubernetes Fedora template parameters",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := handlers.Init(cmd.Context(), cmd.ErrOrStderr(), configPath, logLevel)
			if err != nil {
				return err
			}
			cmd.SetContext(ctx)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: environment and built-in defaults)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error (default: from configuration)")

	cmd.AddCommand(Params())
	cmd.AddCommand(EnvFiles())
	cmd.AddCommand(Outputs())
	cmd.AddCommand(Version())

	return cmd
}
