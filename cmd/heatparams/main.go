// Package main is the entry point for the heatparams CLI.
//
// heatparams renders the orchestration parameters, environment overlays and
// output bindings of the Kubernetes Fedora template definition for a cluster
// template and cluster described in YAML or JSON documents.
//
// Commands: params, env-files, outputs, version.
//
// For detailed usage information, run:
//
//	heatparams --help
package main

import (
	"fmt"
	"os"

	"github.com/vexxhost/magnum/cmd/heatparams/commands"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
