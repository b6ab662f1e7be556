package main

import (
	// Stdlib
	"os"

	// Internal
	"github.com/salsaflow/versionify/app/appflags"
	"github.com/salsaflow/versionify/commands/announce"
	"github.com/salsaflow/versionify/commands/assign"
	"github.com/salsaflow/versionify/commands/changes"
	"github.com/salsaflow/versionify/commands/release"
	"github.com/salsaflow/versionify/commands/transition"
	"github.com/salsaflow/versionify/commands/version"

	// Vendor
	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	// Initialise the application.
	root := &cobra.Command{
		Use:     "versionify",
		Short:   "JIRA release bookkeeping for deployment pipelines",
		Version: version,
		Long: `
  versionify keeps JIRA in sync with deployments. It creates versions,
  assigns issues to them, moves issues through the workflow, releases versions
  and announces the releases. See the list of subcommands.`,
		SilenceUsage: true,
	}

	// Register global flags.
	appflags.RegisterGlobalFlags(root.PersistentFlags())

	// Register subcommands.
	root.AddCommand(announceCmd.Command)
	root.AddCommand(assignCmd.Command)
	root.AddCommand(changesCmd.Command)
	root.AddCommand(releaseCmd.Command)
	root.AddCommand(transitionCmd.Command)
	root.AddCommand(versionCmd.Command)

	// Run the application.
	if err := root.Execute(); err != nil {
		os.Exit(2)
	}
}
