package versionCmd

import (
	// Internal
	"github.com/salsaflow/versionify/commands/version/create"
	"github.com/salsaflow/versionify/commands/version/current"
	"github.com/salsaflow/versionify/commands/version/open"

	// Vendor
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:   "version",
	Short: "manage project versions",
	Long: `
  Manage the versions of the configured JIRA project.
  See the subcommands.
	`,
}

func init() {
	// Register subcommands.
	Command.AddCommand(createCmd.Command)
	Command.AddCommand(currentCmd.Command)
	Command.AddCommand(openCmd.Command)
}
