package currentCmd

import (
	// Stdlib
	"fmt"

	// Internal
	"github.com/salsaflow/versionify/app"
	"github.com/salsaflow/versionify/errs"
	"github.com/salsaflow/versionify/modules"
	"github.com/salsaflow/versionify/releases"

	// Vendor
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:   "current",
	Short: "print the open version",
	Long: `
  Print the name of the open version, which is the first unreleased version
  in the order as returned by JIRA.

  The command exits with status 1 in case there is no open version.
	`,
	Args: cobra.NoArgs,
	Run:  run,
}

func run(cmd *cobra.Command, args []string) {
	app.InitOrDie()

	if err := runMain(); err != nil {
		errs.Fatal(err)
	}
}

func runMain() error {
	manager, err := modules.GetReleaseManager()
	if err != nil {
		return err
	}

	version, err := manager.OpenVersion()
	if err != nil {
		return err
	}
	if version == nil {
		return errs.NewError("Get the open version", releases.ErrNoVersion)
	}

	fmt.Println(version.Name)
	return nil
}
