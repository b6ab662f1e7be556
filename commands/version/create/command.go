package createCmd

import (
	// Stdlib
	"fmt"

	// Internal
	"github.com/salsaflow/versionify/app"
	"github.com/salsaflow/versionify/errs"
	"github.com/salsaflow/versionify/log"
	"github.com/salsaflow/versionify/modules"

	// Vendor
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:   "create NAME",
	Short: "create a new version",
	Long: `
  Create a new version called NAME in the configured JIRA project.

  The command fails in case a version with exactly the same name exists.
	`,
	Args: cobra.ExactArgs(1),
	Run:  run,
}

func run(cmd *cobra.Command, args []string) {
	app.InitOrDie()

	if err := runMain(args[0]); err != nil {
		errs.Fatal(err)
	}
}

func runMain(name string) error {
	manager, err := modules.GetReleaseManager()
	if err != nil {
		return err
	}

	version, err := manager.CreateVersion(name)
	if err != nil {
		return err
	}

	log.Ok(fmt.Sprintf("Version '%v' created", version.Name))
	log.NewLine(manager.URLs().VersionURL(version))
	return nil
}
