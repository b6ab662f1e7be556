package openCmd

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
	"github.com/toqueteos/webbrowser"
)

var Command = &cobra.Command{
	Use:   "open [NAME]",
	Short: "open the version page in the browser",
	Long: `
  Open the JIRA page of version NAME in the browser.
  The open version is used when NAME is omitted.
	`,
	Args: cobra.MaximumNArgs(1),
	Run:  run,
}

func run(cmd *cobra.Command, args []string) {
	app.InitOrDie()

	var name string
	if len(args) == 1 {
		name = args[0]
	}

	if err := runMain(name); err != nil {
		errs.Fatal(err)
	}
}

func runMain(name string) error {
	manager, err := modules.GetReleaseManager()
	if err != nil {
		return err
	}

	version, err := manager.ResolveVersion(name)
	if err != nil {
		return err
	}

	task := fmt.Sprintf("Open version '%v' in the browser", version.Name)
	log.Run(task)
	if err := webbrowser.Open(manager.URLs().VersionURL(version)); err != nil {
		return errs.NewError(task, err)
	}
	return nil
}
