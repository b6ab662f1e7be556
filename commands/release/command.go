package releaseCmd

import (
	// Stdlib
	"fmt"

	// Internal
	"github.com/salsaflow/versionify/app"
	"github.com/salsaflow/versionify/errs"
	"github.com/salsaflow/versionify/modules"
	"github.com/salsaflow/versionify/prompt"

	// Vendor
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:   "release [VERSION]",
	Short: "release a version",
	Long: `
  Move all issues assigned to VERSION towards the releasable status
  and mark VERSION as released today.
  The open version is used when VERSION is omitted.

  Issues that cannot be moved are reported, the version is released anyway.

  When running in a terminal, the command asks for confirmation
  unless --yes is set.
	`,
	Args: cobra.MaximumNArgs(1),
	Run:  run,
}

var flagYes bool

func init() {
	Command.Flags().BoolVar(&flagYes, "yes", flagYes, "do not ask for confirmation")
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

func runMain(versionName string) error {
	manager, err := modules.GetReleaseManager()
	if err != nil {
		return err
	}

	version, err := manager.ResolveVersion(versionName)
	if err != nil {
		return err
	}

	if !flagYes && prompt.IsInteractive() {
		confirmed, err := prompt.Confirm(fmt.Sprintf("Release version '%v'?", version.Name))
		if err != nil {
			return errs.NewError("Confirm the release", err)
		}
		if !confirmed {
			return errs.NewError("Confirm the release", prompt.ErrCanceled)
		}
	}

	return manager.ReleaseVersion(version)
}
