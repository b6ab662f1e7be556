package assignCmd

import (
	// Stdlib
	"fmt"

	// Internal
	"github.com/salsaflow/versionify/app"
	"github.com/salsaflow/versionify/errs"
	"github.com/salsaflow/versionify/log"
	"github.com/salsaflow/versionify/modules"
	"github.com/salsaflow/versionify/releases"

	// Vendor
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:   "assign [--version=NAME] ISSUE...",
	Short: "assign issues to a version",
	Long: `
  Assign the given issues to a version and move them towards the final status.
  The open version is used unless --version is specified.

  Issues already assigned to another version are skipped.
  A failure to assign an issue does not stop the others from being processed,
  but the command exits with status 1 in that case.
	`,
	Args: cobra.MinimumNArgs(1),
	Run:  run,
}

var flagVersion string

func init() {
	Command.Flags().StringVar(&flagVersion, "version", flagVersion, "version to assign the issues to")
}

func run(cmd *cobra.Command, args []string) {
	app.InitOrDie()

	if err := runMain(args); err != nil {
		errs.Fatal(err)
	}
}

func runMain(issueKeys []string) error {
	tracker, err := modules.GetTracker()
	if err != nil {
		return err
	}

	manager, err := modules.NewReleaseManager(tracker)
	if err != nil {
		return err
	}

	version, err := manager.ResolveVersion(flagVersion)
	if err != nil {
		return err
	}

	var failed bool
	for _, key := range issueKeys {
		issue, err := tracker.GetIssue(key)
		if err != nil {
			errs.Log(err)
			failed = true
			continue
		}

		_, err = manager.AssignToVersion(issue, version)
		switch errs.RootCause(err).(type) {
		case nil:
			log.Ok(fmt.Sprintf("Issue %v assigned to version '%v'", key, version.Name))
		case *releases.ErrVersionConflict:
			log.Warn(errs.RootCause(err).Error())
		default:
			errs.Log(err)
			failed = true
		}
	}

	if failed {
		return errs.NewError("Assign issues", ErrAssignFailed)
	}
	return nil
}
