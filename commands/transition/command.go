package transitionCmd

import (
	// Stdlib
	"errors"
	"fmt"

	// Internal
	"github.com/salsaflow/versionify/app"
	"github.com/salsaflow/versionify/errs"
	"github.com/salsaflow/versionify/log"
	"github.com/salsaflow/versionify/modules"
	"github.com/salsaflow/versionify/modules/jira"

	// Vendor
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:   "transition [--to=STATUS] ISSUE...",
	Short: "move issues through the workflow",
	Long: `
  Perform the configured transitions for the given issues until they reach
  status STATUS or a status with no transition configured.

  STATUS is a JIRA status ID. The aliases 'final' and 'releasable' can be used
  to refer to the statuses configured as jira.final_status
  and jira.releasable_status. The final status is used by default.
	`,
	Args: cobra.MinimumNArgs(1),
	Run:  run,
}

const (
	statusFinal      = "final"
	statusReleasable = "releasable"
)

var flagTo = statusFinal

var ErrTransitionFailed = errors.New("some issues could not be moved")

func init() {
	Command.Flags().StringVar(&flagTo, "to", flagTo, "target status ID")
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

	target := targetStatusId(tracker.Config(), flagTo)

	var failed bool
	for _, key := range issueKeys {
		issue, err := tracker.GetIssue(key)
		if err != nil {
			errs.Log(err)
			failed = true
			continue
		}

		_, err = manager.TransitionTo(issue, target)
		if err != nil {
			errs.Log(err)
			failed = true
			continue
		}
		log.Ok(fmt.Sprintf("Issue %v moved as far as possible towards status %v", key, target))
	}

	if failed {
		return errs.NewError("Move issues", ErrTransitionFailed)
	}
	return nil
}

func targetStatusId(config jira.Config, status string) string {
	switch status {
	case statusFinal:
		return config.FinalStatusId()
	case statusReleasable:
		return config.ReleasableStatusId()
	default:
		return status
	}
}
