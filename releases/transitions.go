package releases

import (
	// Stdlib
	"fmt"

	// Internal
	"github.com/salsaflow/versionify/errs"
	"github.com/salsaflow/versionify/log"
	"github.com/salsaflow/versionify/modules/jira/client"
)

// TransitionMap maps a status ID to the ID of the transition
// that moves an issue one step further.
type TransitionMap map[string]string

// TransitionTo keeps performing the mapped transitions until the issue
// reaches the target status or a status with no transition mapped.
// The issue is fetched again after every transition.
//
// When a transition fails, nil is returned together with the error.
// Reaching a status for the second time means the map contains a cycle,
// *ErrTransitionCycle is returned in that case.
func (manager *Manager) TransitionTo(issue *client.Issue, targetStatusId string) (*client.Issue, error) {
	visited := make(map[string]struct{}, len(manager.opts.Transitions))

	for {
		statusId := statusIdOf(issue)
		if statusId == targetStatusId {
			return issue, nil
		}

		transitionId, ok := manager.opts.Transitions[statusId]
		if !ok {
			log.V(log.Verbose).Log(fmt.Sprintf(
				"Issue %v: no transition defined for status %v", issue.Key, statusId))
			return issue, nil
		}

		task := fmt.Sprintf("Move issue %v towards status %v", issue.Key, targetStatusId)
		if _, ok := visited[statusId]; ok {
			return nil, errs.NewErrorWithHint(task, &ErrTransitionCycle{issue.Key, statusId},
				"Check the jira.transitions configuration for cycles\n")
		}
		visited[statusId] = struct{}{}

		log.V(log.Verbose).Log(fmt.Sprintf(
			"Issue %v: performing transition %v from status %v", issue.Key, transitionId, statusId))
		if err := manager.tracker.PerformTransition(issue.Key, transitionId); err != nil {
			return nil, errs.NewError(task, err)
		}

		fresh, err := manager.tracker.GetIssue(issue.Key)
		if err != nil {
			return nil, errs.NewError(task, err)
		}
		issue = fresh
	}
}

func statusIdOf(issue *client.Issue) string {
	if issue.Fields.Status == nil {
		return ""
	}
	return issue.Fields.Status.Id
}
