package releases

import (
	// Stdlib
	"bytes"
	"fmt"
	"strings"

	// Internal
	"github.com/salsaflow/versionify/errs"
	"github.com/salsaflow/versionify/modules/jira/client"
)

// Change is a single changelog entry.
type Change struct {
	Key     string
	Summary string
	URL     string
	Type    string
}

// Changes returns the issues assigned to the given version
// in the order as returned by the tracker.
func (manager *Manager) Changes(version *client.Version) ([]*Change, error) {
	if version == nil {
		return nil, ErrNoVersion
	}

	issues, err := manager.versionIssues(version)
	if err != nil {
		return nil, errs.NewError(fmt.Sprintf("Get the changes in version '%v'", version.Name), err)
	}

	changes := make([]*Change, 0, len(issues))
	for _, issue := range issues {
		changes = append(changes, &Change{
			Key:     issue.Key,
			Summary: issue.Fields.Summary,
			URL:     manager.opts.URLs.IssueURL(issue),
			Type:    issue.Fields.IssueType.Name,
		})
	}
	return changes, nil
}

// Changelog renders the changes in the given version, one line per issue:
//
//   - [KEY](url) - summary
//
// ErrNoVersion is returned for a nil version without querying the tracker.
func (manager *Manager) Changelog(version *client.Version) (string, error) {
	changes, err := manager.Changes(version)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	for _, change := range changes {
		fmt.Fprintf(&buf, "- [%v](%v) - %v\n", change.Key, change.URL, change.Summary)
	}
	return buf.String(), nil
}

func (manager *Manager) versionIssues(version *client.Version) ([]*client.Issue, error) {
	project, err := manager.tracker.Project()
	if err != nil {
		return nil, err
	}
	return manager.tracker.SearchIssues(versionQuery(project.Key, version.Name))
}

func versionQuery(projectKey, versionName string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(versionName)
	return fmt.Sprintf(`project = %v AND fixVersion = "%v"`, projectKey, escaped)
}
