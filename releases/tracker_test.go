package releases_test

import (
	// Stdlib
	"encoding/json"
	"errors"
	"fmt"

	// Internal
	"github.com/salsaflow/versionify/modules/jira/client"
)

// fakeTracker is an in-memory tracker recording every call.
type fakeTracker struct {
	project  *client.Project
	versions []*client.Version
	issues   map[string]*client.Issue
	links    map[string][]*client.RemoteLink

	// workflow maps transition IDs to the status they lead to.
	workflow map[string]*client.IssueStatus

	searchResult []*client.Issue
	failOn       map[string]error

	calls []string
}

func newFakeTracker() *fakeTracker {
	return &fakeTracker{
		project:  &client.Project{Id: "10100", Key: "PROJ"},
		issues:   make(map[string]*client.Issue),
		links:    make(map[string][]*client.RemoteLink),
		workflow: make(map[string]*client.IssueStatus),
		failOn:   make(map[string]error),
	}
}

func (tracker *fakeTracker) record(call string) error {
	tracker.calls = append(tracker.calls, call)
	return tracker.failOn[call]
}

func (tracker *fakeTracker) callsOf(prefix string) []string {
	var calls []string
	for _, call := range tracker.calls {
		if len(call) >= len(prefix) && call[:len(prefix)] == prefix {
			calls = append(calls, call)
		}
	}
	return calls
}

func (tracker *fakeTracker) addIssue(key, statusId string, fixVersions ...string) *client.Issue {
	issue := &client.Issue{Key: key}
	issue.Fields.Summary = "Summary of " + key
	issue.Fields.Status = &client.IssueStatus{Id: statusId}
	for _, name := range fixVersions {
		issue.Fields.FixVersions = append(issue.Fields.FixVersions, &client.Version{Name: name})
	}
	tracker.issues[key] = issue
	return copyIssue(issue)
}

func copyIssue(issue *client.Issue) *client.Issue {
	c := *issue
	c.Fields.FixVersions = append([]*client.Version(nil), issue.Fields.FixVersions...)
	if issue.Fields.Status != nil {
		status := *issue.Fields.Status
		c.Fields.Status = &status
	}
	return &c
}

func (tracker *fakeTracker) Project() (*client.Project, error) {
	if err := tracker.record("Project"); err != nil {
		return nil, err
	}
	return tracker.project, nil
}

func (tracker *fakeTracker) ListVersions() ([]*client.Version, error) {
	if err := tracker.record("ListVersions"); err != nil {
		return nil, err
	}
	return tracker.versions, nil
}

func (tracker *fakeTracker) GetVersion(id string) (*client.Version, error) {
	if err := tracker.record("GetVersion " + id); err != nil {
		return nil, err
	}
	for _, v := range tracker.versions {
		if v.Id == id {
			c := *v
			return &c, nil
		}
	}
	return nil, errors.New("version not found")
}

func (tracker *fakeTracker) CreateVersion(name string) (*client.Version, error) {
	if err := tracker.record("CreateVersion " + name); err != nil {
		return nil, err
	}
	v := &client.Version{
		Id:      fmt.Sprintf("%v", 10200+len(tracker.versions)),
		Name:    name,
		Project: tracker.project.Key,
	}
	tracker.versions = append(tracker.versions, v)
	return &client.Version{Id: v.Id}, nil
}

func (tracker *fakeTracker) ReleaseVersion(id, releaseDate string) error {
	return tracker.record(fmt.Sprintf("ReleaseVersion %v %v", id, releaseDate))
}

func (tracker *fakeTracker) GetIssue(key string) (*client.Issue, error) {
	if err := tracker.record("GetIssue " + key); err != nil {
		return nil, err
	}
	issue, ok := tracker.issues[key]
	if !ok {
		return nil, errors.New("issue not found")
	}
	return copyIssue(issue), nil
}

func (tracker *fakeTracker) SetFixVersion(issueKey, versionId string) error {
	if err := tracker.record(fmt.Sprintf("SetFixVersion %v %v", issueKey, versionId)); err != nil {
		return err
	}
	for _, v := range tracker.versions {
		if v.Id == versionId {
			tracker.issues[issueKey].Fields.FixVersions = []*client.Version{v}
		}
	}
	return nil
}

func (tracker *fakeTracker) PerformTransition(issueKey, transitionId string) error {
	if err := tracker.record(fmt.Sprintf("PerformTransition %v %v", issueKey, transitionId)); err != nil {
		return err
	}
	to, ok := tracker.workflow[transitionId]
	if !ok {
		return errors.New("invalid transition")
	}
	status := *to
	tracker.issues[issueKey].Fields.Status = &status
	return nil
}

func (tracker *fakeTracker) SearchIssues(jql string) ([]*client.Issue, error) {
	if err := tracker.record("SearchIssues " + jql); err != nil {
		return nil, err
	}
	return tracker.searchResult, nil
}

func (tracker *fakeTracker) ListRemoteLinks(versionId string) ([]*client.RemoteLink, error) {
	if err := tracker.record("ListRemoteLinks " + versionId); err != nil {
		return nil, err
	}
	return tracker.links[versionId], nil
}

func (tracker *fakeTracker) CreateRemoteLink(versionId string, link interface{}) error {
	if err := tracker.record("CreateRemoteLink " + versionId); err != nil {
		return err
	}
	raw, err := json.Marshal(link)
	if err != nil {
		return err
	}
	tracker.links[versionId] = append(tracker.links[versionId], &client.RemoteLink{Link: raw})
	return nil
}
