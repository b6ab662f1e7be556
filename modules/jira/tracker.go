package jira

import (
	// Stdlib
	"fmt"

	// Internal
	"github.com/salsaflow/versionify/errs"
	"github.com/salsaflow/versionify/log"
	"github.com/salsaflow/versionify/modules/jira/client"
)

// Tracker binds the JIRA client to the configured project.
type Tracker struct {
	config  Config
	client  *client.Client
	project *client.Project
}

// NewTracker loads the JIRA configuration and returns a tracker
// bound to the configured project.
func NewTracker() (*Tracker, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewTrackerWithClient(config, newClient(config)), nil
}

// NewTrackerWithClient returns a tracker using the given client.
func NewTrackerWithClient(config Config, client *client.Client) *Tracker {
	return &Tracker{
		config: config,
		client: client,
	}
}

func (tracker *Tracker) Config() Config {
	return tracker.config
}

// Project fetches the configured project. The result is cached.
func (tracker *Tracker) Project() (*client.Project, error) {
	if tracker.project != nil {
		return tracker.project, nil
	}

	projectId := tracker.config.ProjectId()
	task := fmt.Sprintf("Fetch JIRA project %v", projectId)
	log.V(log.Verbose).Log(task)
	project, _, err := tracker.client.Projects.Get(projectId)
	if err != nil {
		return nil, errs.NewError(task, err)
	}

	tracker.project = project
	return project, nil
}

func (tracker *Tracker) ListVersions() ([]*client.Version, error) {
	task := "Fetch the project versions"
	log.V(log.Verbose).Log(task)
	versions, _, err := tracker.client.Projects.ListVersions(tracker.config.ProjectId())
	if err != nil {
		return nil, errs.NewError(task, err)
	}
	return versions, nil
}

func (tracker *Tracker) GetVersion(id string) (*client.Version, error) {
	task := fmt.Sprintf("Fetch JIRA version %v", id)
	version, _, err := tracker.client.Versions.Get(id)
	if err != nil {
		return nil, errs.NewError(task, err)
	}
	return version, nil
}

func (tracker *Tracker) CreateVersion(name string) (*client.Version, error) {
	project, err := tracker.Project()
	if err != nil {
		return nil, err
	}

	task := fmt.Sprintf("Create JIRA version %v", name)
	version, _, err := tracker.client.Versions.Create(&client.Version{
		Name:    name,
		Project: project.Key,
	})
	if err != nil {
		return nil, errs.NewError(task, err)
	}
	return version, nil
}

func (tracker *Tracker) ReleaseVersion(id, releaseDate string) error {
	task := fmt.Sprintf("Mark JIRA version %v as released", id)
	_, err := tracker.client.Versions.Update(id, &client.Version{
		Released:    true,
		ReleaseDate: releaseDate,
	})
	if err != nil {
		return errs.NewError(task, err)
	}
	return nil
}

func (tracker *Tracker) GetIssue(key string) (*client.Issue, error) {
	task := fmt.Sprintf("Fetch JIRA issue %v", key)
	issue, _, err := tracker.client.Issues.Get(key)
	if err != nil {
		return nil, errs.NewError(task, err)
	}
	return issue, nil
}

// SetFixVersion replaces the fix versions of the given issue
// with the given version.
func (tracker *Tracker) SetFixVersion(issueKey, versionId string) error {
	task := fmt.Sprintf("Set fix version for issue %v", issueKey)
	body := client.M{
		"update": client.M{
			"fixVersions": []client.M{
				{
					"set": []client.M{
						{"id": versionId},
					},
				},
			},
		},
	}
	if _, err := tracker.client.Issues.Update(issueKey, body); err != nil {
		return errs.NewError(task, err)
	}
	return nil
}

func (tracker *Tracker) PerformTransition(issueKey, transitionId string) error {
	task := fmt.Sprintf("Perform transition %v for issue %v", transitionId, issueKey)
	if _, err := tracker.client.Issues.PerformTransition(issueKey, transitionId); err != nil {
		return errs.NewError(task, err)
	}
	return nil
}

func (tracker *Tracker) SearchIssues(jql string) ([]*client.Issue, error) {
	task := "Search JIRA issues"
	log.V(log.Debug).Log(fmt.Sprintf("JQL: %v", jql))
	issues, err := tracker.client.Issues.SearchAll(&client.SearchOptions{
		JQL:        jql,
		MaxResults: searchPageSize,
		Fields:     "summary,status,fixVersions,issuetype",
	})
	if err != nil {
		return nil, errs.NewError(task, err)
	}
	return issues, nil
}

func (tracker *Tracker) ListRemoteLinks(versionId string) ([]*client.RemoteLink, error) {
	task := fmt.Sprintf("Fetch remote links for JIRA version %v", versionId)
	links, _, err := tracker.client.Versions.ListRemoteLinks(versionId)
	if err != nil {
		return nil, errs.NewError(task, err)
	}
	return links, nil
}

func (tracker *Tracker) CreateRemoteLink(versionId string, link interface{}) error {
	task := fmt.Sprintf("Attach a remote link to JIRA version %v", versionId)
	if _, err := tracker.client.Versions.CreateRemoteLink(versionId, link); err != nil {
		return errs.NewError(task, err)
	}
	return nil
}

const searchPageSize = 50
