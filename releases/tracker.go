package releases

import "github.com/salsaflow/versionify/modules/jira/client"

// Tracker is the issue tracker bound to a single project.
type Tracker interface {
	Project() (*client.Project, error)

	ListVersions() ([]*client.Version, error)
	GetVersion(id string) (*client.Version, error)
	CreateVersion(name string) (*client.Version, error)
	ReleaseVersion(id, releaseDate string) error

	GetIssue(key string) (*client.Issue, error)
	SetFixVersion(issueKey, versionId string) error
	PerformTransition(issueKey, transitionId string) error
	SearchIssues(jql string) ([]*client.Issue, error)

	ListRemoteLinks(versionId string) ([]*client.RemoteLink, error)
	CreateRemoteLink(versionId string, link interface{}) error
}
