package releases

import (
	// Stdlib
	"errors"
	"fmt"
	"net/url"
	"strings"

	// Internal
	"github.com/salsaflow/versionify/config"
	"github.com/salsaflow/versionify/modules/jira/client"
)

// URLGenerator builds the links into the JIRA web UI.
type URLGenerator struct {
	serverURL *url.URL
	project   *client.Project
}

func NewURLGenerator(serverURL *url.URL, project *client.Project) (*URLGenerator, error) {
	if serverURL == nil {
		return nil, &config.ErrKeyNotSet{Key: "jira.server_url"}
	}
	if project == nil {
		return nil, errors.New("URL generator: project not set")
	}

	base := *serverURL
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}
	return &URLGenerator{&base, project}, nil
}

// VersionURL returns the URL of the version page.
func (gen *URLGenerator) VersionURL(version *client.Version) string {
	return gen.resolve(fmt.Sprintf("browse/%v/fixforversion/%v", gen.project.Key, version.Id))
}

// IssueURL returns the URL of the issue page.
func (gen *URLGenerator) IssueURL(issue *client.Issue) string {
	return gen.resolve("browse/" + issue.Key)
}

func (gen *URLGenerator) resolve(path string) string {
	relativeURL := &url.URL{Path: path}
	return gen.serverURL.ResolveReference(relativeURL).String()
}
