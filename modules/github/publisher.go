package github

import (
	// Stdlib
	"context"
	"fmt"
	"strconv"

	// Vendor
	gh "github.com/google/go-github/v62/github"

	// Internal
	"github.com/salsaflow/versionify/errs"
	"github.com/salsaflow/versionify/log"
	"github.com/salsaflow/versionify/modules/common"
)

const ServiceName = "GitHub"

// Publisher keeps release notes as draft GitHub releases.
// The handle returned by Publish is the release ID.
type Publisher struct {
	client  *gh.Client
	owner   string
	repo    string
	version string
}

func NewPublisher() (*Publisher, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewPublisherWithClient(newClient(config), config.Owner, config.Repo), nil
}

func NewPublisherWithClient(client *gh.Client, owner, repo string) *Publisher {
	return &Publisher{
		client: client,
		owner:  owner,
		repo:   repo,
	}
}

func (publisher *Publisher) ServiceName() string {
	return ServiceName
}

// BindVersion returns a copy of the publisher
// creating the release for the given version.
func (publisher *Publisher) BindVersion(versionName string) common.Publisher {
	bound := *publisher
	bound.version = versionName
	return &bound
}

func (publisher *Publisher) Publish(body string) (string, error) {
	if publisher.version == "" {
		return "", errs.NewError("Create GitHub release", ErrVersionNotBound)
	}

	task := fmt.Sprintf("Create GitHub release for version '%v'", publisher.version)
	log.Run(task)
	release, _, err := publisher.client.Repositories.CreateRelease(
		context.Background(), publisher.owner, publisher.repo, &gh.RepositoryRelease{
			TagName: gh.String(publisher.version),
			Name:    gh.String("Release " + publisher.version),
			Body:    gh.String(body),
			Draft:   gh.Bool(true),
		})
	if err != nil {
		return "", errs.NewError(task, err)
	}
	return strconv.FormatInt(release.GetID(), 10), nil
}

// Comment appends the given text to the release body.
func (publisher *Publisher) Comment(handle, body string) error {
	task := fmt.Sprintf("Update GitHub release %v", handle)
	log.Run(task)

	id, err := strconv.ParseInt(handle, 10, 64)
	if err != nil {
		return errs.NewError(task, err)
	}

	ctx := context.Background()
	release, _, err := publisher.client.Repositories.GetRelease(ctx, publisher.owner, publisher.repo, id)
	if err != nil {
		return errs.NewError(task, err)
	}

	_, _, err = publisher.client.Repositories.EditRelease(ctx, publisher.owner, publisher.repo, id,
		&gh.RepositoryRelease{
			Body: gh.String(release.GetBody() + "\n\n" + body),
		})
	if err != nil {
		return errs.NewError(task, err)
	}
	return nil
}

// Withdraw deletes the given release.
func (publisher *Publisher) Withdraw(handle string) error {
	task := fmt.Sprintf("Delete GitHub release %v", handle)
	log.Rollback(task)

	id, err := strconv.ParseInt(handle, 10, 64)
	if err != nil {
		return errs.NewError(task, err)
	}
	if _, err := publisher.client.Repositories.DeleteRelease(
		context.Background(), publisher.owner, publisher.repo, id); err != nil {
		return errs.NewError(task, err)
	}
	return nil
}
