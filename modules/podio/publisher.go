package podio

import (
	// Stdlib
	"strconv"

	// Internal
	"github.com/salsaflow/versionify/errs"
	"github.com/salsaflow/versionify/log"
	"github.com/salsaflow/versionify/modules/podio/client"
)

const ServiceName = "Podio"

// Publisher posts status messages into the configured Podio space.
// The handle returned by Publish is the status ID.
type Publisher struct {
	client  *client.Client
	spaceId string
}

// NewPublisher loads the configuration and authenticates.
func NewPublisher() (*Publisher, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	c, err := newClient(config)
	if err != nil {
		return nil, err
	}
	return NewPublisherWithClient(c, config.SpaceId), nil
}

func NewPublisherWithClient(client *client.Client, spaceId string) *Publisher {
	return &Publisher{client, spaceId}
}

func (publisher *Publisher) ServiceName() string {
	return ServiceName
}

func (publisher *Publisher) Publish(body string) (string, error) {
	task := "Post a Podio status message"
	log.Run(task)
	status, _, err := publisher.client.Statuses.Create(publisher.spaceId, body)
	if err != nil {
		return "", errs.NewError(task, err)
	}
	return strconv.FormatInt(status.Id, 10), nil
}

func (publisher *Publisher) Comment(handle, body string) error {
	task := "Comment on Podio status " + handle
	log.Run(task)
	if _, _, err := publisher.client.Comments.Create(client.RefTypeStatus, handle, body); err != nil {
		return errs.NewError(task, err)
	}
	return nil
}

// Withdraw deletes the given status message.
func (publisher *Publisher) Withdraw(handle string) error {
	task := "Delete Podio status " + handle
	log.Rollback(task)
	if _, err := publisher.client.Statuses.Delete(handle); err != nil {
		return errs.NewError(task, err)
	}
	return nil
}
