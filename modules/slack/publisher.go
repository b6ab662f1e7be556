package slack

import (
	// Stdlib
	"fmt"
	"net/http"

	// Vendor
	slackapi "github.com/slack-go/slack"

	// Internal
	"github.com/salsaflow/versionify/errs"
	"github.com/salsaflow/versionify/log"
)

const ServiceName = "Slack"

// Publisher posts messages through a Slack incoming webhook.
// Slack channels are streams, so commenting is the same as publishing.
type Publisher struct {
	httpClient *http.Client
	webhookURL string
	channel    string
}

func NewPublisher() (*Publisher, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewPublisherWithClient(&http.Client{Timeout: config.Timeout}, config.WebhookURL, config.Channel), nil
}

func NewPublisherWithClient(httpClient *http.Client, webhookURL, channel string) *Publisher {
	return &Publisher{httpClient, webhookURL, channel}
}

func (publisher *Publisher) ServiceName() string {
	return ServiceName
}

func (publisher *Publisher) Channel() string {
	return publisher.channel
}

// Publish posts the message and returns the channel name as the handle.
func (publisher *Publisher) Publish(body string) (string, error) {
	task := fmt.Sprintf("Post a Slack message to %v", publisher.channel)
	log.Run(task)
	err := slackapi.PostWebhookCustomHTTP(publisher.webhookURL, publisher.httpClient, &slackapi.WebhookMessage{
		Channel: publisher.channel,
		Text:    body,
	})
	if err != nil {
		return "", errs.NewError(task, err)
	}
	return publisher.channel, nil
}

func (publisher *Publisher) Comment(handle, body string) error {
	_, err := publisher.Publish(body)
	return err
}
