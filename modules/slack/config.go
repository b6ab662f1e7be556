package slack

import (
	// Stdlib
	"net/url"
	"time"

	// Internal
	"github.com/salsaflow/versionify/config"
	"github.com/salsaflow/versionify/errs"
)

const Id = "slack"

type Config struct {
	Channel    string
	WebhookURL string
	Timeout    time.Duration
}

// IsConfigured returns true when the slack section is present.
func IsConfigured() bool {
	return config.SectionSet(Id, "channel", "webhook_url")
}

func LoadConfig() (*Config, error) {
	task := "Load the Slack configuration"

	channel, err := config.RequireString(Id + ".channel")
	if err != nil {
		return nil, errs.NewError(task, err)
	}

	webhookURL, err := config.RequireString(Id + ".webhook_url")
	if err != nil {
		return nil, errs.NewError(task, err)
	}
	if u, err := url.Parse(webhookURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, errs.NewError(task, &config.ErrKeyInvalid{Key: Id + ".webhook_url", Value: webhookURL})
	}

	timeout, err := config.HTTPTimeout()
	if err != nil {
		return nil, errs.NewError(task, err)
	}

	return &Config{channel, webhookURL, timeout}, nil
}
