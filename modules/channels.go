package modules

import (
	// Stdlib
	"bytes"
	"fmt"
	"strings"

	// Internal
	"github.com/salsaflow/versionify/announce"
	"github.com/salsaflow/versionify/errs"
	"github.com/salsaflow/versionify/log"
	"github.com/salsaflow/versionify/modules/common"

	// Internal: modules
	"github.com/salsaflow/versionify/modules/github"
	"github.com/salsaflow/versionify/modules/podio"
	"github.com/salsaflow/versionify/modules/slack"
)

// Channel instantiation -------------------------------------------------------

type channelFactory struct {
	isConfigured func() bool
	newPublisher func() (common.Publisher, error)
	linkKind     string
}

// Channels in the order they are announced through.
var channelIds = []string{podio.Id, slack.Id, github.Id}

var channelFactories = map[string]*channelFactory{
	podio.Id: {
		isConfigured: podio.IsConfigured,
		newPublisher: func() (common.Publisher, error) { return podio.NewPublisher() },
		linkKind:     announce.LinkKindPodioStatus,
	},
	slack.Id: {
		isConfigured: slack.IsConfigured,
		newPublisher: func() (common.Publisher, error) { return slack.NewPublisher() },
	},
	github.Id: {
		isConfigured: github.IsConfigured,
		newPublisher: func() (common.Publisher, error) { return github.NewPublisher() },
		linkKind:     announce.LinkKindGitHubRelease,
	},
}

func AvailableChannelIds() []string {
	return append([]string(nil), channelIds...)
}

// GetChannels returns the configured channels.
//
// When no ID is given, all the configured channels are returned.
// Otherwise the chosen channels are returned and each of them must be configured.
func GetChannels(ids ...string) ([]*announce.Channel, error) {
	task := "Instantiate the announcement channels"

	explicit := len(ids) != 0
	if !explicit {
		ids = channelIds
	}

	channels := make([]*announce.Channel, 0, len(ids))
	for _, id := range ids {
		factory, ok := channelFactories[id]
		if !ok {
			hint := new(bytes.Buffer)
			fmt.Fprintf(hint, "\nAvailable channels: %v\n\n", strings.Join(channelIds, ", "))
			return nil, errs.NewErrorWithHint(task, &ErrChannelNotFound{id}, hint.String())
		}

		if !factory.isConfigured() {
			if explicit {
				return nil, errs.NewError(task, &common.ErrChannelNotConfigured{Channel: id})
			}
			log.V(log.Verbose).Log(fmt.Sprintf("Channel '%v' not configured, skipping", id))
			continue
		}

		publisher, err := factory.newPublisher()
		if err != nil {
			return nil, errs.NewError(task, err)
		}
		channels = append(channels, &announce.Channel{
			Name:      id,
			Publisher: publisher,
			LinkKind:  factory.linkKind,
		})
	}
	return channels, nil
}
