package modules

import (
	// Internal
	"github.com/salsaflow/versionify/announce"
	"github.com/salsaflow/versionify/errs"
	"github.com/salsaflow/versionify/modules/jira"
	"github.com/salsaflow/versionify/releases"
)

// GetTracker returns the JIRA tracker bound to the configured project.
func GetTracker() (*jira.Tracker, error) {
	return jira.NewTracker()
}

// GetReleaseManager returns a release manager for the configured project.
// The manager does not announce through any channel,
// so the channels need not be configured.
func GetReleaseManager() (*releases.Manager, error) {
	tracker, err := GetTracker()
	if err != nil {
		return nil, err
	}
	return NewReleaseManager(tracker)
}

// NewReleaseManager returns a release manager using the given tracker.
// Use it when the tracker is needed directly as well.
func NewReleaseManager(tracker *jira.Tracker) (*releases.Manager, error) {
	return newReleaseManager(tracker, nil)
}

// GetAnnouncingReleaseManager is like GetReleaseManager,
// but the manager announces through the chosen channels.
// All the configured channels are used when no channel is chosen.
func GetAnnouncingReleaseManager(channelIds ...string) (*releases.Manager, error) {
	tracker, err := GetTracker()
	if err != nil {
		return nil, err
	}
	channels, err := GetChannels(channelIds...)
	if err != nil {
		return nil, err
	}
	return newReleaseManager(tracker, channels)
}

func newReleaseManager(tracker *jira.Tracker, channels []*announce.Channel) (*releases.Manager, error) {
	task := "Instantiate the release manager"

	project, err := tracker.Project()
	if err != nil {
		return nil, err
	}

	config := tracker.Config()
	urls, err := releases.NewURLGenerator(config.ServerURL(), project)
	if err != nil {
		return nil, errs.NewError(task, err)
	}

	manager, err := releases.NewManager(tracker, &releases.Options{
		URLs:               urls,
		Transitions:        releases.TransitionMap(config.Transitions()),
		ReleasableStatusId: config.ReleasableStatusId(),
		FinalStatusId:      config.FinalStatusId(),
		Channels:           channels,
	})
	if err != nil {
		return nil, errs.NewError(task, err)
	}
	return manager, nil
}
