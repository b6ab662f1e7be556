package releases

import (
	// Stdlib
	"errors"
	"fmt"
	"time"

	// Vendor
	"go.uber.org/multierr"

	// Internal
	"github.com/salsaflow/versionify/announce"
	"github.com/salsaflow/versionify/errs"
	"github.com/salsaflow/versionify/log"
	"github.com/salsaflow/versionify/modules/jira/client"
)

// ReleaseDateLayout is the date format JIRA expects for release dates.
const ReleaseDateLayout = "2006-01-02"

type Options struct {
	URLs *URLGenerator

	// Transitions maps status IDs to the transition to perform next.
	Transitions TransitionMap

	// ReleasableStatusId is the status issues are moved to on release.
	ReleasableStatusId string

	// FinalStatusId is the status issues are moved to on assignment.
	FinalStatusId string

	// Channels are the channels Announce delivers to.
	Channels []*announce.Channel

	// Now returns the current time, time.Now is used when not set.
	Now func() time.Time
}

// Manager manages the versions of a single project.
type Manager struct {
	tracker Tracker
	opts    Options
}

func NewManager(tracker Tracker, opts *Options) (*Manager, error) {
	switch {
	case tracker == nil:
		return nil, errors.New("release manager: tracker not set")
	case opts == nil || opts.URLs == nil:
		return nil, errors.New("release manager: URL generator not set")
	case opts.ReleasableStatusId == "" || opts.FinalStatusId == "":
		return nil, errors.New("release manager: target status not set")
	}

	manager := &Manager{tracker, *opts}
	if manager.opts.Now == nil {
		manager.opts.Now = time.Now
	}
	return manager, nil
}

func (manager *Manager) URLs() *URLGenerator {
	return manager.opts.URLs
}

// CreateVersion creates a new version with the given name.
// *ErrVersionExists is returned when the name is already taken,
// in which case nothing is written into the tracker.
func (manager *Manager) CreateVersion(name string) (*client.Version, error) {
	task := fmt.Sprintf("Create version '%v'", name)
	if name == "" {
		return nil, errs.NewError(task, ErrEmptyVersionName)
	}

	existing, err := manager.FindVersion(name)
	if err == nil {
		return nil, errs.NewErrorWithHint(task, &ErrVersionExists{existing.Name},
			"Choose another version name or release the existing version\n")
	}
	if _, ok := errs.RootCause(err).(*ErrVersionNotFound); !ok {
		return nil, errs.NewError(task, err)
	}

	log.Run(task)
	created, err := manager.tracker.CreateVersion(name)
	if err != nil {
		return nil, errs.NewError(task, err)
	}

	// Fetch the version again to get the fields filled in by the server.
	version, err := manager.tracker.GetVersion(created.Id)
	if err != nil {
		return nil, errs.NewError(task, err)
	}
	return version, nil
}

// FindVersion returns the version with exactly the given name.
func (manager *Manager) FindVersion(name string) (*client.Version, error) {
	versions, err := manager.tracker.ListVersions()
	if err != nil {
		return nil, err
	}
	for _, version := range versions {
		if version.Name == name {
			return version, nil
		}
	}
	return nil, &ErrVersionNotFound{name}
}

// ResolveVersion returns the version with the given name
// or the open version when the name is empty.
func (manager *Manager) ResolveVersion(name string) (*client.Version, error) {
	if name != "" {
		version, err := manager.FindVersion(name)
		if err != nil {
			return nil, errs.NewError(fmt.Sprintf("Find version '%v'", name), err)
		}
		return version, nil
	}

	version, err := manager.OpenVersion()
	if err != nil {
		return nil, err
	}
	if version == nil {
		return nil, errs.NewErrorWithHint("Find the open version", ErrNoVersion,
			"Create a new version first or specify the version explicitly\n")
	}
	return version, nil
}

// OpenVersion returns the first unreleased version
// in the order as returned by the tracker, or nil.
func (manager *Manager) OpenVersion() (*client.Version, error) {
	versions, err := manager.tracker.ListVersions()
	if err != nil {
		return nil, errs.NewError("Get the open version", err)
	}
	for _, version := range versions {
		if !version.Released {
			return version, nil
		}
	}
	return nil, nil
}

// AssignToVersion sets the issue fix version to the given version
// and moves the issue towards the final status.
//
// An issue that is already assigned to other versions is not touched,
// the issue is returned as it is together with *ErrVersionConflict.
// When saving fails, the unmodified issue is returned with the error.
func (manager *Manager) AssignToVersion(issue *client.Issue, version *client.Version) (*client.Issue, error) {
	task := fmt.Sprintf("Assign issue %v to version '%v'", issue.Key, version.Name)

	if current := fixVersionNames(issue); len(current) != 0 && !contains(current, version.Name) {
		return issue, errs.NewError(task, &ErrVersionConflict{issue.Key, current, version.Name})
	}

	log.Run(task)
	if err := manager.tracker.SetFixVersion(issue.Key, version.Id); err != nil {
		return issue, errs.NewError(task, err)
	}

	fresh, err := manager.tracker.GetIssue(issue.Key)
	if err != nil {
		return issue, errs.NewError(task, err)
	}
	return manager.TransitionTo(fresh, manager.opts.FinalStatusId)
}

// ReleaseVersion moves the issues assigned to the version towards
// the releasable status and marks the version as released today.
//
// A failure to move an issue does not stop processing of the other issues,
// the errors are collected and returned after the version is released.
func (manager *Manager) ReleaseVersion(version *client.Version) error {
	if version == nil {
		return errs.NewError("Release version", ErrNoVersion)
	}
	task := fmt.Sprintf("Release version '%v'", version.Name)

	issues, err := manager.versionIssues(version)
	if err != nil {
		return errs.NewError(task, err)
	}

	var transitionErr error
	for _, issue := range issues {
		if _, err := manager.TransitionTo(issue, manager.opts.ReleasableStatusId); err != nil {
			errs.Log(err)
			transitionErr = multierr.Append(transitionErr, err)
		}
	}

	log.Run(task)
	releaseDate := manager.opts.Now().Format(ReleaseDateLayout)
	if err := manager.tracker.ReleaseVersion(version.Id, releaseDate); err != nil {
		return errs.NewError(task, multierr.Append(err, transitionErr))
	}
	if transitionErr != nil {
		return errs.NewError(task, transitionErr)
	}
	log.Ok(task)
	return nil
}

// Announce delivers the message to every configured channel.
// The adapters are created for every call.
func (manager *Manager) Announce(body string, version *client.Version, isComment bool) error {
	if version == nil {
		return errs.NewError("Announce release", ErrNoVersion)
	}

	announcer := announce.NewAnnouncerForChannels(manager.tracker, manager.opts.Channels)
	if announcer.Len() == 0 {
		log.Warn("No announcement channel configured")
		return nil
	}
	return announcer.Announce(announce.NewMessage(body, version, isComment))
}

func fixVersionNames(issue *client.Issue) []string {
	names := make([]string, 0, len(issue.Fields.FixVersions))
	for _, v := range issue.Fields.FixVersions {
		names = append(names, v.Name)
	}
	return names
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
