package announce

import (
	// Stdlib
	"encoding/json"
	"fmt"

	// Internal
	"github.com/salsaflow/versionify/action"
	"github.com/salsaflow/versionify/errs"
	"github.com/salsaflow/versionify/log"
	"github.com/salsaflow/versionify/modules/common"
	"github.com/salsaflow/versionify/modules/jira/client"
)

// Link kinds used to mark the remote links created by versionify.
const (
	LinkKindPodioStatus   = "podio-status"
	LinkKindGitHubRelease = "github-release"
)

// RemoteLinkStore keeps the remote links attached to versions.
type RemoteLinkStore interface {
	ListRemoteLinks(versionId string) ([]*client.RemoteLink, error)
	CreateRemoteLink(versionId string, link interface{}) error
}

// LinkPayload is the object stored as the remote link.
type LinkPayload struct {
	Kind   string `json:"kind"`
	Handle string `json:"handle"`
	Title  string `json:"title,omitempty"`
}

// FindLink returns the first link of the given kind or nil.
// Links that do not decode into a LinkPayload are skipped.
func FindLink(links []*client.RemoteLink, kind string) *LinkPayload {
	for _, link := range links {
		if len(link.Link) == 0 {
			continue
		}
		var payload LinkPayload
		if err := json.Unmarshal(link.Link, &payload); err != nil {
			log.V(log.Debug).Log(fmt.Sprintf("Skipping remote link %v: %v", link.Self, err))
			continue
		}
		if payload.Kind == kind && payload.Handle != "" {
			return &payload
		}
	}
	return nil
}

// RemoteLinkAnnouncer publishes a message at most once per version.
// The handle of the post is stored as a remote link of the version,
// following announcements only comment on the existing post.
type RemoteLinkAnnouncer struct {
	store     RemoteLinkStore
	publisher common.Publisher
	kind      string
}

func NewRemoteLinkAnnouncer(
	store RemoteLinkStore,
	publisher common.Publisher,
	kind string,
) *RemoteLinkAnnouncer {

	return &RemoteLinkAnnouncer{store, publisher, kind}
}

func (announcer *RemoteLinkAnnouncer) Announce(msg *Message) error {
	var (
		service = announcer.publisher.ServiceName()
		version = msg.Version
	)

	task := fmt.Sprintf("Check whether version %v was announced through %v", version.Name, service)
	links, err := announcer.store.ListRemoteLinks(version.Id)
	if err != nil {
		return errs.NewError(task, err)
	}

	link := FindLink(links, announcer.kind)
	if link == nil {
		return announcer.publish(msg)
	}

	if !msg.IsComment {
		log.Skip(fmt.Sprintf("Version %v already announced through %v", version.Name, service))
		return nil
	}

	task = fmt.Sprintf("Comment on the %v announcement of version %v", service, version.Name)
	if err := announcer.publisher.Comment(link.Handle, msg.Body); err != nil {
		return errs.NewError(task, err)
	}
	log.Ok(task)
	return nil
}

func (announcer *RemoteLinkAnnouncer) publish(msg *Message) (err error) {
	var (
		publisher = announcer.publisher
		service   = publisher.ServiceName()
		version   = msg.Version
	)
	if binder, ok := publisher.(common.VersionBinder); ok {
		publisher = binder.BindVersion(version.Name)
	}

	task := fmt.Sprintf("Announce version %v through %v", version.Name, service)
	handle, err := publisher.Publish(msg.Body)
	if err != nil {
		return errs.NewError(task, err)
	}

	// Take the post back in case it cannot be recorded,
	// otherwise the next run would publish it again.
	if withdrawer, ok := publisher.(common.Withdrawer); ok {
		defer action.RollbackTaskOnError(&err, task, action.ActionFunc(func() error {
			return withdrawer.Withdraw(handle)
		}))
	}

	linkTask := fmt.Sprintf("Link the %v announcement to version %v", service, version.Name)
	err = announcer.store.CreateRemoteLink(version.Id, &LinkPayload{
		Kind:   announcer.kind,
		Handle: handle,
		Title:  fmt.Sprintf("%v announcement of version %v", service, version.Name),
	})
	if err != nil {
		return errs.NewError(linkTask, err)
	}

	log.Ok(task)
	return nil
}
