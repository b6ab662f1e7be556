package announce

import (
	// Stdlib
	"fmt"

	// Internal
	"github.com/salsaflow/versionify/errs"
	"github.com/salsaflow/versionify/log"
	"github.com/salsaflow/versionify/modules/common"
)

// ChatAnnouncer posts every message, comments included, as a new post.
type ChatAnnouncer struct {
	publisher common.Publisher
}

func NewChatAnnouncer(publisher common.Publisher) *ChatAnnouncer {
	return &ChatAnnouncer{publisher}
}

func (announcer *ChatAnnouncer) Announce(msg *Message) error {
	task := fmt.Sprintf("Announce version %v through %v", msg.Version.Name, announcer.publisher.ServiceName())
	if _, err := announcer.publisher.Publish(msg.Body); err != nil {
		return errs.NewError(task, err)
	}
	log.Ok(task)
	return nil
}
