package announce

import "github.com/salsaflow/versionify/modules/jira/client"

// Message is a single announcement.
type Message struct {
	Body      string
	Version   *client.Version
	IsComment bool
}

func NewMessage(body string, version *client.Version, isComment bool) *Message {
	return &Message{
		Body:      body,
		Version:   version,
		IsComment: isComment,
	}
}
