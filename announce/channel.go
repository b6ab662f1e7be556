package announce

import "github.com/salsaflow/versionify/modules/common"

// Channel describes a configured announcement channel.
// Channels with LinkKind set are announced at most once per version.
type Channel struct {
	Name      string
	Publisher common.Publisher
	LinkKind  string
}

// NewAdapter returns a fresh adapter for the channel.
func (channel *Channel) NewAdapter(store RemoteLinkStore) Adapter {
	if channel.LinkKind == "" {
		return NewChatAnnouncer(channel.Publisher)
	}
	return NewRemoteLinkAnnouncer(store, channel.Publisher, channel.LinkKind)
}

// NewAnnouncerForChannels returns an announcer
// with one adapter registered per channel.
func NewAnnouncerForChannels(store RemoteLinkStore, channels []*Channel) *Announcer {
	announcer := NewAnnouncer()
	for _, channel := range channels {
		announcer.Register(channel.NewAdapter(store))
	}
	return announcer
}
