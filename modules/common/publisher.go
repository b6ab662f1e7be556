package common

// Publisher is implemented by every service versionify can announce through.
type Publisher interface {

	// ServiceName returns the name of the service, e.g. "Slack".
	ServiceName() string

	// Publish posts the given message and returns a handle
	// that can be used to comment on the post later.
	Publish(body string) (handle string, err error)

	// Comment appends the given message to the post identified by handle.
	Comment(handle, body string) error
}

// Withdrawer is implemented by the publishers that can take a post back.
// It is used to roll back a fresh post that could not be recorded.
type Withdrawer interface {
	Withdraw(handle string) error
}

// VersionBinder is implemented by the publishers whose posts are bound
// to a particular version, e.g. a release page. The remote link adapter
// binds the publisher to the announced version before publishing.
type VersionBinder interface {
	BindVersion(versionName string) Publisher
}
