package notes

import "github.com/salsaflow/versionify/releases"

// ReleaseNotes are the changes in a version, ready to be encoded.
type ReleaseNotes struct {
	Version string
	Changes []*releases.Change
}

func New(version string, changes []*releases.Change) *ReleaseNotes {
	return &ReleaseNotes{version, changes}
}
