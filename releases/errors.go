package releases

import (
	// Stdlib
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyVersionName = errors.New("version name is empty")
	ErrNoVersion        = errors.New("no version")
)

// ErrVersionExists is returned when creating a version
// with the same name as an existing version.
type ErrVersionExists struct {
	Name string
}

func (err *ErrVersionExists) Error() string {
	return fmt.Sprintf("version '%v' already exists", err.Name)
}

type ErrVersionNotFound struct {
	Name string
}

func (err *ErrVersionNotFound) Error() string {
	return fmt.Sprintf("version '%v' not found", err.Name)
}

// ErrVersionConflict is returned when an issue is already assigned
// to another version.
type ErrVersionConflict struct {
	IssueKey        string
	CurrentVersions []string
	Version         string
}

func (err *ErrVersionConflict) Error() string {
	return fmt.Sprintf("issue %v is assigned to version(s) %v, not to %v",
		err.IssueKey, strings.Join(err.CurrentVersions, ", "), err.Version)
}

// ErrTransitionCycle is returned when the transition map
// leads an issue back into a status it has already been in.
type ErrTransitionCycle struct {
	IssueKey string
	StatusId string
}

func (err *ErrTransitionCycle) Error() string {
	return fmt.Sprintf("transition cycle detected for issue %v: status %v reached again",
		err.IssueKey, err.StatusId)
}
