package errs

import (
	// Stdlib
	"bytes"
	"errors"

	// Internal
	"github.com/salsaflow/versionify/log"
)

// Error wraps an error with the name of the task that failed
// and an optional hint telling the user how to fix the problem.
type Error struct {
	task string
	err  error
	hint *bytes.Buffer
}

func NewError(task string, err error) *Error {
	return &Error{task: task, err: err}
}

func NewErrorWithHint(task string, err error, hint string) *Error {
	return &Error{task, err, bytes.NewBufferString(hint)}
}

func (err *Error) Task() string {
	return err.task
}

func (err *Error) Hint() string {
	if err.hint == nil {
		return ""
	}
	return err.hint.String()
}

func (err *Error) Error() string {
	if err.err == nil {
		return err.task + ": task failed"
	}
	return err.err.Error()
}

func (err *Error) Unwrap() error {
	return err.err
}

// Log logs the error chain, innermost task first, and returns the error.
func Log(err error) error {
	logger := log.V(log.Info)

	var chain []*Error
	for ex := err; ex != nil; ex = errors.Unwrap(ex) {
		if e, ok := ex.(*Error); ok {
			chain = append(chain, e)
		}
	}
	if len(chain) == 0 {
		logger.Fail(err.Error())
		return err
	}

	for i := len(chain) - 1; i >= 0; i-- {
		if e := chain[i]; e.hint != nil {
			logger.FailWithDetails(e.task, bytes.NewBufferString(e.hint.String()))
		} else {
			logger.Fail(e.task)
		}
	}
	return err
}

// LogError is a shortcut for Log(NewError(task, err)).
func LogError(task string, err error) error {
	return Log(NewError(task, err))
}

// Fatal logs the error and exits with status 1.
func Fatal(err error) {
	Log(err)
	log.Fatalln("\nError:", RootCause(err))
}

// RootCause returns the innermost error that is not an *Error.
func RootCause(err error) error {
	for {
		e, ok := err.(*Error)
		if !ok || e.err == nil {
			return err
		}
		err = e.err
	}
}
