package action

// Action represents a completed step that can be undone.
type Action interface {
	Rollback() error
}

type ActionFunc func() error

func (action ActionFunc) Rollback() error {
	return action()
}

var Noop = ActionFunc(func() error { return nil })
