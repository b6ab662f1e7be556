package action

import (
	// Stdlib
	"errors"

	// Internal
	"github.com/salsaflow/versionify/errs"
	"github.com/salsaflow/versionify/log"
)

var ErrRollbackFailed = errors.New("failed to roll back changes")

// RollbackTaskOnError rolls back the given action in case *err is not nil.
// It is supposed to be deferred right after the action is performed:
//
//	defer action.RollbackTaskOnError(&err, task, act)
func RollbackTaskOnError(err *error, task string, action Action) {
	chain := NewActionChain()
	chain.PushTask(task, action)
	chain.RollbackOnError(err)
}

type actionRecord struct {
	task   string
	action Action
}

// ActionChain collects actions so that they can be rolled back
// in the reverse order.
type ActionChain struct {
	actions []*actionRecord
}

func NewActionChain() *ActionChain {
	return &ActionChain{}
}

func (chain *ActionChain) PushTask(task string, action Action) {
	if action != nil {
		chain.actions = append(chain.actions, &actionRecord{task, action})
	}
}

func (chain *ActionChain) Len() int {
	return len(chain.actions)
}

func (chain *ActionChain) Rollback() error {
	var ex error
	for i := len(chain.actions) - 1; i >= 0; i-- {
		act := chain.actions[i]
		if act.task != "" {
			log.Rollback(act.task)
		}
		if err := act.action.Rollback(); err != nil {
			errs.Log(err)
			ex = ErrRollbackFailed
		}
	}
	return ex
}

// RollbackOnError rolls the chain back in case *err is not nil.
// A pointer is passed so that the deferred call sees the final value.
func (chain *ActionChain) RollbackOnError(err *error) {
	if *err != nil {
		chain.Rollback()
	}
}
