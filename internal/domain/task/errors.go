package task

import "errors"

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrNoOpenSession     = errors.New("task creation requires an open attendance session")
	ErrUnfinishedTasks   = errors.New("employee already has an active or pending task")
	ErrTaskAlreadyClosed = errors.New("task is already completed")
)
