package scheduler

import "errors"

var (
	ErrAlreadyStarted    = errors.New("scheduler: already started")
	ErrNotStarted        = errors.New("scheduler: not started")
	ErrInvalidSchedule   = errors.New("scheduler: invalid cron schedule")
	ErrHealthcheckFailed = errors.New("scheduler: healthcheck failed")
)
