package domain

import "errors"

var (
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource conflict")
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoSleepData signals that a sleep day has zero qualifying intervals.
	// It is a distinguished condition, not a failure: callers substitute the
	// "not enough data" insight instead of a numeric score.
	ErrNoSleepData = errors.New("no sleep data for the requested day")
)
