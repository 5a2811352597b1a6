package domain

import "go.trai.ch/zerr"

var (
	// ErrTargetNotFound is returned when a referenced native target does not exist in the project.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrGroupNotFound is returned when a referenced group does not exist in the project.
	ErrGroupNotFound = zerr.New("group not found")

	// ErrUnknownExecutionPosition is returned when a script-phase spec carries
	// an execution position outside the supported set. This is a contract
	// violation by the caller and is never silently ignored.
	ErrUnknownExecutionPosition = zerr.New("unknown execution position")
)
