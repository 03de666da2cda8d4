package services

import "fmt"

// ValidationError rejects a submission before any side effect happens.
// Message carries exactly one failing rule, never an aggregate.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// UpstreamMediaError wraps a failed upload to the media host. It aborts the
// whole submission; nothing is persisted and nothing is retried.
type UpstreamMediaError struct {
	Slot string
	Err  error
}

func (e *UpstreamMediaError) Error() string {
	return fmt.Sprintf("upload for %s failed: %v", e.Slot, e.Err)
}

func (e *UpstreamMediaError) Unwrap() error { return e.Err }
