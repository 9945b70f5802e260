package ports

import (
	"errors"
	"fmt"
)

// ErrNotFound is the category sentinel for missing records; the specific
// errors wrap it so callers can match either the exact entity or the class.
var ErrNotFound = errors.New("not found")

var (
	ErrWorkerNotFound       = fmt.Errorf("care worker %w", ErrNotFound)
	ErrAlertNotFound        = fmt.Errorf("risk alert %w", ErrNotFound)
	ErrInterventionNotFound = fmt.Errorf("intervention %w", ErrNotFound)
	ErrCounselorNotFound    = fmt.Errorf("counselor %w", ErrNotFound)
	ErrSessionNotFound      = fmt.Errorf("counseling session %w", ErrNotFound)
)
