package wellbeing

import (
	"errors"
	"fmt"
)

// Category sentinels. Specific errors wrap one of these so callers can map
// a failure to a response class with a single errors.Is check.
var (
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
)

var (
	ErrUnknownEmotionType   = fmt.Errorf("%w: unknown emotion type", ErrValidation)
	ErrIntensityOutOfRange  = fmt.Errorf("%w: intensity out of range", ErrValidation)
	ErrNotesRequired        = fmt.Errorf("%w: notes are required", ErrValidation)
	ErrInvalidAlertStatus   = fmt.Errorf("%w: invalid alert status", ErrValidation)
	ErrInvalidSessionStatus = fmt.Errorf("%w: invalid session status", ErrValidation)
	ErrInvalidAvailability  = fmt.Errorf("%w: invalid availability", ErrValidation)

	ErrAlertResolved   = fmt.Errorf("%w: alert is resolved", ErrConflict)
	ErrSessionFinished = fmt.Errorf("%w: session already finished", ErrConflict)

	ErrNoCounselorAvailable = errors.New("no counselor available")
)
