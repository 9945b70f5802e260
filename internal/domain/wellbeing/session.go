package wellbeing

import "fmt"

const (
	SessionScheduled  = "scheduled"
	SessionInProgress = "in_progress"
	SessionCompleted  = "completed"
	SessionCancelled  = "cancelled"
)

const (
	SessionTypeAuto   = "auto"
	SessionTypeManual = "manual"
)

const (
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

const (
	AvailabilityAvailable   = "available"
	AvailabilityBusy        = "busy"
	AvailabilityUnavailable = "unavailable"
)

func IsTerminalSessionStatus(status string) bool {
	return status == SessionCompleted || status == SessionCancelled
}

// CanTransitionSession checks a session status change. Terminal states are
// final: re-invoking completion or cancellation must not double-decrement
// the counselor's load, so it fails instead of silently passing.
func CanTransitionSession(from string, to string) error {
	switch to {
	case SessionInProgress, SessionCompleted, SessionCancelled:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidSessionStatus, to)
	}

	if IsTerminalSessionStatus(from) {
		return fmt.Errorf("%w: status %q", ErrSessionFinished, from)
	}
	return nil
}

func NormalizeAvailability(availability string) (string, error) {
	switch availability {
	case AvailabilityAvailable, AvailabilityBusy, AvailabilityUnavailable:
		return availability, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAvailability, availability)
	}
}

func NormalizePriority(priority string) (string, error) {
	switch priority {
	case "":
		return PriorityNormal, nil
	case PriorityNormal, PriorityHigh, PriorityUrgent:
		return priority, nil
	default:
		return "", fmt.Errorf("%w: invalid priority %q", ErrValidation, priority)
	}
}
