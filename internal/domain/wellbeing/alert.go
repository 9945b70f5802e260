package wellbeing

import "fmt"

const (
	AlertPending      = "pending"
	AlertAcknowledged = "acknowledged"
	AlertResolved     = "resolved"
)

// OpenAlertStatuses are the states counted against the one-open-alert-per-
// worker invariant.
var OpenAlertStatuses = []string{AlertPending, AlertAcknowledged}

func IsOpenAlertStatus(status string) bool {
	return status == AlertPending || status == AlertAcknowledged
}

// CanAcknowledge reports whether an alert in the given status may be
// acknowledged. Acknowledging an already acknowledged alert is a no-op at
// the usecase layer; a resolved alert is terminal.
func CanAcknowledge(status string) error {
	switch status {
	case AlertPending, AlertAcknowledged:
		return nil
	case AlertResolved:
		return ErrAlertResolved
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAlertStatus, status)
	}
}

// CanResolve reports whether an alert in the given status may be resolved.
// Resolution is terminal; a resolved alert is never reopened.
func CanResolve(status string) error {
	switch status {
	case AlertPending, AlertAcknowledged:
		return nil
	case AlertResolved:
		return ErrAlertResolved
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAlertStatus, status)
	}
}

// NormalizeAlertFilter validates a listAlerts status filter. Empty means no
// filter.
func NormalizeAlertFilter(status string) (string, error) {
	switch status {
	case "", AlertPending, AlertAcknowledged, AlertResolved:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAlertStatus, status)
	}
}
