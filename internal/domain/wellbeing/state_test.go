package wellbeing

import (
	"errors"
	"testing"
	"time"
)

func TestAlertStateMachine(t *testing.T) {
	if err := CanAcknowledge(AlertPending); err != nil {
		t.Fatalf("CanAcknowledge(pending) error = %v", err)
	}
	if err := CanAcknowledge(AlertAcknowledged); err != nil {
		t.Fatalf("CanAcknowledge(acknowledged) error = %v", err)
	}
	if err := CanAcknowledge(AlertResolved); !errors.Is(err, ErrAlertResolved) {
		t.Fatalf("CanAcknowledge(resolved) error = %v, want ErrAlertResolved", err)
	}

	if err := CanResolve(AlertAcknowledged); err != nil {
		t.Fatalf("CanResolve(acknowledged) error = %v", err)
	}
	err := CanResolve(AlertResolved)
	if !errors.Is(err, ErrAlertResolved) {
		t.Fatalf("CanResolve(resolved) error = %v, want ErrAlertResolved", err)
	}
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("resolved-alert error should carry the conflict category, got %v", err)
	}
}

func TestSessionTransitions(t *testing.T) {
	if err := CanTransitionSession(SessionScheduled, SessionInProgress); err != nil {
		t.Fatalf("scheduled -> in_progress error = %v", err)
	}
	if err := CanTransitionSession(SessionScheduled, SessionCompleted); err != nil {
		t.Fatalf("scheduled -> completed error = %v", err)
	}
	if err := CanTransitionSession(SessionInProgress, SessionCancelled); err != nil {
		t.Fatalf("in_progress -> cancelled error = %v", err)
	}

	if err := CanTransitionSession(SessionCompleted, SessionCompleted); !errors.Is(err, ErrSessionFinished) {
		t.Fatalf("completed -> completed error = %v, want ErrSessionFinished", err)
	}
	if err := CanTransitionSession(SessionCancelled, SessionInProgress); !errors.Is(err, ErrSessionFinished) {
		t.Fatalf("cancelled -> in_progress error = %v, want ErrSessionFinished", err)
	}
	if err := CanTransitionSession(SessionScheduled, "done"); !errors.Is(err, ErrInvalidSessionStatus) {
		t.Fatalf("scheduled -> done error = %v, want ErrInvalidSessionStatus", err)
	}
}

func TestFixedNextDayPolicy(t *testing.T) {
	policy := FixedNextDayPolicy(10)
	now := time.Date(2026, 2, 16, 18, 42, 13, 0, time.UTC)

	slot := policy(now)
	want := time.Date(2026, 2, 17, 10, 0, 0, 0, time.UTC)
	if !slot.Equal(want) {
		t.Fatalf("policy slot = %v, want %v", slot, want)
	}
}

func TestNormalizePriorityDefaultsToNormal(t *testing.T) {
	got, err := NormalizePriority("")
	if err != nil {
		t.Fatalf("NormalizePriority(empty) error = %v", err)
	}
	if got != PriorityNormal {
		t.Fatalf("NormalizePriority(empty) = %q, want %q", got, PriorityNormal)
	}
	if _, err := NormalizePriority("asap"); !errors.Is(err, ErrValidation) {
		t.Fatalf("NormalizePriority(asap) error = %v, want validation error", err)
	}
}
