package wellbeing

import (
	"context"
	"errors"
	"testing"

	domain "goyo/internal/domain/wellbeing"
	"goyo/internal/ports"
)

func TestAutoAssignPrefersSpecialtyOverLoad(t *testing.T) {
	fixture := setupService(t)
	worker := fixture.createWorker(t, "Jin", "night-shift")
	generalist := fixture.createCounselor(t, "Generalist", "relationships", 8)
	specialist := fixture.createCounselor(t, "Specialist", "burnout,anxiety", 8)
	ctx := context.Background()

	// Give the specialist a head start on load; specialty still wins.
	if _, err := fixture.counseling.ClaimCounselorSlot(ctx, specialist.CounselorID); err != nil {
		t.Fatalf("claim: %v", err)
	}

	result := fixture.logEmotion(t, worker.WorkerID, "negative", 9)
	if result.Session == nil {
		t.Fatalf("expected a session")
	}
	if result.Session.CounselorID != specialist.CounselorID {
		t.Fatalf("session counselor = %d, want specialist %d", result.Session.CounselorID, specialist.CounselorID)
	}

	got, err := fixture.counseling.GetCounselor(ctx, generalist.CounselorID)
	if err != nil {
		t.Fatalf("get generalist: %v", err)
	}
	if got.CurrentLoad != 0 {
		t.Fatalf("generalist load = %d, want 0", got.CurrentLoad)
	}
}

func TestAutoAssignFallsBackWhenSpecialistFull(t *testing.T) {
	fixture := setupService(t)
	worker := fixture.createWorker(t, "Min", "night-shift")
	fallback := fixture.createCounselor(t, "Fallback", "relationships", 8)
	specialist := fixture.createCounselor(t, "Specialist", "burnout", 1)
	ctx := context.Background()

	if _, err := fixture.counseling.ClaimCounselorSlot(ctx, specialist.CounselorID); err != nil {
		t.Fatalf("fill specialist: %v", err)
	}

	result := fixture.logEmotion(t, worker.WorkerID, "negative", 9)
	if result.Session == nil {
		t.Fatalf("expected a session")
	}
	if result.Session.CounselorID != fallback.CounselorID {
		t.Fatalf("session counselor = %d, want fallback %d", result.Session.CounselorID, fallback.CounselorID)
	}
}

func TestAutoAssignCounselingSurfacesNoCapacity(t *testing.T) {
	fixture := setupService(t)
	worker := fixture.createWorker(t, "Hana", "night-shift")
	result := fixture.logEmotion(t, worker.WorkerID, "negative", 9)
	ctx := context.Background()

	_, err := fixture.svc.AutoAssignCounseling(ctx, result.Alert.AlertID)
	if !errors.Is(err, domain.ErrNoCounselorAvailable) {
		t.Fatalf("AutoAssignCounseling() error = %v, want ErrNoCounselorAvailable", err)
	}

	sessions, err := fixture.svc.ListSessions(ctx, ports.SessionFilter{})
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 0 {
		t.Fatalf("sessions = %d, want 0 after failed assignment", len(sessions))
	}
}

func TestAutoAssignCounselingBooksUrgentSessionForHighAlert(t *testing.T) {
	fixture := setupService(t)
	worker := fixture.createWorker(t, "Yuna", "night-shift")
	result := fixture.logEmotion(t, worker.WorkerID, "negative", 9)
	counselor := fixture.createCounselor(t, "Late Hire", "burnout", 8)
	ctx := context.Background()

	session, err := fixture.svc.AutoAssignCounseling(ctx, result.Alert.AlertID)
	if err != nil {
		t.Fatalf("AutoAssignCounseling() error = %v", err)
	}
	if session.CounselorID != counselor.CounselorID {
		t.Fatalf("session counselor = %d, want %d", session.CounselorID, counselor.CounselorID)
	}
	if session.Priority != domain.PriorityUrgent {
		t.Fatalf("priority = %q, want urgent for a high alert", session.Priority)
	}
	if session.SessionRef == "" {
		t.Fatalf("session ref not set")
	}
}

func TestManualSessionsStopAtCapacity(t *testing.T) {
	fixture := setupService(t)
	workerA := fixture.createWorker(t, "A", "day-shift")
	workerB := fixture.createWorker(t, "B", "day-shift")
	counselor := fixture.createCounselor(t, "Tiny", "stress", 1)
	ctx := context.Background()

	if _, err := fixture.svc.CreateSession(ctx, CreateSessionInput{
		WorkerID:      workerA.WorkerID,
		CounselorID:   counselor.CounselorID,
		ScheduledDate: "2026-09-05T10:00:00Z",
	}); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	_, err := fixture.svc.CreateSession(ctx, CreateSessionInput{
		WorkerID:      workerB.WorkerID,
		CounselorID:   counselor.CounselorID,
		ScheduledDate: "2026-09-05T11:00:00Z",
	})
	if !errors.Is(err, domain.ErrNoCounselorAvailable) {
		t.Fatalf("second booking error = %v, want ErrNoCounselorAvailable", err)
	}

	got, err := fixture.counseling.GetCounselor(ctx, counselor.CounselorID)
	if err != nil {
		t.Fatalf("get counselor: %v", err)
	}
	if got.CurrentLoad != 1 {
		t.Fatalf("counselor load = %d, want 1", got.CurrentLoad)
	}
}
