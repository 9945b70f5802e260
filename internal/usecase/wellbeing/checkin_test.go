package wellbeing

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "goyo/internal/domain/wellbeing"
	"goyo/internal/ports"
)

func TestLogEmotionNormalStaysQuiet(t *testing.T) {
	fixture := setupService(t)
	worker := fixture.createWorker(t, "Sora", "day-shift")

	result := fixture.logEmotion(t, worker.WorkerID, "positive", 6)

	if result.RiskStatus != domain.RiskNormal {
		t.Fatalf("RiskStatus = %q, want normal", result.RiskStatus)
	}
	if result.AlertCreated || result.Alert != nil {
		t.Fatalf("unexpected alert for positive check-in")
	}
	if len(fixture.notifier.Events()) != 0 {
		t.Fatalf("unexpected alert events published")
	}
}

func TestLogEmotionDangerOpensAlertAndBooksSession(t *testing.T) {
	fixture := setupService(t)
	worker := fixture.createWorker(t, "Jin", "night-shift")
	counselor := fixture.createCounselor(t, "Dr. Park", "burnout,stress", 8)

	result := fixture.logEmotion(t, worker.WorkerID, "stressed", 8)

	if result.RiskStatus != domain.RiskDanger {
		t.Fatalf("RiskStatus = %q, want danger", result.RiskStatus)
	}
	if !result.AlertCreated || result.Alert == nil {
		t.Fatalf("expected a new alert")
	}
	if result.Alert.RiskLevel != domain.AlertLevelHigh {
		t.Fatalf("RiskLevel = %q, want high", result.Alert.RiskLevel)
	}
	if result.Session == nil {
		t.Fatalf("expected an auto-linked session")
	}
	if result.Session.CounselorID != counselor.CounselorID {
		t.Fatalf("session counselor = %d, want %d", result.Session.CounselorID, counselor.CounselorID)
	}
	if result.Session.SessionType != domain.SessionTypeAuto {
		t.Fatalf("session type = %q, want auto", result.Session.SessionType)
	}
	if result.Session.Priority != domain.PriorityUrgent {
		t.Fatalf("session priority = %q, want urgent", result.Session.Priority)
	}
	if result.Session.AlertID == nil || *result.Session.AlertID != result.Alert.AlertID {
		t.Fatalf("session alert link = %v, want %d", result.Session.AlertID, result.Alert.AlertID)
	}

	got, err := fixture.counseling.GetCounselor(context.Background(), counselor.CounselorID)
	if err != nil {
		t.Fatalf("get counselor: %v", err)
	}
	if got.CurrentLoad != 1 {
		t.Fatalf("counselor load = %d, want 1", got.CurrentLoad)
	}

	events := fixture.notifier.Events()
	if len(events) != 1 {
		t.Fatalf("published events = %d, want 1", len(events))
	}
	if events[0].AlertID != result.Alert.AlertID {
		t.Fatalf("event alert id = %d, want %d", events[0].AlertID, result.Alert.AlertID)
	}
}

func TestLogEmotionRepeatedDangerKeepsOneOpenAlert(t *testing.T) {
	fixture := setupService(t)
	worker := fixture.createWorker(t, "Min", "night-shift")
	fixture.createCounselor(t, "Dr. Park", "burnout", 8)

	var alertID uint64
	for i := 0; i < 7; i++ {
		result := fixture.logEmotion(t, worker.WorkerID, "negative", 8)
		if result.Alert == nil {
			t.Fatalf("check-in %d: expected an open alert", i)
		}
		if i == 0 {
			if !result.AlertCreated {
				t.Fatalf("first check-in should create the alert")
			}
			alertID = result.Alert.AlertID
			continue
		}
		if result.AlertCreated {
			t.Fatalf("check-in %d created a duplicate alert", i)
		}
		if result.Alert.AlertID != alertID {
			t.Fatalf("check-in %d alert id = %d, want %d", i, result.Alert.AlertID, alertID)
		}
	}

	alerts, err := fixture.svc.ListAlerts(context.Background(), domain.AlertPending)
	if err != nil {
		t.Fatalf("list alerts: %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("pending alerts = %d, want 1", len(alerts))
	}
	if len(fixture.notifier.Events()) != 1 {
		t.Fatalf("published events = %d, want 1", len(fixture.notifier.Events()))
	}
}

func TestLogEmotionWarningUpdatesStatusWithoutAlert(t *testing.T) {
	fixture := setupService(t)
	worker := fixture.createWorker(t, "Hana", "day-shift")
	fixture.createCounselor(t, "Dr. Park", "burnout", 8)

	fixture.logEmotion(t, worker.WorkerID, "positive", 5)
	result := fixture.logEmotion(t, worker.WorkerID, "stressed", 5)

	if result.RiskStatus != domain.RiskWarning {
		t.Fatalf("RiskStatus = %q, want warning", result.RiskStatus)
	}
	if result.AlertCreated || result.Alert != nil {
		t.Fatalf("warning must not open an alert")
	}
	if result.Session != nil {
		t.Fatalf("warning must not auto-link a session")
	}

	got, err := fixture.svc.GetWorker(context.Background(), worker.WorkerID)
	if err != nil {
		t.Fatalf("get worker: %v", err)
	}
	if got.RiskStatus != domain.RiskWarning {
		t.Fatalf("worker risk status = %q, want warning", got.RiskStatus)
	}
	if len(fixture.notifier.Events()) != 0 {
		t.Fatalf("unexpected alert events published")
	}
}

func TestLogEmotionWarningThenDangerOpensHighAlert(t *testing.T) {
	fixture := setupService(t)
	worker := fixture.createWorker(t, "Ara", "night-shift")
	counselor := fixture.createCounselor(t, "Dr. Park", "burnout", 8)

	// Warning first: the worker must still get the full danger response
	// (high alert plus auto referral) once the window tips over.
	fixture.logEmotion(t, worker.WorkerID, "positive", 5)
	warning := fixture.logEmotion(t, worker.WorkerID, "stressed", 5)
	if warning.RiskStatus != domain.RiskWarning || warning.Alert != nil {
		t.Fatalf("warning stage = (%q, alert %v), want (warning, none)", warning.RiskStatus, warning.Alert)
	}

	var result LogEmotionResult
	for i := 0; i < 3; i++ {
		result = fixture.logEmotion(t, worker.WorkerID, "stressed", 9)
	}

	if result.RiskStatus != domain.RiskDanger {
		t.Fatalf("RiskStatus = %q, want danger", result.RiskStatus)
	}
	alerts, err := fixture.svc.ListAlerts(context.Background(), domain.AlertPending)
	if err != nil {
		t.Fatalf("list alerts: %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("pending alerts = %d, want 1", len(alerts))
	}
	if alerts[0].RiskLevel != domain.AlertLevelHigh {
		t.Fatalf("RiskLevel = %q, want high", alerts[0].RiskLevel)
	}

	sessions, err := fixture.svc.ListSessions(context.Background(), ports.SessionFilter{})
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(sessions))
	}
	if sessions[0].CounselorID != counselor.CounselorID {
		t.Fatalf("session counselor = %d, want %d", sessions[0].CounselorID, counselor.CounselorID)
	}
}

func TestLogEmotionBackdatedEntry(t *testing.T) {
	fixture := setupService(t)
	worker := fixture.createWorker(t, "Seo", "day-shift")
	ctx := context.Background()

	loggedAt := "2026-08-01T09:30:00Z"
	result, err := fixture.svc.LogEmotion(ctx, LogEmotionInput{
		WorkerID:    worker.WorkerID,
		EmotionType: "stressed",
		Intensity:   9,
		LoggedAt:    loggedAt,
	})
	if err != nil {
		t.Fatalf("log backdated emotion: %v", err)
	}

	parsed, err := time.Parse(time.RFC3339, result.Log.LoggedAt)
	if err != nil {
		t.Fatalf("parse stored logged_at %q: %v", result.Log.LoggedAt, err)
	}
	want, _ := time.Parse(time.RFC3339, loggedAt)
	if !parsed.Equal(want) {
		t.Fatalf("stored logged_at = %q, want %q", result.Log.LoggedAt, loggedAt)
	}

	// Outside the evaluation window the entry cannot move the risk status.
	if result.RiskStatus != domain.RiskNormal {
		t.Fatalf("RiskStatus = %q, want normal", result.RiskStatus)
	}
	if result.AlertCreated || result.Alert != nil {
		t.Fatalf("backdated entry outside the window must not open an alert")
	}

	_, err = fixture.svc.LogEmotion(ctx, LogEmotionInput{
		WorkerID:    worker.WorkerID,
		EmotionType: "stressed",
		Intensity:   9,
		LoggedAt:    "yesterday",
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("malformed logged_at error = %v, want validation failure", err)
	}
}

func TestLogEmotionDangerWithoutCounselorLeavesAlertPending(t *testing.T) {
	fixture := setupService(t)
	worker := fixture.createWorker(t, "Yuna", "night-shift")

	result := fixture.logEmotion(t, worker.WorkerID, "negative", 9)

	if !result.AlertCreated || result.Alert == nil {
		t.Fatalf("expected an alert despite missing counselors")
	}
	if result.Session != nil {
		t.Fatalf("no session should exist without counselors")
	}
	if result.Alert.Status != domain.AlertPending {
		t.Fatalf("alert status = %q, want pending", result.Alert.Status)
	}
}

func TestLogEmotionUpdatesWorkerRiskStatus(t *testing.T) {
	fixture := setupService(t)
	worker := fixture.createWorker(t, "Bora", "day-shift")

	fixture.logEmotion(t, worker.WorkerID, "negative", 9)

	got, err := fixture.svc.GetWorker(context.Background(), worker.WorkerID)
	if err != nil {
		t.Fatalf("get worker: %v", err)
	}
	if got.RiskStatus != domain.RiskDanger {
		t.Fatalf("worker risk status = %q, want danger", got.RiskStatus)
	}

	status, err := fixture.svc.GetWorkerRiskStatus(context.Background(), worker.WorkerID)
	if err != nil {
		t.Fatalf("get worker risk status: %v", err)
	}
	if status != domain.RiskDanger {
		t.Fatalf("cached risk status = %q, want danger", status)
	}
}

func TestLogEmotionFractionalIntensityScales(t *testing.T) {
	fixture := setupService(t)
	worker := fixture.createWorker(t, "Dana", "day-shift")

	result := fixture.logEmotion(t, worker.WorkerID, "neutral", 0.5)

	if result.Log.Intensity != 5 {
		t.Fatalf("stored intensity = %v, want 5", result.Log.Intensity)
	}
}

func TestLogEmotionRejectsBadInput(t *testing.T) {
	fixture := setupService(t)
	worker := fixture.createWorker(t, "Eun", "day-shift")
	ctx := context.Background()

	_, err := fixture.svc.LogEmotion(ctx, LogEmotionInput{
		WorkerID:    worker.WorkerID,
		EmotionType: "ecstatic",
		Intensity:   5,
	})
	if !errors.Is(err, domain.ErrUnknownEmotionType) {
		t.Fatalf("unknown emotion error = %v", err)
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("unknown emotion should be a validation failure, got %v", err)
	}

	_, err = fixture.svc.LogEmotion(ctx, LogEmotionInput{
		WorkerID:    worker.WorkerID,
		EmotionType: "positive",
		Intensity:   42,
	})
	if !errors.Is(err, domain.ErrIntensityOutOfRange) {
		t.Fatalf("out of range error = %v", err)
	}

	logs, err := fixture.svc.ListWorkerEmotionLogs(ctx, worker.WorkerID, "")
	if err != nil {
		t.Fatalf("list logs: %v", err)
	}
	if len(logs) != 0 {
		t.Fatalf("rejected check-ins must not persist, got %d logs", len(logs))
	}
}
