package wellbeing

import (
	"context"
	"errors"
	"testing"

	domain "goyo/internal/domain/wellbeing"
)

func TestAcknowledgeAlertIsIdempotent(t *testing.T) {
	fixture := setupService(t)
	worker := fixture.createWorker(t, "Jin", "night-shift")
	result := fixture.logEmotion(t, worker.WorkerID, "negative", 9)
	ctx := context.Background()

	first, err := fixture.svc.AcknowledgeAlert(ctx, result.Alert.AlertID)
	if err != nil {
		t.Fatalf("AcknowledgeAlert() error = %v", err)
	}
	if first.Status != domain.AlertAcknowledged {
		t.Fatalf("status = %q, want acknowledged", first.Status)
	}
	if first.AcknowledgedAt == nil {
		t.Fatalf("acknowledged_at not set")
	}

	second, err := fixture.svc.AcknowledgeAlert(ctx, result.Alert.AlertID)
	if err != nil {
		t.Fatalf("AcknowledgeAlert(again) error = %v", err)
	}
	if second.Status != domain.AlertAcknowledged {
		t.Fatalf("status after repeat = %q", second.Status)
	}
}

func TestResolveAlertRequiresNotes(t *testing.T) {
	fixture := setupService(t)
	worker := fixture.createWorker(t, "Min", "day-shift")
	result := fixture.logEmotion(t, worker.WorkerID, "negative", 9)

	_, err := fixture.svc.ResolveAlert(context.Background(), ResolveAlertInput{
		AlertID: result.Alert.AlertID,
		Notes:   "   ",
	})
	if !errors.Is(err, domain.ErrNotesRequired) {
		t.Fatalf("ResolveAlert() error = %v, want ErrNotesRequired", err)
	}
}

func TestResolveAlertResetsWorkerAndIsTerminal(t *testing.T) {
	fixture := setupService(t)
	worker := fixture.createWorker(t, "Hana", "night-shift")
	result := fixture.logEmotion(t, worker.WorkerID, "negative", 9)
	ctx := context.Background()

	resolved, err := fixture.svc.ResolveAlert(ctx, ResolveAlertInput{
		AlertID: result.Alert.AlertID,
		Notes:   "took a rest week, follow-up scheduled",
	})
	if err != nil {
		t.Fatalf("ResolveAlert() error = %v", err)
	}
	if resolved.Status != domain.AlertResolved {
		t.Fatalf("status = %q, want resolved", resolved.Status)
	}
	if resolved.ResolvedAt == nil {
		t.Fatalf("resolved_at not set")
	}

	got, err := fixture.svc.GetWorker(ctx, worker.WorkerID)
	if err != nil {
		t.Fatalf("get worker: %v", err)
	}
	if got.RiskStatus != domain.RiskNormal {
		t.Fatalf("worker risk status = %q, want normal after resolve", got.RiskStatus)
	}

	_, err = fixture.svc.ResolveAlert(ctx, ResolveAlertInput{
		AlertID: result.Alert.AlertID,
		Notes:   "again",
	})
	if !errors.Is(err, domain.ErrAlertResolved) {
		t.Fatalf("double resolve error = %v, want ErrAlertResolved", err)
	}
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("double resolve should be a conflict, got %v", err)
	}

	_, err = fixture.svc.AcknowledgeAlert(ctx, result.Alert.AlertID)
	if !errors.Is(err, domain.ErrAlertResolved) {
		t.Fatalf("acknowledge after resolve error = %v", err)
	}
}

func TestResolvedAlertAllowsNewAlertOnNextTrigger(t *testing.T) {
	fixture := setupService(t)
	worker := fixture.createWorker(t, "Yuna", "night-shift")
	first := fixture.logEmotion(t, worker.WorkerID, "negative", 9)
	ctx := context.Background()

	if _, err := fixture.svc.ResolveAlert(ctx, ResolveAlertInput{
		AlertID: first.Alert.AlertID,
		Notes:   "handled",
	}); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	second := fixture.logEmotion(t, worker.WorkerID, "negative", 9)
	if !second.AlertCreated {
		t.Fatalf("expected a fresh alert after the previous one resolved")
	}
	if second.Alert.AlertID == first.Alert.AlertID {
		t.Fatalf("new alert reused the resolved alert id")
	}
}

func TestListAlertsRejectsUnknownStatus(t *testing.T) {
	fixture := setupService(t)

	_, err := fixture.svc.ListAlerts(context.Background(), "escalated")
	if !errors.Is(err, domain.ErrInvalidAlertStatus) {
		t.Fatalf("ListAlerts() error = %v, want ErrInvalidAlertStatus", err)
	}
}

func TestInterventionLifecycle(t *testing.T) {
	fixture := setupService(t)
	worker := fixture.createWorker(t, "Bora", "day-shift")
	result := fixture.logEmotion(t, worker.WorkerID, "negative", 9)
	ctx := context.Background()

	created, err := fixture.svc.CreateIntervention(ctx, CreateInterventionInput{
		AlertID:          result.Alert.AlertID,
		InterventionType: "1on1",
		Description:      "weekly check-in with team lead",
		Deadline:         "2026-09-10",
	})
	if err != nil {
		t.Fatalf("CreateIntervention() error = %v", err)
	}
	if created.Status != "pending" {
		t.Fatalf("intervention status = %q, want pending", created.Status)
	}

	updated, err := fixture.svc.UpdateInterventionStatus(ctx, UpdateInterventionInput{
		InterventionID: created.InterventionID,
		Status:         "completed",
	})
	if err != nil {
		t.Fatalf("UpdateInterventionStatus() error = %v", err)
	}
	if updated.CompletedDate == nil {
		t.Fatalf("completed_date not set")
	}

	detail, err := fixture.svc.GetAlertDetail(ctx, result.Alert.AlertID)
	if err != nil {
		t.Fatalf("GetAlertDetail() error = %v", err)
	}
	if len(detail.Interventions) != 1 {
		t.Fatalf("interventions = %d, want 1", len(detail.Interventions))
	}

	if _, err := fixture.svc.ResolveAlert(ctx, ResolveAlertInput{
		AlertID: result.Alert.AlertID,
		Notes:   "handled",
	}); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	_, err = fixture.svc.CreateIntervention(ctx, CreateInterventionInput{
		AlertID:          result.Alert.AlertID,
		InterventionType: "1on1",
		Description:      "too late",
		Deadline:         "2026-09-12",
	})
	if !errors.Is(err, domain.ErrAlertResolved) {
		t.Fatalf("intervention on resolved alert error = %v", err)
	}
}
