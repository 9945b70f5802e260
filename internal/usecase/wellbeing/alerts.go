package wellbeing

import (
	"context"
	"errors"
	"strings"

	domain "goyo/internal/domain/wellbeing"
	"goyo/internal/errs"
	"goyo/internal/ports"
)

// AcknowledgeAlert marks a pending alert acknowledged. Acknowledging an
// already acknowledged alert is a no-op; a resolved alert rejects.
func (s *Service) AcknowledgeAlert(ctx context.Context, alertID uint64) (ports.RiskAlert, error) {
	if ctx == nil {
		return ports.RiskAlert{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.RiskAlert{}, errs.Wrap(err, "check context")
	}

	now := nowUTCString(s.now())

	var acknowledged ports.RiskAlert
	if err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		alert, err := s.alerts.GetAlert(txCtx, alertID)
		if err != nil {
			return err
		}
		if err := domain.CanAcknowledge(alert.Status); err != nil {
			return err
		}
		if alert.Status == domain.AlertAcknowledged {
			acknowledged = alert
			return nil
		}

		if err := s.alerts.MarkAlertAcknowledged(txCtx, alertID, now); err != nil {
			return err
		}

		acknowledged, err = s.alerts.GetAlert(txCtx, alertID)
		return err
	}); err != nil {
		return ports.RiskAlert{}, err
	}

	return acknowledged, nil
}

// ResolveAlert closes an alert with mandatory resolution notes and drops the
// worker's risk status back to normal.
func (s *Service) ResolveAlert(ctx context.Context, input ResolveAlertInput) (ports.RiskAlert, error) {
	if ctx == nil {
		return ports.RiskAlert{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.RiskAlert{}, errs.Wrap(err, "check context")
	}

	notes := strings.TrimSpace(input.Notes)
	if notes == "" {
		return ports.RiskAlert{}, domain.ErrNotesRequired
	}

	now := nowUTCString(s.now())

	var resolved ports.RiskAlert
	if err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		alert, err := s.alerts.GetAlert(txCtx, input.AlertID)
		if err != nil {
			return err
		}
		if err := domain.CanResolve(alert.Status); err != nil {
			return err
		}

		if err := s.alerts.MarkAlertResolved(txCtx, input.AlertID, now, notes); err != nil {
			return err
		}
		if err := s.workers.SetWorkerRiskStatus(txCtx, alert.WorkerID, domain.RiskNormal, now); err != nil {
			return err
		}

		resolved, err = s.alerts.GetAlert(txCtx, input.AlertID)
		return err
	}); err != nil {
		return ports.RiskAlert{}, err
	}

	s.setCacheBestEffort(ctx, cacheWorkerRiskKey(resolved.WorkerID), domain.RiskNormal)
	return resolved, nil
}

func (s *Service) ListAlerts(ctx context.Context, status string) ([]ports.AlertListItem, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}

	normalized, err := domain.NormalizeAlertFilter(status)
	if err != nil {
		return nil, err
	}
	return s.alerts.ListAlerts(ctx, ports.AlertFilter{Status: normalized})
}

// AlertDetail is an alert with its follow-up interventions.
type AlertDetail struct {
	Alert         ports.RiskAlert
	Worker        ports.Worker
	Interventions []ports.Intervention
}

func (s *Service) GetAlertDetail(ctx context.Context, alertID uint64) (AlertDetail, error) {
	if ctx == nil {
		return AlertDetail{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return AlertDetail{}, errs.Wrap(err, "check context")
	}

	alert, err := s.alerts.GetAlert(ctx, alertID)
	if err != nil {
		return AlertDetail{}, err
	}
	worker, err := s.workers.GetWorker(ctx, alert.WorkerID)
	if err != nil {
		return AlertDetail{}, err
	}
	interventions, err := s.alerts.ListInterventions(ctx, alertID)
	if err != nil {
		return AlertDetail{}, err
	}

	return AlertDetail{
		Alert:         alert,
		Worker:        worker,
		Interventions: interventions,
	}, nil
}
