package wellbeing

import (
	"context"
	"errors"
	"strings"

	domain "goyo/internal/domain/wellbeing"
	"goyo/internal/errs"
	"goyo/internal/ports"
)

// CreateIntervention records a follow-up action against an open alert.
func (s *Service) CreateIntervention(ctx context.Context, input CreateInterventionInput) (ports.Intervention, error) {
	if ctx == nil {
		return ports.Intervention{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.Intervention{}, errs.Wrap(err, "check context")
	}

	interventionType := strings.TrimSpace(input.InterventionType)
	if interventionType == "" {
		return ports.Intervention{}, errs.Wrap(domain.ErrValidation, "intervention type is required")
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return ports.Intervention{}, errs.Wrap(domain.ErrValidation, "description is required")
	}
	deadline := strings.TrimSpace(input.Deadline)
	if deadline == "" {
		return ports.Intervention{}, errs.Wrap(domain.ErrValidation, "deadline is required")
	}

	now := nowUTCString(s.now())

	var created ports.Intervention
	if err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		alert, err := s.alerts.GetAlert(txCtx, input.AlertID)
		if err != nil {
			return err
		}
		if err := domain.CanAcknowledge(alert.Status); err != nil {
			return err
		}

		created, err = s.alerts.CreateIntervention(txCtx, ports.InterventionCreate{
			AlertID:          alert.AlertID,
			InterventionType: interventionType,
			Description:      description,
			Deadline:         deadline,
			Status:           "pending",
			CreatedAt:        now,
		})
		return err
	}); err != nil {
		return ports.Intervention{}, err
	}

	return created, nil
}

func (s *Service) UpdateInterventionStatus(ctx context.Context, input UpdateInterventionInput) (ports.Intervention, error) {
	if ctx == nil {
		return ports.Intervention{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.Intervention{}, errs.Wrap(err, "check context")
	}

	status := strings.TrimSpace(input.Status)
	switch status {
	case "pending", "in_progress":
	case "completed":
	default:
		return ports.Intervention{}, errs.Wrapf(domain.ErrValidation, "invalid intervention status %q", input.Status)
	}

	var completedDate *string
	if status == "completed" {
		now := nowUTCString(s.now())
		completedDate = &now
	}

	if err := s.alerts.UpdateInterventionStatus(ctx, input.InterventionID, status, completedDate); err != nil {
		return ports.Intervention{}, err
	}
	return s.alerts.GetIntervention(ctx, input.InterventionID)
}

func (s *Service) ListInterventions(ctx context.Context, alertID uint64) ([]ports.Intervention, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}
	return s.alerts.ListInterventions(ctx, alertID)
}
