package wellbeing

import (
	"context"
	"errors"
	"strings"

	domain "goyo/internal/domain/wellbeing"
	"goyo/internal/errs"
	"goyo/internal/ports"
)

func (s *Service) CreateWorker(ctx context.Context, input CreateWorkerInput) (ports.Worker, error) {
	if ctx == nil {
		return ports.Worker{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.Worker{}, errs.Wrap(err, "check context")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return ports.Worker{}, errs.Wrap(domain.ErrValidation, "name is required")
	}
	role := strings.TrimSpace(input.Role)
	if role == "" {
		return ports.Worker{}, errs.Wrap(domain.ErrValidation, "role is required")
	}
	team := strings.TrimSpace(input.Team)
	if team == "" {
		return ports.Worker{}, errs.Wrap(domain.ErrValidation, "team is required")
	}

	now := nowUTCString(s.now())
	hireDate := strings.TrimSpace(input.HireDate)
	if hireDate == "" {
		hireDate = now
	}

	return s.workers.CreateWorker(ctx, ports.Worker{
		Name:       name,
		Role:       role,
		Team:       team,
		HireDate:   hireDate,
		Phone:      strings.TrimSpace(input.Phone),
		Email:      strings.TrimSpace(input.Email),
		RiskStatus: domain.RiskNormal,
		Status:     "active",
		CreatedAt:  now,
		UpdatedAt:  now,
	})
}

func (s *Service) UpdateWorker(ctx context.Context, input UpdateWorkerInput) (ports.Worker, error) {
	if ctx == nil {
		return ports.Worker{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.Worker{}, errs.Wrap(err, "check context")
	}

	now := nowUTCString(s.now())
	if err := s.workers.UpdateWorker(ctx, input.WorkerID, ports.WorkerUpdate{
		Name:  strings.TrimSpace(input.Name),
		Role:  strings.TrimSpace(input.Role),
		Team:  strings.TrimSpace(input.Team),
		Phone: strings.TrimSpace(input.Phone),
		Email: strings.TrimSpace(input.Email),
	}, now); err != nil {
		return ports.Worker{}, err
	}
	return s.workers.GetWorker(ctx, input.WorkerID)
}

// DeactivateWorker is a soft delete: the worker drops out of the default
// listings but every log and alert stays attached.
func (s *Service) DeactivateWorker(ctx context.Context, workerID uint64) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "check context")
	}
	return s.workers.SetWorkerStatus(ctx, workerID, "inactive", nowUTCString(s.now()))
}

func (s *Service) ListWorkers(ctx context.Context, includeInactive bool) ([]ports.Worker, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}
	return s.workers.ListWorkers(ctx, includeInactive)
}

func (s *Service) GetWorker(ctx context.Context, workerID uint64) (ports.Worker, error) {
	if ctx == nil {
		return ports.Worker{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.Worker{}, errs.Wrap(err, "check context")
	}
	return s.workers.GetWorker(ctx, workerID)
}

func (s *Service) SearchWorkers(ctx context.Context, query string) ([]ports.Worker, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}

	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return s.workers.ListWorkers(ctx, false)
	}
	return s.workers.SearchWorkers(ctx, trimmed)
}

func (s *Service) FilterWorkers(ctx context.Context, filter ports.WorkerFilter) ([]ports.Worker, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}
	return s.workers.FilterWorkers(ctx, filter)
}

// GetWorkerRiskStatus reads the cached status first and falls back to the
// store; a miss refreshes the cache.
func (s *Service) GetWorkerRiskStatus(ctx context.Context, workerID uint64) (string, error) {
	if ctx == nil {
		return "", errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return "", errs.Wrap(err, "check context")
	}

	if s.cache != nil {
		if value, found, err := s.cache.Get(ctx, cacheWorkerRiskKey(workerID)); err == nil && found {
			return value, nil
		}
	}

	worker, err := s.workers.GetWorker(ctx, workerID)
	if err != nil {
		return "", err
	}

	s.setCacheBestEffort(ctx, cacheWorkerRiskKey(workerID), worker.RiskStatus)
	return worker.RiskStatus, nil
}
