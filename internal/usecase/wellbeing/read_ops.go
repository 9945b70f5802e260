package wellbeing

import (
	"context"
	"errors"

	domain "goyo/internal/domain/wellbeing"
	"goyo/internal/errs"
	"goyo/internal/ports"
)

const defaultRecentLogLimit = 50

// WorkerDetail is a worker with the emotion logs inside the current
// evaluation window and any open alert.
type WorkerDetail struct {
	Worker     ports.Worker
	RecentLogs []ports.EmotionLog
	RiskSignal domain.RiskSignal
	RiskScore  float64
	OpenAlert  *ports.RiskAlert
}

func (s *Service) GetWorkerDetail(ctx context.Context, workerID uint64) (WorkerDetail, error) {
	if ctx == nil {
		return WorkerDetail{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return WorkerDetail{}, errs.Wrap(err, "check context")
	}

	worker, err := s.workers.GetWorker(ctx, workerID)
	if err != nil {
		return WorkerDetail{}, err
	}

	since := nowUTCString(s.now().AddDate(0, 0, -s.policy.WindowDays))
	logs, err := s.emotions.ListWorkerEmotionLogs(ctx, workerID, since)
	if err != nil {
		return WorkerDetail{}, err
	}

	samples := make([]domain.EmotionSample, 0, len(logs))
	for _, item := range logs {
		samples = append(samples, domain.EmotionSample{
			EmotionType: item.EmotionType,
			Intensity:   item.Intensity,
		})
	}
	signal := domain.Summarize(samples)

	detail := WorkerDetail{
		Worker:     worker,
		RecentLogs: logs,
		RiskSignal: signal,
		RiskScore:  domain.RiskScore(signal),
	}

	if alert, found, err := s.alerts.FindOpenAlert(ctx, workerID); err != nil {
		return WorkerDetail{}, err
	} else if found {
		detail.OpenAlert = &alert
	}

	return detail, nil
}

func (s *Service) ListWorkerEmotionLogs(ctx context.Context, workerID uint64, since string) ([]ports.EmotionLog, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}

	if _, err := s.workers.GetWorker(ctx, workerID); err != nil {
		return nil, err
	}
	return s.emotions.ListWorkerEmotionLogs(ctx, workerID, since)
}

func (s *Service) ListRecentEmotionLogs(ctx context.Context, limit int) ([]ports.EmotionLogEntry, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}

	if limit <= 0 {
		limit = defaultRecentLogLimit
	}
	return s.emotions.ListRecentEmotionLogs(ctx, limit)
}

func (s *Service) ListWorkerHistory(ctx context.Context, workerID uint64) ([]ports.HistoryListItem, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}

	if _, err := s.workers.GetWorker(ctx, workerID); err != nil {
		return nil, err
	}
	return s.counseling.ListWorkerHistory(ctx, workerID)
}
