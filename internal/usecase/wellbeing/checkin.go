package wellbeing

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"goyo/internal/bootstrap/logging"
	domain "goyo/internal/domain/wellbeing"
	"goyo/internal/errs"
	"goyo/internal/ports"
)

// LogEmotion stores a check-in and runs the full risk pipeline in one
// transaction: append the log, re-evaluate the worker's window, update the
// risk status, and open a high alert when the worker crosses into danger.
// The new alert also tries to book a counseling session; when no counselor
// has capacity the alert simply stays pending.
func (s *Service) LogEmotion(ctx context.Context, input LogEmotionInput) (LogEmotionResult, error) {
	if ctx == nil {
		return LogEmotionResult{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return LogEmotionResult{}, errs.Wrap(err, "check context")
	}

	emotionType, err := domain.NormalizeEmotionType(input.EmotionType)
	if err != nil {
		return LogEmotionResult{}, err
	}
	intensity, err := domain.NormalizeIntensity(input.Intensity)
	if err != nil {
		return LogEmotionResult{}, err
	}

	now := s.now()
	nowStr := nowUTCString(now)
	since := nowUTCString(now.AddDate(0, 0, -s.policy.WindowDays))

	loggedAt := nowStr
	if raw := strings.TrimSpace(input.LoggedAt); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return LogEmotionResult{}, errs.Wrap(domain.ErrValidation, "invalid logged_at: "+err.Error())
		}
		loggedAt = nowUTCString(parsed)
	}

	var result LogEmotionResult
	if err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		worker, err := s.workers.GetWorker(txCtx, input.WorkerID)
		if err != nil {
			return err
		}

		log, err := s.emotions.AppendEmotionLog(txCtx, ports.EmotionLogCreate{
			WorkerID:    worker.WorkerID,
			LoggedAt:    loggedAt,
			EmotionType: emotionType,
			Intensity:   intensity,
			Notes:       input.Notes,
			Context:     input.Context,
			CreatedAt:   nowStr,
		})
		if err != nil {
			return err
		}
		result.Log = log

		logs, err := s.emotions.ListWorkerEmotionLogs(txCtx, worker.WorkerID, since)
		if err != nil {
			return err
		}

		samples := make([]domain.EmotionSample, 0, len(logs))
		for _, item := range logs {
			samples = append(samples, domain.EmotionSample{
				EmotionType: item.EmotionType,
				Intensity:   item.Intensity,
			})
		}

		signal := domain.Summarize(samples)
		status := domain.Classify(signal, s.policy.Thresholds)
		score := domain.RiskScore(signal)
		result.RiskStatus = status
		result.RiskScore = score

		if worker.RiskStatus != status {
			if err := s.workers.SetWorkerRiskStatus(txCtx, worker.WorkerID, status, nowStr); err != nil {
				return err
			}
		}

		// Warning raises the worker's risk status only; the alert manager
		// fires on danger.
		if status != domain.RiskDanger {
			return nil
		}

		// One open alert per worker: a pending or acknowledged alert
		// absorbs repeated triggers instead of duplicating.
		existing, found, err := s.alerts.FindOpenAlert(txCtx, worker.WorkerID)
		if err != nil {
			return err
		}
		if found {
			result.Alert = &existing
			return nil
		}

		alert, err := s.alerts.CreateAlert(txCtx, ports.AlertCreate{
			WorkerID:  worker.WorkerID,
			RiskScore: score,
			RiskLevel: domain.AlertLevelHigh,
			Status:    domain.AlertPending,
			Message:   domain.AlertMessage(worker.Name, signal, s.policy.WindowDays),
			CreatedAt: nowStr,
		})
		if err != nil {
			return err
		}
		result.AlertCreated = true
		result.Alert = &alert

		session, err := s.bookCounseling(txCtx, worker.WorkerID, &alert.AlertID, domain.PriorityUrgent, now)
		if err != nil {
			if errors.Is(err, domain.ErrNoCounselorAvailable) {
				logging.Warn(
					logging.WithAttrs(txCtx, slog.String("component", "usecase.checkin")),
					"no counselor available, alert left pending",
					slog.Uint64("worker_id", worker.WorkerID),
					slog.Uint64("alert_id", alert.AlertID),
				)
				return nil
			}
			return err
		}
		result.Session = &session
		return nil
	}); err != nil {
		return LogEmotionResult{}, err
	}

	s.setCacheBestEffort(ctx, cacheWorkerRiskKey(input.WorkerID), result.RiskStatus)

	if result.AlertCreated && result.Alert != nil && s.notifier != nil {
		if err := s.notifier.PublishAlertCreated(ctx, ports.AlertEvent{
			AlertID:   result.Alert.AlertID,
			WorkerID:  result.Alert.WorkerID,
			RiskLevel: result.Alert.RiskLevel,
			RiskScore: result.Alert.RiskScore,
			Message:   result.Alert.Message,
			CreatedAt: result.Alert.CreatedAt,
		}); err != nil {
			logging.Warn(
				logging.WithAttrs(ctx, slog.String("component", "usecase.checkin")),
				"alert event publish failed",
				slog.Any("err", errs.Loggable(err)),
			)
		}
	}

	return result, nil
}
