package wellbeing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	domain "goyo/internal/domain/wellbeing"
	"goyo/internal/errs"
	"goyo/internal/ports"
)

// bookCounseling claims the best-ranked counselor and schedules a session.
// Candidates are ordered specialty match first, then lightest load; the
// guarded claim makes the loop safe against concurrent bookings, a loser
// just moves to the next candidate.
func (s *Service) bookCounseling(ctx context.Context, workerID uint64, alertID *uint64, priority string, now time.Time) (ports.CounselingSession, error) {
	candidates, err := s.counseling.ListAssignableCounselors(ctx, s.policy.SpecialtyKeyword)
	if err != nil {
		return ports.CounselingSession{}, err
	}

	for _, candidate := range candidates {
		claimed, err := s.counseling.ClaimCounselorSlot(ctx, candidate.CounselorID)
		if err != nil {
			return ports.CounselingSession{}, err
		}
		if !claimed {
			continue
		}

		session, err := s.counseling.CreateSession(ctx, ports.SessionCreate{
			SessionRef:    uuid.NewString(),
			WorkerID:      workerID,
			CounselorID:   candidate.CounselorID,
			SessionType:   domain.SessionTypeAuto,
			Priority:      priority,
			Status:        domain.SessionScheduled,
			ScheduledDate: nowUTCString(s.schedule(now)),
			AlertID:       alertID,
			CreatedAt:     nowUTCString(now),
		})
		if err != nil {
			return ports.CounselingSession{}, err
		}
		return session, nil
	}

	return ports.CounselingSession{}, domain.ErrNoCounselorAvailable
}

// AutoAssignCounseling books a counselor for an open alert on demand. Unlike
// the check-in pipeline it surfaces ErrNoCounselorAvailable to the caller.
func (s *Service) AutoAssignCounseling(ctx context.Context, alertID uint64) (ports.CounselingSession, error) {
	if ctx == nil {
		return ports.CounselingSession{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.CounselingSession{}, errs.Wrap(err, "check context")
	}

	now := s.now()

	var session ports.CounselingSession
	if err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		alert, err := s.alerts.GetAlert(txCtx, alertID)
		if err != nil {
			return err
		}
		if err := domain.CanAcknowledge(alert.Status); err != nil {
			return err
		}

		worker, err := s.workers.GetWorker(txCtx, alert.WorkerID)
		if err != nil {
			return err
		}

		priority := domain.PriorityHigh
		if alert.RiskLevel == domain.AlertLevelHigh {
			priority = domain.PriorityUrgent
		}

		session, err = s.bookCounseling(txCtx, worker.WorkerID, &alert.AlertID, priority, now)
		return err
	}); err != nil {
		return ports.CounselingSession{}, err
	}

	return session, nil
}
