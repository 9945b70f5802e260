package wellbeing

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	domain "goyo/internal/domain/wellbeing"
	"goyo/internal/errs"
	"goyo/internal/ports"
)

// CreateSession books a manual counseling session with an explicit
// counselor. The counselor's slot is claimed the same way auto-linking does
// it, so a fully loaded counselor rejects the booking.
func (s *Service) CreateSession(ctx context.Context, input CreateSessionInput) (ports.CounselingSession, error) {
	if ctx == nil {
		return ports.CounselingSession{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.CounselingSession{}, errs.Wrap(err, "check context")
	}

	priority, err := domain.NormalizePriority(input.Priority)
	if err != nil {
		return ports.CounselingSession{}, err
	}
	scheduledDate := strings.TrimSpace(input.ScheduledDate)
	if scheduledDate == "" {
		return ports.CounselingSession{}, errs.Wrap(domain.ErrValidation, "scheduled date is required")
	}

	now := nowUTCString(s.now())

	var session ports.CounselingSession
	if err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		if _, err := s.workers.GetWorker(txCtx, input.WorkerID); err != nil {
			return err
		}
		if _, err := s.counseling.GetCounselor(txCtx, input.CounselorID); err != nil {
			return err
		}

		claimed, err := s.counseling.ClaimCounselorSlot(txCtx, input.CounselorID)
		if err != nil {
			return err
		}
		if !claimed {
			return domain.ErrNoCounselorAvailable
		}

		session, err = s.counseling.CreateSession(txCtx, ports.SessionCreate{
			SessionRef:    uuid.NewString(),
			WorkerID:      input.WorkerID,
			CounselorID:   input.CounselorID,
			SessionType:   domain.SessionTypeManual,
			Priority:      priority,
			Status:        domain.SessionScheduled,
			ScheduledDate: scheduledDate,
			Notes:         input.Notes,
			CreatedAt:     now,
		})
		return err
	}); err != nil {
		return ports.CounselingSession{}, err
	}

	return session, nil
}

// UpdateSessionStatus moves a session through its lifecycle. Completing or
// cancelling releases the counselor's slot exactly once; a completed session
// additionally writes a counseling history record.
func (s *Service) UpdateSessionStatus(ctx context.Context, input UpdateSessionStatusInput) (ports.CounselingSession, error) {
	if ctx == nil {
		return ports.CounselingSession{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.CounselingSession{}, errs.Wrap(err, "check context")
	}

	now := nowUTCString(s.now())

	var updated ports.CounselingSession
	if err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		session, err := s.counseling.GetSession(txCtx, input.SessionID)
		if err != nil {
			return err
		}
		if err := domain.CanTransitionSession(session.Status, input.Status); err != nil {
			return err
		}

		var completedDate *string
		if input.Status == domain.SessionCompleted {
			completedDate = &now
		}
		if err := s.counseling.UpdateSessionStatus(txCtx, input.SessionID, input.Status, completedDate, input.Notes); err != nil {
			return err
		}

		if domain.IsTerminalSessionStatus(input.Status) {
			if err := s.counseling.ReleaseCounselorSlot(txCtx, session.CounselorID); err != nil {
				return err
			}
		}

		if input.Status == domain.SessionCompleted {
			var followUpDate *string
			if date := strings.TrimSpace(input.FollowUpDate); date != "" {
				followUpDate = &date
			}
			if _, err := s.counseling.CreateHistory(txCtx, ports.HistoryCreate{
				SessionID:      session.SessionID,
				WorkerID:       session.WorkerID,
				CounselorID:    session.CounselorID,
				SessionDate:    session.ScheduledDate,
				Outcome:        input.Outcome,
				FollowUpNeeded: input.FollowUpNeeded,
				FollowUpDate:   followUpDate,
				Notes:          input.Notes,
				CreatedAt:      now,
			}); err != nil {
				return err
			}
		}

		updated, err = s.counseling.GetSession(txCtx, input.SessionID)
		return err
	}); err != nil {
		return ports.CounselingSession{}, err
	}

	return updated, nil
}

func (s *Service) ListSessions(ctx context.Context, filter ports.SessionFilter) ([]ports.SessionListItem, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}
	return s.counseling.ListSessions(ctx, filter)
}

func (s *Service) GetSession(ctx context.Context, sessionID uint64) (ports.CounselingSession, error) {
	if ctx == nil {
		return ports.CounselingSession{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.CounselingSession{}, errs.Wrap(err, "check context")
	}
	return s.counseling.GetSession(ctx, sessionID)
}
