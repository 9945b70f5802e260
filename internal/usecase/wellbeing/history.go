package wellbeing

import (
	"context"
	"errors"
	"strings"

	domain "goyo/internal/domain/wellbeing"
	"goyo/internal/errs"
	"goyo/internal/ports"
)

type AddHistoryInput struct {
	SessionID      uint64
	Outcome        string
	FollowUpNeeded bool
	FollowUpDate   string
	Notes          string
}

// AddCounselingHistory records an outcome against a session directly, for
// sessions completed outside the status flow (imported or retroactive
// records).
func (s *Service) AddCounselingHistory(ctx context.Context, input AddHistoryInput) (ports.CounselingHistory, error) {
	if ctx == nil {
		return ports.CounselingHistory{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.CounselingHistory{}, errs.Wrap(err, "check context")
	}

	outcome := strings.TrimSpace(input.Outcome)
	if outcome == "" {
		return ports.CounselingHistory{}, errs.Wrap(domain.ErrValidation, "outcome is required")
	}

	now := nowUTCString(s.now())

	var created ports.CounselingHistory
	if err := s.uow.WithTx(ctx, func(txCtx context.Context) error {
		session, err := s.counseling.GetSession(txCtx, input.SessionID)
		if err != nil {
			return err
		}

		var followUpDate *string
		if date := strings.TrimSpace(input.FollowUpDate); date != "" {
			followUpDate = &date
		}

		created, err = s.counseling.CreateHistory(txCtx, ports.HistoryCreate{
			SessionID:      session.SessionID,
			WorkerID:       session.WorkerID,
			CounselorID:    session.CounselorID,
			SessionDate:    session.ScheduledDate,
			Outcome:        outcome,
			FollowUpNeeded: input.FollowUpNeeded,
			FollowUpDate:   followUpDate,
			Notes:          input.Notes,
			CreatedAt:      now,
		})
		return err
	}); err != nil {
		return ports.CounselingHistory{}, err
	}

	return created, nil
}
