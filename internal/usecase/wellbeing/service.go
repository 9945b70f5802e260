package wellbeing

import (
	"context"
	"time"

	domain "goyo/internal/domain/wellbeing"
	"goyo/internal/ports"
)

type Service struct {
	workers    ports.WorkerRepository
	emotions   ports.EmotionRepository
	alerts     ports.AlertRepository
	counseling ports.CounselingRepository
	reports    ports.ReportRepository
	uow        ports.UnitOfWork
	cache      ports.Cache
	notifier   ports.AlertNotifier
	policy     Policy
	schedule   domain.SchedulePolicy
	now        func() time.Time
}

// NewService wires the wellbeing usecases with their persistence ports,
// alert fan-out and evaluation policy.
func NewService(
	workers ports.WorkerRepository,
	emotions ports.EmotionRepository,
	alerts ports.AlertRepository,
	counseling ports.CounselingRepository,
	reports ports.ReportRepository,
	uow ports.UnitOfWork,
	cache ports.Cache,
	notifier ports.AlertNotifier,
	policy Policy,
) *Service {
	return &Service{
		workers:    workers,
		emotions:   emotions,
		alerts:     alerts,
		counseling: counseling,
		reports:    reports,
		uow:        uow,
		cache:      cache,
		notifier:   notifier,
		policy:     policy,
		schedule:   domain.FixedNextDayPolicy(policy.ScheduleHour),
		now:        time.Now,
	}
}

type LogEmotionInput struct {
	WorkerID    uint64
	EmotionType string
	Intensity   float64
	Notes       string
	Context     string
	// LoggedAt backdates the entry (RFC3339); empty means now. Proxy
	// entries and imports use it, the risk window still keys off now.
	LoggedAt string
}

// LogEmotionResult reports what the check-in pipeline did beyond storing
// the log itself.
type LogEmotionResult struct {
	Log          ports.EmotionLog
	RiskStatus   string
	RiskScore    float64
	AlertCreated bool
	Alert        *ports.RiskAlert
	Session      *ports.CounselingSession
}

type CreateWorkerInput struct {
	Name     string
	Role     string
	Team     string
	HireDate string
	Phone    string
	Email    string
}

type UpdateWorkerInput struct {
	WorkerID uint64
	Name     string
	Role     string
	Team     string
	Phone    string
	Email    string
}

type CreateCounselorInput struct {
	Name          string
	Specialties   string
	Phone         string
	Email         string
	LicenseNumber string
	Availability  string
	MaxCapacity   int
}

type UpdateCounselorInput struct {
	CounselorID   uint64
	Name          string
	Specialties   string
	Phone         string
	Email         string
	LicenseNumber string
	Availability  string
	MaxCapacity   int
}

type CreateSessionInput struct {
	WorkerID      uint64
	CounselorID   uint64
	ScheduledDate string
	Priority      string
	Notes         string
}

type UpdateSessionStatusInput struct {
	SessionID      uint64
	Status         string
	Notes          string
	Outcome        string
	FollowUpNeeded bool
	FollowUpDate   string
}

type CreateInterventionInput struct {
	AlertID          uint64
	InterventionType string
	Description      string
	Deadline         string
}

type UpdateInterventionInput struct {
	InterventionID uint64
	Status         string
}

type ResolveAlertInput struct {
	AlertID uint64
	Notes   string
}

type GenerateReportInput struct {
	ReportType  string
	PeriodStart string
	PeriodEnd   string
}

func (s *Service) setCacheBestEffort(ctx context.Context, key string, value string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Set(ctx, key, value, 0)
}
