package ports

import "context"

type RiskAlert struct {
	AlertID        uint64
	WorkerID       uint64
	RiskScore      float64
	RiskLevel      string
	Status         string
	Message        string
	AcknowledgedAt *string
	ResolvedAt     *string
	Notes          string
	CreatedAt      string
}

type AlertCreate struct {
	WorkerID  uint64
	RiskScore float64
	RiskLevel string
	Status    string
	Message   string
	CreatedAt string
}

// AlertListItem joins an alert with its worker for list views.
type AlertListItem struct {
	RiskAlert
	WorkerName string
	WorkerRole string
	WorkerTeam string
}

type AlertFilter struct {
	Status string
}

// MonthlyAlertStat is one month of the alert trend series.
type MonthlyAlertStat struct {
	Month    string
	Count    int64
	AvgScore float64
}

type Intervention struct {
	InterventionID   uint64
	AlertID          uint64
	InterventionType string
	Description      string
	Deadline         string
	Status           string
	CompletedDate    *string
	CreatedAt        string
}

type InterventionCreate struct {
	AlertID          uint64
	InterventionType string
	Description      string
	Deadline         string
	Status           string
	CreatedAt        string
}

type AlertRepository interface {
	// FindOpenAlert returns the worker's pending or acknowledged alert, if
	// any. The store holds at most one.
	FindOpenAlert(ctx context.Context, workerID uint64) (RiskAlert, bool, error)
	CreateAlert(ctx context.Context, input AlertCreate) (RiskAlert, error)
	GetAlert(ctx context.Context, alertID uint64) (RiskAlert, error)
	ListAlerts(ctx context.Context, filter AlertFilter) ([]AlertListItem, error)
	MarkAlertAcknowledged(ctx context.Context, alertID uint64, acknowledgedAt string) error
	MarkAlertResolved(ctx context.Context, alertID uint64, resolvedAt string, notes string) error
	CountAlertsByLevel(ctx context.Context, status string) (map[string]int64, error)
	CountAlertsByStatus(ctx context.Context) (map[string]int64, error)
	MonthlyAlertTrend(ctx context.Context, sinceMonth string) ([]MonthlyAlertStat, error)
	AlertPeriodStats(ctx context.Context, periodStart string, periodEnd string) (count int64, avgScore float64, err error)

	ListInterventions(ctx context.Context, alertID uint64) ([]Intervention, error)
	GetIntervention(ctx context.Context, interventionID uint64) (Intervention, error)
	CreateIntervention(ctx context.Context, input InterventionCreate) (Intervention, error)
	UpdateInterventionStatus(ctx context.Context, interventionID uint64, status string, completedDate *string) error
}
