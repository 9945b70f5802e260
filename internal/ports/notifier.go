package ports

import "context"

// AlertEvent is the payload published when a risk alert opens.
type AlertEvent struct {
	AlertID   uint64  `json:"alert_id"`
	WorkerID  uint64  `json:"worker_id"`
	RiskLevel string  `json:"risk_level"`
	RiskScore float64 `json:"risk_score"`
	Message   string  `json:"message"`
	CreatedAt string  `json:"created_at"`
}

// AlertNotifier fans a newly opened alert out to external listeners
// (supervisor dashboards, pagers). Publication is best effort: the
// check-in pipeline never fails because a notification could not be sent.
type AlertNotifier interface {
	PublishAlertCreated(ctx context.Context, event AlertEvent) error
}
