package model

type RiskAlert struct {
	AlertID        uint64  `gorm:"column:alert_id;primaryKey;autoIncrement"`
	WorkerID       uint64  `gorm:"column:worker_id;not null;index"`
	RiskScore      float64 `gorm:"column:risk_score;not null"`
	RiskLevel      string  `gorm:"column:risk_level;type:text;not null"`
	Status         string  `gorm:"column:status;type:text;not null;default:pending"`
	Message        string  `gorm:"column:message;type:text;not null"`
	AcknowledgedAt *string `gorm:"column:acknowledged_at;type:text"`
	ResolvedAt     *string `gorm:"column:resolved_at;type:text"`
	Notes          string  `gorm:"column:notes;type:text"`
	CreatedAt      string  `gorm:"column:created_at;type:text;not null"`

	Worker *CareWorker `gorm:"foreignKey:WorkerID;references:WorkerID"`
}

func (RiskAlert) TableName() string {
	return "risk_alerts"
}
