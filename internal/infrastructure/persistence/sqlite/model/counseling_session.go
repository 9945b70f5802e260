package model

type CounselingSession struct {
	SessionID     uint64  `gorm:"column:session_id;primaryKey;autoIncrement"`
	SessionRef    string  `gorm:"column:session_ref;type:text;not null;uniqueIndex"`
	WorkerID      uint64  `gorm:"column:worker_id;not null;index"`
	CounselorID   uint64  `gorm:"column:counselor_id;not null;index"`
	SessionType   string  `gorm:"column:session_type;type:text;not null"`
	Priority      string  `gorm:"column:priority;type:text;not null;default:normal"`
	Status        string  `gorm:"column:status;type:text;not null;default:scheduled"`
	ScheduledDate string  `gorm:"column:scheduled_date;type:text;not null"`
	CompletedDate *string `gorm:"column:completed_date;type:text"`
	Notes         string  `gorm:"column:notes;type:text"`
	AlertID       *uint64 `gorm:"column:alert_id"`
	CreatedAt     string  `gorm:"column:created_at;type:text;not null"`

	Worker    *CareWorker `gorm:"foreignKey:WorkerID;references:WorkerID"`
	Counselor *Counselor  `gorm:"foreignKey:CounselorID;references:CounselorID"`
	Alert     *RiskAlert  `gorm:"foreignKey:AlertID;references:AlertID"`
}

func (CounselingSession) TableName() string {
	return "counseling_sessions"
}
