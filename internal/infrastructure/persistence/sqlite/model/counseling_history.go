package model

type CounselingHistory struct {
	HistoryID      uint64  `gorm:"column:history_id;primaryKey;autoIncrement"`
	SessionID      uint64  `gorm:"column:session_id;not null;index"`
	WorkerID       uint64  `gorm:"column:worker_id;not null;index"`
	CounselorID    uint64  `gorm:"column:counselor_id;not null"`
	SessionDate    string  `gorm:"column:session_date;type:text;not null"`
	Outcome        string  `gorm:"column:outcome;type:text"`
	FollowUpNeeded bool    `gorm:"column:follow_up_needed;not null;default:0"`
	FollowUpDate   *string `gorm:"column:follow_up_date;type:text"`
	Notes          string  `gorm:"column:notes;type:text"`
	CreatedAt      string  `gorm:"column:created_at;type:text;not null"`

	Session   *CounselingSession `gorm:"foreignKey:SessionID;references:SessionID"`
	Worker    *CareWorker        `gorm:"foreignKey:WorkerID;references:WorkerID"`
	Counselor *Counselor         `gorm:"foreignKey:CounselorID;references:CounselorID"`
}

func (CounselingHistory) TableName() string {
	return "counseling_history"
}
