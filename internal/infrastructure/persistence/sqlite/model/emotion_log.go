package model

type EmotionLog struct {
	LogID       uint64  `gorm:"column:log_id;primaryKey;autoIncrement"`
	WorkerID    uint64  `gorm:"column:worker_id;not null;index"`
	LoggedAt    string  `gorm:"column:logged_at;type:text;not null;index"`
	EmotionType string  `gorm:"column:emotion_type;type:text;not null"`
	Intensity   float64 `gorm:"column:intensity;not null"`
	Notes       string  `gorm:"column:notes;type:text"`
	Context     string  `gorm:"column:context;type:text"`
	CreatedAt   string  `gorm:"column:created_at;type:text;not null"`

	Worker *CareWorker `gorm:"foreignKey:WorkerID;references:WorkerID"`
}

func (EmotionLog) TableName() string {
	return "emotion_logs"
}
