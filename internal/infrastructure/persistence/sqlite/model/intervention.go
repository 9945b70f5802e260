package model

type Intervention struct {
	InterventionID   uint64  `gorm:"column:intervention_id;primaryKey;autoIncrement"`
	AlertID          uint64  `gorm:"column:alert_id;not null;index"`
	InterventionType string  `gorm:"column:intervention_type;type:text;not null"`
	Description      string  `gorm:"column:description;type:text;not null"`
	Deadline         string  `gorm:"column:deadline;type:text;not null"`
	Status           string  `gorm:"column:status;type:text;not null;default:pending"`
	CompletedDate    *string `gorm:"column:completed_date;type:text"`
	CreatedAt        string  `gorm:"column:created_at;type:text;not null"`

	Alert *RiskAlert `gorm:"foreignKey:AlertID;references:AlertID"`
}

func (Intervention) TableName() string {
	return "interventions"
}
