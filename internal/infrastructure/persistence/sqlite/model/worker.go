package model

type CareWorker struct {
	WorkerID   uint64 `gorm:"column:worker_id;primaryKey;autoIncrement"`
	Name       string `gorm:"column:name;type:text;not null"`
	Role       string `gorm:"column:role;type:text;not null"`
	Team       string `gorm:"column:team;type:text;not null"`
	HireDate   string `gorm:"column:hire_date;type:text;not null"`
	Phone      string `gorm:"column:phone;type:text"`
	Email      string `gorm:"column:email;type:text"`
	RiskStatus string `gorm:"column:risk_status;type:text;not null;default:normal"`
	Status     string `gorm:"column:status;type:text;not null;default:active"`
	CreatedAt  string `gorm:"column:created_at;type:text;not null"`
	UpdatedAt  string `gorm:"column:updated_at;type:text;not null"`
}

func (CareWorker) TableName() string {
	return "care_workers"
}
