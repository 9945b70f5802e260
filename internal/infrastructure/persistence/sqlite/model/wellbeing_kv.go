package model

type WellbeingKV struct {
	Key       string `gorm:"column:key;type:text;primaryKey"`
	Value     string `gorm:"column:value;type:text;not null"`
	UpdatedAt string `gorm:"column:updated_at;type:text;not null"`
}

func (WellbeingKV) TableName() string {
	return "wellbeing_kv"
}
