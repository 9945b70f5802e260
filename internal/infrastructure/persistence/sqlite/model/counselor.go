package model

type Counselor struct {
	CounselorID   uint64 `gorm:"column:counselor_id;primaryKey;autoIncrement"`
	Name          string `gorm:"column:name;type:text;not null"`
	Specialties   string `gorm:"column:specialties;type:text;not null"`
	Phone         string `gorm:"column:phone;type:text"`
	Email         string `gorm:"column:email;type:text"`
	LicenseNumber string `gorm:"column:license_number;type:text"`
	Availability  string `gorm:"column:availability;type:text;not null;default:available"`
	CurrentLoad   int    `gorm:"column:current_load;not null;default:0"`
	MaxCapacity   int    `gorm:"column:max_capacity;not null;default:8"`
	CreatedAt     string `gorm:"column:created_at;type:text;not null"`
}

func (Counselor) TableName() string {
	return "counselors"
}
