package model

type Report struct {
	ReportID    uint64 `gorm:"column:report_id;primaryKey;autoIncrement"`
	ReportType  string `gorm:"column:report_type;type:text;not null"`
	ReportName  string `gorm:"column:report_name;type:text;not null"`
	PeriodStart string `gorm:"column:period_start;type:text;not null"`
	PeriodEnd   string `gorm:"column:period_end;type:text;not null"`
	GeneratedAt string `gorm:"column:generated_at;type:text;not null"`
	Data        string `gorm:"column:data;type:text"`
	Summary     string `gorm:"column:summary;type:text"`
}

func (Report) TableName() string {
	return "reports"
}
