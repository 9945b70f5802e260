package ports

import "context"

// Report is a write-once periodic snapshot; reports are generated on
// demand and never mutated.
type Report struct {
	ReportID    uint64
	ReportType  string
	ReportName  string
	PeriodStart string
	PeriodEnd   string
	GeneratedAt string
	Data        string
	Summary     string
}

type ReportCreate struct {
	ReportType  string
	ReportName  string
	PeriodStart string
	PeriodEnd   string
	GeneratedAt string
	Data        string
	Summary     string
}

type ReportRepository interface {
	CreateReport(ctx context.Context, input ReportCreate) (Report, error)
	ListReports(ctx context.Context, limit int) ([]Report, error)
}
