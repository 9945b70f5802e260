package wellbeing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	domain "goyo/internal/domain/wellbeing"
	"goyo/internal/errs"
	"goyo/internal/ports"
)

type reportData struct {
	AlertCount          int64            `json:"alert_count"`
	AvgRiskScore        float64          `json:"avg_risk_score"`
	EmotionDistribution map[string]int64 `json:"emotion_distribution"`
	WorkersByRiskStatus map[string]int64 `json:"workers_by_risk_status"`
}

// GenerateReport snapshots the period's alert and emotion statistics into a
// write-once report row.
func (s *Service) GenerateReport(ctx context.Context, input GenerateReportInput) (ports.Report, error) {
	if ctx == nil {
		return ports.Report{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.Report{}, errs.Wrap(err, "check context")
	}

	reportType := strings.TrimSpace(input.ReportType)
	if reportType == "" {
		return ports.Report{}, errs.Wrap(domain.ErrValidation, "report type is required")
	}
	periodStart := strings.TrimSpace(input.PeriodStart)
	periodEnd := strings.TrimSpace(input.PeriodEnd)
	if periodStart == "" || periodEnd == "" {
		return ports.Report{}, errs.Wrap(domain.ErrValidation, "period start and end are required")
	}

	alertCount, avgScore, err := s.alerts.AlertPeriodStats(ctx, periodStart, periodEnd)
	if err != nil {
		return ports.Report{}, err
	}
	emotionCounts, err := s.emotions.CountEmotionsByType(ctx, periodStart, periodEnd)
	if err != nil {
		return ports.Report{}, err
	}
	workersByRisk, err := s.workers.CountWorkersByRiskStatus(ctx)
	if err != nil {
		return ports.Report{}, err
	}

	data, err := json.Marshal(reportData{
		AlertCount:          alertCount,
		AvgRiskScore:        avgScore,
		EmotionDistribution: emotionCounts,
		WorkersByRiskStatus: workersByRisk,
	})
	if err != nil {
		return ports.Report{}, errs.Wrap(err, "marshal report data")
	}

	totalLogs := int64(0)
	for _, count := range emotionCounts {
		totalLogs += count
	}
	summary := fmt.Sprintf(
		"%d alerts (avg risk score %.1f) and %d emotion logs between %s and %s",
		alertCount, avgScore, totalLogs, periodStart, periodEnd,
	)

	return s.reports.CreateReport(ctx, ports.ReportCreate{
		ReportType:  reportType,
		ReportName:  fmt.Sprintf("%s report %s to %s", reportType, periodStart, periodEnd),
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		GeneratedAt: nowUTCString(s.now()),
		Data:        string(data),
		Summary:     summary,
	})
}

func (s *Service) ListReports(ctx context.Context, limit int) ([]ports.Report, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}
	return s.reports.ListReports(ctx, limit)
}
