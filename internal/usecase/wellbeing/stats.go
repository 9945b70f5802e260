package wellbeing

import (
	"context"
	"errors"

	"goyo/internal/errs"
	"goyo/internal/ports"
)

// DashboardStats is the landing page snapshot: workforce risk split, open
// alert load and counseling throughput.
type DashboardStats struct {
	WorkersByRiskStatus map[string]int64
	OpenAlertsByLevel   map[string]int64
	AlertsByStatus      map[string]int64
	Counseling          ports.CounselingStats
}

func (s *Service) GetDashboardStats(ctx context.Context) (DashboardStats, error) {
	if ctx == nil {
		return DashboardStats{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return DashboardStats{}, errs.Wrap(err, "check context")
	}

	workersByRisk, err := s.workers.CountWorkersByRiskStatus(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	openByLevel, err := s.alerts.CountAlertsByLevel(ctx, "pending")
	if err != nil {
		return DashboardStats{}, err
	}
	byStatus, err := s.alerts.CountAlertsByStatus(ctx)
	if err != nil {
		return DashboardStats{}, err
	}
	counseling, err := s.counseling.GetCounselingStats(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	return DashboardStats{
		WorkersByRiskStatus: workersByRisk,
		OpenAlertsByLevel:   openByLevel,
		AlertsByStatus:      byStatus,
		Counseling:          counseling,
	}, nil
}

// EmotionAnalytics aggregates the emotion distribution for a period, both
// overall and per team.
type EmotionAnalytics struct {
	ByType []EmotionTypeCount
	ByTeam []ports.TeamEmotionCount
}

type EmotionTypeCount struct {
	EmotionType string
	Count       int64
}

func (s *Service) GetEmotionAnalytics(ctx context.Context, since string, until string) (EmotionAnalytics, error) {
	if ctx == nil {
		return EmotionAnalytics{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return EmotionAnalytics{}, errs.Wrap(err, "check context")
	}

	byType, err := s.emotions.CountEmotionsByType(ctx, since, until)
	if err != nil {
		return EmotionAnalytics{}, err
	}
	byTeam, err := s.emotions.CountEmotionsByTeam(ctx, since)
	if err != nil {
		return EmotionAnalytics{}, err
	}

	analytics := EmotionAnalytics{ByTeam: byTeam}
	for _, emotionType := range emotionTypeOrder {
		if count, ok := byType[emotionType]; ok {
			analytics.ByType = append(analytics.ByType, EmotionTypeCount{
				EmotionType: emotionType,
				Count:       count,
			})
		}
	}
	return analytics, nil
}

// emotionTypeOrder fixes the distribution output ordering.
var emotionTypeOrder = []string{
	"positive",
	"satisfied",
	"neutral",
	"tired",
	"stressed",
	"negative",
}

// AlertStats is the alert console snapshot: split by level and status plus
// the monthly trend.
type AlertStats struct {
	ByLevel  map[string]int64
	ByStatus map[string]int64
	Monthly  []ports.MonthlyAlertStat
}

func (s *Service) GetAlertStats(ctx context.Context, sinceMonth string) (AlertStats, error) {
	if ctx == nil {
		return AlertStats{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return AlertStats{}, errs.Wrap(err, "check context")
	}

	byLevel, err := s.alerts.CountAlertsByLevel(ctx, "")
	if err != nil {
		return AlertStats{}, err
	}
	byStatus, err := s.alerts.CountAlertsByStatus(ctx)
	if err != nil {
		return AlertStats{}, err
	}
	monthly, err := s.alerts.MonthlyAlertTrend(ctx, sinceMonth)
	if err != nil {
		return AlertStats{}, err
	}

	return AlertStats{
		ByLevel:  byLevel,
		ByStatus: byStatus,
		Monthly:  monthly,
	}, nil
}

func (s *Service) GetMonthlyAlertTrend(ctx context.Context, sinceMonth string) ([]ports.MonthlyAlertStat, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}
	return s.alerts.MonthlyAlertTrend(ctx, sinceMonth)
}

func (s *Service) GetCounselingStats(ctx context.Context) (ports.CounselingStats, error) {
	if ctx == nil {
		return ports.CounselingStats{}, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return ports.CounselingStats{}, errs.Wrap(err, "check context")
	}
	return s.counseling.GetCounselingStats(ctx)
}
