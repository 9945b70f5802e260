package dispatcher

import (
	"encoding/json"
	"net/http"

	"goyo/internal/ports"
	"goyo/internal/usecase/wellbeing"
)

func (d *Dispatcher) getWorkers(r *http.Request, args json.RawMessage) (any, error) {
	var in struct {
		IncludeInactive bool `json:"include_inactive"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	workers, err := d.svc.ListWorkers(r.Context(), in.IncludeInactive)
	if err != nil {
		return nil, err
	}
	return viewWorkers(workers), nil
}

func (d *Dispatcher) getWorkerDetail(r *http.Request, args json.RawMessage) (any, error) {
	var in struct {
		WorkerID uint64 `json:"worker_id"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	detail, err := d.svc.GetWorkerDetail(r.Context(), in.WorkerID)
	if err != nil {
		return nil, err
	}
	return viewWorkerDetail(detail), nil
}

func (d *Dispatcher) addWorker(r *http.Request, args json.RawMessage) (any, error) {
	var in struct {
		Name     string `json:"name"`
		Role     string `json:"role"`
		Team     string `json:"team"`
		HireDate string `json:"hire_date"`
		Phone    string `json:"phone"`
		Email    string `json:"email"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	worker, err := d.svc.CreateWorker(r.Context(), wellbeing.CreateWorkerInput{
		Name:     in.Name,
		Role:     in.Role,
		Team:     in.Team,
		HireDate: in.HireDate,
		Phone:    in.Phone,
		Email:    in.Email,
	})
	if err != nil {
		return nil, err
	}
	return viewWorker(worker), nil
}

func (d *Dispatcher) updateWorker(r *http.Request, args json.RawMessage) (any, error) {
	var in struct {
		WorkerID uint64 `json:"worker_id"`
		Name     string `json:"name"`
		Role     string `json:"role"`
		Team     string `json:"team"`
		Phone    string `json:"phone"`
		Email    string `json:"email"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	worker, err := d.svc.UpdateWorker(r.Context(), wellbeing.UpdateWorkerInput{
		WorkerID: in.WorkerID,
		Name:     in.Name,
		Role:     in.Role,
		Team:     in.Team,
		Phone:    in.Phone,
		Email:    in.Email,
	})
	if err != nil {
		return nil, err
	}
	return viewWorker(worker), nil
}

func (d *Dispatcher) deleteWorker(r *http.Request, args json.RawMessage) (any, error) {
	var in struct {
		WorkerID uint64 `json:"worker_id"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	if err := d.svc.DeactivateWorker(r.Context(), in.WorkerID); err != nil {
		return nil, err
	}
	return map[string]bool{"deleted": true}, nil
}

func (d *Dispatcher) searchWorkers(r *http.Request, args json.RawMessage) (any, error) {
	var in struct {
		Query string `json:"query"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	workers, err := d.svc.SearchWorkers(r.Context(), in.Query)
	if err != nil {
		return nil, err
	}
	return viewWorkers(workers), nil
}

func (d *Dispatcher) filterWorkers(r *http.Request, args json.RawMessage) (any, error) {
	var in struct {
		Team       string `json:"team"`
		RiskStatus string `json:"risk_status"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	workers, err := d.svc.FilterWorkers(r.Context(), ports.WorkerFilter{
		Team:       in.Team,
		RiskStatus: in.RiskStatus,
	})
	if err != nil {
		return nil, err
	}
	return viewWorkers(workers), nil
}

func (d *Dispatcher) getWorkerRiskStatus(r *http.Request, args json.RawMessage) (any, error) {
	var in struct {
		WorkerID uint64 `json:"worker_id"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	status, err := d.svc.GetWorkerRiskStatus(r.Context(), in.WorkerID)
	if err != nil {
		return nil, err
	}
	return map[string]string{"risk_status": status}, nil
}

func (d *Dispatcher) appendEmotionLog(r *http.Request, args json.RawMessage) (any, error) {
	var in struct {
		WorkerID    uint64  `json:"worker_id"`
		EmotionType string  `json:"emotion_type"`
		Intensity   float64 `json:"intensity"`
		Notes       string  `json:"notes"`
		Context     string  `json:"context"`
		LoggedAt    string  `json:"logged_at"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	result, err := d.svc.LogEmotion(r.Context(), wellbeing.LogEmotionInput{
		WorkerID:    in.WorkerID,
		EmotionType: in.EmotionType,
		Intensity:   in.Intensity,
		Notes:       in.Notes,
		Context:     in.Context,
		LoggedAt:    in.LoggedAt,
	})
	if err != nil {
		return nil, err
	}
	return viewCheckinResult(result), nil
}

func (d *Dispatcher) getEmotionLogs(r *http.Request, args json.RawMessage) (any, error) {
	var in struct {
		WorkerID uint64 `json:"worker_id"`
		Since    string `json:"since"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	logs, err := d.svc.ListWorkerEmotionLogs(r.Context(), in.WorkerID, in.Since)
	if err != nil {
		return nil, err
	}
	return viewEmotionLogs(logs), nil
}

func (d *Dispatcher) getRecentEmotionLogs(r *http.Request, args json.RawMessage) (any, error) {
	var in struct {
		Limit int `json:"limit"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	entries, err := d.svc.ListRecentEmotionLogs(r.Context(), in.Limit)
	if err != nil {
		return nil, err
	}

	views := make([]emotionLogEntryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, emotionLogEntryView{
			emotionLogView: viewEmotionLog(entry.EmotionLog),
			WorkerName:     entry.WorkerName,
			WorkerRole:     entry.WorkerRole,
			WorkerTeam:     entry.WorkerTeam,
		})
	}
	return views, nil
}

func (d *Dispatcher) listAlerts(r *http.Request, args json.RawMessage) (any, error) {
	var in struct {
		Status string `json:"status"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	alerts, err := d.svc.ListAlerts(r.Context(), in.Status)
	if err != nil {
		return nil, err
	}

	views := make([]alertListItemView, 0, len(alerts))
	for _, item := range alerts {
		views = append(views, alertListItemView{
			alertView:  viewAlert(item.RiskAlert),
			WorkerName: item.WorkerName,
			WorkerRole: item.WorkerRole,
			WorkerTeam: item.WorkerTeam,
		})
	}
	return views, nil
}

func (d *Dispatcher) getAlertDetail(r *http.Request, args json.RawMessage) (any, error) {
	var in struct {
		AlertID uint64 `json:"alert_id"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	detail, err := d.svc.GetAlertDetail(r.Context(), in.AlertID)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"alert":         viewAlert(detail.Alert),
		"worker":        viewWorker(detail.Worker),
		"interventions": viewInterventions(detail.Interventions),
	}, nil
}

func (d *Dispatcher) acknowledgeAlert(r *http.Request, args json.RawMessage) (any, error) {
	var in struct {
		AlertID uint64 `json:"alert_id"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	alert, err := d.svc.AcknowledgeAlert(r.Context(), in.AlertID)
	if err != nil {
		return nil, err
	}
	return viewAlert(alert), nil
}

func (d *Dispatcher) resolveAlert(r *http.Request, args json.RawMessage) (any, error) {
	var in struct {
		AlertID uint64 `json:"alert_id"`
		Notes   string `json:"notes"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	alert, err := d.svc.ResolveAlert(r.Context(), wellbeing.ResolveAlertInput{
		AlertID: in.AlertID,
		Notes:   in.Notes,
	})
	if err != nil {
		return nil, err
	}
	return viewAlert(alert), nil
}

func (d *Dispatcher) getAlertStats(r *http.Request, args json.RawMessage) (any, error) {
	var in struct {
		SinceMonth string `json:"since_month"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	stats, err := d.svc.GetAlertStats(r.Context(), in.SinceMonth)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"by_level":  stats.ByLevel,
		"by_status": stats.ByStatus,
		"monthly":   viewMonthlyStats(stats.Monthly),
	}, nil
}

func (d *Dispatcher) getInterventions(r *http.Request, args json.RawMessage) (any, error) {
	var in struct {
		AlertID uint64 `json:"alert_id"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	interventions, err := d.svc.ListInterventions(r.Context(), in.AlertID)
	if err != nil {
		return nil, err
	}
	return viewInterventions(interventions), nil
}

func (d *Dispatcher) createIntervention(r *http.Request, args json.RawMessage) (any, error) {
	var in struct {
		AlertID          uint64 `json:"alert_id"`
		InterventionType string `json:"intervention_type"`
		Description      string `json:"description"`
		Deadline         string `json:"deadline"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	intervention, err := d.svc.CreateIntervention(r.Context(), wellbeing.CreateInterventionInput{
		AlertID:          in.AlertID,
		InterventionType: in.InterventionType,
		Description:      in.Description,
		Deadline:         in.Deadline,
	})
	if err != nil {
		return nil, err
	}
	return viewIntervention(intervention), nil
}

func (d *Dispatcher) updateInterventionStatus(r *http.Request, args json.RawMessage) (any, error) {
	var in struct {
		InterventionID uint64 `json:"intervention_id"`
		Status         string `json:"status"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	intervention, err := d.svc.UpdateInterventionStatus(r.Context(), wellbeing.UpdateInterventionInput{
		InterventionID: in.InterventionID,
		Status:         in.Status,
	})
	if err != nil {
		return nil, err
	}
	return viewIntervention(intervention), nil
}

func (d *Dispatcher) getCounselors(r *http.Request, _ json.RawMessage) (any, error) {
	counselors, err := d.svc.ListCounselors(r.Context())
	if err != nil {
		return nil, err
	}

	views := make([]counselorView, 0, len(counselors))
	for _, counselor := range counselors {
		views = append(views, viewCounselor(counselor))
	}
	return views, nil
}

func (d *Dispatcher) addCounselor(r *http.Request, args json.RawMessage) (any, error) {
	var in struct {
		Name          string `json:"name"`
		Specialties   string `json:"specialties"`
		Phone         string `json:"phone"`
		Email         string `json:"email"`
		LicenseNumber string `json:"license_number"`
		Availability  string `json:"availability"`
		MaxCapacity   int    `json:"max_capacity"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	counselor, err := d.svc.CreateCounselor(r.Context(), wellbeing.CreateCounselorInput{
		Name:          in.Name,
		Specialties:   in.Specialties,
		Phone:         in.Phone,
		Email:         in.Email,
		LicenseNumber: in.LicenseNumber,
		Availability:  in.Availability,
		MaxCapacity:   in.MaxCapacity,
	})
	if err != nil {
		return nil, err
	}
	return viewCounselor(counselor), nil
}

func (d *Dispatcher) updateCounselor(r *http.Request, args json.RawMessage) (any, error) {
	var in struct {
		CounselorID   uint64 `json:"counselor_id"`
		Name          string `json:"name"`
		Specialties   string `json:"specialties"`
		Phone         string `json:"phone"`
		Email         string `json:"email"`
		LicenseNumber string `json:"license_number"`
		Availability  string `json:"availability"`
		MaxCapacity   int    `json:"max_capacity"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	counselor, err := d.svc.UpdateCounselor(r.Context(), wellbeing.UpdateCounselorInput{
		CounselorID:   in.CounselorID,
		Name:          in.Name,
		Specialties:   in.Specialties,
		Phone:         in.Phone,
		Email:         in.Email,
		LicenseNumber: in.LicenseNumber,
		Availability:  in.Availability,
		MaxCapacity:   in.MaxCapacity,
	})
	if err != nil {
		return nil, err
	}
	return viewCounselor(counselor), nil
}

func (d *Dispatcher) autoLinkCounseling(r *http.Request, args json.RawMessage) (any, error) {
	var in struct {
		AlertID uint64 `json:"alert_id"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	session, err := d.svc.AutoAssignCounseling(r.Context(), in.AlertID)
	if err != nil {
		return nil, err
	}
	return viewSession(session), nil
}

func (d *Dispatcher) createCounselingSession(r *http.Request, args json.RawMessage) (any, error) {
	var in struct {
		WorkerID      uint64 `json:"worker_id"`
		CounselorID   uint64 `json:"counselor_id"`
		ScheduledDate string `json:"scheduled_date"`
		Priority      string `json:"priority"`
		Notes         string `json:"notes"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	session, err := d.svc.CreateSession(r.Context(), wellbeing.CreateSessionInput{
		WorkerID:      in.WorkerID,
		CounselorID:   in.CounselorID,
		ScheduledDate: in.ScheduledDate,
		Priority:      in.Priority,
		Notes:         in.Notes,
	})
	if err != nil {
		return nil, err
	}
	return viewSession(session), nil
}

func (d *Dispatcher) getCounselingSessions(r *http.Request, args json.RawMessage) (any, error) {
	var in struct {
		Status      string `json:"status"`
		SessionType string `json:"session_type"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	sessions, err := d.svc.ListSessions(r.Context(), ports.SessionFilter{
		Status:      in.Status,
		SessionType: in.SessionType,
	})
	if err != nil {
		return nil, err
	}

	views := make([]sessionListItemView, 0, len(sessions))
	for _, item := range sessions {
		views = append(views, sessionListItemView{
			sessionView:          viewSession(item.CounselingSession),
			WorkerName:           item.WorkerName,
			CounselorName:        item.CounselorName,
			CounselorSpecialties: item.CounselorSpecialties,
		})
	}
	return views, nil
}

func (d *Dispatcher) updateSessionStatus(r *http.Request, args json.RawMessage) (any, error) {
	var in struct {
		SessionID      uint64 `json:"session_id"`
		Status         string `json:"status"`
		Notes          string `json:"notes"`
		Outcome        string `json:"outcome"`
		FollowUpNeeded bool   `json:"follow_up_needed"`
		FollowUpDate   string `json:"follow_up_date"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	session, err := d.svc.UpdateSessionStatus(r.Context(), wellbeing.UpdateSessionStatusInput{
		SessionID:      in.SessionID,
		Status:         in.Status,
		Notes:          in.Notes,
		Outcome:        in.Outcome,
		FollowUpNeeded: in.FollowUpNeeded,
		FollowUpDate:   in.FollowUpDate,
	})
	if err != nil {
		return nil, err
	}
	return viewSession(session), nil
}

func (d *Dispatcher) getCounselingStats(r *http.Request, _ json.RawMessage) (any, error) {
	stats, err := d.svc.GetCounselingStats(r.Context())
	if err != nil {
		return nil, err
	}
	return viewCounselingStats(stats), nil
}

func (d *Dispatcher) getCounselingHistory(r *http.Request, args json.RawMessage) (any, error) {
	var in struct {
		WorkerID uint64 `json:"worker_id"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	history, err := d.svc.ListWorkerHistory(r.Context(), in.WorkerID)
	if err != nil {
		return nil, err
	}

	views := make([]historyListItemView, 0, len(history))
	for _, item := range history {
		views = append(views, historyListItemView{
			historyView:          viewHistory(item.CounselingHistory),
			CounselorName:        item.CounselorName,
			CounselorSpecialties: item.CounselorSpecialties,
			SessionType:          item.SessionType,
		})
	}
	return views, nil
}

func (d *Dispatcher) addCounselingHistory(r *http.Request, args json.RawMessage) (any, error) {
	var in struct {
		SessionID      uint64 `json:"session_id"`
		Outcome        string `json:"outcome"`
		FollowUpNeeded bool   `json:"follow_up_needed"`
		FollowUpDate   string `json:"follow_up_date"`
		Notes          string `json:"notes"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	history, err := d.svc.AddCounselingHistory(r.Context(), wellbeing.AddHistoryInput{
		SessionID:      in.SessionID,
		Outcome:        in.Outcome,
		FollowUpNeeded: in.FollowUpNeeded,
		FollowUpDate:   in.FollowUpDate,
		Notes:          in.Notes,
	})
	if err != nil {
		return nil, err
	}
	return viewHistory(history), nil
}

func (d *Dispatcher) getDashboardStats(r *http.Request, _ json.RawMessage) (any, error) {
	stats, err := d.svc.GetDashboardStats(r.Context())
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"workers_by_risk_status": stats.WorkersByRiskStatus,
		"open_alerts_by_level":   stats.OpenAlertsByLevel,
		"alerts_by_status":       stats.AlertsByStatus,
		"counseling":             viewCounselingStats(stats.Counseling),
	}, nil
}

func (d *Dispatcher) getAnalyticsData(r *http.Request, args json.RawMessage) (any, error) {
	var in struct {
		Since      string `json:"since"`
		Until      string `json:"until"`
		SinceMonth string `json:"since_month"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	analytics, err := d.svc.GetEmotionAnalytics(r.Context(), in.Since, in.Until)
	if err != nil {
		return nil, err
	}
	monthly, err := d.svc.GetMonthlyAlertTrend(r.Context(), in.SinceMonth)
	if err != nil {
		return nil, err
	}

	byType := make([]emotionTypeCountView, 0, len(analytics.ByType))
	for _, item := range analytics.ByType {
		byType = append(byType, emotionTypeCountView{
			EmotionType: item.EmotionType,
			Count:       item.Count,
		})
	}
	byTeam := make([]teamEmotionCountView, 0, len(analytics.ByTeam))
	for _, item := range analytics.ByTeam {
		byTeam = append(byTeam, teamEmotionCountView{
			Team:        item.Team,
			EmotionType: item.EmotionType,
			Count:       item.Count,
		})
	}

	return map[string]any{
		"emotions_by_type":    byType,
		"emotions_by_team":    byTeam,
		"monthly_alert_trend": viewMonthlyStats(monthly),
	}, nil
}

func (d *Dispatcher) generateReport(r *http.Request, args json.RawMessage) (any, error) {
	var in struct {
		ReportType  string `json:"report_type"`
		PeriodStart string `json:"period_start"`
		PeriodEnd   string `json:"period_end"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	report, err := d.svc.GenerateReport(r.Context(), wellbeing.GenerateReportInput{
		ReportType:  in.ReportType,
		PeriodStart: in.PeriodStart,
		PeriodEnd:   in.PeriodEnd,
	})
	if err != nil {
		return nil, err
	}
	return viewReport(report), nil
}

func (d *Dispatcher) getReports(r *http.Request, args json.RawMessage) (any, error) {
	var in struct {
		Limit int `json:"limit"`
	}
	if err := decodeArgs(args, &in); err != nil {
		return nil, err
	}

	reports, err := d.svc.ListReports(r.Context(), in.Limit)
	if err != nil {
		return nil, err
	}

	views := make([]reportView, 0, len(reports))
	for _, report := range reports {
		views = append(views, viewReport(report))
	}
	return views, nil
}
