package dispatcher

import (
	"goyo/internal/ports"
	"goyo/internal/usecase/wellbeing"
)

type workerView struct {
	WorkerID   uint64 `json:"worker_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Team       string `json:"team"`
	HireDate   string `json:"hire_date"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	RiskStatus string `json:"risk_status"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

func viewWorker(worker ports.Worker) workerView {
	return workerView{
		WorkerID:   worker.WorkerID,
		Name:       worker.Name,
		Role:       worker.Role,
		Team:       worker.Team,
		HireDate:   worker.HireDate,
		Phone:      worker.Phone,
		Email:      worker.Email,
		RiskStatus: worker.RiskStatus,
		Status:     worker.Status,
		CreatedAt:  worker.CreatedAt,
		UpdatedAt:  worker.UpdatedAt,
	}
}

func viewWorkers(workers []ports.Worker) []workerView {
	views := make([]workerView, 0, len(workers))
	for _, worker := range workers {
		views = append(views, viewWorker(worker))
	}
	return views
}

type emotionLogView struct {
	LogID       uint64  `json:"log_id"`
	WorkerID    uint64  `json:"worker_id"`
	LoggedAt    string  `json:"logged_at"`
	EmotionType string  `json:"emotion_type"`
	Intensity   float64 `json:"intensity"`
	Notes       string  `json:"notes,omitempty"`
	Context     string  `json:"context,omitempty"`
}

func viewEmotionLog(log ports.EmotionLog) emotionLogView {
	return emotionLogView{
		LogID:       log.LogID,
		WorkerID:    log.WorkerID,
		LoggedAt:    log.LoggedAt,
		EmotionType: log.EmotionType,
		Intensity:   log.Intensity,
		Notes:       log.Notes,
		Context:     log.Context,
	}
}

func viewEmotionLogs(logs []ports.EmotionLog) []emotionLogView {
	views := make([]emotionLogView, 0, len(logs))
	for _, log := range logs {
		views = append(views, viewEmotionLog(log))
	}
	return views
}

type emotionLogEntryView struct {
	emotionLogView
	WorkerName string `json:"worker_name"`
	WorkerRole string `json:"worker_role"`
	WorkerTeam string `json:"worker_team"`
}

type alertView struct {
	AlertID        uint64  `json:"alert_id"`
	WorkerID       uint64  `json:"worker_id"`
	RiskScore      float64 `json:"risk_score"`
	RiskLevel      string  `json:"risk_level"`
	Status         string  `json:"status"`
	Message        string  `json:"message"`
	AcknowledgedAt *string `json:"acknowledged_at,omitempty"`
	ResolvedAt     *string `json:"resolved_at,omitempty"`
	Notes          string  `json:"notes,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

func viewAlert(alert ports.RiskAlert) alertView {
	return alertView{
		AlertID:        alert.AlertID,
		WorkerID:       alert.WorkerID,
		RiskScore:      alert.RiskScore,
		RiskLevel:      alert.RiskLevel,
		Status:         alert.Status,
		Message:        alert.Message,
		AcknowledgedAt: alert.AcknowledgedAt,
		ResolvedAt:     alert.ResolvedAt,
		Notes:          alert.Notes,
		CreatedAt:      alert.CreatedAt,
	}
}

type alertListItemView struct {
	alertView
	WorkerName string `json:"worker_name"`
	WorkerRole string `json:"worker_role"`
	WorkerTeam string `json:"worker_team"`
}

type interventionView struct {
	InterventionID   uint64  `json:"intervention_id"`
	AlertID          uint64  `json:"alert_id"`
	InterventionType string  `json:"intervention_type"`
	Description      string  `json:"description"`
	Deadline         string  `json:"deadline"`
	Status           string  `json:"status"`
	CompletedDate    *string `json:"completed_date,omitempty"`
	CreatedAt        string  `json:"created_at"`
}

func viewIntervention(intervention ports.Intervention) interventionView {
	return interventionView{
		InterventionID:   intervention.InterventionID,
		AlertID:          intervention.AlertID,
		InterventionType: intervention.InterventionType,
		Description:      intervention.Description,
		Deadline:         intervention.Deadline,
		Status:           intervention.Status,
		CompletedDate:    intervention.CompletedDate,
		CreatedAt:        intervention.CreatedAt,
	}
}

func viewInterventions(interventions []ports.Intervention) []interventionView {
	views := make([]interventionView, 0, len(interventions))
	for _, intervention := range interventions {
		views = append(views, viewIntervention(intervention))
	}
	return views
}

type counselorView struct {
	CounselorID   uint64 `json:"counselor_id"`
	Name          string `json:"name"`
	Specialties   string `json:"specialties"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	LicenseNumber string `json:"license_number,omitempty"`
	Availability  string `json:"availability"`
	CurrentLoad   int    `json:"current_load"`
	MaxCapacity   int    `json:"max_capacity"`
	CreatedAt     string `json:"created_at"`
}

func viewCounselor(counselor ports.Counselor) counselorView {
	return counselorView{
		CounselorID:   counselor.CounselorID,
		Name:          counselor.Name,
		Specialties:   counselor.Specialties,
		Phone:         counselor.Phone,
		Email:         counselor.Email,
		LicenseNumber: counselor.LicenseNumber,
		Availability:  counselor.Availability,
		CurrentLoad:   counselor.CurrentLoad,
		MaxCapacity:   counselor.MaxCapacity,
		CreatedAt:     counselor.CreatedAt,
	}
}

type sessionView struct {
	SessionID     uint64  `json:"session_id"`
	SessionRef    string  `json:"session_ref"`
	WorkerID      uint64  `json:"worker_id"`
	CounselorID   uint64  `json:"counselor_id"`
	SessionType   string  `json:"session_type"`
	Priority      string  `json:"priority"`
	Status        string  `json:"status"`
	ScheduledDate string  `json:"scheduled_date"`
	CompletedDate *string `json:"completed_date,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	AlertID       *uint64 `json:"alert_id,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

func viewSession(session ports.CounselingSession) sessionView {
	return sessionView{
		SessionID:     session.SessionID,
		SessionRef:    session.SessionRef,
		WorkerID:      session.WorkerID,
		CounselorID:   session.CounselorID,
		SessionType:   session.SessionType,
		Priority:      session.Priority,
		Status:        session.Status,
		ScheduledDate: session.ScheduledDate,
		CompletedDate: session.CompletedDate,
		Notes:         session.Notes,
		AlertID:       session.AlertID,
		CreatedAt:     session.CreatedAt,
	}
}

type sessionListItemView struct {
	sessionView
	WorkerName           string `json:"worker_name"`
	CounselorName        string `json:"counselor_name"`
	CounselorSpecialties string `json:"counselor_specialties"`
}

type historyView struct {
	HistoryID      uint64  `json:"history_id"`
	SessionID      uint64  `json:"session_id"`
	WorkerID       uint64  `json:"worker_id"`
	CounselorID    uint64  `json:"counselor_id"`
	SessionDate    string  `json:"session_date"`
	Outcome        string  `json:"outcome,omitempty"`
	FollowUpNeeded bool    `json:"follow_up_needed"`
	FollowUpDate   *string `json:"follow_up_date,omitempty"`
	Notes          string  `json:"notes,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

func viewHistory(history ports.CounselingHistory) historyView {
	return historyView{
		HistoryID:      history.HistoryID,
		SessionID:      history.SessionID,
		WorkerID:       history.WorkerID,
		CounselorID:    history.CounselorID,
		SessionDate:    history.SessionDate,
		Outcome:        history.Outcome,
		FollowUpNeeded: history.FollowUpNeeded,
		FollowUpDate:   history.FollowUpDate,
		Notes:          history.Notes,
		CreatedAt:      history.CreatedAt,
	}
}

type historyListItemView struct {
	historyView
	CounselorName        string `json:"counselor_name"`
	CounselorSpecialties string `json:"counselor_specialties"`
	SessionType          string `json:"session_type"`
}

type reportView struct {
	ReportID    uint64 `json:"report_id"`
	ReportType  string `json:"report_type"`
	ReportName  string `json:"report_name"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	GeneratedAt string `json:"generated_at"`
	Data        string `json:"data,omitempty"`
	Summary     string `json:"summary,omitempty"`
}

func viewReport(report ports.Report) reportView {
	return reportView{
		ReportID:    report.ReportID,
		ReportType:  report.ReportType,
		ReportName:  report.ReportName,
		PeriodStart: report.PeriodStart,
		PeriodEnd:   report.PeriodEnd,
		GeneratedAt: report.GeneratedAt,
		Data:        report.Data,
		Summary:     report.Summary,
	}
}

type checkinResultView struct {
	Log          emotionLogView `json:"log"`
	RiskStatus   string         `json:"risk_status"`
	RiskScore    float64        `json:"risk_score"`
	AlertCreated bool           `json:"alert_created"`
	Alert        *alertView     `json:"alert,omitempty"`
	Session      *sessionView   `json:"session,omitempty"`
}

func viewCheckinResult(result wellbeing.LogEmotionResult) checkinResultView {
	view := checkinResultView{
		Log:          viewEmotionLog(result.Log),
		RiskStatus:   result.RiskStatus,
		RiskScore:    result.RiskScore,
		AlertCreated: result.AlertCreated,
	}
	if result.Alert != nil {
		alert := viewAlert(*result.Alert)
		view.Alert = &alert
	}
	if result.Session != nil {
		session := viewSession(*result.Session)
		view.Session = &session
	}
	return view
}

type workerDetailView struct {
	Worker        workerView       `json:"worker"`
	RecentLogs    []emotionLogView `json:"recent_logs"`
	NegativeRatio float64          `json:"negative_ratio"`
	AvgIntensity  float64          `json:"avg_intensity"`
	LogCount      int              `json:"log_count"`
	RiskScore     float64          `json:"risk_score"`
	OpenAlert     *alertView       `json:"open_alert,omitempty"`
}

func viewWorkerDetail(detail wellbeing.WorkerDetail) workerDetailView {
	view := workerDetailView{
		Worker:        viewWorker(detail.Worker),
		RecentLogs:    viewEmotionLogs(detail.RecentLogs),
		NegativeRatio: detail.RiskSignal.NegativeRatio,
		AvgIntensity:  detail.RiskSignal.AvgIntensity,
		LogCount:      detail.RiskSignal.LogCount,
		RiskScore:     detail.RiskScore,
	}
	if detail.OpenAlert != nil {
		alert := viewAlert(*detail.OpenAlert)
		view.OpenAlert = &alert
	}
	return view
}

type counselingStatsView struct {
	Scheduled        int64 `json:"scheduled"`
	Completed        int64 `json:"completed"`
	AutoLinked       int64 `json:"auto_linked"`
	ActiveCounselors int64 `json:"active_counselors"`
}

func viewCounselingStats(stats ports.CounselingStats) counselingStatsView {
	return counselingStatsView{
		Scheduled:        stats.Scheduled,
		Completed:        stats.Completed,
		AutoLinked:       stats.AutoLinked,
		ActiveCounselors: stats.ActiveCounselors,
	}
}

type monthlyAlertStatView struct {
	Month    string  `json:"month"`
	Count    int64   `json:"count"`
	AvgScore float64 `json:"avg_score"`
}

func viewMonthlyStats(stats []ports.MonthlyAlertStat) []monthlyAlertStatView {
	views := make([]monthlyAlertStatView, 0, len(stats))
	for _, stat := range stats {
		views = append(views, monthlyAlertStatView{
			Month:    stat.Month,
			Count:    stat.Count,
			AvgScore: stat.AvgScore,
		})
	}
	return views
}

type teamEmotionCountView struct {
	Team        string `json:"team"`
	EmotionType string `json:"emotion_type"`
	Count       int64  `json:"count"`
}

type emotionTypeCountView struct {
	EmotionType string `json:"emotion_type"`
	Count       int64  `json:"count"`
}
