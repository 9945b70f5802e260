package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"goyo/internal/domain/wellbeing"
	"goyo/internal/errs"
	"goyo/internal/infrastructure/persistence/sqlite/model"
	"goyo/internal/ports"
)

type AlertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

func (r *AlertRepository) dbFromContext(ctx context.Context) (*gorm.DB, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}

	tx := ports.TxFromContext(ctx)
	if tx == nil {
		return r.db.WithContext(ctx), nil
	}

	gormTx, ok := tx.(*gorm.DB)
	if !ok || gormTx == nil {
		return nil, fmt.Errorf("invalid tx in context: %T", tx)
	}
	return gormTx.WithContext(ctx), nil
}

func (r *AlertRepository) FindOpenAlert(ctx context.Context, workerID uint64) (ports.RiskAlert, bool, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.RiskAlert{}, false, err
	}

	var row model.RiskAlert
	if err := db.
		Where("worker_id = ? AND status IN ?", workerID, wellbeing.OpenAlertStatuses).
		Order("alert_id desc").
		Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.RiskAlert{}, false, nil
		}
		return ports.RiskAlert{}, false, errs.Wrap(err, "query open alert")
	}
	return mapAlert(row), true, nil
}

func (r *AlertRepository) CreateAlert(ctx context.Context, input ports.AlertCreate) (ports.RiskAlert, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.RiskAlert{}, err
	}

	row := model.RiskAlert{
		WorkerID:  input.WorkerID,
		RiskScore: input.RiskScore,
		RiskLevel: input.RiskLevel,
		Status:    input.Status,
		Message:   input.Message,
		CreatedAt: input.CreatedAt,
	}
	if err := db.Create(&row).Error; err != nil {
		return ports.RiskAlert{}, errs.Wrap(err, "insert alert")
	}
	return mapAlert(row), nil
}

func (r *AlertRepository) GetAlert(ctx context.Context, alertID uint64) (ports.RiskAlert, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.RiskAlert{}, err
	}

	var row model.RiskAlert
	if err := db.Where("alert_id = ?", alertID).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.RiskAlert{}, ports.ErrAlertNotFound
		}
		return ports.RiskAlert{}, errs.Wrap(err, "query alert")
	}
	return mapAlert(row), nil
}

func (r *AlertRepository) ListAlerts(ctx context.Context, filter ports.AlertFilter) ([]ports.AlertListItem, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := db.Model(&model.RiskAlert{}).
		Select("risk_alerts.*, care_workers.name as worker_name, care_workers.role as worker_role, care_workers.team as worker_team").
		Joins("JOIN care_workers ON care_workers.worker_id = risk_alerts.worker_id").
		Order("risk_alerts.created_at desc")
	if status := strings.TrimSpace(filter.Status); status != "" {
		query = query.Where("risk_alerts.status = ?", status)
	}

	var rows []struct {
		model.RiskAlert
		WorkerName string
		WorkerRole string
		WorkerTeam string
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query alerts")
	}

	items := make([]ports.AlertListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.AlertListItem{
			RiskAlert:  mapAlert(row.RiskAlert),
			WorkerName: row.WorkerName,
			WorkerRole: row.WorkerRole,
			WorkerTeam: row.WorkerTeam,
		})
	}
	return items, nil
}

func (r *AlertRepository) MarkAlertAcknowledged(ctx context.Context, alertID uint64, acknowledgedAt string) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	result := db.Model(&model.RiskAlert{}).
		Where("alert_id = ?", alertID).
		Updates(map[string]any{
			"status":          wellbeing.AlertAcknowledged,
			"acknowledged_at": acknowledgedAt,
		})
	if result.Error != nil {
		return errs.Wrap(result.Error, "acknowledge alert")
	}
	if result.RowsAffected == 0 {
		return ports.ErrAlertNotFound
	}
	return nil
}

func (r *AlertRepository) MarkAlertResolved(ctx context.Context, alertID uint64, resolvedAt string, notes string) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	result := db.Model(&model.RiskAlert{}).
		Where("alert_id = ?", alertID).
		Updates(map[string]any{
			"status":      wellbeing.AlertResolved,
			"resolved_at": resolvedAt,
			"notes":       notes,
		})
	if result.Error != nil {
		return errs.Wrap(result.Error, "resolve alert")
	}
	if result.RowsAffected == 0 {
		return ports.ErrAlertNotFound
	}
	return nil
}

func (r *AlertRepository) CountAlertsByLevel(ctx context.Context, status string) (map[string]int64, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := db.Model(&model.RiskAlert{}).
		Select("risk_level, count(*) as total").
		Group("risk_level")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var rows []struct {
		RiskLevel string
		Total     int64
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "count alerts by level")
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.RiskLevel] = row.Total
	}
	return counts, nil
}

func (r *AlertRepository) CountAlertsByStatus(ctx context.Context) (map[string]int64, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		Status string
		Total  int64
	}
	if err := db.Model(&model.RiskAlert{}).
		Select("status, count(*) as total").
		Group("status").
		Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "count alerts by status")
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}

func (r *AlertRepository) MonthlyAlertTrend(ctx context.Context, sinceMonth string) ([]ports.MonthlyAlertStat, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	// created_at is ISO-8601 text, so the first seven characters are YYYY-MM.
	query := db.Model(&model.RiskAlert{}).
		Select("substr(created_at, 1, 7) as month, count(*) as count, avg(risk_score) as avg_score").
		Group("month").
		Order("month asc")
	if sinceMonth != "" {
		query = query.Where("substr(created_at, 1, 7) >= ?", sinceMonth)
	}

	var rows []ports.MonthlyAlertStat
	if err := query.Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query monthly alert trend")
	}
	return rows, nil
}

func (r *AlertRepository) AlertPeriodStats(ctx context.Context, periodStart string, periodEnd string) (int64, float64, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return 0, 0, err
	}

	var row struct {
		Count    int64
		AvgScore *float64
	}
	if err := db.Model(&model.RiskAlert{}).
		Select("count(*) as count, avg(risk_score) as avg_score").
		Where("created_at >= ? AND created_at <= ?", periodStart, periodEnd).
		Take(&row).Error; err != nil {
		return 0, 0, errs.Wrap(err, "query alert period stats")
	}

	avgScore := 0.0
	if row.AvgScore != nil {
		avgScore = *row.AvgScore
	}
	return row.Count, avgScore, nil
}

func (r *AlertRepository) ListInterventions(ctx context.Context, alertID uint64) ([]ports.Intervention, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []model.Intervention
	if err := db.
		Where("alert_id = ?", alertID).
		Order("intervention_id asc").
		Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query interventions")
	}

	items := make([]ports.Intervention, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapIntervention(row))
	}
	return items, nil
}

func (r *AlertRepository) GetIntervention(ctx context.Context, interventionID uint64) (ports.Intervention, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.Intervention{}, err
	}

	var row model.Intervention
	if err := db.Where("intervention_id = ?", interventionID).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Intervention{}, ports.ErrInterventionNotFound
		}
		return ports.Intervention{}, errs.Wrap(err, "query intervention")
	}
	return mapIntervention(row), nil
}

func (r *AlertRepository) CreateIntervention(ctx context.Context, input ports.InterventionCreate) (ports.Intervention, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.Intervention{}, err
	}

	row := model.Intervention{
		AlertID:          input.AlertID,
		InterventionType: input.InterventionType,
		Description:      input.Description,
		Deadline:         input.Deadline,
		Status:           input.Status,
		CreatedAt:        input.CreatedAt,
	}
	if err := db.Create(&row).Error; err != nil {
		return ports.Intervention{}, errs.Wrap(err, "insert intervention")
	}
	return mapIntervention(row), nil
}

func (r *AlertRepository) UpdateInterventionStatus(ctx context.Context, interventionID uint64, status string, completedDate *string) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	values := map[string]any{"status": status}
	if completedDate != nil {
		values["completed_date"] = *completedDate
	}

	result := db.Model(&model.Intervention{}).
		Where("intervention_id = ?", interventionID).
		Updates(values)
	if result.Error != nil {
		return errs.Wrap(result.Error, "update intervention status")
	}
	if result.RowsAffected == 0 {
		return ports.ErrInterventionNotFound
	}
	return nil
}

func mapAlert(row model.RiskAlert) ports.RiskAlert {
	return ports.RiskAlert{
		AlertID:        row.AlertID,
		WorkerID:       row.WorkerID,
		RiskScore:      row.RiskScore,
		RiskLevel:      row.RiskLevel,
		Status:         row.Status,
		Message:        row.Message,
		AcknowledgedAt: row.AcknowledgedAt,
		ResolvedAt:     row.ResolvedAt,
		Notes:          row.Notes,
		CreatedAt:      row.CreatedAt,
	}
}

func mapIntervention(row model.Intervention) ports.Intervention {
	return ports.Intervention{
		InterventionID:   row.InterventionID,
		AlertID:          row.AlertID,
		InterventionType: row.InterventionType,
		Description:      row.Description,
		Deadline:         row.Deadline,
		Status:           row.Status,
		CompletedDate:    row.CompletedDate,
		CreatedAt:        row.CreatedAt,
	}
}
