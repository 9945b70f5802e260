package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"goyo/internal/domain/wellbeing"
	"goyo/internal/errs"
	"goyo/internal/infrastructure/persistence/sqlite/model"
	"goyo/internal/ports"
)

type CounselingRepository struct {
	db *gorm.DB
}

func NewCounselingRepository(db *gorm.DB) *CounselingRepository {
	return &CounselingRepository{db: db}
}

func (r *CounselingRepository) dbFromContext(ctx context.Context) (*gorm.DB, error) {
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

func (r *CounselingRepository) ListCounselors(ctx context.Context) ([]ports.Counselor, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []model.Counselor
	if err := db.Order("counselor_id asc").Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query counselors")
	}

	items := make([]ports.Counselor, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapCounselor(row))
	}
	return items, nil
}

func (r *CounselingRepository) GetCounselor(ctx context.Context, counselorID uint64) (ports.Counselor, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.Counselor{}, err
	}

	var row model.Counselor
	if err := db.Where("counselor_id = ?", counselorID).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Counselor{}, ports.ErrCounselorNotFound
		}
		return ports.Counselor{}, errs.Wrap(err, "query counselor")
	}
	return mapCounselor(row), nil
}

func (r *CounselingRepository) CreateCounselor(ctx context.Context, input ports.CounselorCreate) (ports.Counselor, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.Counselor{}, err
	}

	row := model.Counselor{
		Name:          input.Name,
		Specialties:   input.Specialties,
		Phone:         input.Phone,
		Email:         input.Email,
		LicenseNumber: input.LicenseNumber,
		Availability:  input.Availability,
		MaxCapacity:   input.MaxCapacity,
		CreatedAt:     input.CreatedAt,
	}
	if err := db.Create(&row).Error; err != nil {
		return ports.Counselor{}, errs.Wrap(err, "insert counselor")
	}
	return mapCounselor(row), nil
}

func (r *CounselingRepository) UpdateCounselor(ctx context.Context, counselorID uint64, update ports.CounselorUpdate) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	values := map[string]any{}
	if update.Name != "" {
		values["name"] = update.Name
	}
	if update.Specialties != "" {
		values["specialties"] = update.Specialties
	}
	if update.Phone != "" {
		values["phone"] = update.Phone
	}
	if update.Email != "" {
		values["email"] = update.Email
	}
	if update.LicenseNumber != "" {
		values["license_number"] = update.LicenseNumber
	}
	if update.Availability != "" {
		values["availability"] = update.Availability
	}
	if update.MaxCapacity > 0 {
		values["max_capacity"] = update.MaxCapacity
	}
	if len(values) == 0 {
		return nil
	}

	result := db.Model(&model.Counselor{}).
		Where("counselor_id = ?", counselorID).
		Updates(values)
	if result.Error != nil {
		return errs.Wrap(result.Error, "update counselor")
	}
	if result.RowsAffected == 0 {
		return ports.ErrCounselorNotFound
	}
	return nil
}

func (r *CounselingRepository) ListAssignableCounselors(ctx context.Context, specialtyKeyword string) ([]ports.Counselor, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := db.Model(&model.Counselor{}).
		Where("availability = ? AND current_load < max_capacity", wellbeing.AvailabilityAvailable)

	if keyword := strings.TrimSpace(specialtyKeyword); keyword != "" {
		pattern := "%" + keyword + "%"
		query = query.Order(clause.OrderBy{Expression: clause.Expr{
			SQL:                "CASE WHEN specialties LIKE ? THEN 0 ELSE 1 END, current_load asc, counselor_id asc",
			Vars:               []any{pattern},
			WithoutParentheses: true,
		}})
	} else {
		query = query.Order("current_load asc, counselor_id asc")
	}

	var rows []model.Counselor
	if err := query.Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query assignable counselors")
	}

	items := make([]ports.Counselor, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapCounselor(row))
	}
	return items, nil
}

func (r *CounselingRepository) ClaimCounselorSlot(ctx context.Context, counselorID uint64) (bool, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return false, err
	}

	// Guarded update: the claim only wins while the counselor is still
	// available and under capacity.
	result := db.Model(&model.Counselor{}).
		Where("counselor_id = ? AND availability = ? AND current_load < max_capacity",
			counselorID, wellbeing.AvailabilityAvailable).
		Update("current_load", gorm.Expr("current_load + 1"))
	if result.Error != nil {
		return false, errs.Wrap(result.Error, "claim counselor slot")
	}
	return result.RowsAffected > 0, nil
}

func (r *CounselingRepository) ReleaseCounselorSlot(ctx context.Context, counselorID uint64) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	if err := db.Model(&model.Counselor{}).
		Where("counselor_id = ? AND current_load > 0", counselorID).
		Update("current_load", gorm.Expr("current_load - 1")).Error; err != nil {
		return errs.Wrap(err, "release counselor slot")
	}
	return nil
}

func (r *CounselingRepository) CreateSession(ctx context.Context, input ports.SessionCreate) (ports.CounselingSession, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.CounselingSession{}, err
	}

	row := model.CounselingSession{
		SessionRef:    input.SessionRef,
		WorkerID:      input.WorkerID,
		CounselorID:   input.CounselorID,
		SessionType:   input.SessionType,
		Priority:      input.Priority,
		Status:        input.Status,
		ScheduledDate: input.ScheduledDate,
		Notes:         input.Notes,
		AlertID:       input.AlertID,
		CreatedAt:     input.CreatedAt,
	}
	if err := db.Create(&row).Error; err != nil {
		return ports.CounselingSession{}, errs.Wrap(err, "insert session")
	}
	return mapSession(row), nil
}

func (r *CounselingRepository) GetSession(ctx context.Context, sessionID uint64) (ports.CounselingSession, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.CounselingSession{}, err
	}

	var row model.CounselingSession
	if err := db.Where("session_id = ?", sessionID).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.CounselingSession{}, ports.ErrSessionNotFound
		}
		return ports.CounselingSession{}, errs.Wrap(err, "query session")
	}
	return mapSession(row), nil
}

func (r *CounselingRepository) ListSessions(ctx context.Context, filter ports.SessionFilter) ([]ports.SessionListItem, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := db.Model(&model.CounselingSession{}).
		Select("counseling_sessions.*, care_workers.name as worker_name, counselors.name as counselor_name, counselors.specialties as counselor_specialties").
		Joins("JOIN care_workers ON care_workers.worker_id = counseling_sessions.worker_id").
		Joins("JOIN counselors ON counselors.counselor_id = counseling_sessions.counselor_id").
		Order("counseling_sessions.scheduled_date desc")
	if status := strings.TrimSpace(filter.Status); status != "" {
		query = query.Where("counseling_sessions.status = ?", status)
	}
	if sessionType := strings.TrimSpace(filter.SessionType); sessionType != "" {
		query = query.Where("counseling_sessions.session_type = ?", sessionType)
	}

	var rows []struct {
		model.CounselingSession
		WorkerName           string
		CounselorName        string
		CounselorSpecialties string
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query sessions")
	}

	items := make([]ports.SessionListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.SessionListItem{
			CounselingSession:    mapSession(row.CounselingSession),
			WorkerName:           row.WorkerName,
			CounselorName:        row.CounselorName,
			CounselorSpecialties: row.CounselorSpecialties,
		})
	}
	return items, nil
}

func (r *CounselingRepository) UpdateSessionStatus(ctx context.Context, sessionID uint64, status string, completedDate *string, notes string) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	values := map[string]any{"status": status}
	if completedDate != nil {
		values["completed_date"] = *completedDate
	}
	if notes != "" {
		values["notes"] = notes
	}

	result := db.Model(&model.CounselingSession{}).
		Where("session_id = ?", sessionID).
		Updates(values)
	if result.Error != nil {
		return errs.Wrap(result.Error, "update session status")
	}
	if result.RowsAffected == 0 {
		return ports.ErrSessionNotFound
	}
	return nil
}

func (r *CounselingRepository) GetCounselingStats(ctx context.Context) (ports.CounselingStats, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.CounselingStats{}, err
	}

	var stats ports.CounselingStats
	if err := db.Model(&model.CounselingSession{}).
		Where("status = ?", wellbeing.SessionScheduled).
		Count(&stats.Scheduled).Error; err != nil {
		return ports.CounselingStats{}, errs.Wrap(err, "count scheduled sessions")
	}
	if err := db.Model(&model.CounselingSession{}).
		Where("status = ?", wellbeing.SessionCompleted).
		Count(&stats.Completed).Error; err != nil {
		return ports.CounselingStats{}, errs.Wrap(err, "count completed sessions")
	}
	if err := db.Model(&model.CounselingSession{}).
		Where("session_type = ?", wellbeing.SessionTypeAuto).
		Count(&stats.AutoLinked).Error; err != nil {
		return ports.CounselingStats{}, errs.Wrap(err, "count auto linked sessions")
	}
	if err := db.Model(&model.Counselor{}).
		Where("availability = ?", wellbeing.AvailabilityAvailable).
		Count(&stats.ActiveCounselors).Error; err != nil {
		return ports.CounselingStats{}, errs.Wrap(err, "count active counselors")
	}
	return stats, nil
}

func (r *CounselingRepository) ListWorkerHistory(ctx context.Context, workerID uint64) ([]ports.HistoryListItem, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		model.CounselingHistory
		CounselorName        string
		CounselorSpecialties string
		SessionType          string
	}
	if err := db.Model(&model.CounselingHistory{}).
		Select("counseling_history.*, counselors.name as counselor_name, counselors.specialties as counselor_specialties, counseling_sessions.session_type as session_type").
		Joins("JOIN counselors ON counselors.counselor_id = counseling_history.counselor_id").
		Joins("JOIN counseling_sessions ON counseling_sessions.session_id = counseling_history.session_id").
		Where("counseling_history.worker_id = ?", workerID).
		Order("counseling_history.session_date desc").
		Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query counseling history")
	}

	items := make([]ports.HistoryListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.HistoryListItem{
			CounselingHistory:    mapHistory(row.CounselingHistory),
			CounselorName:        row.CounselorName,
			CounselorSpecialties: row.CounselorSpecialties,
			SessionType:          row.SessionType,
		})
	}
	return items, nil
}

func (r *CounselingRepository) CreateHistory(ctx context.Context, input ports.HistoryCreate) (ports.CounselingHistory, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.CounselingHistory{}, err
	}

	row := model.CounselingHistory{
		SessionID:      input.SessionID,
		WorkerID:       input.WorkerID,
		CounselorID:    input.CounselorID,
		SessionDate:    input.SessionDate,
		Outcome:        input.Outcome,
		FollowUpNeeded: input.FollowUpNeeded,
		FollowUpDate:   input.FollowUpDate,
		Notes:          input.Notes,
		CreatedAt:      input.CreatedAt,
	}
	if err := db.Create(&row).Error; err != nil {
		return ports.CounselingHistory{}, errs.Wrap(err, "insert counseling history")
	}
	return mapHistory(row), nil
}

func mapCounselor(row model.Counselor) ports.Counselor {
	return ports.Counselor{
		CounselorID:   row.CounselorID,
		Name:          row.Name,
		Specialties:   row.Specialties,
		Phone:         row.Phone,
		Email:         row.Email,
		LicenseNumber: row.LicenseNumber,
		Availability:  row.Availability,
		CurrentLoad:   row.CurrentLoad,
		MaxCapacity:   row.MaxCapacity,
		CreatedAt:     row.CreatedAt,
	}
}

func mapSession(row model.CounselingSession) ports.CounselingSession {
	return ports.CounselingSession{
		SessionID:     row.SessionID,
		SessionRef:    row.SessionRef,
		WorkerID:      row.WorkerID,
		CounselorID:   row.CounselorID,
		SessionType:   row.SessionType,
		Priority:      row.Priority,
		Status:        row.Status,
		ScheduledDate: row.ScheduledDate,
		CompletedDate: row.CompletedDate,
		Notes:         row.Notes,
		AlertID:       row.AlertID,
		CreatedAt:     row.CreatedAt,
	}
}

func mapHistory(row model.CounselingHistory) ports.CounselingHistory {
	return ports.CounselingHistory{
		HistoryID:      row.HistoryID,
		SessionID:      row.SessionID,
		WorkerID:       row.WorkerID,
		CounselorID:    row.CounselorID,
		SessionDate:    row.SessionDate,
		Outcome:        row.Outcome,
		FollowUpNeeded: row.FollowUpNeeded,
		FollowUpDate:   row.FollowUpDate,
		Notes:          row.Notes,
		CreatedAt:      row.CreatedAt,
	}
}
