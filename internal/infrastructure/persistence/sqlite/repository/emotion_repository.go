package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"goyo/internal/errs"
	"goyo/internal/infrastructure/persistence/sqlite/model"
	"goyo/internal/ports"
)

type EmotionRepository struct {
	db *gorm.DB
}

func NewEmotionRepository(db *gorm.DB) *EmotionRepository {
	return &EmotionRepository{db: db}
}

func (r *EmotionRepository) dbFromContext(ctx context.Context) (*gorm.DB, error) {
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

func (r *EmotionRepository) AppendEmotionLog(ctx context.Context, input ports.EmotionLogCreate) (ports.EmotionLog, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.EmotionLog{}, err
	}

	row := model.EmotionLog{
		WorkerID:    input.WorkerID,
		LoggedAt:    input.LoggedAt,
		EmotionType: input.EmotionType,
		Intensity:   input.Intensity,
		Notes:       input.Notes,
		Context:     input.Context,
		CreatedAt:   input.CreatedAt,
	}
	if err := db.Create(&row).Error; err != nil {
		return ports.EmotionLog{}, errs.Wrap(err, "insert emotion log")
	}
	return mapEmotionLog(row), nil
}

func (r *EmotionRepository) ListWorkerEmotionLogs(ctx context.Context, workerID uint64, since string) ([]ports.EmotionLog, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := db.Model(&model.EmotionLog{}).Where("worker_id = ?", workerID)
	if since != "" {
		query = query.Where("logged_at >= ?", since)
	}

	var rows []model.EmotionLog
	if err := query.Order("logged_at desc").Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query emotion logs")
	}

	items := make([]ports.EmotionLog, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapEmotionLog(row))
	}
	return items, nil
}

func (r *EmotionRepository) ListRecentEmotionLogs(ctx context.Context, limit int) ([]ports.EmotionLogEntry, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := db.Model(&model.EmotionLog{}).
		Select("emotion_logs.*, care_workers.name as worker_name, care_workers.role as worker_role, care_workers.team as worker_team").
		Joins("JOIN care_workers ON care_workers.worker_id = emotion_logs.worker_id").
		Order("emotion_logs.logged_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []struct {
		model.EmotionLog
		WorkerName string
		WorkerRole string
		WorkerTeam string
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query recent emotion logs")
	}

	items := make([]ports.EmotionLogEntry, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.EmotionLogEntry{
			EmotionLog: mapEmotionLog(row.EmotionLog),
			WorkerName: row.WorkerName,
			WorkerRole: row.WorkerRole,
			WorkerTeam: row.WorkerTeam,
		})
	}
	return items, nil
}

func (r *EmotionRepository) CountEmotionsByType(ctx context.Context, since string, until string) (map[string]int64, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := db.Model(&model.EmotionLog{}).
		Select("emotion_type, count(*) as total").
		Group("emotion_type")
	if since != "" {
		query = query.Where("logged_at >= ?", since)
	}
	if until != "" {
		query = query.Where("logged_at <= ?", until)
	}

	var rows []struct {
		EmotionType string
		Total       int64
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "count emotions by type")
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.EmotionType] = row.Total
	}
	return counts, nil
}

func (r *EmotionRepository) CountEmotionsByTeam(ctx context.Context, since string) ([]ports.TeamEmotionCount, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := db.Model(&model.EmotionLog{}).
		Select("care_workers.team as team, emotion_logs.emotion_type as emotion_type, count(*) as count").
		Joins("JOIN care_workers ON care_workers.worker_id = emotion_logs.worker_id").
		Group("care_workers.team, emotion_logs.emotion_type").
		Order("care_workers.team asc, emotion_logs.emotion_type asc")
	if since != "" {
		query = query.Where("emotion_logs.logged_at >= ?", since)
	}

	var rows []ports.TeamEmotionCount
	if err := query.Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "count emotions by team")
	}
	return rows, nil
}

func mapEmotionLog(row model.EmotionLog) ports.EmotionLog {
	return ports.EmotionLog{
		LogID:       row.LogID,
		WorkerID:    row.WorkerID,
		LoggedAt:    row.LoggedAt,
		EmotionType: row.EmotionType,
		Intensity:   row.Intensity,
		Notes:       row.Notes,
		Context:     row.Context,
		CreatedAt:   row.CreatedAt,
	}
}
