package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"goyo/internal/errs"
	"goyo/internal/infrastructure/persistence/sqlite/model"
	"goyo/internal/ports"
)

type WorkerRepository struct {
	db *gorm.DB
}

func NewWorkerRepository(db *gorm.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

func (r *WorkerRepository) dbFromContext(ctx context.Context) (*gorm.DB, error) {
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

func (r *WorkerRepository) ListWorkers(ctx context.Context, includeInactive bool) ([]ports.Worker, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := db.Model(&model.CareWorker{})
	if !includeInactive {
		query = query.Where("status = ?", "active")
	}

	var rows []model.CareWorker
	if err := query.Order("worker_id asc").Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query workers")
	}
	return mapWorkers(rows), nil
}

func (r *WorkerRepository) GetWorker(ctx context.Context, workerID uint64) (ports.Worker, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.Worker{}, err
	}

	var row model.CareWorker
	if err := db.Where("worker_id = ?", workerID).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Worker{}, ports.ErrWorkerNotFound
		}
		return ports.Worker{}, errs.Wrap(err, "query worker")
	}
	return mapWorker(row), nil
}

func (r *WorkerRepository) CreateWorker(ctx context.Context, worker ports.Worker) (ports.Worker, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.Worker{}, err
	}

	row := model.CareWorker{
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
	if err := db.Create(&row).Error; err != nil {
		return ports.Worker{}, errs.Wrap(err, "insert worker")
	}
	return mapWorker(row), nil
}

func (r *WorkerRepository) UpdateWorker(ctx context.Context, workerID uint64, update ports.WorkerUpdate, updatedAt string) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	values := map[string]any{"updated_at": updatedAt}
	if update.Name != "" {
		values["name"] = update.Name
	}
	if update.Role != "" {
		values["role"] = update.Role
	}
	if update.Team != "" {
		values["team"] = update.Team
	}
	if update.Phone != "" {
		values["phone"] = update.Phone
	}
	if update.Email != "" {
		values["email"] = update.Email
	}

	result := db.Model(&model.CareWorker{}).
		Where("worker_id = ?", workerID).
		Updates(values)
	if result.Error != nil {
		return errs.Wrap(result.Error, "update worker")
	}
	if result.RowsAffected == 0 {
		return ports.ErrWorkerNotFound
	}
	return nil
}

func (r *WorkerRepository) SetWorkerStatus(ctx context.Context, workerID uint64, status string, updatedAt string) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	result := db.Model(&model.CareWorker{}).
		Where("worker_id = ?", workerID).
		Updates(map[string]any{
			"status":     status,
			"updated_at": updatedAt,
		})
	if result.Error != nil {
		return errs.Wrap(result.Error, "update worker status")
	}
	if result.RowsAffected == 0 {
		return ports.ErrWorkerNotFound
	}
	return nil
}

func (r *WorkerRepository) SetWorkerRiskStatus(ctx context.Context, workerID uint64, riskStatus string, updatedAt string) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	result := db.Model(&model.CareWorker{}).
		Where("worker_id = ?", workerID).
		Updates(map[string]any{
			"risk_status": riskStatus,
			"updated_at":  updatedAt,
		})
	if result.Error != nil {
		return errs.Wrap(result.Error, "update worker risk status")
	}
	if result.RowsAffected == 0 {
		return ports.ErrWorkerNotFound
	}
	return nil
}

func (r *WorkerRepository) SearchWorkers(ctx context.Context, query string) ([]ports.Worker, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	pattern := "%" + strings.TrimSpace(query) + "%"
	var rows []model.CareWorker
	if err := db.Model(&model.CareWorker{}).
		Where("status = ?", "active").
		Where("name LIKE ? OR team LIKE ? OR role LIKE ?", pattern, pattern, pattern).
		Order("worker_id asc").
		Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "search workers")
	}
	return mapWorkers(rows), nil
}

func (r *WorkerRepository) FilterWorkers(ctx context.Context, filter ports.WorkerFilter) ([]ports.Worker, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := db.Model(&model.CareWorker{}).Where("status = ?", "active")
	if team := strings.TrimSpace(filter.Team); team != "" {
		query = query.Where("team = ?", team)
	}
	if riskStatus := strings.TrimSpace(filter.RiskStatus); riskStatus != "" {
		query = query.Where("risk_status = ?", riskStatus)
	}

	var rows []model.CareWorker
	if err := query.Order("worker_id asc").Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "filter workers")
	}
	return mapWorkers(rows), nil
}

func (r *WorkerRepository) CountWorkersByRiskStatus(ctx context.Context) (map[string]int64, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		RiskStatus string
		Total      int64
	}
	if err := db.Model(&model.CareWorker{}).
		Select("risk_status, count(*) as total").
		Where("status = ?", "active").
		Group("risk_status").
		Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "count workers by risk status")
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.RiskStatus] = row.Total
	}
	return counts, nil
}

func mapWorker(row model.CareWorker) ports.Worker {
	return ports.Worker{
		WorkerID:   row.WorkerID,
		Name:       row.Name,
		Role:       row.Role,
		Team:       row.Team,
		HireDate:   row.HireDate,
		Phone:      row.Phone,
		Email:      row.Email,
		RiskStatus: row.RiskStatus,
		Status:     row.Status,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func mapWorkers(rows []model.CareWorker) []ports.Worker {
	items := make([]ports.Worker, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapWorker(row))
	}
	return items
}
