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

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) dbFromContext(ctx context.Context) (*gorm.DB, error) {
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

func (r *ReportRepository) CreateReport(ctx context.Context, input ports.ReportCreate) (ports.Report, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.Report{}, err
	}

	row := model.Report{
		ReportType:  input.ReportType,
		ReportName:  input.ReportName,
		PeriodStart: input.PeriodStart,
		PeriodEnd:   input.PeriodEnd,
		GeneratedAt: input.GeneratedAt,
		Data:        input.Data,
		Summary:     input.Summary,
	}
	if err := db.Create(&row).Error; err != nil {
		return ports.Report{}, errs.Wrap(err, "insert report")
	}
	return mapReport(row), nil
}

func (r *ReportRepository) ListReports(ctx context.Context, limit int) ([]ports.Report, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return nil, err
	}

	query := db.Model(&model.Report{}).Order("generated_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []model.Report
	if err := query.Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query reports")
	}

	items := make([]ports.Report, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapReport(row))
	}
	return items, nil
}

func mapReport(row model.Report) ports.Report {
	return ports.Report{
		ReportID:    row.ReportID,
		ReportType:  row.ReportType,
		ReportName:  row.ReportName,
		PeriodStart: row.PeriodStart,
		PeriodEnd:   row.PeriodEnd,
		GeneratedAt: row.GeneratedAt,
		Data:        row.Data,
		Summary:     row.Summary,
	}
}
