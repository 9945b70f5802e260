package ports

import "context"

type Worker struct {
	WorkerID   uint64
	Name       string
	Role       string
	Team       string
	HireDate   string
	Phone      string
	Email      string
	RiskStatus string
	Status     string
	CreatedAt  string
	UpdatedAt  string
}

type WorkerUpdate struct {
	Name  string
	Role  string
	Team  string
	Phone string
	Email string
}

type WorkerFilter struct {
	Team       string
	RiskStatus string
}

type WorkerRepository interface {
	ListWorkers(ctx context.Context, includeInactive bool) ([]Worker, error)
	GetWorker(ctx context.Context, workerID uint64) (Worker, error)
	CreateWorker(ctx context.Context, worker Worker) (Worker, error)
	UpdateWorker(ctx context.Context, workerID uint64, update WorkerUpdate, updatedAt string) error
	SetWorkerStatus(ctx context.Context, workerID uint64, status string, updatedAt string) error
	SetWorkerRiskStatus(ctx context.Context, workerID uint64, riskStatus string, updatedAt string) error
	SearchWorkers(ctx context.Context, query string) ([]Worker, error)
	FilterWorkers(ctx context.Context, filter WorkerFilter) ([]Worker, error)
	CountWorkersByRiskStatus(ctx context.Context) (map[string]int64, error)
}
