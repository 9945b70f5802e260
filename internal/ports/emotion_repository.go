package ports

import "context"

type EmotionLog struct {
	LogID       uint64
	WorkerID    uint64
	LoggedAt    string
	EmotionType string
	Intensity   float64
	Notes       string
	Context     string
	CreatedAt   string
}

type EmotionLogCreate struct {
	WorkerID    uint64
	LoggedAt    string
	EmotionType string
	Intensity   float64
	Notes       string
	Context     string
	CreatedAt   string
}

// EmotionLogEntry is a log joined with its worker, for feed views.
type EmotionLogEntry struct {
	EmotionLog
	WorkerName string
	WorkerRole string
	WorkerTeam string
}

// TeamEmotionCount is one cell of the team x emotion distribution.
type TeamEmotionCount struct {
	Team        string
	EmotionType string
	Count       int64
}

type EmotionRepository interface {
	AppendEmotionLog(ctx context.Context, input EmotionLogCreate) (EmotionLog, error)
	// ListWorkerEmotionLogs returns a worker's logs with logged_at >= since,
	// newest first.
	ListWorkerEmotionLogs(ctx context.Context, workerID uint64, since string) ([]EmotionLog, error)
	ListRecentEmotionLogs(ctx context.Context, limit int) ([]EmotionLogEntry, error)
	CountEmotionsByType(ctx context.Context, since string, until string) (map[string]int64, error)
	CountEmotionsByTeam(ctx context.Context, since string) ([]TeamEmotionCount, error)
}
