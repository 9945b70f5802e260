package ports

import "context"

type Counselor struct {
	CounselorID   uint64
	Name          string
	Specialties   string
	Phone         string
	Email         string
	LicenseNumber string
	Availability  string
	CurrentLoad   int
	MaxCapacity   int
	CreatedAt     string
}

type CounselorCreate struct {
	Name          string
	Specialties   string
	Phone         string
	Email         string
	LicenseNumber string
	Availability  string
	MaxCapacity   int
	CreatedAt     string
}

type CounselorUpdate struct {
	Name          string
	Specialties   string
	Phone         string
	Email         string
	LicenseNumber string
	Availability  string
	MaxCapacity   int
}

type CounselingSession struct {
	SessionID     uint64
	SessionRef    string
	WorkerID      uint64
	CounselorID   uint64
	SessionType   string
	Priority      string
	Status        string
	ScheduledDate string
	CompletedDate *string
	Notes         string
	AlertID       *uint64
	CreatedAt     string
}

type SessionCreate struct {
	SessionRef    string
	WorkerID      uint64
	CounselorID   uint64
	SessionType   string
	Priority      string
	Status        string
	ScheduledDate string
	Notes         string
	AlertID       *uint64
	CreatedAt     string
}

// SessionListItem joins a session with worker and counselor names.
type SessionListItem struct {
	CounselingSession
	WorkerName           string
	CounselorName        string
	CounselorSpecialties string
}

type SessionFilter struct {
	Status      string
	SessionType string
}

type CounselingHistory struct {
	HistoryID      uint64
	SessionID      uint64
	WorkerID       uint64
	CounselorID    uint64
	SessionDate    string
	Outcome        string
	FollowUpNeeded bool
	FollowUpDate   *string
	Notes          string
	CreatedAt      string
}

type HistoryCreate struct {
	SessionID      uint64
	WorkerID       uint64
	CounselorID    uint64
	SessionDate    string
	Outcome        string
	FollowUpNeeded bool
	FollowUpDate   *string
	Notes          string
	CreatedAt      string
}

// HistoryListItem joins a history record with counselor and session info.
type HistoryListItem struct {
	CounselingHistory
	CounselorName        string
	CounselorSpecialties string
	SessionType          string
}

type CounselingStats struct {
	Scheduled        int64
	Completed        int64
	AutoLinked       int64
	ActiveCounselors int64
}

type CounselingRepository interface {
	ListCounselors(ctx context.Context) ([]Counselor, error)
	GetCounselor(ctx context.Context, counselorID uint64) (Counselor, error)
	CreateCounselor(ctx context.Context, input CounselorCreate) (Counselor, error)
	UpdateCounselor(ctx context.Context, counselorID uint64, update CounselorUpdate) error

	// ListAssignableCounselors returns available counselors with spare
	// capacity, those whose specialties match the keyword first, then by
	// ascending load.
	ListAssignableCounselors(ctx context.Context, specialtyKeyword string) ([]Counselor, error)
	// ClaimCounselorSlot increments current_load iff the counselor is still
	// available and under capacity; reports whether the claim won.
	ClaimCounselorSlot(ctx context.Context, counselorID uint64) (bool, error)
	// ReleaseCounselorSlot decrements current_load, never below zero.
	ReleaseCounselorSlot(ctx context.Context, counselorID uint64) error

	CreateSession(ctx context.Context, input SessionCreate) (CounselingSession, error)
	GetSession(ctx context.Context, sessionID uint64) (CounselingSession, error)
	ListSessions(ctx context.Context, filter SessionFilter) ([]SessionListItem, error)
	UpdateSessionStatus(ctx context.Context, sessionID uint64, status string, completedDate *string, notes string) error
	GetCounselingStats(ctx context.Context) (CounselingStats, error)

	ListWorkerHistory(ctx context.Context, workerID uint64) ([]HistoryListItem, error)
	CreateHistory(ctx context.Context, input HistoryCreate) (CounselingHistory, error)
}
