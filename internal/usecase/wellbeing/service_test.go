package wellbeing

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	cacheinfra "goyo/internal/infrastructure/cache"
	"goyo/internal/infrastructure/persistence/sqlite/model"
	"goyo/internal/infrastructure/persistence/sqlite/repository"
	"goyo/internal/infrastructure/persistence/sqlite/uow"
	"goyo/internal/ports"
)

// recordNotifier captures published alert events for assertions.
type recordNotifier struct {
	mu     sync.Mutex
	events []ports.AlertEvent
}

func (n *recordNotifier) PublishAlertCreated(_ context.Context, event ports.AlertEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
	return nil
}

func (n *recordNotifier) Events() []ports.AlertEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]ports.AlertEvent, len(n.events))
	copy(out, n.events)
	return out
}

type serviceFixture struct {
	svc        *Service
	workers    *repository.WorkerRepository
	emotions   *repository.EmotionRepository
	alerts     *repository.AlertRepository
	counseling *repository.CounselingRepository
	notifier   *recordNotifier
}

func setupService(t *testing.T) *serviceFixture {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "wellbeing.sqlite")
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := db.AutoMigrate(
		&model.CareWorker{},
		&model.EmotionLog{},
		&model.RiskAlert{},
		&model.Intervention{},
		&model.Counselor{},
		&model.CounselingSession{},
		&model.CounselingHistory{},
		&model.Report{},
		&model.WellbeingKV{},
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	fixture := &serviceFixture{
		workers:    repository.NewWorkerRepository(db),
		emotions:   repository.NewEmotionRepository(db),
		alerts:     repository.NewAlertRepository(db),
		counseling: repository.NewCounselingRepository(db),
		notifier:   &recordNotifier{},
	}
	fixture.svc = NewService(
		fixture.workers,
		fixture.emotions,
		fixture.alerts,
		fixture.counseling,
		repository.NewReportRepository(db),
		uow.NewUnitOfWork(db),
		cacheinfra.NewSQLiteCache(db),
		fixture.notifier,
		DefaultPolicy(),
	)
	return fixture
}

func (f *serviceFixture) createWorker(t *testing.T, name string, team string) ports.Worker {
	t.Helper()

	worker, err := f.svc.CreateWorker(context.Background(), CreateWorkerInput{
		Name: name,
		Role: "caregiver",
		Team: team,
	})
	if err != nil {
		t.Fatalf("create worker %q: %v", name, err)
	}
	return worker
}

func (f *serviceFixture) createCounselor(t *testing.T, name string, specialties string, capacity int) ports.Counselor {
	t.Helper()

	counselor, err := f.svc.CreateCounselor(context.Background(), CreateCounselorInput{
		Name:        name,
		Specialties: specialties,
		MaxCapacity: capacity,
	})
	if err != nil {
		t.Fatalf("create counselor %q: %v", name, err)
	}
	return counselor
}

func (f *serviceFixture) logEmotion(t *testing.T, workerID uint64, emotionType string, intensity float64) LogEmotionResult {
	t.Helper()

	result, err := f.svc.LogEmotion(context.Background(), LogEmotionInput{
		WorkerID:    workerID,
		EmotionType: emotionType,
		Intensity:   intensity,
	})
	if err != nil {
		t.Fatalf("log emotion %q: %v", emotionType, err)
	}
	return result
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
