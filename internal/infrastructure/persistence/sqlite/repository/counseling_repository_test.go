package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	gormsqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"goyo/internal/infrastructure/persistence/sqlite/model"
	"goyo/internal/ports"
)

func setupCounselingRepository(t *testing.T) *CounselingRepository {
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
		&model.Counselor{},
		&model.CounselingSession{},
		&model.CounselingHistory{},
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	return NewCounselingRepository(db)
}

func TestClaimCounselorSlotStopsAtCapacity(t *testing.T) {
	repo := setupCounselingRepository(t)
	ctx := context.Background()
	now := time.Now().UTC().Format(time.RFC3339Nano)

	counselor, err := repo.CreateCounselor(ctx, ports.CounselorCreate{
		Name:         "Kim",
		Specialties:  "burnout,stress",
		Availability: "available",
		MaxCapacity:  2,
		CreatedAt:    now,
	})
	if err != nil {
		t.Fatalf("create counselor: %v", err)
	}

	for i := 0; i < 2; i++ {
		claimed, err := repo.ClaimCounselorSlot(ctx, counselor.CounselorID)
		if err != nil {
			t.Fatalf("ClaimCounselorSlot(%d) error = %v", i, err)
		}
		if !claimed {
			t.Fatalf("ClaimCounselorSlot(%d) = false, want true", i)
		}
	}

	claimed, err := repo.ClaimCounselorSlot(ctx, counselor.CounselorID)
	if err != nil {
		t.Fatalf("ClaimCounselorSlot(full) error = %v", err)
	}
	if claimed {
		t.Fatalf("ClaimCounselorSlot(full) = true, want false")
	}

	got, err := repo.GetCounselor(ctx, counselor.CounselorID)
	if err != nil {
		t.Fatalf("GetCounselor() error = %v", err)
	}
	if got.CurrentLoad != 2 {
		t.Fatalf("CurrentLoad = %d, want 2", got.CurrentLoad)
	}
}

func TestReleaseCounselorSlotNeverGoesNegative(t *testing.T) {
	repo := setupCounselingRepository(t)
	ctx := context.Background()
	now := time.Now().UTC().Format(time.RFC3339Nano)

	counselor, err := repo.CreateCounselor(ctx, ports.CounselorCreate{
		Name:         "Lee",
		Specialties:  "trauma",
		Availability: "available",
		MaxCapacity:  3,
		CreatedAt:    now,
	})
	if err != nil {
		t.Fatalf("create counselor: %v", err)
	}

	if err := repo.ReleaseCounselorSlot(ctx, counselor.CounselorID); err != nil {
		t.Fatalf("ReleaseCounselorSlot(zero) error = %v", err)
	}

	got, err := repo.GetCounselor(ctx, counselor.CounselorID)
	if err != nil {
		t.Fatalf("GetCounselor() error = %v", err)
	}
	if got.CurrentLoad != 0 {
		t.Fatalf("CurrentLoad = %d, want 0", got.CurrentLoad)
	}
}

func TestListAssignableCounselorsPrefersSpecialty(t *testing.T) {
	repo := setupCounselingRepository(t)
	ctx := context.Background()
	now := time.Now().UTC().Format(time.RFC3339Nano)

	if _, err := repo.CreateCounselor(ctx, ports.CounselorCreate{
		Name:         "Idle Generalist",
		Specialties:  "relationships",
		Availability: "available",
		MaxCapacity:  8,
		CreatedAt:    now,
	}); err != nil {
		t.Fatalf("create generalist: %v", err)
	}

	specialist, err := repo.CreateCounselor(ctx, ports.CounselorCreate{
		Name:         "Burnout Specialist",
		Specialties:  "burnout,anxiety",
		Availability: "available",
		MaxCapacity:  8,
		CreatedAt:    now,
	})
	if err != nil {
		t.Fatalf("create specialist: %v", err)
	}

	// The specialist carries more load but should still rank first.
	if _, err := repo.ClaimCounselorSlot(ctx, specialist.CounselorID); err != nil {
		t.Fatalf("claim specialist slot: %v", err)
	}

	if _, err := repo.CreateCounselor(ctx, ports.CounselorCreate{
		Name:         "Busy One",
		Specialties:  "stress",
		Availability: "busy",
		MaxCapacity:  8,
		CreatedAt:    now,
	}); err != nil {
		t.Fatalf("create busy counselor: %v", err)
	}

	candidates, err := repo.ListAssignableCounselors(ctx, "burnout")
	if err != nil {
		t.Fatalf("ListAssignableCounselors() error = %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("ListAssignableCounselors() len = %d, want 2", len(candidates))
	}
	if candidates[0].CounselorID != specialist.CounselorID {
		t.Fatalf("first candidate = %q, want specialist", candidates[0].Name)
	}
}
