package wellbeing

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPolicyDefaultsWithoutFile(t *testing.T) {
	policy, err := LoadPolicy(context.Background(), "")
	if err != nil {
		t.Fatalf("LoadPolicy() error = %v", err)
	}
	if policy.WindowDays != 7 {
		t.Fatalf("WindowDays = %d, want 7", policy.WindowDays)
	}
	if policy.Thresholds.DangerRatio != 0.6 || policy.Thresholds.WarningIntensity != 5.5 {
		t.Fatalf("unexpected default thresholds: %+v", policy.Thresholds)
	}
	if policy.ScheduleHour != 10 {
		t.Fatalf("ScheduleHour = %d, want 10", policy.ScheduleHour)
	}
	if policy.SpecialtyKeyword != "burnout" {
		t.Fatalf("SpecialtyKeyword = %q, want burnout", policy.SpecialtyKeyword)
	}
}

func TestLoadPolicyOverridesOnlySetKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.toml")
	content := `
[risk]
window_days = 14
danger_ratio = 0.7

[referral]
specialty_keyword = "trauma"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write policy file: %v", err)
	}

	policy, err := LoadPolicy(context.Background(), path)
	if err != nil {
		t.Fatalf("LoadPolicy() error = %v", err)
	}
	if policy.WindowDays != 14 {
		t.Fatalf("WindowDays = %d, want 14", policy.WindowDays)
	}
	if policy.Thresholds.DangerRatio != 0.7 {
		t.Fatalf("DangerRatio = %v, want 0.7", policy.Thresholds.DangerRatio)
	}
	if policy.Thresholds.WarningRatio != 0.4 {
		t.Fatalf("WarningRatio = %v, want default 0.4", policy.Thresholds.WarningRatio)
	}
	if policy.ScheduleHour != 10 {
		t.Fatalf("ScheduleHour = %d, want default 10", policy.ScheduleHour)
	}
	if policy.SpecialtyKeyword != "trauma" {
		t.Fatalf("SpecialtyKeyword = %q, want trauma", policy.SpecialtyKeyword)
	}
}

func TestLoadPolicyMissingFileFails(t *testing.T) {
	_, err := LoadPolicy(context.Background(), filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatalf("LoadPolicy() expected error for missing file")
	}
}
