package wellbeing

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"goyo/internal/bootstrap/logging"
	domain "goyo/internal/domain/wellbeing"
	"goyo/internal/errs"
)

// Policy bundles the tunables of the risk evaluator and referral matcher.
type Policy struct {
	WindowDays       int
	Thresholds       domain.Thresholds
	ScheduleHour     int
	SpecialtyKeyword string
}

func DefaultPolicy() Policy {
	return Policy{
		WindowDays:       7,
		Thresholds:       domain.DefaultThresholds(),
		ScheduleHour:     10,
		SpecialtyKeyword: "burnout",
	}
}

type policyRiskConfig struct {
	WindowDays       int     `toml:"window_days"`
	DangerRatio      float64 `toml:"danger_ratio"`
	DangerIntensity  float64 `toml:"danger_intensity"`
	WarningRatio     float64 `toml:"warning_ratio"`
	WarningIntensity float64 `toml:"warning_intensity"`
}

type policyReferralConfig struct {
	ScheduleHour     int    `toml:"schedule_hour"`
	SpecialtyKeyword string `toml:"specialty_keyword"`
}

type policyFile struct {
	Risk     policyRiskConfig     `toml:"risk"`
	Referral policyReferralConfig `toml:"referral"`
}

// LoadPolicy reads the policy file, falling back to the built-in defaults
// when no file is configured. Partial files override only the keys they set.
func LoadPolicy(ctx context.Context, path string) (Policy, error) {
	if ctx == nil {
		return Policy{}, errors.New("context is required")
	}

	policy := DefaultPolicy()

	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return policy, nil
	}

	raw, err := os.ReadFile(trimmed)
	if err != nil {
		return Policy{}, errs.Wrapf(err, "read policy file %q", trimmed)
	}

	var file policyFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return Policy{}, errs.Wrapf(err, "parse policy file %q", trimmed)
	}

	if file.Risk.WindowDays > 0 {
		policy.WindowDays = file.Risk.WindowDays
	}
	if file.Risk.DangerRatio > 0 {
		policy.Thresholds.DangerRatio = file.Risk.DangerRatio
	}
	if file.Risk.DangerIntensity > 0 {
		policy.Thresholds.DangerIntensity = file.Risk.DangerIntensity
	}
	if file.Risk.WarningRatio > 0 {
		policy.Thresholds.WarningRatio = file.Risk.WarningRatio
	}
	if file.Risk.WarningIntensity > 0 {
		policy.Thresholds.WarningIntensity = file.Risk.WarningIntensity
	}
	if file.Referral.ScheduleHour > 0 {
		policy.ScheduleHour = file.Referral.ScheduleHour
	}
	if keyword := strings.TrimSpace(file.Referral.SpecialtyKeyword); keyword != "" {
		policy.SpecialtyKeyword = keyword
	}

	logging.Info(
		logging.WithAttrs(ctx, slog.String("component", "usecase.policy")),
		"policy loaded",
		slog.String("path", trimmed),
		slog.Int("window_days", policy.WindowDays),
		slog.Int("schedule_hour", policy.ScheduleHour),
	)

	return policy, nil
}
