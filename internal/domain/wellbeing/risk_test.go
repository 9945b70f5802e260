package wellbeing

import (
	"errors"
	"math"
	"testing"
)

func TestSummarizeCountsNegativeEmotions(t *testing.T) {
	samples := []EmotionSample{
		{EmotionType: EmotionNegative, Intensity: 8},
		{EmotionType: EmotionStressed, Intensity: 7},
		{EmotionType: EmotionTired, Intensity: 6},
		{EmotionType: EmotionPositive, Intensity: 3},
		{EmotionType: EmotionNeutral, Intensity: 5},
	}

	signal := Summarize(samples)
	if signal.LogCount != 5 {
		t.Fatalf("LogCount = %d, want 5", signal.LogCount)
	}
	if signal.NegativeRatio != 0.6 {
		t.Fatalf("NegativeRatio = %v, want 0.6", signal.NegativeRatio)
	}
	if math.Abs(signal.AvgIntensity-5.8) > 1e-9 {
		t.Fatalf("AvgIntensity = %v, want 5.8", signal.AvgIntensity)
	}
}

func TestSummarizeEmptyIsZero(t *testing.T) {
	signal := Summarize(nil)
	if signal.LogCount != 0 || signal.NegativeRatio != 0 || signal.AvgIntensity != 0 {
		t.Fatalf("Summarize(nil) = %+v, want zero signal", signal)
	}
}

func TestClassifyPrecedence(t *testing.T) {
	thresholds := DefaultThresholds()

	cases := []struct {
		name   string
		signal RiskSignal
		want   string
	}{
		{"seven of ten negative", RiskSignal{NegativeRatio: 0.7, AvgIntensity: 5, LogCount: 10}, RiskDanger},
		{"high intensity alone", RiskSignal{NegativeRatio: 0.1, AvgIntensity: 7.5, LogCount: 4}, RiskDanger},
		{"moderate ratio", RiskSignal{NegativeRatio: 0.5, AvgIntensity: 4, LogCount: 6}, RiskWarning},
		{"moderate intensity", RiskSignal{NegativeRatio: 0.2, AvgIntensity: 6, LogCount: 6}, RiskWarning},
		{"calm week", RiskSignal{NegativeRatio: 0.3, AvgIntensity: 4, LogCount: 5}, RiskNormal},
		{"boundary ratio not danger", RiskSignal{NegativeRatio: 0.6, AvgIntensity: 5, LogCount: 5}, RiskWarning},
	}

	for _, tc := range cases {
		if got := Classify(tc.signal, thresholds); got != tc.want {
			t.Errorf("%s: Classify() = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestRiskScoreBounds(t *testing.T) {
	full := RiskScore(RiskSignal{NegativeRatio: 1, AvgIntensity: 10})
	if full != 100 {
		t.Fatalf("RiskScore(max) = %v, want 100", full)
	}
	if got := RiskScore(RiskSignal{}); got != 0 {
		t.Fatalf("RiskScore(zero) = %v, want 0", got)
	}
	if got := RiskScore(RiskSignal{NegativeRatio: 0.7, AvgIntensity: 8}); got != 74 {
		t.Fatalf("RiskScore(0.7, 8) = %v, want 74", got)
	}
}

func TestNormalizeIntensityScales(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0.5, 5},
		{0.85, 8.5},
		{0, 0},
		{1, 1},
		{8, 8},
		{10, 10},
	}
	for _, tc := range cases {
		got, err := NormalizeIntensity(tc.in)
		if err != nil {
			t.Fatalf("NormalizeIntensity(%v) error = %v", tc.in, err)
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("NormalizeIntensity(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}

	for _, bad := range []float64{-1, 10.5, 42} {
		if _, err := NormalizeIntensity(bad); !errors.Is(err, ErrIntensityOutOfRange) {
			t.Errorf("NormalizeIntensity(%v) error = %v, want ErrIntensityOutOfRange", bad, err)
		}
	}
}

func TestNormalizeEmotionType(t *testing.T) {
	got, err := NormalizeEmotionType(" Stressed ")
	if err != nil {
		t.Fatalf("NormalizeEmotionType() error = %v", err)
	}
	if got != EmotionStressed {
		t.Fatalf("NormalizeEmotionType() = %q, want %q", got, EmotionStressed)
	}

	_, err = NormalizeEmotionType("ecstatic")
	if !errors.Is(err, ErrUnknownEmotionType) {
		t.Fatalf("NormalizeEmotionType(ecstatic) error = %v, want ErrUnknownEmotionType", err)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("unknown emotion error should carry the validation category, got %v", err)
	}
}

func TestAlertMessageEmbedsSignal(t *testing.T) {
	msg := AlertMessage("Jane Kim", RiskSignal{NegativeRatio: 0.7, AvgIntensity: 7.25}, 7)
	want := "Jane Kim logged 70% negative emotions over the last 7 days (avg intensity 7.2)"
	if msg != want {
		t.Fatalf("AlertMessage() = %q, want %q", msg, want)
	}
}
