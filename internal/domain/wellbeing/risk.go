package wellbeing

import (
	"fmt"
	"math"
)

const (
	RiskNormal  = "normal"
	RiskWarning = "warning"
	RiskDanger  = "danger"
)

const (
	AlertLevelLow    = "low"
	AlertLevelMedium = "medium"
	AlertLevelHigh   = "high"
)

// Thresholds controls the risk classification cut-offs. Defaults match the
// product rule: danger above 60% negative emotions or average intensity 7,
// warning above 40% or 5.5.
type Thresholds struct {
	DangerRatio      float64
	DangerIntensity  float64
	WarningRatio     float64
	WarningIntensity float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		DangerRatio:      0.6,
		DangerIntensity:  7,
		WarningRatio:     0.4,
		WarningIntensity: 5.5,
	}
}

// EmotionSample is the slice of an emotion log the evaluator cares about.
type EmotionSample struct {
	EmotionType string
	Intensity   float64
}

// RiskSignal aggregates a worker's samples inside the evaluation window.
type RiskSignal struct {
	NegativeRatio float64
	AvgIntensity  float64
	LogCount      int
}

func Summarize(samples []EmotionSample) RiskSignal {
	if len(samples) == 0 {
		return RiskSignal{}
	}

	negative := 0
	sum := 0.0
	for _, sample := range samples {
		if IsNegativeEmotion(sample.EmotionType) {
			negative++
		}
		sum += sample.Intensity
	}

	return RiskSignal{
		NegativeRatio: float64(negative) / float64(len(samples)),
		AvgIntensity:  sum / float64(len(samples)),
		LogCount:      len(samples),
	}
}

// Classify maps a signal to a risk status. Danger takes precedence over
// warning; either trigger (ratio or intensity) is sufficient.
func Classify(signal RiskSignal, thresholds Thresholds) string {
	switch {
	case signal.NegativeRatio > thresholds.DangerRatio || signal.AvgIntensity > thresholds.DangerIntensity:
		return RiskDanger
	case signal.NegativeRatio > thresholds.WarningRatio || signal.AvgIntensity > thresholds.WarningIntensity:
		return RiskWarning
	default:
		return RiskNormal
	}
}

// RiskScore projects a signal onto a 0-100 scale: the negative ratio
// contributes up to 60 points and the average intensity up to 40.
func RiskScore(signal RiskSignal) float64 {
	score := math.Round(signal.NegativeRatio*60 + signal.AvgIntensity*4)
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// AlertMessage renders the human-readable description stored on an alert.
func AlertMessage(workerName string, signal RiskSignal, windowDays int) string {
	return fmt.Sprintf(
		"%s logged %.0f%% negative emotions over the last %d days (avg intensity %.1f)",
		workerName,
		signal.NegativeRatio*100,
		windowDays,
		signal.AvgIntensity,
	)
}
