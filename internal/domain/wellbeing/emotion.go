package wellbeing

import (
	"fmt"
	"strings"
)

const (
	EmotionPositive  = "positive"
	EmotionSatisfied = "satisfied"
	EmotionNeutral   = "neutral"
	EmotionTired     = "tired"
	EmotionStressed  = "stressed"
	EmotionNegative  = "negative"
)

// MaxIntensity is the upper bound of the canonical 0-10 intensity scale.
const MaxIntensity = 10.0

var allowedEmotions = map[string]struct{}{
	EmotionPositive:  {},
	EmotionSatisfied: {},
	EmotionNeutral:   {},
	EmotionTired:     {},
	EmotionStressed:  {},
	EmotionNegative:  {},
}

var negativeEmotions = map[string]struct{}{
	EmotionTired:    {},
	EmotionStressed: {},
	EmotionNegative: {},
}

func NormalizeEmotionType(emotionType string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(emotionType))
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty", ErrUnknownEmotionType)
	}
	if _, ok := allowedEmotions[trimmed]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEmotionType, emotionType)
	}
	return trimmed, nil
}

func IsNegativeEmotion(emotionType string) bool {
	_, ok := negativeEmotions[emotionType]
	return ok
}

// NormalizeIntensity converts an incoming intensity to the canonical 0-10
// scale. Check-in sources disagree on the scale: some send 0-1 floats,
// others 0-10 values. A value strictly between 0 and 1 is taken as
// unit-scale and multiplied by 10; exact 0 and 1 are read on the 0-10 scale.
func NormalizeIntensity(value float64) (float64, error) {
	normalized := value
	if normalized > 0 && normalized < 1 {
		normalized *= 10
	}
	if normalized < 0 || normalized > MaxIntensity {
		return 0, fmt.Errorf("%w: %v", ErrIntensityOutOfRange, value)
	}
	return normalized, nil
}
