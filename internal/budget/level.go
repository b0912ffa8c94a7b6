package budget

import (
	"github.com/shopspring/decimal"
	"github.com/spendwise-app/backend/internal/i18n"
)

// Level classifies how much of a budget has been spent.
type Level string

const (
	LevelOnTrack  Level = "onTrack"
	LevelCaution  Level = "caution"
	LevelCritical Level = "critical"
	LevelExceeded Level = "exceeded"
)

var (
	thresholdExceeded = decimal.RequireFromString("1")
	thresholdCritical = decimal.RequireFromString("0.8")
	thresholdCaution  = decimal.RequireFromString("0.5")
)

// Classify returns the level for the ratio of spent to budgeted amount.
// The first matching threshold wins.
func Classify(ratio decimal.Decimal) Level {
	switch {
	case ratio.GreaterThanOrEqual(thresholdExceeded):
		return LevelExceeded
	case ratio.GreaterThanOrEqual(thresholdCritical):
		return LevelCritical
	case ratio.GreaterThanOrEqual(thresholdCaution):
		return LevelCaution
	default:
		return LevelOnTrack
	}
}

// Key returns the translation key of the level's message.
func (l Level) Key() string {
	switch l {
	case LevelCaution:
		return i18n.KeyBudgetCaution
	case LevelCritical:
		return i18n.KeyBudgetCritical
	case LevelExceeded:
		return i18n.KeyBudgetExceeded
	default:
		return i18n.KeyBudgetOnTrack
	}
}
