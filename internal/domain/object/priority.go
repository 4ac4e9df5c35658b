package object

import (
	"math"
	"time"
)

const (
	priorityBase = 30
	priorityMin  = 20
	priorityMax  = 100

	// dueBonusCeiling is the maximum urgency bonus; overdue items saturate it.
	dueBonusCeiling = 40.0
	dueBonusPerDay  = 5.0

	// QuickWinEffortMins is the effort threshold under which an item counts
	// as a quick win, both for scoring and for the daily review digest.
	QuickWinEffortMins = 5

	quickWinBonus = 10
	taskBonus     = 5
)

// Score computes the priority score for an object from its due date, effort
// estimate, and type. The result is rounded to the nearest integer and
// clamped to [20,100]. daysUntilDue is real-valued, so an item due in twelve
// hours earns more urgency than one due in three days, and overdue items
// saturate the due bonus.
func Score(due *time.Time, effortMins *int, t Type, now time.Time) int {
	score := float64(priorityBase)
	if due != nil {
		daysUntilDue := due.Sub(now).Hours() / 24
		score += math.Max(0, dueBonusCeiling-daysUntilDue*dueBonusPerDay)
	}
	if effortMins != nil && *effortMins <= QuickWinEffortMins {
		score += quickWinBonus
	}
	if t == TypeTask {
		score += taskBonus
	}
	rounded := int(math.Round(score))
	if rounded < priorityMin {
		return priorityMin
	}
	if rounded > priorityMax {
		return priorityMax
	}
	return rounded
}
