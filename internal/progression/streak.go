package progression

import (
	"time"

	"github.com/limbo/youthlife/pkg/entity"
)

// AdvanceStreak returns the streak state after a qualifying event on date.
// prev is nil for the first event of the metric. changed is false when the
// event repeats prev.LastDate, which leaves the streak untouched.
func AdvanceStreak(prev *entity.Streak, date time.Time) (next entity.Streak, changed bool) {
	if prev == nil {
		return entity.Streak{Count: 1, BestStreak: 1, LastDate: date}, true
	}
	next = *prev
	if prev.LastDate.Equal(date) {
		return next, false
	}
	if prev.LastDate.AddDate(0, 0, 1).Equal(date) {
		next.Count = prev.Count + 1
	} else {
		next.Count = 1
	}
	next.BestStreak = max(next.Count, prev.BestStreak)
	next.LastDate = date
	return next, true
}
