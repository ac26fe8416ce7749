package service

import (
	"time"

	"github.com/limbo/youthlife/pkg/entity"
)

// Clock resolves "now" and "today" in the configured timezone.
type Clock struct {
	Now func() time.Time
	Loc *time.Location
}

func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return Clock{
		Now: time.Now,
		Loc: loc,
	}
}

func (c Clock) Today() time.Time {
	return entity.CivilDate(c.Now(), c.Loc)
}

// DayRange is [midnight of date, next midnight) in the clock's timezone.
func (c Clock) DayRange(date time.Time) (time.Time, time.Time) {
	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, c.Loc)
	return from, from.AddDate(0, 0, 1)
}
