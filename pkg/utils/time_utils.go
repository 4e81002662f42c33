package utils

import "time"

const DayLayout = "2006-01-02"

// Clock is the source of "now" for anything that depends on the calendar day.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type systemClock struct {
	loc *time.Location
}

func NewSystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return systemClock{loc: loc}
}

func (s systemClock) Now() time.Time { return time.Now().In(s.loc) }

func (s systemClock) Location() *time.Location { return s.loc }

type fixedClock struct {
	t time.Time
}

// NewFixedClock always reports t, in t's location.
func NewFixedClock(t time.Time) Clock {
	return fixedClock{t: t}
}

func (f fixedClock) Now() time.Time { return f.t }

func (f fixedClock) Location() *time.Location { return f.t.Location() }

// LoadLocation resolves an IANA name; "" and "Local" mean the server zone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}

// DayKey renders the calendar date of t in loc, e.g. 2025-09-24.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DayLayout)
}

// StartOfDay returns local midnight of t's date in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	l := t.In(loc)
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, loc)
}
