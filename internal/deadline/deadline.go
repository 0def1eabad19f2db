// Package deadline turns vague, user-typed deadlines into local timestamps.
package deadline

import (
	"strconv"
	"strings"
	"time"

	todoerrors "github.com/dbmrq/todo/internal/errors"
)

// Kind identifies which vague deadline was asked for.
type Kind string

const (
	// KindTomorrow is exactly one day from now.
	KindTomorrow Kind = "tomorrow"
	// KindToday is 23:30 today.
	KindToday Kind = "today"
	// KindEvening is 23:00 today.
	KindEvening Kind = "evening"
	// KindNextWeek is exactly seven days from now.
	KindNextWeek Kind = "week"
	// KindDay is 15:00 on a given day of the current month.
	KindDay Kind = "day"
)

// keywords maps accepted spellings to their kind.
var keywords = map[string]Kind{
	"tomorrow":  KindTomorrow,
	"today":     KindToday,
	"tonight":   KindToday,
	"evening":   KindEvening,
	"week":      KindNextWeek,
	"next week": KindNextWeek,
	"nextweek":  KindNextWeek,
}

// Vague is a parsed but not yet resolved deadline.
type Vague struct {
	Kind Kind
	// Day is the day of month for KindDay, zero otherwise.
	Day int
}

// Parse reads a vague deadline. Keywords are matched case-insensitively;
// anything else must be a day of the month.
func Parse(s string) (Vague, error) {
	input := strings.ToLower(strings.Join(strings.Fields(s), " "))
	if kind, ok := keywords[input]; ok {
		return Vague{Kind: kind}, nil
	}

	day, err := strconv.ParseUint(input, 10, 8)
	if err != nil {
		return Vague{}, todoerrors.InvalidDeadline(s, err)
	}
	if day < 1 || day > 31 {
		return Vague{}, todoerrors.InvalidDeadline(s, nil)
	}
	return Vague{Kind: KindDay, Day: int(day)}, nil
}

// oneDay is a fixed 24 hours, so relative deadlines shift by an hour on the
// wall clock when a DST change falls in between.
const oneDay = 24 * time.Hour

// Resolve converts the deadline to a concrete timestamp in now's location.
// A day that does not exist in now's month is an error.
func (v Vague) Resolve(now time.Time) (time.Time, error) {
	switch v.Kind {
	case KindTomorrow:
		return now.Add(oneDay), nil
	case KindToday:
		return at(now, now.Day(), 23, 30), nil
	case KindEvening:
		return at(now, now.Day(), 23, 0), nil
	case KindNextWeek:
		return now.Add(7 * oneDay), nil
	case KindDay:
		if v.Day < 1 || v.Day > daysIn(now) {
			return time.Time{}, todoerrors.InvalidDeadline(v.String(), nil).
				WithDetails("month", now.Month().String())
		}
		return at(now, v.Day, 15, 0), nil
	default:
		return time.Time{}, todoerrors.InvalidDeadline(v.String(), nil)
	}
}

// String returns the deadline the way a user would type it.
func (v Vague) String() string {
	if v.Kind == KindDay {
		return strconv.Itoa(v.Day)
	}
	return string(v.Kind)
}

// ParseAndResolve parses s and resolves it against now.
func ParseAndResolve(s string, now time.Time) (time.Time, error) {
	v, err := Parse(s)
	if err != nil {
		return time.Time{}, err
	}
	return v.Resolve(now)
}

// IsUrgent reports whether a deadline needs attention: its calendar date is
// today or earlier and the work is not finished. A nil deadline is never urgent.
func IsUrgent(deadline *time.Time, resolved bool, now time.Time) bool {
	if deadline == nil || resolved {
		return false
	}
	d := deadline.In(now.Location())
	dy, dm, dd := d.Date()
	ny, nm, nd := now.Date()
	if dy != ny {
		return dy < ny
	}
	if dm != nm {
		return dm < nm
	}
	return dd <= nd
}

func at(now time.Time, day, hour, minute int) time.Time {
	return time.Date(now.Year(), now.Month(), day, hour, minute, 0, 0, now.Location())
}

func daysIn(now time.Time) int {
	return time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
}
