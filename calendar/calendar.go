// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package calendar defines a common operation set over calendar systems,
// so that code can work with any calendar without knowing which one it
// has in hand.
//
// Implementations register themselves under their identifier, usually
// from an init function, and are retrieved with [Lookup]. Importing
// gonih.org/coptic registers the "coptic" calendar; this package itself
// provides "gregorian".
//
// Not every calendar defines every concept: the Coptic calendar, for
// example, has no weeks or quarters. Such queries report
// [ErrUnsupported], which is deliberately distinct from
// [ErrInvalidDate]: the former means the calendar does not define the
// concept at all, the latter that the input does not denote a date.
package calendar

import (
	"errors"
	"fmt"
	"sort"

	"gonih.org/date"
)

// ErrUnsupported is reported, possibly wrapped, by queries for a concept
// that the calendar does not define.
var ErrUnsupported = errors.New("not defined for this calendar")

// ErrInvalidDate is reported, possibly wrapped, for inputs that do not
// denote a valid date of the calendar.
var ErrInvalidDate = errors.New("invalid date")

// A Date is a civil date in an unspecified calendar. Its interpretation,
// including the valid ranges of Month and Day, is up to the [System] it
// is used with.
type Date struct {
	Year  int
	Month int
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// A Range is an inclusive range of dates of a single calendar.
type Range struct {
	From, To Date
}

func (r Range) String() string {
	return fmt.Sprintf("%v - %v", r.From, r.To)
}

// A System is a calendar: a bidirectional mapping between civil dates and
// the linear day count of gonih.org/date, together with the calendar
// fields derived from it.
//
// All operations are pure functions; a System carries no state and is
// safe for concurrent use. Operations taking a year, month and day
// report an error wrapping [ErrInvalidDate] if the fields do not form a
// valid date, and one wrapping [ErrUnsupported] if the calendar does not
// define the queried concept.
type System interface {
	// Name returns the identifier the calendar is registered under.
	Name() string

	// ValidDate reports whether year, month and day form a valid date.
	ValidDate(year, month, day int) bool
	// IsLeapYear reports whether the given year is a leap year.
	IsLeapYear(year int) bool

	// PeriodsInYear returns the number of periods (usually months) the
	// calendar divides the given year into.
	PeriodsInYear(year int) int
	// DaysInYear returns the number of days in the given year.
	DaysInYear(year int) int
	// DaysInMonth returns the number of days in the given month.
	DaysInMonth(year, month int) (int, error)
	// WeeksInYear returns the number of weeks in the given year.
	WeeksInYear(year int) (int, error)

	// DayOfWeek returns the day of the week, from 1 (Monday) to 7
	// (Sunday).
	DayOfWeek(year, month, day int) (int, error)
	// DayOfYear returns the 1-based day of the year.
	DayOfYear(year, month, day int) (int, error)
	// DayOfEra returns the 1-based day count from the calendar's epoch
	// together with the era, as for YearOfEra.
	DayOfEra(year, month, day int) (int, int, error)
	// YearOfEra returns the magnitude of the given year together with
	// its era: 1 for years after the epoch, 0 for years before it.
	YearOfEra(year int) (int, int, error)
	// QuarterOfYear returns the quarter the given date falls in.
	QuarterOfYear(year, month, day int) (int, error)
	// WeekOfYear returns the week of the year the given date falls in.
	WeekOfYear(year, month, day int) (int, error)
	// ISOWeekOfYear returns the ISO 8601 week number of the given date.
	ISOWeekOfYear(year, month, day int) (int, error)
	// WeekOfMonth returns the week of the month the given date falls in.
	WeekOfMonth(year, month, day int) (int, error)

	// Year returns the inclusive range spanning the given year.
	Year(year int) (Range, error)
	// Quarter returns the inclusive range spanning the given quarter.
	Quarter(year, quarter int) (Range, error)
	// Month returns the inclusive range spanning the given month.
	Month(year, month int) (Range, error)
	// Week returns the inclusive range spanning the given week.
	Week(year, week int) (Range, error)

	// AddMonths returns the date months months after d. The day is
	// carried over unchanged unless clamp is set, in which case it is
	// clamped to the length of the resulting month.
	AddMonths(d Date, months int, clamp bool) (Date, error)

	// DateToDays returns the day count of the given date, as days since
	// 0001-01-01 of the proleptic Gregorian calendar.
	DateToDays(year, month, day int) (date.Date, error)
	// DateFromDays returns the date with the given day count.
	DateFromDays(days date.Date) Date
}

var systems = map[string]System{}

// Register makes a calendar available to Lookup under its name. It is
// intended to be called from an init function and panics if the name is
// already taken.
func Register(s System) {
	name := s.Name()
	if _, dup := systems[name]; dup {
		panic("calendar: Register called twice for " + name)
	}
	systems[name] = s
}

// Lookup returns the calendar registered under name.
func Lookup(name string) (System, error) {
	s, ok := systems[name]
	if !ok {
		return nil, fmt.Errorf("calendar: unknown calendar %q", name)
	}
	return s, nil
}

// Systems returns the names of all registered calendars, sorted.
func Systems() []string {
	names := make([]string, 0, len(systems))
	for name := range systems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
