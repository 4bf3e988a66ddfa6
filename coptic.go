// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coptic implements the Coptic (Anno Martyrum) calendar.
//
// The Coptic calendar divides every year into thirteen months: twelve
// months of exactly 30 days, followed by a short intercalary month of 5
// days, or 6 days in a leap year. Leap years follow a fixed four year
// cycle, so all calendar computations reduce to integer arithmetic; there
// are no century corrections as in the Gregorian calendar.
//
// A civil date is represented by [Date] as a year, month and day. The
// linear representation of a moment is a [date.Date] from gonih.org/date,
// a signed count of days since 0001-01-01 of the proleptic Gregorian
// calendar. [Date.Days] and [FromDays] convert between the two. Because
// the linear form is shared with gonih.org/date, everything that is not
// calendar arithmetic - clock times, timezones, parsing and formatting of
// ISO dates - is simply delegated to that package and to package time
// rather than reimplemented here.
//
// Years are signed and extend the calendar proleptically in both
// directions. Year 1 begins at the calendar's epoch, 29 August 284 CE in
// the Julian calendar (the accession of Diocletian); year 0 and negative
// years precede it. The calendar defines no week or quarter subdivisions.
// Those queries are only reachable through the uniform
// [gonih.org/coptic/calendar.System] surface, where they report
// [calendar.ErrUnsupported].
package coptic

import (
	"fmt"
	"time"

	"gonih.org/coptic/calendar"
	"gonih.org/coptic/internal/julian"
	"gonih.org/date"
)

// MonthsPerYear is the number of months in every Coptic year.
const MonthsPerYear = 13

// A Month specifies a month of the Coptic year (Tout = 1, ...).
type Month int

const (
	Tout Month = 1 + iota
	Baba
	Hator
	Kiahk
	Toba
	Amshir
	Baramhat
	Baramouda
	Bashans
	Paona
	Epep
	Mesra
	Nasie
)

var monthNames = [...]string{
	"Tout",
	"Baba",
	"Hator",
	"Kiahk",
	"Toba",
	"Amshir",
	"Baramhat",
	"Baramouda",
	"Bashans",
	"Paona",
	"Epep",
	"Mesra",
	"Nasie",
}

// String returns the transliterated name of the month ("Tout", "Baba", ...).
func (m Month) String() string {
	if m < Tout || m > Nasie {
		return fmt.Sprintf("%%!Month(%d)", int(m))
	}
	return monthNames[m-1]
}

// A Weekday specifies a day of the week (Monday = 1, ..., Sunday = 7).
//
// Unlike time.Weekday, the week starts at Monday and there is no zero
// value, matching the ISO 8601 numbering.
type Weekday int

const (
	Monday Weekday = 1 + iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [...]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// String returns the English name of the day ("Monday", "Tuesday", ...).
func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return fmt.Sprintf("%%!Weekday(%d)", int(w))
	}
	return dayNames[w-1]
}

// An Era identifies one of the two eras of the year axis. Years after the
// epoch belong to the era of the martyrs (Anno Martyrum), years before it
// to the era preceding it. Year 0 belongs to neither era, see [YearOfEra].
type Era int

const (
	BeforeMartyrs Era = iota // before the epoch
	AnnoMartyrum             // from the epoch onwards
)

// String returns the conventional abbreviation of the era.
func (e Era) String() string {
	switch e {
	case BeforeMartyrs:
		return "B.A.M."
	case AnnoMartyrum:
		return "A.M."
	}
	return fmt.Sprintf("%%!Era(%d)", int(e))
}

// ErrInvalidDate is reported, possibly wrapped, for structurally invalid
// year, month and day combinations. It is the same sentinel as
// [calendar.ErrInvalidDate], so callers of either package can match it
// with errors.Is.
var ErrInvalidDate = calendar.ErrInvalidDate

// epoch is the day count of 1 Tout of year 1, the accession of Diocletian
// on 29 August 284 CE of the proleptic Julian calendar. It is computed
// once at initialization and never written again.
var epoch = julian.ToDays(284, 8, 29)

// Epoch returns the day count of the first day of year 1.
func Epoch() date.Date {
	return epoch
}

// IsLeap reports whether the given year is a leap year. Leap years get a
// sixth day of Nasie and recur every four years, in the year before each
// Julian leap year.
//
// The rule is evaluated with floor semantics, so it holds for negative
// years as well: -1 is a leap year, 0 is not.
func IsLeap(year int) bool {
	return floorMod(year, 4) == 3
}

// DaysInYear returns the number of days in the given year: 366 for leap
// years, 365 otherwise.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in the given month of the given
// year: 30 for Tout through Mesra, 5 or 6 for Nasie depending on whether
// year is a leap year. It returns 0 if m is not a valid month.
func DaysInMonth(year int, m Month) int {
	switch {
	case m >= Tout && m <= Mesra:
		return 30
	case m == Nasie:
		if IsLeap(year) {
			return 6
		}
		return 5
	}
	return 0
}

// Valid reports whether year, month and day form a valid Coptic date.
func Valid(year int, month Month, day int) bool {
	return day >= 1 && day <= DaysInMonth(year, month)
}

// A Date represents a Coptic civil date. It is an immutable value; all
// methods assume a valid date as produced by [New] or [FromDays] and
// checked by [Date.Valid].
//
// Dates are comparable with ==. For ordering, compare the values returned
// by [Date.Days].
type Date struct {
	Year  int
	Month Month
	Day   int
}

// New returns the Date with the given year, month and day. Unlike
// time.Date, the fields are not normalized: if they do not form a valid
// date, New reports an error wrapping [ErrInvalidDate].
func New(year int, month Month, day int) (Date, error) {
	if !Valid(year, month, day) {
		return Date{}, invalidDate(year, month, day)
	}
	return Date{year, month, day}, nil
}

func invalidDate(year int, month Month, day int) error {
	return fmt.Errorf("coptic: date %d-%02d-%02d: %w", year, int(month), day, ErrInvalidDate)
}

// Valid reports whether d is a valid date.
func (d Date) Valid() bool {
	return Valid(d.Year, d.Month, d.Day)
}

// String returns the date in year-month-day order with zero-padded
// numeric fields, e.g. "1740-01-01".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Days returns the day count of d, the number of days since 0001-01-01 of
// the proleptic Gregorian calendar, as used by gonih.org/date.
//
// The months before Nasie all have 30 days, so the offset of a date
// within its year is linear in the month. The year offset is 365 days per
// year plus one leap day per four year cycle, accounted for by floor
// division so that negative years work out the same as positive ones.
func (d Date) Days() date.Date {
	days := 365*(d.Year-1) + floorDiv(d.Year, 4) + 30*(int(d.Month)-1) + d.Day
	return epoch - 1 + date.Date(days)
}

// FromDays returns the Date with the given day count. It is the inverse
// of [Date.Days]: every valid Date round-trips through the two.
func FromDays(days date.Date) Date {
	// Closed-form inverse of the year term of Days. The residual within
	// the year is non-negative, so plain division recovers month and day.
	year := floorDiv(4*int(days-epoch)+1463, 1461)
	month := Month(int(days-Date{year, Tout, 1}.Days())/30 + 1)
	day := int(days-Date{year, month, 1}.Days()) + 1
	return Date{year, month, day}
}

// FromTime returns the Date on which t falls, in t's location.
func FromTime(t time.Time) Date {
	return FromDays(date.Of(t.Date()))
}

// Today returns the current date in the given location.
func Today(loc *time.Location) Date {
	return FromDays(date.Today(loc))
}

// Time returns the given moment of day d in the given location.
func (d Date) Time(hour, min, sec, nsec int, loc *time.Location) time.Time {
	return d.Days().Time(hour, min, sec, nsec, loc)
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() Weekday {
	// Day count 0, 0001-01-01, was a Monday.
	return Weekday(floorMod(int(d.Days()), 7) + 1)
}

// YearDay returns the day of the year of d, in the range [1,365] for
// common years and [1,366] for leap years.
func (d Date) YearDay() int {
	return int(d.Days()-Date{d.Year, Tout, 1}.Days()) + 1
}

// YearOfEra splits a year into its magnitude and era: year 3 is year 3 of
// [AnnoMartyrum], year -3 is year 3 of [BeforeMartyrs]. Year 0 belongs to
// neither era and reports an error wrapping [ErrInvalidDate].
func YearOfEra(year int) (int, Era, error) {
	switch {
	case year > 0:
		return year, AnnoMartyrum, nil
	case year < 0:
		return -year, BeforeMartyrs, nil
	}
	return 0, 0, fmt.Errorf("coptic: year 0 has no era: %w", ErrInvalidDate)
}

// DayOfEra returns the 1-based day count of d from the epoch together
// with the era of d's year. Day 1 is 1 Tout of year 1; days before the
// epoch are negative. Dates in year 0 report an error, as for
// [YearOfEra].
func (d Date) DayOfEra() (int, Era, error) {
	_, era, err := YearOfEra(d.Year)
	if err != nil {
		return 0, 0, err
	}
	return int(d.Days()-epoch) + 1, era, nil
}

// floorDiv returns a/b rounded toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod returns a-floorDiv(a, b)*b, which lies in [0,b) for b > 0.
func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
