// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coptic

import (
	"fmt"

	"gonih.org/coptic/calendar"
	"gonih.org/date"
)

// system adapts the package to the calendar.System operation set.
type system struct{}

func init() {
	calendar.Register(system{})
}

// System returns the Coptic calendar as a [calendar.System]. The same
// value is registered with package calendar under the name "coptic".
func System() calendar.System {
	return system{}
}

func (system) Name() string { return "coptic" }

func (system) ValidDate(year, month, day int) bool {
	return Valid(year, Month(month), day)
}

func (system) IsLeapYear(year int) bool { return IsLeap(year) }

func (system) PeriodsInYear(int) int { return MonthsPerYear }

func (system) DaysInYear(year int) int { return DaysInYear(year) }

func (system) DaysInMonth(year, month int) (int, error) {
	if month < int(Tout) || month > int(Nasie) {
		return 0, fmt.Errorf("coptic: month %d: %w", month, calendar.ErrInvalidDate)
	}
	return DaysInMonth(year, Month(month)), nil
}

// The Coptic calendar is month-based only; it defines neither weeks nor
// quarters, so all such queries report calendar.ErrUnsupported instead of
// computing an ISO-style answer.

func (system) WeeksInYear(int) (int, error) {
	return 0, unsupported("weeks")
}

func (system) QuarterOfYear(int, int, int) (int, error) {
	return 0, unsupported("quarters")
}

func (system) WeekOfYear(int, int, int) (int, error) {
	return 0, unsupported("weeks")
}

func (system) ISOWeekOfYear(int, int, int) (int, error) {
	return 0, unsupported("ISO weeks")
}

func (system) WeekOfMonth(int, int, int) (int, error) {
	return 0, unsupported("weeks")
}

func (system) Quarter(int, int) (calendar.Range, error) {
	return calendar.Range{}, unsupported("quarters")
}

func (system) Week(int, int) (calendar.Range, error) {
	return calendar.Range{}, unsupported("weeks")
}

func unsupported(what string) error {
	return fmt.Errorf("coptic: %s: %w", what, calendar.ErrUnsupported)
}

func (system) DayOfWeek(year, month, day int) (int, error) {
	d, err := New(year, Month(month), day)
	if err != nil {
		return 0, err
	}
	return int(d.Weekday()), nil
}

func (system) DayOfYear(year, month, day int) (int, error) {
	d, err := New(year, Month(month), day)
	if err != nil {
		return 0, err
	}
	return d.YearDay(), nil
}

func (system) DayOfEra(year, month, day int) (int, int, error) {
	d, err := New(year, Month(month), day)
	if err != nil {
		return 0, 0, err
	}
	n, era, err := d.DayOfEra()
	return n, int(era), err
}

func (system) YearOfEra(year int) (int, int, error) {
	n, era, err := YearOfEra(year)
	return n, int(era), err
}

func (system) Year(year int) (calendar.Range, error) {
	r, err := YearRange(year)
	if err != nil {
		return calendar.Range{}, err
	}
	return rangeOf(r), nil
}

func (system) Month(year, month int) (calendar.Range, error) {
	r, err := MonthRange(year, Month(month))
	if err != nil {
		return calendar.Range{}, err
	}
	return rangeOf(r), nil
}

func (system) AddMonths(d calendar.Date, months int, clamp bool) (calendar.Date, error) {
	cd, err := New(d.Year, Month(d.Month), d.Day)
	if err != nil {
		return calendar.Date{}, err
	}
	if clamp {
		cd = cd.AddMonthsClamped(months)
	} else {
		cd = cd.AddMonths(months)
	}
	return dateOf(cd), nil
}

func (system) DateToDays(year, month, day int) (date.Date, error) {
	d, err := New(year, Month(month), day)
	if err != nil {
		return 0, err
	}
	return d.Days(), nil
}

func (system) DateFromDays(days date.Date) calendar.Date {
	return dateOf(FromDays(days))
}

func dateOf(d Date) calendar.Date {
	return calendar.Date{Year: d.Year, Month: int(d.Month), Day: d.Day}
}

func rangeOf(r Range) calendar.Range {
	return calendar.Range{From: dateOf(r.From()), To: dateOf(r.To())}
}
