// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar

import (
	"fmt"
	"time"

	"gonih.org/date"
)

// gregorian implements System for the proleptic Gregorian calendar, with
// all conversions delegated to gonih.org/date. It mainly exists so that
// the registry holds more than one calendar, but it is a complete
// implementation, including the week and quarter subdivisions that the
// Coptic calendar lacks.
type gregorian struct{}

func init() {
	Register(gregorian{})
}

// daysInMonth counts the number of days per month in a common year.
var daysInMonth = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func (gregorian) Name() string { return "gregorian" }

func (g gregorian) ValidDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	n, _ := g.DaysInMonth(year, month)
	return day <= n
}

func (gregorian) IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func (gregorian) PeriodsInYear(int) int { return 12 }

func (g gregorian) DaysInYear(year int) int {
	if g.IsLeapYear(year) {
		return 366
	}
	return 365
}

func (g gregorian) DaysInMonth(year, month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("gregorian: month %d: %w", month, ErrInvalidDate)
	}
	if month == 2 && g.IsLeapYear(year) {
		return 29, nil
	}
	return daysInMonth[month-1], nil
}

func (gregorian) WeeksInYear(year int) (int, error) {
	// Dec 28 always falls into the last ISO week of its year.
	_, week := date.Of(year, time.December, 28).ISOWeek()
	return week, nil
}

func (g gregorian) DayOfWeek(year, month, day int) (int, error) {
	if !g.ValidDate(year, month, day) {
		return 0, g.invalidDate(year, month, day)
	}
	return isoWeekday(date.Of(year, time.Month(month), day)), nil
}

func (g gregorian) DayOfYear(year, month, day int) (int, error) {
	if !g.ValidDate(year, month, day) {
		return 0, g.invalidDate(year, month, day)
	}
	return date.Of(year, time.Month(month), day).YearDay(), nil
}

func (g gregorian) DayOfEra(year, month, day int) (int, int, error) {
	if !g.ValidDate(year, month, day) {
		return 0, 0, g.invalidDate(year, month, day)
	}
	_, era, err := g.YearOfEra(year)
	if err != nil {
		return 0, 0, err
	}
	// Day 1 of the common era is 0001-01-01, day count 0.
	return int(date.Of(year, time.Month(month), day)) + 1, era, nil
}

func (gregorian) YearOfEra(year int) (int, int, error) {
	switch {
	case year > 0:
		return year, 1, nil
	case year < 0:
		return -year, 0, nil
	}
	return 0, 0, fmt.Errorf("gregorian: year 0 has no era: %w", ErrInvalidDate)
}

func (g gregorian) QuarterOfYear(year, month, day int) (int, error) {
	if !g.ValidDate(year, month, day) {
		return 0, g.invalidDate(year, month, day)
	}
	return (month-1)/3 + 1, nil
}

func (g gregorian) WeekOfYear(year, month, day int) (int, error) {
	yd, err := g.DayOfYear(year, month, day)
	if err != nil {
		return 0, err
	}
	return (yd-1)/7 + 1, nil
}

func (g gregorian) ISOWeekOfYear(year, month, day int) (int, error) {
	if !g.ValidDate(year, month, day) {
		return 0, g.invalidDate(year, month, day)
	}
	_, week := date.Of(year, time.Month(month), day).ISOWeek()
	return week, nil
}

func (g gregorian) WeekOfMonth(year, month, day int) (int, error) {
	if !g.ValidDate(year, month, day) {
		return 0, g.invalidDate(year, month, day)
	}
	return (day-1)/7 + 1, nil
}

func (gregorian) Year(year int) (Range, error) {
	return Range{Date{year, 1, 1}, Date{year, 12, 31}}, nil
}

func (g gregorian) Quarter(year, quarter int) (Range, error) {
	if quarter < 1 || quarter > 4 {
		return Range{}, fmt.Errorf("gregorian: quarter %d: %w", quarter, ErrInvalidDate)
	}
	first, last := 3*quarter-2, 3*quarter
	n, err := g.DaysInMonth(year, last)
	if err != nil {
		return Range{}, err
	}
	return Range{Date{year, first, 1}, Date{year, last, n}}, nil
}

func (g gregorian) Month(year, month int) (Range, error) {
	n, err := g.DaysInMonth(year, month)
	if err != nil {
		return Range{}, err
	}
	return Range{Date{year, month, 1}, Date{year, month, n}}, nil
}

func (g gregorian) Week(year, week int) (Range, error) {
	weeks, _ := g.WeeksInYear(year)
	if week < 1 || week > weeks {
		return Range{}, fmt.Errorf("gregorian: week %d of year %d: %w", week, year, ErrInvalidDate)
	}
	// ISO week 1 is the week containing Jan 4. Weeks start on Monday.
	jan4 := date.Of(year, time.January, 4)
	start := jan4 - date.Date(isoWeekday(jan4)-1) + date.Date(7*(week-1))
	return Range{dateOf(start), dateOf(start + 6)}, nil
}

func (g gregorian) AddMonths(d Date, months int, clamp bool) (Date, error) {
	if !g.ValidDate(d.Year, d.Month, d.Day) {
		return Date{}, g.invalidDate(d.Year, d.Month, d.Day)
	}
	m := d.Month - 1 + months
	nd := Date{Year: d.Year + floorDiv(m, 12), Month: floorMod(m, 12) + 1, Day: d.Day}
	if clamp {
		if n, _ := g.DaysInMonth(nd.Year, nd.Month); nd.Day > n {
			nd.Day = n
		}
	}
	return nd, nil
}

func (g gregorian) DateToDays(year, month, day int) (date.Date, error) {
	if !g.ValidDate(year, month, day) {
		return 0, g.invalidDate(year, month, day)
	}
	return date.Of(year, time.Month(month), day), nil
}

func (gregorian) DateFromDays(days date.Date) Date {
	return dateOf(days)
}

func (gregorian) invalidDate(year, month, day int) error {
	return fmt.Errorf("gregorian: date %d-%02d-%02d: %w", year, month, day, ErrInvalidDate)
}

func dateOf(d date.Date) Date {
	year, month, day := d.Date()
	return Date{year, int(month), day}
}

// isoWeekday returns the ISO numbering of d's weekday, mapping Sunday
// from 0 to 7.
func isoWeekday(d date.Date) int {
	if wd := int(d.Weekday()); wd != 0 {
		return wd
	}
	return 7
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
