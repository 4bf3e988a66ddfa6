// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coptic

import (
	"fmt"
	"iter"
)

// A Range is an inclusive range of dates. The zero value is not a usable
// range; use [YearRange] or [MonthRange] to construct one.
type Range struct {
	from, to Date
}

func newRange(from, to Date) (Range, error) {
	if !from.Valid() {
		return Range{}, invalidDate(from.Year, from.Month, from.Day)
	}
	if !to.Valid() {
		return Range{}, invalidDate(to.Year, to.Month, to.Day)
	}
	return Range{from, to}, nil
}

// YearRange returns the range spanning the given year, from 1 Tout to the
// last day of Nasie.
func YearRange(year int) (Range, error) {
	return newRange(
		Date{year, Tout, 1},
		Date{year, Nasie, DaysInMonth(year, Nasie)},
	)
}

// MonthRange returns the range spanning the given month of the given
// year. It reports an error wrapping [ErrInvalidDate] if m is not a valid
// month.
func MonthRange(year int, m Month) (Range, error) {
	return newRange(
		Date{year, m, 1},
		Date{year, m, DaysInMonth(year, m)},
	)
}

// From returns the first date of the range.
func (r Range) From() Date {
	return r.from
}

// To returns the last date of the range.
func (r Range) To() Date {
	return r.to
}

// Days returns the number of days in the range, including both endpoints.
func (r Range) Days() int {
	return int(r.to.Days()-r.from.Days()) + 1
}

// Contains reports whether d falls within the range.
func (r Range) Contains(d Date) bool {
	days := d.Days()
	return days >= r.from.Days() && days <= r.to.Days()
}

// Dates returns an iterator yielding each date of the range in order.
func (r Range) Dates() iter.Seq[Date] {
	from, to := r.from.Days(), r.to.Days()
	return func(yield func(Date) bool) {
		for days := from; days <= to; days++ {
			if !yield(FromDays(days)) {
				return
			}
		}
	}
}

func (r Range) String() string {
	return fmt.Sprintf("%v - %v", r.from, r.to)
}
