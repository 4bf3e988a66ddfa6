// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coptic

// AddMonths returns the date months months after d (or before, for
// negative months). The year rolls over as often as needed, so the
// increment may span many years in either direction.
//
// The day of the month is carried over unchanged, even when the
// resulting month is shorter: adding a month to the 6th of Nasie of a
// leap year yields the 6th of Tout, but adding thirteen months yields
// the 6th of Nasie of a common year, which is not a valid date. Callers
// that need a valid date use [Date.AddMonthsClamped] instead.
func (d Date) AddMonths(months int) Date {
	m := int(d.Month) - 1 + months
	return Date{
		Year:  d.Year + floorDiv(m, MonthsPerYear),
		Month: Month(floorMod(m, MonthsPerYear) + 1),
		Day:   d.Day,
	}
}

// AddMonthsClamped is like [Date.AddMonths], but clamps the day to the
// length of the resulting month, so that a valid input always yields a
// valid date.
func (d Date) AddMonthsClamped(months int) Date {
	nd := d.AddMonths(months)
	if n := DaysInMonth(nd.Year, nd.Month); nd.Day > n {
		nd.Day = n
	}
	return nd
}
