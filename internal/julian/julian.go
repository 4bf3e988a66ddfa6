// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package julian converts dates of the proleptic Julian calendar to and
// from the day count used by gonih.org/date (days since 0001-01-01 of the
// proleptic Gregorian calendar).
//
// The Julian calendar serves as the historical reference frame for other
// calendars: the Coptic epoch, for example, is defined as 29 August 284
// CE Julian. Following historical usage there is no year 0; year -1 is
// followed by year 1.
package julian

import (
	"gonih.org/date"
)

// epoch is the day count of Julian 0001-01-01, which falls on 0000-12-30
// of the proleptic Gregorian calendar.
const epoch = -2

// IsLeap reports whether the given Julian year is a leap year: every
// fourth year, counted without a year 0, so -1, -5, ... on the negative
// axis.
func IsLeap(year int) bool {
	if year < 0 {
		return floorMod(year, 4) == 3
	}
	return year%4 == 0
}

// ToDays returns the day count of the given Julian date.
func ToDays(year, month, day int) date.Date {
	y := year
	if y < 0 {
		y++ // no year 0
	}
	d := epoch - 1 + 365*(y-1) + floorDiv(y-1, 4) + floorDiv(367*month-362, 12) + day
	if month > 2 {
		// The month offsets above assume a 30-day February; correct for
		// its actual length.
		if IsLeap(year) {
			d--
		} else {
			d -= 2
		}
	}
	return date.Date(d)
}

// FromDays returns the Julian date with the given day count. It is the
// inverse of [ToDays].
func FromDays(days date.Date) (year, month, day int) {
	d := int(days)
	approx := floorDiv(4*(d-epoch)+1464, 1461)
	year = approx
	if approx <= 0 {
		year = approx - 1 // no year 0
	}
	prior := d - int(ToDays(year, 1, 1))
	var correction int
	switch {
	case d < int(ToDays(year, 3, 1)):
		correction = 0
	case IsLeap(year):
		correction = 1
	default:
		correction = 2
	}
	month = floorDiv(12*(prior+correction)+373, 367)
	day = d - int(ToDays(year, month, 1)) + 1
	return year, month, day
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
