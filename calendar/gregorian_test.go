// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package calendar_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonih.org/coptic/calendar"
)

func gregorian(t *testing.T) calendar.System {
	t.Helper()
	s, err := calendar.Lookup("gregorian")
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestGregorianFields(t *testing.T) {
	s := gregorian(t)

	if got := s.PeriodsInYear(2024); got != 12 {
		t.Errorf("PeriodsInYear(2024) = %d, want 12", got)
	}
	for _, tc := range []struct {
		year int
		want bool
	}{
		{2024, true},
		{2023, false},
		{1900, false},
		{2000, true},
	} {
		if got := s.IsLeapYear(tc.year); got != tc.want {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tc.year, got, tc.want)
		}
	}
	if got, err := s.DaysInMonth(2024, 2); err != nil || got != 29 {
		t.Errorf("DaysInMonth(2024, 2) = %d, %v, want 29, <nil>", got, err)
	}
	if got, err := s.DaysInMonth(2023, 2); err != nil || got != 28 {
		t.Errorf("DaysInMonth(2023, 2) = %d, %v, want 28, <nil>", got, err)
	}
	if _, err := s.DaysInMonth(2023, 13); !errors.Is(err, calendar.ErrInvalidDate) {
		t.Errorf("DaysInMonth(2023, 13) = _, %v, want ErrInvalidDate", err)
	}

	// 2023-09-12 was a Tuesday, day 255 of a common year.
	if got, err := s.DayOfWeek(2023, 9, 12); err != nil || got != 2 {
		t.Errorf("DayOfWeek(2023, 9, 12) = %d, %v, want 2, <nil>", got, err)
	}
	if got, err := s.DayOfYear(2023, 9, 12); err != nil || got != 255 {
		t.Errorf("DayOfYear(2023, 9, 12) = %d, %v, want 255, <nil>", got, err)
	}
	if got, err := s.QuarterOfYear(2023, 9, 12); err != nil || got != 3 {
		t.Errorf("QuarterOfYear(2023, 9, 12) = %d, %v, want 3, <nil>", got, err)
	}
	if got, err := s.WeekOfMonth(2023, 9, 12); err != nil || got != 2 {
		t.Errorf("WeekOfMonth(2023, 9, 12) = %d, %v, want 2, <nil>", got, err)
	}
	if n, era, err := s.DayOfEra(1, 1, 1); err != nil || n != 1 || era != 1 {
		t.Errorf("DayOfEra(1, 1, 1) = %d, %d, %v, want 1, 1, <nil>", n, era, err)
	}
	if n, era, err := s.YearOfEra(-44); err != nil || n != 44 || era != 0 {
		t.Errorf("YearOfEra(-44) = %d, %d, %v, want 44, 0, <nil>", n, era, err)
	}

	if !s.ValidDate(2024, 2, 29) || s.ValidDate(2023, 2, 29) {
		t.Errorf("ValidDate(Feb 29): 2024 = %v, 2023 = %v, want true, false",
			s.ValidDate(2024, 2, 29), s.ValidDate(2023, 2, 29))
	}
}

func TestGregorianWeeks(t *testing.T) {
	s := gregorian(t)

	// 2020 is one of the long ISO years with 53 weeks.
	if got, err := s.WeeksInYear(2020); err != nil || got != 53 {
		t.Errorf("WeeksInYear(2020) = %d, %v, want 53, <nil>", got, err)
	}
	if got, err := s.WeeksInYear(2023); err != nil || got != 52 {
		t.Errorf("WeeksInYear(2023) = %d, %v, want 52, <nil>", got, err)
	}
	// Jan 4 is always part of ISO week 1.
	if got, err := s.ISOWeekOfYear(2024, 1, 4); err != nil || got != 1 {
		t.Errorf("ISOWeekOfYear(2024, 1, 4) = %d, %v, want 1, <nil>", got, err)
	}

	// 2024-01-01 was a Monday, so ISO week 1 of 2024 is Jan 1 to Jan 7.
	week, err := s.Week(2024, 1)
	if err != nil {
		t.Fatalf("Week(2024, 1) = _, %v", err)
	}
	want := calendar.Range{
		From: calendar.Date{Year: 2024, Month: 1, Day: 1},
		To:   calendar.Date{Year: 2024, Month: 1, Day: 7},
	}
	if diff := cmp.Diff(week, want); diff != "" {
		t.Errorf("Week(2024, 1) mismatch (-got +want):\n%s", diff)
	}
	if _, err := s.Week(2023, 54); !errors.Is(err, calendar.ErrInvalidDate) {
		t.Errorf("Week(2023, 54) = _, %v, want ErrInvalidDate", err)
	}
}

func TestGregorianRanges(t *testing.T) {
	s := gregorian(t)

	year, err := s.Year(2023)
	if err != nil {
		t.Fatalf("Year(2023) = _, %v", err)
	}
	want := calendar.Range{
		From: calendar.Date{Year: 2023, Month: 1, Day: 1},
		To:   calendar.Date{Year: 2023, Month: 12, Day: 31},
	}
	if diff := cmp.Diff(year, want); diff != "" {
		t.Errorf("Year(2023) mismatch (-got +want):\n%s", diff)
	}

	quarter, err := s.Quarter(2023, 4)
	if err != nil {
		t.Fatalf("Quarter(2023, 4) = _, %v", err)
	}
	want = calendar.Range{
		From: calendar.Date{Year: 2023, Month: 10, Day: 1},
		To:   calendar.Date{Year: 2023, Month: 12, Day: 31},
	}
	if diff := cmp.Diff(quarter, want); diff != "" {
		t.Errorf("Quarter(2023, 4) mismatch (-got +want):\n%s", diff)
	}
	if _, err := s.Quarter(2023, 5); !errors.Is(err, calendar.ErrInvalidDate) {
		t.Errorf("Quarter(2023, 5) = _, %v, want ErrInvalidDate", err)
	}

	month, err := s.Month(2024, 2)
	if err != nil {
		t.Fatalf("Month(2024, 2) = _, %v", err)
	}
	want = calendar.Range{
		From: calendar.Date{Year: 2024, Month: 2, Day: 1},
		To:   calendar.Date{Year: 2024, Month: 2, Day: 29},
	}
	if diff := cmp.Diff(month, want); diff != "" {
		t.Errorf("Month(2024, 2) mismatch (-got +want):\n%s", diff)
	}
}

func TestGregorianArithmetic(t *testing.T) {
	s := gregorian(t)

	got, err := s.AddMonths(calendar.Date{Year: 2024, Month: 1, Day: 31}, 1, true)
	if err != nil {
		t.Fatalf("AddMonths = _, %v", err)
	}
	if want := (calendar.Date{Year: 2024, Month: 2, Day: 29}); got != want {
		t.Errorf("AddMonths(2024-01-31, 1, clamp) = %v, want %v", got, want)
	}
	got, err = s.AddMonths(calendar.Date{Year: 2024, Month: 1, Day: 31}, 1, false)
	if err != nil {
		t.Fatalf("AddMonths = _, %v", err)
	}
	if want := (calendar.Date{Year: 2024, Month: 2, Day: 31}); got != want {
		t.Errorf("AddMonths(2024-01-31, 1) = %v, want %v", got, want)
	}
	got, err = s.AddMonths(calendar.Date{Year: 2024, Month: 1, Day: 15}, -13, false)
	if err != nil {
		t.Fatalf("AddMonths = _, %v", err)
	}
	if want := (calendar.Date{Year: 2022, Month: 12, Day: 15}); got != want {
		t.Errorf("AddMonths(2024-01-15, -13) = %v, want %v", got, want)
	}
}

func TestGregorianDays(t *testing.T) {
	s := gregorian(t)

	days, err := s.DateToDays(2023, 7, 14)
	if err != nil {
		t.Fatalf("DateToDays(2023, 7, 14) = _, %v", err)
	}
	if days != 738714 {
		t.Errorf("DateToDays(2023, 7, 14) = %d, want 738714", days)
	}
	if got, want := s.DateFromDays(days), (calendar.Date{Year: 2023, Month: 7, Day: 14}); got != want {
		t.Errorf("DateFromDays(%d) = %v, want %v", days, got, want)
	}

	// The Coptic and Gregorian systems share the same day numbering, so
	// corresponding dates convert to the same day count.
	coptic, err := calendar.Lookup("coptic")
	if err != nil {
		t.Fatal(err)
	}
	cd, err := coptic.DateToDays(1740, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	gd, err := s.DateToDays(2023, 9, 12)
	if err != nil {
		t.Fatal(err)
	}
	if cd != gd {
		t.Errorf("coptic 1740-01-01 = %d, gregorian 2023-09-12 = %d, want equal", cd, gd)
	}
}
