// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Copticcal converts between ISO 8601 dates and Coptic dates and prints
// calendar information.
//
// Usage:
//
//	copticcal                 print today's Coptic date
//	copticcal 2023-09-12      convert an ISO date to the Coptic calendar
//	copticcal -r 1740-01-01   convert a Coptic date to the ISO calendar
//	copticcal -m 1740-01      print a month table
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"gonih.org/coptic"
	"gonih.org/date"
)

var (
	reverseFlag = flag.Bool("r", false, "interpret the argument as a Coptic date")
	monthFlag   = flag.Bool("m", false, "print a table of the given Coptic year-month")
)

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "Usage: copticcal [-r|-m] [date]")
		os.Exit(2)
	}

	switch {
	case *monthFlag:
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "-m requires a year-month argument, e.g. 1740-01")
			os.Exit(2)
		}
		var year, month int
		if _, err := fmt.Sscanf(args[0], "%d-%d", &year, &month); err != nil {
			fmt.Fprintln(os.Stderr, "parsing month:", err)
			os.Exit(1)
		}
		if err := printMonth(year, coptic.Month(month)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case *reverseFlag:
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "-r requires a Coptic date argument, e.g. 1740-01-01")
			os.Exit(2)
		}
		var year, month, day int
		if _, err := fmt.Sscanf(args[0], "%d-%d-%d", &year, &month, &day); err != nil {
			fmt.Fprintln(os.Stderr, "parsing date:", err)
			os.Exit(1)
		}
		d, err := coptic.New(year, coptic.Month(month), day)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		printDate(d)
	default:
		var d coptic.Date
		if len(args) == 0 {
			d = coptic.Today(time.Local)
		} else {
			iso, err := date.Parse(date.RFC3339, args[0])
			if err != nil {
				fmt.Fprintln(os.Stderr, "parsing date:", err)
				os.Exit(1)
			}
			d = coptic.FromDays(iso)
		}
		printDate(d)
	}
}

func printDate(d coptic.Date) {
	fmt.Printf("coptic    = %v (%d %s)\n", d, d.Day, d.Month)
	fmt.Printf("iso       = %v\n", d.Days())
	fmt.Printf("weekday   = %v\n", d.Weekday())
	fmt.Printf("dayofyear = %d of %d\n", d.YearDay(), coptic.DaysInYear(d.Year))
	fmt.Printf("leapyear  = %v\n", coptic.IsLeap(d.Year))
	if n, era, err := d.DayOfEra(); err == nil {
		fmt.Printf("era       = year %d %v, day %d\n", abs(d.Year), era, n)
	}
}

func printMonth(year int, month coptic.Month) error {
	r, err := coptic.MonthRange(year, month)
	if err != nil {
		return err
	}
	fmt.Printf("%s %d (%v to %v)\n", month, year, r.From().Days(), r.To().Days())
	fmt.Println("Mo Tu We Th Fr Sa Su")
	fmt.Print(strings.Repeat("   ", int(r.From().Weekday())-1))
	for d := range r.Dates() {
		fmt.Printf("%2d", d.Day)
		if d.Weekday() == coptic.Sunday {
			fmt.Println()
		} else {
			fmt.Print(" ")
		}
	}
	if r.To().Weekday() != coptic.Sunday {
		fmt.Println()
	}
	return nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
