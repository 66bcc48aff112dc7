// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package jawa provides the Javanese pasaran, the five day market
// week, for Gregorian dates.
package jawa

import (
	"cloudeng.io/multicalendar/datetime"
)

// Pasaran is a day of the five day market week.
type Pasaran int

const (
	Pahing Pasaran = iota
	Pon
	Wage
	Kliwon
	Legi
)

// Anchor is the reference date for the cycle, it is a Pahing.
var Anchor = datetime.CalendarDate{Year: 2022, Month: 1, Day: 1}

var (
	names = [...]string{"pahing", "pon", "wage", "kliwon", "legi"}

	// forward is the cycle from the anchor onwards, reversed is the
	// cycle walking backwards from the anchor.
	forward  = [...]Pasaran{Pahing, Pon, Wage, Kliwon, Legi}
	reversed = [...]Pasaran{Legi, Kliwon, Wage, Pon, Pahing}
)

func (p Pasaran) String() string {
	if p < Pahing || p > Legi {
		return "unknown"
	}
	return names[p]
}

// PasaranOf returns the pasaran of the supplied date.
func PasaranOf(date datetime.CalendarDate) (Pasaran, error) {
	if err := date.Validate(); err != nil {
		return 0, err
	}
	if !date.Before(Anchor) {
		return forward[date.DaysSince(Anchor)%len(forward)], nil
	}
	// Index -1 selects the last entry.
	i := Anchor.DaysSince(date)%len(reversed) - 1
	if i < 0 {
		i += len(reversed)
	}
	return reversed[i], nil
}

// Name returns the lower case name of the pasaran of the supplied date.
func Name(date datetime.CalendarDate) (string, error) {
	p, err := PasaranOf(date)
	if err != nil {
		return "", err
	}
	return p.String(), nil
}
