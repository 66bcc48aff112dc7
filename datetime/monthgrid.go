// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import (
	"fmt"
	"time"
)

// MonthGrid represents a month as a sequence of weeks, each of which has
// 7 entries, one per day of the week starting with the first weekday used
// to create it. Entries are the day of month or zero for days that fall
// outside of the month.
type MonthGrid [][7]int

// NewMonthGrid returns a MonthGrid for a month of length days whose
// first day falls in column offset (0-6) of the first week. It contains
// only as many weeks as needed to hold all of the days.
func NewMonthGrid(offset, length int) MonthGrid {
	offset = ((offset % 7) + 7) % 7
	weeks := (offset + length + 6) / 7
	grid := make(MonthGrid, weeks)
	for day := 1; day <= length; day++ {
		cell := offset + day - 1
		grid[cell/7][cell%7] = day
	}
	return grid
}

// Column returns the column in a week starting on first that the weekday
// day occupies.
func Column(first, day time.Weekday) int {
	return (int(day) - int(first) + 7) % 7
}

// MonthCalendar returns the MonthGrid for the specified Gregorian year and
// month with weeks starting on first.
func MonthCalendar(year int, month Month, first time.Weekday) (MonthGrid, error) {
	start := CalendarDate{Year: year, Month: month, Day: 1}
	if err := start.Validate(); err != nil {
		return nil, err
	}
	if first < time.Sunday || first > time.Saturday {
		return nil, fmt.Errorf("invalid first weekday: %d", first)
	}
	return NewMonthGrid(Column(first, start.Weekday()), DaysInMonth(year, month)), nil
}

// Days returns the non-zero entries of the grid in order.
func (mg MonthGrid) Days() []int {
	days := make([]int, 0, len(mg)*7)
	for _, week := range mg {
		for _, d := range week {
			if d != 0 {
				days = append(days, d)
			}
		}
	}
	return days
}

// Len returns the number of days in the month represented by the grid.
func (mg MonthGrid) Len() int {
	n := 0
	for _, week := range mg {
		for _, d := range week {
			if d != 0 {
				n++
			}
		}
	}
	return n
}

// Position returns the week and column of the specified day of month,
// or false if the day is not in the grid.
func (mg MonthGrid) Position(day int) (week, column int, ok bool) {
	for w, days := range mg {
		for c, d := range days {
			if d == day && d != 0 {
				return w, c, true
			}
		}
	}
	return 0, 0, false
}

// Fill returns a copy of the grid where the empty cells before the first
// day hold the last days of the previous month, which has previousLength
// days, and the empty cells after the last day hold the first days of the
// next month.
func (mg MonthGrid) Fill(previousLength int) MonthGrid {
	filled := make(MonthGrid, len(mg))
	copy(filled, mg)
	if len(filled) == 0 {
		return filled
	}
	lead := 0
	for lead < 7 && filled[0][lead] == 0 {
		lead++
	}
	for c := 0; c < lead; c++ {
		filled[0][c] = previousLength - lead + c + 1
	}
	last := len(filled) - 1
	end := 7
	for end > 0 && filled[last][end-1] == 0 {
		end--
	}
	for c := end; c < 7; c++ {
		filled[last][c] = c - end + 1
	}
	return filled
}
