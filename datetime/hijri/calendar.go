// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hijri

import (
	"fmt"
	"time"

	"cloudeng.io/multicalendar/datetime"
)

// CalendarOption represents an option to MonthCalendar and the overlay
// functions.
type CalendarOption func(*calendarOptions)

type calendarOptions struct {
	first  time.Weekday
	adjust int
}

// WithFirstWeekday sets the first day of the week, ie. the weekday of
// the first column of a month grid. The default is Sunday.
func WithFirstWeekday(day time.Weekday) CalendarOption {
	return func(o *calendarOptions) {
		o.first = day
	}
}

// WithAdjust sets the adjust used when relating Hijri and Gregorian
// dates. The default is zero.
func WithAdjust(adjust int) CalendarOption {
	return func(o *calendarOptions) {
		o.adjust = adjust
	}
}

func newCalendarOptions(opts []CalendarOption) (calendarOptions, error) {
	o := calendarOptions{first: time.Sunday}
	for _, fn := range opts {
		fn(&o)
	}
	if o.first < time.Sunday || o.first > time.Saturday {
		return o, fmt.Errorf("invalid first weekday: %d", o.first)
	}
	return o, nil
}

// MonthCalendar returns a week grid for the specified Hijri month with
// day 1 placed in the column of the weekday it falls on. The grid
// contains 5 or 6 weeks.
func MonthCalendar(year int, month Month, opts ...CalendarOption) (datetime.MonthGrid, error) {
	o, err := newCalendarOptions(opts)
	if err != nil {
		return nil, err
	}
	return monthCalendar(year, month, o)
}

func monthCalendar(year int, month Month, o calendarOptions) (datetime.MonthGrid, error) {
	first, err := Weekday(Date{Year: year, Month: month, Day: 1, Adjust: o.adjust})
	if err != nil {
		return nil, err
	}
	n, err := MonthLength(year, month, o.adjust)
	if err != nil {
		return nil, err
	}
	return datetime.NewMonthGrid(datetime.Column(o.first, first), n), nil
}

// HijriOverlay is a Gregorian month grid with each day replaced by its
// Hijri date. Cells outside of the month hold the zero Date.
type HijriOverlay [][7]Date

// GregorianOverlay is a Hijri month grid with each day replaced by its
// Gregorian date. Cells outside of the month hold the zero CalendarDate.
type GregorianOverlay [][7]datetime.CalendarDate

// OverlayGregorianMonth returns the Gregorian month grid for the specified
// year and month together with the Hijri date of every day in it.
func OverlayGregorianMonth(year int, month datetime.Month, opts ...CalendarOption) (datetime.MonthGrid, HijriOverlay, error) {
	o, err := newCalendarOptions(opts)
	if err != nil {
		return nil, nil, err
	}
	grid, err := datetime.MonthCalendar(year, month, o.first)
	if err != nil {
		return nil, nil, err
	}
	overlay := make(HijriOverlay, len(grid))
	for w, week := range grid {
		for c, day := range week {
			if day == 0 {
				continue
			}
			h, err := GregorianToHijri(datetime.CalendarDate{Year: year, Month: month, Day: day}, o.adjust)
			if err != nil {
				return nil, nil, err
			}
			overlay[w][c] = h
		}
	}
	return grid, overlay, nil
}

// OverlayHijriMonth returns the Hijri month grid for the specified year
// and month together with the Gregorian date of every day in it.
func OverlayHijriMonth(year int, month Month, opts ...CalendarOption) (datetime.MonthGrid, GregorianOverlay, error) {
	o, err := newCalendarOptions(opts)
	if err != nil {
		return nil, nil, err
	}
	grid, err := monthCalendar(year, month, o)
	if err != nil {
		return nil, nil, err
	}
	overlay := make(GregorianOverlay, len(grid))
	for w, week := range grid {
		for c, day := range week {
			if day == 0 {
				continue
			}
			g, err := HijriToGregorian(Date{Year: year, Month: month, Day: day, Adjust: o.adjust})
			if err != nil {
				return nil, nil, err
			}
			overlay[w][c] = g
		}
	}
	return grid, overlay, nil
}

// YearMonth identifies a month in a given year of either calendar.
type YearMonth struct {
	Year  int
	Month int
}

// MonthsSpanned returns the distinct Hijri months that the overlay
// spans in order of appearance.
func (ho HijriOverlay) MonthsSpanned() []YearMonth {
	var ym []YearMonth
	seen := map[YearMonth]struct{}{}
	for _, week := range ho {
		for _, d := range week {
			if d.IsZero() {
				continue
			}
			k := YearMonth{Year: d.Year, Month: int(d.Month)}
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			ym = append(ym, k)
		}
	}
	return ym
}

// Dates returns the non-empty cells of the overlay in order.
func (ho HijriOverlay) Dates() []Date {
	var dates []Date
	for _, week := range ho {
		for _, d := range week {
			if !d.IsZero() {
				dates = append(dates, d)
			}
		}
	}
	return dates
}

// MonthsSpanned returns the distinct Gregorian months that the overlay
// spans in order of appearance.
func (gro GregorianOverlay) MonthsSpanned() []YearMonth {
	var ym []YearMonth
	seen := map[YearMonth]struct{}{}
	for _, week := range gro {
		for _, d := range week {
			if d == (datetime.CalendarDate{}) {
				continue
			}
			k := YearMonth{Year: d.Year, Month: int(d.Month)}
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			ym = append(ym, k)
		}
	}
	return ym
}

// Dates returns the non-empty cells of the overlay in order.
func (gro GregorianOverlay) Dates() []datetime.CalendarDate {
	var dates []datetime.CalendarDate
	for _, week := range gro {
		for _, d := range week {
			if d != (datetime.CalendarDate{}) {
				dates = append(dates, d)
			}
		}
	}
	return dates
}
