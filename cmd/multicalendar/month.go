// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/multicalendar/datetime"
	"cloudeng.io/multicalendar/datetime/hijri"
)

type overlayDay struct {
	Day  int    `yaml:"day"`
	Date string `yaml:"date"`
}

type monthResult struct {
	Calendar string       `yaml:"calendar"`
	Year     int          `yaml:"year"`
	Month    int          `yaml:"month"`
	Name     string       `yaml:"name"`
	Adjust   int          `yaml:"adjust,omitempty"`
	Header   string       `yaml:"header"`
	Weeks    []string     `yaml:"weeks"`
	Filled   []string     `yaml:"filled"`
	Spans    []string     `yaml:"spans"`
	Overlay  []overlayDay `yaml:"overlay"`
}

func weekdayHeader(first time.Weekday) string {
	names := make([]string, 7)
	for i := range names {
		names[i] = fmt.Sprintf("%3s", ((first + time.Weekday(i)) % 7).String()[:2])
	}
	return strings.Join(names, "")
}

func formatWeeks(grid datetime.MonthGrid) []string {
	weeks := make([]string, len(grid))
	for i, week := range grid {
		var b strings.Builder
		for _, d := range week {
			if d == 0 {
				b.WriteString("   ")
				continue
			}
			fmt.Fprintf(&b, "%3d", d)
		}
		weeks[i] = b.String()
	}
	return weeks
}

func formatSpans(spans []hijri.YearMonth) []string {
	s := make([]string, len(spans))
	for i, ym := range spans {
		s[i] = fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
	}
	return s
}

func parseYear(val string) (int, error) {
	year, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid year: %q: %w", val, err)
	}
	return year, nil
}

func hijriMonthResult(year int, month hijri.Month, s settings) (monthResult, error) {
	grid, overlay, err := hijri.OverlayHijriMonth(year, month, s.calendarOptions()...)
	if err != nil {
		return monthResult{}, err
	}
	py, pm := year, month-1
	if pm == 0 {
		py, pm = year-1, 12
	}
	previous, err := hijri.MonthLength(py, pm, s.adjust)
	if err != nil {
		return monthResult{}, err
	}
	res := monthResult{
		Calendar: "hijri",
		Year:     year,
		Month:    int(month),
		Name:     month.String(),
		Adjust:   s.adjust,
		Header:   weekdayHeader(s.first),
		Weeks:    formatWeeks(grid),
		Filled:   formatWeeks(grid.Fill(previous)),
		Spans:    formatSpans(overlay.MonthsSpanned()),
	}
	for i, d := range overlay.Dates() {
		res.Overlay = append(res.Overlay, overlayDay{Day: i + 1, Date: d.String()})
	}
	return res, nil
}

func gregorianMonthResult(year int, month datetime.Month, s settings) (monthResult, error) {
	grid, overlay, err := hijri.OverlayGregorianMonth(year, month, s.calendarOptions()...)
	if err != nil {
		return monthResult{}, err
	}
	previous := 31 // December
	if month > 1 {
		previous = datetime.DaysInMonth(year, month-1)
	}
	res := monthResult{
		Calendar: "gregorian",
		Year:     year,
		Month:    int(month),
		Name:     month.String(),
		Adjust:   s.adjust,
		Header:   weekdayHeader(s.first),
		Weeks:    formatWeeks(grid),
		Filled:   formatWeeks(grid.Fill(previous)),
		Spans:    formatSpans(overlay.MonthsSpanned()),
	}
	for i, d := range overlay.Dates() {
		res.Overlay = append(res.Overlay, overlayDay{Day: i + 1, Date: d.String()})
	}
	return res, nil
}

// parseHijriMonths parses a comma separated list of Hijri months, the
// result is sorted and without duplicates.
func parseHijriMonths(val string) ([]hijri.Month, error) {
	var months []hijri.Month
	for _, p := range strings.Split(val, ",") {
		var m hijri.Month
		if err := m.Parse(strings.TrimSpace(p)); err != nil {
			return nil, err
		}
		if !slices.Contains(months, m) {
			months = append(months, m)
		}
	}
	slices.Sort(months)
	return months, nil
}

func hijriMonths(ctx context.Context, s settings, year int, months []hijri.Month) error {
	results := make([]monthResult, 0, len(months))
	for _, month := range months {
		res, err := hijriMonthResult(year, month, s)
		if err != nil {
			return err
		}
		ctxlog.Logger(ctx).Debug("hijri month", "year", year, "month", month.String(), "weeks", len(res.Weeks))
		results = append(results, res)
	}
	return writeYAML(s.out, results)
}

func gregorianMonths(ctx context.Context, s settings, year int, months datetime.MonthList) error {
	results := make([]monthResult, 0, len(months))
	for _, month := range months {
		res, err := gregorianMonthResult(year, month, s)
		if err != nil {
			return err
		}
		ctxlog.Logger(ctx).Debug("gregorian month", "year", year, "month", month.String(), "weeks", len(res.Weeks))
		results = append(results, res)
	}
	return writeYAML(s.out, results)
}

func hijriMonth(ctx context.Context, s settings, args []string) error {
	year, err := parseYear(args[0])
	if err != nil {
		return err
	}
	months, err := parseHijriMonths(args[1])
	if err != nil {
		return err
	}
	return hijriMonths(ctx, s, year, months)
}

func gregorianMonth(ctx context.Context, s settings, args []string) error {
	year, err := parseYear(args[0])
	if err != nil {
		return err
	}
	var months datetime.MonthList
	if err := months.Parse(args[1]); err != nil {
		return err
	}
	return gregorianMonths(ctx, s, year, months)
}

func hijriYear(ctx context.Context, s settings, args []string) error {
	year, err := parseYear(args[0])
	if err != nil {
		return err
	}
	months := make([]hijri.Month, 12)
	for i := range months {
		months[i] = hijri.Month(i + 1)
	}
	return hijriMonths(ctx, s, year, months)
}

func gregorianYear(ctx context.Context, s settings, args []string) error {
	year, err := parseYear(args[0])
	if err != nil {
		return err
	}
	months := make(datetime.MonthList, 12)
	for i := range months {
		months[i] = datetime.Month(i + 1)
	}
	return gregorianMonths(ctx, s, year, months)
}
