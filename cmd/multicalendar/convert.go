// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/multicalendar/datetime"
	"cloudeng.io/multicalendar/datetime/hijri"
	"cloudeng.io/multicalendar/datetime/jawa"
	"gopkg.in/yaml.v3"
)

type conversion struct {
	Gregorian  string `yaml:"gregorian"`
	Hijri      string `yaml:"hijri"`
	HijriMonth string `yaml:"hijri_month"`
	JulianDay  int    `yaml:"julian_day"`
	Weekday    string `yaml:"weekday"`
	Pasaran    string `yaml:"pasaran"`
	Adjust     int    `yaml:"adjust,omitempty"`
}

func newConversion(g datetime.CalendarDate, h hijri.Date) (conversion, error) {
	jd, err := h.JulianDay()
	if err != nil {
		return conversion{}, err
	}
	p, err := jawa.PasaranOf(g)
	if err != nil {
		return conversion{}, err
	}
	return conversion{
		Gregorian:  g.String(),
		Hijri:      h.String(),
		HijriMonth: h.Month.String(),
		JulianDay:  jd.JD,
		Weekday:    g.Weekday().String(),
		Pasaran:    p.String(),
		Adjust:     h.Adjust,
	}, nil
}

func writeYAML(out io.Writer, v any) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// gregorianArgs parses each argument as a comma separated list of dates,
// failures are appended to errs. Repeated dates are reported once.
func gregorianArgs(args []string, errs *errors.M) datetime.CalendarDateList {
	var dates datetime.CalendarDateList
	for _, arg := range args {
		var l datetime.CalendarDateList
		if err := l.Parse(arg); err != nil {
			errs.Append(fmt.Errorf("%v: %w", arg, err))
			continue
		}
		for _, d := range l {
			if !dates.Contains(d) {
				dates = append(dates, d)
			}
		}
	}
	return dates
}

func toHijri(ctx context.Context, s settings, args []string) error {
	var errs errors.M
	dates := gregorianArgs(args, &errs)
	results := make([]conversion, 0, len(dates))
	for _, g := range dates {
		h, err := hijri.GregorianToHijri(g, s.adjust)
		if err != nil {
			errs.Append(fmt.Errorf("%v: %w", g, err))
			continue
		}
		c, err := newConversion(g, h)
		if err != nil {
			errs.Append(fmt.Errorf("%v: %w", g, err))
			continue
		}
		ctxlog.Logger(ctx).Debug("converted", "gregorian", c.Gregorian, "hijri", c.Hijri)
		results = append(results, c)
	}
	if len(results) > 0 {
		errs.Append(writeYAML(s.out, results))
	}
	return errs.Err()
}

func toGregorian(ctx context.Context, s settings, args []string) error {
	var errs errors.M
	results := make([]conversion, 0, len(args))
	for _, arg := range args {
		h, err := hijri.ParseDate(arg)
		if err != nil {
			errs.Append(fmt.Errorf("%v: %w", arg, err))
			continue
		}
		h.Adjust = s.adjust
		g, err := h.Gregorian()
		if err != nil {
			errs.Append(fmt.Errorf("%v: %w", arg, err))
			continue
		}
		c, err := newConversion(g, h)
		if err != nil {
			errs.Append(fmt.Errorf("%v: %w", arg, err))
			continue
		}
		ctxlog.Logger(ctx).Debug("converted", "hijri", c.Hijri, "gregorian", c.Gregorian)
		results = append(results, c)
	}
	if len(results) > 0 {
		errs.Append(writeYAML(s.out, results))
	}
	return errs.Err()
}

type pasaranResult struct {
	Date    string `yaml:"date"`
	Weekday string `yaml:"weekday"`
	Pasaran string `yaml:"pasaran"`
}

func pasaran(ctx context.Context, s settings, args []string) error {
	var errs errors.M
	dates := gregorianArgs(args, &errs)
	results := make([]pasaranResult, 0, len(dates))
	for _, g := range dates {
		p, err := jawa.PasaranOf(g)
		if err != nil {
			errs.Append(fmt.Errorf("%v: %w", g, err))
			continue
		}
		results = append(results, pasaranResult{
			Date:    g.String(),
			Weekday: g.Weekday().String(),
			Pasaran: p.String(),
		})
	}
	if len(results) > 0 {
		errs.Append(writeYAML(s.out, results))
	}
	return errs.Err()
}
