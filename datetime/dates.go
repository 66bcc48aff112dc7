// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package datetime provides support for working with proleptic Gregorian
// civil dates: parsing, validation, ordinal day arithmetic and month
// week-grids. It is the civil side of the conversions implemented by
// the hijri and jawa packages.
package datetime

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Month as an int, 1 for January through 12 for December.
type Month time.Month

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("invalid month: %d", n)
	}
	return Month(n), nil
}

// ParseMonth parses a month name of the form "Jan" to "Dec" or any other longer
// prefixes of "January" to "December" in either lower or upper case.
func ParseMonth(val string) (Month, error) {
	lc := strings.ToLower(val)
	if len(lc) < 3 {
		return 0, fmt.Errorf("invalid month: %s", val)
	}
	for i := range months {
		if strings.HasPrefix(months[i], lc) {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("invalid month: %s", val)
}

// Parse parses a month in either numeric or month name format.
func (m *Month) Parse(val string) error {
	if n, err := ParseNumericMonth(val); err == nil {
		*m = n
		return nil
	}
	n, err := ParseMonth(val)
	if err != nil {
		return err
	}
	*m = n
	return nil
}

// Valid returns true if m is in the range 1-12.
func (m Month) Valid() bool {
	return m >= 1 && m <= 12
}

func (m Month) String() string {
	return time.Month(m).String()
}

type MonthList []Month

// Parse val in formats 'Jan,12,Nov'. The parsed list is sorted
// and without duplicates.
func (ml *MonthList) Parse(val string) error {
	if len(val) == 0 {
		return fmt.Errorf("empty value")
	}
	parts := strings.Split(strings.ReplaceAll(val, " ", ""), ",")
	drs := make([]Month, 0, len(parts))
	seen := map[Month]struct{}{}
	for _, p := range parts {
		var m Month
		if err := m.Parse(p); err != nil {
			return fmt.Errorf("invalid month: %s", p)
		}
		if _, ok := seen[m]; ok {
			continue
		}
		drs = append(drs, m)
		seen[m] = struct{}{}
	}
	slices.Sort(drs)
	*ml = drs
	return nil
}

// ParseWeekday parses a weekday name, or any prefix of at least three
// letters of it, in either lower or upper case. Numeric values 0-6 are
// accepted with 0 being Sunday.
func ParseWeekday(val string) (time.Weekday, error) {
	if n, err := strconv.Atoi(val); err == nil {
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("invalid weekday: %d", n)
		}
		return time.Weekday(n), nil
	}
	lc := strings.ToLower(val)
	if len(lc) >= 3 {
		for d := time.Sunday; d <= time.Saturday; d++ {
			if strings.HasPrefix(strings.ToLower(d.String()), lc) {
				return d, nil
			}
		}
	}
	return 0, fmt.Errorf("invalid weekday: %s", val)
}
