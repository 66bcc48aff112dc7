// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is returned, possibly wrapped, for any year, month and day
// combination that is not a valid proleptic Gregorian date in the range
// MinYear to MaxYear.
var ErrInvalidDate = errors.New("invalid date")

// CalendarDate represents a proleptic Gregorian civil date with a year,
// month and day. It carries no time of day or location.
type CalendarDate struct {
	Year  int
	Month Month
	Day   int
}

// NewCalendarDate returns the CalendarDate for the year, month and day
// of the supplied time in its own location.
func NewCalendarDate(when time.Time) CalendarDate {
	return CalendarDate{Year: when.Year(), Month: Month(when.Month()), Day: when.Day()}
}

func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year, cd.Month, cd.Day)
}

// Validate returns an error wrapping ErrInvalidDate if cd is not
// a valid date.
func (cd CalendarDate) Validate() error {
	if cd.Year < MinYear || cd.Year > MaxYear {
		return fmt.Errorf("%w: year %d out of range %d-%d", ErrInvalidDate, cd.Year, MinYear, MaxYear)
	}
	if !cd.Month.Valid() {
		return fmt.Errorf("%w: month %d out of range 1-12", ErrInvalidDate, cd.Month)
	}
	if dm := DaysInMonth(cd.Year, cd.Month); cd.Day < 1 || cd.Day > dm {
		return fmt.Errorf("%w: day %d out of range 1-%d for %v %d", ErrInvalidDate, cd.Day, dm, cd.Month, cd.Year)
	}
	return nil
}

// Before returns true if cd is earlier than other.
func (cd CalendarDate) Before(other CalendarDate) bool {
	if cd.Year != other.Year {
		return cd.Year < other.Year
	}
	if cd.Month != other.Month {
		return cd.Month < other.Month
	}
	return cd.Day < other.Day
}

// Time returns the midnight UTC time.Time for cd.
func (cd CalendarDate) Time() time.Time {
	return time.Date(cd.Year, time.Month(cd.Month), cd.Day, 0, 0, 0, 0, time.UTC)
}

const expectedCalendarDateFormats = "2006-01-02 or 01/02/2006"

// ParseCalendarDate parses a date in formats '2006-01-02' or '01/02/2006'
// with error checking for a valid year, month and day.
func ParseCalendarDate(val string) (CalendarDate, error) {
	var parts []string
	var y, m, d int
	switch {
	case strings.Contains(val, "-"):
		parts = strings.Split(val, "-")
		y, m, d = 0, 1, 2
	case strings.Contains(val, "/"):
		parts = strings.Split(val, "/")
		m, d, y = 0, 1, 2
	default:
		return CalendarDate{}, fmt.Errorf("%w: %q, expected %s", ErrInvalidDate, val, expectedCalendarDateFormats)
	}
	if len(parts) != 3 {
		return CalendarDate{}, fmt.Errorf("%w: %q, expected %s", ErrInvalidDate, val, expectedCalendarDateFormats)
	}
	year, err := strconv.Atoi(parts[y])
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: invalid year: %s", ErrInvalidDate, parts[y])
	}
	month, err := ParseNumericMonth(parts[m])
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	day, err := strconv.Atoi(parts[d])
	if err != nil {
		return CalendarDate{}, fmt.Errorf("%w: invalid day: %s", ErrInvalidDate, parts[d])
	}
	cd := CalendarDate{Year: year, Month: month, Day: day}
	if err := cd.Validate(); err != nil {
		return CalendarDate{}, err
	}
	return cd, nil
}

// Parse is like ParseCalendarDate but sets cd.
func (cd *CalendarDate) Parse(val string) error {
	d, err := ParseCalendarDate(val)
	if err != nil {
		return err
	}
	*cd = d
	return nil
}

// DayOfYear returns the day of the year, 1-365 for non-leap years and
// 1-366 for leap years. The date is not validated and a month outside
// of 1-12 is clamped rather than causing a panic, call Validate first
// for a meaningful result.
func (cd CalendarDate) DayOfYear() int {
	return daysBeforeMonth(cd.Year, cd.Month) + cd.Day
}

// Ordinal returns the proleptic Gregorian ordinal of cd where
// 0001-01-01 is day 1. The date is not validated.
func (cd CalendarDate) Ordinal() int {
	return daysBeforeYear(cd.Year) + cd.DayOfYear()
}

// CalendarDateFromOrdinal returns the CalendarDate for the supplied
// proleptic Gregorian ordinal as per CalendarDate.Ordinal. Ordinals
// outside of MinYear-01-01 to MaxYear-12-31 return an error wrapping
// ErrInvalidDate.
func CalendarDateFromOrdinal(ordinal int) (CalendarDate, error) {
	if ordinal < 1 || ordinal > maxOrdinal {
		return CalendarDate{}, fmt.Errorf("%w: ordinal %d out of range 1-%d", ErrInvalidDate, ordinal, maxOrdinal)
	}
	n := ordinal - 1
	n400, n := n/daysIn400Years, n%daysIn400Years
	n100, n := n/daysIn100Years, n%daysIn100Years
	n4, n := n/daysIn4Years, n%daysIn4Years
	n1, n := n/365, n%365
	year := n400*400 + n100*100 + n4*4 + n1 + 1
	if n1 == 4 || n100 == 4 {
		// Last day of a leap year that closes a 4 or 400 year cycle.
		return CalendarDate{Year: year - 1, Month: 12, Day: 31}, nil
	}
	dim := daysInMonthForYear(year)
	for month := 0; month < 12; month++ {
		if n < dim[month] {
			return CalendarDate{Year: year, Month: Month(month + 1), Day: n + 1}, nil
		}
		n -= dim[month]
	}
	panic("unreachable")
}

// Weekday returns the day of the week for cd. As for Ordinal, cd
// should be validated first.
func (cd CalendarDate) Weekday() time.Weekday {
	// 0001-01-01 was a Monday.
	return time.Weekday(cd.Ordinal() % 7)
}

// Tomorrow returns the date of the next day, Dec 31 wraps to Jan 1 of
// the following year.
func (cd CalendarDate) Tomorrow() CalendarDate {
	if cd.Month == 12 && cd.Day >= 31 {
		return CalendarDate{Year: cd.Year + 1, Month: 1, Day: 1}
	}
	if cd.Day >= DaysInMonth(cd.Year, cd.Month) {
		return CalendarDate{Year: cd.Year, Month: cd.Month + 1, Day: 1}
	}
	cd.Day++
	return cd
}

// Yesterday returns the date of the previous day, Jan 1 wraps to Dec 31
// of the previous year.
func (cd CalendarDate) Yesterday() CalendarDate {
	if cd.Month == 1 && cd.Day <= 1 {
		return CalendarDate{Year: cd.Year - 1, Month: 12, Day: 31}
	}
	if cd.Day <= 1 {
		m := cd.Month - 1
		return CalendarDate{Year: cd.Year, Month: m, Day: DaysInMonth(cd.Year, m)}
	}
	cd.Day--
	return cd
}

// DaysSince returns the number of days from other to cd, which is
// negative if cd is before other.
func (cd CalendarDate) DaysSince(other CalendarDate) int {
	return cd.Ordinal() - other.Ordinal()
}

type CalendarDateList []CalendarDate

func (cdl CalendarDateList) String() string {
	var out strings.Builder
	for i, d := range cdl {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}

// Parse a comma separated list of CalendarDates.
func (cdl *CalendarDateList) Parse(val string) error {
	if len(val) == 0 {
		return nil
	}
	parts := strings.Split(val, ",")
	d := make(CalendarDateList, 0, len(parts))
	for _, part := range parts {
		var date CalendarDate
		if err := date.Parse(strings.TrimSpace(part)); err != nil {
			return err
		}
		d = append(d, date)
	}
	*cdl = d
	return nil
}

// Contains returns true if d is in the list.
func (cdl CalendarDateList) Contains(d CalendarDate) bool {
	for _, cd := range cdl {
		if cd == d {
			return true
		}
	}
	return false
}
