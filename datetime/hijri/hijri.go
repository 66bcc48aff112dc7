// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package hijri converts dates between the proleptic Gregorian calendar, the
// Julian Day and the tabular (arithmetic) Hijri calendar.
//
// All conversions pass through a JulianDay. The JD value used throughout
// is the astronomical Julian Day Number of the civil date less one, which
// is the scale on which both the Kuwaiti algorithm (JulianDayToHijri) and the
// closed form tabular formula (HijriToJulianDay) agree. Adjust is a caller
// supplied calibration, in days, for regional sighting differences. It is
// carried by JulianDay and Date and applied only when converting to or from
// a Gregorian date: a positive adjust makes every Hijri day begin adjust
// days later on the Gregorian calendar.
//
// The two halves of the tabular calculation disagree on which year of the
// 30 year cycle is the leap year in one case: the Kuwaiti algorithm treats
// years 15 (mod 30) as leap years whereas the closed form treats years
// 16 (mod 30) as leap years. As a result every date in a year that is
// 16 (mod 30) converts back from a JulianDay one day earlier than it was
// specified. All other dates round trip exactly.
package hijri

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"cloudeng.io/multicalendar/datetime"
)

// ErrInvalidHijriDate is returned, possibly wrapped, for Hijri dates with
// a month outside of the range 1-12. Days are not range checked, out of
// range days roll into adjacent months.
var ErrInvalidHijriDate = errors.New("invalid hijri date")

const (
	// gregorianEpoch relates the proleptic Gregorian ordinal to JD.
	gregorianEpoch = 1721425

	// Kuwaiti algorithm constants.
	kuwaitiEpoch  = 1948084
	cycleDays     = 10631
	meanYear      = 10631.0 / 30.0
	meanMonth     = 29.5
	shift         = 8.01 / 60.0
	monthRounding = 28.5001

	// tabularEpoch is the JD offset used by HijriToJulianDay.
	tabularEpoch = 1948440 - 386
)

// Month as an int, 1 for Muharram through 12 for Dzulhijah.
type Month int

// Valid returns true if m is in the range 1-12.
func (m Month) Valid() bool {
	return m >= 1 && m <= 12
}

var monthNames = [...]string{
	"Muharram", "Shafar", "Rabi'ul-Awal",
	"Rabi'ul-Akhir", "Jumadil-Awal", "Jumadil-Akhir",
	"Rajab", "Sya'ban", "Ramadan",
	"Syawal", "Dzulqaidah", "Dzulhijah",
}

// String returns the transliterated name of the month.
func (m Month) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m-1]
}

// Parse parses a month in either numeric (1-12) or name format, names
// are matched ignoring case and punctuation.
func (m *Month) Parse(val string) error {
	if n, err := strconv.Atoi(val); err == nil {
		if !Month(n).Valid() {
			return fmt.Errorf("%w: month %d out of range 1-12", ErrInvalidHijriDate, n)
		}
		*m = Month(n)
		return nil
	}
	key := normalizeName(val)
	for i, name := range monthNames {
		if normalizeName(name) == key {
			*m = Month(i + 1)
			return nil
		}
	}
	return fmt.Errorf("%w: unrecognised month %q", ErrInvalidHijriDate, val)
}

func normalizeName(name string) string {
	return strings.Map(func(r rune) rune {
		if r == '\'' || r == '-' || r == ' ' {
			return -1
		}
		return unicode.ToLower(r)
	}, name)
}

// JulianDay represents a continuous day count together with the
// calibration that applies when it is converted to a Gregorian date.
type JulianDay struct {
	JD     int
	Adjust int
}

// Date represents a date in the tabular Hijri calendar together with
// the calibration that applies when it is converted to a Gregorian date.
type Date struct {
	Year   int
	Month  Month
	Day    int
	Adjust int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Validate returns an error wrapping ErrInvalidHijriDate if the month
// is out of range.
func (d Date) Validate() error {
	if !d.Month.Valid() {
		return fmt.Errorf("%w: month %d out of range 1-12", ErrInvalidHijriDate, d.Month)
	}
	return nil
}

// IsZero returns true for the zero Date, which is used for empty cells in
// overlays.
func (d Date) IsZero() bool {
	return d == Date{}
}

// ParseDate parses a Hijri date in the format '1445-09-01'. The month
// must be in the range 1-12 and the day in the range 1-30.
func ParseDate(val string) (Date, error) {
	parts := strings.Split(val, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q, expected format '1445-09-01'", ErrInvalidHijriDate, val)
	}
	var n [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q: %v", ErrInvalidHijriDate, val, err)
		}
		n[i] = v
	}
	d := Date{Year: n[0], Month: Month(n[1]), Day: n[2]}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	if d.Day < 1 || d.Day > 30 {
		return Date{}, fmt.Errorf("%w: day %d out of range 1-30", ErrInvalidHijriDate, d.Day)
	}
	return d, nil
}

// floorDiv returns the floor of a/b for b > 0.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func floor(f float64) int {
	return int(math.Floor(f))
}

// GregorianToJulianDay returns the JulianDay for the supplied Gregorian date
// with adjust applied. It returns an error wrapping datetime.ErrInvalidDate
// for invalid dates.
func GregorianToJulianDay(date datetime.CalendarDate, adjust int) (JulianDay, error) {
	if err := date.Validate(); err != nil {
		return JulianDay{}, err
	}
	return JulianDay{
		JD:     date.Ordinal() - (adjust + 1) + gregorianEpoch,
		Adjust: adjust,
	}, nil
}

// JulianDayToGregorian is the inverse of GregorianToJulianDay. It returns
// an error wrapping datetime.ErrInvalidDate if the resulting date falls
// outside of the years supported by datetime.CalendarDate.
func JulianDayToGregorian(jd JulianDay) (datetime.CalendarDate, error) {
	return datetime.CalendarDateFromOrdinal(jd.JD - gregorianEpoch + jd.Adjust + 1)
}

// JulianDayToHijri returns the Hijri date for jd using the Kuwaiti
// algorithm. The returned date carries jd's Adjust.
func JulianDayToHijri(jd JulianDay) Date {
	z := jd.JD - kuwaitiEpoch
	cycle := floor(float64(z) / cycleDays)
	z -= cycleDays * cycle
	j := floor((float64(z) - shift) / meanYear)
	year := 30*cycle + j
	z -= floor(float64(j)*meanYear + shift)
	month := floor((float64(z) + monthRounding) / meanMonth)
	if month == 13 {
		// The last day of a leap year overshoots into a 13th month.
		month = 12
	}
	day := z - floor(meanMonth*float64(month)-29)
	return Date{Year: year, Month: Month(month), Day: day, Adjust: jd.Adjust}
}

// HijriToJulianDay returns the JulianDay for date using the closed form
// tabular formula. The returned JulianDay carries date's Adjust.
func HijriToJulianDay(date Date) (JulianDay, error) {
	if err := date.Validate(); err != nil {
		return JulianDay{}, err
	}
	return JulianDay{JD: julianDay(date.Year, int(date.Month), date.Day), Adjust: date.Adjust}, nil
}

func julianDay(year, month, day int) int {
	return floorDiv(11*year+3, 30) + 354*year + 30*month - floorDiv(month-1, 2) + day + tabularEpoch
}

// GregorianToHijri converts a Gregorian date to a Hijri date with the
// given adjust.
func GregorianToHijri(date datetime.CalendarDate, adjust int) (Date, error) {
	jd, err := GregorianToJulianDay(date, adjust)
	if err != nil {
		return Date{}, err
	}
	return JulianDayToHijri(jd), nil
}

// HijriToGregorian converts a Hijri date to a Gregorian date using the
// date's own Adjust.
func HijriToGregorian(date Date) (datetime.CalendarDate, error) {
	jd, err := HijriToJulianDay(date)
	if err != nil {
		return datetime.CalendarDate{}, err
	}
	return JulianDayToGregorian(jd)
}

// FromGregorian is like GregorianToHijri.
func FromGregorian(date datetime.CalendarDate, adjust int) (Date, error) {
	return GregorianToHijri(date, adjust)
}

// Gregorian is like HijriToGregorian.
func (d Date) Gregorian() (datetime.CalendarDate, error) {
	return HijriToGregorian(d)
}

// JulianDay is like HijriToJulianDay.
func (d Date) JulianDay() (JulianDay, error) {
	return HijriToJulianDay(d)
}

// Hijri is like JulianDayToHijri.
func (jd JulianDay) Hijri() Date {
	return JulianDayToHijri(jd)
}

// Gregorian is like JulianDayToGregorian.
func (jd JulianDay) Gregorian() (datetime.CalendarDate, error) {
	return JulianDayToGregorian(jd)
}

// Weekday returns the day of the week of the Gregorian date that jd
// converts to.
func (jd JulianDay) Weekday() time.Weekday {
	w := (jd.JD + jd.Adjust + 2) % 7
	if w < 0 {
		w += 7
	}
	return time.Weekday(w)
}

// Weekday returns the day of the week that date falls on, taking
// its Adjust into account.
func Weekday(date Date) (time.Weekday, error) {
	jd, err := HijriToJulianDay(date)
	if err != nil {
		return 0, err
	}
	return jd.Weekday(), nil
}

// MonthLength returns the number of days, 29 or 30, in the specified
// month of the tabular calendar. Adjust shifts both ends of the month
// equally and so never changes the result.
func MonthLength(year int, month Month, adjust int) (int, error) {
	start, err := HijriToJulianDay(Date{Year: year, Month: month, Day: 1, Adjust: adjust})
	if err != nil {
		return 0, err
	}
	next := Date{Year: year, Month: month + 1, Day: 1, Adjust: adjust}
	if month == 12 {
		next = Date{Year: year + 1, Month: 1, Day: 1, Adjust: adjust}
	}
	end, err := HijriToJulianDay(next)
	if err != nil {
		return 0, err
	}
	return end.JD - start.JD, nil
}

// IsLeap returns true if year has 355 days in the tabular calendar, that
// is if its last month has 30 days.
func IsLeap(year int) bool {
	return ((11*year+14)%30+30)%30 < 11
}

// DaysInYear returns 355 for leap years and 354 otherwise.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 355
	}
	return 354
}
