// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package hijri_test

import (
	"errors"
	"testing"
	"time"

	"cloudeng.io/multicalendar/datetime"
	"cloudeng.io/multicalendar/datetime/hijri"
)

func ncd(year, month, day int) datetime.CalendarDate {
	return datetime.CalendarDate{Year: year, Month: datetime.Month(month), Day: day}
}

func nhd(year, month, day int) hijri.Date {
	return hijri.Date{Year: year, Month: hijri.Month(month), Day: day}
}

func TestKnownDates(t *testing.T) {
	for _, tc := range []struct {
		gregorian datetime.CalendarDate
		hijri     hijri.Date
		jd        int
	}{
		{ncd(2024, 3, 11), nhd(1445, 9, 1), 2460380},
		{ncd(2022, 7, 30), nhd(1444, 1, 1), 2459790},
		{ncd(2000, 1, 1), nhd(1420, 9, 24), 2451544},
		{ncd(622, 7, 19), nhd(1, 1, 1), 1948439},
	} {
		jd, err := hijri.GregorianToJulianDay(tc.gregorian, 0)
		if err != nil {
			t.Errorf("%v: %v", tc.gregorian, err)
			continue
		}
		if got, want := jd.JD, tc.jd; got != want {
			t.Errorf("%v: got %v, want %v", tc.gregorian, got, want)
		}
		h, err := hijri.GregorianToHijri(tc.gregorian, 0)
		if err != nil {
			t.Errorf("%v: %v", tc.gregorian, err)
			continue
		}
		if got, want := h, tc.hijri; got != want {
			t.Errorf("%v: got %v, want %v", tc.gregorian, got, want)
		}
		hjd, err := hijri.HijriToJulianDay(tc.hijri)
		if err != nil {
			t.Errorf("%v: %v", tc.hijri, err)
			continue
		}
		if got, want := hjd.JD, tc.jd; got != want {
			t.Errorf("%v: got %v, want %v", tc.hijri, got, want)
		}
		g, err := hijri.HijriToGregorian(tc.hijri)
		if err != nil {
			t.Errorf("%v: %v", tc.hijri, err)
			continue
		}
		if got, want := g, tc.gregorian; got != want {
			t.Errorf("%v: got %v, want %v", tc.hijri, got, want)
		}
	}
}

func TestRamadan1445(t *testing.T) {
	h, err := hijri.GregorianToHijri(ncd(2024, 3, 11), 0)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := h.String(), "1445-09-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	wd, err := hijri.Weekday(h)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := wd, time.Monday; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	n, err := hijri.MonthLength(1444, 9, 0)
	if err != nil {
		t.Fatal(err)
	}
	if n != 29 && n != 30 {
		t.Errorf("unexpected length for Ramadan 1444: %v", n)
	}
}

func TestAdjust(t *testing.T) {
	// A positive adjust starts the Hijri day later.
	h, err := hijri.GregorianToHijri(ncd(2024, 3, 11), 1)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := h, (hijri.Date{Year: 1445, Month: 8, Day: 29, Adjust: 1}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	g, err := hijri.HijriToGregorian(hijri.Date{Year: 1445, Month: 9, Day: 1, Adjust: 1})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := g, ncd(2024, 3, 12); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	g, err = hijri.Date{Year: 1445, Month: 9, Day: 1, Adjust: -1}.Gregorian()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := g, ncd(2024, 3, 10); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// The weekday follows the Gregorian date.
	wd, err := hijri.Weekday(hijri.Date{Year: 1445, Month: 9, Day: 1, Adjust: 1})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := wd, time.Tuesday; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, adjust := range []int{-2, -1, 1, 2} {
		n, err := hijri.MonthLength(1445, 9, adjust)
		if err != nil {
			t.Fatal(err)
		}
		m, _ := hijri.MonthLength(1445, 9, 0)
		if got, want := n, m; got != want {
			t.Errorf("%v: got %v, want %v", adjust, got, want)
		}
	}
}

func TestGregorianRoundTrip(t *testing.T) {
	for _, adjust := range []int{-1, 0, 1} {
		for _, year := range []int{1, 2, 622, 1582, 1900, 1999, 2000, 2023, 2024, 2100, 9998} {
			for d := ncd(year, 1, 1); d.Year == year; d = d.Tomorrow() {
				jd, err := hijri.GregorianToJulianDay(d, adjust)
				if err != nil {
					t.Fatalf("%v: %v", d, err)
				}
				g, err := hijri.JulianDayToGregorian(jd)
				if err != nil {
					t.Fatalf("%v: %v", d, err)
				}
				if got, want := g, d; got != want {
					t.Errorf("adjust %v: got %v, want %v", adjust, got, want)
				}
				if got, want := jd.Weekday(), d.Weekday(); got != want {
					t.Errorf("adjust %v: %v: got %v, want %v", adjust, d, got, want)
				}
				h := jd.Hijri()
				g, err = h.Gregorian()
				if err != nil {
					t.Fatalf("%v: %v", h, err)
				}
				if (h.Year%30+30)%30 == 16 {
					g = g.Tomorrow()
				}
				if got, want := g, d; got != want {
					t.Errorf("adjust %v: %v: got %v, want %v", adjust, h, got, want)
				}
			}
		}
	}
}

// previousDay returns the date that JulianDayToHijri yields for dates in
// years that are 16 (mod 30).
func previousDay(t *testing.T, h hijri.Date) hijri.Date {
	switch {
	case h.Day > 1:
		h.Day--
	case h.Month > 1:
		h.Month--
		n, err := hijri.MonthLength(h.Year, h.Month, h.Adjust)
		if err != nil {
			t.Fatal(err)
		}
		h.Day = n
	default:
		// The preceding year is a leap year for JulianDayToHijri.
		h.Year--
		h.Month = 12
		h.Day = 30
	}
	return h
}

func TestHijriRoundTrip(t *testing.T) {
	drift := 0
	for _, adjust := range []int{-1, 0, 1} {
		for year := 1; year <= 1600; year++ {
			if year > 60 && year < 1380 && year%7 != 0 {
				continue
			}
			for month := hijri.Month(1); month <= 12; month++ {
				n, err := hijri.MonthLength(year, month, adjust)
				if err != nil {
					t.Fatal(err)
				}
				if n != 29 && n != 30 {
					t.Errorf("%v-%v: unexpected month length %v", year, month, n)
				}
				for day := 1; day <= n; day++ {
					h := hijri.Date{Year: year, Month: month, Day: day, Adjust: adjust}
					jd, err := hijri.HijriToJulianDay(h)
					if err != nil {
						t.Fatal(err)
					}
					want := h
					if year%30 == 16 {
						want = previousDay(t, h)
						drift++
					}
					if got := hijri.JulianDayToHijri(jd); got != want {
						t.Errorf("got %v, want %v", got, want)
					}
					wd, err := hijri.Weekday(h)
					if err != nil {
						t.Fatal(err)
					}
					if wd < time.Sunday || wd > time.Saturday {
						t.Errorf("%v: weekday out of range: %v", h, wd)
					}
				}
			}
		}
	}
	if drift == 0 {
		t.Errorf("expected some dates to drift")
	}
}

func TestYearLengths(t *testing.T) {
	leaps := []int{2, 5, 7, 10, 13, 16, 18, 21, 24, 26, 29}
	for cycle := 0; cycle < 50; cycle++ {
		count := 0
		for i := 1; i <= 30; i++ {
			year := cycle*30 + i
			total := 0
			for m := hijri.Month(1); m <= 12; m++ {
				n, err := hijri.MonthLength(year, m, 0)
				if err != nil {
					t.Fatal(err)
				}
				total += n
			}
			if got, want := total, hijri.DaysInYear(year); got != want {
				t.Errorf("%v: got %v, want %v", year, got, want)
			}
			if hijri.IsLeap(year) {
				count++
			}
			isLeap := false
			for _, l := range leaps {
				if i == l {
					isLeap = true
				}
			}
			if got, want := hijri.IsLeap(year), isLeap; got != want {
				t.Errorf("%v: got %v, want %v", year, got, want)
			}
		}
		if got, want := count, 11; got != want {
			t.Errorf("cycle %v: got %v, want %v", cycle, got, want)
		}
	}
}

func TestErrors(t *testing.T) {
	for _, tc := range []hijri.Date{
		nhd(1445, 0, 1),
		nhd(1445, 13, 1),
		nhd(1445, -1, 1),
	} {
		if _, err := hijri.HijriToJulianDay(tc); !errors.Is(err, hijri.ErrInvalidHijriDate) {
			t.Errorf("%v: expected ErrInvalidHijriDate, got %v", tc, err)
		}
		if _, err := hijri.HijriToGregorian(tc); !errors.Is(err, hijri.ErrInvalidHijriDate) {
			t.Errorf("%v: expected ErrInvalidHijriDate, got %v", tc, err)
		}
		if _, err := hijri.Weekday(tc); !errors.Is(err, hijri.ErrInvalidHijriDate) {
			t.Errorf("%v: expected ErrInvalidHijriDate, got %v", tc, err)
		}
		if _, err := hijri.MonthLength(tc.Year, tc.Month, 0); !errors.Is(err, hijri.ErrInvalidHijriDate) {
			t.Errorf("%v: expected ErrInvalidHijriDate, got %v", tc, err)
		}
	}

	for _, tc := range []datetime.CalendarDate{
		ncd(2024, 13, 1),
		ncd(2024, 1, 32),
		ncd(2023, 2, 29),
	} {
		if _, err := hijri.GregorianToJulianDay(tc, 0); !errors.Is(err, datetime.ErrInvalidDate) {
			t.Errorf("%v: expected ErrInvalidDate, got %v", tc, err)
		}
		if _, err := hijri.GregorianToHijri(tc, 0); !errors.Is(err, datetime.ErrInvalidDate) {
			t.Errorf("%v: expected ErrInvalidDate, got %v", tc, err)
		}
	}

	if _, err := hijri.JulianDayToGregorian(hijri.JulianDay{JD: 0}); !errors.Is(err, datetime.ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got %v", err)
	}

	// Days are loose and roll into the following month.
	h, err := hijri.Date{Year: 1445, Month: 9, Day: 31}.Gregorian()
	if err != nil {
		t.Fatal(err)
	}
	next, _ := nhd(1445, 10, 1).Gregorian()
	if got, want := h, next; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseDate(t *testing.T) {
	d, err := hijri.ParseDate("1445-09-01")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d, nhd(1445, 9, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, tc := range []string{"", "1445-13-01", "1445-09-31", "1445-09-00", "1445-09", "x-1-1"} {
		if _, err := hijri.ParseDate(tc); !errors.Is(err, hijri.ErrInvalidHijriDate) {
			t.Errorf("%q: expected ErrInvalidHijriDate, got %v", tc, err)
		}
	}
}

func TestMonthNames(t *testing.T) {
	if got, want := hijri.Month(9).String(), "Ramadan"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := hijri.Month(1).String(), "Muharram"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := hijri.Month(13).String(), "Month(13)"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// Dates always format numerically.
	if got, want := nhd(1445, 12, 3).String(), "1445-12-03"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseMonth(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want hijri.Month
	}{
		{"9", 9},
		{"ramadan", 9},
		{"Rabi'ul-Awal", 3},
		{"rabiulawal", 3},
		{"DZULHIJAH", 12},
	} {
		var m hijri.Month
		if err := m.Parse(tc.in); err != nil {
			t.Errorf("%v: %v", tc.in, err)
			continue
		}
		if got, want := m, tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.in, got, want)
		}
	}
	for _, tc := range []string{"0", "13", "ram", ""} {
		var m hijri.Month
		if err := m.Parse(tc); !errors.Is(err, hijri.ErrInvalidHijriDate) {
			t.Errorf("%q: expected ErrInvalidHijriDate, got %v", tc, err)
		}
	}
}
