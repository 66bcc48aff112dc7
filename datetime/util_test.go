// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime_test

import (
	"cloudeng.io/multicalendar/datetime"
)

func newCalendarDate(year, month, day int) datetime.CalendarDate {
	return datetime.CalendarDate{Year: year, Month: datetime.Month(month), Day: day}
}

func week(days ...int) [7]int {
	var w [7]int
	copy(w[:], days)
	return w
}
