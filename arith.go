package obix

/*
arith.go implements calendar arithmetic over Abstime: leap year
rules, day/month/year stepping and weekday search.
*/

var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// the Gregorian calendar reform; years before it follow the Julian
// leap rule.
const gregorianReformYear = 1582

/*
IsLeapYear returns true if the specified year (as a four digit
number) is a leap year. Years at or beyond 1582 follow the Gregorian
rule; earlier years follow the Julian rule.
*/
func IsLeapYear(year int) bool {
	if year >= gregorianReformYear {
		return year%4 == 0 && (year%100 != 0 || year%400 == 0)
	}
	return year%4 == 0
}

/*
DaysInMonth returns the number of days within the given month (1-12)
of the given year, leap years taken into consideration. An
[ArgumentError] is returned when month is out of range.
*/
func DaysInMonth(year, month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, errorBadMonth
	}
	return daysIn(year, month), nil
}

// daysIn is the unchecked form of DaysInMonth; month must be 1-12.
func daysIn(year, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysPerMonth[month-1]
}

/*
DaysInYear returns the number of days within the given year, leap
years taken into consideration.
*/
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

/*
Add returns a new instant deltaMillis later than the receiver, in the
same zone.
*/
func (r *Abstime) Add(deltaMillis int64) Abstime {
	return FromMillis(r.millis+deltaMillis, r.zone)
}

/*
Subtract returns a new instant deltaMillis earlier than the receiver,
in the same zone.
*/
func (r *Abstime) Subtract(deltaMillis int64) Abstime {
	return FromMillis(r.millis-deltaMillis, r.zone)
}

/*
Delta returns the millisecond difference between the receiver and t2.
The result is positive when t2 is after the receiver.
*/
func (r *Abstime) Delta(t2 *Abstime) int64 {
	return t2.millis - r.millis
}

/*
TimeOfDay returns a new instance on the same date and in the same
zone as the receiver, but with a different time of day.
*/
func (r *Abstime) TimeOfDay(hour, min, sec, ms int) Abstime {
	f := r.load()
	t, _ := FromFields(f.year, f.month, f.day, hour, min, sec, ms, r.zone)
	return t
}

/*
NextDay returns the same time on the next calendar day, wrapping
month and year at their boundaries.
*/
func (r *Abstime) NextDay() Abstime {
	f := r.load()
	year, month, day := f.year, f.month, f.day

	if day == daysIn(year, month) {
		day = 1
		if month == 12 {
			month = 1
			year++
		} else {
			month++
		}
	} else {
		day++
	}

	return r.rebuild(year, month, day, f)
}

/*
PrevDay returns the same time on the previous calendar day, wrapping
month and year at their boundaries.
*/
func (r *Abstime) PrevDay() Abstime {
	f := r.load()
	year, month, day := f.year, f.month, f.day

	if day == 1 {
		if month == 1 {
			month = 12
			year--
		} else {
			month--
		}
		day = daysIn(year, month)
	} else {
		day--
	}

	return r.rebuild(year, month, day, f)
}

/*
NextMonth returns the same day and time in the next month. If the
receiver's day is the last day of its month, the result's day is the
destination month's last day; otherwise the day is preserved unless
it exceeds the destination month's length, in which case it is
clamped down to that length.
*/
func (r *Abstime) NextMonth() Abstime {
	f := r.load()
	year, month, day := f.year, f.month, f.day

	if month == 12 {
		// no day capping: both Dec and Jan have 31 days
		month = 1
		year++
	} else if day == daysIn(year, month) {
		month++
		day = daysIn(year, month)
	} else {
		month++
		if day > daysIn(year, month) {
			day = daysIn(year, month)
		}
	}

	return r.rebuild(year, month, day, f)
}

/*
PrevMonth returns the same day and time in the previous month, with
the same end-of-month carry and clamping semantics as
[Abstime.NextMonth].
*/
func (r *Abstime) PrevMonth() Abstime {
	f := r.load()
	year, month, day := f.year, f.month, f.day

	if month == 1 {
		// no day capping: both Jan and Dec have 31 days
		month = 12
		year--
	} else if day == daysIn(year, month) {
		month--
		day = daysIn(year, month)
	} else {
		month--
		if day > daysIn(year, month) {
			day = daysIn(year, month)
		}
	}

	return r.rebuild(year, month, day, f)
}

/*
NextYear returns the same month, day and time in the next year. If
the receiver falls on a leap day (Feb 29), the result's day is 28
regardless of whether the destination year is itself leap.
*/
func (r *Abstime) NextYear() Abstime {
	f := r.load()
	day := f.day
	if r.IsLeapDay() {
		day = 28
	}
	return r.rebuild(f.year+1, f.month, day, f)
}

/*
PrevYear returns the same month, day and time in the previous year,
with the same leap-day handling as [Abstime.NextYear].
*/
func (r *Abstime) PrevYear() Abstime {
	f := r.load()
	day := f.day
	if r.IsLeapDay() {
		day = 28
	}
	return r.rebuild(f.year-1, f.month, day, f)
}

/*
NextWeekday returns the next calendar day whose weekday equals the
given target (0-6, [Sunday] = 0). The receiver's own day never
qualifies: if it already falls on the target weekday, the result is
exactly one week later.
*/
func (r *Abstime) NextWeekday(weekday int) Abstime {
	t := r.NextDay()
	for t.Weekday() != weekday {
		t = t.NextDay()
	}
	return t
}

/*
PrevWeekday returns the previous calendar day whose weekday equals
the given target (0-6, [Sunday] = 0). The receiver's own day never
qualifies: if it already falls on the target weekday, the result is
exactly one week earlier.
*/
func (r *Abstime) PrevWeekday(weekday int) Abstime {
	t := r.PrevDay()
	for t.Weekday() != weekday {
		t = t.PrevDay()
	}
	return t
}

/*
IsLeapDay returns true if the receiver falls on Feb 29.
*/
func (r *Abstime) IsLeapDay() bool {
	f := r.load()
	return f.month == 2 && f.day == 29
}

// rebuild converts stepped civil fields back into an instant in the
// receiver's zone, carrying the time of day from f. The month is
// always in range here, so the FromFields error cannot occur.
func (r *Abstime) rebuild(year, month, day int, f *fields) Abstime {
	t, _ := FromFields(year, month, day, f.hour, f.min, f.sec, f.ms, r.zone)
	return t
}
