package obix

/*
abstime.go implements Abstime, an absolute point in time modeled as
millis since the epoch 1 Jan 1970, together with lazily derived
time-of-day components relative to a specified zone.
*/

import "time"

/*
Abstime models an absolute point in time as milliseconds since the
Unix epoch. The millisecond count is the sole basis of ordering,
equality and hashing; the attached [Zone] governs only derived civil
fields such as year, month, day, hour, minute and second.

The zero Abstime carries no value: it compares as the epoch but is
rendered as "null" by [Abstime.Format]. Values are freely duplicated
and never shared-mutable; callers owning a mutable instance must
serialize writes themselves.
*/
type Abstime struct {
	millis int64
	zone   Zone
	fields *fields
	valued bool

	// facets; advisory only
	tz  string
	min *Abstime
	max *Abstime
}

/*
NewAbstime returns an instance of [Abstime] alongside an error
following an attempt to marshal x.

The input may be a string or []byte in the canonical text form, an
int64 or int epoch-millisecond count (UTC view), a [time.Time], or
another [Abstime].
*/
func NewAbstime(x any, constraints ...Constraint[Abstime]) (Abstime, error) {
	var r Abstime
	var err error

	switch tv := x.(type) {
	case string:
		err = r.DecodeVal(tv)
	case []byte:
		err = r.DecodeVal(string(tv))
	case int64:
		r.Set(tv, UTC)
	case int:
		r.Set(int64(tv), UTC)
	case time.Time:
		r.Set(tv.UnixMilli(), zoneFromLocation(tv.Location()))
	case Abstime:
		r = tv
	case *Abstime:
		r = *tv
	default:
		err = errorBadTypeForConstructor("abstime", x)
	}

	if err == nil && len(constraints) > 0 {
		var group ConstraintGroup[Abstime] = constraints
		err = group.Constrain(r)
	}

	if err != nil {
		return Abstime{}, err
	}
	return r, nil
}

/*
FromMillis returns an [Abstime] holding the given epoch-millisecond
instant, viewed through the given zone.
*/
func FromMillis(millis int64, zone Zone) Abstime {
	var r Abstime
	r.Set(millis, zone)
	return r
}

/*
FromFields returns an [Abstime] alongside an error following an
attempt to convert civil calendar components, observed in the given
zone, into an instant. An [ArgumentError] is returned when month is
not 1 to 12; other out-of-range components normalize in the usual
calendar fashion.
*/
func FromFields(year, month, day, hour, min, sec, ms int, zone Zone) (Abstime, error) {
	if month < 1 || month > 12 {
		return Abstime{}, errorBadMonth
	}
	var r Abstime
	r.Set(zone.millisOf(year, month, day, hour, min, sec, ms), zone)
	return r, nil
}

/*
WithZone returns an [Abstime] holding the same instant as the
receiver but viewed through a different zone. The field cache of the
returned value is fresh.
*/
func (r *Abstime) WithZone(zone Zone) Abstime {
	return FromMillis(r.millis, zone)
}

/*
Set replaces the instant and zone of the receiver atomically with
respect to the field cache: the cache is cleared before either field
is assigned, so a non-nil cache can never outlive the pair that
produced it.
*/
func (r *Abstime) Set(millis int64, zone Zone) {
	r.fields = nil
	r.millis = millis
	r.zone = zone
	r.valued = true
	if zone.id != "" {
		r.tz = zone.id
	}
}

/*
Millis returns millis since the Unix epoch relative to UTC. The
result is independent of the receiver's zone.
*/
func (r *Abstime) Millis() int64 { return r.millis }

/*
Millis2000 returns millis since the 2000-01-01T00:00:00Z protocol
epoch, the offset consumed by the external binary codec. The result
is independent of the receiver's zone.
*/
func (r *Abstime) Millis2000() int64 { return r.millis - Epoch2000 }

/*
Year returns the civil year as a four digit integer (e.g. 2001).
*/
func (r *Abstime) Year() int { return r.load().year }

/*
Month returns the civil month: 1-12.
*/
func (r *Abstime) Month() int { return r.load().month }

/*
Day returns the civil day: 1-31.
*/
func (r *Abstime) Day() int { return r.load().day }

/*
Hour returns the hour of day: 0-23.
*/
func (r *Abstime) Hour() int { return r.load().hour }

/*
Minute returns the minute: 0-59.
*/
func (r *Abstime) Minute() int { return r.load().min }

/*
Second returns the second: 0-59.
*/
func (r *Abstime) Second() int { return r.load().sec }

/*
Millisecond returns the millisecond: 0-999.
*/
func (r *Abstime) Millisecond() int { return r.load().ms }

/*
Weekday returns the weekday: 0-6, with [Sunday] as zero.
*/
func (r *Abstime) Weekday() int { return r.load().weekday }

/*
InDaylightTime returns a Boolean value indicative of the receiver
falling within daylight-saving time of its zone.
*/
func (r *Abstime) InDaylightTime() bool { return r.load().dst }

/*
TimeOfDayMillis returns the number of milliseconds into the civil
day, e.g. 3600000 for 1:00 AM.
*/
func (r *Abstime) TimeOfDayMillis() int64 {
	f := r.load()
	return int64(f.hour)*millisPerHour +
		int64(f.min)*millisPerMinute +
		int64(f.sec)*millisPerSecond +
		int64(f.ms)
}

/*
Zone returns the zone used to compute relative fields such as year,
month, day, hour and minute. The zone never has any bearing on
[Abstime.Millis].
*/
func (r *Abstime) Zone() Zone { return r.zone }

/*
ZoneOffsetMillis returns the effective UTC offset of the receiver's
zone at this instant, in milliseconds, daylight-saving time included.
*/
func (r *Abstime) ZoneOffsetMillis() int {
	off, _ := r.zone.offsetAt(r.millis)
	return off
}

/*
Cast returns the receiver instance cast as an instance of
[time.Time], located in the receiver's zone view.
*/
func (r *Abstime) Cast() time.Time {
	return time.UnixMilli(r.millis).In(r.zone.location())
}

/*
ToUTC returns an equivalent instance viewed in UTC.
*/
func (r *Abstime) ToUTC() Abstime {
	if r.zone.Equal(UTC) {
		return *r
	}
	return r.WithZone(UTC)
}

/*
ToLocal returns an equivalent instance viewed in the process-local
zone.
*/
func (r *Abstime) ToLocal() Abstime {
	local := LocalZone()
	if r.zone.Equal(local) {
		return *r
	}
	return r.WithZone(local)
}

/*
Compare returns a negative integer, zero, or a positive integer as
the receiver is before, simultaneous with, or after t. Only the
millisecond instants participate; zones are ignored.
*/
func (r *Abstime) Compare(t *Abstime) int {
	switch {
	case r.millis < t.millis:
		return -1
	case r.millis > t.millis:
		return 1
	}
	return 0
}

/*
IsBefore returns true if the receiver is before x.
*/
func (r *Abstime) IsBefore(x *Abstime) bool { return r.Compare(x) < 0 }

/*
IsAfter returns true if the receiver is after x.
*/
func (r *Abstime) IsAfter(x *Abstime) bool { return r.Compare(x) > 0 }

/*
Hash folds the two 32-bit halves of the millisecond instant with XOR.
Instances holding equal instants hash equal regardless of zone.
*/
func (r *Abstime) Hash() uint32 {
	return uint32(r.millis ^ r.millis>>32)
}

/*
ValEquals returns true if x is an [Abstime] holding the same
millisecond instant as the receiver, regardless of zone.
*/
func (r *Abstime) ValEquals(x Val) bool {
	if t, ok := x.(*Abstime); ok {
		return t.millis == r.millis
	}
	return false
}

/*
DateEquals returns true if the civil date (year, month, day) of t
equals that of the receiver, each observed in its own zone.
*/
func (r *Abstime) DateEquals(t *Abstime) bool {
	return t.Year() == r.Year() &&
		t.Month() == r.Month() &&
		t.Day() == r.Day()
}

/*
TimeEquals returns true if the time of day of t equals that of the
receiver, each observed in its own zone.
*/
func (r *Abstime) TimeEquals(t *Abstime) bool {
	return t.TimeOfDayMillis() == r.TimeOfDayMillis()
}

/*
Element returns the markup element name constant "abstime".
*/
func (r *Abstime) Element() string { return `abstime` }

/*
Tag returns the integer constant [BinAbstime], the type code under
which instants are registered with the external binary serializer.
*/
func (r *Abstime) Tag() int { return BinAbstime }

/*
String returns the canonical text form of the receiver instance; see
[Abstime.EncodeVal].
*/
func (r *Abstime) String() string { return encodeAbstime(r) }

/*
Format returns a human readable form, e.g. "14:30:05 27-Apr-05 UTC".
The distinguished "no value" state renders as "null" rather than as
the reference epoch.
*/
func (r *Abstime) Format() string {
	if !r.valued || r.millis == 0 {
		return `null`
	}
	return r.Cast().Format(`15:04:05 02-Jan-06 MST`)
}
