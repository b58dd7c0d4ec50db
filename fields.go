package obix

/*
fields.go implements the lazy decomposition of an instant into its
civil calendar fields.
*/

import "time"

/*
fields holds the civil calendar decomposition of one (millis, zone)
pair. Instances are immutable once built; the cache holds them by
pointer, with nil meaning "not yet computed". This replaces the
all-zero sentinel word of earlier implementations, which could not
distinguish "never computed" from a legitimately all-zero result.
*/
type fields struct {
	year    int
	month   int // 1-12
	day     int // 1-31
	hour    int // 0-23
	min     int // 0-59
	sec     int // 0-59
	ms      int // 0-999
	weekday int // 0-6, Sunday = 0
	dst     bool
}

// decompose maps millis and zone to component fields. Pure and
// side-effect-free: a duplicate computation under an unsynchronized
// race yields an identical result.
func decompose(millis int64, zone Zone) *fields {
	t := time.UnixMilli(millis).In(zone.location())
	_, dst := zone.offsetAt(millis)

	return &fields{
		year:    t.Year(),
		month:   int(t.Month()),
		day:     t.Day(),
		hour:    t.Hour(),
		min:     t.Minute(),
		sec:     t.Second(),
		ms:      t.Nanosecond() / int(time.Millisecond),
		weekday: int(t.Weekday()),
		dst:     dst,
	}
}

// load returns the memoized field decomposition, computing it on
// first use. Every mutating path clears r.fields beforehand, so a
// non-nil cache always reflects the current (millis, zone) pair.
func (r *Abstime) load() *fields {
	if r.fields == nil {
		debugCache("fill", r.zone.ID())
		r.fields = decompose(r.millis, r.zone)
	}
	return r.fields
}
