package obix

/*
zone.go implements zone references and the ZoneProvider abstraction
through which zone identifiers resolve to UTC offset and DST behavior.
*/

import (
	"sync"
	"time"
)

/*
ZoneProvider resolves a zone identifier into a usable [Zone]. The
default provider is backed by the Go timezone database; see
[SetZoneProvider] for injection of an alternative during process
setup.
*/
type ZoneProvider interface {
	Resolve(id string) (Zone, error)
}

/*
Zone is a reference to a timezone: an identifier alongside resolved
offset/DST behavior. A Zone influences only how an [Abstime] derives
its civil calendar fields; it never has any bearing on the underlying
millisecond instant.

The zero Zone behaves as UTC.
*/
type Zone struct {
	id     string
	loc    *time.Location
	fixed  bool
	offset int // millis; fixed zones only
}

/*
UTC is the Coordinated Universal Time zone reference. It is resolved
once and treated as immutable thereafter.
*/
var UTC = Zone{id: `UTC`}

/*
FixedZone returns a synthetic [Zone] defined purely by a constant UTC
offset, expressed in milliseconds. Fixed zones carry no DST rules and
are the zone form produced by text decoding.
*/
func FixedZone(offsetMillis int) Zone {
	return Zone{
		id:     `Offset`,
		loc:    time.FixedZone(`Offset`, offsetMillis/int(millisPerSecond)),
		fixed:  true,
		offset: offsetMillis,
	}
}

/*
ID returns the identifier with which the receiver instance was
resolved, e.g. "America/New_York", "UTC" or "Offset".
*/
func (r Zone) ID() string { return r.id }

/*
String returns the string representation (identifier) of the receiver
instance. The zero Zone renders as "UTC", consistent with its behavior
everywhere else.
*/
func (r Zone) String() string {
	if r.id == "" {
		return `UTC`
	}
	return r.id
}

/*
IsFixed returns a Boolean value indicative of the receiver instance
being a synthetic fixed-offset zone.
*/
func (r Zone) IsFixed() bool { return r.fixed }

/*
Equal returns a Boolean value indicative of the receiver and input
instances describing the same zone view.
*/
func (r Zone) Equal(other Zone) bool {
	if r.fixed || other.fixed {
		return r.fixed == other.fixed && r.offset == other.offset
	}
	return r.id == other.id
}

// location never returns nil; the zero Zone maps to time.UTC.
func (r Zone) location() *time.Location {
	if r.loc == nil {
		return time.UTC
	}
	return r.loc
}

/*
offsetAt returns the effective UTC offset in milliseconds at the given
instant, alongside a Boolean indicating whether daylight-saving rules
are active. DST state is detected by comparing the effective offset
against the zone's standard (raw) offset for that year.
*/
func (r Zone) offsetAt(millis int64) (offsetMillis int, dst bool) {
	if r.fixed {
		return r.offset, false
	}
	if r.loc == nil {
		return 0, false
	}

	t := time.UnixMilli(millis).In(r.loc)
	_, secs := t.Zone()
	offsetMillis = secs * int(millisPerSecond)
	dst = offsetMillis != r.rawOffset(t.Year())
	return
}

// rawOffset returns the standard (non-DST) offset for year: the lesser
// of the January and July offsets, which holds in either hemisphere.
func (r Zone) rawOffset(year int) int {
	_, jan := time.Date(year, time.January, 1, 0, 0, 0, 0, r.loc).Zone()
	_, jul := time.Date(year, time.July, 1, 0, 0, 0, 0, r.loc).Zone()
	if jan < jul {
		return jan * int(millisPerSecond)
	}
	return jul * int(millisPerSecond)
}

// millisOf converts civil fields observed in this zone into an epoch
// millisecond instant. Out-of-range fields normalize in the usual
// calendar fashion.
func (r Zone) millisOf(year, month, day, hour, min, sec, ms int) int64 {
	t := time.Date(year, time.Month(month), day, hour, min, sec,
		ms*int(time.Millisecond), r.location())
	return t.UnixMilli()
}

type tzdbProvider struct{}

/*
Resolve returns a [Zone] alongside an error following an attempt to
look id up within the Go timezone database.
*/
func (tzdbProvider) Resolve(id string) (Zone, error) {
	loc, err := time.LoadLocation(id)
	if err != nil {
		return Zone{}, zoneErrorf("unresolvable zone ", id)
	}
	return zoneFromLocation(loc), nil
}

func zoneFromLocation(loc *time.Location) Zone {
	if loc == nil || loc == time.UTC {
		return UTC
	}
	return Zone{id: loc.String(), loc: loc}
}

var (
	providerMu sync.RWMutex
	provider   ZoneProvider = tzdbProvider{}
)

/*
SetZoneProvider injects an alternative [ZoneProvider]. It is intended
to be called once during process setup, before any zone resolution
takes place; it is not synchronized against in-flight resolutions.
*/
func SetZoneProvider(p ZoneProvider) {
	if p == nil {
		return
	}
	providerMu.Lock()
	provider = p
	providerMu.Unlock()
}

func zoneProvider() ZoneProvider {
	providerMu.RLock()
	p := provider
	providerMu.RUnlock()
	return p
}

/*
LoadZone resolves id through the active [ZoneProvider].
*/
func LoadZone(id string) (Zone, error) {
	return zoneProvider().Resolve(id)
}

var (
	localOnce sync.Once
	localZone Zone
)

/*
LocalZone returns the process-local zone reference. It is resolved
once and treated as immutable thereafter.
*/
func LocalZone() Zone {
	localOnce.Do(func() {
		localZone = zoneFromLocation(time.Local)
	})
	return localZone
}
