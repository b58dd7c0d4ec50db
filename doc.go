/*
Package obix implements the obix absolute-time value core: [Abstime],
a timezone-independent millisecond instant paired with a timezone view
used to derive civil calendar fields, calendar arithmetic over those
fields, and the canonical text and binary identities consumed by the
external obix encoders.

# The value model

An [Abstime] is an absolute point in time modeled as a signed 64-bit
count of milliseconds since the Unix epoch. The millisecond count alone
determines ordering, equality and hashing; the attached [Zone] only
influences derived fields such as year, month, day, hour, minute and
the daylight-saving flag. Civil fields are computed lazily on first
access and memoized until the instant or its zone changes.

# Zones

Zone identifiers are resolved through a [ZoneProvider]. The default
provider is backed by the Go timezone database; an alternative may be
injected once during process setup via [SetZoneProvider]. Text decoding
never consults the provider: a parsed UTC offset always yields a
synthetic fixed-offset zone via [FixedZone].

# Codecs

The canonical text form is a fixed-layout "YYYY-MM-DDThh:mm:ss.mmm"
string with a 'Z' or "±hh:mm" suffix, produced by [Abstime.EncodeVal]
and consumed by [Abstime.DecodeVal]. The binary identity is limited to
the [BinAbstime] type code and the protocol-native epoch offset
returned by [Abstime.Millis2000]; byte framing belongs to the external
binary codec.
*/
package obix
