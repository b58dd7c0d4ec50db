package obix

/*
val.go declares the contract shared by the wider obix value family
(booleans, integers, reals, strings, URIs, relative durations). Only
the absolute-time member lives in this package; the interface exists
so that external collaborators are specified at their boundary.
*/

/*
Val is qualified by every member of the obix value family. Each value
kind pairs a markup element name and a binary type code with a
canonical text encoding.
*/
type Val interface {
	// Element returns the fixed markup element name consumed by
	// the external markup encoder, e.g. "abstime".
	Element() string

	// Tag returns the Bin* type code under which the value kind is
	// registered with the external binary serializer.
	Tag() int

	// EncodeVal returns the canonical text form of the value.
	EncodeVal() string

	// DecodeVal replaces the value from its canonical text form.
	DecodeVal(string) error

	// ValEquals reports value equality with another family member.
	ValEquals(Val) bool
}

var _ Val = (*Abstime)(nil)
