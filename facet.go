package obix

/*
facet.go implements the advisory facets attached to Abstime (min,
max, tz) and the generic constraint machinery available to callers
who want bounds enforced at construction.
*/

import "golang.org/x/exp/constraints"

/*
Min returns the min facet of the receiver instance, or nil if
unspecified. The facet is purely advisory; no operation clamps or
rejects values against it.
*/
func (r *Abstime) Min() *Abstime { return r.min }

/*
SetMin sets the min facet.
*/
func (r *Abstime) SetMin(min *Abstime) { r.min = min }

/*
Max returns the max facet of the receiver instance, or nil if
unspecified. The facet is purely advisory; no operation clamps or
rejects values against it.
*/
func (r *Abstime) Max() *Abstime { return r.max }

/*
SetMax sets the max facet.
*/
func (r *Abstime) SetMax(max *Abstime) { r.max = max }

/*
Tz returns the declared-zone facet: a label which may or may not
match the receiver's actual zone.
*/
func (r *Abstime) Tz() string { return r.tz }

/*
SetTz attempts to resolve tz through the active [ZoneProvider]. On
failure the assignment degrades to a non-fatal warning and is
otherwise ignored. On success, a resolved zone differing from the
receiver's current zone clears the field cache and becomes
authoritative for future field derivations; the millisecond instant
is never modified.
*/
func (r *Abstime) SetTz(tz string) {
	if tz == "" {
		return
	}

	zone, err := LoadZone(tz)
	if err != nil {
		debugZone("no zone for tz facet", tz, err)
		return
	}

	if !zone.Equal(r.zone) {
		r.fields = nil
		r.zone = zone
	}
	r.tz = tz
}

/*
Constraint implements a generic closure function signature meant to
enforce the constraining of values.
*/
type Constraint[T any] func(T) error

/*
ConstraintGroup implements a wrapper of slices of [Constraint]. Slice
instances are added (and, thus, evaluated) in the order in which they
are provided.
*/
type ConstraintGroup[T any] []Constraint[T]

/*
Constrain returns an error following the execution of all [Constraint]
instances against x which reside within the receiver instance.
*/
func (r ConstraintGroup[T]) Constrain(x T) (err error) {
	for i := 0; i < len(r) && err == nil; i++ {
		if r[i] != nil {
			err = r[i](x)
		}
	}

	return
}

/*
LiftConstraint adapts (or "converts") a [Constraint] for type U to
type T.
*/
func LiftConstraint[T any, U any](convert func(T) U, c Constraint[U]) Constraint[T] {
	return func(x T) error {
		return c(convert(x))
	}
}

/*
RangeConstraint returns an instance of [Constraint] that checks if a
value of any ordered type is between the specified minimum and
maximum.
*/
func RangeConstraint[T constraints.Ordered](min, max T) Constraint[T] {
	return func(val T) (err error) {
		if val < min || val > max {
			err = constraintViolationf("value is out of range")
		}
		return
	}
}

/*
AbstimeRangeConstraint returns an instance of [Constraint] that
checks if an instant falls within [min, max], millisecond instants
only. Unlike the min/max facets, constraints passed to [NewAbstime]
are enforced.
*/
func AbstimeRangeConstraint(min, max Abstime) Constraint[Abstime] {
	return func(val Abstime) (err error) {
		if val.millis < min.millis || val.millis > max.millis {
			err = constraintViolationf("abstime ", val.millis,
				" is not in the allowed range [", min.millis, ", ", max.millis, "]")
		}
		return
	}
}
