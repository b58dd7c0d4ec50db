package obix

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

import (
	"errors"
	"sync"
)

var mkerr func(string) error = errors.New

/*
FormatError is returned when a text value cannot be decoded as an
abstime. Text holds the offending input verbatim.
*/
type FormatError struct {
	Text string
}

/*
Error returns the error message associated with the receiver instance.
*/
func (r FormatError) Error() string {
	return `FORMAT ERROR: invalid abstime: ` + r.Text
}

/*
ArgumentError is returned when a constructor or operation receives an
out-of-range or unsupported input. It is fatal to the call in question
and never retried.
*/
type ArgumentError struct {
	e error
}

/*
Error returns the error message associated with the receiver instance.
*/
func (r ArgumentError) Error() string { return `ARGUMENT ERROR: ` + r.e.Error() }

/*
types which implement the error interface.
*/
type (
	zoneErr       struct{ e error }
	constraintErr struct{ e error }
)

func (r zoneErr) Error() string       { return `ZONE ERROR: ` + r.e.Error() }
func (r constraintErr) Error() string { return `CONSTRAINT VIOLATION: ` + r.e.Error() }

func argumentErrorf(m ...any) error        { return ArgumentError{mkerrf(m...)} }
func zoneErrorf(m ...any) error            { return zoneErr{mkerrf(m...)} }
func constraintViolationf(m ...any) error  { return constraintErr{mkerrf(m...)} }
func errorInvalidFormat(text string) error { return FormatError{Text: text} }

var (
	errorBadMonth = ArgumentError{mkerr("month must be 1 to 12")}
)

func errorBadTypeForConstructor(element string, inputType any) (err error) {
	var inName string = "<nil>" // sensible default
	if inputType != nil {
		inName = refTypeOf(inputType).String()
	}
	return argumentErrorf("Invalid input type for ", element, " constructor: ", inName)
}

var errCache sync.Map

func mkerrf(parts ...any) error {
	if len(parts) == 0 {
		return nil
	}

	if len(parts) == 1 {
		if s, ok := parts[0].(string); ok {
			if v, hit := errCache.Load(s); hit {
				return v.(error)
			}
		} else if parts[0] == nil {
			return nil
		}
	}

	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case error:
			b.WriteString(v.Error())
		case string:
			b.WriteString(v)
		case int:
			b.WriteString(itoa(v))
		case int64:
			b.WriteString(fmtInt(v, 10))
		default:
			b.WriteString("<not supported>")
		}
	}
	msg := b.String()

	if v, hit := errCache.Load(msg); hit {
		return v.(error)
	}
	e := mkerr(msg)
	errCache.Store(msg, e)
	return e
}
