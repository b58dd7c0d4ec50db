package obix

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"reflect"
	"strconv"
	"strings"
)

/*
official import aliases.
*/
var (
	itoa      func(int) string        = strconv.Itoa
	fmtInt    func(int64, int) string = strconv.FormatInt
	refTypeOf func(any) reflect.Type  = reflect.TypeOf
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
