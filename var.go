package obix

/*
var.go contains global variables and constants used throughout
this package.
*/

/*
Binary type codes. These identify value kinds within the external
binary serialization registry. Only [BinAbstime] is produced by this
package; the remaining constants are defined so that collaborating
encoders need not maintain a parallel registry.
*/
const (
	invalidBin = iota
	BinObj
	BinBool
	BinInt
	BinReal
	BinStr
	BinEnum
	BinUri
	BinAbstime
	BinReltime
	BinList
	BinOp
	BinFeed
	BinRef
	BinErr
)

/*
BinNames facilitates access to string binary type-code names.
*/
var BinNames = map[int]string{
	invalidBin: "INVALID BIN",
	BinObj:     "obj",     //  1
	BinBool:    "bool",    //  2
	BinInt:     "int",     //  3
	BinReal:    "real",    //  4
	BinStr:     "str",     //  5
	BinEnum:    "enum",    //  6
	BinUri:     "uri",     //  7
	BinAbstime: "abstime", //  8
	BinReltime: "reltime", //  9
	BinList:    "list",    // 10
	BinOp:      "op",      // 11
	BinFeed:    "feed",    // 12
	BinRef:     "ref",     // 13
	BinErr:     "err",     // 14
}

/*
Weekday constants as returned by [Abstime.Weekday]. The origin is
fixed: Sunday is zero (0).
*/
const (
	Sunday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

/*
WeekdayNames facilitates access to string weekday names.
*/
var WeekdayNames = map[int]string{
	Sunday:    "Sunday",    // 0
	Monday:    "Monday",    // 1
	Tuesday:   "Tuesday",   // 2
	Wednesday: "Wednesday", // 3
	Thursday:  "Thursday",  // 4
	Friday:    "Friday",    // 5
	Saturday:  "Saturday",  // 6
}

/*
Epoch2000 is the number of milliseconds from the Unix epoch of 1970
to the protocol epoch of 2000-01-01T00:00:00Z. [Abstime.Millis2000]
subtracts this constant to obtain the protocol-native offset.
*/
const Epoch2000 int64 = 946684800000

// millisecond magnitudes used by arithmetic and the codec
const (
	millisPerSecond int64 = 1000
	millisPerMinute       = 60 * millisPerSecond
	millisPerHour         = 60 * millisPerMinute
	millisPerDay          = 24 * millisPerHour
)
