//go:build obix_debug

package obix

import (
	"os"
	"sync"
	"time"
)

var dbgMu sync.Mutex

func debugWrite(kind string, args ...any) {
	dbgMu.Lock()
	defer dbgMu.Unlock()

	b := newStrBuilder()
	b.WriteString(time.Now().Format("15:04:05.000"))
	b.WriteString(" [" + kind + "]")
	for _, a := range args {
		b.WriteString(" ")
		switch v := a.(type) {
		case string:
			b.WriteString(v)
		case error:
			b.WriteString(v.Error())
		case int:
			b.WriteString(itoa(v))
		case int64:
			b.WriteString(fmtInt(v, 10))
		default:
			b.WriteString("<not supported>")
		}
	}
	b.WriteString("\n")
	os.Stderr.WriteString(b.String())
}

func debugZone(args ...any)  { debugWrite("zone", args...) }
func debugCache(args ...any) { debugWrite("cache", args...) }
