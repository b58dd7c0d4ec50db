//go:build !obix_debug

package obix

func debugZone(_ ...any)  {}
func debugCache(_ ...any) {}
