package memzero

import "runtime"

// Zero overwrites b with zeros. The slice is kept live past the write so the
// store is not elided.
//
//go:noinline
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	clear(b)
	runtime.KeepAlive(&b)
}
