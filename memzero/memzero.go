// Package memzero provides best-effort wiping of secret-bearing byte
// slices. Derived keys, shared-secret coordinates, and decoded private key
// bytes are zeroed on every exit path rather than left to the garbage
// collector.
package memzero

import "runtime"

// Zero overwrites b with zeros. This is best-effort and aims to reduce the
// chance of the compiler eliding the writes.
//
//go:noinline
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	// Ensure b is considered live until after the loop.
	runtime.KeepAlive(&b)
}
