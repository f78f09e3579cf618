package utils

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

///////////////////////////////////////////////////////////////////////////////
// Conversion Utilities — Zero-Alloc Casts
///////////////////////////////////////////////////////////////////////////////

// B2s converts a []byte to a string **without** allocation.
// ⚠️ Caller must ensure the input slice remains valid and unchanged.
// Used for human-readable print paths.
//
//go:nosplit
//go:inline
func B2s(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// S2b views a string as a read-only []byte without copying.
// ⚠️ The result must never be written to.
//
//go:nosplit
//go:inline
func S2b(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// Itoa formats a non-negative int in base 10 using a stack buffer.
// Negative input is rendered with a leading '-'.
//
//go:nosplit
//go:inline
func Itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	neg := n < 0
	u := uint64(n)
	if neg {
		u = uint64(-n)
	}
	for u > 0 {
		i--
		buf[i] = byte('0' + u%10)
		u /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

///////////////////////////////////////////////////////////////////////////////
// Raw Output — Cold-Path Diagnostics
///////////////////////////////////////////////////////////////////////////////

// PrintWarning writes msg straight to stderr (fd 2) with a single syscall.
// Errors are dropped; there is nowhere left to report them.
//
//go:nosplit
//go:inline
func PrintWarning(msg string) {
	if len(msg) == 0 {
		return
	}
	_, _ = unix.Write(2, S2b(msg))
}

// PrintInfo writes msg straight to stdout (fd 1).
//
//go:nosplit
//go:inline
func PrintInfo(msg string) {
	if len(msg) == 0 {
		return
	}
	_, _ = unix.Write(1, S2b(msg))
}

///////////////////////////////////////////////////////////////////////////////
// Hash & Mixers — Integer Key Scrambling
///////////////////////////////////////////////////////////////////////////////

// Mix64 applies a Murmur3-style avalanche to a 64-bit value.
// Used to spread sequential integer keys across the slot array.
//
//go:nosplit
//go:inline
func Mix64(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}
