//go:build !arm && !mips && !mipsle

package platform

// LockFree reports whether 64-bit atomics avoid an internal runtime lock.
// True here: 64-bit targets have native 64-bit atomics and 386 has
// CMPXCHG8B.
const LockFree = true
