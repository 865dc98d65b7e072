//go:build arm || mips || mipsle

package platform

// 32-bit MIPS has no 64-bit load-linked/store-conditional pair, so the Go
// runtime serializes 64-bit atomics through an internal spinlock table. On
// arm the runtime dispatches on goarm: only GOARM>=7 uses LDREXD/STREXD,
// anything below falls back to the same spinlock table. Build tags cannot
// see the GOARM level, so arm must answer conservatively.
const LockFree = false
