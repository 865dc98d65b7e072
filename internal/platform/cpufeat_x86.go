//go:build amd64 || 386

package platform

// LOCK-prefixed XADD/CMPXCHG are single instructions on x86.
func nativeAtomics() bool { return true }
