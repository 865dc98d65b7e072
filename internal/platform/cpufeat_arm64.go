//go:build arm64

package platform

import "golang.org/x/sys/cpu"

// ARMv8.1 LSE provides single-instruction atomics (LDADD, SWP, CAS); without
// it the hardware falls back to LDAXR/STLXR retry loops.
func nativeAtomics() bool { return cpu.ARM64.HasATOMICS }
