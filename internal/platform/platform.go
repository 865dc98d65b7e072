// Package platform reports target characteristics relevant to contended
// atomic access. Target-specific constants live in build-tagged files.
package platform

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
)

// Info describes the hardware the process runs on.
type Info struct {
	// Arch is the running program's architecture (runtime.GOARCH).
	Arch string
	// CPUs is the logical CPU count.
	CPUs int
	// ModelName is the first CPU model reported by the OS, if any.
	ModelName string
	// LockFree reports whether 64-bit atomic operations avoid an internal
	// runtime lock on this target.
	LockFree bool
	// NativeAtomics reports whether the target executes atomic
	// read-modify-write as dedicated single instructions rather than
	// load-linked/store-conditional retry loops.
	NativeAtomics bool
}

// Probe gathers an Info for the current process. The OS queries are best
// effort; on failure the runtime's own view is used.
func Probe() Info {
	info := Info{
		Arch:          runtime.GOARCH,
		CPUs:          runtime.NumCPU(),
		LockFree:      LockFree,
		NativeAtomics: nativeAtomics(),
	}
	if counts, err := cpu.Counts(true); err == nil && counts > 0 {
		info.CPUs = counts
	}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		info.ModelName = infos[0].ModelName
	}
	return info
}
