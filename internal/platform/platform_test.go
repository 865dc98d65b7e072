package platform

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProbe(t *testing.T) {
	info := Probe()
	assert.Equal(t, runtime.GOARCH, info.Arch)
	assert.Greater(t, info.CPUs, 0)
	assert.Equal(t, LockFree, info.LockFree)
}

// Targets where the runtime can fall back to its internal spinlock table for
// 64-bit atomics (all of mips/mipsle, and arm below GOARM 7, which build tags
// cannot distinguish) must answer false.
func TestLockFreeMatchesTarget(t *testing.T) {
	switch runtime.GOARCH {
	case "arm", "mips", "mipsle":
		assert.False(t, LockFree)
	default:
		assert.True(t, LockFree)
	}
}

func TestProbeStable(t *testing.T) {
	first := Probe()
	second := Probe()
	assert.Equal(t, first.Arch, second.Arch)
	assert.Equal(t, first.LockFree, second.LockFree)
	assert.Equal(t, first.NativeAtomics, second.NativeAtomics)
}
