package atomic64

import (
	"sync/atomic"

	"github.com/srediag/atomic64/internal/platform"
)

// Cell is one shared 64-bit signed integer storage location. The zero Cell
// holds zero and is ready for use. A Cell must not be copied after first use;
// all holders of a reference share the same location and the caller owns the
// storage for as long as the longest-lived holder needs it.
type Cell struct {
	v atomic.Int64
}

// New returns a Cell holding v.
func New(v int64) *Cell {
	c := &Cell{}
	c.v.Store(v)
	return c
}

// Load atomically returns the cell's current value.
func (c *Cell) Load() int64 { return c.v.Load() }

// Store atomically overwrites the cell's contents with desired.
func (c *Cell) Store(desired int64) { c.v.Store(desired) }

// Exchange atomically replaces the cell's contents with desired and returns
// the value present immediately before the replacement. No other operation
// on the cell can observe an intermediate state between the read and the
// write.
func (c *Cell) Exchange(desired int64) int64 { return c.v.Swap(desired) }

// FetchAdd atomically adds delta to the cell and returns the value present
// before the addition. The addition wraps on signed overflow.
func (c *Cell) FetchAdd(delta int64) int64 { return c.v.Add(delta) - delta }

// CompareExchange atomically replaces the cell's contents with desired if
// they currently equal *expected, reporting whether the replacement happened.
// On failure the cell is left unchanged and *expected is overwritten with the
// value actually observed, ready for the next attempt. Failure is never
// spurious: a false return always reflects a genuine mismatch at the instant
// of the attempt.
func (c *Cell) CompareExchange(expected *int64, desired int64) bool {
	for {
		cur := c.v.Load()
		if cur != *expected {
			*expected = cur
			return false
		}
		if c.v.CompareAndSwap(cur, desired) {
			return true
		}
	}
}

// Toggle atomically flips the cell's low bit (an exclusive-or with 1) and
// returns the value present before the toggle. Callers needing a general
// fetch-xor compose CompareExchange instead.
func (c *Cell) Toggle() int64 {
	for {
		old := c.v.Load()
		if c.v.CompareAndSwap(old, old^1) {
			return old
		}
	}
}

// IsLockFree reports whether atomic operations on the cell avoid an internal
// runtime lock on the current target. The answer is a target characteristic:
// constant within one run, but it may differ across deployment targets.
func (c *Cell) IsLockFree() bool { return platform.LockFree }
