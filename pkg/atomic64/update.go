package atomic64

import (
	"context"
	"errors"

	"github.com/cenkalti/backoff/v4"
)

var errContended = errors.New("atomic64: cell contended")

// Update atomically applies fn to the cell: it reads the current value,
// computes fn of it, and installs the result with a compare-exchange,
// retrying until the installation wins. fn may run more than once and must
// be pure. Returns the value fn was finally applied to and the value
// installed.
func Update(c *Cell, fn func(int64) int64) (old, updated int64) {
	for {
		old = c.v.Load()
		updated = fn(old)
		if c.v.CompareAndSwap(old, updated) {
			return old, updated
		}
	}
}

// UpdateBackoff is Update for heavily contended cells: after each lost
// compare-exchange it sleeps per policy before retrying, and gives up when
// the policy or ctx does. The core operations never wait; this helper is the
// only place in the package where a wait can occur, and only because the
// caller asked for one.
func UpdateBackoff(ctx context.Context, c *Cell, fn func(int64) int64, policy backoff.BackOff) (old, updated int64, err error) {
	err = backoff.Retry(func() error {
		old = c.v.Load()
		updated = fn(old)
		if c.v.CompareAndSwap(old, updated) {
			return nil
		}
		return errContended
	}, backoff.WithContext(policy, ctx))
	return old, updated, err
}
