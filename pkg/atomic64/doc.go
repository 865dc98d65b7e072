// Package atomic64 provides a sequentially consistent atomic cell holding one
// signed 64-bit integer.
//
// A Cell is a handle to one shared storage location. Every access goes
// through the atomic operation set, so the underlying integer can never be
// reached by an ordinary unsynchronized read or write and a reader can never
// observe a torn value. All operations use the strongest memory ordering Go
// offers: every goroutine observes a single global order of the operations on
// a given cell.
//
// Example usage:
//
//	var c atomic64.Cell
//	c.Store(10)
//	prev := c.Exchange(20) // prev == 10
//
//	expected := int64(20)
//	if c.CompareExchange(&expected, 30) {
//	  // cell went from 20 to 30
//	}
//
// Retry loops built from CompareExchange are packaged in Update and
// UpdateBackoff.
package atomic64
