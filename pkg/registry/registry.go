// Package registry tracks atomic cells by name, so that independent parts of
// a process (and its observability bridges) can reach the same cell without
// threading references through every call site.
package registry

import (
	"fmt"
	"io"
	"sort"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/valyala/bytebufferpool"

	"github.com/srediag/atomic64/pkg/atomic64"
)

// Registry maps names to cells. It hands out cells and never performs atomic
// operations on them itself, apart from the loads a Dump snapshot takes.
type Registry struct {
	cells cmap.ConcurrentMap[string, *atomic64.Cell]
}

var defaultRegistry = New()

// New returns an empty registry.
func New() *Registry {
	return &Registry{cells: cmap.New[*atomic64.Cell]()}
}

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }

// Get returns the cell registered under name, creating a zero cell when none
// exists. Concurrent callers racing on the same name all receive the same
// cell.
func (r *Registry) Get(name string) *atomic64.Cell {
	if c, ok := r.cells.Get(name); ok {
		return c
	}
	c := &atomic64.Cell{}
	if !r.cells.SetIfAbsent(name, c) {
		c, _ = r.cells.Get(name)
	}
	return c
}

// Lookup returns the cell registered under name, if any.
func (r *Registry) Lookup(name string) (*atomic64.Cell, bool) {
	return r.cells.Get(name)
}

// Delete drops name from the registry. Holders of the cell keep a valid
// cell; only the name binding goes away.
func (r *Registry) Delete(name string) {
	r.cells.Remove(name)
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := r.cells.Keys()
	sort.Strings(names)
	return names
}

// Len returns the number of registered cells.
func (r *Registry) Len() int { return r.cells.Count() }

// Range calls fn for every registered cell until fn returns false. The
// iteration sees a point-in-time snapshot of the bindings; cell values may
// change concurrently.
func (r *Registry) Range(fn func(name string, c *atomic64.Cell) bool) {
	for t := range r.cells.IterBuffered() {
		if !fn(t.Key, t.Val) {
			return
		}
	}
}

// Dump writes one "name value" line per cell in name order. Each line
// reflects a single atomic load; the dump as a whole is not one atomic
// snapshot across cells.
func (r *Registry) Dump(w io.Writer) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	for _, name := range r.Names() {
		if c, ok := r.cells.Get(name); ok {
			fmt.Fprintf(buf, "%s %d\n", name, c.Load())
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}
