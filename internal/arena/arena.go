// Package arena provides a fixed-capacity bump allocator for long-lived
// byte buffers such as sprite sheets.
package arena

import (
	"errors"
	"fmt"
)

// ErrExhausted is returned when an allocation does not fit.
var ErrExhausted = errors.New("arena: no free space available")

// DefaultSize matches the 16 MiB scratch space the demos run with.
const DefaultSize = 16 * 1024 * 1024

// Arena hands out non-overlapping slices of a single buffer.
type Arena struct {
	mem       []byte
	allocated int
}

// New creates an arena with size bytes of capacity.
func New(size int) *Arena {
	return &Arena{mem: make([]byte, size)}
}

// Alloc returns a zeroed slice of n bytes. The slice's capacity is n so
// appends cannot spill into neighbouring allocations.
func (a *Arena) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("arena: negative allocation %d", n)
	}
	if a.allocated+n > len(a.mem) {
		return nil, fmt.Errorf("%w: requested %d, %d of %d in use", ErrExhausted, n, a.allocated, len(a.mem))
	}

	mem := a.mem[a.allocated : a.allocated+n : a.allocated+n]
	a.allocated += n
	clear(mem)
	return mem, nil
}

// Used returns the number of bytes handed out.
func (a *Arena) Used() int { return a.allocated }

// Cap returns the arena capacity.
func (a *Arena) Cap() int { return len(a.mem) }

// Reset releases every allocation. Slices returned earlier must no longer
// be used.
func (a *Arena) Reset() { a.allocated = 0 }
