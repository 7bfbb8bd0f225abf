package core

import "reflect"

const scratchChunkSize = 64

// ScratchBuffer is a per-worker arena for objects that live for a single camera sample.
// Reset recycles every allocation without releasing memory, so steady-state rendering
// does not allocate. A ScratchBuffer must not be shared between goroutines.
type ScratchBuffer struct {
	arenas map[reflect.Type]resettable
}

type resettable interface {
	reset()
}

type arena[T any] struct {
	chunks [][]T
	next   int
}

func (a *arena[T]) alloc() *T {
	chunk, offset := a.next/scratchChunkSize, a.next%scratchChunkSize
	if chunk == len(a.chunks) {
		a.chunks = append(a.chunks, make([]T, scratchChunkSize))
	}
	a.next++

	p := &a.chunks[chunk][offset]
	var zero T
	*p = zero
	return p
}

func (a *arena[T]) reset() {
	a.next = 0
}

// NewScratchBuffer creates an empty scratch buffer
func NewScratchBuffer() *ScratchBuffer {
	return &ScratchBuffer{arenas: make(map[reflect.Type]resettable)}
}

// Reset makes all previous allocations available for reuse
func (b *ScratchBuffer) Reset() {
	for _, a := range b.arenas {
		a.reset()
	}
}

// Alloc returns a zeroed *T owned by buf until the next Reset.
// A nil buffer falls back to the heap.
func Alloc[T any](buf *ScratchBuffer) *T {
	if buf == nil {
		return new(T)
	}
	key := reflect.TypeFor[T]()
	a, ok := buf.arenas[key].(*arena[T])
	if !ok {
		a = &arena[T]{}
		buf.arenas[key] = a
	}
	return a.alloc()
}
