// ABOUTME: Heap handle combining registry chain, root stack, and allocator facade
// ABOUTME: Owns all collector state; every operation is a method on *Heap

package heap

import (
	"io"
	"os"
)

const (
	// DefaultStackCapacity is the root stack capacity used when Config
	// leaves StackCapacity zero
	DefaultStackCapacity = 256

	// DefaultInitialThreshold is the object count at which the first
	// automatic collection triggers
	DefaultInitialThreshold = 8
)

// Config fixes a heap's parameters at construction. Zero values select the
// defaults above; a nil CycleLog sends cycle reports to stdout.
type Config struct {
	StackCapacity    int
	InitialThreshold int
	CycleLog         io.Writer
}

// Heap is an independent object heap with its own registry, root stack, and
// collection threshold. It is not safe for concurrent use: the collector is
// stop-the-world and assumes a single mutator.
type Heap struct {
	first      *Object // head of the registry chain of all allocations
	numObjects int
	maxObjects int

	roots *RootStack

	initialThreshold int
	cycleLog         io.Writer
}

// New creates an empty heap
func New(cfg Config) *Heap {
	if cfg.StackCapacity <= 0 {
		cfg.StackCapacity = DefaultStackCapacity
	}
	if cfg.InitialThreshold <= 0 {
		cfg.InitialThreshold = DefaultInitialThreshold
	}
	if cfg.CycleLog == nil {
		cfg.CycleLog = os.Stdout
	}
	return &Heap{
		roots:            NewRootStack(cfg.StackCapacity),
		maxObjects:       cfg.InitialThreshold,
		initialThreshold: cfg.InitialThreshold,
		cycleLog:         cfg.CycleLog,
	}
}

// alloc constructs an object of the given kind and links it into the
// registry chain. Reaching the threshold runs a full collection first, so
// every allocation is a potential collection point.
func (h *Heap) alloc(kind ObjKind) *Object {
	if h.numObjects == h.maxObjects {
		h.Collect()
	}

	obj := &Object{kind: kind}
	obj.next = h.first
	h.first = obj
	h.numObjects++
	return obj
}

// PushInt allocates an int object and pushes it as a root. On
// ErrStackOverflow the new object is left unrooted and becomes garbage at
// the next collection.
func (h *Heap) PushInt(v int) (*Object, error) {
	obj := h.alloc(KindInt)
	obj.Value = v
	if err := h.roots.Push(obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// PushPair pops the two top roots, combines them into a new pair (the top
// entry becomes Second, the one beneath it First), and pushes the pair
// back. With fewer than two roots it returns ErrStackUnderflow and leaves
// the heap untouched: the check precedes the allocation, so no collection
// is triggered either.
func (h *Heap) PushPair() (*Object, error) {
	if h.roots.Len() < 2 {
		return nil, ErrStackUnderflow
	}

	// Allocate before popping: if this triggers a collection, both
	// operands are still rooted and survive it.
	obj := h.alloc(KindPair)
	obj.Second, _ = h.roots.Pop()
	obj.First, _ = h.roots.Pop()

	// Cannot overflow, two entries were just popped
	_ = h.roots.Push(obj)
	return obj, nil
}

// PushRoot records obj as directly reachable
func (h *Heap) PushRoot(obj *Object) error {
	return h.roots.Push(obj)
}

// PopRoot removes and returns the most recently pushed root
func (h *Heap) PopRoot() (*Object, error) {
	return h.roots.Pop()
}

// ClearRoots empties the root stack
func (h *Heap) ClearRoots() {
	h.roots.Clear()
}

// NumObjects returns the current live-object count
func (h *Heap) NumObjects() int { return h.numObjects }

// Threshold returns the object count at which the next allocation triggers
// an automatic collection
func (h *Heap) Threshold() int { return h.maxObjects }

// NumRoots returns the current root stack size
func (h *Heap) NumRoots() int { return h.roots.Len() }

// ForEachObject visits every registered object in chain order, most
// recently allocated first
func (h *Heap) ForEachObject(fn func(*Object)) {
	for obj := h.first; obj != nil; obj = obj.next {
		fn(obj)
	}
}

// ForEachRoot visits the root stack from bottom to top
func (h *Heap) ForEachRoot(fn func(*Object)) {
	h.roots.ForEach(fn)
}
