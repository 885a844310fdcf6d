// ABOUTME: JSON serialization of a live heap's object graph
// ABOUTME: Assigns dense IDs over the registry chain for external inspection

package snapshot

import (
	"encoding/json"
	"io"

	"github.com/prateek/marksweep/heap"
)

// ObjID identifies an object within one snapshot. IDs are dense, 1-based,
// and assigned in registry chain order; 0 means "no reference".
type ObjID uint64

// Snapshot is a point-in-time picture of a heap's object graph
type Snapshot struct {
	Objects []ObjectRecord `json:"objects"`
	Roots   []ObjID        `json:"roots"`
}

// ObjectRecord is one object in a snapshot. First and Second are only
// meaningful for pairs, Value only for ints.
type ObjectRecord struct {
	ID     ObjID  `json:"id"`
	Kind   string `json:"kind"`
	Value  int    `json:"value,omitempty"`
	First  ObjID  `json:"first,omitempty"`
	Second ObjID  `json:"second,omitempty"`
}

// Capture builds a snapshot of h's current state. It reads through the
// heap's iteration queries only and never allocates on h, so capturing
// cannot trigger a collection.
func Capture(h *heap.Heap) *Snapshot {
	ids := make(map[*heap.Object]ObjID, h.NumObjects())
	next := ObjID(1)
	h.ForEachObject(func(obj *heap.Object) {
		ids[obj] = next
		next++
	})

	snap := &Snapshot{
		Objects: make([]ObjectRecord, 0, len(ids)),
		Roots:   make([]ObjID, 0, h.NumRoots()),
	}

	h.ForEachObject(func(obj *heap.Object) {
		rec := ObjectRecord{
			ID:   ids[obj],
			Kind: obj.Kind().String(),
		}
		if obj.Kind() == heap.KindInt {
			rec.Value = obj.Value
		} else {
			// A nil reference looks up the map's zero value, ID 0
			rec.First = ids[obj.First]
			rec.Second = ids[obj.Second]
		}
		snap.Objects = append(snap.Objects, rec)
	})

	h.ForEachRoot(func(obj *heap.Object) {
		snap.Roots = append(snap.Roots, ids[obj])
	})

	return snap
}

// Encode writes h's snapshot to w as JSON
func Encode(h *heap.Heap, w io.Writer) error {
	return json.NewEncoder(w).Encode(Capture(h))
}
