// ABOUTME: Mark phase of the collector
// ABOUTME: Worklist traversal flagging everything reachable from the roots

package heap

// markAll flags every object reachable from the root stack. An explicit
// worklist replaces recursion so marking cost is bounded by the number of
// reachable objects, not their nesting depth. A reference is skipped when
// nil or already flagged, checked before it joins the worklist, which is
// what keeps cycles from looping.
func (h *Heap) markAll() {
	work := make([]*Object, 0, h.roots.Len())

	visit := func(obj *Object) {
		if obj == nil || obj.marked {
			return
		}
		obj.marked = true
		work = append(work, obj)
	}

	h.roots.ForEach(visit)

	for len(work) > 0 {
		obj := work[len(work)-1]
		work = work[:len(work)-1]
		if obj.kind == KindPair {
			visit(obj.First)
			visit(obj.Second)
		}
	}
}
