// ABOUTME: Sweep phase of the collector
// ABOUTME: Walks the registry chain, unlinking everything left unmarked

package heap

// sweep traverses the registry chain once, unlinking every unmarked object
// and clearing the flag on survivors. The chain is bookkeeping, not the
// reference graph, so the walk is linear even when the freed objects form
// cycles among themselves. Unlinking is the release: once the chain and the
// host both let go, nothing holds the object.
func (h *Heap) sweep() {
	link := &h.first
	for *link != nil {
		obj := *link
		if !obj.marked {
			*link = obj.next
			obj.next = nil
			h.numObjects--
		} else {
			obj.marked = false
			link = &obj.next
		}
	}
}
