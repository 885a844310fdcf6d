// ABOUTME: Collection cycle orchestration and threshold policy
// ABOUTME: Runs mark then sweep, regrows the threshold, reports reclamation

package heap

import "fmt"

// CycleStats describes one completed collection cycle
type CycleStats struct {
	Collected int // objects reclaimed by the cycle
	Remaining int // objects still live afterwards
}

// Collect runs one full stop-the-world cycle: mark everything reachable
// from the roots, sweep the registry, then recompute the threshold. An
// emptied heap collapses the threshold back to the initial constant;
// otherwise the next collection is due at twice the surviving count.
//
// Cycles that reclaim at least one object are reported on the configured
// CycleLog. The report is advisory; nothing may depend on it.
func (h *Heap) Collect() CycleStats {
	before := h.numObjects

	h.markAll()
	h.sweep()

	if h.numObjects == 0 {
		h.maxObjects = h.initialThreshold
	} else {
		h.maxObjects = h.numObjects * 2
	}

	stats := CycleStats{
		Collected: before - h.numObjects,
		Remaining: h.numObjects,
	}
	if stats.Collected > 0 {
		fmt.Fprintf(h.cycleLog, "gc: collected %d objects, %d remaining\n",
			stats.Collected, stats.Remaining)
	}
	return stats
}
