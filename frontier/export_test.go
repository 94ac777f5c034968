package frontier

import "fmt"

// CheckHeap verifies the heap order and position-index invariants of h.
func CheckHeap(h *Heap) error {
	live := 0
	for node, slot := range h.pos {
		if slot == absent {
			continue
		}
		live++
		if slot < 0 || slot >= len(h.items) {
			return fmt.Errorf("pos[%d]=%d outside heap of size %d", node, slot, len(h.items))
		}
		if h.items[slot].node != node {
			return fmt.Errorf("pos[%d]=%d but slot holds node %d", node, slot, h.items[slot].node)
		}
	}
	if live != len(h.items) {
		return fmt.Errorf("%d live positions for %d heap slots", live, len(h.items))
	}

	for i, e := range h.items {
		if h.pos[e.node] != i {
			return fmt.Errorf("slot %d holds node %d but pos says %d", i, e.node, h.pos[e.node])
		}
		for _, c := range []int{2*i + 1, 2*i + 2} {
			if c < len(h.items) && h.items[c].dist < e.dist {
				return fmt.Errorf("child %d (%v) < parent %d (%v)", c, h.items[c].dist, i, e.dist)
			}
		}
	}

	return nil
}
