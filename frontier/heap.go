package frontier

import "math"

// absent marks a popped node in Heap.pos.
const absent = -1

// entry is one live heap slot.
type entry struct {
	node int
	dist float64
}

// Heap is a Frontier backed by a binary min-heap with a position index.
//
// Invariants, outside of an in-progress sift:
//
//   - items[parent(i)].dist <= items[i].dist for every live slot i (+Inf last).
//   - pos[items[i].node] == i for every live slot i; pos[v] == absent once v is popped.
type Heap struct {
	items []entry
	pos   []int
}

// NewHeap returns a Heap frontier over n nodes with source at distance 0.
// All other entries start at +Inf, so only the source needs placing.
// Complexity: O(n).
func NewHeap(n, source int) *Heap {
	h := &Heap{
		items: make([]entry, n),
		pos:   make([]int, n),
	}
	for i := 0; i < n; i++ {
		h.items[i] = entry{node: i, dist: math.Inf(1)}
		h.pos[i] = i
	}
	if n > 0 {
		h.items[source].dist = 0
		h.siftUp(source)
	}

	return h
}

// Distance returns the node's tentative distance, or ok == false once popped. O(1).
func (h *Heap) Distance(node int) (float64, bool) {
	i := h.pos[node]
	if i == absent {
		return 0, false
	}

	return h.items[i].dist, true
}

// DecreaseKey lowers the node's distance and sifts it up. Distances only
// decrease, so the entry never needs to move down. O(log n).
func (h *Heap) DecreaseKey(node int, dist float64) {
	i := h.pos[node]
	h.items[i].dist = dist
	h.siftUp(i)
}

// PopMin swaps the root with the last slot, shrinks the heap and sifts the
// new root down. O(log n).
func (h *Heap) PopMin() (int, float64) {
	n := len(h.items)
	if n == 0 {
		panic("frontier: PopMin on empty Heap frontier")
	}

	top := h.items[0]
	h.swap(0, n-1)
	h.items = h.items[:n-1]
	h.pos[top.node] = absent
	if n > 1 {
		h.siftDown(0)
	}

	return top.node, top.dist
}

// Len returns the number of entries not yet popped.
func (h *Heap) Len() int { return len(h.items) }

func (h *Heap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !(h.items[i].dist < h.items[parent].dist) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *Heap) siftDown(i int) {
	n := len(h.items)
	for {
		smallest := i
		left := 2*i + 1
		right := left + 1
		if left < n && h.items[left].dist < h.items[smallest].dist {
			smallest = left
		}
		if right < n && h.items[right].dist < h.items[smallest].dist {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

// swap exchanges two slots and keeps pos in step.
func (h *Heap) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i].node] = i
	h.pos[h.items[j].node] = j
}
