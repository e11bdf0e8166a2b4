package sim

import (
	"sort"
	"sync"

	"Vector2/vector"
)

type Snapshot struct {
	T   float64
	Pos vector.Vector2
	Vel vector.Vector2
}

// History is a fixed-size ring of snapshots, oldest overwritten first.
type History struct {
	buf   []Snapshot
	head  int
	size  int
	mu    sync.RWMutex
	limit int
}

func NewHistory(seconds float64, hz float64) *History {
	n := int(seconds*hz) + 4
	return &History{buf: make([]Snapshot, n), limit: n}
}

func (h *History) Push(s Snapshot) {
	h.mu.Lock()
	h.buf[h.head] = s
	h.head = (h.head + 1) % h.limit
	if h.size < h.limit {
		h.size++
	}
	h.mu.Unlock()
}

func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.size
}

// nth returns the i-th retained snapshot, oldest first.
func (h *History) nth(i int) Snapshot {
	return h.buf[(h.head-h.size+i+h.limit)%h.limit]
}

// At returns the state at time t, interpolated between the two samples
// around it. Times outside the buffered span return the nearest end.
// Snapshots must be pushed in non-decreasing T order.
func (h *History) At(t float64) (Snapshot, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.size == 0 {
		return Snapshot{}, false
	}
	if first := h.nth(0); !(t > first.T) {
		return first, true
	}
	if last := h.nth(h.size - 1); t >= last.T {
		return last, true
	}
	i := sort.Search(h.size, func(i int) bool { return h.nth(i).T >= t })
	after := h.nth(i)
	if after.T == t {
		return after, true
	}
	before := h.nth(i - 1)
	alpha := (t - before.T) / (after.T - before.T)
	return Snapshot{
		T:   t,
		Pos: *vector.LerpUnclamped(&before.Pos, &after.Pos, alpha),
		Vel: *vector.LerpUnclamped(&before.Vel, &after.Vel, alpha),
	}, true
}
