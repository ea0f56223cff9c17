package colony

import (
	"github.com/talgya/rover-colony/internal/world"
)

// Queue is a FIFO of discovered sites. Only fusion enqueues; assignment
// logic drains it with Pop.
type Queue struct {
	items []world.Position
	head  int
}

func (q *Queue) push(p world.Position) {
	q.items = append(q.items, p)
}

// Pop removes and returns the oldest position. ok is false when empty.
func (q *Queue) Pop() (p world.Position, ok bool) {
	if q.head >= len(q.items) {
		return world.Position{}, false
	}
	p = q.items[q.head]
	q.head++

	// Reclaim the consumed prefix once it dominates the backing array.
	if q.head > 32 && q.head*2 >= len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return p, true
}

// Len returns the number of queued positions.
func (q *Queue) Len() int {
	return len(q.items) - q.head
}

// Items returns a copy of the queued positions, oldest first.
func (q *Queue) Items() []world.Position {
	out := make([]world.Position, q.Len())
	copy(out, q.items[q.head:])
	return out
}

// DiscoverySet is the permanent record of every site ever discovered.
// It only grows: there is no way to remove a position.
type DiscoverySet struct {
	index map[world.Position]struct{}
	order []world.Position
}

func newDiscoverySet() DiscoverySet {
	return DiscoverySet{index: make(map[world.Position]struct{})}
}

// add inserts p and reports whether it was new.
func (s *DiscoverySet) add(p world.Position) bool {
	if _, seen := s.index[p]; seen {
		return false
	}
	s.index[p] = struct{}{}
	s.order = append(s.order, p)
	return true
}

// Contains reports whether p was ever discovered.
func (s *DiscoverySet) Contains(p world.Position) bool {
	_, ok := s.index[p]
	return ok
}

// Len returns the number of discovered positions.
func (s *DiscoverySet) Len() int {
	return len(s.order)
}

// Positions returns every discovered position in discovery order.
func (s *DiscoverySet) Positions() []world.Position {
	out := make([]world.Position, len(s.order))
	copy(out, s.order)
	return out
}

// ResourceQueue returns the ore/energy sites awaiting a harvester.
func (b *Base) ResourceQueue() []world.Position {
	return b.resourceQueue.Items()
}

// ScienceQueue returns the science sites awaiting a scientist.
func (b *Base) ScienceQueue() []world.Position {
	return b.scienceQueue.Items()
}

// Discovered returns the discovery set.
func (b *Base) Discovered() *DiscoverySet {
	return &b.discovered
}

// PopResource dequeues the oldest ore/energy site.
func (b *Base) PopResource() (world.Position, bool) {
	return b.resourceQueue.Pop()
}

// PopScience dequeues the oldest science site.
func (b *Base) PopScience() (world.Position, bool) {
	return b.scienceQueue.Pop()
}

// recordDiscoveries scans a freshly fused grid once and enqueues every
// resource or science site not seen before. Returns the number enqueued.
func (b *Base) recordDiscoveries(fused *world.TerrainGrid) int {
	n := 0
	fused.Each(func(p world.Position, t world.Terrain) {
		switch {
		case t.IsResource():
			if b.discovered.add(p) {
				b.resourceQueue.push(p)
				n++
			}
		case t == world.TerrainScience:
			if b.discovered.add(p) {
				b.scienceQueue.push(p)
				n++
			}
		}
	})
	return n
}
