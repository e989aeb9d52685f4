package combat

import "container/heap"

type deferredKind uint8

const (
	deferChain deferredKind = iota
	deferActorFlash
	deferMuzzleFade
	deferDuckEnd
)

// deferred is an effect with an absolute trigger time. Effects due at the
// same time run in push order.
type deferred struct {
	At   float64
	Kind deferredKind
	ID   EntityID
	seq  uint64
}

type deferredQueue []deferred

func (q deferredQueue) Len() int { return len(q) }
func (q deferredQueue) Less(i, j int) bool {
	if q[i].At != q[j].At {
		return q[i].At < q[j].At
	}
	return q[i].seq < q[j].seq
}
func (q deferredQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *deferredQueue) Push(x any)   { *q = append(*q, x.(deferred)) }
func (q *deferredQueue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}

// Scheduler is the world-owned queue of deferred effects.
type Scheduler struct {
	q   deferredQueue
	seq uint64
}

func (s *Scheduler) Push(at float64, kind deferredKind, id EntityID) {
	s.seq++
	heap.Push(&s.q, deferred{At: at, Kind: kind, ID: id, seq: s.seq})
}

// PopDue removes and returns the earliest effect due at or before now.
func (s *Scheduler) PopDue(now float64) (deferred, bool) {
	if len(s.q) == 0 || s.q[0].At > now {
		return deferred{}, false
	}
	return heap.Pop(&s.q).(deferred), true
}

func (s *Scheduler) Len() int { return len(s.q) }

// Clear drops every pending effect.
func (s *Scheduler) Clear() { s.q = s.q[:0] }

// runDeferred applies every effect that came due. Effects pushed while
// draining land strictly in the future unless their delay is zero.
func (w *World) runDeferred() {
	for !w.over {
		d, ok := w.sched.PopDue(w.Time)
		if !ok {
			return
		}
		switch d.Kind {
		case deferChain:
			if b := w.barrel(d.ID); b != nil {
				w.detonate(b)
			}
		case deferActorFlash:
			if a, ok := w.actors[d.ID]; ok && a.flashing {
				a.flashing = false
				w.emit(EvActorFlashEnd, map[string]any{"id": int(a.ID)})
			}
		case deferMuzzleFade:
			w.emit(EvWeaponFlashEnd, nil)
		case deferDuckEnd:
			if a, ok := w.actors[d.ID]; ok {
				a.Crouched = false
			}
		}
	}
}
