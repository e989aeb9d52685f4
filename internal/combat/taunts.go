package combat

import "fmt"

// tauntTrack fires once per health fraction crossed, in order.
type tauntTrack struct {
	thresholds []float64
	next       int
}

func newTauntTrack(th []float64) *tauntTrack {
	if len(th) == 0 {
		return nil
	}
	return &tauntTrack{thresholds: th}
}

// check returns the index of the first newly crossed threshold. A big hit
// that crosses several thresholds still announces one per call.
func (t *tauntTrack) check(hp, max int) (int, bool) {
	if t == nil || max <= 0 || t.next >= len(t.thresholds) {
		return 0, false
	}
	frac := float64(hp) / float64(max)
	if frac > t.thresholds[t.next] {
		return 0, false
	}
	i := t.next
	t.next++
	return i, true
}

func tauntKey(archetype string, i int) string {
	if i < 0 {
		return "taunt." + archetype
	}
	return fmt.Sprintf("taunt.%s.%d", archetype, i)
}

func (w *World) taunt(a *Actor) {
	w.emit(EvAnnounce, map[string]any{"text": tauntKey(a.Type, -1), "id": int(a.ID)})
}
