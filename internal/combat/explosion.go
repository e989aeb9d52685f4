package combat

// detonate is idempotent: an inactive barrel does nothing. Neighbours are
// scheduled, never detonated in the same call.
func (w *World) detonate(b *Barrel) bool {
	if b == nil || !b.Active || w.over {
		return false
	}
	b.Active = false
	b.HP = 0
	ex := &w.tun.Explosion
	w.emit(EvBarrelExploded, map[string]any{"id": int(b.ID), "x": b.Pos.X, "y": b.Pos.Y})

	for _, id := range w.actorIDs() {
		a, ok := w.actors[id]
		if !ok {
			continue
		}
		if d := a.Pos.Dist(b.Pos); d < ex.ActorRadius {
			w.damageActor(a, ex.ActorMax*(1-d/ex.ActorRadius), "explosion")
		}
	}
	if d := w.Player.Pos.Dist(b.Pos); d < ex.PlayerRadius {
		w.damagePlayer(ex.PlayerMax*(1-d/ex.PlayerRadius), "explosion")
	}
	if w.over {
		return true
	}
	for _, o := range w.Barrels {
		if o.Active && o != b && o.Pos.Dist(b.Pos) < ex.ChainRadius {
			w.sched.Push(w.Time+ex.ChainDelay, deferChain, o.ID)
		}
	}
	return true
}

// Detonate triggers a barrel by id. It reports whether anything happened.
func (w *World) Detonate(id EntityID) bool { return w.detonate(w.barrel(id)) }

func (w *World) damageBarrel(b *Barrel, dmg int) {
	if !b.Active || dmg <= 0 {
		return
	}
	b.HP -= dmg
	if b.HP <= 0 {
		w.detonate(b)
	}
}
