package combat

import "math"

// Input is the player's resolved intent for one tick. Move is in view
// space: X strafes right, Y walks forward.
type Input struct {
	DT        float64
	Move      Vec2
	Yaw       float64
	Pitch     float64
	Fire      bool
	Interact  bool
	Melee     bool
	CycleAmmo bool
	// weapon slot to equip, 0 for none
	SwitchTo int
}

// Step advances the world by one tick and returns the events it produced.
// A world that is over ignores input and returns nil.
func (w *World) Step(in Input) []Event {
	if w.over {
		return nil
	}
	w.events = w.events[:0]
	dt := in.DT
	if !(dt > 0) {
		dt = 0
	}
	if dt > w.tun.MaxStep {
		dt = w.tun.MaxStep
	}
	w.Time += dt

	w.runDeferred()
	if w.over {
		return w.flush()
	}

	p := w.Player
	p.fireCooldown = countdown(p.fireCooldown, dt)
	p.meleeCooldown = countdown(p.meleeCooldown, dt)
	switch {
	case p.SpeedBoost > 0:
		p.SpeedBoost = countdown(p.SpeedBoost, dt)
	case p.SpeedBoost < 0:
		p.SpeedBoost = math.Min(p.SpeedBoost+dt, 0)
	}

	if !math.IsNaN(in.Yaw) {
		p.Yaw = in.Yaw
	}
	if !math.IsNaN(in.Pitch) {
		p.Pitch = math.Max(-math.Pi/2, math.Min(math.Pi/2, in.Pitch))
	}
	if in.SwitchTo > 0 {
		w.trySwitch(in.SwitchTo)
	}
	if in.CycleAmmo {
		w.cycleAmmo()
	}
	if in.Interact {
		w.interact()
	}
	if in.Melee {
		w.melee()
	}

	w.movePlayer(in.Move, dt)

	w.updateActors(dt)
	if w.over {
		return w.flush()
	}

	if in.Fire {
		w.fire()
		if w.over {
			return w.flush()
		}
	}

	if w.Combo.Decay(dt) {
		w.emit(EvCombo, map[string]any{"combo": 0})
	}
	w.collectPickups()
	w.updateProps(dt)

	for _, e := range w.Exits {
		if p.Pos.Dist(e) < w.tun.Player.ExitRadius {
			w.emit(EvLevelExit, map[string]any{"level": w.Level.ID, "score": p.Score, "kills": p.Kills})
			w.end("exit")
			break
		}
	}
	return w.flush()
}

func (w *World) flush() []Event {
	out := make([]Event, len(w.events))
	copy(out, w.events)
	w.events = w.events[:0]
	return out
}

func (w *World) movePlayer(move Vec2, dt float64) {
	if math.IsNaN(move.X) || math.IsNaN(move.Y) || move == (Vec2{}) {
		return
	}
	if move.Len() > 1 {
		move = move.Norm()
	}
	p := w.Player
	fwd := Heading(p.Yaw)
	dir := fwd.Scale(move.Y).Add(fwd.Right().Scale(move.X))
	delta := dir.Scale(p.speed(&w.tun.Player) * dt)
	p.Pos = Slide(w, p.Pos, delta, w.tun.Player.Radius)
}

// interact toggles the nearest door in reach and drags any debater in
// reach into a debate.
func (w *World) interact() {
	p := w.Player
	r := w.tun.Interact.DoorRange
	var nearest *Door
	best := r
	for _, d := range w.Doors {
		if dd := d.Pos.Dist(p.Pos); dd < best {
			nearest, best = d, dd
		}
	}
	if nearest != nil && w.canToggle(nearest) {
		nearest.Open = !nearest.Open
		w.emit(EvDoorToggled, map[string]any{"id": int(nearest.ID), "open": nearest.Open})
	}
	for _, id := range w.actorIDs() {
		a, ok := w.actors[id]
		if !ok {
			continue
		}
		db, ok := a.Behavior.(*debaterBehavior)
		if !ok || a.Pos.Dist(p.Pos) >= db.cfg.Range {
			continue
		}
		w.stun(a, db.cfg.Duration, "interact")
	}
}

// canToggle refuses to close a door on the player.
func (w *World) canToggle(d *Door) bool {
	if !d.Open {
		return true
	}
	return !w.Index.Probe(w.Player.Pos, w.tun.Player.Radius).Intersects(d.box)
}

func (w *World) melee() {
	p := w.Player
	it := &w.tun.Interact
	if p.meleeCooldown > 0 {
		return
	}
	p.meleeCooldown = it.MeleeCooldown
	for _, id := range w.actorIDs() {
		a, ok := w.actors[id]
		if !ok || a.Pos.Dist(p.Pos) >= it.MeleeRange {
			continue
		}
		p.DamageByWeapon["melee"] += float64(it.MeleeDamage)
		w.damageActor(a, float64(it.MeleeDamage), "melee")
	}
}
