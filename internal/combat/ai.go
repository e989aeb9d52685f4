package combat

import "math"

// updateActors advances every actor alive at the start of the pass. Actors
// spawned or killed during the pass are picked up or skipped by id.
func (w *World) updateActors(dt float64) {
	for _, id := range w.actorIDs() {
		if w.over {
			return
		}
		a, ok := w.actors[id]
		if !ok {
			continue
		}
		w.updateActor(a, dt)
	}
}

func (w *World) updateActor(a *Actor, dt float64) {
	t := &w.tun.Actors
	p := w.Player
	toP := p.Pos.Sub(a.Pos)
	dist := toP.Len()

	if a.State == Idle && dist > t.IdleSkipRadius {
		return
	}
	a.AlertCooldown = countdown(a.AlertCooldown, dt)
	a.FootstepTimer = countdown(a.FootstepTimer, dt)

	// Low health regulars run, whatever they were doing.
	if !a.Boss() && a.HP < t.FleeHP && dist < t.FleeRadius {
		a.State = Flee
		w.moveActor(a, toP.Norm().Scale(-t.FleeSpeed*dt))
		return
	}
	if a.State == Flee {
		a.State = Chase
	}

	if a.State == Debate {
		a.StateTimer = countdown(a.StateTimer, dt)
		if a.StateTimer == 0 {
			a.State = Chase
		}
		return
	}

	if (a.State == Idle || a.State == Patrol) && dist < t.AggroRadius {
		a.State = Chase
		if a.AlertCooldown == 0 {
			a.AlertCooldown = t.AlertCooldown
			w.emit(EvActorAlert, map[string]any{"id": int(a.ID), "type": a.Type})
		}
	}

	if _, ok := a.Behavior.(*shieldBehavior); !ok && dist > 0 {
		a.Facing = toP.Norm()
	}

	// A behavior that takes over the tick also replaces contact damage.
	if a.State == Chase && a.Behavior != nil {
		if a.Behavior.Update(w, a, dist, dt) || w.over || !w.alive(a) {
			return
		}
	}

	if dist < t.ContactRadius {
		a.State = Chase
		w.damagePlayer(t.ContactDPS*dt, a.Type)
		if w.over {
			return
		}
	}

	switch a.State {
	case Patrol:
		w.patrol(a, dt)
	case Chase:
		w.chase(a, dt)
	}
}

func (w *World) chase(a *Actor, dt float64) {
	t := &w.tun.Actors
	p := w.Player
	toP := p.Pos.Sub(a.Pos)
	dist := toP.Len()

	allies := 0
	for _, id := range w.order {
		o := w.actors[id]
		if o == a {
			continue
		}
		d := o.Pos.Dist(a.Pos)
		if (o.State == Idle || o.State == Patrol) && d < t.RecruitRadius {
			o.State = Chase
		}
		if o.State == Chase && d < t.CoordRadius {
			allies++
		}
	}

	// Converging allies take turns slowing down; never to a halt.
	speed := t.ChaseSpeed
	if allies > 0 && math.Sin(w.Time+a.Origin.X*3) > t.CoordThreshold {
		speed = t.CoordSpeed
	}
	if dist > t.StopDistance {
		dir := toP.Norm()
		flank := dir.Right().Scale(math.Sin(w.Time*2+a.Origin.X) * t.FlankAmplitude)
		goal := p.Pos.Add(flank).Sub(a.Pos).Norm()
		step := math.Min(speed*dt, dist-t.StopDistance)
		w.moveActor(a, goal.Scale(step))
	}
	if dist < t.FootstepRadius && a.FootstepTimer == 0 {
		a.FootstepTimer = t.ChaseFootstep
		w.emit(EvActorFootstep, map[string]any{"id": int(a.ID), "x": a.Pos.X, "y": a.Pos.Y})
	}
}

func (w *World) patrol(a *Actor, dt float64) {
	t := &w.tun.Actors
	if a.pause > 0 {
		a.pause = countdown(a.pause, dt)
		return
	}
	if !a.hasTarget {
		a.target = w.patrolTarget(a)
		a.hasTarget = true
	}
	to := a.target.Sub(a.Pos)
	d := to.Len()
	if d < t.PatrolArrive {
		a.hasTarget = false
		a.pause = rollInterval(t.PatrolPauseMin, t.PatrolPauseMax, w.Rng)
		return
	}
	if !w.moveActor(a, to.Norm().Scale(math.Min(t.PatrolSpeed*dt, d))) {
		a.hasTarget = false
		a.pause = rollInterval(t.PatrolPauseMin, t.PatrolPauseMax, w.Rng)
		return
	}
	if a.Pos.Dist(w.Player.Pos) < t.FootstepRadius && a.FootstepTimer == 0 {
		a.FootstepTimer = t.PatrolFootstep
		w.emit(EvActorFootstep, map[string]any{"id": int(a.ID), "x": a.Pos.X, "y": a.Pos.Y})
	}
}

// patrolTarget samples free spots around the origin and gives up on the
// origin itself after the retry limit.
func (w *World) patrolTarget(a *Actor) Vec2 {
	t := &w.tun.Actors
	half := t.PatrolSpan / 2
	for i := 0; i < t.PatrolRetries; i++ {
		c := a.Origin.Add(Vec2{rollInterval(-half, half, w.Rng), rollInterval(-half, half, w.Rng)})
		if !w.Blocked(c, t.Radius) {
			return c
		}
	}
	return a.Origin
}

// moveActor slides the actor and reports whether it moved at all.
func (w *World) moveActor(a *Actor, delta Vec2) bool {
	next := Slide(w, a.Pos, delta, w.tun.Actors.Radius)
	moved := next != a.Pos
	a.Pos = next
	return moved
}
