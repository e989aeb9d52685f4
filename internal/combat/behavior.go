package combat

import (
	"math"

	"arenasim/internal/config"
)

// Behavior is the archetype specific layer of a chasing actor. Update runs
// before the generic chase movement; returning true skips it for the tick.
type Behavior interface {
	Update(w *World, a *Actor, dist, dt float64) bool
}

func newBehavior(def *config.ArchetypeDef) Behavior {
	switch def.Behavior {
	case config.BehaviorDash:
		return &dashBehavior{cfg: def.Dash}
	case config.BehaviorSpin:
		return &spinBehavior{cfg: def.Spin}
	case config.BehaviorHeal:
		return &healBehavior{cfg: def.Heal}
	case config.BehaviorSummon:
		return &summonBehavior{cfg: def.Summon}
	case config.BehaviorSlow:
		return &slowBehavior{cfg: def.Slow}
	case config.BehaviorShield:
		return &shieldBehavior{cfg: def.Shield}
	case config.BehaviorDebater:
		return &debaterBehavior{cfg: def.Debater}
	}
	return nil
}

// dashBehavior lunges at mid range and ducks now and then.
type dashBehavior struct {
	cfg      *config.DashDef
	cooldown float64
	duckWait float64
}

func (b *dashBehavior) Update(w *World, a *Actor, dist, dt float64) bool {
	c := b.cfg
	b.cooldown = countdown(b.cooldown, dt)
	b.duckWait = countdown(b.duckWait, dt)

	if dist > c.MinRange && dist < c.MaxRange && b.cooldown == 0 {
		step := math.Min(c.Distance, dist-w.tun.Actors.StopDistance)
		if step > 0 {
			dir := w.Player.Pos.Sub(a.Pos).Norm()
			a.Pos = Slide(w, a.Pos, dir.Scale(step), w.tun.Actors.Radius)
		}
		b.cooldown = rollInterval(c.IntervalMin, c.IntervalMax, w.Rng)
		if w.Rng.Float64() < c.TauntChance {
			w.taunt(a)
		}
	}
	if !a.Crouched && b.duckWait == 0 && w.Rng.Float64() < c.DuckChance {
		a.Crouched = true
		b.duckWait = c.DuckDuration + c.DuckRecharge
		w.sched.Push(w.Time+c.DuckDuration, deferDuckEnd, a.ID)
	}
	return false
}

// spinBehavior circles the player at close range and replaces the chase.
type spinBehavior struct {
	cfg *config.SpinDef
}

func (b *spinBehavior) Update(w *World, a *Actor, dist, dt float64) bool {
	c := b.cfg
	if dist >= c.Trigger {
		return false
	}
	angle := w.Time * c.Angular
	goal := w.Player.Pos.Add(Heading(angle).Scale(c.Radius))
	to := goal.Sub(a.Pos)
	if l := to.Len(); l > 0 {
		step := math.Min(c.Speed*dt, l)
		a.Pos = Slide(w, a.Pos, to.Norm().Scale(step), w.tun.Actors.Radius)
	}
	if a.Pos.Dist(w.Player.Pos) < c.DamageRange {
		w.damagePlayer(c.DPS*dt, a.Type)
	}
	if w.Rng.Float64() < c.TauntChance*dt {
		w.taunt(a)
	}
	return true
}

// healBehavior sometimes heals the player instead of hurting them.
type healBehavior struct {
	cfg *config.HealDef
}

func (b *healBehavior) Update(w *World, a *Actor, dist, dt float64) bool {
	c := b.cfg
	if dist < c.Range && w.Rng.Float64() < c.Chance*dt*60 {
		w.healPlayer(c.Amount, c.Cap, a.Type)
	}
	return false
}

// summonBehavior calls in regular reinforcements up to the live cap.
type summonBehavior struct {
	cfg      *config.SummonDef
	cooldown float64
}

func (b *summonBehavior) Update(w *World, a *Actor, dist, dt float64) bool {
	c := b.cfg
	b.cooldown = countdown(b.cooldown, dt)
	if dist >= c.Range || b.cooldown > 0 || len(c.Types) == 0 {
		return false
	}
	b.cooldown = c.Cooldown
	if w.LiveActors() >= w.tun.Actors.LiveCap {
		return false
	}
	def, ok := w.Rules.Archetype(c.Types[w.Rng.Intn(len(c.Types))])
	if !ok {
		return false
	}
	half := c.Spread / 2
	pos := a.Pos.Add(Vec2{rollInterval(-half, half, w.Rng), rollInterval(-half, half, w.Rng)})
	if w.Blocked(pos, w.tun.Actors.Radius) {
		return false
	}
	s := w.spawnActor(def, pos)
	if c.HP > 0 && c.HP < s.HP {
		s.HP = c.HP
	}
	s.State = Chase
	w.emit(EvActorSummoned, map[string]any{
		"id": int(s.ID), "type": s.Type, "by": int(a.ID), "x": s.Pos.X, "y": s.Pos.Y,
	})
	return false
}

// slowBehavior drags the player's speed down at mid range.
type slowBehavior struct {
	cfg      *config.SlowDef
	cooldown float64
}

func (b *slowBehavior) Update(w *World, a *Actor, dist, dt float64) bool {
	c := b.cfg
	b.cooldown = countdown(b.cooldown, dt)
	if dist > c.MinRange && dist < c.MaxRange && b.cooldown == 0 {
		w.Player.SpeedBoost = -c.Duration
		b.cooldown = c.Cooldown
		w.emit(EvPlayerSlowed, map[string]any{"duration": c.Duration, "by": int(a.ID)})
	}
	return false
}

// shieldBehavior turns toward the player at a limited rate. The block
// itself is resolved when a shot lands.
type shieldBehavior struct {
	cfg *config.ShieldDef
}

func (b *shieldBehavior) Update(w *World, a *Actor, dist, dt float64) bool {
	to := w.Player.Pos.Sub(a.Pos).Norm()
	if to == (Vec2{}) {
		return false
	}
	if b.cfg.TurnRate <= 0 {
		a.Facing = to
		return false
	}
	a.Facing = a.Facing.Rotate(to, b.cfg.TurnRate*dt)
	return false
}

// blocks reports whether a hit from attacker lands on the shield.
func (b *shieldBehavior) blocks(a *Actor, attacker Vec2) bool {
	to := attacker.Sub(a.Pos).Norm()
	return a.Facing.Dot(to) > b.cfg.BlockDot
}

// debaterBehavior is triggered by the player's interact action.
type debaterBehavior struct {
	cfg *config.DebaterDef
}

func (b *debaterBehavior) Update(*World, *Actor, float64, float64) bool { return false }
