package combat

import "math"

// Mitigation splits raw damage between an armor pool and health.
type Mitigation struct {
	Absorbed float64
	Loss     float64
}

// Mitigate lets armor soak up to ratio of the raw amount, limited by the
// armor left.
func Mitigate(armor, raw, ratio float64) Mitigation {
	if !(raw > 0) {
		return Mitigation{}
	}
	if !(armor > 0) {
		return Mitigation{Loss: raw}
	}
	abs := math.Min(armor, raw*ratio)
	return Mitigation{Absorbed: abs, Loss: raw - abs}
}

func (w *World) damagePlayer(raw float64, source string) {
	p := w.Player
	if p.Dead || w.over {
		return
	}
	m := Mitigate(p.Armor, raw, w.tun.Player.ArmorAbsorb)
	if m.Loss == 0 && m.Absorbed == 0 {
		return
	}
	p.Armor -= m.Absorbed
	if p.Armor < 0 {
		p.Armor = 0
	}
	p.Health -= m.Loss
	if p.Health < 0 {
		p.Health = 0
	}
	w.emit(EvPlayerDamaged, map[string]any{
		"amount": m.Loss, "absorbed": m.Absorbed, "health": p.Health, "armor": p.Armor, "source": source,
	})
	if p.Health <= 0 {
		w.killPlayer(source)
	}
}

func (w *World) killPlayer(source string) {
	p := w.Player
	if p.Dead {
		return
	}
	p.Dead = true
	p.Health = 0
	w.emit(EvPlayerDied, map[string]any{"source": source, "score": p.Score, "kills": p.Kills})
	w.end("died")
}

// healPlayer raises health up to limit. Health already above limit is left
// alone.
func (w *World) healPlayer(amount, limit float64, source string) bool {
	p := w.Player
	if p.Dead || amount <= 0 || p.Health >= limit {
		return false
	}
	before := p.Health
	p.Health = math.Min(p.Health+amount, limit)
	w.emit(EvPlayerHealed, map[string]any{"amount": p.Health - before, "health": p.Health, "source": source})
	return true
}

// damageActor applies raw damage through the actor's armor and resolves the
// death in the same call. It reports whether the actor died.
func (w *World) damageActor(a *Actor, raw float64, source string) bool {
	if !w.alive(a) || w.over {
		return false
	}
	m := Mitigate(a.Armor, raw, w.tun.Player.ArmorAbsorb)
	a.Armor -= m.Absorbed
	loss := int(math.Round(m.Loss))
	if loss <= 0 && m.Absorbed == 0 {
		return false
	}
	a.HP -= loss
	if a.HP < 0 {
		a.HP = 0
	}
	w.emit(EvActorDamaged, map[string]any{
		"id": int(a.ID), "type": a.Type, "amount": loss, "hp": a.HP, "source": source,
	})
	if a.HP <= 0 {
		w.killActor(a, source)
		return true
	}
	if a.State == Idle || a.State == Patrol {
		a.State = Chase
	}
	if !a.flashing {
		a.flashing = true
		w.sched.Push(w.Time+w.tun.Actors.FlashDuration, deferActorFlash, a.ID)
	}
	if i, ok := a.taunts.check(a.HP, a.MaxHP); ok {
		w.emit(EvAnnounce, map[string]any{"text": tauntKey(a.Type, i), "id": int(a.ID)})
	}
	return false
}

func (w *World) killActor(a *Actor, source string) {
	if _, ok := w.actors[a.ID]; !ok {
		return
	}
	w.removeActor(a.ID)
	p := w.Player
	p.Kills++
	gain, announce := w.Combo.Kill()
	p.Score += gain
	w.emit(EvActorKilled, map[string]any{
		"id": int(a.ID), "type": a.Type, "boss": a.Boss(), "source": source,
		"x": a.Pos.X, "y": a.Pos.Y, "score": gain,
	})
	if announce {
		w.emit(EvCombo, map[string]any{"combo": w.Combo.Combo})
	}
}

// stun puts a live actor into the timed debate state.
func (w *World) stun(a *Actor, duration float64, source string) {
	if !w.alive(a) {
		return
	}
	a.State = Debate
	a.StateTimer = duration
	w.emit(EvActorStunned, map[string]any{"id": int(a.ID), "type": a.Type, "duration": duration, "source": source})
}
