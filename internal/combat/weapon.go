package combat

import (
	"arenasim/internal/config"
	"arenasim/internal/util"
)

func (w *World) weaponDef() *config.WeaponDef {
	if wd, ok := w.Rules.Weapon(w.Player.Weapon); ok {
		return wd
	}
	wd, _ := w.Rules.Weapon(w.Rules.Arsenal.StartWeapon)
	return wd
}

// fire resolves one trigger pull of the equipped weapon. The caller checks
// the fire intent; the cooldown is checked here.
func (w *World) fire() {
	p := w.Player
	wd := w.weaponDef()
	if wd == nil || p.fireCooldown > 0 {
		return
	}
	if wd.AmmoCost > p.Ammo {
		p.fireCooldown = w.tun.Player.EmptyClickPenalty
		w.emit(EvWeaponEmpty, map[string]any{"weapon": wd.ID})
		return
	}
	p.Ammo -= wd.AmmoCost
	p.fireCooldown = wd.Cooldown
	w.emit(EvWeaponFired, map[string]any{"weapon": wd.ID, "ammo": p.Ammo})
	w.sched.Push(w.Time+w.tun.Player.MuzzleFlash, deferMuzzleFade, 0)

	origin := p.Pos.At(w.tun.Player.EyeHeight)
	// Stun shots stay out of the accuracy stats.
	if wd.Stun {
		hit, ok := w.CastRay(Ray{Origin: origin, Dir: Direction(p.Yaw, p.Pitch)}, ClassActors, wd.Range)
		if !ok {
			return
		}
		if a, ok := w.actors[hit.ID]; ok {
			w.stun(a, wd.StunDuration, wd.ID)
		}
		return
	}

	p.ShotsFired++
	ammo := w.Rules.Ammo(p.AmmoType)
	spread := wd.Spread + ammo.SpreadBonus
	landed := false
	for i := 0; i < wd.Pellets; i++ {
		yaw, pitch := p.Yaw, p.Pitch
		if spread > 0 {
			yaw += util.Jitter(w.Rng, spread)
			pitch += util.Jitter(w.Rng, spread)
		}
		ray := Ray{Origin: origin, Dir: Direction(yaw, pitch)}
		if hit, ok := w.CastRay(ray, ClassActors, wd.Range); ok {
			if w.shootActor(hit, wd, ammo) {
				landed = true
			}
			continue
		}
		w.shootScenery(ray, wd)
		if w.over {
			return
		}
	}
	if landed {
		p.ShotsHit++
	}
}

// shootActor applies one pellet and reports whether it landed. The shield
// check runs first and short circuits every multiplier.
func (w *World) shootActor(hit Hit, wd *config.WeaponDef, ammo config.AmmoDef) bool {
	a, ok := w.actors[hit.ID]
	if !ok {
		return false
	}
	if sh, ok := a.Behavior.(*shieldBehavior); ok && sh.blocks(a, w.Player.Pos) {
		w.emit(EvActorBlocked, map[string]any{"id": int(a.ID), "type": a.Type, "weapon": wd.ID})
		return false
	}
	dmg := float64(wd.Damage)
	if a.State == Debate {
		dmg *= 2
	}
	dmg *= ammo.DamageMul
	w.Player.DamageByWeapon[wd.ID] += dmg
	if w.damageActor(a, dmg, wd.ID) {
		return true
	}
	if ammo.StunChance > 0 && w.Rng.Float64() < ammo.StunChance {
		w.stun(a, ammo.StunDuration, ammo.ID)
	}
	return true
}

// shootScenery runs the independent non-actor queries for a pellet that
// missed every actor.
func (w *World) shootScenery(ray Ray, wd *config.WeaponDef) {
	r := &w.tun.Ranges
	if hit, ok := w.CastRay(ray, ClassStatic, r.Static); ok {
		w.emit(EvImpact, map[string]any{"x": hit.Point.X, "y": hit.Point.Y, "z": hit.Point.Z, "door": hit.Door})
	}
	if hit, ok := w.CastRay(ray, ClassBarrels, r.Barrel); ok {
		if b := w.barrel(hit.ID); b != nil {
			w.damageBarrel(b, wd.Damage)
		}
	}
	if hit, ok := w.CastRay(ray, ClassProps, r.Prop); ok {
		if pr := w.prop(hit.ID); pr != nil {
			pr.push(ray.Dir.Ground().Norm().Scale(w.tun.Props.ShotImpulse))
			w.emit(EvPropHit, map[string]any{"id": int(pr.ID), "type": pr.Type})
		}
	}
	if hit, ok := w.CastRay(ray, ClassVending, r.Vending); ok {
		if v := w.vending(hit.ID); v != nil {
			w.damageVending(v, wd.Damage)
		}
	}
}

func (w *World) damageVending(v *Vending, dmg int) {
	if v.Broken || dmg <= 0 {
		return
	}
	v.HP -= dmg
	if v.HP > 0 {
		w.emit(EvVendingHit, map[string]any{"id": int(v.ID), "hp": v.HP})
		return
	}
	v.HP = 0
	v.Broken = true
	loot := "health"
	if w.Rng.Float64() < 0.5 {
		loot = "ammo"
	}
	w.emit(EvVendingBroken, map[string]any{"id": int(v.ID), "x": v.Pos.X, "y": v.Pos.Y, "loot": loot})
	w.addPickup(loot, v.Pos)
}
