package combat

import (
	"math"

	"arenasim/internal/config"
)

type Pickup struct {
	ID    EntityID
	Type  string
	Pos   Vec2
	Taken bool
}

func (w *World) addPickup(typ string, pos Vec2) *Pickup {
	pk := &Pickup{ID: w.newID(), Type: typ, Pos: pos}
	w.Pickups = append(w.Pickups, pk)
	return pk
}

// collectPickups takes every pickup in reach whose effects change
// something. Useless pickups stay on the floor.
func (w *World) collectPickups() {
	p := w.Player
	for _, pk := range w.Pickups {
		if pk.Taken || pk.Pos.Dist(p.Pos) >= w.tun.Player.PickupRadius {
			continue
		}
		def, ok := w.Rules.Pickup(pk.Type)
		if !ok {
			continue
		}
		if !w.applyPickup(def) {
			continue
		}
		pk.Taken = true
		w.emit(EvPickup, map[string]any{"id": int(pk.ID), "type": pk.Type})
		if def.Announce != "" {
			w.emit(EvAnnounce, map[string]any{"text": def.Announce})
		}
	}
}

func (w *World) applyPickup(def *config.PickupDef) bool {
	p := w.Player
	used := false
	for _, ef := range def.Effects {
		switch ef.Type {
		case config.EffectHeal:
			if w.healPlayer(ef.Amount, ef.Cap, def.ID) {
				used = true
			}
		case config.EffectAmmo:
			limit := int(ef.Cap)
			if limit <= 0 {
				limit = w.tun.Player.MaxAmmo
			}
			if p.Ammo < limit {
				p.Ammo = int(math.Min(float64(p.Ammo)+ef.Amount, float64(limit)))
				used = true
			}
		case config.EffectArmor:
			limit := ef.Cap
			if limit <= 0 {
				limit = w.tun.Player.MaxArmor
			}
			if p.Armor < limit {
				p.Armor = math.Min(p.Armor+ef.Amount, limit)
				used = true
			}
		case config.EffectSpeed:
			p.SpeedBoost = ef.Duration
			used = true
		case config.EffectWeapon:
			if p.Grant(ef.Weapon) {
				used = true
			}
			if p.Weapon != ef.Weapon {
				p.Weapon = ef.Weapon
				w.emit(EvWeaponSwitched, map[string]any{"weapon": ef.Weapon})
				used = true
			}
		}
	}
	return used
}
