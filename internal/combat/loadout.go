package combat

func (p *Player) Owns(weapon string) bool {
	for _, id := range p.Weapons {
		if id == weapon {
			return true
		}
	}
	return false
}

// Grant adds a weapon to the inventory and reports whether it is new.
func (p *Player) Grant(weapon string) bool {
	if p.Owns(weapon) {
		return false
	}
	p.Weapons = append(p.Weapons, weapon)
	return true
}

// trySwitch equips the weapon bound to slot if the player owns it.
func (w *World) trySwitch(slot int) bool {
	wd, ok := w.Rules.WeaponBySlot(slot)
	p := w.Player
	if !ok || wd.ID == p.Weapon || !p.Owns(wd.ID) {
		return false
	}
	p.Weapon = wd.ID
	w.emit(EvWeaponSwitched, map[string]any{"weapon": wd.ID, "slot": slot})
	return true
}

func (w *World) cycleAmmo() {
	p := w.Player
	n := len(w.Rules.Arsenal.Ammo)
	if n == 0 {
		return
	}
	p.AmmoType = (p.AmmoType + 1) % n
	am := w.Rules.Ammo(p.AmmoType)
	w.emit(EvAmmoCycled, map[string]any{"ammo": am.ID, "name": am.Name})
	w.emit(EvAnnounce, map[string]any{"text": "ammo." + am.ID})
}
