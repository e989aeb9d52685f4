package combat

import "arenasim/internal/config"

type Player struct {
	Pos   Vec2
	Yaw   float64
	Pitch float64

	Health float64
	Armor  float64
	Ammo   int

	Weapons  []string
	Weapon   string
	AmmoType int
	// >0 counts down a speed buff, <0 counts up out of a slow
	SpeedBoost float64

	Score      int
	Kills      int
	ShotsFired int
	ShotsHit   int
	Dead       bool

	DamageByWeapon map[string]float64

	fireCooldown  float64
	meleeCooldown float64
}

func newPlayer(rules *config.Bundle, carry *Player) *Player {
	t := rules.Tuning.Player
	p := &Player{
		Health:         t.StartHealth,
		Ammo:           t.StartAmmo,
		Weapon:         rules.Arsenal.StartWeapon,
		Weapons:        []string{rules.Arsenal.StartWeapon},
		DamageByWeapon: map[string]float64{},
	}
	if carry == nil {
		return p
	}
	p.Armor = carry.Armor
	p.Weapons = append([]string(nil), carry.Weapons...)
	p.Weapon = carry.Weapon
	p.AmmoType = carry.AmmoType
	p.Score = carry.Score
	p.Kills = carry.Kills
	p.ShotsFired = carry.ShotsFired
	p.ShotsHit = carry.ShotsHit
	for k, v := range carry.DamageByWeapon {
		p.DamageByWeapon[k] = v
	}
	p.Ammo = carry.Ammo
	if p.Ammo < t.LevelMinAmmo {
		p.Ammo = t.LevelMinAmmo
	}
	return p
}

// Accuracy is hits over shots, 0 before the first shot.
func (p *Player) Accuracy() float64 {
	if p.ShotsFired == 0 {
		return 0
	}
	return float64(p.ShotsHit) / float64(p.ShotsFired)
}

func (p *Player) speed(t *config.PlayerTuning) float64 {
	switch {
	case p.SpeedBoost > 0:
		return t.BoostSpeed
	case p.SpeedBoost < 0:
		return t.SlowSpeed
	}
	return t.Speed
}
