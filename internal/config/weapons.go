package config

type ArsenalConfig struct {
	StartWeapon string      `yaml:"start_weapon"`
	Weapons     []WeaponDef `yaml:"weapons"`
	Ammo        []AmmoDef   `yaml:"ammo"`
}

type WeaponDef struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	Slot         int     `yaml:"slot"`
	Damage       int     `yaml:"damage"`
	Cooldown     float64 `yaml:"cooldown"`
	AmmoCost     int     `yaml:"ammo_cost"`
	Pellets      int     `yaml:"pellets"`
	Spread       float64 `yaml:"spread"`
	Range        float64 `yaml:"range"`
	Stun         bool    `yaml:"stun"`
	StunDuration float64 `yaml:"stun_duration"`
	Note         string  `yaml:"note"`
}

type AmmoDef struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	SpreadBonus  float64 `yaml:"spread_bonus"`
	DamageMul    float64 `yaml:"damage_mul"`
	StunChance   float64 `yaml:"stun_chance"`
	StunDuration float64 `yaml:"stun_duration"`
}
