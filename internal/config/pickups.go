package config

type PickupsConfig struct {
	Pickups []PickupDef `yaml:"pickups"`
}

type PickupDef struct {
	ID       string         `yaml:"id"`
	Announce string         `yaml:"announce"`
	Effects  []PickupEffect `yaml:"effects"`
	Note     string         `yaml:"note"`
}

// Pickup effect types.
const (
	EffectHeal   = "heal"
	EffectAmmo   = "ammo"
	EffectArmor  = "armor"
	EffectSpeed  = "speed"
	EffectWeapon = "grant_weapon"
)

type PickupEffect struct {
	Type     string  `yaml:"type"`
	Amount   float64 `yaml:"amount"`
	Cap      float64 `yaml:"cap"`
	Duration float64 `yaml:"duration"`
	Weapon   string  `yaml:"weapon"`
}
