package config

type ArchetypesConfig struct {
	Archetypes []ArchetypeDef `yaml:"archetypes"`
}

type ArchetypeDef struct {
	ID         string    `yaml:"id"`
	Name       string    `yaml:"name"`
	Boss       bool      `yaml:"boss"`
	MaxHP      int       `yaml:"max_hp"`
	Armor      float64   `yaml:"armor"`
	StartState string    `yaml:"start_state"`
	Taunts     []float64 `yaml:"taunts"`
	Behavior   string    `yaml:"behavior"`

	Dash    *DashDef    `yaml:"dash"`
	Spin    *SpinDef    `yaml:"spin"`
	Heal    *HealDef    `yaml:"heal"`
	Summon  *SummonDef  `yaml:"summon"`
	Slow    *SlowDef    `yaml:"slow"`
	Shield  *ShieldDef  `yaml:"shield"`
	Debater *DebaterDef `yaml:"debater"`
	Note    string      `yaml:"note"`
}

// Behavior kinds accepted in archetypes.yaml.
const (
	BehaviorNone    = ""
	BehaviorDash    = "dash"
	BehaviorSpin    = "spin"
	BehaviorHeal    = "heal"
	BehaviorSummon  = "summon"
	BehaviorSlow    = "slow"
	BehaviorShield  = "shield"
	BehaviorDebater = "debater"
)

type DashDef struct {
	MinRange     float64 `yaml:"min_range"`
	MaxRange     float64 `yaml:"max_range"`
	Distance     float64 `yaml:"distance"`
	IntervalMin  float64 `yaml:"interval_min"`
	IntervalMax  float64 `yaml:"interval_max"`
	TauntChance  float64 `yaml:"taunt_chance"`
	DuckChance   float64 `yaml:"duck_chance"`
	DuckDuration float64 `yaml:"duck_duration"`
	DuckRecharge float64 `yaml:"duck_recharge"`
}

type SpinDef struct {
	Trigger     float64 `yaml:"trigger"`
	Radius      float64 `yaml:"radius"`
	Angular     float64 `yaml:"angular"`
	Speed       float64 `yaml:"speed"`
	DamageRange float64 `yaml:"damage_range"`
	DPS         float64 `yaml:"dps"`
	TauntChance float64 `yaml:"taunt_chance"`
}

type HealDef struct {
	Range  float64 `yaml:"range"`
	Chance float64 `yaml:"chance"`
	Amount float64 `yaml:"amount"`
	Cap    float64 `yaml:"cap"`
}

type SummonDef struct {
	Range    float64  `yaml:"range"`
	Cooldown float64  `yaml:"cooldown"`
	Spread   float64  `yaml:"spread"`
	Types    []string `yaml:"types"`
	HP       int      `yaml:"hp"`
}

type SlowDef struct {
	MinRange float64 `yaml:"min_range"`
	MaxRange float64 `yaml:"max_range"`
	Cooldown float64 `yaml:"cooldown"`
	Duration float64 `yaml:"duration"`
}

type ShieldDef struct {
	BlockDot float64 `yaml:"block_dot"`
	TurnRate float64 `yaml:"turn_rate"`
}

type DebaterDef struct {
	Range    float64 `yaml:"range"`
	Duration float64 `yaml:"duration"`
}
