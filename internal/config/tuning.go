package config

type Tuning struct {
	CellSize  float64         `yaml:"cell_size"`
	MaxStep   float64         `yaml:"max_step"`
	Player    PlayerTuning    `yaml:"player"`
	Actors    ActorTuning     `yaml:"actors"`
	Explosion ExplosionTuning `yaml:"explosion"`
	Combo     ComboTuning     `yaml:"combo"`
	Ranges    RangeTuning     `yaml:"ranges"`
	Interact  InteractTuning  `yaml:"interact"`
	Props     PropTuning      `yaml:"props"`
}

type PlayerTuning struct {
	Radius            float64 `yaml:"radius"`
	EyeHeight         float64 `yaml:"eye_height"`
	StartHealth       float64 `yaml:"start_health"`
	StartAmmo         int     `yaml:"start_ammo"`
	LevelMinAmmo      int     `yaml:"level_min_ammo"`
	MaxHealth         float64 `yaml:"max_health"`
	OverhealMax       float64 `yaml:"overheal_max"`
	MaxArmor          float64 `yaml:"max_armor"`
	MaxAmmo           int     `yaml:"max_ammo"`
	ArmorAbsorb       float64 `yaml:"armor_absorb"`
	Speed             float64 `yaml:"speed"`
	BoostSpeed        float64 `yaml:"boost_speed"`
	SlowSpeed         float64 `yaml:"slow_speed"`
	PickupRadius      float64 `yaml:"pickup_radius"`
	ExitRadius        float64 `yaml:"exit_radius"`
	EmptyClickPenalty float64 `yaml:"empty_click_penalty"`
	MuzzleFlash       float64 `yaml:"muzzle_flash"`
}

type ActorTuning struct {
	Radius         float64 `yaml:"radius"`
	HitRadius      float64 `yaml:"hit_radius"`
	Height         float64 `yaml:"height"`
	CrouchHeight   float64 `yaml:"crouch_height"`
	AggroRadius    float64 `yaml:"aggro_radius"`
	AlertCooldown  float64 `yaml:"alert_cooldown"`
	FleeHP         int     `yaml:"flee_hp"`
	FleeRadius     float64 `yaml:"flee_radius"`
	FleeSpeed      float64 `yaml:"flee_speed"`
	IdleSkipRadius float64 `yaml:"idle_skip_radius"`
	PatrolSpeed    float64 `yaml:"patrol_speed"`
	PatrolSpan     float64 `yaml:"patrol_span"`
	PatrolRetries  int     `yaml:"patrol_retries"`
	PatrolArrive   float64 `yaml:"patrol_arrive"`
	PatrolPauseMin float64 `yaml:"patrol_pause_min"`
	PatrolPauseMax float64 `yaml:"patrol_pause_max"`
	ChaseSpeed     float64 `yaml:"chase_speed"`
	CoordSpeed     float64 `yaml:"coord_speed"`
	CoordRadius    float64 `yaml:"coord_radius"`
	CoordThreshold float64 `yaml:"coord_threshold"`
	FlankAmplitude float64 `yaml:"flank_amplitude"`
	RecruitRadius  float64 `yaml:"recruit_radius"`
	StopDistance   float64 `yaml:"stop_distance"`
	ContactRadius  float64 `yaml:"contact_radius"`
	ContactDPS     float64 `yaml:"contact_dps"`
	FootstepRadius float64 `yaml:"footstep_radius"`
	ChaseFootstep  float64 `yaml:"chase_footstep"`
	PatrolFootstep float64 `yaml:"patrol_footstep"`
	LiveCap        int     `yaml:"live_cap"`
	FlashDuration  float64 `yaml:"flash_duration"`
}

type ExplosionTuning struct {
	BarrelHP     int     `yaml:"barrel_hp"`
	ActorRadius  float64 `yaml:"actor_radius"`
	ActorMax     float64 `yaml:"actor_max"`
	PlayerRadius float64 `yaml:"player_radius"`
	PlayerMax    float64 `yaml:"player_max"`
	ChainRadius  float64 `yaml:"chain_radius"`
	ChainDelay   float64 `yaml:"chain_delay"`
}

type ComboTuning struct {
	Window     float64 `yaml:"window"`
	Flat       int     `yaml:"flat"`
	PerCombo   int     `yaml:"per_combo"`
	AnnounceAt int     `yaml:"announce_at"`
}

type RangeTuning struct {
	Static    float64 `yaml:"static"`
	Barrel    float64 `yaml:"barrel"`
	Prop      float64 `yaml:"prop"`
	Vending   float64 `yaml:"vending"`
	VendingHP int     `yaml:"vending_hp"`
}

type InteractTuning struct {
	DoorRange     float64 `yaml:"door_range"`
	MeleeRange    float64 `yaml:"melee_range"`
	MeleeDamage   int     `yaml:"melee_damage"`
	MeleeCooldown float64 `yaml:"melee_cooldown"`
}

type PropTuning struct {
	Radius      float64 `yaml:"radius"`
	KickRadius  float64 `yaml:"kick_radius"`
	KickImpulse float64 `yaml:"kick_impulse"`
	ShotImpulse float64 `yaml:"shot_impulse"`
	Friction    float64 `yaml:"friction"`
	Bounce      float64 `yaml:"bounce"`
	RestSpeed   float64 `yaml:"rest_speed"`
}
