package config

import "fmt"

var startStates = map[string]bool{"idle": true, "patrol": true, "chase": true}

// Validate checks cross references between rule files and the level grids.
func (b *Bundle) Validate() error {
	t := b.Tuning
	if t.CellSize <= 0 || t.MaxStep <= 0 {
		return configErr("tuning.yaml", ErrInvalidValue, "cell_size and max_step must be positive")
	}
	if t.Player.ArmorAbsorb < 0 || t.Player.ArmorAbsorb > 1 {
		return configErr("tuning.yaml", ErrInvalidValue, "armor_absorb %.2f outside [0,1]", t.Player.ArmorAbsorb)
	}
	if t.Actors.CoordSpeed <= 0 || t.Actors.ChaseSpeed <= 0 {
		return configErr("tuning.yaml", ErrInvalidValue, "chase and coordination speeds must be positive")
	}

	for _, w := range b.Arsenal.Weapons {
		if w.ID == "" {
			return configErr("weapons.yaml", ErrInvalidValue, "weapon without id")
		}
		if w.Damage < 0 || w.AmmoCost < 0 || w.Cooldown < 0 || w.Spread < 0 || w.Pellets < 1 {
			return configErr("weapons.yaml", ErrInvalidValue, "weapon %q has negative stats or no pellets", w.ID)
		}
	}
	if _, ok := b.Weapon(b.Arsenal.StartWeapon); !ok {
		return configErr("weapons.yaml", ErrUnknownWeapon, "start weapon %q", b.Arsenal.StartWeapon)
	}
	for _, a := range b.Arsenal.Ammo {
		if a.StunChance < 0 || a.StunChance > 1 || a.DamageMul < 0 {
			return configErr("weapons.yaml", ErrInvalidValue, "ammo %q", a.ID)
		}
	}

	for i := range b.Archetypes.Archetypes {
		if err := b.validateArchetype(&b.Archetypes.Archetypes[i]); err != nil {
			return err
		}
	}

	for _, p := range b.Pickups.Pickups {
		for _, ef := range p.Effects {
			switch ef.Type {
			case EffectHeal, EffectAmmo, EffectArmor, EffectSpeed:
			case EffectWeapon:
				if _, ok := b.Weapon(ef.Weapon); !ok {
					return configErr("pickups.yaml", ErrUnknownWeapon, "pickup %q grants %q", p.ID, ef.Weapon)
				}
			default:
				return configErr("pickups.yaml", ErrInvalidValue, "pickup %q effect %q", p.ID, ef.Type)
			}
		}
	}

	for i := range b.Levels {
		if err := b.ValidateLevel(&b.Levels[i]); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bundle) validateArchetype(a *ArchetypeDef) error {
	src := "archetypes.yaml"
	if a.ID == "" {
		return configErr(src, ErrInvalidValue, "archetype without id")
	}
	if a.MaxHP <= 0 {
		return configErr(src, ErrInvalidValue, "%s: max_hp %d", a.ID, a.MaxHP)
	}
	if !startStates[a.StartState] {
		return configErr(src, ErrInvalidValue, "%s: start_state %q", a.ID, a.StartState)
	}
	missing := false
	switch a.Behavior {
	case BehaviorNone:
	case BehaviorDash:
		missing = a.Dash == nil
	case BehaviorSpin:
		missing = a.Spin == nil
	case BehaviorHeal:
		missing = a.Heal == nil
	case BehaviorSummon:
		missing = a.Summon == nil
		if !missing {
			if len(a.Summon.Types) == 0 {
				return configErr(src, ErrInvalidValue, "%s: summon without types", a.ID)
			}
			for _, t := range a.Summon.Types {
				if _, ok := b.Archetype(t); !ok {
					return configErr(src, ErrUnknownArchetype, "%s summons %q", a.ID, t)
				}
			}
		}
	case BehaviorSlow:
		missing = a.Slow == nil
	case BehaviorShield:
		missing = a.Shield == nil
	case BehaviorDebater:
		missing = a.Debater == nil
	default:
		return configErr(src, ErrInvalidValue, "%s: behavior %q", a.ID, a.Behavior)
	}
	if missing {
		return configErr(src, ErrInvalidValue, "%s: behavior %q without its %s block", a.ID, a.Behavior, a.Behavior)
	}
	return nil
}

// ValidateLevel checks a level against the loaded rules. It is exported so
// hand-built levels get the same checks as the shipped ones.
func (b *Bundle) ValidateLevel(l *LevelDef) error {
	src := fmt.Sprintf("level %s", l.ID)
	for z, row := range l.Map {
		for x, c := range row {
			switch c {
			case TileFloor, TileWall, TileDoor, TileExit, TilePlayer, TileVending, TileBench, ' ':
			default:
				return configErr(src, ErrUnknownTile, "%q at %d,%d", c, x, z)
			}
		}
	}
	if !l.HasPlayerStart() {
		return configErr(src, ErrNoPlayerStart, "")
	}
	for _, e := range l.Enemies {
		if _, ok := b.Archetype(e.Type); !ok {
			return configErr(src, ErrUnknownArchetype, "%q at %d,%d", e.Type, e.X, e.Y)
		}
	}
	for _, p := range l.Pickups {
		if _, ok := b.Pickup(p.Type); !ok {
			return configErr(src, ErrUnknownPickup, "%q at %d,%d", p.Type, p.X, p.Y)
		}
	}
	return nil
}
