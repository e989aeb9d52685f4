package combat

// EntityID is stable for the lifetime of a world. Ray hits and deferred
// effects carry it instead of pointers.
type EntityID int

type Event struct {
	T       float64        `json:"t" msgpack:"t"`
	Type    string         `json:"type" msgpack:"type"`
	Payload map[string]any `json:"payload,omitempty" msgpack:"payload,omitempty"`
}

// Event types.
const (
	EvActorDamaged   = "actor.damaged"
	EvActorKilled    = "actor.killed"
	EvActorBlocked   = "actor.blocked"
	EvActorAlert     = "actor.alert"
	EvActorStunned   = "actor.stunned"
	EvActorFlashEnd  = "actor.flash_end"
	EvActorFootstep  = "actor.footstep"
	EvActorSummoned  = "actor.summoned"
	EvPlayerDamaged  = "player.damaged"
	EvPlayerHealed   = "player.healed"
	EvPlayerSlowed   = "player.slowed"
	EvPlayerDied     = "player.died"
	EvDoorToggled    = "door.toggled"
	EvBarrelExploded = "barrel.exploded"
	EvVendingHit     = "vending.hit"
	EvVendingBroken  = "vending.destroyed"
	EvPropHit        = "prop.hit"
	EvImpact         = "impact"
	EvWeaponFired    = "weapon.fired"
	EvWeaponEmpty    = "weapon.empty"
	EvWeaponFlashEnd = "weapon.flash_end"
	EvWeaponSwitched = "weapon.switched"
	EvAmmoCycled     = "ammo.cycled"
	EvPickup         = "pickup.collected"
	EvCombo          = "combo"
	EvAnnounce       = "announce"
	EvLevelExit      = "level.exit"
)
