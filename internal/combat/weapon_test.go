package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func equip(t *testing.T, w *World, weapon string) {
	t.Helper()
	_, ok := w.Rules.Weapon(weapon)
	require.True(t, ok, weapon)
	w.Player.Grant(weapon)
	w.Player.Weapon = weapon
}

func TestFire_ShotgunPointBlank(t *testing.T) {
	w := newArena(t)
	equip(t, w, "shotgun")
	a := spawn(t, w, "sd", Vec2{11, 10})

	evs := w.Step(Input{DT: frame, Fire: true})

	assert.Equal(t, 14, a.HP, "six pellets of six")
	assert.True(t, w.alive(a))
	assert.Empty(t, eventsOf(evs, EvActorKilled))
	assert.Len(t, eventsOf(evs, EvActorDamaged), 6)
	assert.Equal(t, 1, w.Player.ShotsFired)
	assert.Equal(t, 1, w.Player.ShotsHit)
	assert.Equal(t, 48, w.Player.Ammo)
}

func TestFire_ShieldBlocksFromTheFront(t *testing.T) {
	w := newArena(t)
	a := spawn(t, w, "pressekreterare", Vec2{14, 10})

	a.Facing = Vec2{-1, 0}
	w.fire()
	assert.Equal(t, 50, a.HP)
	assert.Len(t, eventsOf(w.events, EvActorBlocked), 1)
	assert.Equal(t, 1, w.Player.ShotsFired)
	assert.Zero(t, w.Player.ShotsHit, "a blocked shot is a miss")

	// -0.3 exactly is not a block
	a.Facing = Vec2{0.3, 0.9539392014169456}
	w.Player.fireCooldown = 0
	w.fire()
	assert.Equal(t, 38, a.HP)

	a.Facing = Vec2{1, 0}
	w.Player.fireCooldown = 0
	w.fire()
	assert.Equal(t, 26, a.HP)
	assert.Len(t, eventsOf(w.events, EvActorBlocked), 1)
}

func TestFire_ShieldIgnoresDebateAndAmmo(t *testing.T) {
	w := newArena(t)
	a := spawn(t, w, "pressekreterare", Vec2{14, 10})
	a.Facing = Vec2{-1, 0}
	a.State = Debate
	a.StateTimer = 3
	w.Player.AmmoType = 1
	w.fire()
	assert.Equal(t, 50, a.HP)
}

func TestFire_DebateDoublesAndAmmoMultiplies(t *testing.T) {
	w := newArena(t)
	a := spawn(t, w, "sd", Vec2{14, 10})
	a.State = Debate
	a.StateTimer = 3
	w.fire()
	assert.Equal(t, 26, a.HP)

	b := spawn(t, w, "sd", Vec2{14, 10})
	w.removeActor(a.ID)
	w.Player.AmmoType = 1
	w.Player.fireCooldown = 0
	w.fire()
	assert.Equal(t, 32, b.HP, "hollow point: 12 * 1.5")
	assert.Equal(t, 42.0, w.Player.DamageByWeapon["pistol"])
}

func TestFire_EmptyClick(t *testing.T) {
	w := newArena(t)
	a := spawn(t, w, "sd", Vec2{14, 10})
	w.Player.Ammo = 0
	w.fire()
	assert.Len(t, eventsOf(w.events, EvWeaponEmpty), 1)
	assert.Equal(t, 50, a.HP)
	assert.Zero(t, w.Player.ShotsFired)
	assert.Equal(t, w.tun.Player.EmptyClickPenalty, w.Player.fireCooldown)

	w.fire()
	assert.Len(t, eventsOf(w.events, EvWeaponEmpty), 1, "penalty cooldown")
}

func TestFire_ShotgunNeedsTwoRounds(t *testing.T) {
	w := newArena(t)
	equip(t, w, "shotgun")
	w.Player.Ammo = 1
	w.fire()
	assert.Len(t, eventsOf(w.events, EvWeaponEmpty), 1)
	assert.Equal(t, 1, w.Player.Ammo)
}

func TestFire_StunWeapon(t *testing.T) {
	w := newArena(t)
	equip(t, w, "folkvett")
	near := spawn(t, w, "ulf", Vec2{15, 10})
	far := spawn(t, w, "sd", Vec2{16.5, 10})
	ammo := w.Player.Ammo

	w.fire()
	assert.Equal(t, Debate, near.State)
	assert.Equal(t, 3.0, near.StateTimer)
	assert.Equal(t, 100, near.HP, "no damage")
	assert.Equal(t, Patrol, far.State, "only the nearest actor")
	assert.Equal(t, ammo, w.Player.Ammo)
	assert.Zero(t, w.Player.ShotsFired)
	assert.Zero(t, w.Player.ShotsHit)

	w.removeActor(near.ID)
	w.Player.fireCooldown = 0
	w.Player.Pos = Vec2{2, 10}
	w.fire()
	assert.Equal(t, Patrol, far.State, "out of the stun range")
}

func TestFire_CooldownGatesShots(t *testing.T) {
	w := newArena(t)
	fired := 0
	for i := 0; i < 60; i++ {
		fired += len(eventsOf(w.Step(Input{DT: frame, Fire: true}), EvWeaponFired))
	}
	// one second of pistol at 0.2s
	assert.InDelta(t, 5, fired, 1)
	assert.Equal(t, fired, w.Player.ShotsFired)
}

func TestFire_MissFeedsScenery(t *testing.T) {
	w := newArena(t)
	w.Vending = append(w.Vending, &Vending{ID: w.newID(), Pos: Vec2{14, 10}, HP: 30,
		box: BoxAround(Vec3{14, 10, 1}, Vec3{0.5, 0.5, 1})})
	v := w.Vending[0]

	w.fire()
	assert.Equal(t, 18, v.HP)
	for i := 0; i < 2; i++ {
		w.Player.fireCooldown = 0
		w.fire()
	}
	assert.True(t, v.Broken)
	assert.Len(t, eventsOf(w.events, EvVendingBroken), 1)
	require.Len(t, w.Pickups, 1, "a broken machine drops loot")
	assert.Equal(t, v.Pos, w.Pickups[0].Pos)
	assert.NotEmpty(t, eventsOf(w.events, EvImpact))
	assert.Zero(t, w.Player.ShotsHit)
}

func TestFire_PropGetsPushed(t *testing.T) {
	w := newArena(t)
	pr := &Prop{ID: w.newID(), Type: "bin", Pos: Vec2{14, 10}}
	w.Props = append(w.Props, pr)
	w.Player.Pitch = -0.3
	w.fire()
	assert.Greater(t, pr.Vel.X, 0.0)
	w.updateProps(frame)
	assert.Greater(t, pr.Pos.X, 14.0)
}

func TestSwitchAndCycle(t *testing.T) {
	w := newArena(t)
	assert.False(t, w.trySwitch(3), "not owned yet")
	w.Player.Grant("shotgun")
	assert.True(t, w.trySwitch(3))
	assert.Equal(t, "shotgun", w.Player.Weapon)
	assert.False(t, w.trySwitch(3), "already equipped")
	assert.False(t, w.trySwitch(9))

	for i := 0; i < 3; i++ {
		w.cycleAmmo()
	}
	assert.Equal(t, 0, w.Player.AmmoType, "three ammo types wrap")
	assert.Len(t, eventsOf(w.events, EvAmmoCycled), 3)
}
