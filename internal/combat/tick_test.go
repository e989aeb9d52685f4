package combat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep_ClampsDelta(t *testing.T) {
	w := newArena(t)
	w.Step(Input{DT: 5})
	assert.InDelta(t, w.tun.MaxStep, w.Time, 1e-12)
	w.Step(Input{DT: -1})
	w.Step(Input{DT: math.NaN()})
	assert.InDelta(t, w.tun.MaxStep, w.Time, 1e-12)
}

func TestStep_LongFrameDoesNotSkipDeferred(t *testing.T) {
	w := newArena(t)
	w.fire()
	require.Equal(t, 1, w.sched.Len())
	evs := w.Step(Input{DT: 10})
	assert.Len(t, eventsOf(evs, EvWeaponFlashEnd), 1)
	w.Player.fireCooldown = 0.05
	w.Step(Input{DT: 10})
	assert.Zero(t, w.Player.fireCooldown, "timers clamp instead of going negative")
}

func TestStep_MovesInViewSpace(t *testing.T) {
	w := newArena(t)
	w.Step(Input{DT: 0.1, Move: Vec2{0, 1}, Yaw: math.Pi / 2})
	assert.InDelta(t, 10, w.Player.Pos.X, 1e-9)
	assert.InDelta(t, 11, w.Player.Pos.Y, 1e-9)

	// diagonal intent is normalized
	w.Step(Input{DT: 0.1, Move: Vec2{1, 1}, Yaw: 0})
	assert.InDelta(t, 1, w.Player.Pos.Sub(Vec2{10, 11}).Len(), 1e-9)
}

func TestStep_PlayerSlidesAlongWall(t *testing.T) {
	w := newArena(t)
	w.Player.Pos = Vec2{16.5, 10}
	for i := 0; i < 10; i++ {
		w.Step(Input{DT: 0.1, Move: Vec2{0, 1}, Yaw: math.Pi / 4})
	}
	assert.LessOrEqual(t, w.Player.Pos.X, 17-w.tun.Player.Radius)
	assert.Greater(t, w.Player.Pos.Y, 14.0, "kept moving along the wall")
}

func TestStep_SpeedModifiers(t *testing.T) {
	w := newArena(t)
	p := w.Player
	p.SpeedBoost = 0.05
	w.Step(Input{DT: 0.1, Move: Vec2{0, 1}})
	assert.Zero(t, p.SpeedBoost)
	assert.InDelta(t, 10+w.tun.Player.Speed*0.1, p.Pos.X, 1e-9, "boost expired this tick")

	p.SpeedBoost = -1
	x := p.Pos.X
	w.Step(Input{DT: 0.1, Move: Vec2{0, 1}})
	assert.InDelta(t, -0.9, p.SpeedBoost, 1e-9)
	assert.InDelta(t, x+w.tun.Player.SlowSpeed*0.1, p.Pos.X, 1e-9)
}

func TestStep_InteractTogglesDoor(t *testing.T) {
	w := newArena(t,
		"##########",
		"#........#",
		"#....D...#",
		"#........#",
		"#....P...#",
		"##########",
	)
	door := w.Doors[0]
	evs := w.Step(Input{DT: frame, Interact: true})
	assert.Empty(t, eventsOf(evs, EvDoorToggled), "door is 4 away")

	w.Player.Pos = Vec2{10, 6}
	evs = w.Step(Input{DT: frame, Interact: true})
	require.Len(t, eventsOf(evs, EvDoorToggled), 1)
	assert.True(t, door.Open)

	w.Player.Pos = Vec2{10, 4.1}
	w.Step(Input{DT: frame, Interact: true})
	assert.True(t, door.Open, "will not close on the player")

	w.Player.Pos = Vec2{10, 6}
	w.Step(Input{DT: frame, Interact: true})
	assert.False(t, door.Open)
}

func TestStep_InteractStartsDebate(t *testing.T) {
	w := newArena(t)
	j := spawn(t, w, "jimmie", Vec2{12, 10})
	w.Step(Input{DT: frame, Interact: true})
	assert.Equal(t, Debate, j.State)
	assert.InDelta(t, 4-frame, j.StateTimer, 1e-9)
}

func TestStep_Melee(t *testing.T) {
	w := newArena(t)
	a := spawn(t, w, "sd", Vec2{12, 10})
	far := spawn(t, w, "sd", Vec2{16, 10})
	w.Step(Input{DT: frame, Melee: true})
	assert.Equal(t, 25, a.HP)
	assert.Equal(t, 50, far.HP)
	w.Step(Input{DT: frame, Melee: true})
	assert.Equal(t, 25, a.HP, "melee cooldown")
}

func TestStep_Pickups(t *testing.T) {
	w := newArena(t)
	p := w.Player
	p.Health = 50
	h := w.addPickup("health", Vec2{10.5, 10})
	w.Step(Input{DT: frame})
	assert.True(t, h.Taken)
	assert.Equal(t, 75.0, p.Health)

	p.Health = 120
	h2 := w.addPickup("health", Vec2{10.5, 10})
	w.Step(Input{DT: frame})
	assert.False(t, h2.Taken, "nothing to heal")
	assert.Equal(t, 120.0, p.Health)

	s := w.addPickup("semla", Vec2{9.5, 10})
	w.Step(Input{DT: frame})
	assert.True(t, s.Taken)
	assert.Equal(t, 150.0, p.Health)

	g := w.addPickup("shotgun", Vec2{10, 10.5})
	evs := w.Step(Input{DT: frame})
	assert.True(t, g.Taken)
	assert.Equal(t, "shotgun", p.Weapon)
	assert.True(t, p.Owns("shotgun"))
	assert.Equal(t, 60, p.Ammo)
	assert.Len(t, eventsOf(evs, EvAnnounce), 1)

	p.Ammo = 100
	am := w.addPickup("ammo", Vec2{10, 9.5})
	w.Step(Input{DT: frame})
	assert.False(t, am.Taken, "ammo is full")

	c := w.addPickup("coffee", Vec2{10, 9.5})
	w.Step(Input{DT: frame})
	assert.True(t, c.Taken)
	assert.InDelta(t, 10, p.SpeedBoost, 1e-9)
}

func TestStep_ReachingExitEndsLevel(t *testing.T) {
	w := newArena(t,
		"##########",
		"#........#",
		"#....PE..#",
		"##########",
	)
	w.Player.Pos = Vec2{11, 4}
	evs := w.Step(Input{DT: frame})
	assert.Len(t, eventsOf(evs, EvLevelExit), 1)
	over, why := w.Over()
	assert.True(t, over)
	assert.Equal(t, OutcomeExit, why)
	assert.Nil(t, w.Step(Input{DT: frame}))
}

func TestStep_ActorsCannotKillPlayerTwice(t *testing.T) {
	w := newArena(t)
	w.Player.Health = 0.1
	spawn(t, w, "sd", Vec2{11, 10})
	spawn(t, w, "sd", Vec2{9, 10})
	evs := w.Step(Input{DT: 0.1})
	assert.Len(t, eventsOf(evs, EvPlayerDied), 1)
}

func TestScheduler_OrdersByTimeThenPush(t *testing.T) {
	var s Scheduler
	s.Push(2, deferChain, 1)
	s.Push(1, deferChain, 2)
	s.Push(1, deferChain, 3)
	s.Push(3, deferChain, 4)

	var got []EntityID
	for {
		d, ok := s.PopDue(2)
		if !ok {
			break
		}
		got = append(got, d.ID)
	}
	assert.Equal(t, []EntityID{2, 3, 1}, got)
	assert.Equal(t, 1, s.Len())
	s.Clear()
	_, ok := s.PopDue(100)
	assert.False(t, ok)
}
