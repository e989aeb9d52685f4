package combat

import (
	"strings"

	"arenasim/internal/config"
)

type State uint8

const (
	Idle State = iota
	Patrol
	Chase
	Debate
	Flee
)

var stateNames = [...]string{"idle", "patrol", "chase", "debate", "flee"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

func ParseState(s string) (State, bool) {
	for i, n := range stateNames {
		if strings.EqualFold(n, s) {
			return State(i), true
		}
	}
	return Idle, false
}

func startState(def *config.ArchetypeDef) State {
	if s, ok := ParseState(def.StartState); ok {
		return s
	}
	if def.Boss {
		return Idle
	}
	return Patrol
}

// Actor is a hostile. Archetype specific timers live in Behavior.
type Actor struct {
	ID      EntityID
	Type    string
	Def     *config.ArchetypeDef
	Variant int

	HP    int
	MaxHP int
	Armor float64

	State      State
	StateTimer float64

	Pos    Vec2
	Origin Vec2
	Facing Vec2
	// set while ducking; shrinks the hit cylinder
	Crouched bool

	AlertCooldown float64
	FootstepTimer float64

	Behavior Behavior

	target    Vec2
	hasTarget bool
	pause     float64
	flashing  bool
	taunts    *tauntTrack
}

func (a *Actor) Boss() bool { return a.Def != nil && a.Def.Boss }

func (a *Actor) height(t *config.ActorTuning) float64 {
	if a.Crouched {
		return t.CrouchHeight
	}
	return t.Height
}
