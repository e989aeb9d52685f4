package combat

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"arenasim/internal/config"
	"arenasim/internal/util"
)

const (
	wallHeight = 4.0
	doorDepth  = 0.5
	// probe volume for movers, well above the floor and below the lintel
	probeLow  = 0.5
	probeHigh = 2.5
)

type Door struct {
	ID   EntityID
	Pos  Vec2
	Open bool
	box  Box
}

type Vending struct {
	ID     EntityID
	Pos    Vec2
	HP     int
	Broken bool
	box    Box
}

type Barrel struct {
	ID     EntityID
	Pos    Vec2
	HP     int
	Active bool
}

type Options struct {
	NewGamePlus bool
	Rng         *rand.Rand
	// Carry keeps inventory, score and armor from the previous level.
	Carry *Player
	Sink  Sink
}

// World is the whole mutable state of one level. It is owned by Step and
// replaced, never patched, when a new level loads.
type World struct {
	RunID uuid.UUID
	Level *config.LevelDef
	Rules *config.Bundle
	Time  float64
	Rng   *rand.Rand
	Sink  Sink

	Player  *Player
	Combo   ComboTracker
	Index   *Index
	Grid    []string
	Doors   []*Door
	Exits   []Vec2
	Vending []*Vending
	Barrels []*Barrel
	Props   []*Prop
	Pickups []*Pickup

	actors  map[EntityID]*Actor
	order   []EntityID
	tun     *config.Tuning
	sched   Scheduler
	ngPlus  bool
	nextID  EntityID
	events  []Event
	over    bool
	outcome string
}

// NewWorld builds a level from its grid and placement lists. Malformed
// level data is a *config.ConfigError.
func NewWorld(rules *config.Bundle, level *config.LevelDef, opts Options) (*World, error) {
	if rules == nil || level == nil {
		return nil, fmt.Errorf("new world: nil rules or level")
	}
	if err := rules.ValidateLevel(level); err != nil {
		return nil, err
	}
	rng := opts.Rng
	if rng == nil {
		rng = util.New(1)
	}
	w := &World{
		Level:  level,
		Rules:  rules,
		Rng:    rng,
		Sink:   opts.Sink,
		Index:  NewIndex(probeLow, probeHigh),
		Grid:   append([]string(nil), level.Map...),
		actors: map[EntityID]*Actor{},
		tun:    &rules.Tuning,
		ngPlus: opts.NewGamePlus,
	}
	w.Combo = NewComboTracker(rules.Tuning.Combo)
	if id, err := uuid.NewRandomFromReader(rng); err == nil {
		w.RunID = id
	} else {
		w.RunID = uuid.New()
	}

	cell := w.tun.CellSize
	var walls []Box
	var start Vec2
	for row, line := range level.Map {
		for col, c := range line {
			pos := Vec2{float64(col) * cell, float64(row) * cell}
			switch c {
			case config.TileWall:
				walls = append(walls, BoxAround(pos.At(wallHeight/2), Vec3{cell / 2, cell / 2, wallHeight / 2}))
			case config.TileDoor:
				w.Doors = append(w.Doors, &Door{
					ID:  w.newID(),
					Pos: pos,
					box: BoxAround(pos.At(wallHeight/2), Vec3{cell / 2, doorDepth / 2, wallHeight / 2}),
				})
			case config.TileExit:
				w.Exits = append(w.Exits, pos)
			case config.TilePlayer:
				start = pos
			case config.TileVending:
				w.Vending = append(w.Vending, &Vending{
					ID:  w.newID(),
					Pos: pos,
					HP:  w.tun.Ranges.VendingHP,
					box: BoxAround(pos.At(1), Vec3{0.5, 0.5, 1}),
				})
			}
		}
	}
	w.Index.Rebuild(walls)

	w.Player = newPlayer(rules, opts.Carry)
	w.Player.Pos = start

	for _, s := range level.Enemies {
		def, ok := rules.Archetype(s.Type)
		if !ok {
			return nil, &config.ConfigError{Source: "level " + level.ID, Reason: s.Type, Err: config.ErrUnknownArchetype}
		}
		a := w.spawnActor(def, w.grid(s.X, s.Y))
		if s.Variant != nil {
			a.Variant = *s.Variant
		} else {
			a.Variant = w.Rng.Intn(2)
		}
	}
	for _, b := range level.Barrels {
		w.Barrels = append(w.Barrels, &Barrel{ID: w.newID(), Pos: w.grid(b.X, b.Y), HP: w.tun.Explosion.BarrelHP, Active: true})
	}
	for _, p := range level.Props {
		w.Props = append(w.Props, &Prop{ID: w.newID(), Type: p.Type, Pos: w.grid(p.X, p.Y)})
	}
	for _, p := range level.Pickups {
		w.addPickup(p.Type, w.grid(p.X, p.Y))
	}
	return w, nil
}

func (w *World) grid(x, y int) Vec2 {
	return Vec2{float64(x) * w.tun.CellSize, float64(y) * w.tun.CellSize}
}

func (w *World) newID() EntityID {
	w.nextID++
	return w.nextID
}

func (w *World) Tuning() *config.Tuning { return w.tun }

// Over reports whether the world stopped accepting input, and why.
func (w *World) Over() (bool, string) { return w.over, w.outcome }

func (w *World) end(outcome string) {
	w.over = true
	w.outcome = outcome
	w.sched.Clear()
}

// Blocked checks static walls, closed doors and intact vending machines.
func (w *World) Blocked(p Vec2, r float64) bool {
	if !validRadius(r) {
		return false
	}
	if w.Index.Blocked(p, r) {
		return true
	}
	probe := w.Index.Probe(p, r)
	for _, d := range w.Doors {
		if !d.Open && probe.Intersects(d.box) {
			return true
		}
	}
	for _, v := range w.Vending {
		if !v.Broken && probe.Intersects(v.box) {
			return true
		}
	}
	return false
}

func (w *World) emit(typ string, payload map[string]any) {
	ev := Event{T: w.Time, Type: typ, Payload: payload}
	w.events = append(w.events, ev)
	if w.Sink != nil {
		w.Sink.Publish(ev)
	}
}

func (w *World) Actor(id EntityID) (*Actor, bool) {
	a, ok := w.actors[id]
	return a, ok
}

// Actors returns the live actors in spawn order.
func (w *World) Actors() []*Actor {
	out := make([]*Actor, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.actors[id])
	}
	return out
}

func (w *World) LiveActors() int { return len(w.order) }

func (w *World) alive(a *Actor) bool {
	if a == nil {
		return false
	}
	cur, ok := w.actors[a.ID]
	return ok && cur == a && a.HP > 0
}

func (w *World) actorIDs() []EntityID {
	return append([]EntityID(nil), w.order...)
}

func (w *World) spawnActor(def *config.ArchetypeDef, pos Vec2) *Actor {
	hp := def.MaxHP
	if w.ngPlus {
		hp *= 2
	}
	a := &Actor{
		ID:       w.newID(),
		Type:     def.ID,
		Def:      def,
		HP:       hp,
		MaxHP:    hp,
		Armor:    def.Armor,
		State:    startState(def),
		Pos:      pos,
		Origin:   pos,
		Facing:   Vec2{0, 1},
		Behavior: newBehavior(def),
		taunts:   newTauntTrack(def.Taunts),
	}
	w.actors[a.ID] = a
	w.order = append(w.order, a.ID)
	return a
}

func (w *World) removeActor(id EntityID) {
	if _, ok := w.actors[id]; !ok {
		return
	}
	delete(w.actors, id)
	for i, o := range w.order {
		if o == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

func (w *World) barrel(id EntityID) *Barrel {
	for _, b := range w.Barrels {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func (w *World) prop(id EntityID) *Prop {
	for _, p := range w.Props {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (w *World) vending(id EntityID) *Vending {
	for _, v := range w.Vending {
		if v.ID == id {
			return v
		}
	}
	return nil
}

func (w *World) door(id EntityID) *Door {
	for _, d := range w.Doors {
		if d.ID == id {
			return d
		}
	}
	return nil
}
