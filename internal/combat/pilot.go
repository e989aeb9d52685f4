package combat

import (
	"math"

	"arenasim/internal/config"
)

// Policy produces the player's intent for the next tick.
type Policy interface {
	Next(w *World, dt float64) Input
}

// Pilot is a scripted player: it shoots the nearest visible actor and
// otherwise walks the grid toward the closest exit, opening doors on the
// way.
type Pilot struct {
	Engage float64

	path []Vec2
	cell [2]int
}

func NewPilot() *Pilot { return &Pilot{Engage: 14, cell: [2]int{-1, -1}} }

func (pl *Pilot) Next(w *World, dt float64) Input {
	p := w.Player
	in := Input{DT: dt, Yaw: p.Yaw}
	if a := pl.target(w); a != nil {
		to := a.Pos.Sub(p.Pos)
		dist := to.Len()
		in.Yaw = math.Atan2(to.Y, to.X)
		in.Fire = true
		in.SwitchTo = pl.pickSlot(w, dist)
		switch {
		case dist < w.tun.Interact.MeleeRange:
			in.Melee = true
			in.Move = Vec2{0, -1}
		case dist < 3:
			in.Move = Vec2{0, -1}
		case dist > 6:
			in.Move = Vec2{0, 1}
		}
		return in
	}
	if wp, ok := pl.waypoint(w); ok {
		to := wp.Sub(p.Pos)
		in.Yaw = math.Atan2(to.Y, to.X)
		in.Move = Vec2{0, 1}
	}
	for _, d := range w.Doors {
		if !d.Open && d.Pos.Dist(p.Pos) < w.tun.Interact.DoorRange {
			in.Interact = true
			break
		}
	}
	return in
}

func (pl *Pilot) target(w *World) *Actor {
	p := w.Player
	var best *Actor
	bestD := pl.Engage
	for _, id := range w.order {
		a := w.actors[id]
		d := a.Pos.Dist(p.Pos)
		if d >= bestD || !w.lineOfSight(p.Pos, a.Pos, w.tun.Player.EyeHeight) {
			continue
		}
		best, bestD = a, d
	}
	return best
}

// pickSlot returns the slot of the best owned weapon for the range, or 0
// when the equipped one already is.
func (pl *Pilot) pickSlot(w *World, dist float64) int {
	p := w.Player
	var best *config.WeaponDef
	bestRate := 0.0
	for _, id := range p.Weapons {
		wd, ok := w.Rules.Weapon(id)
		if !ok || wd.Stun || wd.Range < dist || wd.AmmoCost > p.Ammo || wd.Cooldown <= 0 {
			continue
		}
		// up close the biggest single trigger pull wins, further out
		// sustained damage does and spread weapons lose half
		burst := float64(wd.Damage * wd.Pellets)
		rate := burst / wd.Cooldown
		switch {
		case dist < 5:
			rate = burst
		case wd.Pellets > 1:
			rate /= 2
		}
		if rate > bestRate {
			best, bestRate = wd, rate
		}
	}
	if best == nil || best.ID == p.Weapon {
		return 0
	}
	return best.Slot
}

func (pl *Pilot) waypoint(w *World) (Vec2, bool) {
	cell := w.tun.CellSize
	p := w.Player
	here := [2]int{int(math.Round(p.Pos.X / cell)), int(math.Round(p.Pos.Y / cell))}
	if here != pl.cell || len(pl.path) == 0 {
		pl.cell = here
		pl.path = pl.plan(w, here)
	}
	for len(pl.path) > 0 && pl.path[0].Dist(p.Pos) < 0.5 {
		pl.path = pl.path[1:]
	}
	if len(pl.path) == 0 {
		return Vec2{}, false
	}
	return pl.path[0], true
}

// plan is a breadth first search over the tile grid to the nearest exit.
func (pl *Pilot) plan(w *World, from [2]int) []Vec2 {
	walkable := func(x, y int) bool {
		if y < 0 || y >= len(w.Grid) || x < 0 || x >= len(w.Grid[y]) {
			return false
		}
		c := w.Grid[y][x]
		return c != config.TileWall && c != config.TileVending
	}
	if !walkable(from[0], from[1]) {
		return nil
	}
	prev := map[[2]int][2]int{from: from}
	queue := [][2]int{from}
	var goal *[2]int
	for len(queue) > 0 && goal == nil {
		c := queue[0]
		queue = queue[1:]
		if w.Grid[c[1]][c[0]] == config.TileExit {
			goal = &c
			break
		}
		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			n := [2]int{c[0] + d[0], c[1] + d[1]}
			if _, seen := prev[n]; seen || !walkable(n[0], n[1]) {
				continue
			}
			prev[n] = c
			queue = append(queue, n)
		}
	}
	if goal == nil {
		return nil
	}
	var rev []Vec2
	for c := *goal; c != from; c = prev[c] {
		rev = append(rev, w.grid(c[0], c[1]))
	}
	path := make([]Vec2, len(rev))
	for i := range rev {
		path[i] = rev[len(rev)-1-i]
	}
	return path
}
