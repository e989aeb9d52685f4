package combat

import "math"

// Blocker answers whether an upright probe of radius r standing at p
// overlaps solid geometry.
type Blocker interface {
	Blocked(p Vec2, r float64) bool
}

// Index caches the bounding volumes of static geometry. A linear scan is
// enough for a level's worth of walls.
type Index struct {
	boxes []Box
	// probe volume height range
	lo, hi float64
}

func NewIndex(probeLow, probeHigh float64) *Index {
	return &Index{lo: probeLow, hi: probeHigh}
}

// Rebuild replaces the cached volumes. Called once per level load.
func (ix *Index) Rebuild(static []Box) {
	ix.boxes = append(ix.boxes[:0], static...)
}

func (ix *Index) Len() int     { return len(ix.boxes) }
func (ix *Index) Boxes() []Box { return ix.boxes }

// Probe returns the volume tested for a mover at p.
func (ix *Index) Probe(p Vec2, r float64) Box {
	return Box{
		Min: Vec3{p.X - r, p.Y - r, ix.lo},
		Max: Vec3{p.X + r, p.Y + r, ix.hi},
	}
}

func validRadius(r float64) bool { return r >= 0 && !math.IsNaN(r) && !math.IsInf(r, 0) }

func (ix *Index) Blocked(p Vec2, r float64) bool {
	if !validRadius(r) {
		return false
	}
	probe := ix.Probe(p, r)
	for _, b := range ix.boxes {
		if probe.Intersects(b) {
			return true
		}
	}
	return false
}

// Cast returns the index and entry distance of the nearest static box
// along a normalized ray.
func (ix *Index) Cast(r Ray, maxRange float64) (int, float64, bool) {
	best, bestT := -1, maxRange
	for i, b := range ix.boxes {
		if t, ok := r.hitBox(b); ok && t <= bestT {
			best, bestT = i, t
		}
	}
	return best, bestT, best >= 0
}

// Slide moves from by delta one axis at a time, X first, keeping each axis
// only when the probe at the candidate position is clear.
func Slide(b Blocker, from, delta Vec2, r float64) Vec2 {
	return slide(b, from, delta, r, false)
}

func slide(b Blocker, from, delta Vec2, r float64, yFirst bool) Vec2 {
	pos := from
	stepX := func() {
		if delta.X == 0 {
			return
		}
		if c := (Vec2{pos.X + delta.X, pos.Y}); !b.Blocked(c, r) {
			pos = c
		}
	}
	stepY := func() {
		if delta.Y == 0 {
			return
		}
		if c := (Vec2{pos.X, pos.Y + delta.Y}); !b.Blocked(c, r) {
			pos = c
		}
	}
	if yFirst {
		stepY()
		stepX()
	} else {
		stepX()
		stepY()
	}
	return pos
}
