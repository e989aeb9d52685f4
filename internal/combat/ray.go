package combat

import "math"

// Class selects which object set a ray query tests.
type Class uint8

const (
	ClassActors Class = iota
	// walls and closed doors
	ClassStatic
	ClassBarrels
	ClassProps
	ClassVending
)

const (
	barrelRadius = 0.4
	barrelHeight = 1.2
	propHeight   = 0.8
)

// Hit is the nearest intersection of one query. It is only valid for the
// tick that produced it.
type Hit struct {
	Class Class
	ID    EntityID
	Dist  float64
	Point Vec3
	// static hits only: the volume is a door, ID is the door's
	Door bool
}

// CastRay returns the nearest object of class c within maxRange. Zero or
// non-finite directions and non-positive ranges never hit.
func (w *World) CastRay(r Ray, c Class, maxRange float64) (Hit, bool) {
	if !r.valid() || !(maxRange > 0) {
		return Hit{}, false
	}
	r.Dir = r.Dir.Norm()
	best := Hit{Class: c, Dist: math.Inf(1)}
	consider := func(id EntityID, t float64, ok bool) {
		if ok && t <= maxRange && t < best.Dist {
			best.ID, best.Dist = id, t
		}
	}
	switch c {
	case ClassActors:
		at := &w.tun.Actors
		for _, id := range w.order {
			a := w.actors[id]
			t, ok := r.hitCylinder(a.Pos, at.HitRadius, a.height(at))
			consider(id, t, ok)
		}
	case ClassStatic:
		if i, t, ok := w.Index.Cast(r, maxRange); ok {
			consider(EntityID(i), t, true)
		}
		for _, d := range w.Doors {
			if d.Open {
				continue
			}
			t, ok := r.hitBox(d.box)
			if ok && t <= maxRange && t < best.Dist {
				best.ID, best.Dist, best.Door = d.ID, t, true
			}
		}
	case ClassBarrels:
		for _, b := range w.Barrels {
			if !b.Active {
				continue
			}
			t, ok := r.hitCylinder(b.Pos, barrelRadius, barrelHeight)
			consider(b.ID, t, ok)
		}
	case ClassProps:
		for _, p := range w.Props {
			t, ok := r.hitCylinder(p.Pos, w.tun.Props.Radius, propHeight)
			consider(p.ID, t, ok)
		}
	case ClassVending:
		for _, v := range w.Vending {
			if v.Broken {
				continue
			}
			t, ok := r.hitBox(v.box)
			consider(v.ID, t, ok)
		}
	default:
		return Hit{}, false
	}
	if math.IsInf(best.Dist, 1) {
		return Hit{}, false
	}
	best.Point = r.At(best.Dist)
	return best, true
}

// lineOfSight reports whether nothing static sits between the two ground
// points at height z.
func (w *World) lineOfSight(from, to Vec2, z float64) bool {
	d := to.Sub(from)
	dist := d.Len()
	if dist == 0 {
		return true
	}
	_, ok := w.CastRay(Ray{Origin: from.At(z), Dir: d.At(0)}, ClassStatic, dist)
	return !ok
}
