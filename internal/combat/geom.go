package combat

import "math"

// Vec2 is a point or direction on the ground plane. Height is carried
// separately; Vec3 uses Z as up.
type Vec2 struct{ X, Y float64 }

func (a Vec2) Add(b Vec2) Vec2      { return Vec2{a.X + b.X, a.Y + b.Y} }
func (a Vec2) Sub(b Vec2) Vec2      { return Vec2{a.X - b.X, a.Y - b.Y} }
func (a Vec2) Len() float64         { return math.Hypot(a.X, a.Y) }
func (a Vec2) Dist(b Vec2) float64  { return a.Sub(b).Len() }
func (a Vec2) Dot(b Vec2) float64   { return a.X*b.X + a.Y*b.Y }
func (a Vec2) Scale(s float64) Vec2 { return Vec2{a.X * s, a.Y * s} }
func (a Vec2) Right() Vec2          { return Vec2{a.Y, -a.X} }
func (a Vec2) At(z float64) Vec3    { return Vec3{a.X, a.Y, z} }
func (a Vec2) Norm() Vec2 {
	l := a.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}

// Heading returns the unit vector for a yaw angle in radians.
func Heading(yaw float64) Vec2 { return Vec2{math.Cos(yaw), math.Sin(yaw)} }

// Rotate turns a toward b by at most maxAngle radians. Both are unit vectors.
func (a Vec2) Rotate(b Vec2, maxAngle float64) Vec2 {
	from := math.Atan2(a.Y, a.X)
	delta := math.Atan2(b.Y, b.X) - from
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}
	for delta < -math.Pi {
		delta += 2 * math.Pi
	}
	if delta > maxAngle {
		delta = maxAngle
	} else if delta < -maxAngle {
		delta = -maxAngle
	}
	return Heading(from + delta)
}

type Vec3 struct{ X, Y, Z float64 }

func (a Vec3) Add(b Vec3) Vec3      { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3      { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3) Scale(s float64) Vec3 { return Vec3{a.X * s, a.Y * s, a.Z * s} }
func (a Vec3) Ground() Vec2         { return Vec2{a.X, a.Y} }
func (a Vec3) Len() float64         { return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z) }
func (a Vec3) Norm() Vec3 {
	l := a.Len()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{a.X / l, a.Y / l, a.Z / l}
}

// Direction builds a unit view vector from yaw and pitch.
func Direction(yaw, pitch float64) Vec3 {
	c := math.Cos(pitch)
	return Vec3{c * math.Cos(yaw), c * math.Sin(yaw), math.Sin(pitch)}
}

// Box is an axis-aligned bounding volume. Touching boxes intersect.
type Box struct{ Min, Max Vec3 }

func BoxAround(center Vec3, half Vec3) Box {
	return Box{Min: center.Sub(half), Max: center.Add(half)}
}

func (b Box) Intersects(o Box) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

func (b Box) Translate(d Vec3) Box { return Box{Min: b.Min.Add(d), Max: b.Max.Add(d)} }

func (b Box) Center() Vec3 { return b.Min.Add(b.Max).Scale(0.5) }

type Ray struct {
	Origin Vec3
	Dir    Vec3
}

func (r Ray) At(t float64) Vec3 { return r.Origin.Add(r.Dir.Scale(t)) }

// valid rejects rays that cannot produce a meaningful hit.
func (r Ray) valid() bool {
	l := r.Dir.Len()
	return l > 0 && !math.IsNaN(l) && !math.IsInf(l, 0)
}

// hitBox is the slab test. It returns the entry distance, 0 when the origin
// is inside the box.
func (r Ray) hitBox(b Box) (float64, bool) {
	tmin, tmax := 0.0, math.Inf(1)
	o := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	d := [3]float64{r.Dir.X, r.Dir.Y, r.Dir.Z}
	lo := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	hi := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}
	for i := 0; i < 3; i++ {
		if d[i] == 0 {
			if o[i] < lo[i] || o[i] > hi[i] {
				return 0, false
			}
			continue
		}
		t1 := (lo[i] - o[i]) / d[i]
		t2 := (hi[i] - o[i]) / d[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}

// hitCylinder intersects an upright cylinder standing on base.
func (r Ray) hitCylinder(base Vec2, radius, height float64) (float64, bool) {
	ox, oy := r.Origin.X-base.X, r.Origin.Y-base.Y
	dx, dy := r.Dir.X, r.Dir.Y
	inside := func(t float64) bool {
		z := r.Origin.Z + r.Dir.Z*t
		return z >= 0 && z <= height
	}
	c := ox*ox + oy*oy - radius*radius
	if c <= 0 {
		if inside(0) {
			return 0, true
		}
		return 0, false
	}
	a := dx*dx + dy*dy
	if a == 0 {
		return 0, false
	}
	b := ox*dx + oy*dy
	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}
	t := (-b - math.Sqrt(disc)) / a
	if t < 0 || !inside(t) {
		return 0, false
	}
	return t, true
}
