package combat

import "math"

// Prop is cosmetic set dressing that gets kicked and shot around.
type Prop struct {
	ID   EntityID
	Type string
	Pos  Vec2
	Vel  Vec2
	Spin float64
}

func (p *Prop) push(impulse Vec2) { p.Vel = p.Vel.Add(impulse) }

// updateProps integrates prop motion. Velocities are per 60 Hz frame.
func (w *World) updateProps(dt float64) {
	t := &w.tun.Props
	scale := dt * 60
	for _, pr := range w.Props {
		if d := pr.Pos.Dist(w.Player.Pos); d < t.KickRadius && d > 0 {
			pr.push(pr.Pos.Sub(w.Player.Pos).Norm().Scale(t.KickImpulse))
		}
		if pr.Vel == (Vec2{}) {
			continue
		}
		step := pr.Vel.Scale(scale)
		if nx := (Vec2{pr.Pos.X + step.X, pr.Pos.Y}); w.Blocked(nx, t.Radius) {
			pr.Vel.X *= t.Bounce
		} else {
			pr.Pos = nx
		}
		if ny := (Vec2{pr.Pos.X, pr.Pos.Y + step.Y}); w.Blocked(ny, t.Radius) {
			pr.Vel.Y *= t.Bounce
		} else {
			pr.Pos = ny
		}
		pr.Spin += pr.Vel.Len() * scale
		pr.Vel = pr.Vel.Scale(math.Pow(t.Friction, scale))
		if pr.Vel.Len() < t.RestSpeed {
			pr.Vel = Vec2{}
		}
	}
}
