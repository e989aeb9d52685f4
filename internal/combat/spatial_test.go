package combat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// half draws a multiple of 0.5 so every sum below is exact.
func half(t *rapid.T, lo, hi int, label string) float64 {
	return float64(rapid.IntRange(lo*2, hi*2).Draw(t, label)) / 2
}

func drawBoxes(t *rapid.T) []Box {
	n := rapid.IntRange(0, 8).Draw(t, "n")
	boxes := make([]Box, n)
	for i := range boxes {
		c := Vec3{half(t, -10, 10, "cx"), half(t, -10, 10, "cy"), half(t, 0, 4, "cz")}
		h := Vec3{half(t, 0, 3, "hx"), half(t, 0, 3, "hy"), half(t, 0, 2, "hz")}
		boxes[i] = BoxAround(c, h)
	}
	return boxes
}

// overlaps is the per-axis distance form of the probe test.
func overlaps(b Box, p Vec2, r, lo, hi float64) bool {
	c := b.Center()
	hx, hy := (b.Max.X-b.Min.X)/2, (b.Max.Y-b.Min.Y)/2
	return math.Abs(p.X-c.X) <= r+hx &&
		math.Abs(p.Y-c.Y) <= r+hy &&
		b.Min.Z <= hi && b.Max.Z >= lo
}

func TestIndex_BlockedIffProbeOverlaps(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		boxes := drawBoxes(t)
		ix := NewIndex(probeLow, probeHigh)
		ix.Rebuild(boxes)
		p := Vec2{half(t, -12, 12, "px"), half(t, -12, 12, "py")}
		r := half(t, 0, 2, "r")

		want := false
		for _, b := range boxes {
			if overlaps(b, p, r, probeLow, probeHigh) {
				want = true
			}
		}
		if got := ix.Blocked(p, r); got != want {
			t.Fatalf("Blocked(%v, %v) = %v, want %v", p, r, got, want)
		}
	})
}

func TestIndex_BlockedTranslationInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		boxes := drawBoxes(t)
		p := Vec2{half(t, -12, 12, "px"), half(t, -12, 12, "py")}
		r := half(t, 0, 2, "r")
		d := Vec2{half(t, -50, 50, "dx"), half(t, -50, 50, "dy")}

		moved := make([]Box, len(boxes))
		for i, b := range boxes {
			moved[i] = b.Translate(d.At(0))
		}
		a, b := NewIndex(probeLow, probeHigh), NewIndex(probeLow, probeHigh)
		a.Rebuild(boxes)
		b.Rebuild(moved)
		if a.Blocked(p, r) != b.Blocked(p.Add(d), r) {
			t.Fatalf("translation by %v changed the answer at %v", d, p)
		}
	})
}

func TestSlide_NeverEndsBlocked(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ix := NewIndex(probeLow, probeHigh)
		ix.Rebuild(drawBoxes(t))
		from := Vec2{half(t, -12, 12, "fx"), half(t, -12, 12, "fy")}
		r := half(t, 0, 1, "r")
		if ix.Blocked(from, r) {
			t.Skip("start is inside geometry")
		}
		delta := Vec2{half(t, -2, 2, "dx"), half(t, -2, 2, "dy")}
		for _, yFirst := range []bool{false, true} {
			if got := slide(ix, from, delta, r, yFirst); ix.Blocked(got, r) {
				t.Fatalf("slide(yFirst=%v) ended blocked at %v", yFirst, got)
			}
		}
		// a single axis move cannot depend on the axis order
		ax := Vec2{delta.X, 0}
		if slide(ix, from, ax, r, false) != slide(ix, from, ax, r, true) {
			t.Fatalf("axis order changed an X-only move")
		}
	})
}

func TestSlide_AlongWall(t *testing.T) {
	ix := NewIndex(probeLow, probeHigh)
	// wall face at x = 5
	ix.Rebuild([]Box{{Min: Vec3{5, -10, 0}, Max: Vec3{7, 10, 4}}})
	got := Slide(ix, Vec2{4, 0}, Vec2{1, 1}, 0.3)
	assert.Equal(t, Vec2{4, 1}, got, "blocked in X, free in Y")
	got = Slide(ix, Vec2{0, 0}, Vec2{1, 1}, 0.3)
	assert.Equal(t, Vec2{1, 1}, got)
}

func TestIndex_NonsenseRadiusIsNotBlocked(t *testing.T) {
	ix := NewIndex(probeLow, probeHigh)
	ix.Rebuild([]Box{{Min: Vec3{-1, -1, 0}, Max: Vec3{1, 1, 4}}})
	assert.True(t, ix.Blocked(Vec2{}, 0))
	assert.False(t, ix.Blocked(Vec2{}, -1))
	assert.False(t, ix.Blocked(Vec2{}, math.NaN()))
	assert.False(t, ix.Blocked(Vec2{}, math.Inf(1)))
}

func TestWorld_BlockedByClosedDoorsOnly(t *testing.T) {
	w := newArena(t,
		"##########",
		"#........#",
		"#....D...#",
		"#........#",
		"#....P...#",
		"##########",
	)
	is := assert.New(t)
	is.Len(w.Doors, 1)
	door := w.Doors[0]
	is.True(w.Blocked(door.Pos, 0.3))
	door.Open = true
	is.False(w.Blocked(door.Pos, 0.3))
}

func TestVec2_Rotate(t *testing.T) {
	from := Vec2{1, 0}
	got := from.Rotate(Vec2{-1, 0}, 0.5)
	assert.InDelta(t, math.Cos(0.5), got.X, 1e-9)
	assert.InDelta(t, 0.5, math.Abs(math.Atan2(got.Y, got.X)), 1e-9)

	got = from.Rotate(Vec2{0, 1}, 10)
	assert.InDelta(t, 0, got.X, 1e-9)
	assert.InDelta(t, 1, got.Y, 1e-9)
}
