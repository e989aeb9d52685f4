package combat

import "arenasim/internal/config"

// ComboTracker is the decaying kill streak.
type ComboTracker struct {
	Combo int
	Timer float64
	cfg   config.ComboTuning
}

func NewComboTracker(cfg config.ComboTuning) ComboTracker {
	return ComboTracker{cfg: cfg}
}

// Kill extends the streak and returns the score gained and whether the
// streak is long enough to announce.
func (c *ComboTracker) Kill() (gain int, announce bool) {
	c.Combo++
	c.Timer = c.cfg.Window
	gain = c.cfg.Flat + c.cfg.PerCombo*c.Combo
	return gain, c.Combo >= c.cfg.AnnounceAt
}

// Decay runs the window down and reports whether the streak just ended.
func (c *ComboTracker) Decay(dt float64) bool {
	if c.Combo == 0 {
		return false
	}
	c.Timer = countdown(c.Timer, dt)
	if c.Timer > 0 {
		return false
	}
	c.Combo = 0
	return true
}
