package combat

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/vmihailenco/msgpack/v5"
)

type SimResult struct {
	RunID          string             `json:"run_id" msgpack:"run_id"`
	Level          string             `json:"level" msgpack:"level"`
	Seed           int64              `json:"seed" msgpack:"seed"`
	Outcome        string             `json:"outcome" msgpack:"outcome"`
	Duration       float64            `json:"duration" msgpack:"duration"`
	Kills          int                `json:"kills" msgpack:"kills"`
	Score          int                `json:"score" msgpack:"score"`
	Health         float64            `json:"health" msgpack:"health"`
	ShotsFired     int                `json:"shots_fired" msgpack:"shots_fired"`
	ShotsHit       int                `json:"shots_hit" msgpack:"shots_hit"`
	Accuracy       float64            `json:"accuracy" msgpack:"accuracy"`
	ActorsLeft     int                `json:"actors_left" msgpack:"actors_left"`
	DamageByWeapon map[string]float64 `json:"damage_by_weapon,omitempty" msgpack:"damage_by_weapon,omitempty"`
	Events         []Event            `json:"events,omitempty" msgpack:"events,omitempty"`
}

// Runner drives a world with a policy at a fixed step until the level ends
// or the time limit runs out.
type Runner struct {
	Log     *slog.Logger
	Step    float64
	MaxTime float64
	Record  bool
	Seed    int64
}

const (
	OutcomeExit    = "exit"
	OutcomeDied    = "died"
	OutcomeTimeout = "timeout"
)

func (r *Runner) logger() *slog.Logger {
	if r.Log == nil {
		return slog.Default()
	}
	return r.Log
}

// Run steps w until it is over. Cancelling ctx stops the run between ticks
// and returns the partial result with the context's error.
func (r *Runner) Run(ctx context.Context, w *World, policy Policy) (SimResult, error) {
	log := r.logger().With("run", w.RunID.String(), "level", w.Level.ID)
	step := r.Step
	if step <= 0 {
		step = 1.0 / 60
	}
	maxTime := r.MaxTime
	if maxTime <= 0 {
		maxTime = 300
	}
	var events []Event
	log.InfoContext(ctx, "run start", "actors", w.LiveActors(), "seed", r.Seed)

	var err error
	for tick := 0; ; tick++ {
		if tick%256 == 0 {
			if err = ctx.Err(); err != nil {
				break
			}
		}
		if over, _ := w.Over(); over || w.Time >= maxTime {
			break
		}
		evs := w.Step(policy.Next(w, step))
		if r.Record {
			events = append(events, evs...)
		}
	}

	res := r.result(w)
	res.Events = events
	log.InfoContext(ctx, "run end",
		"outcome", res.Outcome, "t", fmt.Sprintf("%.2f", res.Duration),
		"kills", res.Kills, "score", res.Score, "accuracy", fmt.Sprintf("%.2f", res.Accuracy))
	return res, err
}

func (r *Runner) result(w *World) SimResult {
	p := w.Player
	_, outcome := w.Over()
	if outcome == "" {
		outcome = OutcomeTimeout
	}
	dmg := make(map[string]float64, len(p.DamageByWeapon))
	for k, v := range p.DamageByWeapon {
		dmg[k] = v
	}
	return SimResult{
		RunID:          w.RunID.String(),
		Level:          w.Level.ID,
		Seed:           r.Seed,
		Outcome:        outcome,
		Duration:       w.Time,
		Kills:          p.Kills,
		Score:          p.Score,
		Health:         p.Health,
		ShotsFired:     p.ShotsFired,
		ShotsHit:       p.ShotsHit,
		Accuracy:       p.Accuracy(),
		ActorsLeft:     w.LiveActors(),
		DamageByWeapon: dmg,
	}
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}

// Event log formats.
const (
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
)

// Encode serializes any run output in one of the log formats.
func Encode(format string, v any) ([]byte, error) {
	switch format {
	case "", FormatJSON:
		return MarshalPretty(v), nil
	case FormatMsgpack:
		return msgpack.Marshal(v)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

// DecodeEvents reads an event log written by Encode.
func DecodeEvents(format string, b []byte) ([]Event, error) {
	var evs []Event
	var err error
	switch format {
	case "", FormatJSON:
		err = json.Unmarshal(b, &evs)
	case FormatMsgpack:
		err = msgpack.Unmarshal(b, &evs)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	return evs, err
}
