package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"arenasim/internal/combat"
	"arenasim/internal/config"
	"arenasim/internal/util"
)

type options struct {
	cfgDir   string
	out      string
	level    string
	format   string
	logLevel string
	seed     int64
	n        int
	workers  int
	maxTime  float64
	ngPlus   bool
	campaign bool
	record   bool
}

func main() {
	var o options
	flag.StringVar(&o.cfgDir, "config", "", "config dir (embedded rules when empty)")
	flag.StringVar(&o.out, "out", "out.json", "output file (single) or summary file (batch)")
	flag.StringVar(&o.level, "level", "01_riksdagshuset", "level id")
	flag.StringVar(&o.format, "format", combat.FormatJSON, "single-run output format: json or msgpack")
	flag.StringVar(&o.logLevel, "log", "info", "log level: debug, info, warn, error")
	flag.Int64Var(&o.seed, "seed", 12345, "seed")
	flag.IntVar(&o.n, "n", 1, "number of simulations")
	flag.IntVar(&o.workers, "workers", 8, "parallel worlds in batch mode")
	flag.Float64Var(&o.maxTime, "max-time", 300, "simulated seconds before a run times out")
	flag.BoolVar(&o.ngPlus, "ngplus", false, "new game plus (doubled actor hp)")
	flag.BoolVar(&o.campaign, "campaign", false, "play every level in order, carrying the player over")
	flag.BoolVar(&o.record, "events", true, "record the full event log when n==1")
	flag.Parse()

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(o.logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "bad -log: %v\n", err)
		os.Exit(2)
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, log, o); err != nil {
		log.Error("arenasim failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, o options) error {
	rules, err := loadRules(o.cfgDir)
	if err != nil {
		return err
	}
	switch {
	case o.campaign:
		return runCampaign(ctx, log, rules, o)
	case o.n <= 1:
		return runSingle(ctx, log, rules, o)
	default:
		return runBatch(ctx, log, rules, o)
	}
}

func loadRules(dir string) (*config.Bundle, error) {
	if dir == "" {
		return config.LoadDefault()
	}
	return config.LoadAll(dir)
}

func newRunner(log *slog.Logger, o options, seed int64, record bool) *combat.Runner {
	return &combat.Runner{Log: log, MaxTime: o.maxTime, Record: record, Seed: seed}
}

func playLevel(ctx context.Context, log *slog.Logger, rules *config.Bundle, levelID string, o options, seed int64, record bool, carry *combat.Player) (combat.SimResult, *combat.World, error) {
	level, err := rules.Level(levelID)
	if err != nil {
		return combat.SimResult{}, nil, err
	}
	w, err := combat.NewWorld(rules, level, combat.Options{
		NewGamePlus: o.ngPlus,
		Rng:         util.New(seed),
		Carry:       carry,
	})
	if err != nil {
		return combat.SimResult{}, nil, fmt.Errorf("level %s: %w", levelID, err)
	}
	res, err := newRunner(log, o, seed, record).Run(ctx, w, combat.NewPilot())
	return res, w, err
}

func runSingle(ctx context.Context, log *slog.Logger, rules *config.Bundle, o options) error {
	res, _, err := playLevel(ctx, log, rules, o.level, o, o.seed, o.record, nil)
	if err != nil {
		return err
	}
	b, err := combat.Encode(o.format, res)
	if err != nil {
		return err
	}
	if err := os.WriteFile(o.out, b, 0644); err != nil {
		return err
	}
	fmt.Printf("Single run finished. Outcome=%s, T=%.2fs, Kills=%d, Score=%d, Acc=%.2f -> %s\n",
		res.Outcome, res.Duration, res.Kills, res.Score, res.Accuracy, o.out)
	return nil
}

// runCampaign plays the levels in load order. The player carries over until
// a level ends in anything but an exit.
func runCampaign(ctx context.Context, log *slog.Logger, rules *config.Bundle, o options) error {
	if len(rules.Levels) == 0 {
		return errors.New("campaign: no levels loaded")
	}
	var results []combat.SimResult
	var carry *combat.Player
	for i := range rules.Levels {
		id := rules.Levels[i].ID
		res, w, err := playLevel(ctx, log, rules, id, o, util.Derive(o.seed, i), false, carry)
		if err != nil {
			return err
		}
		results = append(results, res)
		if res.Outcome != combat.OutcomeExit {
			break
		}
		carry = w.Player
	}
	b, err := combat.Encode(o.format, results)
	if err != nil {
		return err
	}
	if err := os.WriteFile(o.out, b, 0644); err != nil {
		return err
	}
	last := results[len(results)-1]
	fmt.Printf("Campaign finished. Levels=%d/%d, Outcome=%s, Score=%d -> %s\n",
		len(results), len(rules.Levels), last.Outcome, last.Score, o.out)
	return nil
}

type stat struct {
	Outcomes  map[string]int
	SumT      float64
	SumScore  float64
	SumKills  float64
	SumAcc    float64
	ByWeapon  map[string]float64
	Durations []float64
}

func (s *stat) add(res combat.SimResult) {
	s.Outcomes[res.Outcome]++
	s.SumT += res.Duration
	s.SumScore += float64(res.Score)
	s.SumKills += float64(res.Kills)
	s.SumAcc += res.Accuracy
	for k, v := range res.DamageByWeapon {
		s.ByWeapon[k] += v
	}
	s.Durations = append(s.Durations, res.Duration)
}

func runBatch(ctx context.Context, log *slog.Logger, rules *config.Bundle, o options) error {
	st := stat{Outcomes: map[string]int{}, ByWeapon: map[string]float64{}}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(o.workers, 1))
	quiet := slog.New(slog.DiscardHandler)
	for i := 0; i < o.n; i++ {
		seed := util.Derive(o.seed, i)
		g.Go(func() error {
			res, _, err := playLevel(gctx, quiet, rules, o.level, o, seed, false, nil)
			if err != nil {
				return fmt.Errorf("run %d (seed %d): %w", i, seed, err)
			}
			mu.Lock()
			st.add(res)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	totalDmg := 0.0
	for _, v := range st.ByWeapon {
		totalDmg += v
	}
	byWeapon := map[string]any{}
	for k, v := range st.ByWeapon {
		share := 0.0
		if totalDmg > 0 {
			share = v / totalDmg
		}
		byWeapon[k] = map[string]any{"total": v, "ratio": share}
	}
	rates := map[string]float64{}
	for k, v := range st.Outcomes {
		rates[k] = float64(v) / float64(o.n)
	}
	sort.Float64s(st.Durations)

	summary := map[string]any{
		"runs":          o.n,
		"level":         o.level,
		"seed":          o.seed,
		"ngplus":        o.ngPlus,
		"outcome_rates": rates,
		"avg_time":      st.SumT / float64(o.n),
		"median_time":   st.Durations[len(st.Durations)/2],
		"avg_score":     st.SumScore / float64(o.n),
		"avg_kills":     st.SumKills / float64(o.n),
		"avg_accuracy":  st.SumAcc / float64(o.n),
		"total_damage":  totalDmg,
		"by_weapon":     byWeapon,
	}
	if err := os.WriteFile(o.out, combat.MarshalPretty(summary), 0644); err != nil {
		return err
	}
	log.Info("batch done", "runs", o.n, "exit_rate", rates[combat.OutcomeExit])
	fmt.Printf("Batch %d done -> %s\n", o.n, filepath.Base(o.out))
	return nil
}
