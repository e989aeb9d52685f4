package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"arenasim/internal/combat"
	"arenasim/internal/config"
	"arenasim/internal/util"
)

const (
	frame     = 16 * time.Millisecond
	turnStep  = 0.12
	holdInput = 0.12 // seconds a key press keeps moving the player
	logLines  = 5
)

var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleWall    = styleDefault.Foreground(tcell.ColorGray)
	styleDoor    = styleDefault.Foreground(tcell.ColorOlive)
	styleExit    = styleDefault.Foreground(tcell.ColorLime).Bold(true)
	stylePlayer  = styleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleActor   = styleDefault.Foreground(tcell.ColorRed)
	styleBoss    = styleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	styleDebate  = styleDefault.Foreground(tcell.ColorYellow)
	stylePickup  = styleDefault.Foreground(tcell.ColorGreen)
	styleBarrel  = styleDefault.Foreground(tcell.ColorOrange)
	styleHUD     = styleDefault.Foreground(tcell.ColorSilver)
)

// eventLog keeps the last few interesting events as display lines. The world
// publishes into it while it steps.
type eventLog struct {
	lines []string
}

func (l *eventLog) record(ev combat.Event) {
	switch ev.Type {
	case combat.EvActorFootstep, combat.EvWeaponFlashEnd, combat.EvActorFlashEnd, combat.EvWeaponFired:
		return
	}
	line := fmt.Sprintf("%6.2f %-18s", ev.T, ev.Type)
	if key, ok := ev.Payload["key"]; ok {
		line += fmt.Sprintf(" %v", key)
	} else if amt, ok := ev.Payload["amount"]; ok {
		line += fmt.Sprintf(" %v", amt)
	}
	l.lines = append(l.lines, line)
	if len(l.lines) > logLines {
		l.lines = l.lines[len(l.lines)-logLines:]
	}
}

// Viewer owns a terminal screen and one world. Key presses are folded into
// the next tick's Input; nothing else mutates the world.
type Viewer struct {
	screen tcell.Screen
	world  *combat.World
	pilot  combat.Policy
	log    *eventLog

	move     combat.Vec2
	moveHold float64
	yaw      float64
	pending  combat.Input
	paused   bool
}

func NewViewer(w *combat.World, pilot combat.Policy, log *eventLog) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetStyle(styleDefault)
	screen.Clear()
	return &Viewer{screen: screen, world: w, pilot: pilot, log: log, yaw: w.Player.Yaw}, nil
}

// handleInput returns false when the viewer should quit.
func (v *Viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			v.yaw -= turnStep
		case tcell.KeyRight:
			v.yaw += turnStep
		case tcell.KeyUp:
			v.hold(combat.Vec2{Y: 1})
		case tcell.KeyDown:
			v.hold(combat.Vec2{Y: -1})
		case tcell.KeyRune:
			return v.handleRune(ev.Rune())
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *Viewer) handleRune(r rune) bool {
	// Screen rows grow downward, which mirrors the world's right vector.
	switch r {
	case 'q':
		return false
	case 'w':
		v.hold(combat.Vec2{Y: 1})
	case 's':
		v.hold(combat.Vec2{Y: -1})
	case 'a':
		v.hold(combat.Vec2{X: 1})
	case 'd':
		v.hold(combat.Vec2{X: -1})
	case ' ':
		v.pending.Fire = true
	case 'e':
		v.pending.Interact = true
	case 'f':
		v.pending.Melee = true
	case 'r':
		v.pending.CycleAmmo = true
	case 'p':
		v.paused = !v.paused
	case '1', '2', '3', '4':
		v.pending.SwitchTo = int(r - '0')
	}
	return true
}

func (v *Viewer) hold(dir combat.Vec2) {
	v.move = dir
	v.moveHold = holdInput
}

func (v *Viewer) tick(dt float64) {
	if v.paused {
		return
	}
	var in combat.Input
	if v.pilot != nil {
		in = v.pilot.Next(v.world, dt)
		v.yaw = in.Yaw
	} else {
		in = v.pending
		in.DT = dt
		in.Yaw = v.yaw
		in.Pitch = v.world.Player.Pitch
		if v.moveHold > 0 {
			in.Move = v.move
			v.moveHold -= dt
		}
	}
	v.pending = combat.Input{}
	v.world.Step(in)
}

func (v *Viewer) put(x, y int, r rune, st tcell.Style) {
	v.screen.SetContent(x*2, y, r, nil, st)
}

func (v *Viewer) text(x, y int, s string, st tcell.Style) {
	for i, r := range s {
		v.screen.SetContent(x+i, y, r, nil, st)
	}
}

func (v *Viewer) cell(p combat.Vec2) (int, int) {
	size := v.world.Tuning().CellSize
	return int(math.Round(p.X / size)), int(math.Round(p.Y / size))
}

func (v *Viewer) draw() {
	v.screen.Clear()
	w := v.world
	for y, row := range w.Grid {
		for x := range row {
			v.put(x, y, '.', styleWall)
		}
	}
	for _, b := range w.Index.Boxes() {
		x, y := v.cell(b.Center().Ground())
		v.put(x, y, '#', styleWall)
	}
	for _, e := range w.Exits {
		x, y := v.cell(e)
		v.put(x, y, 'E', styleExit)
	}
	for _, d := range w.Doors {
		r := '+'
		if d.Open {
			r = '/'
		}
		x, y := v.cell(d.Pos)
		v.put(x, y, r, styleDoor)
	}
	for _, m := range w.Vending {
		r := 'V'
		if m.Broken {
			r = 'v'
		}
		x, y := v.cell(m.Pos)
		v.put(x, y, r, styleDoor)
	}
	for _, b := range w.Barrels {
		if b.Active {
			x, y := v.cell(b.Pos)
			v.put(x, y, 'o', styleBarrel)
		}
	}
	for _, pk := range w.Pickups {
		if !pk.Taken {
			x, y := v.cell(pk.Pos)
			v.put(x, y, '*', stylePickup)
		}
	}
	for _, a := range w.Actors() {
		st := styleActor
		if a.Boss() {
			st = styleBoss
		}
		if a.State == combat.Debate {
			st = styleDebate
		}
		r := '?'
		if a.Type != "" {
			r = []rune(a.Type)[0]
		}
		x, y := v.cell(a.Pos)
		v.put(x, y, r, st)
	}
	p := w.Player
	x, y := v.cell(p.Pos)
	v.put(x, y, facingRune(p.Yaw), stylePlayer)

	hud := len(w.Grid) + 1
	v.text(0, hud, fmt.Sprintf("HP %3.0f  AR %3.0f  AMMO %3d %-10s  %-12s  SCORE %6d  KILLS %3d  COMBO %d",
		p.Health, p.Armor, p.Ammo, w.Rules.Ammo(p.AmmoType).ID, p.Weapon, p.Score, p.Kills, w.Combo.Combo), styleHUD)
	status := fmt.Sprintf("%s  t=%.1fs  actors=%d", w.Level.Name, w.Time, w.LiveActors())
	if over, outcome := w.Over(); over {
		status += "  [" + outcome + "]  q to quit"
	} else if v.paused {
		status += "  [paused]"
	}
	v.text(0, hud+1, status, styleHUD)
	for i, line := range v.log.lines {
		v.text(0, hud+3+i, line, styleDefault)
	}
	v.screen.Show()
}

func facingRune(yaw float64) rune {
	arrows := []rune{'>', '\\', 'v', '/', '<', '\\', '^', '/'}
	i := int(math.Round(yaw/(math.Pi/4))) % 8
	if i < 0 {
		i += 8
	}
	return arrows[i]
}

func (v *Viewer) run() {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- v.screen.PollEvent()
		}
	}()

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if ev == nil || !v.handleInput(ev) {
				return
			}
		case now := <-ticker.C:
			v.tick(now.Sub(last).Seconds())
			last = now
			v.draw()
		}
	}
}

func (v *Viewer) cleanup() {
	v.screen.Fini()
}

func main() {
	var cfgDir, levelID string
	var seed int64
	var auto, ngPlus bool
	flag.StringVar(&cfgDir, "config", "", "config dir (embedded rules when empty)")
	flag.StringVar(&levelID, "level", "01_riksdagshuset", "level id")
	flag.Int64Var(&seed, "seed", time.Now().UnixNano(), "seed")
	flag.BoolVar(&auto, "auto", false, "let the scripted pilot play")
	flag.BoolVar(&ngPlus, "ngplus", false, "new game plus (doubled actor hp)")
	flag.Parse()

	log := &eventLog{}
	w, err := newWorld(cfgDir, levelID, seed, ngPlus, combat.SinkFunc(log.record))
	if err != nil {
		slog.Error("arenaview: load failed", "err", err)
		os.Exit(1)
	}
	var pilot combat.Policy
	if auto {
		pilot = combat.NewPilot()
	}
	v, err := NewViewer(w, pilot, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer v.cleanup()

	v.run()
}

func newWorld(cfgDir, levelID string, seed int64, ngPlus bool, sink combat.Sink) (*combat.World, error) {
	var rules *config.Bundle
	var err error
	if cfgDir == "" {
		rules, err = config.LoadDefault()
	} else {
		rules, err = config.LoadAll(cfgDir)
	}
	if err != nil {
		return nil, err
	}
	level, err := rules.Level(levelID)
	if err != nil {
		return nil, err
	}
	return combat.NewWorld(rules, level, combat.Options{NewGamePlus: ngPlus, Rng: util.New(seed), Sink: sink})
}
