package config

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed assets
var assets embed.FS

// Bundle is everything a world needs besides the player's intent: rules,
// archetypes, arsenal and the ordered level list.
type Bundle struct {
	Tuning     Tuning
	Arsenal    ArsenalConfig
	Archetypes ArchetypesConfig
	Pickups    PickupsConfig
	Levels     []LevelDef

	archetypes map[string]*ArchetypeDef
	weapons    map[string]*WeaponDef
	pickups    map[string]*PickupDef
}

func loadYAML(fsys fs.FS, name string, out any) error {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	slog.Debug("config loaded", "file", name)
	return nil
}

func embedded() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}

// LoadDefault loads the rule set compiled into the binary.
func LoadDefault() (*Bundle, error) {
	return Load(embedded())
}

// LoadAll loads a config directory. tuning.yaml is optional there and is
// decoded on top of the built-in tuning, so it may override single keys.
func LoadAll(dir string) (*Bundle, error) {
	return Load(os.DirFS(dir))
}

func Load(fsys fs.FS) (*Bundle, error) {
	var b Bundle
	if err := loadYAML(embedded(), "tuning.yaml", &b.Tuning); err != nil {
		return nil, err
	}
	if err := loadYAML(fsys, "tuning.yaml", &b.Tuning); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	if err := loadYAML(fsys, "weapons.yaml", &b.Arsenal); err != nil {
		return nil, err
	}
	if err := loadYAML(fsys, "archetypes.yaml", &b.Archetypes); err != nil {
		return nil, err
	}
	if err := loadYAML(fsys, "pickups.yaml", &b.Pickups); err != nil {
		return nil, err
	}
	names, err := fs.Glob(fsys, "levels/*.yaml")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	for _, name := range names {
		var lv LevelDef
		if err := loadYAML(fsys, name, &lv); err != nil {
			return nil, err
		}
		if lv.ID == "" {
			lv.ID = strings.TrimSuffix(path.Base(name), ".yaml")
		}
		b.Levels = append(b.Levels, lv)
	}
	b.applyDefaults()
	b.index()
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

func (b *Bundle) applyDefaults() {
	for i := range b.Arsenal.Weapons {
		w := &b.Arsenal.Weapons[i]
		if w.Pellets == 0 {
			w.Pellets = 1
		}
		if w.Range == 0 {
			w.Range = 20
		}
		if w.Stun && w.StunDuration == 0 {
			w.StunDuration = 3
		}
	}
	for i := range b.Arsenal.Ammo {
		a := &b.Arsenal.Ammo[i]
		if a.DamageMul == 0 {
			a.DamageMul = 1
		}
	}
	if b.Arsenal.StartWeapon == "" && len(b.Arsenal.Weapons) > 0 {
		b.Arsenal.StartWeapon = b.Arsenal.Weapons[0].ID
	}
	for i := range b.Archetypes.Archetypes {
		a := &b.Archetypes.Archetypes[i]
		if a.MaxHP == 0 {
			a.MaxHP = 50
			if a.Boss {
				a.MaxHP = 100
			}
		}
		if a.StartState == "" {
			a.StartState = "patrol"
			if a.Boss {
				a.StartState = "idle"
			}
		}
	}
}

func (b *Bundle) index() {
	b.archetypes = make(map[string]*ArchetypeDef, len(b.Archetypes.Archetypes))
	for i := range b.Archetypes.Archetypes {
		a := &b.Archetypes.Archetypes[i]
		b.archetypes[a.ID] = a
	}
	b.weapons = make(map[string]*WeaponDef, len(b.Arsenal.Weapons))
	for i := range b.Arsenal.Weapons {
		w := &b.Arsenal.Weapons[i]
		b.weapons[w.ID] = w
	}
	b.pickups = make(map[string]*PickupDef, len(b.Pickups.Pickups))
	for i := range b.Pickups.Pickups {
		p := &b.Pickups.Pickups[i]
		b.pickups[p.ID] = p
	}
}

func (b *Bundle) Archetype(id string) (*ArchetypeDef, bool) {
	a, ok := b.archetypes[id]
	return a, ok
}

func (b *Bundle) Weapon(id string) (*WeaponDef, bool) {
	w, ok := b.weapons[id]
	return w, ok
}

// WeaponBySlot returns the weapon bound to a number key, 1-based.
func (b *Bundle) WeaponBySlot(slot int) (*WeaponDef, bool) {
	for i := range b.Arsenal.Weapons {
		if b.Arsenal.Weapons[i].Slot == slot {
			return &b.Arsenal.Weapons[i], true
		}
	}
	return nil, false
}

func (b *Bundle) Pickup(id string) (*PickupDef, bool) {
	p, ok := b.pickups[id]
	return p, ok
}

// Ammo returns the ammo type at index i, wrapping around.
func (b *Bundle) Ammo(i int) AmmoDef {
	if len(b.Arsenal.Ammo) == 0 {
		return AmmoDef{ID: "standard", DamageMul: 1}
	}
	n := len(b.Arsenal.Ammo)
	return b.Arsenal.Ammo[((i%n)+n)%n]
}

func (b *Bundle) Level(id string) (*LevelDef, error) {
	for i := range b.Levels {
		if b.Levels[i].ID == id {
			return &b.Levels[i], nil
		}
	}
	return nil, configErr("levels", ErrUnknownLevel, "%q", id)
}
