package config

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefault(t *testing.T) {
	b, err := LoadDefault()
	require.NoError(t, err)

	assert.Equal(t, 2.0, b.Tuning.CellSize)
	assert.Equal(t, 0.7, b.Tuning.Player.ArmorAbsorb)
	require.Len(t, b.Levels, 3)
	assert.Equal(t, "01_riksdagshuset", b.Levels[0].ID)

	shotgun, ok := b.Weapon("shotgun")
	require.True(t, ok)
	assert.Equal(t, 6, shotgun.Pellets)
	assert.Equal(t, 0.08, shotgun.Spread)
	assert.Equal(t, 20.0, shotgun.Range, "range falls back to the hitscan default")

	pistol, _ := b.Weapon("pistol")
	assert.Equal(t, 1, pistol.Pellets)

	ebba, ok := b.Archetype("ebba")
	require.True(t, ok)
	assert.True(t, ebba.Boss)
	assert.Equal(t, 100, ebba.MaxHP)
	assert.Equal(t, "idle", ebba.StartState)
	require.NotNil(t, ebba.Spin)

	sd, _ := b.Archetype("sd")
	assert.Equal(t, 50, sd.MaxHP)
	assert.Equal(t, "patrol", sd.StartState)

	assert.Equal(t, 1.0, b.Ammo(0).DamageMul)
	assert.Equal(t, 1.5, b.Ammo(1).DamageMul)
	assert.Equal(t, "standard", b.Ammo(3).ID, "ammo index wraps")
}

func testFS(t *testing.T, level string) fstest.MapFS {
	t.Helper()
	src := embedded()
	fsys := fstest.MapFS{}
	for _, name := range []string{"weapons.yaml", "archetypes.yaml", "pickups.yaml"} {
		b, err := fs.ReadFile(src, name)
		require.NoError(t, err)
		fsys[name] = &fstest.MapFile{Data: b}
	}
	fsys["levels/01_test.yaml"] = &fstest.MapFile{Data: []byte(level)}
	return fsys
}

func TestLoad_TuningOverride(t *testing.T) {
	fsys := testFS(t, "map: [\"###\", \"#P#\", \"###\"]\n")
	fsys["tuning.yaml"] = &fstest.MapFile{Data: []byte("combo:\n  window: 5\n")}

	b, err := Load(fsys)
	require.NoError(t, err)
	assert.Equal(t, 5.0, b.Tuning.Combo.Window)
	assert.Equal(t, 100, b.Tuning.Combo.Flat, "keys absent from the override keep their defaults")
	assert.Equal(t, "01_test", b.Levels[0].ID)
}

func TestLoad_ConfigErrors(t *testing.T) {
	cases := []struct {
		name  string
		level string
		want  error
	}{
		{"unknown archetype", "map: [\"#P#\"]\nenemies:\n  - {type: robot, x: 1, y: 0}\n", ErrUnknownArchetype},
		{"missing start", "map: [\"#.#\"]\n", ErrNoPlayerStart},
		{"unknown tile", "map: [\"#P?\"]\n", ErrUnknownTile},
		{"unknown pickup", "map: [\"#P#\"]\npickups:\n  - {type: jetpack, x: 1, y: 0}\n", ErrUnknownPickup},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(testFS(t, tc.level))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			var ce *ConfigError
			assert.True(t, errors.As(err, &ce))
		})
	}
}

func TestValidate_BehaviorBlockRequired(t *testing.T) {
	b, err := LoadDefault()
	require.NoError(t, err)

	ulf, _ := b.Archetype("ulf")
	ulf.Dash = nil
	err = b.Validate()
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestLevel_Unknown(t *testing.T) {
	b, err := LoadDefault()
	require.NoError(t, err)
	_, err = b.Level("nope")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}
