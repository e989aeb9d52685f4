package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arenasim/internal/combat"
)

func testOptions(t *testing.T) options {
	return options{
		out:      filepath.Join(t.TempDir(), "out.json"),
		level:    "01_riksdagshuset",
		format:   combat.FormatJSON,
		seed:     7,
		n:        1,
		workers:  2,
		maxTime:  2,
		record:   true,
		logLevel: "error",
	}
}

func quiet() *slog.Logger { return slog.New(slog.DiscardHandler) }

func TestRunSingleWritesResult(t *testing.T) {
	o := testOptions(t)
	require.NoError(t, run(context.Background(), quiet(), o))

	b, err := os.ReadFile(o.out)
	require.NoError(t, err)
	var res combat.SimResult
	require.NoError(t, json.Unmarshal(b, &res))
	assert.Equal(t, "01_riksdagshuset", res.Level)
	assert.Equal(t, int64(7), res.Seed)
	assert.NotEmpty(t, res.RunID)
	assert.Greater(t, res.Duration, 0.0)
	assert.Contains(t, []string{combat.OutcomeExit, combat.OutcomeDied, combat.OutcomeTimeout}, res.Outcome)
}

func TestRunSingleMsgpack(t *testing.T) {
	o := testOptions(t)
	o.format = combat.FormatMsgpack
	o.out = filepath.Join(t.TempDir(), "out.msgpack")
	require.NoError(t, run(context.Background(), quiet(), o))

	b, err := os.ReadFile(o.out)
	require.NoError(t, err)
	assert.NotEmpty(t, b)
	assert.NotEqual(t, byte('{'), b[0])
}

func TestRunBatchSummary(t *testing.T) {
	o := testOptions(t)
	o.n = 4
	require.NoError(t, run(context.Background(), quiet(), o))

	b, err := os.ReadFile(o.out)
	require.NoError(t, err)
	var summary map[string]any
	require.NoError(t, json.Unmarshal(b, &summary))
	assert.EqualValues(t, 4, summary["runs"])
	rates, ok := summary["outcome_rates"].(map[string]any)
	require.True(t, ok)
	total := 0.0
	for _, v := range rates {
		total += v.(float64)
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestRunCampaignStopsOnFailure(t *testing.T) {
	o := testOptions(t)
	o.campaign = true
	require.NoError(t, run(context.Background(), quiet(), o))

	b, err := os.ReadFile(o.out)
	require.NoError(t, err)
	var results []combat.SimResult
	require.NoError(t, json.Unmarshal(b, &results))
	require.NotEmpty(t, results)
	for _, r := range results[:len(results)-1] {
		assert.Equal(t, combat.OutcomeExit, r.Outcome)
	}
}

func TestRunCampaignWithoutLevels(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"tuning.yaml", "weapons.yaml", "archetypes.yaml", "pickups.yaml"} {
		b, err := os.ReadFile(filepath.Join("..", "..", "internal", "config", "assets", name))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), b, 0644))
	}
	o := testOptions(t)
	o.cfgDir = dir
	o.campaign = true
	assert.ErrorContains(t, run(context.Background(), quiet(), o), "no levels")
	assert.NoFileExists(t, o.out)
}

func TestRunUnknownLevel(t *testing.T) {
	o := testOptions(t)
	o.level = "99_nowhere"
	assert.Error(t, run(context.Background(), quiet(), o))
	o.n = 3
	assert.Error(t, run(context.Background(), quiet(), o))
}
