package jsonfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oddsforge/matchdna/internal/domain/friction"
	"github.com/oddsforge/matchdna/internal/domain/names"
)

func TestLoadPairGrid(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "pairs.json")
	payload := `[
		{
			"home": "Man City",
			"away": "Spurs",
			"clash": "PRESSING_BATTLE",
			"tempo": "HIGH",
			"goals_modifier": 0.7,
			"first_half_bias": 0.55,
			"late_goal_prob": 0.5,
			"primary_markets": ["over_2.5"]
		}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	cache, err := LoadPairGrid(path, names.NewNormalizer(names.DefaultAliases()))
	require.NoError(t, err)
	require.Equal(t, 1, cache.Len())

	// Aliases resolve at load time, so the canonical pairing hits.
	r, ok := cache.Get("Manchester City", "Tottenham")
	require.True(t, ok)
	require.Equal(t, friction.ClashPressingBattle, r.Clash)
	require.Equal(t, friction.SourcePairGrid, r.Source)
	require.Equal(t, []string{"over_2.5"}, r.PrimaryMarkets)
}

func TestLoadPairGrid_RejectsOutOfRangeBias(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "pairs.json")
	payload := `[{"home": "A", "away": "B", "clash": "STALEMATE", "tempo": "SLOW", "first_half_bias": 1.4}]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	_, err := LoadPairGrid(path, nil)
	require.Error(t, err)
}

func TestLoadPairGrid_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadPairGrid(filepath.Join(t.TempDir(), "absent.json"), nil)
	require.Error(t, err)
}
