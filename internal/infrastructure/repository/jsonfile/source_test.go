package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"

	"github.com/oddsforge/matchdna/internal/domain/goalevent"
	"github.com/oddsforge/matchdna/internal/domain/names"
	"github.com/oddsforge/matchdna/internal/domain/playerprofile"
	"github.com/oddsforge/matchdna/internal/domain/teamcontext"
)

func writeJSON(t *testing.T, dir, name string, v any) {
	t.Helper()
	payload, err := sonic.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), payload, 0o644))
}

func TestSource_LoadsAndNormalizes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeJSON(t, dir, playersFile, []playerprofile.RawPlayer{
		{PlayerName: "Erling Haaland", Team: "Man City", Goals: 20, NPG: 17, XG: 18.4, Shots: 104, Minutes: 2350, Games: 27},
	})
	writeJSON(t, dir, goalsFile, []goalevent.Goal{
		{MatchID: "m1", Scorer: "Erling Haaland", ScoringTeam: "Man City", Opponent: "Spurs", Half: goalevent.HalfFirst, TimingPeriod: goalevent.Period0to15, Minute: 12},
	})
	writeJSON(t, dir, contextsFile, []teamcontext.Context{
		{Team: "Man City", League: "EPL", MatchesPlayed: 27, PossessionPct: 65},
	})

	src, err := NewSource(dir, names.NewNormalizer(names.DefaultAliases()))
	require.NoError(t, err)

	players, err := src.Players().ListByTeam(context.Background(), "Manchester City")
	require.NoError(t, err)
	require.Len(t, players, 1, "alias team names must resolve to canonical at load")

	goals, err := src.Goals().ListByTeam(context.Background(), "Manchester City")
	require.NoError(t, err)
	require.Len(t, goals, 1)
	require.Equal(t, "Tottenham", goals[0].Opponent)

	_, found, err := src.Contexts().GetByTeam(context.Background(), "Manchester City")
	require.NoError(t, err)
	require.True(t, found)

	// Optional enrichment files are absent; lookups miss cleanly.
	_, found, err = src.Contexts().GetGoalkeeper(context.Background(), "Manchester City")
	require.NoError(t, err)
	require.False(t, found)
}

func TestSource_RejectsInvalidPlayer(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeJSON(t, dir, playersFile, []playerprofile.RawPlayer{
		{PlayerName: "", Team: "Arsenal", Goals: 3},
	})
	writeJSON(t, dir, goalsFile, []goalevent.Goal{})

	_, err := NewSource(dir, nil)
	require.Error(t, err)
}

func TestSource_MissingRequiredFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeJSON(t, dir, playersFile, []playerprofile.RawPlayer{})

	_, err := NewSource(dir, nil)
	require.Error(t, err)
}

func TestSource_ReloadSwapsSnapshot(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeJSON(t, dir, playersFile, []playerprofile.RawPlayer{
		{PlayerName: "A", Team: "Arsenal", Goals: 1, Minutes: 90, Games: 1},
	})
	writeJSON(t, dir, goalsFile, []goalevent.Goal{})

	src, err := NewSource(dir, nil)
	require.NoError(t, err)

	writeJSON(t, dir, playersFile, []playerprofile.RawPlayer{
		{PlayerName: "A", Team: "Arsenal", Goals: 1, Minutes: 90, Games: 1},
		{PlayerName: "B", Team: "Arsenal", Goals: 2, Minutes: 180, Games: 2},
	})
	require.NoError(t, src.Reload())

	players, err := src.Players().ListByTeam(context.Background(), "Arsenal")
	require.NoError(t, err)
	require.Len(t, players, 2)
}
