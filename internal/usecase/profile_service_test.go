package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oddsforge/matchdna/internal/domain/goalevent"
	"github.com/oddsforge/matchdna/internal/infrastructure/repository/memory"
	"github.com/oddsforge/matchdna/internal/platform/logging"
)

func TestProfileBuildTeam(t *testing.T) {
	t.Parallel()

	seed := memory.Seed()
	svc := NewProfileService(
		memory.NewPlayerRepository(seed.Players),
		memory.NewGoalRepository(seed.Goals),
		nil, logging.NewNop())

	material, err := svc.BuildTeam(context.Background(), "Liverpool")
	require.NoError(t, err)
	require.Equal(t, "Liverpool", material.Team)
	require.NotEmpty(t, material.Profiles)
	require.NotEmpty(t, material.Goals)
}

func TestProfileBuildTeam_NormalizesAlias(t *testing.T) {
	t.Parallel()

	seed := memory.Seed()
	svc := NewProfileService(
		memory.NewPlayerRepository(seed.Players),
		memory.NewGoalRepository(seed.Goals),
		nil, logging.NewNop())

	material, err := svc.BuildTeam(context.Background(), "  Man City ")
	require.NoError(t, err)
	require.Equal(t, "Manchester City", material.Team)
}

func TestProfileBuildTeam_RosterWithoutGoalStream(t *testing.T) {
	t.Parallel()

	// A roster can exist in the player source before any of its goals land
	// in the event stream. Timing splits are impossible then, which is a
	// different failure than an unknown team.
	seed := memory.Seed()
	svc := NewProfileService(
		memory.NewPlayerRepository(seed.Players),
		memory.NewGoalRepository(nil),
		nil, logging.NewNop())

	_, err := svc.BuildTeam(context.Background(), "Burnley")
	require.ErrorIs(t, err, ErrInsufficientData)
}

func TestProfileBuildTeam_UnknownTeam(t *testing.T) {
	t.Parallel()

	seed := memory.Seed()
	svc := NewProfileService(
		memory.NewPlayerRepository(seed.Players),
		memory.NewGoalRepository(seed.Goals),
		nil, logging.NewNop())

	_, err := svc.BuildTeam(context.Background(), "Nowhere Rangers")
	require.ErrorIs(t, err, ErrTeamNotFound)
}

func TestProfileBuildTeam_EmptyName(t *testing.T) {
	t.Parallel()

	svc := NewProfileService(
		memory.NewPlayerRepository(nil),
		memory.NewGoalRepository([]goalevent.Goal{}),
		nil, logging.NewNop())

	_, err := svc.BuildTeam(context.Background(), "   ")
	require.ErrorIs(t, err, ErrInvalidInput)
}
