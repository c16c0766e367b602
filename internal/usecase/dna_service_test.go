package usecase

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oddsforge/matchdna/internal/domain/names"
	"github.com/oddsforge/matchdna/internal/infrastructure/repository/memory"
	"github.com/oddsforge/matchdna/internal/platform/cache"
	"github.com/oddsforge/matchdna/internal/platform/logging"
)

func newSeededDNAService() *DNAService {
	seed := memory.Seed()
	goalRepo := memory.NewGoalRepository(seed.Goals)
	playerRepo := memory.NewPlayerRepository(seed.Players)
	contextRepo := memory.NewContextRepository(seed.Contexts, seed.Referees, seed.Goalkeepers)

	normalizer := names.NewNormalizer(names.DefaultAliases())
	profiles := NewProfileService(playerRepo, goalRepo, normalizer, logging.NewNop())
	return NewDNAService(profiles, contextRepo, normalizer, cache.NewStore(0), logging.NewNop())
}

func TestDNABuildTeam_AliasSharesCanonicalRecord(t *testing.T) {
	t.Parallel()

	svc := newSeededDNAService()
	aliased, err := svc.BuildTeam(context.Background(), "Man City")
	require.NoError(t, err)

	canonical, err := svc.BuildTeam(context.Background(), "Manchester City")
	require.NoError(t, err)

	require.Equal(t, "Manchester City", aliased.Team)
	if !reflect.DeepEqual(aliased, canonical) {
		t.Fatal("aliased spelling produced a different record than the canonical name")
	}
}

func TestDNABuildTeam_UnknownTeam(t *testing.T) {
	t.Parallel()

	svc := newSeededDNAService()
	_, err := svc.BuildTeam(context.Background(), "Nowhere Rangers")
	require.ErrorIs(t, err, ErrTeamNotFound)
}
