package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/oddsforge/matchdna/internal/domain/friction"
	"github.com/oddsforge/matchdna/internal/domain/matchup"
	"github.com/oddsforge/matchdna/internal/domain/names"
	"github.com/oddsforge/matchdna/internal/infrastructure/repository/memory"
	"github.com/oddsforge/matchdna/internal/platform/cache"
	"github.com/oddsforge/matchdna/internal/platform/logging"
)

type capturePublisher struct {
	published []matchup.Analysis
}

func (p *capturePublisher) Publish(_ context.Context, a matchup.Analysis) error {
	p.published = append(p.published, a)
	return nil
}

func newSeededService(goalLimit int, publisher AnalysisPublisher) *AnalysisService {
	return newSeededServiceWithLogger(goalLimit, publisher, logging.NewNop())
}

func newSeededServiceWithLogger(goalLimit int, publisher AnalysisPublisher, logger *logging.Logger) *AnalysisService {
	seed := memory.Seed()
	goals := seed.Goals
	if goalLimit > 0 && goalLimit < len(goals) {
		goals = goals[:goalLimit]
	}

	goalRepo := memory.NewGoalRepository(goals)
	playerRepo := memory.NewPlayerRepository(seed.Players)
	contextRepo := memory.NewContextRepository(seed.Contexts, seed.Referees, seed.Goalkeepers)

	normalizer := names.NewNormalizer(names.DefaultAliases())
	profiles := NewProfileService(playerRepo, goalRepo, normalizer, logging.NewNop())
	dna := NewDNAService(profiles, contextRepo, normalizer, cache.NewStore(0), logging.NewNop())

	return NewAnalysisService(
		normalizer,
		goalRepo,
		dna,
		friction.NewPairCache(),
		publisher,
		AnalysisConfig{},
		logger,
	)
}

func TestAnalyzeMatch_PressDerby(t *testing.T) {
	t.Parallel()

	svc := newSeededService(0, nil)
	a, err := svc.AnalyzeMatch(context.Background(), "Liverpool", "Manchester City")
	require.NoError(t, err)

	require.Contains(t, []friction.ClashType{
		friction.ClashPressingBattle, friction.ClashTransitionFest, friction.ClashSpaceExploitation,
	}, a.Friction.Clash)
	require.Greater(t, a.Friction.GoalsModifier, 0.0)

	hasGoalsMarket := false
	for _, rec := range a.Primary {
		if rec.Market == "over_2.5" || rec.Market == "btts_yes" {
			hasGoalsMarket = true
		}
	}
	require.True(t, hasGoalsMarket, "primary list %+v lacks over_2.5/btts_yes", a.Primary)
	require.Equal(t, matchup.TierHigh, a.Confidence.Tier)
}

func TestAnalyzeMatch_SiegeAgainstLowBlock(t *testing.T) {
	t.Parallel()

	svc := newSeededService(0, nil)
	a, err := svc.AnalyzeMatch(context.Background(), "Manchester City", "Burnley")
	require.NoError(t, err)

	require.Equal(t, friction.ClashSiegeWarfare, a.Friction.Clash)
	require.GreaterOrEqual(t, a.Friction.CornersModifier, 3.0)
	require.LessOrEqual(t, a.Friction.FirstHalfBias, 0.40)

	hasCorners := false
	for _, rec := range a.Primary {
		if rec.Market == "corners_over_9.5" {
			hasCorners = true
		}
	}
	require.True(t, hasCorners, "primary list %+v lacks a corners-over market", a.Primary)
}

func TestAnalyzeMatch_AliasResolvesToSameAnalysis(t *testing.T) {
	t.Parallel()

	svc := newSeededService(0, nil)
	direct, err := svc.AnalyzeMatch(context.Background(), "Liverpool", "Manchester City")
	require.NoError(t, err)

	aliased, err := svc.AnalyzeMatch(context.Background(), "Liverpool", "Man City")
	require.NoError(t, err)

	if !reflect.DeepEqual(direct, aliased) {
		t.Fatal("aliased request diverged from the canonical one")
	}
}

func TestAnalyzeMatch_Deterministic(t *testing.T) {
	t.Parallel()

	svc := newSeededService(0, nil)
	first, err := svc.AnalyzeMatch(context.Background(), "Liverpool", "Burnley")
	require.NoError(t, err)
	second, err := svc.AnalyzeMatch(context.Background(), "Liverpool", "Burnley")
	require.NoError(t, err)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated analysis on frozen inputs diverged")
	}
}

func TestAnalyzeMatch_CorruptGoalStream(t *testing.T) {
	t.Parallel()

	svc := newSeededService(50, nil)
	_, err := svc.AnalyzeMatch(context.Background(), "Liverpool", "Manchester City")
	require.ErrorIs(t, err, ErrDataIntegrity)
}

func TestAnalyzeMatch_UnknownTeam(t *testing.T) {
	t.Parallel()

	svc := newSeededService(0, nil)
	_, err := svc.AnalyzeMatch(context.Background(), "Liverpool", "Real Sociedad")
	require.ErrorIs(t, err, ErrTeamNotFound)
}

func TestAnalyzeMatch_RejectsSelfPairing(t *testing.T) {
	t.Parallel()

	svc := newSeededService(0, nil)
	_, err := svc.AnalyzeMatch(context.Background(), "Man City", "Manchester City")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestAnalyzeMatch_PublishesResult(t *testing.T) {
	t.Parallel()

	pub := &capturePublisher{}
	svc := newSeededService(0, pub)
	a, err := svc.AnalyzeMatch(context.Background(), "Manchester City", "Burnley")
	require.NoError(t, err)

	require.Len(t, pub.published, 1)
	require.Equal(t, a.HomeTeam, pub.published[0].HomeTeam)
}

func TestAnalyzeMatch_PublishFailureDoesNotAbort(t *testing.T) {
	t.Parallel()

	svc := newSeededService(0, failingPublisher{})
	_, err := svc.AnalyzeMatch(context.Background(), "Liverpool", "Burnley")
	require.NoError(t, err)
}

type failingPublisher struct{}

func (failingPublisher) Publish(context.Context, matchup.Analysis) error {
	return errors.New("sink offline")
}

func TestAnalyzeMatch_LogsRequestMetadataOnly(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	svc := newSeededServiceWithLogger(0, nil, logging.FromZap(zap.New(core)))

	_, err := svc.AnalyzeMatch(context.Background(), "Liverpool", "Burnley")
	require.NoError(t, err)

	entries := logs.FilterMessage("match analyzed").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	require.Contains(t, fields, "home")
	require.Contains(t, fields, "away")
	require.Contains(t, fields, "duration_ms")

	// The result belongs to the caller and the publisher; the service log
	// carries only request metadata.
	require.NotContains(t, fields, "clash")
	require.NotContains(t, fields, "confidence_tier")
}

func TestResolveFriction_PairCacheOverridesDefault(t *testing.T) {
	t.Parallel()

	svc := newSeededService(0, nil)
	svc.pairs.Put("Luton Town", "Sheffield United", friction.Result{
		Clash:         friction.ClashStalemate,
		Tempo:         friction.TempoSlow,
		FirstHalfBias: 0.5,
	})

	fr := svc.resolveFriction("Luton Town", "Sheffield United", "MYSTERY_BALL", "MYSTERY_BALL")
	require.Equal(t, friction.ClashStalemate, fr.Clash)
	require.Equal(t, friction.SourcePairGrid, fr.Source)
}
