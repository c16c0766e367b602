package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/oddsforge/matchdna/internal/domain/names"
	"github.com/oddsforge/matchdna/internal/domain/teamcontext"
	"github.com/oddsforge/matchdna/internal/domain/teamdna"
	"github.com/oddsforge/matchdna/internal/platform/cache"
	"github.com/oddsforge/matchdna/internal/platform/logging"
)

// DNAService builds and memoizes team fingerprints. Records are read-only
// after the first build; concurrent requests for the same team share one
// build via the cache's flight grouping.
type DNAService struct {
	profiles    *ProfileService
	contextRepo teamcontext.Repository
	normalizer  *names.Normalizer
	store       *cache.Store
	logger      *logging.Logger
}

func NewDNAService(
	profiles *ProfileService,
	contextRepo teamcontext.Repository,
	normalizer *names.Normalizer,
	store *cache.Store,
	logger *logging.Logger,
) *DNAService {
	if normalizer == nil {
		normalizer = names.NewNormalizer(names.DefaultAliases())
	}
	if store == nil {
		store = cache.NewStore(0)
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &DNAService{
		profiles:    profiles,
		contextRepo: contextRepo,
		normalizer:  normalizer,
		store:       store,
		logger:      logger,
	}
}

// BuildTeam returns the DNA for a team, building it at most once per cache
// lifetime. The name is normalized before the cache lookup, so alias and
// canonical spellings share one memoized record.
func (s *DNAService) BuildTeam(ctx context.Context, team string) (teamdna.DNA, error) {
	ctx, span := startUsecaseSpan(ctx, "DNAService.BuildTeam")
	defer span.End()

	team = s.normalizer.Normalize(strings.TrimSpace(team))
	value, err := s.store.GetOrLoad(ctx, "dna:"+team, func(ctx context.Context) (any, error) {
		return s.build(ctx, team)
	})
	if err != nil {
		return teamdna.DNA{}, err
	}
	dna, ok := value.(teamdna.DNA)
	if !ok {
		return teamdna.DNA{}, fmt.Errorf("dna cache holds unexpected type %T for %s", value, team)
	}
	return dna, nil
}

// Invalidate drops every memoized record, for use after a source reload.
func (s *DNAService) Invalidate(ctx context.Context) {
	s.store.Reset(ctx)
}

func (s *DNAService) build(ctx context.Context, team string) (teamdna.DNA, error) {
	material, err := s.profiles.BuildTeam(ctx, team)
	if err != nil {
		return teamdna.DNA{}, err
	}

	in := teamdna.BuildInput{
		Team:    team,
		Players: material.Profiles,
		Goals:   material.Goals,
	}

	// Context and goalkeeper records are optional enrichment; absence only
	// lowers data quality.
	teamCtx, found, err := s.contextRepo.GetByTeam(ctx, team)
	if err != nil {
		return teamdna.DNA{}, fmt.Errorf("%w: team context: %v", ErrSourceUnavailable, err)
	}
	in.Context, in.HasContext = teamCtx, found

	keeper, found, err := s.contextRepo.GetGoalkeeper(ctx, team)
	if err != nil {
		return teamdna.DNA{}, fmt.Errorf("%w: goalkeeper: %v", ErrSourceUnavailable, err)
	}
	in.Goalkeeper, in.HasGoalkeeper = keeper, found

	dna := teamdna.Build(in)
	s.logger.InfoContext(ctx, "team dna built",
		"team", team,
		"has_context", in.HasContext,
		"data_quality", dna.DataQuality)
	return dna, nil
}
