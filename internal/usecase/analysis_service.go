package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/oddsforge/matchdna/internal/domain/friction"
	"github.com/oddsforge/matchdna/internal/domain/goalevent"
	"github.com/oddsforge/matchdna/internal/domain/matchup"
	"github.com/oddsforge/matchdna/internal/domain/names"
	"github.com/oddsforge/matchdna/internal/domain/teamdna"
	"github.com/oddsforge/matchdna/internal/platform/logging"
)

// DefaultMinGoalEvents is the season-completeness floor: below it the goal
// stream is treated as corrupt and timing-dependent analysis refuses to run.
const DefaultMinGoalEvents = 100

// AnalysisPublisher pushes finished analyses to downstream consumers.
type AnalysisPublisher interface {
	Publish(ctx context.Context, analysis matchup.Analysis) error
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, matchup.Analysis) error { return nil }

func NewNoopPublisher() AnalysisPublisher { return noopPublisher{} }

type AnalysisConfig struct {
	MinGoalEvents int
}

// AnalysisService is the orchestrator: normalize names, build both
// fingerprints, resolve friction, run the matchup analyzer.
type AnalysisService struct {
	normalizer *names.Normalizer
	goalRepo   goalevent.Repository
	dna        *DNAService
	pairs      *friction.PairCache
	publisher  AnalysisPublisher
	cfg        AnalysisConfig
	logger     *logging.Logger
}

func NewAnalysisService(
	normalizer *names.Normalizer,
	goalRepo goalevent.Repository,
	dna *DNAService,
	pairs *friction.PairCache,
	publisher AnalysisPublisher,
	cfg AnalysisConfig,
	logger *logging.Logger,
) *AnalysisService {
	if normalizer == nil {
		normalizer = names.NewNormalizer(names.DefaultAliases())
	}
	if pairs == nil {
		pairs = friction.NewPairCache()
	}
	if publisher == nil {
		publisher = NewNoopPublisher()
	}
	if cfg.MinGoalEvents <= 0 {
		cfg.MinGoalEvents = DefaultMinGoalEvents
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &AnalysisService{
		normalizer: normalizer,
		goalRepo:   goalRepo,
		dna:        dna,
		pairs:      pairs,
		publisher:  publisher,
		cfg:        cfg,
		logger:     logger,
	}
}

// AnalyzeMatch runs the full pipeline for one pairing.
func (s *AnalysisService) AnalyzeMatch(ctx context.Context, homeName, awayName string) (matchup.Analysis, error) {
	ctx, span := startUsecaseSpan(ctx, "AnalysisService.AnalyzeMatch")
	defer span.End()

	started := time.Now()
	home := s.normalizer.Normalize(homeName)
	away := s.normalizer.Normalize(awayName)
	if home == "" || away == "" {
		return matchup.Analysis{}, fmt.Errorf("%w: both team names are required", ErrInvalidInput)
	}
	if strings.EqualFold(home, away) {
		return matchup.Analysis{}, fmt.Errorf("%w: a team cannot face itself (%s)", ErrInvalidInput, home)
	}

	if err := s.checkGoalStream(ctx); err != nil {
		return matchup.Analysis{}, err
	}

	var homeDNA, awayDNA teamdna.DNA
	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		var err error
		homeDNA, err = s.dna.BuildTeam(ctx, home)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		awayDNA, err = s.dna.BuildTeam(ctx, away)
		return err
	})
	if err := p.Wait(); err != nil {
		return matchup.Analysis{}, err
	}

	fr := s.resolveFriction(home, away, homeDNA.Profile, awayDNA.Profile)
	analysis := matchup.Analyze(homeDNA, awayDNA, fr)

	if err := s.publisher.Publish(ctx, analysis); err != nil {
		// Delivery is best-effort; the analysis itself already succeeded.
		s.logger.WarnContext(ctx, "analysis publish failed",
			"home", home, "away", away, "error", err.Error())
	}

	// Only request metadata here; the analysis content belongs to the caller
	// and the publisher, not the service log.
	s.logger.InfoContext(ctx, "match analyzed",
		"home", home,
		"away", away,
		"duration_ms", time.Since(started).Milliseconds())
	return analysis, nil
}

// checkGoalStream enforces the integrity precondition before any per-team
// computation starts.
func (s *AnalysisService) checkGoalStream(ctx context.Context) error {
	goals, err := s.goalRepo.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("%w: goals: %v", ErrSourceUnavailable, err)
	}
	if len(goals) < s.cfg.MinGoalEvents {
		return fmt.Errorf("%w: %d goal events loaded, need at least %d for timing analysis",
			ErrDataIntegrity, len(goals), s.cfg.MinGoalEvents)
	}
	return nil
}

// resolveFriction prefers the profile matrix; when it bottoms out on the
// default cell, a precomputed team pairing may still know better.
func (s *AnalysisService) resolveFriction(home, away string, homeProfile, awayProfile teamdna.TacticalProfile) friction.Result {
	fr := friction.Lookup(homeProfile, awayProfile)
	isDefault := fr.Source == friction.SourceFallback ||
		(homeProfile == teamdna.ProfileBalanced && awayProfile == teamdna.ProfileBalanced)
	if !isDefault {
		return fr
	}
	if cached, ok := s.pairs.Get(home, away); ok {
		return cached
	}
	return fr
}
