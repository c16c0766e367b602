package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/oddsforge/matchdna/internal/domain/goalevent"
	"github.com/oddsforge/matchdna/internal/domain/names"
	"github.com/oddsforge/matchdna/internal/domain/playerprofile"
	"github.com/oddsforge/matchdna/internal/platform/logging"
)

// ProfileService builds per-player profiles for one team from the raw
// aggregates and the goal stream. Requested names go through the normalizer,
// so aliases resolve to the same roster as the canonical spelling.
type ProfileService struct {
	playerRepo playerprofile.RawRepository
	goalRepo   goalevent.Repository
	normalizer *names.Normalizer
	logger     *logging.Logger
}

func NewProfileService(
	playerRepo playerprofile.RawRepository,
	goalRepo goalevent.Repository,
	normalizer *names.Normalizer,
	logger *logging.Logger,
) *ProfileService {
	if normalizer == nil {
		normalizer = names.NewNormalizer(names.DefaultAliases())
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ProfileService{
		playerRepo: playerRepo,
		goalRepo:   goalRepo,
		normalizer: normalizer,
		logger:     logger,
	}
}

// TeamMaterial is everything the DNA builder needs for one team's roster.
type TeamMaterial struct {
	Team     string
	Profiles []playerprofile.Profile
	Goals    []goalevent.Goal
}

// BuildTeam assembles player profiles for the requested team. The name is
// normalized first; a team absent from the player source is ErrTeamNotFound,
// a roster with no recorded goal events is ErrInsufficientData.
func (s *ProfileService) BuildTeam(ctx context.Context, team string) (TeamMaterial, error) {
	ctx, span := startUsecaseSpan(ctx, "ProfileService.BuildTeam")
	defer span.End()

	team = s.normalizer.Normalize(strings.TrimSpace(team))
	if team == "" {
		return TeamMaterial{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	raws, err := s.playerRepo.ListByTeam(ctx, team)
	if err != nil {
		return TeamMaterial{}, fmt.Errorf("%w: players: %v", ErrSourceUnavailable, err)
	}
	if len(raws) == 0 {
		return TeamMaterial{}, fmt.Errorf("%w: %s", ErrTeamNotFound, team)
	}

	goals, err := s.goalRepo.ListByTeam(ctx, team)
	if err != nil {
		return TeamMaterial{}, fmt.Errorf("%w: goals: %v", ErrSourceUnavailable, err)
	}
	if len(goals) == 0 {
		return TeamMaterial{}, fmt.Errorf("%w: no goal events recorded for %s", ErrInsufficientData, team)
	}

	teamGoals := 0
	for _, raw := range raws {
		teamGoals += raw.Goals
	}

	profiles := make([]playerprofile.Profile, 0, len(raws))
	for _, raw := range raws {
		profiles = append(profiles, playerprofile.Build(raw, goals, teamGoals))
	}

	s.logger.DebugContext(ctx, "team profiles built",
		"team", team, "players", len(profiles), "goals", len(goals))

	return TeamMaterial{Team: team, Profiles: profiles, Goals: goals}, nil
}
