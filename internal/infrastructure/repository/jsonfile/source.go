// Package jsonfile loads a season snapshot from understat-style JSON
// exports and serves it through the domain repository interfaces. The
// snapshot is parsed once, validated, name-normalized and swapped in
// atomically; readers always see a consistent season.
package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/oddsforge/matchdna/internal/domain/goalevent"
	"github.com/oddsforge/matchdna/internal/domain/names"
	"github.com/oddsforge/matchdna/internal/domain/playerprofile"
	"github.com/oddsforge/matchdna/internal/domain/teamcontext"
	"github.com/oddsforge/matchdna/internal/infrastructure/repository/memory"
)

const (
	playersFile  = "players.json"
	goalsFile    = "goals.json"
	contextsFile = "contexts.json"
	refereesFile = "referees.json"
	keepersFile  = "goalkeepers.json"
)

// Source owns one loaded snapshot. Reload builds a fresh snapshot off to
// the side and swaps the pointer, so in-flight readers finish on the old
// season.
type Source struct {
	dir        string
	normalizer *names.Normalizer
	validate   *validator.Validate
	snapshot   atomic.Pointer[snapshot]
}

type snapshot struct {
	goals    *memory.GoalRepository
	players  *memory.PlayerRepository
	contexts *memory.ContextRepository
}

func NewSource(dir string, normalizer *names.Normalizer) (*Source, error) {
	if normalizer == nil {
		normalizer = names.NewNormalizer(names.DefaultAliases())
	}
	s := &Source{
		dir:        dir,
		normalizer: normalizer,
		validate:   validator.New(),
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads every payload file and swaps the snapshot.
func (s *Source) Reload() error {
	var goals []goalevent.Goal
	if err := s.readJSON(goalsFile, &goals); err != nil {
		return err
	}
	var players []playerprofile.RawPlayer
	if err := s.readJSON(playersFile, &players); err != nil {
		return err
	}
	for i, p := range players {
		if err := s.validate.Struct(p); err != nil {
			return errors.Wrapf(err, "jsonfile: player record %d (%s)", i, p.PlayerName)
		}
		players[i].Team = s.normalizer.Normalize(p.Team)
	}
	for i, g := range goals {
		goals[i].ScoringTeam = s.normalizer.Normalize(g.ScoringTeam)
		goals[i].Opponent = s.normalizer.Normalize(g.Opponent)
	}

	// Enrichment files are optional; a missing file is an empty set.
	var contexts []teamcontext.Context
	if err := s.readOptionalJSON(contextsFile, &contexts); err != nil {
		return err
	}
	for i := range contexts {
		contexts[i].Team = s.normalizer.Normalize(contexts[i].Team)
	}
	var referees []teamcontext.Referee
	if err := s.readOptionalJSON(refereesFile, &referees); err != nil {
		return err
	}
	var keepers []teamcontext.Goalkeeper
	if err := s.readOptionalJSON(keepersFile, &keepers); err != nil {
		return err
	}
	for i := range keepers {
		keepers[i].Team = s.normalizer.Normalize(keepers[i].Team)
	}

	s.snapshot.Store(&snapshot{
		goals:    memory.NewGoalRepository(goals),
		players:  memory.NewPlayerRepository(players),
		contexts: memory.NewContextRepository(contexts, referees, keepers),
	})
	return nil
}

func (s *Source) readJSON(name string, out any) error {
	path := filepath.Join(s.dir, name)
	payload, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "jsonfile: read %s", path)
	}
	if err := sonic.Unmarshal(payload, out); err != nil {
		return errors.Wrapf(err, "jsonfile: decode %s", path)
	}
	return nil
}

func (s *Source) readOptionalJSON(name string, out any) error {
	if _, err := os.Stat(filepath.Join(s.dir, name)); os.IsNotExist(err) {
		return nil
	}
	return s.readJSON(name, out)
}

func (s *Source) current() *snapshot { return s.snapshot.Load() }

// Goals exposes the goal stream repository view of the snapshot.
func (s *Source) Goals() goalevent.Repository { return goalsView{s} }

// Players exposes the raw player aggregate view.
func (s *Source) Players() playerprofile.RawRepository { return playersView{s} }

// Contexts exposes the context and enrichment view.
func (s *Source) Contexts() teamcontext.Repository { return contextsView{s} }

type goalsView struct{ src *Source }

func (v goalsView) ListAll(ctx context.Context) ([]goalevent.Goal, error) {
	return v.src.current().goals.ListAll(ctx)
}

func (v goalsView) ListByTeam(ctx context.Context, team string) ([]goalevent.Goal, error) {
	return v.src.current().goals.ListByTeam(ctx, team)
}

type playersView struct{ src *Source }

func (v playersView) ListAll(ctx context.Context) ([]playerprofile.RawPlayer, error) {
	return v.src.current().players.ListAll(ctx)
}

func (v playersView) ListByTeam(ctx context.Context, team string) ([]playerprofile.RawPlayer, error) {
	return v.src.current().players.ListByTeam(ctx, team)
}

type contextsView struct{ src *Source }

func (v contextsView) GetByTeam(ctx context.Context, team string) (teamcontext.Context, bool, error) {
	return v.src.current().contexts.GetByTeam(ctx, team)
}

func (v contextsView) GetReferee(ctx context.Context, name string) (teamcontext.Referee, bool, error) {
	return v.src.current().contexts.GetReferee(ctx, name)
}

func (v contextsView) GetGoalkeeper(ctx context.Context, team string) (teamcontext.Goalkeeper, bool, error) {
	return v.src.current().contexts.GetGoalkeeper(ctx, team)
}
