package memory

import (
	"context"
	"sync"

	"github.com/oddsforge/matchdna/internal/domain/teamcontext"
)

// ContextRepository serves team context, referee and goalkeeper enrichment
// records.
type ContextRepository struct {
	mu       sync.RWMutex
	contexts map[string]teamcontext.Context
	referees map[string]teamcontext.Referee
	keepers  map[string]teamcontext.Goalkeeper
}

func NewContextRepository(
	contexts []teamcontext.Context,
	referees []teamcontext.Referee,
	keepers []teamcontext.Goalkeeper,
) *ContextRepository {
	r := &ContextRepository{
		contexts: make(map[string]teamcontext.Context, len(contexts)),
		referees: make(map[string]teamcontext.Referee, len(referees)),
		keepers:  make(map[string]teamcontext.Goalkeeper, len(keepers)),
	}
	for _, c := range contexts {
		r.contexts[c.Team] = c
	}
	for _, ref := range referees {
		r.referees[ref.Name] = ref
	}
	for _, gk := range keepers {
		r.keepers[gk.Team] = gk
	}
	return r
}

func (r *ContextRepository) GetByTeam(_ context.Context, team string) (teamcontext.Context, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.contexts[team]
	return c, ok, nil
}

func (r *ContextRepository) GetReferee(_ context.Context, name string) (teamcontext.Referee, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ref, ok := r.referees[name]
	return ref, ok, nil
}

func (r *ContextRepository) GetGoalkeeper(_ context.Context, team string) (teamcontext.Goalkeeper, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	gk, ok := r.keepers[team]
	return gk, ok, nil
}
