package memory

import (
	"context"
	"sync"

	"github.com/oddsforge/matchdna/internal/domain/goalevent"
)

// GoalRepository serves a frozen goal stream. Input order is preserved so
// first/last-goal derivation stays deterministic.
type GoalRepository struct {
	mu     sync.RWMutex
	goals  []goalevent.Goal
	byTeam map[string][]goalevent.Goal
}

func NewGoalRepository(goals []goalevent.Goal) *GoalRepository {
	byTeam := make(map[string][]goalevent.Goal)
	for _, g := range goals {
		byTeam[g.ScoringTeam] = append(byTeam[g.ScoringTeam], g)
	}
	return &GoalRepository{
		goals:  goals,
		byTeam: byTeam,
	}
}

func (r *GoalRepository) ListAll(_ context.Context) ([]goalevent.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]goalevent.Goal, len(r.goals))
	copy(out, r.goals)
	return out, nil
}

func (r *GoalRepository) ListByTeam(_ context.Context, team string) ([]goalevent.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goals := r.byTeam[team]
	out := make([]goalevent.Goal, len(goals))
	copy(out, goals)
	return out, nil
}
