package memory

import (
	"context"
	"sync"

	"github.com/oddsforge/matchdna/internal/domain/playerprofile"
)

// PlayerRepository serves raw player aggregates, de-duplicated by the
// (player, team) composite key so transferred players keep one record per
// club.
type PlayerRepository struct {
	mu     sync.RWMutex
	items  map[playerKey]playerprofile.RawPlayer
	orders []playerKey
	byTeam map[string][]playerKey
}

type playerKey struct {
	name, team string
}

func NewPlayerRepository(players []playerprofile.RawPlayer) *PlayerRepository {
	items := make(map[playerKey]playerprofile.RawPlayer, len(players))
	orders := make([]playerKey, 0, len(players))
	byTeam := make(map[string][]playerKey)

	for _, p := range players {
		key := playerKey{name: p.PlayerName, team: p.Team}
		if _, dup := items[key]; !dup {
			orders = append(orders, key)
			byTeam[p.Team] = append(byTeam[p.Team], key)
		}
		items[key] = p
	}

	return &PlayerRepository{
		items:  items,
		orders: orders,
		byTeam: byTeam,
	}
}

func (r *PlayerRepository) ListAll(_ context.Context) ([]playerprofile.RawPlayer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]playerprofile.RawPlayer, 0, len(r.orders))
	for _, key := range r.orders {
		out = append(out, r.items[key])
	}
	return out, nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, team string) ([]playerprofile.RawPlayer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := r.byTeam[team]
	out := make([]playerprofile.RawPlayer, 0, len(keys))
	for _, key := range keys {
		out = append(out, r.items[key])
	}
	return out, nil
}
