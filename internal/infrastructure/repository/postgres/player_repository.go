package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/oddsforge/matchdna/internal/domain/playerprofile"
)

// PlayerRepository reads raw player aggregates. The unique index on
// (player_name, team) makes the composite de-duplication a schema concern.
type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

const selectPlayersQuery = `
SELECT id, player_name, team, league, position, goals, npg, xg, npxg,
       assists, xa, shots, minutes, games, xg_chain, xg_buildup,
       key_passes, yellow_cards, red_cards
FROM player_aggregates
ORDER BY team, player_name`

const selectPlayersByTeamQuery = `
SELECT id, player_name, team, league, position, goals, npg, xg, npxg,
       assists, xa, shots, minutes, games, xg_chain, xg_buildup,
       key_passes, yellow_cards, red_cards
FROM player_aggregates
WHERE team = $1
ORDER BY player_name`

func (r *PlayerRepository) ListAll(ctx context.Context) ([]playerprofile.RawPlayer, error) {
	var rows []playerAggregateTableModel
	if err := r.db.SelectContext(ctx, &rows, selectPlayersQuery); err != nil {
		return nil, fmt.Errorf("select player aggregates: %w", err)
	}
	return playerRowsToDomain(rows), nil
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, team string) ([]playerprofile.RawPlayer, error) {
	var rows []playerAggregateTableModel
	if err := r.db.SelectContext(ctx, &rows, selectPlayersByTeamQuery, team); err != nil {
		return nil, fmt.Errorf("select player aggregates by team: %w", err)
	}
	return playerRowsToDomain(rows), nil
}

func playerRowsToDomain(rows []playerAggregateTableModel) []playerprofile.RawPlayer {
	out := make([]playerprofile.RawPlayer, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}
