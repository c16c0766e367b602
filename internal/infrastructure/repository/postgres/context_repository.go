package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/oddsforge/matchdna/internal/domain/teamcontext"
)

// ContextRepository reads team context and enrichment records. Optional
// records report found=false instead of an error.
type ContextRepository struct {
	db *sqlx.DB
}

func NewContextRepository(db *sqlx.DB) *ContextRepository {
	return &ContextRepository{db: db}
}

const selectContextByTeamQuery = `
SELECT id, team, league, matches_played, xg_for, xg_against,
       home_xga_per_match, away_xga_per_match, possession_pct,
       pressing_style, defensive_style, ppda, formation, form_last_five,
       points_per_game, tactical_profile, profile_confidence
FROM team_contexts
WHERE team = $1`

const selectRefereeByNameQuery = `
SELECT id, name, yellows_per_game, strictness, home_bias
FROM referees
WHERE name = $1`

const selectGoalkeeperByTeamQuery = `
SELECT id, team, saves, goals_prevented, save_rate, header_save_rate, late_save_rate
FROM goalkeepers
WHERE team = $1`

func (r *ContextRepository) GetByTeam(ctx context.Context, team string) (teamcontext.Context, bool, error) {
	var row teamContextTableModel
	if err := r.db.GetContext(ctx, &row, selectContextByTeamQuery, team); err != nil {
		if isNotFound(err) {
			return teamcontext.Context{}, false, nil
		}
		return teamcontext.Context{}, false, fmt.Errorf("get team context: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *ContextRepository) GetReferee(ctx context.Context, name string) (teamcontext.Referee, bool, error) {
	var row refereeTableModel
	if err := r.db.GetContext(ctx, &row, selectRefereeByNameQuery, name); err != nil {
		if isNotFound(err) {
			return teamcontext.Referee{}, false, nil
		}
		return teamcontext.Referee{}, false, fmt.Errorf("get referee: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *ContextRepository) GetGoalkeeper(ctx context.Context, team string) (teamcontext.Goalkeeper, bool, error) {
	var row goalkeeperTableModel
	if err := r.db.GetContext(ctx, &row, selectGoalkeeperByTeamQuery, team); err != nil {
		if isNotFound(err) {
			return teamcontext.Goalkeeper{}, false, nil
		}
		return teamcontext.Goalkeeper{}, false, fmt.Errorf("get goalkeeper: %w", err)
	}
	return row.toDomain(), true, nil
}
