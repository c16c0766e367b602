package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/oddsforge/matchdna/internal/domain/goalevent"
)

// GoalRepository reads the goal stream. Rows come back in insertion order
// so first/last-goal derivation stays stable across calls.
type GoalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

const selectGoalsQuery = `
SELECT id, match_id, played_at, league, scorer, scoring_team, opponent,
       is_home, half, timing_period, minute, situation, shot_type, xg,
       goal_number, is_first_goal, is_last_goal
FROM goal_events
ORDER BY id`

const selectGoalsByTeamQuery = `
SELECT id, match_id, played_at, league, scorer, scoring_team, opponent,
       is_home, half, timing_period, minute, situation, shot_type, xg,
       goal_number, is_first_goal, is_last_goal
FROM goal_events
WHERE scoring_team = $1
ORDER BY id`

func (r *GoalRepository) ListAll(ctx context.Context) ([]goalevent.Goal, error) {
	var rows []goalEventTableModel
	if err := r.db.SelectContext(ctx, &rows, selectGoalsQuery); err != nil {
		return nil, fmt.Errorf("select goal events: %w", err)
	}
	return goalRowsToDomain(rows), nil
}

func (r *GoalRepository) ListByTeam(ctx context.Context, team string) ([]goalevent.Goal, error) {
	var rows []goalEventTableModel
	if err := r.db.SelectContext(ctx, &rows, selectGoalsByTeamQuery, team); err != nil {
		return nil, fmt.Errorf("select goal events by team: %w", err)
	}
	return goalRowsToDomain(rows), nil
}

func goalRowsToDomain(rows []goalEventTableModel) []goalevent.Goal {
	out := make([]goalevent.Goal, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}
