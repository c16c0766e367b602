package postgres

import (
	"time"

	"github.com/oddsforge/matchdna/internal/domain/goalevent"
)

type goalEventTableModel struct {
	ID           int64     `db:"id"`
	MatchID      string    `db:"match_id"`
	PlayedAt     time.Time `db:"played_at"`
	League       string    `db:"league"`
	Scorer       string    `db:"scorer"`
	ScoringTeam  string    `db:"scoring_team"`
	Opponent     string    `db:"opponent"`
	IsHome       bool      `db:"is_home"`
	Half         string    `db:"half"`
	TimingPeriod string    `db:"timing_period"`
	Minute       int       `db:"minute"`
	Situation    string    `db:"situation"`
	ShotType     string    `db:"shot_type"`
	XG           float64   `db:"xg"`
	GoalNumber   int       `db:"goal_number"`
	IsFirstGoal  bool      `db:"is_first_goal"`
	IsLastGoal   bool      `db:"is_last_goal"`
}

func (m goalEventTableModel) toDomain() goalevent.Goal {
	return goalevent.Goal{
		MatchID:      m.MatchID,
		Date:         m.PlayedAt,
		League:       m.League,
		Scorer:       m.Scorer,
		ScoringTeam:  m.ScoringTeam,
		Opponent:     m.Opponent,
		IsHome:       m.IsHome,
		Half:         goalevent.Half(m.Half),
		TimingPeriod: goalevent.TimingPeriod(m.TimingPeriod),
		Minute:       m.Minute,
		Situation:    goalevent.Situation(m.Situation),
		ShotType:     goalevent.ShotType(m.ShotType),
		XG:           m.XG,
		GoalNumber:   m.GoalNumber,
		IsFirstGoal:  m.IsFirstGoal,
		IsLastGoal:   m.IsLastGoal,
	}
}
