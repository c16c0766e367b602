package postgres

import "github.com/oddsforge/matchdna/internal/domain/teamcontext"

type teamContextTableModel struct {
	ID                int64   `db:"id"`
	Team              string  `db:"team"`
	League            string  `db:"league"`
	MatchesPlayed     int     `db:"matches_played"`
	XGFor             float64 `db:"xg_for"`
	XGAgainst         float64 `db:"xg_against"`
	HomeXGAPerMatch   float64 `db:"home_xga_per_match"`
	AwayXGAPerMatch   float64 `db:"away_xga_per_match"`
	PossessionPct     float64 `db:"possession_pct"`
	PressingStyle     string  `db:"pressing_style"`
	DefensiveStyle    string  `db:"defensive_style"`
	PPDA              float64 `db:"ppda"`
	Formation         string  `db:"formation"`
	FormLastFive      string  `db:"form_last_five"`
	PointsPerGame     float64 `db:"points_per_game"`
	TacticalProfile   string  `db:"tactical_profile"`
	ProfileConfidence float64 `db:"profile_confidence"`
}

func (m teamContextTableModel) toDomain() teamcontext.Context {
	return teamcontext.Context{
		Team:              m.Team,
		League:            m.League,
		MatchesPlayed:     m.MatchesPlayed,
		XGFor:             m.XGFor,
		XGAgainst:         m.XGAgainst,
		HomeXGAPerMatch:   m.HomeXGAPerMatch,
		AwayXGAPerMatch:   m.AwayXGAPerMatch,
		PossessionPct:     m.PossessionPct,
		PressingStyle:     m.PressingStyle,
		DefensiveStyle:    m.DefensiveStyle,
		PPDA:              m.PPDA,
		Formation:         m.Formation,
		FormLastFive:      m.FormLastFive,
		PointsPerGame:     m.PointsPerGame,
		TacticalProfile:   m.TacticalProfile,
		ProfileConfidence: m.ProfileConfidence,
	}
}

type refereeTableModel struct {
	ID             int64   `db:"id"`
	Name           string  `db:"name"`
	YellowsPerGame float64 `db:"yellows_per_game"`
	Strictness     string  `db:"strictness"`
	HomeBias       float64 `db:"home_bias"`
}

func (m refereeTableModel) toDomain() teamcontext.Referee {
	return teamcontext.Referee{
		Name:           m.Name,
		YellowsPerGame: m.YellowsPerGame,
		Strictness:     m.Strictness,
		HomeBias:       m.HomeBias,
	}
}

type goalkeeperTableModel struct {
	ID             int64   `db:"id"`
	Team           string  `db:"team"`
	Saves          int     `db:"saves"`
	GoalsPrevented float64 `db:"goals_prevented"`
	SaveRate       float64 `db:"save_rate"`
	HeaderSaveRate float64 `db:"header_save_rate"`
	LateSaveRate   float64 `db:"late_save_rate"`
}

func (m goalkeeperTableModel) toDomain() teamcontext.Goalkeeper {
	return teamcontext.Goalkeeper{
		Team:           m.Team,
		Saves:          m.Saves,
		GoalsPrevented: m.GoalsPrevented,
		SaveRate:       m.SaveRate,
		HeaderSaveRate: m.HeaderSaveRate,
		LateSaveRate:   m.LateSaveRate,
	}
}
