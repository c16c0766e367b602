package teamcontext

import "context"

// Context is the season-level aggregate record for one team. Numeric gaps
// stay at zero and are reported through the Has flag; the DNA builder falls
// back to neutral axis scores for missing inputs.
type Context struct {
	Team            string
	League          string
	MatchesPlayed   int
	XGFor           float64
	XGAgainst       float64
	HomeXGAPerMatch float64
	AwayXGAPerMatch float64
	PossessionPct   float64
	PressingStyle   string // keyword: gegenpress, high-press, mid-block, low-block
	DefensiveStyle  string // keyword: high-line, mid-block, low-block
	PPDA            float64
	Formation       string
	FormLastFive    string // e.g. "WWDLW", most recent last
	PointsPerGame   float64

	// TacticalProfile carries the externally assigned classifier label when
	// one exists; empty means the DNA builder derives it from the axes.
	TacticalProfile   string
	ProfileConfidence float64
}

// Referee is optional enrichment for card markets.
type Referee struct {
	Name           string
	YellowsPerGame float64
	Strictness     string // lenient, average, strict
	HomeBias       float64
}

// Goalkeeper is optional enrichment for the keeper-dependent axes.
type Goalkeeper struct {
	Team           string
	Saves          int
	GoalsPrevented float64
	SaveRate       float64 // overall, percent
	HeaderSaveRate float64 // percent, aerial resistance input
	LateSaveRate   float64 // percent, 76'+ windows
}

// Repository reads context and enrichment records. A missing optional record
// is reported with found=false, never an error.
type Repository interface {
	GetByTeam(ctx context.Context, team string) (Context, bool, error)
	GetReferee(ctx context.Context, name string) (Referee, bool, error)
	GetGoalkeeper(ctx context.Context, team string) (Goalkeeper, bool, error)
}
