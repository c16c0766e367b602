package goalevent

import (
	"context"
	"time"
)

// Half of play in which a goal was scored.
type Half string

const (
	HalfFirst  Half = "1H"
	HalfSecond Half = "2H"
)

// TimingPeriod is the fifteen-minute bucket of a goal, with the conventional
// 31-45 and 76-90 buckets absorbing first- and second-half stoppage splits
// below the dedicated 90+ bucket.
type TimingPeriod string

const (
	Period0to15  TimingPeriod = "0-15"
	Period16to30 TimingPeriod = "16-30"
	Period31to45 TimingPeriod = "31-45"
	Period46to60 TimingPeriod = "46-60"
	Period61to75 TimingPeriod = "61-75"
	Period76to90 TimingPeriod = "76-90"
	PeriodExtra  TimingPeriod = "90+"
)

// AllPeriods in match order, used wherever deterministic iteration matters.
var AllPeriods = []TimingPeriod{
	Period0to15, Period16to30, Period31to45,
	Period46to60, Period61to75, Period76to90, PeriodExtra,
}

// PeriodForMinute maps a match minute onto its timing bucket.
func PeriodForMinute(minute int) TimingPeriod {
	switch {
	case minute <= 15:
		return Period0to15
	case minute <= 30:
		return Period16to30
	case minute <= 45:
		return Period31to45
	case minute <= 60:
		return Period46to60
	case minute <= 75:
		return Period61to75
	case minute <= 90:
		return Period76to90
	default:
		return PeriodExtra
	}
}

// Situation describes the phase of play that produced a goal.
type Situation string

const (
	SituationOpenPlay Situation = "OpenPlay"
	SituationCorner   Situation = "Corner"
	SituationFreekick Situation = "Freekick"
	SituationSetPiece Situation = "SetPiece"
	SituationPenalty  Situation = "Penalty"
)

// ShotType is the body part that finished the goal.
type ShotType string

const (
	ShotRightFoot ShotType = "RightFoot"
	ShotLeftFoot  ShotType = "LeftFoot"
	ShotHead      ShotType = "Head"
)

// Goal is one scored goal from the per-goal event source.
type Goal struct {
	MatchID      string
	Date         time.Time
	League       string
	Scorer       string
	ScoringTeam  string
	Opponent     string
	IsHome       bool
	Half         Half
	TimingPeriod TimingPeriod
	Minute       int
	Situation    Situation
	ShotType     ShotType
	XG           float64
	GoalNumber   int
	IsFirstGoal  bool
	IsLastGoal   bool
}

// IsSetPiece groups the dead-ball situations excluding penalties.
func (g Goal) IsSetPiece() bool {
	return g.Situation == SituationCorner ||
		g.Situation == SituationFreekick ||
		g.Situation == SituationSetPiece
}

// Repository reads the goal stream. Implementations must preserve input
// order within one match so first/last-goal flags derive deterministically.
type Repository interface {
	// ListAll returns every goal of the loaded season snapshot.
	ListAll(ctx context.Context) ([]Goal, error)
	// ListByTeam returns the goals scored by one canonical team.
	ListByTeam(ctx context.Context, team string) ([]Goal, error)
}
