package friction

import "github.com/oddsforge/matchdna/internal/domain/teamdna"

// ClashType classifies how two tactical profiles collide.
type ClashType string

const (
	ClashChaosMaximal      ClashType = "CHAOS_MAXIMAL"
	ClashChessMatch        ClashType = "CHESS_MATCH"
	ClashSiegeWarfare      ClashType = "SIEGE_WARFARE"
	ClashAbsorbCounter     ClashType = "ABSORB_COUNTER"
	ClashPressingBattle    ClashType = "PRESSING_BATTLE"
	ClashTransitionFest    ClashType = "TRANSITION_FEST"
	ClashSpaceExploitation ClashType = "SPACE_EXPLOITATION"
	ClashWingBattle        ClashType = "WING_BATTLE"
	ClashStalemate         ClashType = "STALEMATE"
	ClashTacticalChess     ClashType = "TACTICAL_CHESS"
	ClashUnpredictable     ClashType = "UNPREDICTABLE"
)

// Tempo is the expected rhythm of the match.
type Tempo string

const (
	TempoExtreme  Tempo = "EXTREME"
	TempoHigh     Tempo = "HIGH"
	TempoMedium   Tempo = "MEDIUM"
	TempoSlow     Tempo = "SLOW"
	TempoVariable Tempo = "VARIABLE"
)

// Lookup provenance. Matchup consumers use it to decide whether a
// precomputed pair record should override the matrix answer.
const (
	SourceExact    = "exact"
	SourceMirrored = "mirrored"
	SourceFallback = "fallback"
	SourcePairGrid = "pair_grid"
)

// Result is one cell of the profile friction matrix. Records are immutable;
// mirrored lookups return a copy with FirstHalfBias flipped.
type Result struct {
	Home teamdna.TacticalProfile
	Away teamdna.TacticalProfile

	Clash ClashType
	Tempo Tempo

	GoalsModifier   float64
	CardsModifier   float64
	CornersModifier float64
	FirstHalfBias   float64 // [0,1], flipped to 1-bias on mirror
	LateGoalProb    float64 // [0,1]

	PrimaryMarkets   []string
	SecondaryMarkets []string
	AvoidMarkets     []string

	Description string
	Source      string
}

// mirrored returns the swapped-venue view of r.
func (r Result) mirrored() Result {
	m := r
	m.Home, m.Away = r.Away, r.Home
	m.FirstHalfBias = 1 - r.FirstHalfBias
	m.Source = SourceMirrored
	return m
}
