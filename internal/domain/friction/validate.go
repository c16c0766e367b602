package friction

import (
	"fmt"
	"math"

	"github.com/oddsforge/matchdna/internal/domain/teamdna"
)

const biasTolerance = 1e-9

// validateMatrix enforces the table contract at startup: full 12x12
// coverage, the reverse-symmetry rule, and modifier ranges. A defect here is
// an authoring error in the literal cells, so init panics on it.
func validateMatrix(m map[pairKey]Result) error {
	for _, home := range teamdna.AllProfiles {
		for _, away := range teamdna.AllProfiles {
			r, ok := m[pairKey{home, away}]
			if !ok {
				return fmt.Errorf("friction matrix: missing cell (%s, %s)", home, away)
			}
			if r.FirstHalfBias < 0 || r.FirstHalfBias > 1 {
				return fmt.Errorf("friction matrix: cell (%s, %s) first-half bias %v out of [0,1]", home, away, r.FirstHalfBias)
			}
			if r.LateGoalProb < 0 || r.LateGoalProb > 1 {
				return fmt.Errorf("friction matrix: cell (%s, %s) late-goal probability %v out of [0,1]", home, away, r.LateGoalProb)
			}

			rev := m[pairKey{away, home}]
			if err := checkMirror(r, rev); err != nil {
				return fmt.Errorf("friction matrix: cells (%s, %s)/(%s, %s): %w", home, away, away, home, err)
			}
		}
	}
	return nil
}

func checkMirror(a, b Result) error {
	if a.Clash != b.Clash {
		return fmt.Errorf("clash type diverges: %s vs %s", a.Clash, b.Clash)
	}
	if a.Tempo != b.Tempo {
		return fmt.Errorf("tempo diverges: %s vs %s", a.Tempo, b.Tempo)
	}
	if a.GoalsModifier != b.GoalsModifier || a.CardsModifier != b.CardsModifier || a.CornersModifier != b.CornersModifier {
		return fmt.Errorf("modifiers diverge")
	}
	if math.Abs(a.FirstHalfBias+b.FirstHalfBias-1) > biasTolerance {
		return fmt.Errorf("first-half bias %v and %v do not sum to 1", a.FirstHalfBias, b.FirstHalfBias)
	}
	if a.LateGoalProb != b.LateGoalProb {
		return fmt.Errorf("late-goal probability diverges")
	}
	if !sameMarkets(a.PrimaryMarkets, b.PrimaryMarkets) ||
		!sameMarkets(a.SecondaryMarkets, b.SecondaryMarkets) ||
		!sameMarkets(a.AvoidMarkets, b.AvoidMarkets) {
		return fmt.Errorf("market lists diverge")
	}
	return nil
}

func sameMarkets(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
