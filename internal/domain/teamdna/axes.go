package teamdna

import (
	"strings"

	"github.com/oddsforge/matchdna/internal/domain/teamcontext"
)

// Axis normalizations. Every axis is a monotone rescale of one or two inputs
// onto [0,100] with documented low/high cutoffs; a missing input falls back
// to the neutral 50.

const axisNeutral = 50.0

// scale maps value linearly from [lo,hi] onto [0,100], clamped.
func scale(value, lo, hi float64) float64 {
	if hi == lo {
		return axisNeutral
	}
	out := (value - lo) / (hi - lo) * 100
	return clampAxis(out)
}

// scaleInverted maps value from [lo,hi] onto [100,0], clamped. Used where a
// smaller input means a stronger trait (PPDA, xGA).
func scaleInverted(value, lo, hi float64) float64 {
	return clampAxis(100 - scale(value, lo, hi))
}

func clampAxis(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

var pressingStyleScores = map[string]float64{
	"gegenpress": 90,
	"high-press": 80,
	"high-line":  70,
	"mid-block":  55,
	"low-block":  30,
	"deep-block": 20,
}

var blockDepthScores = map[string]float64{
	"low-block":  80,
	"deep-block": 90,
	"mid-block":  55,
	"high-line":  25,
	"gegenpress": 20,
	"high-press": 25,
}

type axisInputs struct {
	ctx    teamcontext.Context
	hasCtx bool
	gk     teamcontext.Goalkeeper
	hasGK  bool
	dna    *DNA
}

// computeAxes fills all fifteen axes on the DNA record.
func computeAxes(in axisInputs) map[Axis]float64 {
	axes := make(map[Axis]float64, len(AllAxes))
	for _, axis := range AllAxes {
		axes[axis] = axisNeutral
	}

	d := in.dna

	if in.hasCtx {
		// PPDA 6 (relentless) .. 16 (passive); keyword fallback.
		if in.ctx.PPDA > 0 {
			axes[AxisPressingIntensity] = scaleInverted(in.ctx.PPDA, 6, 16)
		} else if s, ok := pressingStyleScores[strings.ToLower(in.ctx.PressingStyle)]; ok {
			axes[AxisPressingIntensity] = s
		}

		// Possession 38% .. 65%.
		if in.ctx.PossessionPct > 0 {
			axes[AxisPossessionControl] = scale(in.ctx.PossessionPct, 38, 65)
		}

		// Defensive keyword wins for block depth; otherwise the inverse of
		// pressing is a serviceable proxy.
		style := strings.ToLower(in.ctx.DefensiveStyle)
		if style == "" {
			style = strings.ToLower(in.ctx.PressingStyle)
		}
		if s, ok := blockDepthScores[style]; ok {
			axes[AxisBlockDepth] = s
		} else if in.ctx.PPDA > 0 {
			axes[AxisBlockDepth] = clampAxis(100 - axes[AxisPressingIntensity])
		}

		// Season xGA per match 0.8 (elite) .. 2.0 (porous).
		if in.ctx.MatchesPlayed > 0 && in.ctx.XGAgainst > 0 {
			xgaPerMatch := in.ctx.XGAgainst / float64(in.ctx.MatchesPlayed)
			axes[AxisDefensiveCompactness] = scaleInverted(xgaPerMatch, 0.8, 2.0)
		}

		// Away xGA 1.0 .. 2.4: how the defense travels under transition load.
		if in.ctx.AwayXGAPerMatch > 0 {
			axes[AxisTransitionDefense] = scaleInverted(in.ctx.AwayXGAPerMatch, 1.0, 2.4)
		}
	}

	// Verticality: direct teams score from open play without long buildup
	// chains. Open-play share 40..85 blended against possession control.
	if d.Goals > 0 {
		direct := scale(d.PctOpenPlay, 40, 85)
		axes[AxisVerticality] = clampAxis((direct + (100 - axes[AxisPossessionControl])) / 2)
	}

	// Wide play proxied by headed-goal share 5..30 (cross volume).
	if d.Goals > 0 {
		axes[AxisWidePlay] = scale(d.PctHeader, 5, 30)
	}

	// Set-piece threat from dead-ball goal share 5..35.
	if d.Goals > 0 {
		axes[AxisSetPieceThreat] = scale(d.PctSetPiece, 5, 35)
	}

	// Finishing: season overperformance -6..+6 goals.
	if d.XG > 0 {
		axes[AxisClinicalFinishing] = scale(d.XGOverperformance, -6, 6)
	}

	if in.hasGK {
		// Header save rate 50..85%.
		if in.gk.HeaderSaveRate > 0 {
			axes[AxisAerialResistance] = scale(in.gk.HeaderSaveRate, 50, 85)
		}
		// Goals prevented over a season -4..+6.
		axes[AxisGoalkeeperReliability] = scale(in.gk.GoalsPrevented, -4, 6)
	}

	// Timing axes from the team's own goal distribution.
	if d.Goals > 0 {
		axes[AxisDieselFactor] = scale(d.PctSecondHalf, 40, 70)
		axes[AxisFirstHalfIntensity] = scale(d.PctFirstHalf, 35, 65)
		axes[AxisClutchFactor] = scale(d.PctClutch, 10, 40)
		axes[AxisHomeDominance] = scale(d.HomeAwayRatio, 0.8, 3.0)
	}

	return axes
}

// classifyExtremes splits axes into forces (>=65, best first) and
// weaknesses (<=35, worst first), iterating in canonical axis order so ties
// break deterministically.
func classifyExtremes(axes map[Axis]float64) (forces, weaknesses []AxisScore) {
	for _, axis := range AllAxes {
		score := axes[axis]
		switch {
		case score >= ForceThreshold:
			forces = append(forces, AxisScore{Axis: axis, Score: score})
		case score <= WeaknessThreshold:
			weaknesses = append(weaknesses, AxisScore{Axis: axis, Score: score})
		}
	}

	sortAxisScores(forces, true)
	sortAxisScores(weaknesses, false)
	return forces, weaknesses
}

func sortAxisScores(scores []AxisScore, descending bool) {
	// Insertion sort keeps the canonical-order tie break stable.
	for i := 1; i < len(scores); i++ {
		for j := i; j > 0; j-- {
			a, b := scores[j-1], scores[j]
			swap := false
			if descending {
				swap = b.Score > a.Score
			} else {
				swap = b.Score < a.Score
			}
			if !swap {
				break
			}
			scores[j-1], scores[j] = b, a
		}
	}
}
