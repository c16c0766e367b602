package teamdna

import (
	"fmt"
	"sort"
	"strings"
)

// Fixed (axis, band) -> market mapping. The table is the contract: edges are
// base values in percentage points, scaled x1.2 when the axis sits beyond
// the strong bands (>=75 / <=25).

const strongBandMultiplier = 1.2

type marketCandidate struct {
	market    string
	action    MarketAction
	direction MarketDirection
	baseEdge  float64
	reason    string
}

type axisMarkets struct {
	high []marketCandidate
	low  []marketCandidate
}

var marketCatalog = map[Axis]axisMarkets{
	AxisPressingIntensity: {
		high: []marketCandidate{
			{"cards_over_3.5", ActionBack, DirectionFor, 2.6, "relentless pressing drags fouls and bookings up"},
			{"over_2.5", ActionBack, DirectionFor, 2.2, "high turnovers create chances at both ends"},
		},
		low: []marketCandidate{
			{"opponent_team_over_1.5", ActionBack, DirectionAgainst, 2.4, "passive press lets opponents build into the box"},
		},
	},
	AxisPossessionControl: {
		high: []marketCandidate{
			{"corners_over_9.5", ActionBack, DirectionFor, 2.4, "territorial dominance piles up corners"},
			{"team_over_1.5", ActionBack, DirectionFor, 2.0, "sustained pressure converts into team goals"},
		},
		low: []marketCandidate{
			{"opponent_corners_over_5.5", ActionBack, DirectionAgainst, 2.0, "ceding the ball concedes territory"},
		},
	},
	AxisVerticality: {
		high: []marketCandidate{
			{"first_half_over_0.5", ActionBack, DirectionFor, 2.1, "direct attacks strike before blocks settle"},
			{"over_2.5", ActionBack, DirectionFor, 2.3, "fast vertical game stretches both defenses"},
		},
		low: nil,
	},
	AxisWidePlay: {
		high: []marketCandidate{
			{"corners_over_9.5", ActionBack, DirectionFor, 2.8, "wing overloads win corners in bunches"},
			{"headed_goal", ActionBack, DirectionFor, 2.5, "cross volume feeds headed finishes"},
		},
		low: nil,
	},
	AxisSetPieceThreat: {
		high: []marketCandidate{
			{"headed_goal", ActionBack, DirectionFor, 2.7, "dead-ball routines target the six-yard box"},
			{"team_over_1.5", ActionBack, DirectionFor, 2.0, "set pieces add a second scoring channel"},
		},
		low: []marketCandidate{
			{"headed_goal", ActionFade, DirectionFor, 2.0, "no aerial outlet from dead balls"},
		},
	},
	AxisClinicalFinishing: {
		high: []marketCandidate{
			{"team_over_1.5", ActionBack, DirectionFor, 3.0, "finishing runs hot above expected"},
			{"btts_yes", ActionBack, DirectionFor, 2.2, "clinical edge keeps them on the scoresheet"},
			{"anytime_scorer_value", ActionBack, DirectionFor, 2.4, "forwards convert above their xG"},
		},
		low: []marketCandidate{
			{"team_over_1.5", ActionFade, DirectionAgainst, 2.5, "chances are created but not converted"},
			{"anytime_scorer_value", ActionBack, DirectionFor, 2.0, "regression candidates are underpriced"},
		},
	},
	AxisBlockDepth: {
		high: []marketCandidate{
			{"under_2.5", ActionBack, DirectionFor, 2.4, "deep block strangles the game"},
			{"opponent_corners_over_5.5", ActionBack, DirectionAgainst, 2.6, "parked bus concedes corner pressure"},
		},
		low: []marketCandidate{
			{"over_2.5", ActionBack, DirectionAgainst, 2.5, "high line leaves space in behind"},
		},
	},
	AxisDefensiveCompactness: {
		high: []marketCandidate{
			{"under_2.5", ActionBack, DirectionFor, 2.5, "compact shape limits quality chances"},
			{"win_to_nil", ActionBack, DirectionFor, 2.2, "clean-sheet platform"},
		},
		low: []marketCandidate{
			{"btts_yes", ActionBack, DirectionAgainst, 2.8, "loose structure invites goals against"},
			{"opponent_team_over_1.5", ActionBack, DirectionAgainst, 2.6, "box defense leaks high-quality chances"},
		},
	},
	AxisAerialResistance: {
		high: nil,
		low: []marketCandidate{
			{"opponent_headed_goal", ActionBack, DirectionAgainst, 3.0, "weak in the air on crosses and corners"},
			{"opponent_corners_over_5.5", ActionBack, DirectionAgainst, 2.2, "aerial weakness rewards wide play"},
		},
	},
	AxisTransitionDefense: {
		high: nil,
		low: []marketCandidate{
			{"over_2.5", ActionBack, DirectionAgainst, 2.3, "open to counters once committed forward"},
			{"btts_yes", ActionBack, DirectionAgainst, 2.1, "transition goals conceded keep games alive"},
		},
	},
	AxisGoalkeeperReliability: {
		high: []marketCandidate{
			{"under_2.5", ActionBack, DirectionFor, 2.2, "keeper saves above expectation"},
			{"win_to_nil", ActionBack, DirectionFor, 2.0, "shot-stopping preserves leads"},
		},
		low: []marketCandidate{
			{"btts_yes", ActionBack, DirectionAgainst, 2.7, "soft goals undo defensive work"},
			{"over_2.5", ActionBack, DirectionAgainst, 2.2, "savable shots keep going in"},
		},
	},
	AxisDieselFactor: {
		high: []marketCandidate{
			{"second_half_over_1.5", ActionBack, DirectionFor, 2.8, "output concentrates after the break"},
			{"late_goal_after_75", ActionBack, DirectionFor, 2.6, "legs and bench tell late"},
		},
		low: nil,
	},
	AxisFirstHalfIntensity: {
		high: []marketCandidate{
			{"first_half_over_0.5", ActionBack, DirectionFor, 2.9, "fast starts front-load the scoring"},
		},
		low: []marketCandidate{
			{"first_half_under_0.5", ActionBack, DirectionFor, 2.0, "slow starters keep early exchanges quiet"},
		},
	},
	AxisClutchFactor: {
		high: []marketCandidate{
			{"late_goal_after_75", ActionBack, DirectionFor, 2.9, "decisive in the clutch window"},
		},
		low: nil,
	},
	AxisHomeDominance: {
		high: []marketCandidate{
			{"home_win", ActionBack, DirectionFor, 2.6, "fortress form at home"},
		},
		low: nil,
	},
}

// vulnerabilityTagCatalog maps a weak axis to the tags the matchup
// cross-match rules understand.
var vulnerabilityTagCatalog = map[Axis][]string{
	AxisAerialResistance:      {"ZONE_six_yard", "ACTION_cross"},
	AxisDefensiveCompactness:  {"ZONE_penalty"},
	AxisTransitionDefense:     {"ACTION_counter"},
	AxisGoalkeeperReliability: {"ZONE_penalty", "ZONE_six_yard"},
	AxisBlockDepth:            {"ZONE_behind", "ACTION_through_ball"},
	AxisPressingIntensity:     {"ACTION_buildup"},
	AxisClutchFactor:          {"PHASE_late"},
	AxisFirstHalfIntensity:    {"PHASE_early"},
}

const (
	maxExploitFor     = 8
	maxExploitAgainst = 8
)

// deriveExploitableMarkets walks forces and weaknesses through the catalog,
// scales edges by distance from neutral, de-duplicates by market name and
// keeps the top entries per direction.
func deriveExploitableMarkets(d *DNA) (exploitFor, exploitAgainst []MarketEdge) {
	seenFor := make(map[string]struct{})
	seenAgainst := make(map[string]struct{})

	appendEdges := func(axis Axis, score float64, candidates []marketCandidate, band string) {
		for _, c := range candidates {
			edge := c.baseEdge
			confidence := EdgeConfidenceMedium
			if score >= StrongBandHigh || score <= StrongBandLow {
				edge *= strongBandMultiplier
				confidence = EdgeConfidenceHigh
			}

			entry := MarketEdge{
				Market:     c.market,
				Action:     c.action,
				Direction:  c.direction,
				EdgeType:   fmt.Sprintf("%s_%s", band, axis),
				Edge:       edge,
				Confidence: confidence,
				Reason:     c.reason,
				Detail:     fmt.Sprintf("%s at %.0f", axis, score),
			}

			key := strings.ToLower(c.market)
			if c.direction == DirectionFor {
				if _, ok := seenFor[key]; ok {
					continue
				}
				seenFor[key] = struct{}{}
				exploitFor = append(exploitFor, entry)
			} else {
				if _, ok := seenAgainst[key]; ok {
					continue
				}
				seenAgainst[key] = struct{}{}
				exploitAgainst = append(exploitAgainst, entry)
			}
		}
	}

	for _, force := range d.Forces {
		appendEdges(force.Axis, force.Score, marketCatalog[force.Axis].high, "FORCE")
	}
	for _, weakness := range d.Weaknesses {
		appendEdges(weakness.Axis, weakness.Score, marketCatalog[weakness.Axis].low, "WEAK")
	}

	sortEdges(exploitFor)
	sortEdges(exploitAgainst)
	if len(exploitFor) > maxExploitFor {
		exploitFor = exploitFor[:maxExploitFor]
	}
	if len(exploitAgainst) > maxExploitAgainst {
		exploitAgainst = exploitAgainst[:maxExploitAgainst]
	}

	return exploitFor, exploitAgainst
}

func sortEdges(edges []MarketEdge) {
	sort.SliceStable(edges, func(i, j int) bool {
		if edges[i].Edge != edges[j].Edge {
			return edges[i].Edge > edges[j].Edge
		}
		return edges[i].Market < edges[j].Market
	})
}

// deriveVulnerabilityTags lists the tags of every weak axis, deduplicated,
// in weakness order.
func deriveVulnerabilityTags(weaknesses []AxisScore) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, w := range weaknesses {
		for _, tag := range vulnerabilityTagCatalog[w.Axis] {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	return tags
}
