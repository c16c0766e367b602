package teamdna

import "fmt"

// Narrative templates keyed by dominant axis. One identity line per team,
// chosen from the strongest force; the fallback covers flat profiles.

var narrativeTemplates = map[Axis]string{
	AxisPressingIntensity:     "%s suffocate opponents with a relentless press",
	AxisPossessionControl:     "%s dictate games through long possession spells",
	AxisVerticality:           "%s go for the jugular with fast vertical attacks",
	AxisWidePlay:              "%s live on the flanks and the cross",
	AxisSetPieceThreat:        "%s turn every dead ball into a scoring chance",
	AxisClinicalFinishing:     "%s finish chances at a rate xG cannot explain",
	AxisBlockDepth:            "%s sit deep and dare you to break them down",
	AxisDefensiveCompactness:  "%s concede almost nothing between the lines",
	AxisAerialResistance:      "%s win everything in the air at the back",
	AxisTransitionDefense:     "%s snuff out counters before they start",
	AxisGoalkeeperReliability: "%s lean on a keeper who saves what he should not",
	AxisDieselFactor:          "%s grow into games and bury you after the hour",
	AxisFirstHalfIntensity:    "%s start fast and score early",
	AxisClutchFactor:          "%s decide matches in the final quarter-hour",
	AxisHomeDominance:         "%s are a different animal at home",
}

func buildNarrative(team string, forces []AxisScore) string {
	if len(forces) == 0 {
		return fmt.Sprintf("%s show no pronounced tactical identity this season", team)
	}
	template, ok := narrativeTemplates[forces[0].Axis]
	if !ok {
		return fmt.Sprintf("%s show no pronounced tactical identity this season", team)
	}
	return fmt.Sprintf(template, team)
}
