package teamdna

// Tactical profile selection. An externally assigned classifier label wins
// when valid; otherwise the profile is derived from the axes by the ordered
// rule list below.

type profileRule struct {
	label   TacticalProfile
	applies func(axes map[Axis]float64) bool
}

var profileRules = []profileRule{
	{ProfileGegenpress, func(a map[Axis]float64) bool {
		return a[AxisPressingIntensity] >= 70 && a[AxisVerticality] >= 55
	}},
	{ProfilePossession, func(a map[Axis]float64) bool {
		return a[AxisPossessionControl] >= 70
	}},
	{ProfileParkTheBus, func(a map[Axis]float64) bool {
		return a[AxisBlockDepth] >= 75 && a[AxisDefensiveCompactness] >= 60
	}},
	{ProfileLowBlock, func(a map[Axis]float64) bool {
		return a[AxisBlockDepth] >= 65
	}},
	{ProfileWideAttack, func(a map[Axis]float64) bool {
		return a[AxisWidePlay] >= 65
	}},
	{ProfileDirectAttack, func(a map[Axis]float64) bool {
		return a[AxisVerticality] >= 70
	}},
	{ProfileTransition, func(a map[Axis]float64) bool {
		return a[AxisBlockDepth] >= 55 && a[AxisVerticality] >= 60
	}},
	{ProfileHomeDominant, func(a map[Axis]float64) bool {
		return a[AxisHomeDominance] >= 75
	}},
	{ProfileScoreDependent, func(a map[Axis]float64) bool {
		return a[AxisClutchFactor] >= 70 || a[AxisDieselFactor] >= 70
	}},
	{ProfileMidBlock, func(a map[Axis]float64) bool {
		return a[AxisBlockDepth] >= 45 && a[AxisBlockDepth] < 65 &&
			a[AxisPressingIntensity] >= 40 && a[AxisPressingIntensity] < 65 &&
			a[AxisDefensiveCompactness] >= 55
	}},
}

// selectProfile picks the tactical label and a confidence in [0,1].
func selectProfile(external TacticalProfile, externalConfidence float64, axes map[Axis]float64) (TacticalProfile, float64, string) {
	if external.Valid() {
		confidence := externalConfidence
		if confidence <= 0 || confidence > 1 {
			confidence = 0.75
		}
		return external, confidence, "external"
	}

	for _, rule := range profileRules {
		if rule.applies(axes) {
			return rule.label, derivedConfidence(axes), "derived"
		}
	}

	// Nothing pronounced: a flat axis surface is BALANCED, a spiky one that
	// fits no single rule is ADAPTIVE.
	if axisSpread(axes) <= 20 {
		return ProfileBalanced, 0.5, "derived"
	}
	return ProfileAdaptive, 0.55, "derived"
}

// derivedConfidence grows with how far the decisive axes sit from neutral.
func derivedConfidence(axes map[Axis]float64) float64 {
	maxDistance := 0.0
	for _, axis := range AllAxes {
		d := axes[axis] - axisNeutral
		if d < 0 {
			d = -d
		}
		if d > maxDistance {
			maxDistance = d
		}
	}
	confidence := 0.5 + maxDistance/100
	if confidence > 0.95 {
		confidence = 0.95
	}
	return confidence
}

func axisSpread(axes map[Axis]float64) float64 {
	lo, hi := 100.0, 0.0
	for _, axis := range AllAxes {
		v := axes[axis]
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi < lo {
		return 0
	}
	return hi - lo
}
