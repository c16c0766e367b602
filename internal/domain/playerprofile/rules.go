package playerprofile

// Threshold tables for categorical tags and composite market scores. Kept in
// one place so the whole classification is auditable. Exactly one finishing
// trend table is active per build (the +/-3 overperformance variant).

type tier struct {
	threshold float64
	points    float64
}

// pointsAtLeast returns the points of the first tier whose threshold the
// value meets (value >= threshold). Tiers must be ordered descending.
func pointsAtLeast(value float64, tiers []tier) float64 {
	for _, t := range tiers {
		if value >= t.threshold {
			return t.points
		}
	}
	return 0
}

// pointsAtMost is the mirror helper for tables compared with <=, ordered
// ascending.
func pointsAtMost(value float64, tiers []tier) float64 {
	for _, t := range tiers {
		if value <= t.threshold {
			return t.points
		}
	}
	return 0
}

func classifyPlayingTime(p *Profile) PlayingTime {
	// Super-sub priority: meaningful output from limited minutes.
	if p.Minutes >= 200 && p.MinutesPerGame < 50 && p.Goals >= 2 && p.GoalsPer90 >= 0.5 {
		return PlayingSuperSub
	}
	switch {
	case p.MinutesPerGame >= 85:
		return PlayingUndisputedStarter
	case p.MinutesPerGame >= 70:
		return PlayingStarter
	case p.MinutesPerGame >= 50:
		return PlayingRegular
	case p.MinutesPerGame >= 30:
		return PlayingRotation
	default:
		return PlayingBench
	}
}

func classifyFinishingTrend(delta float64) FinishingTrend {
	switch {
	case delta >= 3:
		return TrendHotStreak
	case delta >= 1:
		return TrendClinical
	case delta >= -1:
		return TrendExpected
	case delta >= -3:
		return TrendCold
	default:
		return TrendWasteful
	}
}

func classifyShotQuality(p *Profile) ShotQuality {
	if p.Shots < 10 {
		return ShotLowVolume
	}
	switch {
	case p.ConversionRate >= 25 && p.XGPerShot >= 0.12:
		return ShotEliteFinisher
	case p.ConversionRate >= 20:
		return ShotClinical
	case p.ConversionRate >= 15:
		return ShotEfficient
	case p.Shots >= 30 && p.ConversionRate < 12:
		return ShotVolumeShooter
	case p.XGPerShot >= 0.12 && p.ConversionRate < 12:
		return ShotWasteful
	default:
		return ShotAverage
	}
}

func classifyCards(cardsPer90 float64) CardsProfile {
	switch {
	case cardsPer90 >= 0.4:
		return CardsDirty
	case cardsPer90 >= 0.25:
		return CardsAggressive
	default:
		return CardsClean
	}
}

func classifyCreativity(p *Profile) Creativity {
	switch {
	case p.XA >= 4 && p.Assists >= 4:
		return CreatorElite
	case p.XA >= 2.5 || p.Assists >= 3:
		return CreatorHigh
	case p.Goals >= 8 && p.XA < 2 && p.Assists < 3:
		return CreatorPureFinisher
	case p.XA >= 1.5 || p.Assists >= 2:
		return CreatorCreative
	default:
		return CreatorLimited
	}
}

func classifyTiming(p *Profile) TimingProfile {
	if p.TalliedGoals == 0 {
		return TimingUnknown
	}
	switch {
	case p.PctSecondHalf >= 60:
		return TimingDiesel
	case p.PctFirstHalf >= 55:
		return TimingEarlyBird
	case p.PctClutch >= 25:
		return TimingClutch
	case p.PctEarly >= 20:
		return TimingEarlyKiller
	default:
		return TimingBalanced
	}
}

func classifyHomeAway(ratio float64) HomeAwayProfile {
	switch {
	case ratio >= 2.5:
		return VenueHomeSpecialist
	case ratio <= 0.4:
		return VenueAwaySpecialist
	default:
		return VenueBalanced
	}
}

func classifyDependency(teamShare float64) Dependency {
	switch {
	case teamShare >= 30:
		return DependencyMVP
	case teamShare >= 18:
		return DependencyKeyPlayer
	case teamShare >= 8:
		return DependencyContributor
	default:
		return DependencyRotational
	}
}

var (
	firstScorerFirstHalfTiers = []tier{{70, 40}, {60, 35}, {55, 30}, {50, 20}}
	firstScorerGoalsTiers     = []tier{{10, 20}, {7, 15}, {5, 10}, {3, 5}}

	lastScorerSecondHalfTiers = []tier{{80, 35}, {70, 30}, {60, 25}, {50, 15}}
	lastScorerClutchTiers     = []tier{{50, 30}, {35, 25}, {25, 20}, {15, 10}}
	lastScorerPer90Tiers      = []tier{{0.8, 10}, {0.6, 5}}
	lastScorerGoalsTiers      = []tier{{7, 15}, {5, 10}, {3, 5}}

	anytimeXGTiers       = []tier{{12, 40}, {9, 35}, {6, 25}, {4, 15}, {2, 5}}
	anytimeOverperfTiers = []tier{{-5, 35}, {-4, 30}, {-3, 25}, {-2, 15}, {-1, 5}}
	anytimeShotsTiers    = []tier{{40, 15}, {30, 10}, {20, 5}}
)

func playingTimePoints(pt PlayingTime) float64 {
	switch pt {
	case PlayingUndisputedStarter:
		return 25
	case PlayingStarter:
		return 20
	case PlayingRegular:
		return 10
	default:
		return 0
	}
}

// scoreFirstScorer favours early scorers with guaranteed minutes and
// penalty duty.
func scoreFirstScorer(p *Profile) float64 {
	score := pointsAtLeast(p.PctFirstHalf, firstScorerFirstHalfTiers)
	score += playingTimePoints(p.PlayingTime)
	if p.IsPenaltyTaker {
		score += 15
	}
	score += pointsAtLeast(float64(p.Goals), firstScorerGoalsTiers)
	if p.PctEarly >= 25 {
		score += 10
	}
	return clampScore(score)
}

// scoreLastScorer favours second-half and clutch output, with a super-sub
// premium for late cameos.
func scoreLastScorer(p *Profile) float64 {
	score := pointsAtLeast(p.PctSecondHalf, lastScorerSecondHalfTiers)
	score += pointsAtLeast(p.PctClutch, lastScorerClutchTiers)
	if p.PlayingTime == PlayingSuperSub {
		score += 25
		score += pointsAtLeast(p.GoalsPer90, lastScorerPer90Tiers)
	}
	score += pointsAtLeast(float64(p.Goals), lastScorerGoalsTiers)
	return clampScore(score)
}

// scoreAnytimeValue flags positive-regression candidates: high xG paired
// with underperformance, discounted when the finishing itself is broken.
func scoreAnytimeValue(p *Profile) float64 {
	score := pointsAtLeast(p.XG, anytimeXGTiers)
	score += pointsAtMost(p.XGOverperformance, anytimeOverperfTiers)
	score += pointsAtLeast(float64(p.Shots), anytimeShotsTiers)
	if p.Shots >= 20 && p.ConversionRate < 8 {
		score -= 20
	}
	switch p.ShotQuality {
	case ShotClinical, ShotEliteFinisher, ShotEfficient:
		score += 10
	}
	return clampScore(score)
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
