package teamdna

import (
	"strings"

	"github.com/oddsforge/matchdna/internal/domain/playerprofile"
)

// Team-level tag rule tables, consulted in order like the player tables.

func classifyVolume(goalsPerMatch float64) VolumeProfile {
	switch {
	case goalsPerMatch >= 2.0:
		return VolumeHighScoring
	case goalsPerMatch >= 1.2:
		return VolumeAverage
	default:
		return VolumeLowScoring
	}
}

func classifyTeamTiming(d *DNA) TimingProfile {
	switch {
	case d.PctSecondHalf >= 58:
		return TimingDiesel
	case d.PctFirstHalf >= 55:
		return TimingEarlyStarters
	case d.PctClutch >= 28:
		return TimingClutchTeam
	default:
		return TimingBalanced
	}
}

func classifyTeamDependency(topShare, top3Share float64) DependencyProfile {
	switch {
	case topShare >= 30:
		return DependencyMVP
	case top3Share >= 60:
		return DependencyTop3
	default:
		return DependencyDistributed
	}
}

func classifyTeamStyle(d *DNA) StyleProfile {
	switch {
	case d.PctOpenPlay >= 75:
		return StyleOpenPlayDominant
	case d.PctSetPiece >= 25:
		return StyleSetPieceThreat
	case d.PctHeader >= 20:
		return StyleAerialThreat
	case d.PctPenalty >= 15:
		return StylePenaltyReliant
	default:
		return StyleBalanced
	}
}

func classifyTeamHomeAway(ratio float64) HomeAwayProfile {
	switch {
	case ratio >= 1.8:
		return HomeAwayFortress
	case ratio <= 0.6:
		return HomeAwayRoadWarriors
	default:
		return HomeAwayBalanced
	}
}

func classifyEfficiency(overperfPerMatch float64) EfficiencyProfile {
	switch {
	case overperfPerMatch >= 0.15:
		return EfficiencyClinical
	case overperfPerMatch <= -0.15:
		return EfficiencyWasteful
	default:
		return EfficiencyAverage
	}
}

// classifyBench grades the non-starter goal share.
func classifyBench(players []playerprofile.Profile, teamGoals int) BenchProfile {
	if teamGoals == 0 {
		return BenchWeak
	}
	benchGoals := 0
	for _, p := range players {
		switch p.PlayingTime {
		case playerprofile.PlayingSuperSub, playerprofile.PlayingRotation, playerprofile.PlayingBench:
			benchGoals += p.Goals
		}
	}
	share := float64(benchGoals) / float64(teamGoals) * 100
	switch {
	case share >= 15:
		return BenchStrong
	case share >= 5:
		return BenchAverage
	default:
		return BenchWeak
	}
}

func classifyPenalty(players []playerprofile.Profile) PenaltyProfile {
	totalPens := 0
	hasDesignatedTaker := false
	for _, p := range players {
		totalPens += p.PenaltyGoals
		if p.PenaltyGoals >= 3 {
			hasDesignatedTaker = true
		}
	}
	switch {
	case hasDesignatedTaker:
		return PenaltyReliable
	case totalPens > 0:
		return PenaltyAverage
	default:
		return PenaltyNoData
	}
}

func classifyCreativity(players []playerprofile.Profile, teamGoals int) CreativityProfile {
	topAssists, totalAssists := 0, 0
	for _, p := range players {
		totalAssists += p.Assists
		if p.Assists > topAssists {
			topAssists = p.Assists
		}
	}

	if totalAssists > 0 && float64(topAssists)/float64(totalAssists)*100 >= 35 {
		return CreativityHub
	}

	if teamGoals > 0 {
		topGoals := 0
		for _, p := range players {
			if p.Goals > topGoals {
				topGoals = p.Goals
			}
		}
		if float64(topGoals)/float64(teamGoals)*100 >= 40 {
			return CreativityIndividual
		}
	}

	return CreativityCollective
}

// classifyForm reads a 5-match form string ("WWDLW", most recent last).
func classifyForm(formLastFive string) FormProfile {
	form := strings.ToUpper(strings.TrimSpace(formLastFive))
	if form == "" {
		return FormStable
	}

	points := 0
	for _, r := range form {
		switch r {
		case 'W':
			points += 3
		case 'D':
			points++
		}
	}
	switch {
	case points >= 10:
		return FormRising
	case points <= 4:
		return FormDeclining
	default:
		return FormStable
	}
}
