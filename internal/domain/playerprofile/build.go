package playerprofile

import "github.com/oddsforge/matchdna/internal/domain/goalevent"

const awayRatioEpsilon = 0.2

// Build derives the full profile for one player from the raw aggregate, the
// player's own goal stream and the team goal total. It is pure and total:
// zero inputs yield UNKNOWN tags and zero scores, never an error.
func Build(raw RawPlayer, goals []goalevent.Goal, teamGoals int) Profile {
	p := Profile{
		Name:          raw.PlayerName,
		Team:          raw.Team,
		Goals:         raw.Goals,
		NPG:           raw.NPG,
		XG:            raw.XG,
		XA:            raw.XA,
		Assists:       raw.Assists,
		Shots:         raw.Shots,
		Minutes:       raw.Minutes,
		Games:         raw.Games,
		YellowCards:   raw.YellowCards,
		RedCards:      raw.RedCards,
		XGChain:       raw.XGChain,
		XGBuildup:     raw.XGBuildup,
		KeyPasses:     raw.KeyPasses,
		GoalsByHalf:   make(map[goalevent.Half]int, 2),
		GoalsByPeriod: make(map[goalevent.TimingPeriod]int, len(goalevent.AllPeriods)),
	}

	if isEmpty(raw) {
		p.HomeAwayRatio = 1
		markUnknown(&p)
		return p
	}

	tally(&p, goals)
	deriveRates(&p, teamGoals)
	assignTags(&p)

	p.FirstScorerScore = scoreFirstScorer(&p)
	p.LastScorerScore = scoreLastScorer(&p)
	p.AnytimeValueScore = scoreAnytimeValue(&p)

	return p
}

func isEmpty(raw RawPlayer) bool {
	return raw.Minutes == 0 && raw.Goals == 0 && raw.Shots == 0 && raw.Games == 0
}

func markUnknown(p *Profile) {
	p.PlayingTime = PlayingTimeUnknown
	p.FinishingTrend = TrendUnknown
	p.ShotQuality = ShotUnknown
	p.Cards = CardsUnknown
	p.Creativity = CreatorUnknown
	p.Timing = TimingUnknown
	p.HomeAway = VenueUnknown
	p.Dependency = DependencyUnknown
}

// tally iterates the goal stream exactly once, incrementing the matching
// half, period, situation, body-part and venue buckets.
func tally(p *Profile, goals []goalevent.Goal) {
	for _, g := range goals {
		if g.Scorer != p.Name || g.ScoringTeam != p.Team {
			continue
		}

		p.TalliedGoals++
		p.GoalsByHalf[g.Half]++
		p.GoalsByPeriod[g.TimingPeriod]++

		switch {
		case g.Situation == goalevent.SituationOpenPlay:
			p.GoalsOpenPlay++
		case g.Situation == goalevent.SituationPenalty:
			p.GoalsPenalty++
		case g.IsSetPiece():
			p.GoalsSetPiece++
		}

		if g.ShotType == goalevent.ShotHead {
			p.GoalsHeader++
		}
		if g.IsHome {
			p.GoalsHome++
		} else {
			p.GoalsAway++
		}
		if g.IsFirstGoal {
			p.FirstGoals++
		}
		if g.IsLastGoal {
			p.LastGoals++
		}
	}
}

func deriveRates(p *Profile, teamGoals int) {
	if p.Minutes > 0 {
		per90 := 90.0 / float64(p.Minutes)
		p.GoalsPer90 = float64(p.Goals) * per90
		p.XGPer90 = p.XG * per90
		p.XAPer90 = p.XA * per90
		p.CardsPer90 = float64(p.YellowCards+p.RedCards) * per90
	}
	if p.Goals > 0 {
		p.MinutesPerGoal = float64(p.Minutes) / float64(p.Goals)
	}
	if p.Games > 0 {
		p.MinutesPerGame = float64(p.Minutes) / float64(p.Games)
	}
	if p.Shots > 0 {
		p.ConversionRate = float64(p.Goals) / float64(p.Shots) * 100
		p.XGPerShot = p.XG / float64(p.Shots)
	}
	p.XGOverperformance = float64(p.Goals) - p.XG

	if p.TalliedGoals > 0 {
		total := float64(p.TalliedGoals)
		p.PctFirstHalf = float64(p.GoalsByHalf[goalevent.HalfFirst]) / total * 100
		p.PctSecondHalf = float64(p.GoalsByHalf[goalevent.HalfSecond]) / total * 100
		clutch := p.GoalsByPeriod[goalevent.Period76to90] + p.GoalsByPeriod[goalevent.PeriodExtra]
		p.PctClutch = float64(clutch) / total * 100
		p.PctEarly = float64(p.GoalsByPeriod[goalevent.Period0to15]) / total * 100
		p.PctOpenPlay = float64(p.GoalsOpenPlay) / total * 100
		p.PctSetPiece = float64(p.GoalsSetPiece) / total * 100
		p.PctHeader = float64(p.GoalsHeader) / total * 100
		p.PctHome = float64(p.GoalsHome) / total * 100
	}

	switch {
	case p.GoalsAway == 0 && p.GoalsHome > 0:
		p.HomeAwayRatio = 5.0
	case p.GoalsAway == 0:
		p.HomeAwayRatio = 1.0
	default:
		p.HomeAwayRatio = float64(p.GoalsHome) / maxf(float64(p.GoalsAway), awayRatioEpsilon)
	}

	p.PenaltyGoals = p.Goals - p.NPG
	if p.PenaltyGoals < 0 {
		p.PenaltyGoals = 0
	}
	p.IsPenaltyTaker = p.PenaltyGoals >= 2

	if teamGoals > 0 {
		p.TeamShare = float64(p.Goals) / float64(teamGoals) * 100
	}
}

func assignTags(p *Profile) {
	p.PlayingTime = classifyPlayingTime(p)
	p.FinishingTrend = classifyFinishingTrend(p.XGOverperformance)
	p.ShotQuality = classifyShotQuality(p)
	p.Cards = classifyCards(p.CardsPer90)
	p.Creativity = classifyCreativity(p)
	p.Timing = classifyTiming(p)
	p.HomeAway = classifyHomeAway(p.HomeAwayRatio)
	p.Dependency = classifyDependency(p.TeamShare)
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
