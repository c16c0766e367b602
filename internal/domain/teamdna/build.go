package teamdna

import (
	"sort"
	"strings"

	"github.com/oddsforge/matchdna/internal/domain/goalevent"
	"github.com/oddsforge/matchdna/internal/domain/playerprofile"
	"github.com/oddsforge/matchdna/internal/domain/teamcontext"
)

// BuildInput carries everything the DNA builder fuses for one team.
type BuildInput struct {
	Team          string
	Players       []playerprofile.Profile
	Goals         []goalevent.Goal // the team's own scored goals, stable order
	Context       teamcontext.Context
	HasContext    bool
	Goalkeeper    teamcontext.Goalkeeper
	HasGoalkeeper bool
}

// Build fuses player profiles, the goal stream and context records into one
// DNA record. It is pure: identical inputs produce structurally equal
// records. A team with no players yields the zero-volume default with
// DataQuality 0, which downstream components treat as minimal quality.
func Build(in BuildInput) DNA {
	d := DNA{
		Team: in.Team,
		Axes: make(map[Axis]float64, len(AllAxes)),
	}

	if len(in.Players) == 0 {
		for _, axis := range AllAxes {
			d.Axes[axis] = axisNeutral
		}
		d.Volume = VolumeLowScoring
		d.Timing = TimingBalanced
		d.Dependency = DependencyDistributed
		d.Style = StyleBalanced
		d.HomeAway = HomeAwayBalanced
		d.HomeAwayRatio = 1
		d.Efficiency = EfficiencyAverage
		d.Bench = BenchWeak
		d.Penalty = PenaltyNoData
		d.Creativity = CreativityCollective
		d.Form = FormStable
		d.Profile, d.ProfileConfidence, d.ProfileSource = selectProfile("", 0, d.Axes)
		d.Narrative = buildNarrative(in.Team, nil)
		return d
	}

	sumVolumes(&d, in)
	tallyGoalStream(&d, in.Goals)
	deriveTeamRates(&d)
	collectDependencyStats(&d, in.Players)
	assignTeamTags(&d, in)

	d.Axes = computeAxes(axisInputs{
		ctx:    in.Context,
		hasCtx: in.HasContext,
		gk:     in.Goalkeeper,
		hasGK:  in.HasGoalkeeper,
		dna:    &d,
	})
	d.Forces, d.Weaknesses = classifyExtremes(d.Axes)
	d.VulnerabilityTags = deriveVulnerabilityTags(d.Weaknesses)

	external := TacticalProfile("")
	externalConfidence := 0.0
	if in.HasContext {
		external = TacticalProfile(strings.ToUpper(strings.TrimSpace(in.Context.TacticalProfile)))
		externalConfidence = in.Context.ProfileConfidence
	}
	d.Profile, d.ProfileConfidence, d.ProfileSource = selectProfile(external, externalConfidence, d.Axes)

	d.ExploitFor, d.ExploitAgainst = deriveExploitableMarkets(&d)
	d.Narrative = buildNarrative(in.Team, d.Forces)

	countSections(&d, in)
	return d
}

func sumVolumes(d *DNA, in BuildInput) {
	d.Players = in.Players
	for _, p := range in.Players {
		d.Goals += p.Goals
		d.XG += p.XG
		d.Shots += p.Shots
	}

	if in.HasContext {
		d.League = in.Context.League
		d.Matches = in.Context.MatchesPlayed
	}
	if d.Matches == 0 {
		d.Matches = distinctMatches(in.Goals)
	}
	if d.Matches == 0 {
		for _, p := range in.Players {
			if p.Games > d.Matches {
				d.Matches = p.Games
			}
		}
	}
}

func distinctMatches(goals []goalevent.Goal) int {
	seen := make(map[string]struct{}, len(goals))
	for _, g := range goals {
		seen[g.MatchID] = struct{}{}
	}
	return len(seen)
}

type teamTally struct {
	firstHalf, secondHalf       int
	byPeriod                    map[goalevent.TimingPeriod]int
	openPlay, setPiece, penalty int
	header, home, away, total   int
}

// tallyGoalStream re-derives the team splits from the goal stream; by
// construction this matches the sum of the player splits.
func tallyGoalStream(d *DNA, goals []goalevent.Goal) {
	t := teamTally{byPeriod: make(map[goalevent.TimingPeriod]int, len(goalevent.AllPeriods))}
	for _, g := range goals {
		t.total++
		if g.Half == goalevent.HalfFirst {
			t.firstHalf++
		} else {
			t.secondHalf++
		}
		t.byPeriod[g.TimingPeriod]++
		switch {
		case g.Situation == goalevent.SituationOpenPlay:
			t.openPlay++
		case g.Situation == goalevent.SituationPenalty:
			t.penalty++
		case g.IsSetPiece():
			t.setPiece++
		}
		if g.ShotType == goalevent.ShotHead {
			t.header++
		}
		if g.IsHome {
			t.home++
		} else {
			t.away++
		}
	}

	if t.total == 0 {
		d.HomeAwayRatio = 1
		d.PeakPeriod = ""
		return
	}

	total := float64(t.total)
	d.PctFirstHalf = float64(t.firstHalf) / total * 100
	d.PctSecondHalf = float64(t.secondHalf) / total * 100
	clutch := t.byPeriod[goalevent.Period76to90] + t.byPeriod[goalevent.PeriodExtra]
	d.PctClutch = float64(clutch) / total * 100
	d.PctEarly = float64(t.byPeriod[goalevent.Period0to15]) / total * 100
	d.PctOpenPlay = float64(t.openPlay) / total * 100
	d.PctSetPiece = float64(t.setPiece) / total * 100
	d.PctPenalty = float64(t.penalty) / total * 100
	d.PctHeader = float64(t.header) / total * 100

	best, bestCount := goalevent.TimingPeriod(""), -1
	for _, period := range goalevent.AllPeriods {
		if t.byPeriod[period] > bestCount {
			best, bestCount = period, t.byPeriod[period]
		}
	}
	d.PeakPeriod = best

	switch {
	case t.away == 0 && t.home > 0:
		d.HomeAwayRatio = 5.0
	case t.away == 0:
		d.HomeAwayRatio = 1.0
	default:
		d.HomeAwayRatio = float64(t.home) / float64(t.away)
	}
}

func deriveTeamRates(d *DNA) {
	if d.Matches > 0 {
		d.GoalsPerMatch = float64(d.Goals) / float64(d.Matches)
		d.XGPerMatch = d.XG / float64(d.Matches)
	}
	d.XGOverperformance = float64(d.Goals) - d.XG
}

const regressionXGFloor = 4.0
const regressionOverperfCeil = -1.5

func collectDependencyStats(d *DNA, players []playerprofile.Profile) {
	ranked := make([]playerprofile.Profile, len(players))
	copy(ranked, players)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Goals != ranked[j].Goals {
			return ranked[i].Goals > ranked[j].Goals
		}
		return ranked[i].Name < ranked[j].Name
	})

	if len(ranked) > 0 && ranked[0].Goals > 0 {
		d.TopScorer = ranked[0].Name
	}

	top3 := 0
	for i, p := range ranked {
		if i >= 3 {
			break
		}
		top3 += p.Goals
	}
	if d.Goals > 0 {
		d.TopScorerShare = float64(ranked[0].Goals) / float64(d.Goals) * 100
		d.Top3Share = float64(top3) / float64(d.Goals) * 100
	}

	for _, p := range players {
		if p.Goals > 0 {
			d.DistinctScorers++
		}
		if p.PlayingTime == playerprofile.PlayingSuperSub {
			d.SuperSubs = append(d.SuperSubs, p.Name)
		}
		switch p.FinishingTrend {
		case playerprofile.TrendHotStreak:
			d.HotStreakPlayers = append(d.HotStreakPlayers, p.Name)
		case playerprofile.TrendCold, playerprofile.TrendWasteful:
			d.ColdStreakPlayers = append(d.ColdStreakPlayers, p.Name)
		}
		if p.XG >= regressionXGFloor && p.XGOverperformance <= regressionOverperfCeil {
			d.RegressionCandidates = append(d.RegressionCandidates, p.Name)
		}
	}
	sort.Strings(d.SuperSubs)
	sort.Strings(d.HotStreakPlayers)
	sort.Strings(d.ColdStreakPlayers)
	sort.Strings(d.RegressionCandidates)
}

func assignTeamTags(d *DNA, in BuildInput) {
	d.Volume = classifyVolume(d.GoalsPerMatch)
	d.Timing = classifyTeamTiming(d)
	d.Dependency = classifyTeamDependency(d.TopScorerShare, d.Top3Share)
	d.Style = classifyTeamStyle(d)
	d.HomeAway = classifyTeamHomeAway(d.HomeAwayRatio)

	overperfPerMatch := 0.0
	if d.Matches > 0 {
		overperfPerMatch = d.XGOverperformance / float64(d.Matches)
	}
	d.Efficiency = classifyEfficiency(overperfPerMatch)
	d.Bench = classifyBench(in.Players, d.Goals)
	d.Penalty = classifyPenalty(in.Players)
	d.Creativity = classifyCreativity(in.Players, d.Goals)

	form := ""
	if in.HasContext {
		form = in.Context.FormLastFive
	}
	d.Form = classifyForm(form)
}

func countSections(d *DNA, in BuildInput) {
	populated := 0
	if len(in.Players) > 0 {
		populated++
	}
	if len(in.Goals) > 0 {
		populated++
	}
	if in.HasContext && in.Context.XGFor > 0 {
		populated++
	}
	if in.HasContext && (in.Context.PPDA > 0 || in.Context.PressingStyle != "") {
		populated++
	}
	if in.HasContext && (in.Context.XGAgainst > 0 || in.Context.AwayXGAPerMatch > 0) {
		populated++
	}
	if in.HasContext && strings.TrimSpace(in.Context.FormLastFive) != "" {
		populated++
	}
	if in.HasGoalkeeper {
		populated++
	}
	if in.HasContext && strings.TrimSpace(in.Context.TacticalProfile) != "" {
		populated++
	}

	d.PopulatedSections = populated
	d.DataQuality = float64(populated) / float64(SectionCount)
}
