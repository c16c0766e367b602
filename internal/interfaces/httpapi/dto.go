package httpapi

import (
	"github.com/oddsforge/matchdna/internal/domain/friction"
	"github.com/oddsforge/matchdna/internal/domain/matchup"
	"github.com/oddsforge/matchdna/internal/domain/playerprofile"
	"github.com/oddsforge/matchdna/internal/domain/teamdna"
	"github.com/oddsforge/matchdna/internal/usecase"
)

type analysisDTO struct {
	HomeTeam            string              `json:"homeTeam"`
	AwayTeam            string              `json:"awayTeam"`
	Home                dnaDTO              `json:"home"`
	Away                dnaDTO              `json:"away"`
	Friction            frictionDTO         `json:"friction"`
	Primary             []recommendationDTO `json:"primary"`
	Secondary           []recommendationDTO `json:"secondary"`
	Avoid               []string            `json:"avoid"`
	HomeVulnerabilities []crossMatchDTO     `json:"homeVulnerabilities"`
	AwayVulnerabilities []crossMatchDTO     `json:"awayVulnerabilities"`
	Confidence          confidenceDTO       `json:"confidence"`
}

type dnaDTO struct {
	Team              string             `json:"team"`
	League            string             `json:"league,omitempty"`
	Matches           int                `json:"matches"`
	Goals             int                `json:"goals"`
	XG                float64            `json:"xg"`
	GoalsPerMatch     float64            `json:"goalsPerMatch"`
	XGOverperformance float64            `json:"xgOverperformance"`
	Volume            string             `json:"volume"`
	Timing            string             `json:"timing"`
	Dependency        string             `json:"dependency"`
	TopScorer         string             `json:"topScorer,omitempty"`
	TopScorerShare    float64            `json:"topScorerShare"`
	Style             string             `json:"style"`
	HomeAway          string             `json:"homeAway"`
	Efficiency        string             `json:"efficiency"`
	Form              string             `json:"form"`
	Profile           string             `json:"profile"`
	ProfileConfidence float64            `json:"profileConfidence"`
	ProfileSource     string             `json:"profileSource"`
	Axes              map[string]float64 `json:"axes"`
	Forces            []axisScoreDTO     `json:"forces"`
	Weaknesses        []axisScoreDTO     `json:"weaknesses"`
	VulnerabilityTags []string           `json:"vulnerabilityTags"`
	ExploitFor        []marketEdgeDTO    `json:"exploitFor"`
	ExploitAgainst    []marketEdgeDTO    `json:"exploitAgainst"`
	Players           []playerDTO        `json:"players,omitempty"`
	Narrative         string             `json:"narrative"`
	DataQuality       float64            `json:"dataQuality"`
}

type axisScoreDTO struct {
	Axis  string  `json:"axis"`
	Score float64 `json:"score"`
}

type marketEdgeDTO struct {
	Market     string  `json:"market"`
	Action     string  `json:"action"`
	Direction  string  `json:"direction"`
	EdgeType   string  `json:"edgeType"`
	Edge       float64 `json:"edge"`
	Confidence string  `json:"confidence"`
	Reason     string  `json:"reason,omitempty"`
	Detail     string  `json:"detail,omitempty"`
}

type frictionDTO struct {
	Home             string   `json:"home"`
	Away             string   `json:"away"`
	Clash            string   `json:"clash"`
	Tempo            string   `json:"tempo"`
	GoalsModifier    float64  `json:"goalsModifier"`
	CardsModifier    float64  `json:"cardsModifier"`
	CornersModifier  float64  `json:"cornersModifier"`
	FirstHalfBias    float64  `json:"firstHalfBias"`
	LateGoalProb     float64  `json:"lateGoalProb"`
	PrimaryMarkets   []string `json:"primaryMarkets"`
	SecondaryMarkets []string `json:"secondaryMarkets"`
	AvoidMarkets     []string `json:"avoidMarkets"`
	Description      string   `json:"description,omitempty"`
	Source           string   `json:"source"`
}

type recommendationDTO struct {
	Market       string  `json:"market"`
	EdgeEstimate float64 `json:"edgeEstimate"`
	Confidence   string  `json:"confidence"`
	Source       string  `json:"source"`
	Reasoning    string  `json:"reasoning,omitempty"`
}

type crossMatchDTO struct {
	VulnerableTeam string  `json:"vulnerableTeam"`
	ExploitingTeam string  `json:"exploitingTeam"`
	Vulnerability  string  `json:"vulnerability"`
	Market         string  `json:"market"`
	BaseEdge       float64 `json:"baseEdge"`
	BoostedEdge    float64 `json:"boostedEdge"`
}

type confidenceDTO struct {
	Overall               float64 `json:"overall"`
	Classification        float64 `json:"classification"`
	FrictionClarity       float64 `json:"frictionClarity"`
	DataCompleteness      float64 `json:"dataCompleteness"`
	ExploitationPotential float64 `json:"exploitationPotential"`
	Tier                  string  `json:"tier"`
}

type playerDTO struct {
	Name              string  `json:"name"`
	Team              string  `json:"team"`
	Goals             int     `json:"goals"`
	XG                float64 `json:"xg"`
	Shots             int     `json:"shots"`
	Minutes           int     `json:"minutes"`
	GoalsPer90        float64 `json:"goalsPer90"`
	XGPer90           float64 `json:"xgPer90"`
	XGOverperformance float64 `json:"xgOverperformance"`
	TeamShare         float64 `json:"teamShare"`
	IsPenaltyTaker    bool    `json:"isPenaltyTaker"`
	PlayingTime       string  `json:"playingTime"`
	FinishingTrend    string  `json:"finishingTrend"`
	ShotQuality       string  `json:"shotQuality"`
	Cards             string  `json:"cards"`
	Creativity        string  `json:"creativity"`
	Timing            string  `json:"timing"`
	HomeAway          string  `json:"homeAway"`
	Dependency        string  `json:"dependency"`
	FirstScorerScore  float64 `json:"firstScorerScore"`
	LastScorerScore   float64 `json:"lastScorerScore"`
	AnytimeValueScore float64 `json:"anytimeValueScore"`
}

type batchResultDTO struct {
	Home     string       `json:"home"`
	Away     string       `json:"away"`
	Analysis *analysisDTO `json:"analysis,omitempty"`
	Error    string       `json:"error,omitempty"`
}

func analysisToDTO(a matchup.Analysis) analysisDTO {
	return analysisDTO{
		HomeTeam:            a.HomeTeam,
		AwayTeam:            a.AwayTeam,
		Home:                dnaToDTO(a.Home, false),
		Away:                dnaToDTO(a.Away, false),
		Friction:            frictionToDTO(a.Friction),
		Primary:             recommendationsToDTO(a.Primary),
		Secondary:           recommendationsToDTO(a.Secondary),
		Avoid:               a.Avoid,
		HomeVulnerabilities: crossMatchesToDTO(a.HomeVulnerabilities),
		AwayVulnerabilities: crossMatchesToDTO(a.AwayVulnerabilities),
		Confidence: confidenceDTO{
			Overall:               a.Confidence.Overall,
			Classification:        a.Confidence.Classification,
			FrictionClarity:       a.Confidence.FrictionClarity,
			DataCompleteness:      a.Confidence.DataCompleteness,
			ExploitationPotential: a.Confidence.ExploitationPotential,
			Tier:                  string(a.Confidence.Tier),
		},
	}
}

func dnaToDTO(d teamdna.DNA, includePlayers bool) dnaDTO {
	axes := make(map[string]float64, len(d.Axes))
	for axis, score := range d.Axes {
		axes[string(axis)] = score
	}

	out := dnaDTO{
		Team:              d.Team,
		League:            d.League,
		Matches:           d.Matches,
		Goals:             d.Goals,
		XG:                d.XG,
		GoalsPerMatch:     d.GoalsPerMatch,
		XGOverperformance: d.XGOverperformance,
		Volume:            string(d.Volume),
		Timing:            string(d.Timing),
		Dependency:        string(d.Dependency),
		TopScorer:         d.TopScorer,
		TopScorerShare:    d.TopScorerShare,
		Style:             string(d.Style),
		HomeAway:          string(d.HomeAway),
		Efficiency:        string(d.Efficiency),
		Form:              string(d.Form),
		Profile:           string(d.Profile),
		ProfileConfidence: d.ProfileConfidence,
		ProfileSource:     d.ProfileSource,
		Axes:              axes,
		Forces:            axisScoresToDTO(d.Forces),
		Weaknesses:        axisScoresToDTO(d.Weaknesses),
		VulnerabilityTags: d.VulnerabilityTags,
		ExploitFor:        marketEdgesToDTO(d.ExploitFor),
		ExploitAgainst:    marketEdgesToDTO(d.ExploitAgainst),
		Narrative:         d.Narrative,
		DataQuality:       d.DataQuality,
	}
	if includePlayers {
		out.Players = playersToDTO(d.Players)
	}
	return out
}

func axisScoresToDTO(scores []teamdna.AxisScore) []axisScoreDTO {
	out := make([]axisScoreDTO, 0, len(scores))
	for _, s := range scores {
		out = append(out, axisScoreDTO{Axis: string(s.Axis), Score: s.Score})
	}
	return out
}

func marketEdgesToDTO(edges []teamdna.MarketEdge) []marketEdgeDTO {
	out := make([]marketEdgeDTO, 0, len(edges))
	for _, e := range edges {
		out = append(out, marketEdgeDTO{
			Market:     e.Market,
			Action:     string(e.Action),
			Direction:  string(e.Direction),
			EdgeType:   e.EdgeType,
			Edge:       e.Edge,
			Confidence: string(e.Confidence),
			Reason:     e.Reason,
			Detail:     e.Detail,
		})
	}
	return out
}

func frictionToDTO(r friction.Result) frictionDTO {
	return frictionDTO{
		Home:             string(r.Home),
		Away:             string(r.Away),
		Clash:            string(r.Clash),
		Tempo:            string(r.Tempo),
		GoalsModifier:    r.GoalsModifier,
		CardsModifier:    r.CardsModifier,
		CornersModifier:  r.CornersModifier,
		FirstHalfBias:    r.FirstHalfBias,
		LateGoalProb:     r.LateGoalProb,
		PrimaryMarkets:   r.PrimaryMarkets,
		SecondaryMarkets: r.SecondaryMarkets,
		AvoidMarkets:     r.AvoidMarkets,
		Description:      r.Description,
		Source:           string(r.Source),
	}
}

func recommendationsToDTO(recs []matchup.Recommendation) []recommendationDTO {
	out := make([]recommendationDTO, 0, len(recs))
	for _, rec := range recs {
		out = append(out, recommendationDTO{
			Market:       rec.Market,
			EdgeEstimate: rec.EdgeEstimate,
			Confidence:   string(rec.Confidence),
			Source:       rec.Source,
			Reasoning:    rec.Reasoning,
		})
	}
	return out
}

func crossMatchesToDTO(matches []matchup.CrossMatch) []crossMatchDTO {
	out := make([]crossMatchDTO, 0, len(matches))
	for _, m := range matches {
		out = append(out, crossMatchDTO{
			VulnerableTeam: m.VulnerableTeam,
			ExploitingTeam: m.ExploitingTeam,
			Vulnerability:  m.Vulnerability,
			Market:         m.Market,
			BaseEdge:       m.BaseEdge,
			BoostedEdge:    m.BoostedEdge,
		})
	}
	return out
}

func playersToDTO(profiles []playerprofile.Profile) []playerDTO {
	out := make([]playerDTO, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, playerToDTO(p))
	}
	return out
}

func playerToDTO(p playerprofile.Profile) playerDTO {
	return playerDTO{
		Name:              p.Name,
		Team:              p.Team,
		Goals:             p.Goals,
		XG:                p.XG,
		Shots:             p.Shots,
		Minutes:           p.Minutes,
		GoalsPer90:        p.GoalsPer90,
		XGPer90:           p.XGPer90,
		XGOverperformance: p.XGOverperformance,
		TeamShare:         p.TeamShare,
		IsPenaltyTaker:    p.IsPenaltyTaker,
		PlayingTime:       string(p.PlayingTime),
		FinishingTrend:    string(p.FinishingTrend),
		ShotQuality:       string(p.ShotQuality),
		Cards:             string(p.Cards),
		Creativity:        string(p.Creativity),
		Timing:            string(p.Timing),
		HomeAway:          string(p.HomeAway),
		Dependency:        string(p.Dependency),
		FirstScorerScore:  p.FirstScorerScore,
		LastScorerScore:   p.LastScorerScore,
		AnytimeValueScore: p.AnytimeValueScore,
	}
}

func batchResultsToDTO(results []usecase.BatchResult) []batchResultDTO {
	out := make([]batchResultDTO, 0, len(results))
	for _, res := range results {
		item := batchResultDTO{
			Home: res.Fixture.Home,
			Away: res.Fixture.Away,
		}
		if res.Err != nil {
			item.Error = res.Err.Error()
		} else {
			analysis := analysisToDTO(res.Analysis)
			item.Analysis = &analysis
		}
		out = append(out, item)
	}
	return out
}
