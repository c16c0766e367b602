package matchup

import (
	"github.com/oddsforge/matchdna/internal/domain/friction"
	"github.com/oddsforge/matchdna/internal/domain/teamdna"
)

// ConfidenceTier buckets the overall analysis confidence.
type ConfidenceTier string

const (
	TierHigh   ConfidenceTier = "HIGH"
	TierMedium ConfidenceTier = "MEDIUM"
	TierLow    ConfidenceTier = "LOW"
)

// Recommendation is one entry of the merged market list.
type Recommendation struct {
	Market       string
	EdgeEstimate float64
	Confidence   teamdna.EdgeConfidence
	Source       string // "friction", "home_dna", "away_dna"
	Reasoning    string
}

// CrossMatch records one vulnerability of a team that the opponent's
// exploit paths can attack.
type CrossMatch struct {
	VulnerableTeam string
	ExploitingTeam string
	Vulnerability  string
	Market         string
	BaseEdge       float64
	BoostedEdge    float64
}

// Confidence is the factor breakdown behind the overall score.
type Confidence struct {
	Overall               float64
	Classification        float64
	FrictionClarity       float64
	DataCompleteness      float64
	ExploitationPotential float64
	Tier                  ConfidenceTier
}

// Analysis is the full matchup product: both fingerprints, the friction
// record, the merged market lists and the confidence breakdown. Built per
// request and returned synchronously; nothing here is persisted.
type Analysis struct {
	HomeTeam string
	AwayTeam string

	Home teamdna.DNA
	Away teamdna.DNA

	Friction friction.Result

	Primary   []Recommendation
	Secondary []Recommendation
	Avoid     []string

	HomeVulnerabilities []CrossMatch
	AwayVulnerabilities []CrossMatch

	Confidence Confidence
}
