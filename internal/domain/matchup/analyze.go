package matchup

import (
	"fmt"
	"sort"
	"strings"

	"github.com/oddsforge/matchdna/internal/domain/friction"
	"github.com/oddsforge/matchdna/internal/domain/teamdna"
)

// Cross-match catalogue: which exploit markets attack which vulnerability.
// Keywords are matched as lowercase substrings of the market name.
var crossMatchRules = map[string][]string{
	"ZONE_penalty":        {"scorer", "goal"},
	"ZONE_six_yard":       {"headed", "corner"},
	"ZONE_behind":         {"over_2.5", "btts", "first_half_over"},
	"ACTION_cross":        {"headed", "corner"},
	"ACTION_counter":      {"over_2.5", "btts"},
	"ACTION_through_ball": {"scorer", "btts"},
	"ACTION_buildup":      {"team_over", "over_2.5"},
	"PHASE_late":          {"late_goal", "second_half"},
	"PHASE_early":         {"first_half_over"},
}

const (
	frictionBaseEdge   = 5.0
	crossMatchBoost    = 1.2
	primaryEdgeFloor   = 4.0
	secondaryEdgeFloor = 2.0
	maxPrimary         = 5
	maxSecondary       = 5
)

// Analyze collides two fingerprints with their friction record: it
// cross-matches vulnerabilities against exploit paths, merges and ranks the
// market lists and computes the confidence breakdown.
func Analyze(home, away teamdna.DNA, fr friction.Result) Analysis {
	a := Analysis{
		HomeTeam: home.Team,
		AwayTeam: away.Team,
		Home:     home,
		Away:     away,
		Friction: fr,
	}

	a.HomeVulnerabilities = crossMatch(home, away)
	a.AwayVulnerabilities = crossMatch(away, home)

	merged, boosted := mergeMarkets(home, away, fr, a.HomeVulnerabilities, a.AwayVulnerabilities)
	a.Primary, a.Secondary = splitMarkets(merged)
	a.Avoid = fr.AvoidMarkets

	a.Confidence = computeConfidence(home, away, boosted)
	return a
}

// crossMatch tests every vulnerability tag of the defending team against
// the attacker's FOR exploit paths.
func crossMatch(vulnerable, attacker teamdna.DNA) []CrossMatch {
	var matches []CrossMatch
	for _, tag := range vulnerable.VulnerabilityTags {
		keywords := crossMatchRules[tag]
		if len(keywords) == 0 {
			continue
		}
		for _, path := range attacker.ExploitFor {
			if !matchesAny(path.Market, keywords) {
				continue
			}
			matches = append(matches, CrossMatch{
				VulnerableTeam: vulnerable.Team,
				ExploitingTeam: attacker.Team,
				Vulnerability:  tag,
				Market:         path.Market,
				BaseEdge:       path.Edge,
				BoostedEdge:    path.Edge * crossMatchBoost,
			})
		}
	}
	return matches
}

func matchesAny(market string, keywords []string) bool {
	lower := strings.ToLower(market)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// mergeMarkets builds the unified list: friction primaries first, then each
// team's exploit paths deduplicated by case-insensitive name, then
// vulnerability boosts applied to markets already present. Boosts never
// introduce new markets. Returns the list and the number of boosted entries.
func mergeMarkets(home, away teamdna.DNA, fr friction.Result, homeVuln, awayVuln []CrossMatch) ([]Recommendation, int) {
	var merged []Recommendation
	index := make(map[string]int)

	add := func(rec Recommendation) {
		key := strings.ToLower(rec.Market)
		if _, seen := index[key]; seen {
			return
		}
		index[key] = len(merged)
		merged = append(merged, rec)
	}

	for _, market := range fr.PrimaryMarkets {
		add(Recommendation{
			Market:       market,
			EdgeEstimate: frictionBaseEdge,
			Confidence:   teamdna.EdgeConfidenceHigh,
			Source:       "friction",
			Reasoning:    fmt.Sprintf("%s pairing: %s", fr.Clash, fr.Description),
		})
	}
	for _, edge := range append(append([]teamdna.MarketEdge{}, home.ExploitFor...), home.ExploitAgainst...) {
		add(Recommendation{
			Market:       edge.Market,
			EdgeEstimate: edge.Edge,
			Confidence:   edge.Confidence,
			Source:       "home_dna",
			Reasoning:    edge.Reason,
		})
	}
	for _, edge := range append(append([]teamdna.MarketEdge{}, away.ExploitFor...), away.ExploitAgainst...) {
		add(Recommendation{
			Market:       edge.Market,
			EdgeEstimate: edge.Edge,
			Confidence:   edge.Confidence,
			Source:       "away_dna",
			Reasoning:    edge.Reason,
		})
	}

	boosted := make(map[string]struct{})
	applyBoosts := func(matches []CrossMatch) {
		for _, m := range matches {
			key := strings.ToLower(m.Market)
			i, seen := index[key]
			if !seen {
				continue
			}
			if _, done := boosted[key]; done {
				continue
			}
			boosted[key] = struct{}{}
			merged[i].EdgeEstimate *= crossMatchBoost
			merged[i].Reasoning += fmt.Sprintf("; boosted by %s vulnerability %s", m.VulnerableTeam, m.Vulnerability)
		}
	}
	applyBoosts(homeVuln)
	applyBoosts(awayVuln)

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].EdgeEstimate != merged[j].EdgeEstimate {
			return merged[i].EdgeEstimate > merged[j].EdgeEstimate
		}
		return merged[i].Market < merged[j].Market
	})
	return merged, len(boosted)
}

func splitMarkets(merged []Recommendation) (primary, secondary []Recommendation) {
	for _, rec := range merged {
		switch {
		case rec.EdgeEstimate >= primaryEdgeFloor:
			if len(primary) < maxPrimary {
				primary = append(primary, rec)
			}
		case rec.EdgeEstimate >= secondaryEdgeFloor:
			if len(secondary) < maxSecondary {
				secondary = append(secondary, rec)
			}
		}
	}
	return primary, secondary
}

func computeConfidence(home, away teamdna.DNA, boostedMarkets int) Confidence {
	c := Confidence{
		Classification: (home.ProfileConfidence + away.ProfileConfidence) / 2,
	}

	homeBalanced := home.Profile == teamdna.ProfileBalanced
	awayBalanced := away.Profile == teamdna.ProfileBalanced
	switch {
	case !homeBalanced && !awayBalanced:
		c.FrictionClarity = 0.9
	case homeBalanced && awayBalanced:
		c.FrictionClarity = 0.5
	default:
		c.FrictionClarity = 0.7
	}

	c.DataCompleteness = float64(home.PopulatedSections+away.PopulatedSections) / float64(2*teamdna.SectionCount)

	c.ExploitationPotential = float64(boostedMarkets) * 0.1
	if c.ExploitationPotential > 0.5 {
		c.ExploitationPotential = 0.5
	}

	c.Overall = 0.3*c.Classification + 0.3*c.FrictionClarity + 0.2*c.DataCompleteness + 0.2*c.ExploitationPotential
	switch {
	case c.Overall >= 0.7:
		c.Tier = TierHigh
	case c.Overall >= 0.5:
		c.Tier = TierMedium
	default:
		c.Tier = TierLow
	}
	return c
}
