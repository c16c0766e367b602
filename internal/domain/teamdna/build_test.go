package teamdna

import (
	"reflect"
	"testing"

	"github.com/oddsforge/matchdna/internal/domain/goalevent"
	"github.com/oddsforge/matchdna/internal/domain/playerprofile"
	"github.com/oddsforge/matchdna/internal/domain/teamcontext"
)

func teamGoal(scorer, team string, half goalevent.Half, period goalevent.TimingPeriod, matchID string, home bool) goalevent.Goal {
	return goalevent.Goal{
		MatchID:      matchID,
		Scorer:       scorer,
		ScoringTeam:  team,
		Half:         half,
		TimingPeriod: period,
		Situation:    goalevent.SituationOpenPlay,
		ShotType:     goalevent.ShotRightFoot,
		IsHome:       home,
	}
}

func cityFixture() BuildInput {
	team := "Manchester City"
	goals := []goalevent.Goal{
		teamGoal("Erling Haaland", team, goalevent.HalfFirst, goalevent.Period16to30, "m1", true),
		teamGoal("Erling Haaland", team, goalevent.HalfFirst, goalevent.Period31to45, "m1", true),
		teamGoal("Phil Foden", team, goalevent.HalfSecond, goalevent.Period46to60, "m2", false),
		teamGoal("Erling Haaland", team, goalevent.HalfSecond, goalevent.Period76to90, "m3", true),
		teamGoal("Julian Alvarez", team, goalevent.HalfFirst, goalevent.Period0to15, "m4", true),
	}

	haaland := playerprofile.Build(playerprofile.RawPlayer{
		PlayerName: "Erling Haaland", Team: team,
		Goals: 3, NPG: 3, XG: 2.4, Shots: 14, Minutes: 900, Games: 10, Assists: 1, XA: 0.8,
	}, goals, 5)
	foden := playerprofile.Build(playerprofile.RawPlayer{
		PlayerName: "Phil Foden", Team: team,
		Goals: 1, NPG: 1, XG: 1.1, Shots: 9, Minutes: 850, Games: 10, Assists: 4, XA: 3.2,
	}, goals, 5)
	alvarez := playerprofile.Build(playerprofile.RawPlayer{
		PlayerName: "Julian Alvarez", Team: team,
		Goals: 1, NPG: 1, XG: 0.9, Shots: 7, Minutes: 400, Games: 9, Assists: 1, XA: 0.7,
	}, goals, 5)

	return BuildInput{
		Team:    team,
		Players: []playerprofile.Profile{haaland, foden, alvarez},
		Goals:   goals,
		Context: teamcontext.Context{
			Team: team, League: "EPL", MatchesPlayed: 10,
			XGFor: 22.5, XGAgainst: 9.0,
			HomeXGAPerMatch: 0.8, AwayXGAPerMatch: 1.1,
			PossessionPct: 64, PressingStyle: "high-press", PPDA: 8.5,
			FormLastFive: "WWWDW", PointsPerGame: 2.5,
		},
		HasContext: true,
		Goalkeeper: teamcontext.Goalkeeper{
			Team: team, Saves: 30, GoalsPrevented: 3.2, SaveRate: 74, HeaderSaveRate: 80,
		},
		HasGoalkeeper: true,
	}
}

func TestBuild_ZeroPlayersDefault(t *testing.T) {
	t.Parallel()

	d := Build(BuildInput{Team: "Ghost Town FC"})

	if d.Volume != VolumeLowScoring {
		t.Fatalf("volume = %s, want LOW_SCORING", d.Volume)
	}
	if d.HomeAway != HomeAwayBalanced {
		t.Fatalf("home/away = %s, want BALANCED", d.HomeAway)
	}
	if d.DataQuality != 0 {
		t.Fatalf("data quality = %v, want 0", d.DataQuality)
	}
	for _, axis := range AllAxes {
		if d.Axes[axis] != 50 {
			t.Fatalf("axis %s = %v, want neutral 50", axis, d.Axes[axis])
		}
	}
	if len(d.Forces) != 0 || len(d.Weaknesses) != 0 {
		t.Fatalf("default record must have no forces or weaknesses")
	}
}

func TestBuild_Conservation(t *testing.T) {
	t.Parallel()

	in := cityFixture()
	d := Build(in)

	sumGoals, sumXG := 0, 0.0
	for _, p := range in.Players {
		sumGoals += p.Goals
		sumXG += p.XG
	}
	if d.Goals != sumGoals {
		t.Fatalf("team goals %d != player sum %d", d.Goals, sumGoals)
	}
	if d.XG != sumXG {
		t.Fatalf("team xG %v != player sum %v", d.XG, sumXG)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	t.Parallel()

	in := cityFixture()
	first := Build(in)
	second := Build(in)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("rebuilding from identical inputs diverged")
	}
}

func TestBuild_AxesClamped(t *testing.T) {
	t.Parallel()

	d := Build(cityFixture())
	for _, axis := range AllAxes {
		v := d.Axes[axis]
		if v < 0 || v > 100 {
			t.Fatalf("axis %s = %v out of [0,100]", axis, v)
		}
	}
	if d.ProfileConfidence < 0 || d.ProfileConfidence > 1 {
		t.Fatalf("profile confidence %v out of [0,1]", d.ProfileConfidence)
	}
}

func TestBuild_ForcesAndWeaknesses(t *testing.T) {
	t.Parallel()

	d := Build(cityFixture())

	// PPDA 8.5 on a 6..16 scale lands at 75: a pressing force.
	if d.Axes[AxisPressingIntensity] != 75 {
		t.Fatalf("pressing axis = %v, want 75", d.Axes[AxisPressingIntensity])
	}
	foundPressing := false
	for _, f := range d.Forces {
		if f.Axis == AxisPressingIntensity {
			foundPressing = true
		}
		if f.Score < ForceThreshold {
			t.Fatalf("force %s below threshold: %v", f.Axis, f.Score)
		}
	}
	if !foundPressing {
		t.Fatalf("pressing intensity missing from forces: %+v", d.Forces)
	}
	for _, w := range d.Weaknesses {
		if w.Score > WeaknessThreshold {
			t.Fatalf("weakness %s above threshold: %v", w.Axis, w.Score)
		}
	}
	// Forces sorted descending.
	for i := 1; i < len(d.Forces); i++ {
		if d.Forces[i].Score > d.Forces[i-1].Score {
			t.Fatalf("forces not sorted: %+v", d.Forces)
		}
	}
}

func TestBuild_ExternalProfileWins(t *testing.T) {
	t.Parallel()

	in := cityFixture()
	in.Context.TacticalProfile = "POSSESSION"
	in.Context.ProfileConfidence = 0.9

	d := Build(in)
	if d.Profile != ProfilePossession {
		t.Fatalf("profile = %s, want external POSSESSION", d.Profile)
	}
	if d.ProfileConfidence != 0.9 || d.ProfileSource != "external" {
		t.Fatalf("confidence/source = %v/%s, want 0.9/external", d.ProfileConfidence, d.ProfileSource)
	}
}

func TestBuild_DerivedProfile(t *testing.T) {
	t.Parallel()

	in := cityFixture()
	in.Context.TacticalProfile = ""
	d := Build(in)

	if !d.Profile.Valid() {
		t.Fatalf("derived profile %s not canonical", d.Profile)
	}
	if d.ProfileSource != "derived" {
		t.Fatalf("profile source = %s, want derived", d.ProfileSource)
	}
}

func TestBuild_ExploitMarkets(t *testing.T) {
	t.Parallel()

	d := Build(cityFixture())

	if len(d.ExploitFor) == 0 {
		t.Fatal("expected exploitable FOR markets for a strong side")
	}
	if len(d.ExploitFor) > 8 || len(d.ExploitAgainst) > 8 {
		t.Fatalf("exploit lists exceed cap: %d/%d", len(d.ExploitFor), len(d.ExploitAgainst))
	}
	for i := 1; i < len(d.ExploitFor); i++ {
		if d.ExploitFor[i].Edge > d.ExploitFor[i-1].Edge {
			t.Fatalf("FOR markets not sorted by edge: %+v", d.ExploitFor)
		}
	}
	seen := map[string]struct{}{}
	for _, m := range d.ExploitFor {
		if _, dup := seen[m.Market]; dup {
			t.Fatalf("duplicate market %s in FOR list", m.Market)
		}
		seen[m.Market] = struct{}{}
		if m.Edge <= 0 {
			t.Fatalf("non-positive edge for %s", m.Market)
		}
		// Strong-band entries must be HIGH confidence, the rest MEDIUM.
		if m.Confidence != EdgeConfidenceHigh && m.Confidence != EdgeConfidenceMedium {
			t.Fatalf("unexpected confidence %s", m.Confidence)
		}
	}
}

func TestBuild_TeamTags(t *testing.T) {
	t.Parallel()

	d := Build(cityFixture())

	if d.TopScorer != "Erling Haaland" {
		t.Fatalf("top scorer = %s", d.TopScorer)
	}
	if d.TopScorerShare != 60 {
		t.Fatalf("top scorer share = %v, want 60", d.TopScorerShare)
	}
	if d.Dependency != DependencyMVP {
		t.Fatalf("dependency = %s, want MVP_DEPENDENT", d.Dependency)
	}
	if d.DistinctScorers != 3 {
		t.Fatalf("distinct scorers = %d, want 3", d.DistinctScorers)
	}
	if d.Form != FormRising {
		t.Fatalf("form = %s, want RISING (WWWDW = 13 points)", d.Form)
	}
	if d.Matches != 10 || d.GoalsPerMatch != 0.5 {
		t.Fatalf("matches/gpm = %d/%v", d.Matches, d.GoalsPerMatch)
	}
}

func TestBuild_NarrativePresent(t *testing.T) {
	t.Parallel()

	d := Build(cityFixture())
	if d.Narrative == "" {
		t.Fatal("narrative must not be empty")
	}

	empty := Build(BuildInput{Team: "Ghost Town FC"})
	if empty.Narrative == "" {
		t.Fatal("default record still carries an identity line")
	}
}

func TestClassifyForm(t *testing.T) {
	t.Parallel()

	cases := map[string]FormProfile{
		"WWWWW": FormRising,
		"WWDWD": FormRising,
		"LLLLL": FormDeclining,
		"LDLDL": FormDeclining,
		"WDLWD": FormStable,
		"":      FormStable,
	}
	for form, want := range cases {
		if got := classifyForm(form); got != want {
			t.Errorf("classifyForm(%q) = %s, want %s", form, got, want)
		}
	}
}
