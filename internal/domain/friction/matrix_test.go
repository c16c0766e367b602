package friction

import (
	"math"
	"testing"

	"github.com/oddsforge/matchdna/internal/domain/teamdna"
)

func TestLookup_CoversEveryPairing(t *testing.T) {
	t.Parallel()

	for _, home := range teamdna.AllProfiles {
		for _, away := range teamdna.AllProfiles {
			r := Lookup(home, away)
			if r.Clash == "" || r.Tempo == "" {
				t.Fatalf("(%s, %s): empty clash or tempo", home, away)
			}
			if r.Source == SourceFallback {
				t.Fatalf("(%s, %s): canonical pairing fell through to the default cell", home, away)
			}
			if r.Description == "" {
				t.Fatalf("(%s, %s): missing description", home, away)
			}
		}
	}
}

func TestLookup_MirrorSymmetry(t *testing.T) {
	t.Parallel()

	for _, p := range teamdna.AllProfiles {
		for _, q := range teamdna.AllProfiles {
			a := Lookup(p, q)
			b := Lookup(q, p)

			if a.Clash != b.Clash || a.Tempo != b.Tempo {
				t.Fatalf("(%s, %s): clash/tempo changed on venue swap", p, q)
			}
			if a.GoalsModifier != b.GoalsModifier || a.CardsModifier != b.CardsModifier || a.CornersModifier != b.CornersModifier {
				t.Fatalf("(%s, %s): modifiers changed on venue swap", p, q)
			}
			if math.Abs(a.FirstHalfBias+b.FirstHalfBias-1) > 1e-9 {
				t.Fatalf("(%s, %s): bias %v + reverse %v != 1", p, q, a.FirstHalfBias, b.FirstHalfBias)
			}
			if !sameMarkets(a.PrimaryMarkets, b.PrimaryMarkets) ||
				!sameMarkets(a.SecondaryMarkets, b.SecondaryMarkets) ||
				!sameMarkets(a.AvoidMarkets, b.AvoidMarkets) {
				t.Fatalf("(%s, %s): market lists changed on venue swap", p, q)
			}
		}
	}
}

func TestLookup_PressingBattle(t *testing.T) {
	t.Parallel()

	r := Lookup(teamdna.ProfileGegenpress, teamdna.ProfilePossession)
	if r.Clash != ClashPressingBattle {
		t.Fatalf("clash = %s, want PRESSING_BATTLE", r.Clash)
	}
	if r.GoalsModifier <= 0 {
		t.Fatalf("goals modifier = %v, want positive", r.GoalsModifier)
	}
	if !containsMarket(r.PrimaryMarkets, "over_2.5") && !containsMarket(r.PrimaryMarkets, "btts_yes") {
		t.Fatalf("primary markets %v carry neither over_2.5 nor btts_yes", r.PrimaryMarkets)
	}
}

func TestLookup_SiegeAgainstDeepBlocks(t *testing.T) {
	t.Parallel()

	for _, away := range []teamdna.TacticalProfile{teamdna.ProfileLowBlock, teamdna.ProfileParkTheBus} {
		r := Lookup(teamdna.ProfilePossession, away)
		if r.Clash != ClashSiegeWarfare {
			t.Fatalf("POSSESSION vs %s: clash = %s, want SIEGE_WARFARE", away, r.Clash)
		}
		if r.CornersModifier < 3.0 {
			t.Fatalf("POSSESSION vs %s: corners modifier %v < 3.0", away, r.CornersModifier)
		}
		if r.FirstHalfBias > 0.40 {
			t.Fatalf("POSSESSION vs %s: first-half bias %v > 0.40", away, r.FirstHalfBias)
		}
		if !containsMarket(r.PrimaryMarkets, "corners_over_9.5") {
			t.Fatalf("POSSESSION vs %s: no corners-over primary in %v", away, r.PrimaryMarkets)
		}
	}
}

func TestLookup_EvenMatchups(t *testing.T) {
	t.Parallel()

	balanced := Lookup(teamdna.ProfileBalanced, teamdna.ProfileBalanced)
	if balanced.Clash != ClashTacticalChess {
		t.Fatalf("BALANCED pairing clash = %s, want TACTICAL_CHESS", balanced.Clash)
	}
	if balanced.GoalsModifier > 0 {
		t.Fatalf("BALANCED pairing goals modifier = %v, want <= 0", balanced.GoalsModifier)
	}
	if !containsMarket(balanced.PrimaryMarkets, "draw") && !containsMarket(balanced.PrimaryMarkets, "under_2.5") {
		t.Fatalf("BALANCED primary markets %v lack draw/under", balanced.PrimaryMarkets)
	}

	deep := Lookup(teamdna.ProfileLowBlock, teamdna.ProfileLowBlock)
	if deep.Clash != ClashStalemate {
		t.Fatalf("LOW_BLOCK pairing clash = %s, want STALEMATE", deep.Clash)
	}
}

func TestLookup_SamePairingBiasIsNeutral(t *testing.T) {
	t.Parallel()

	// A cell facing itself is its own mirror, which pins the bias to 0.5.
	for _, p := range teamdna.AllProfiles {
		if r := Lookup(p, p); r.FirstHalfBias != 0.5 {
			t.Fatalf("(%s, %s): bias %v, want 0.5", p, p, r.FirstHalfBias)
		}
	}
}

func TestLookup_UnknownProfileFallsBack(t *testing.T) {
	t.Parallel()

	r := Lookup("TIKI_TAKA", teamdna.ProfileGegenpress)
	if r.Source != SourceFallback {
		t.Fatalf("source = %s, want fallback", r.Source)
	}
	if r.Home != "TIKI_TAKA" || r.Away != teamdna.ProfileGegenpress {
		t.Fatalf("fallback lost the requested pairing: %s vs %s", r.Home, r.Away)
	}

	base := Lookup(teamdna.ProfileBalanced, teamdna.ProfileBalanced)
	if r.Clash != base.Clash || r.Tempo != base.Tempo {
		t.Fatalf("fallback content diverges from the BALANCED cell")
	}
}

func TestValidateMatrix_RejectsBrokenMirror(t *testing.T) {
	t.Parallel()

	broken := make(map[pairKey]Result, len(matrix))
	for k, v := range matrix {
		broken[k] = v
	}
	k := pairKey{teamdna.ProfileGegenpress, teamdna.ProfilePossession}
	cellCopy := broken[k]
	cellCopy.FirstHalfBias = 0.9
	broken[k] = cellCopy

	if err := validateMatrix(broken); err == nil {
		t.Fatal("expected validation error for asymmetric bias")
	}
}

func TestValidateMatrix_RejectsMissingCell(t *testing.T) {
	t.Parallel()

	broken := make(map[pairKey]Result, len(matrix))
	for k, v := range matrix {
		broken[k] = v
	}
	delete(broken, pairKey{teamdna.ProfileAdaptive, teamdna.ProfileBalanced})

	if err := validateMatrix(broken); err == nil {
		t.Fatal("expected validation error for missing cell")
	}
}

func containsMarket(markets []string, want string) bool {
	for _, m := range markets {
		if m == want {
			return true
		}
	}
	return false
}
