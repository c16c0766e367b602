package friction

import (
	"testing"

	"github.com/oddsforge/matchdna/internal/domain/teamdna"
)

func TestPairCache_ExactAndMirrored(t *testing.T) {
	t.Parallel()

	c := NewPairCache()
	c.Put("Liverpool", "Everton", Result{
		Home:          teamdna.ProfileGegenpress,
		Away:          teamdna.ProfileLowBlock,
		Clash:         ClashSiegeWarfare,
		Tempo:         TempoMedium,
		FirstHalfBias: 0.38,
	})

	got, ok := c.Get("Liverpool", "Everton")
	if !ok {
		t.Fatal("exact pairing not found")
	}
	if got.Clash != ClashSiegeWarfare || got.Source != SourcePairGrid {
		t.Fatalf("unexpected record: %+v", got)
	}

	rev, ok := c.Get("Everton", "Liverpool")
	if !ok {
		t.Fatal("mirrored pairing not found")
	}
	if rev.FirstHalfBias != 1-0.38 {
		t.Fatalf("mirrored bias = %v, want %v", rev.FirstHalfBias, 1-0.38)
	}
	if rev.Home != teamdna.ProfileLowBlock || rev.Away != teamdna.ProfileGegenpress {
		t.Fatalf("mirrored profiles not swapped: %+v", rev)
	}
}

func TestPairCache_KeyInsensitivity(t *testing.T) {
	t.Parallel()

	c := NewPairCache()
	c.Put("Manchester City", "Burnley", Result{Clash: ClashSiegeWarfare, Tempo: TempoSlow, FirstHalfBias: 0.3})

	if _, ok := c.Get("  manchester city ", "BURNLEY"); !ok {
		t.Fatal("case and whitespace variants must resolve")
	}
	if c.Len() != 1 {
		t.Fatalf("len = %d, want 1", c.Len())
	}
}

func TestPairCache_Miss(t *testing.T) {
	t.Parallel()

	c := NewPairCache()
	if _, ok := c.Get("Arsenal", "Spurs"); ok {
		t.Fatal("empty cache must miss")
	}
}
