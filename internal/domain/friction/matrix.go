package friction

import "github.com/oddsforge/matchdna/internal/domain/teamdna"

// The 12x12 profile friction table. Cells below are the hand-populated
// contract: 12 same-profile cells plus one cell per unordered pair. The
// mirrored half is generated at init with FirstHalfBias flipped, giving the
// full 144 entries. Missing cells are never computed from features.

type pairKey struct {
	home, away teamdna.TacticalProfile
}

var matrix map[pairKey]Result

// cell builds one authored matrix entry. Modifier order: goals, cards,
// corners, first-half bias, late-goal probability.
func cell(home, away teamdna.TacticalProfile, clash ClashType, tempo Tempo,
	goals, cards, corners, bias, late float64,
	primary, secondary, avoid []string, desc string,
) Result {
	return Result{
		Home:             home,
		Away:             away,
		Clash:            clash,
		Tempo:            tempo,
		GoalsModifier:    goals,
		CardsModifier:    cards,
		CornersModifier:  corners,
		FirstHalfBias:    bias,
		LateGoalProb:     late,
		PrimaryMarkets:   primary,
		SecondaryMarkets: secondary,
		AvoidMarkets:     avoid,
		Description:      desc,
		Source:           SourceExact,
	}
}

func authoredCells() []Result {
	pos := teamdna.ProfilePossession
	geg := teamdna.ProfileGegenpress
	wid := teamdna.ProfileWideAttack
	dir := teamdna.ProfileDirectAttack
	low := teamdna.ProfileLowBlock
	mid := teamdna.ProfileMidBlock
	bus := teamdna.ProfileParkTheBus
	tra := teamdna.ProfileTransition
	ada := teamdna.ProfileAdaptive
	bal := teamdna.ProfileBalanced
	hom := teamdna.ProfileHomeDominant
	sco := teamdna.ProfileScoreDependent

	return []Result{
		// Same-profile cells. Bias must be 0.50 so the mirror is the cell itself.
		cell(pos, pos, ClashChessMatch, TempoSlow, -0.3, -0.1, 0.5, 0.50, 0.45,
			[]string{"under_2.5"}, []string{"draw", "corners_over_9.5"}, []string{"over_3.5"},
			"two possession sides cancel out into sterile control and few clear chances"),
		cell(geg, geg, ClashChaosMaximal, TempoExtreme, 0.9, 0.8, 1.0, 0.50, 0.55,
			[]string{"over_2.5", "btts_yes"}, []string{"cards_over_3.5", "first_half_over_0.5"}, []string{"under_2.5"},
			"mutual pressing shreds both build-ups and turns every turnover into a chance"),
		cell(wid, wid, ClashWingBattle, TempoHigh, 0.4, 0.2, 4.0, 0.50, 0.45,
			[]string{"corners_over_9.5"}, []string{"headed_goal", "over_2.5"}, nil,
			"both teams live on the flanks, so cross and corner volume explodes"),
		cell(dir, dir, ClashTransitionFest, TempoHigh, 0.6, 0.3, 0.5, 0.50, 0.50,
			[]string{"over_2.5"}, []string{"btts_yes", "first_half_over_0.5"}, []string{"under_2.5"},
			"long stretched games with both defenses turned constantly"),
		cell(low, low, ClashStalemate, TempoSlow, -1.0, 0.1, -1.5, 0.50, 0.40,
			[]string{"under_2.5", "draw"}, []string{"first_half_under_0.5"}, []string{"over_2.5", "btts_yes"},
			"neither side wants the ball; a dead game decided by one mistake"),
		cell(mid, mid, ClashTacticalChess, TempoMedium, -0.3, 0, -0.5, 0.50, 0.45,
			[]string{"under_2.5"}, []string{"draw"}, []string{"over_3.5"},
			"two organized mid blocks trade territory without breaking shape"),
		cell(bus, bus, ClashStalemate, TempoSlow, -1.2, 0.2, -2.0, 0.50, 0.35,
			[]string{"under_2.5", "first_half_under_0.5"}, []string{"draw"}, []string{"over_2.5", "btts_yes"},
			"both buses parked; expect almost nothing"),
		cell(tra, tra, ClashTransitionFest, TempoHigh, 0.5, 0.2, 0, 0.50, 0.55,
			[]string{"over_2.5"}, []string{"btts_yes", "late_goal_after_75"}, nil,
			"counter against counter; end to end once the first goal lands"),
		cell(ada, ada, ClashUnpredictable, TempoVariable, 0, 0, 0, 0.50, 0.50,
			nil, []string{"btts_yes"}, nil,
			"two chameleons; game state decides everything"),
		cell(bal, bal, ClashTacticalChess, TempoMedium, -0.1, 0, 0, 0.50, 0.50,
			[]string{"under_2.5", "draw"}, []string{"btts_yes"}, []string{"over_3.5"},
			"no stylistic edge either way; a coin flip at an even tempo"),
		cell(hom, hom, ClashUnpredictable, TempoVariable, 0.2, 0.1, 0.5, 0.50, 0.50,
			[]string{"home_win"}, []string{"first_half_over_0.5"}, nil,
			"crowd-fed hosts against travel-shy visitors; the venue decides"),
		cell(sco, sco, ClashUnpredictable, TempoVariable, 0.3, 0.2, 0, 0.50, 0.70,
			[]string{"late_goal_after_75"}, []string{"second_half_over_1.5", "btts_yes"}, []string{"first_half_over_0.5"},
			"both teams only show up when the scoreboard forces them"),

		// Possession pairings.
		cell(geg, pos, ClashPressingBattle, TempoHigh, 0.6, 0.5, 1.0, 0.45, 0.55,
			[]string{"over_2.5", "btts_yes"}, []string{"cards_over_3.5"}, []string{"under_2.5"},
			"press against build-up; turnovers in dangerous areas for ninety minutes"),
		cell(pos, wid, ClashSpaceExploitation, TempoMedium, 0.2, 0, 2.0, 0.45, 0.45,
			[]string{"corners_over_9.5"}, []string{"over_2.5"}, nil,
			"possession pins the wide side back, then gets hit behind the wingbacks"),
		cell(pos, dir, ClashSpaceExploitation, TempoHigh, 0.4, 0.1, 0.5, 0.45, 0.50,
			[]string{"btts_yes"}, []string{"over_2.5"}, []string{"under_2.5"},
			"a high line against balls over the top; chances both ways"),
		cell(pos, low, ClashSiegeWarfare, TempoSlow, -0.4, 0.2, 3.5, 0.35, 0.55,
			[]string{"corners_over_9.5", "under_2.5"}, []string{"late_goal_after_75", "draw"}, []string{"over_3.5", "first_half_over_0.5"},
			"one side camps in the final third; corners pile up while the block holds"),
		cell(pos, mid, ClashChessMatch, TempoMedium, -0.2, 0, 1.0, 0.45, 0.45,
			[]string{"under_2.5"}, []string{"corners_over_9.5", "draw"}, nil,
			"patient circulation against an organized mid block"),
		cell(pos, bus, ClashSiegeWarfare, TempoSlow, -0.6, 0.3, 4.0, 0.30, 0.60,
			[]string{"corners_over_9.5", "under_2.5"}, []string{"late_goal_after_75"}, []string{"over_2.5", "btts_yes"},
			"total siege; one late breakthrough or nothing"),
		cell(pos, tra, ClashAbsorbCounter, TempoMedium, 0.1, 0, 1.0, 0.40, 0.55,
			[]string{"btts_yes"}, []string{"late_goal_after_75"}, nil,
			"possession probes while the counter side waits for one clean break"),
		cell(pos, ada, ClashChessMatch, TempoMedium, 0, 0, 0, 0.45, 0.50,
			[]string{"under_2.5"}, []string{"btts_yes"}, nil,
			"the adaptive side mirrors and frustrates the ball hog"),
		cell(pos, bal, ClashChessMatch, TempoMedium, 0, 0, 1.0, 0.45, 0.45,
			[]string{"under_2.5"}, []string{"corners_over_9.5"}, nil,
			"control without penetration against a tidy all-round side"),
		cell(pos, hom, ClashTacticalChess, TempoMedium, 0.1, 0, 0, 0.45, 0.50,
			[]string{"home_win"}, []string{"win_to_nil"}, nil,
			"the venue side travels poorly; the possession host controls throughout"),
		cell(pos, sco, ClashChessMatch, TempoSlow, -0.1, 0, 0, 0.40, 0.65,
			[]string{"late_goal_after_75"}, []string{"under_2.5"}, []string{"first_half_over_0.5"},
			"slow burn; the score-dependent side only engages when behind"),

		// Gegenpress pairings.
		cell(geg, wid, ClashTransitionFest, TempoHigh, 0.5, 0.4, 2.0, 0.50, 0.50,
			[]string{"over_2.5"}, []string{"corners_over_9.5", "cards_over_3.5"}, []string{"under_2.5"},
			"press traps against switches to the flanks; a broken game"),
		cell(geg, dir, ClashTransitionFest, TempoExtreme, 0.8, 0.5, 0.5, 0.55, 0.50,
			[]string{"over_2.5", "btts_yes"}, []string{"first_half_over_0.5"}, []string{"under_2.5"},
			"direct balls beat the press or die in it; chaos either way"),
		cell(geg, low, ClashSiegeWarfare, TempoMedium, -0.2, 0.4, 3.2, 0.38, 0.55,
			[]string{"corners_over_9.5"}, []string{"cards_over_3.5", "under_2.5"}, []string{"btts_yes"},
			"the press camps high but the block concedes only corners"),
		cell(geg, mid, ClashPressingBattle, TempoHigh, 0.3, 0.4, 1.0, 0.45, 0.50,
			[]string{"cards_over_3.5"}, []string{"over_2.5"}, nil,
			"press against a mid block that tries to play through it"),
		cell(geg, bus, ClashSiegeWarfare, TempoMedium, -0.5, 0.5, 3.8, 0.35, 0.60,
			[]string{"corners_over_9.5", "under_2.5"}, []string{"cards_over_3.5", "late_goal_after_75"}, []string{"over_2.5"},
			"nothing to press; the bus kicks it long and hangs on"),
		cell(geg, tra, ClashTransitionFest, TempoExtreme, 0.9, 0.4, 0, 0.50, 0.60,
			[]string{"over_2.5", "btts_yes"}, []string{"late_goal_after_75"}, []string{"under_2.5"},
			"a beaten press means a clean counter every time"),
		cell(geg, ada, ClashUnpredictable, TempoVariable, 0.2, 0.3, 0, 0.50, 0.50,
			[]string{"cards_over_3.5"}, []string{"over_2.5"}, nil,
			"the adaptive side toggles between playing through and over the press"),
		cell(geg, bal, ClashPressingBattle, TempoHigh, 0.4, 0.4, 0, 0.50, 0.50,
			[]string{"over_2.5"}, []string{"cards_over_3.5", "btts_yes"}, nil,
			"sustained press against a side with no special escape plan"),
		cell(geg, hom, ClashPressingBattle, TempoHigh, 0.4, 0.5, 0, 0.50, 0.50,
			[]string{"over_2.5"}, []string{"cards_over_3.5"}, nil,
			"pressing intensity against home-crowd intensity; tempers fray"),
		cell(geg, sco, ClashTransitionFest, TempoHigh, 0.5, 0.4, 0, 0.45, 0.65,
			[]string{"late_goal_after_75"}, []string{"over_2.5", "second_half_over_1.5"}, nil,
			"the press fades late exactly when the clutch side wakes up"),

		// Wide-attack pairings.
		cell(wid, dir, ClashTransitionFest, TempoHigh, 0.5, 0.2, 2.0, 0.50, 0.50,
			[]string{"over_2.5"}, []string{"corners_over_9.5", "headed_goal"}, []string{"under_2.5"},
			"both teams attack fast, one wide and one vertical"),
		cell(wid, low, ClashSiegeWarfare, TempoMedium, -0.3, 0.2, 3.4, 0.38, 0.55,
			[]string{"corners_over_9.5", "headed_goal"}, []string{"under_2.5", "late_goal_after_75"}, []string{"btts_yes"},
			"cross after cross into a packed box"),
		cell(wid, mid, ClashWingBattle, TempoMedium, 0.1, 0, 2.5, 0.45, 0.45,
			[]string{"corners_over_9.5"}, []string{"headed_goal"}, nil,
			"the mid block shows them wide, which is where they want to be"),
		cell(wid, bus, ClashSiegeWarfare, TempoSlow, -0.4, 0.3, 4.2, 0.34, 0.60,
			[]string{"corners_over_9.5", "headed_goal"}, []string{"under_2.5", "late_goal_after_75"}, []string{"over_2.5"},
			"an aerial siege; corners and headers or nothing"),
		cell(wid, tra, ClashSpaceExploitation, TempoHigh, 0.5, 0.2, 1.5, 0.45, 0.55,
			[]string{"btts_yes"}, []string{"over_2.5", "corners_over_9.5"}, nil,
			"wingbacks push up and the counter runs through the space they leave"),
		cell(wid, ada, ClashWingBattle, TempoMedium, 0.2, 0, 2.0, 0.50, 0.50,
			[]string{"corners_over_9.5"}, []string{"over_2.5"}, nil,
			"flank game against a side that can match up anywhere"),
		cell(wid, bal, ClashWingBattle, TempoMedium, 0.2, 0, 2.5, 0.50, 0.45,
			[]string{"corners_over_9.5"}, []string{"headed_goal"}, nil,
			"wide overloads against an even defensive spread"),
		cell(wid, hom, ClashWingBattle, TempoHigh, 0.3, 0, 2.0, 0.50, 0.50,
			[]string{"corners_over_9.5"}, []string{"over_2.5"}, nil,
			"wing play against visitors who leave their aggression at home"),
		cell(wid, sco, ClashSpaceExploitation, TempoMedium, 0.2, 0, 1.5, 0.45, 0.60,
			[]string{"late_goal_after_75"}, []string{"corners_over_9.5"}, nil,
			"crosses all game; the clutch side saves its answer for the end"),

		// Direct-attack pairings.
		cell(dir, low, ClashSiegeWarfare, TempoMedium, -0.3, 0.2, 3.0, 0.38, 0.55,
			[]string{"corners_over_9.5", "under_2.5"}, []string{"headed_goal"}, []string{"btts_yes"},
			"long balls bounce off a deep block; second balls and set pieces decide"),
		cell(dir, mid, ClashSpaceExploitation, TempoMedium, 0.3, 0, 0, 0.48, 0.50,
			[]string{"over_2.5"}, []string{"btts_yes"}, nil,
			"direct play stretches the mid block vertically"),
		cell(dir, bus, ClashSiegeWarfare, TempoSlow, -0.5, 0.3, 3.6, 0.36, 0.55,
			[]string{"corners_over_9.5", "under_2.5"}, []string{"headed_goal", "late_goal_after_75"}, []string{"over_2.5"},
			"route one into a parked bus; aerial duels all afternoon"),
		cell(dir, tra, ClashTransitionFest, TempoExtreme, 0.8, 0.3, 0, 0.50, 0.55,
			[]string{"over_2.5", "btts_yes"}, []string{"late_goal_after_75"}, []string{"under_2.5"},
			"vertical against vertical; nobody keeps the ball ten seconds"),
		cell(dir, ada, ClashUnpredictable, TempoVariable, 0.2, 0, 0, 0.50, 0.50,
			[]string{"btts_yes"}, []string{"over_2.5"}, nil,
			"the direct side forces chaos; the adaptive side picks its moments"),
		cell(dir, bal, ClashSpaceExploitation, TempoMedium, 0.3, 0, 0, 0.50, 0.50,
			[]string{"over_2.5"}, []string{"btts_yes"}, nil,
			"verticality against an ordinary line height"),
		cell(dir, hom, ClashTransitionFest, TempoHigh, 0.4, 0, 0, 0.50, 0.50,
			[]string{"home_win"}, []string{"over_2.5"}, nil,
			"direct hosts against visitors who shrink on the road"),
		cell(dir, sco, ClashSpaceExploitation, TempoMedium, 0.3, 0, 0, 0.45, 0.65,
			[]string{"late_goal_after_75"}, []string{"over_2.5"}, nil,
			"a stretched game that tilts when the clutch side has to chase"),

		// Low-block pairings.
		cell(low, mid, ClashStalemate, TempoSlow, -0.8, 0, -1.0, 0.48, 0.40,
			[]string{"under_2.5"}, []string{"draw", "first_half_under_0.5"}, []string{"over_2.5"},
			"two blocks, different heights, same idea"),
		cell(low, bus, ClashStalemate, TempoSlow, -1.1, 0, -1.5, 0.50, 0.35,
			[]string{"under_2.5", "first_half_under_0.5"}, []string{"draw"}, []string{"over_2.5", "btts_yes"},
			"the deepest game of the season"),
		cell(low, tra, ClashAbsorbCounter, TempoSlow, -0.7, 0, 0, 0.45, 0.50,
			[]string{"under_2.5"}, []string{"draw"}, []string{"over_2.5"},
			"the counter side finds no space because the block never comes out"),
		cell(low, ada, ClashTacticalChess, TempoSlow, -0.4, 0, 0, 0.48, 0.45,
			[]string{"under_2.5"}, []string{"draw"}, nil,
			"the adaptive side must take initiative it does not love"),
		cell(low, bal, ClashTacticalChess, TempoSlow, -0.3, 0, 0, 0.48, 0.45,
			[]string{"under_2.5"}, []string{"draw"}, nil,
			"the balanced side holds the ball by default against the block"),
		cell(hom, low, ClashSiegeWarfare, TempoMedium, -0.2, 0, 3.0, 0.38, 0.55,
			[]string{"corners_over_9.5"}, []string{"under_2.5", "late_goal_after_75"}, []string{"btts_yes"},
			"the host camps in the visitors' half from kickoff"),
		cell(low, sco, ClashAbsorbCounter, TempoSlow, -0.5, 0, 0, 0.42, 0.60,
			[]string{"under_2.5"}, []string{"late_goal_after_75"}, []string{"first_half_over_0.5"},
			"nothing happens until someone is forced to chase"),

		// Mid-block pairings.
		cell(mid, bus, ClashStalemate, TempoSlow, -0.9, 0, -1.0, 0.48, 0.40,
			[]string{"under_2.5"}, []string{"draw", "first_half_under_0.5"}, []string{"over_2.5"},
			"mid block against bus; the siege never builds real pressure"),
		cell(mid, tra, ClashAbsorbCounter, TempoMedium, -0.2, 0, 0, 0.45, 0.50,
			[]string{"under_2.5"}, []string{"btts_yes"}, nil,
			"the mid block invites pressure it knows how to spring from"),
		cell(mid, ada, ClashTacticalChess, TempoMedium, -0.2, 0, 0, 0.50, 0.45,
			[]string{"under_2.5"}, []string{"draw"}, nil,
			"cagey and even throughout"),
		cell(mid, bal, ClashTacticalChess, TempoMedium, -0.1, 0, 0, 0.50, 0.45,
			[]string{"under_2.5"}, []string{"draw"}, nil,
			"organized against ordinary; the margins are tiny"),
		cell(mid, hom, ClashTacticalChess, TempoMedium, 0, 0, 0, 0.50, 0.50,
			[]string{"home_win"}, []string{"under_2.5"}, nil,
			"the travelling venue team gives less on the road"),
		cell(mid, sco, ClashTacticalChess, TempoSlow, -0.2, 0, 0, 0.45, 0.60,
			[]string{"late_goal_after_75"}, []string{"under_2.5"}, []string{"first_half_over_0.5"},
			"slow until the scoreboard demands urgency"),

		// Park-the-bus pairings.
		cell(bus, tra, ClashStalemate, TempoSlow, -1.0, 0, 0, 0.48, 0.40,
			[]string{"under_2.5"}, []string{"draw", "first_half_under_0.5"}, []string{"over_2.5", "btts_yes"},
			"the counter side cannot counter a team that never attacks"),
		cell(bus, ada, ClashTacticalChess, TempoSlow, -0.6, 0, 0, 0.45, 0.50,
			[]string{"under_2.5"}, []string{"late_goal_after_75"}, []string{"over_2.5"},
			"the adaptive side must lay a siege; expect patience"),
		cell(bus, bal, ClashTacticalChess, TempoSlow, -0.5, 0, 0, 0.45, 0.50,
			[]string{"under_2.5"}, []string{"draw"}, []string{"over_2.5"},
			"a bus against a side without a siege toolkit"),
		cell(hom, bus, ClashSiegeWarfare, TempoMedium, -0.4, 0, 3.4, 0.36, 0.60,
			[]string{"corners_over_9.5", "under_2.5"}, []string{"late_goal_after_75"}, []string{"btts_yes"},
			"the host throws everything at a bus that lives for this"),
		cell(bus, sco, ClashAbsorbCounter, TempoSlow, -0.6, 0, 0, 0.42, 0.55,
			[]string{"under_2.5"}, []string{"late_goal_after_75"}, []string{"first_half_over_0.5"},
			"the clutch side waits, the bus waits longer"),

		// Transition pairings.
		cell(tra, ada, ClashUnpredictable, TempoVariable, 0.1, 0, 0, 0.50, 0.55,
			[]string{"btts_yes"}, []string{"late_goal_after_75"}, nil,
			"two reactive sides wait for each other to blink"),
		cell(tra, bal, ClashAbsorbCounter, TempoMedium, 0.1, 0, 0, 0.48, 0.50,
			[]string{"btts_yes"}, []string{"over_2.5"}, nil,
			"the balanced side holds the ball and feeds the counter"),
		cell(tra, hom, ClashTransitionFest, TempoHigh, 0.4, 0, 0, 0.50, 0.55,
			[]string{"over_2.5"}, []string{"btts_yes"}, nil,
			"hosts counter a visitor that commits men forward out of habit"),
		cell(tra, sco, ClashTransitionFest, TempoHigh, 0.4, 0, 0, 0.45, 0.65,
			[]string{"late_goal_after_75"}, []string{"btts_yes", "second_half_over_1.5"}, nil,
			"late chasing feeds the counter; goals come after the seventieth"),

		// Adaptive pairings.
		cell(ada, bal, ClashTacticalChess, TempoMedium, 0, 0, 0, 0.50, 0.50,
			[]string{"draw"}, []string{"under_2.5"}, nil,
			"no identity clash to exploit"),
		cell(ada, hom, ClashUnpredictable, TempoVariable, 0.1, 0, 0, 0.50, 0.50,
			[]string{"home_win"}, []string{"btts_yes"}, nil,
			"the adaptive host does whatever the visitor is worst at"),
		cell(ada, sco, ClashUnpredictable, TempoVariable, 0.1, 0, 0, 0.45, 0.60,
			[]string{"late_goal_after_75"}, []string{"btts_yes"}, nil,
			"shapeless until the score gives it shape"),

		// Balanced pairings.
		cell(bal, hom, ClashTacticalChess, TempoMedium, 0.1, 0, 0, 0.50, 0.50,
			[]string{"home_win"}, []string{"under_2.5"}, nil,
			"the venue side away from its venue is just ordinary"),
		cell(bal, sco, ClashTacticalChess, TempoMedium, 0, 0, 0, 0.45, 0.60,
			[]string{"late_goal_after_75"}, []string{"draw"}, []string{"first_half_over_0.5"},
			"an even game with a late tilt built in"),

		// Contextual pairing.
		cell(hom, sco, ClashUnpredictable, TempoVariable, 0.2, 0, 0, 0.50, 0.60,
			[]string{"home_win", "late_goal_after_75"}, []string{"second_half_over_1.5"}, nil,
			"a crowd-driven host against a side that answers only when losing"),
	}
}

func init() {
	authored := authoredCells()
	matrix = make(map[pairKey]Result, len(teamdna.AllProfiles)*len(teamdna.AllProfiles))
	for _, r := range authored {
		matrix[pairKey{r.Home, r.Away}] = r
	}
	for _, r := range authored {
		reverse := pairKey{r.Away, r.Home}
		if _, exists := matrix[reverse]; !exists {
			matrix[reverse] = r.mirrored()
		}
	}
	if err := validateMatrix(matrix); err != nil {
		panic(err)
	}
}

// Lookup resolves the friction record for a profile pairing. Exact cell
// first, then the mirrored reverse cell, then the BALANCED vs BALANCED
// default. It never fails: unknown labels land on the default with the
// requested profiles preserved.
func Lookup(home, away teamdna.TacticalProfile) Result {
	if r, ok := matrix[pairKey{home, away}]; ok {
		return r
	}
	if r, ok := matrix[pairKey{away, home}]; ok {
		return r.mirrored()
	}
	r := matrix[pairKey{teamdna.ProfileBalanced, teamdna.ProfileBalanced}]
	r.Home, r.Away = home, away
	r.Source = SourceFallback
	return r
}
