package memory

import (
	"fmt"
	"time"

	"github.com/oddsforge/matchdna/internal/domain/goalevent"
	"github.com/oddsforge/matchdna/internal/domain/playerprofile"
	"github.com/oddsforge/matchdna/internal/domain/teamcontext"
)

// SeedData bundles every record kind the in-memory repositories serve.
type SeedData struct {
	Players     []playerprofile.RawPlayer
	Goals       []goalevent.Goal
	Contexts    []teamcontext.Context
	Referees    []teamcontext.Referee
	Goalkeepers []teamcontext.Goalkeeper
}

type seedScorer struct {
	name      string
	goals     int
	penalties int
}

// Seed builds a deterministic league snapshot: three stylistically distinct
// teams with full player aggregates, a goal stream comfortably above the
// season-completeness floor, and context/enrichment records.
func Seed() SeedData {
	liverpool := "Liverpool"
	city := "Manchester City"
	burnley := "Burnley"

	goals := seedGoals(liverpool, city, "LIV", []seedScorer{
		{"Mohamed Salah", 18, 2},
		{"Darwin Nunez", 9, 0},
		{"Cody Gakpo", 7, 0},
		{"Diogo Jota", 6, 0},
		{"Luis Diaz", 5, 0},
	})
	goals = append(goals, seedGoals(city, liverpool, "MCI", []seedScorer{
		{"Erling Haaland", 20, 3},
		{"Phil Foden", 10, 0},
		{"Julian Alvarez", 8, 1},
		{"Bernardo Silva", 6, 0},
		{"Jeremy Doku", 4, 0},
	})...)
	goals = append(goals, seedGoals(burnley, city, "BUR", []seedScorer{
		{"Lyle Foster", 8, 0},
		{"Zeki Amdouni", 6, 1},
		{"Josh Brownhill", 4, 0},
		{"Jacob Bruun Larsen", 2, 0},
	})...)

	players := []playerprofile.RawPlayer{
		{PlayerName: "Mohamed Salah", Team: liverpool, League: "EPL", Position: "F", Goals: 18, NPG: 16, XG: 15.2, NPXG: 13.6, Assists: 9, XA: 7.8, Shots: 92, Minutes: 2480, Games: 28, KeyPasses: 58, YellowCards: 1},
		{PlayerName: "Darwin Nunez", Team: liverpool, League: "EPL", Position: "F", Goals: 9, NPG: 9, XG: 13.1, NPXG: 13.1, Assists: 5, XA: 4.2, Shots: 98, Minutes: 1820, Games: 27, KeyPasses: 31, YellowCards: 4},
		{PlayerName: "Cody Gakpo", Team: liverpool, League: "EPL", Position: "F", Goals: 7, NPG: 7, XG: 6.4, NPXG: 6.4, Assists: 3, XA: 2.9, Shots: 44, Minutes: 1510, Games: 26, KeyPasses: 22, YellowCards: 1},
		{PlayerName: "Diogo Jota", Team: liverpool, League: "EPL", Position: "F", Goals: 6, NPG: 6, XG: 6.8, NPXG: 6.8, Assists: 2, XA: 1.8, Shots: 38, Minutes: 1240, Games: 22, KeyPasses: 18, YellowCards: 2},
		{PlayerName: "Luis Diaz", Team: liverpool, League: "EPL", Position: "F", Goals: 5, NPG: 5, XG: 5.9, NPXG: 5.9, Assists: 4, XA: 3.4, Shots: 52, Minutes: 2010, Games: 29, KeyPasses: 34, YellowCards: 1},

		{PlayerName: "Erling Haaland", Team: city, League: "EPL", Position: "F", Goals: 20, NPG: 17, XG: 18.4, NPXG: 16.1, Assists: 5, XA: 3.9, Shots: 104, Minutes: 2350, Games: 27, KeyPasses: 26, YellowCards: 2},
		{PlayerName: "Phil Foden", Team: city, League: "EPL", Position: "M", Goals: 10, NPG: 10, XG: 8.2, NPXG: 8.2, Assists: 8, XA: 6.6, Shots: 62, Minutes: 2440, Games: 30, KeyPasses: 61, YellowCards: 1},
		{PlayerName: "Julian Alvarez", Team: city, League: "EPL", Position: "F", Goals: 8, NPG: 7, XG: 7.5, NPXG: 6.7, Assists: 6, XA: 5.1, Shots: 58, Minutes: 1980, Games: 29, KeyPasses: 44, YellowCards: 2},
		{PlayerName: "Bernardo Silva", Team: city, League: "EPL", Position: "M", Goals: 6, NPG: 6, XG: 4.9, NPXG: 4.9, Assists: 7, XA: 5.8, Shots: 41, Minutes: 2390, Games: 30, KeyPasses: 52, YellowCards: 3},
		{PlayerName: "Jeremy Doku", Team: city, League: "EPL", Position: "F", Goals: 4, NPG: 4, XG: 3.6, NPXG: 3.6, Assists: 6, XA: 4.7, Shots: 35, Minutes: 1340, Games: 25, KeyPasses: 38, YellowCards: 1},

		{PlayerName: "Lyle Foster", Team: burnley, League: "EPL", Position: "F", Goals: 8, NPG: 8, XG: 6.1, NPXG: 6.1, Assists: 2, XA: 1.6, Shots: 49, Minutes: 2100, Games: 27, KeyPasses: 19, YellowCards: 5},
		{PlayerName: "Zeki Amdouni", Team: burnley, League: "EPL", Position: "F", Goals: 6, NPG: 5, XG: 5.4, NPXG: 4.6, Assists: 2, XA: 1.9, Shots: 42, Minutes: 1760, Games: 28, KeyPasses: 21, YellowCards: 2},
		{PlayerName: "Josh Brownhill", Team: burnley, League: "EPL", Position: "M", Goals: 4, NPG: 4, XG: 2.8, NPXG: 2.8, Assists: 3, XA: 2.4, Shots: 31, Minutes: 2330, Games: 30, KeyPasses: 33, YellowCards: 4},
		{PlayerName: "Jacob Bruun Larsen", Team: burnley, League: "EPL", Position: "F", Goals: 2, NPG: 2, XG: 1.9, NPXG: 1.9, Assists: 1, XA: 1.1, Shots: 18, Minutes: 840, Games: 19, KeyPasses: 12},
	}

	contexts := []teamcontext.Context{
		{
			Team: liverpool, League: "EPL", MatchesPlayed: 30,
			XGFor: 58.4, XGAgainst: 27.1,
			HomeXGAPerMatch: 0.8, AwayXGAPerMatch: 1.1,
			PossessionPct: 58, PressingStyle: "gegenpress", DefensiveStyle: "high-line", PPDA: 8.9,
			Formation: "4-3-3", FormLastFive: "WWWDW", PointsPerGame: 2.3,
			TacticalProfile: "GEGENPRESS", ProfileConfidence: 0.85,
		},
		{
			Team: city, League: "EPL", MatchesPlayed: 30,
			XGFor: 61.2, XGAgainst: 24.3,
			HomeXGAPerMatch: 0.7, AwayXGAPerMatch: 0.9,
			PossessionPct: 65, PressingStyle: "high-press", DefensiveStyle: "high-line", PPDA: 9.6,
			Formation: "4-2-3-1", FormLastFive: "WDWWW", PointsPerGame: 2.4,
			TacticalProfile: "POSSESSION", ProfileConfidence: 0.9,
		},
		{
			Team: burnley, League: "EPL", MatchesPlayed: 30,
			XGFor: 28.6, XGAgainst: 52.8,
			HomeXGAPerMatch: 1.5, AwayXGAPerMatch: 2.1,
			PossessionPct: 41, PressingStyle: "passive", DefensiveStyle: "low-block", PPDA: 15.4,
			Formation: "5-4-1", FormLastFive: "LLDLW", PointsPerGame: 0.8,
			TacticalProfile: "LOW_BLOCK", ProfileConfidence: 0.8,
		},
	}

	referees := []teamcontext.Referee{
		{Name: "Michael Oliver", YellowsPerGame: 3.8, Strictness: "average", HomeBias: 0.05},
		{Name: "Anthony Taylor", YellowsPerGame: 4.6, Strictness: "strict", HomeBias: 0.02},
	}

	keepers := []teamcontext.Goalkeeper{
		{Team: liverpool, Saves: 84, GoalsPrevented: 4.1, SaveRate: 74, HeaderSaveRate: 78, LateSaveRate: 71},
		{Team: city, Saves: 61, GoalsPrevented: 2.6, SaveRate: 72, HeaderSaveRate: 81, LateSaveRate: 75},
		{Team: burnley, Saves: 118, GoalsPrevented: -3.2, SaveRate: 66, HeaderSaveRate: 59, LateSaveRate: 61},
	}

	return SeedData{
		Players:     players,
		Goals:       goals,
		Contexts:    contexts,
		Referees:    referees,
		Goalkeepers: keepers,
	}
}

var seasonStart = time.Date(2025, time.August, 16, 15, 0, 0, 0, time.UTC)

// seedGoals lays one team's goals out deterministically: minutes cycle
// through the match, every fifth finish is a header, every fourth goal comes
// away from home, and a scorer's first penalties goals are spot kicks.
func seedGoals(team, opponent, code string, scorers []seedScorer) []goalevent.Goal {
	var out []goalevent.Goal
	idx := 0
	for _, sc := range scorers {
		for k := 0; k < sc.goals; k++ {
			minute := 3 + (idx*11)%88
			situation := goalevent.SituationOpenPlay
			switch {
			case k < sc.penalties:
				situation = goalevent.SituationPenalty
			case idx%6 == 4:
				situation = goalevent.SituationCorner
			case idx%9 == 7:
				situation = goalevent.SituationFreekick
			}
			shot := goalevent.ShotRightFoot
			switch {
			case idx%5 == 3:
				shot = goalevent.ShotHead
			case idx%3 == 1:
				shot = goalevent.ShotLeftFoot
			}
			half := goalevent.HalfFirst
			if minute > 45 {
				half = goalevent.HalfSecond
			}

			out = append(out, goalevent.Goal{
				MatchID:      fmt.Sprintf("%s-%02d", code, idx%10),
				Date:         seasonStart.AddDate(0, 0, (idx%10)*7),
				League:       "EPL",
				Scorer:       sc.name,
				ScoringTeam:  team,
				Opponent:     opponent,
				IsHome:       idx%4 != 3,
				Half:         half,
				TimingPeriod: goalevent.PeriodForMinute(minute),
				Minute:       minute,
				Situation:    situation,
				ShotType:     shot,
				XG:           0.1 + float64(idx%7)*0.08,
				GoalNumber:   1 + idx%3,
				IsFirstGoal:  idx%3 == 0,
				IsLastGoal:   idx%3 == 2,
			})
			idx++
		}
	}
	return out
}
