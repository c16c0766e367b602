package teamdna

import (
	"github.com/oddsforge/matchdna/internal/domain/goalevent"
	"github.com/oddsforge/matchdna/internal/domain/playerprofile"
)

type VolumeProfile string

const (
	VolumeHighScoring VolumeProfile = "HIGH_SCORING"
	VolumeAverage     VolumeProfile = "AVERAGE"
	VolumeLowScoring  VolumeProfile = "LOW_SCORING"
)

type TimingProfile string

const (
	TimingDiesel        TimingProfile = "DIESEL"
	TimingEarlyStarters TimingProfile = "EARLY_STARTERS"
	TimingClutchTeam    TimingProfile = "CLUTCH_TEAM"
	TimingBalanced      TimingProfile = "BALANCED"
)

type DependencyProfile string

const (
	DependencyMVP         DependencyProfile = "MVP_DEPENDENT"
	DependencyTop3        DependencyProfile = "TOP3_DEPENDENT"
	DependencyDistributed DependencyProfile = "DISTRIBUTED"
)

type StyleProfile string

const (
	StyleOpenPlayDominant StyleProfile = "OPEN_PLAY_DOMINANT"
	StyleSetPieceThreat   StyleProfile = "SET_PIECE_THREAT"
	StyleAerialThreat     StyleProfile = "AERIAL_THREAT"
	StylePenaltyReliant   StyleProfile = "PENALTY_RELIANT"
	StyleBalanced         StyleProfile = "BALANCED_STYLE"
)

type HomeAwayProfile string

const (
	HomeAwayFortress     HomeAwayProfile = "FORTRESS"
	HomeAwayRoadWarriors HomeAwayProfile = "ROAD_WARRIORS"
	HomeAwayBalanced     HomeAwayProfile = "BALANCED"
)

type EfficiencyProfile string

const (
	EfficiencyClinical EfficiencyProfile = "CLINICAL_TEAM"
	EfficiencyAverage  EfficiencyProfile = "AVERAGE"
	EfficiencyWasteful EfficiencyProfile = "WASTEFUL_TEAM"
)

type BenchProfile string

const (
	BenchStrong  BenchProfile = "STRONG_BENCH"
	BenchAverage BenchProfile = "AVERAGE_BENCH"
	BenchWeak    BenchProfile = "WEAK_BENCH"
)

type PenaltyProfile string

const (
	PenaltyReliable PenaltyProfile = "RELIABLE"
	PenaltyAverage  PenaltyProfile = "AVERAGE"
	PenaltyNoData   PenaltyProfile = "NO_DATA"
)

type CreativityProfile string

const (
	CreativityHub        CreativityProfile = "CREATIVE_HUB"
	CreativityIndividual CreativityProfile = "INDIVIDUAL_BRILLIANCE"
	CreativityCollective CreativityProfile = "COLLECTIVE"
)

type FormProfile string

const (
	FormRising    FormProfile = "RISING"
	FormStable    FormProfile = "STABLE"
	FormDeclining FormProfile = "DECLINING"
)

// Axis is one of the fifteen continuous DNA dimensions, all in [0,100].
type Axis string

const (
	AxisPressingIntensity     Axis = "pressing_intensity"
	AxisPossessionControl     Axis = "possession_control"
	AxisVerticality           Axis = "verticality"
	AxisWidePlay              Axis = "wide_play"
	AxisSetPieceThreat        Axis = "set_piece_threat"
	AxisClinicalFinishing     Axis = "clinical_finishing"
	AxisBlockDepth            Axis = "block_depth"
	AxisDefensiveCompactness  Axis = "defensive_compactness"
	AxisAerialResistance      Axis = "aerial_resistance"
	AxisTransitionDefense     Axis = "transition_defense"
	AxisGoalkeeperReliability Axis = "goalkeeper_reliability"
	AxisDieselFactor          Axis = "diesel_factor"
	AxisFirstHalfIntensity    Axis = "first_half_intensity"
	AxisClutchFactor          Axis = "clutch_factor"
	AxisHomeDominance         Axis = "home_dominance"
)

// AllAxes in canonical order; every iteration over axes goes through this
// slice so output ordering stays deterministic.
var AllAxes = []Axis{
	AxisPressingIntensity,
	AxisPossessionControl,
	AxisVerticality,
	AxisWidePlay,
	AxisSetPieceThreat,
	AxisClinicalFinishing,
	AxisBlockDepth,
	AxisDefensiveCompactness,
	AxisAerialResistance,
	AxisTransitionDefense,
	AxisGoalkeeperReliability,
	AxisDieselFactor,
	AxisFirstHalfIntensity,
	AxisClutchFactor,
	AxisHomeDominance,
}

const (
	// ForceThreshold and WeaknessThreshold bound the force/weakness bands.
	ForceThreshold    = 65.0
	WeaknessThreshold = 35.0
	// StrongBandHigh / StrongBandLow mark the x1.2 edge multiplier bands.
	StrongBandHigh = 75.0
	StrongBandLow  = 25.0
)

// AxisScore pairs an axis with its value for sorted force/weakness lists.
type AxisScore struct {
	Axis  Axis
	Score float64
}

// TacticalProfile is one of the 12 canonical style labels.
type TacticalProfile string

const (
	ProfilePossession     TacticalProfile = "POSSESSION"
	ProfileGegenpress     TacticalProfile = "GEGENPRESS"
	ProfileWideAttack     TacticalProfile = "WIDE_ATTACK"
	ProfileDirectAttack   TacticalProfile = "DIRECT_ATTACK"
	ProfileLowBlock       TacticalProfile = "LOW_BLOCK"
	ProfileMidBlock       TacticalProfile = "MID_BLOCK"
	ProfileParkTheBus     TacticalProfile = "PARK_THE_BUS"
	ProfileTransition     TacticalProfile = "TRANSITION"
	ProfileAdaptive       TacticalProfile = "ADAPTIVE"
	ProfileBalanced       TacticalProfile = "BALANCED"
	ProfileHomeDominant   TacticalProfile = "HOME_DOMINANT"
	ProfileScoreDependent TacticalProfile = "SCORE_DEPENDENT"
)

// AllProfiles in canonical order, the friction matrix dimension.
var AllProfiles = []TacticalProfile{
	ProfilePossession,
	ProfileGegenpress,
	ProfileWideAttack,
	ProfileDirectAttack,
	ProfileLowBlock,
	ProfileMidBlock,
	ProfileParkTheBus,
	ProfileTransition,
	ProfileAdaptive,
	ProfileBalanced,
	ProfileHomeDominant,
	ProfileScoreDependent,
}

// ProfileFamily groups the 12 labels.
type ProfileFamily string

const (
	FamilyOffensive  ProfileFamily = "OFFENSIVE"
	FamilyDefensive  ProfileFamily = "DEFENSIVE"
	FamilyHybrid     ProfileFamily = "HYBRID"
	FamilyContextual ProfileFamily = "CONTEXTUAL"
)

var profileFamilies = map[TacticalProfile]ProfileFamily{
	ProfilePossession:     FamilyOffensive,
	ProfileGegenpress:     FamilyOffensive,
	ProfileWideAttack:     FamilyOffensive,
	ProfileDirectAttack:   FamilyOffensive,
	ProfileLowBlock:       FamilyDefensive,
	ProfileMidBlock:       FamilyDefensive,
	ProfileParkTheBus:     FamilyDefensive,
	ProfileTransition:     FamilyHybrid,
	ProfileAdaptive:       FamilyHybrid,
	ProfileBalanced:       FamilyHybrid,
	ProfileHomeDominant:   FamilyContextual,
	ProfileScoreDependent: FamilyContextual,
}

// Family returns the tactical family of a profile; unknown labels map to HYBRID.
func (p TacticalProfile) Family() ProfileFamily {
	if fam, ok := profileFamilies[p]; ok {
		return fam
	}
	return FamilyHybrid
}

// Valid reports whether p is one of the 12 canonical labels.
func (p TacticalProfile) Valid() bool {
	_, ok := profileFamilies[p]
	return ok
}

type MarketAction string

const (
	ActionBack MarketAction = "BACK"
	ActionFade MarketAction = "FADE"
)

type MarketDirection string

const (
	DirectionFor     MarketDirection = "FOR"
	DirectionAgainst MarketDirection = "AGAINST"
)

type EdgeConfidence string

const (
	EdgeConfidenceLow    EdgeConfidence = "LOW"
	EdgeConfidenceMedium EdgeConfidence = "MEDIUM"
	EdgeConfidenceHigh   EdgeConfidence = "HIGH"
)

// MarketEdge is one exploitable market derived from a force or weakness.
type MarketEdge struct {
	Market     string
	Action     MarketAction
	Direction  MarketDirection
	EdgeType   string
	Edge       float64
	Confidence EdgeConfidence
	Reason     string
	Detail     string
}

// DNA is the full tactical fingerprint of one team.
type DNA struct {
	Team    string
	League  string
	Matches int

	// Volume group.
	Goals             int
	XG                float64
	Shots             int
	GoalsPerMatch     float64
	XGPerMatch        float64
	XGOverperformance float64
	Volume            VolumeProfile

	// Timing group.
	PctFirstHalf  float64
	PctSecondHalf float64
	PctEarly      float64
	PctClutch     float64
	PeakPeriod    goalevent.TimingPeriod
	Timing        TimingProfile

	// Dependency group.
	TopScorer            string
	TopScorerShare       float64
	Top3Share            float64
	DistinctScorers      int
	Dependency           DependencyProfile
	SuperSubs            []string
	HotStreakPlayers     []string
	ColdStreakPlayers    []string
	RegressionCandidates []string

	// Style group.
	PctOpenPlay float64
	PctSetPiece float64
	PctPenalty  float64
	PctHeader   float64
	Style       StyleProfile

	// Home/away group.
	HomeAwayRatio float64
	HomeAway      HomeAwayProfile

	// Secondary tagged profiles.
	Efficiency EfficiencyProfile
	Bench      BenchProfile
	Penalty    PenaltyProfile
	Creativity CreativityProfile
	Form       FormProfile

	// Continuous axes and their classified extremes.
	Axes       map[Axis]float64
	Forces     []AxisScore
	Weaknesses []AxisScore

	// Vulnerability tags derived from weaknesses, consumed by the matchup
	// cross-match catalogue.
	VulnerabilityTags []string

	Profile           TacticalProfile
	ProfileConfidence float64
	ProfileSource     string // "external" or "derived"

	ExploitFor     []MarketEdge
	ExploitAgainst []MarketEdge

	Players   []playerprofile.Profile
	Narrative string

	// PopulatedSections counts filled DNA sections out of SectionCount;
	// DataQuality is the same as a fraction.
	PopulatedSections int
	DataQuality       float64
}

// SectionCount is the number of DNA sections tracked for data quality.
const SectionCount = 8

// ForceList returns axes at or above the force threshold, best first.
func (d DNA) ForceList() []AxisScore { return d.Forces }

// IsDefault reports the zero-volume fallback record.
func (d DNA) IsDefault() bool { return len(d.Players) == 0 }
