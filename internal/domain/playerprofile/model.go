package playerprofile

import (
	"context"

	"github.com/oddsforge/matchdna/internal/domain/goalevent"
)

// RawPlayer is the merged season aggregate for one (player, team) pair as
// delivered by a source adapter.
type RawPlayer struct {
	PlayerName  string  `json:"player_name" validate:"required"`
	Team        string  `json:"team" validate:"required"`
	League      string  `json:"league"`
	Position    string  `json:"position"`
	Goals       int     `json:"goals" validate:"gte=0"`
	NPG         int     `json:"npg" validate:"gte=0"`
	XG          float64 `json:"xG" validate:"gte=0"`
	NPXG        float64 `json:"npxG" validate:"gte=0"`
	Assists     int     `json:"assists" validate:"gte=0"`
	XA          float64 `json:"xA" validate:"gte=0"`
	Shots       int     `json:"shots" validate:"gte=0"`
	Minutes     int     `json:"time" validate:"gte=0"`
	Games       int     `json:"games" validate:"gte=0"`
	XGChain     float64 `json:"xGChain"`
	XGBuildup   float64 `json:"xGBuildup"`
	KeyPasses   int     `json:"key_passes" validate:"gte=0"`
	YellowCards int     `json:"yellow_cards" validate:"gte=0"`
	RedCards    int     `json:"red_cards" validate:"gte=0"`
}

// RawRepository reads raw player aggregates, de-duplicated by the
// (player, team) composite key so transfers appear once per club.
type RawRepository interface {
	ListAll(ctx context.Context) ([]RawPlayer, error)
	ListByTeam(ctx context.Context, team string) ([]RawPlayer, error)
}

const TagUnknown = "UNKNOWN"

type PlayingTime string

const (
	PlayingSuperSub          PlayingTime = "SUPER_SUB"
	PlayingUndisputedStarter PlayingTime = "UNDISPUTED_STARTER"
	PlayingStarter           PlayingTime = "STARTER"
	PlayingRegular           PlayingTime = "REGULAR"
	PlayingRotation          PlayingTime = "ROTATION"
	PlayingBench             PlayingTime = "BENCH"
	PlayingTimeUnknown       PlayingTime = TagUnknown
)

type FinishingTrend string

const (
	TrendHotStreak FinishingTrend = "HOT_STREAK"
	TrendClinical  FinishingTrend = "CLINICAL"
	TrendExpected  FinishingTrend = "EXPECTED"
	TrendCold      FinishingTrend = "COLD"
	TrendWasteful  FinishingTrend = "WASTEFUL"
	TrendUnknown   FinishingTrend = TagUnknown
)

type ShotQuality string

const (
	ShotEliteFinisher ShotQuality = "ELITE_FINISHER"
	ShotClinical      ShotQuality = "CLINICAL"
	ShotEfficient     ShotQuality = "EFFICIENT"
	ShotVolumeShooter ShotQuality = "VOLUME_SHOOTER"
	ShotWasteful      ShotQuality = "WASTEFUL"
	ShotAverage       ShotQuality = "AVERAGE"
	ShotLowVolume     ShotQuality = "LOW_VOLUME"
	ShotUnknown       ShotQuality = TagUnknown
)

type CardsProfile string

const (
	CardsDirty      CardsProfile = "DIRTY"
	CardsAggressive CardsProfile = "AGGRESSIVE"
	CardsClean      CardsProfile = "CLEAN"
	CardsUnknown    CardsProfile = TagUnknown
)

type Creativity string

const (
	CreatorElite        Creativity = "ELITE_CREATOR"
	CreatorHigh         Creativity = "HIGH_CREATOR"
	CreatorPureFinisher Creativity = "PURE_FINISHER"
	CreatorCreative     Creativity = "CREATIVE"
	CreatorLimited      Creativity = "LIMITED"
	CreatorUnknown      Creativity = TagUnknown
)

type TimingProfile string

const (
	TimingDiesel      TimingProfile = "DIESEL"
	TimingEarlyBird   TimingProfile = "EARLY_BIRD"
	TimingClutch      TimingProfile = "CLUTCH"
	TimingEarlyKiller TimingProfile = "EARLY_KILLER"
	TimingBalanced    TimingProfile = "BALANCED"
	TimingUnknown     TimingProfile = TagUnknown
)

type HomeAwayProfile string

const (
	VenueHomeSpecialist HomeAwayProfile = "HOME_SPECIALIST"
	VenueAwaySpecialist HomeAwayProfile = "AWAY_SPECIALIST"
	VenueBalanced       HomeAwayProfile = "BALANCED"
	VenueUnknown        HomeAwayProfile = TagUnknown
)

type Dependency string

const (
	DependencyMVP         Dependency = "MVP"
	DependencyKeyPlayer   Dependency = "KEY_PLAYER"
	DependencyContributor Dependency = "CONTRIBUTOR"
	DependencyRotational  Dependency = "ROTATIONAL"
	DependencyUnknown     Dependency = TagUnknown
)

// Profile is the immutable derived record for one player. Every field is a
// pure function of the raw aggregate, the player's goal stream and the team
// goal total; rebuilding from the same inputs yields an equal record.
type Profile struct {
	Name string
	Team string

	// Raw volumes carried through for team summation.
	Goals       int
	NPG         int
	XG          float64
	XA          float64
	Assists     int
	Shots       int
	Minutes     int
	Games       int
	YellowCards int
	RedCards    int
	XGChain     float64
	XGBuildup   float64
	KeyPasses   int

	// Goal splits tallied from the event stream.
	GoalsByHalf   map[goalevent.Half]int
	GoalsByPeriod map[goalevent.TimingPeriod]int
	GoalsOpenPlay int
	GoalsSetPiece int
	GoalsPenalty  int
	GoalsHeader   int
	GoalsHome     int
	GoalsAway     int
	FirstGoals    int
	LastGoals     int
	TalliedGoals  int

	// Derived rates, zero-guarded.
	GoalsPer90        float64
	XGPer90           float64
	XAPer90           float64
	CardsPer90        float64
	MinutesPerGoal    float64
	MinutesPerGame    float64
	ConversionRate    float64
	XGPerShot         float64
	XGOverperformance float64
	PctFirstHalf      float64
	PctSecondHalf     float64
	PctClutch         float64
	PctEarly          float64
	PctOpenPlay       float64
	PctSetPiece       float64
	PctHeader         float64
	PctHome           float64
	HomeAwayRatio     float64
	PenaltyGoals      int
	IsPenaltyTaker    bool
	TeamShare         float64

	// Categorical tags.
	PlayingTime    PlayingTime
	FinishingTrend FinishingTrend
	ShotQuality    ShotQuality
	Cards          CardsProfile
	Creativity     Creativity
	Timing         TimingProfile
	HomeAway       HomeAwayProfile
	Dependency     Dependency

	// Composite market scores, clamped at zero.
	FirstScorerScore  float64
	LastScorerScore   float64
	AnytimeValueScore float64
}
