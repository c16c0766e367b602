package jsonfile

import (
	"os"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/oddsforge/matchdna/internal/domain/friction"
	"github.com/oddsforge/matchdna/internal/domain/names"
)

// pairGridRecord is one curated pairing in the on-disk pair grid.
type pairGridRecord struct {
	Home             string   `json:"home" validate:"required"`
	Away             string   `json:"away" validate:"required"`
	Clash            string   `json:"clash" validate:"required"`
	Tempo            string   `json:"tempo" validate:"required"`
	GoalsModifier    float64  `json:"goals_modifier"`
	CardsModifier    float64  `json:"cards_modifier"`
	CornersModifier  float64  `json:"corners_modifier"`
	FirstHalfBias    float64  `json:"first_half_bias" validate:"gte=0,lte=1"`
	LateGoalProb     float64  `json:"late_goal_prob" validate:"gte=0,lte=1"`
	PrimaryMarkets   []string `json:"primary_markets"`
	SecondaryMarkets []string `json:"secondary_markets"`
	AvoidMarkets     []string `json:"avoid_markets"`
	Description      string   `json:"description"`
}

// LoadPairGrid reads a curated pair-friction file into a populated cache.
// These records answer pairings the profile matrix can only classify as
// default; team names are normalized at the boundary like every other
// source.
func LoadPairGrid(path string, normalizer *names.Normalizer) (*friction.PairCache, error) {
	if normalizer == nil {
		normalizer = names.NewNormalizer(names.DefaultAliases())
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "jsonfile: read pair grid %s", path)
	}
	var records []pairGridRecord
	if err := sonic.Unmarshal(payload, &records); err != nil {
		return nil, errors.Wrapf(err, "jsonfile: decode pair grid %s", path)
	}

	validate := validator.New()
	cache := friction.NewPairCache()
	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			return nil, errors.Wrapf(err, "jsonfile: pair grid record %d (%s vs %s)", i, rec.Home, rec.Away)
		}
		cache.Put(normalizer.Normalize(rec.Home), normalizer.Normalize(rec.Away), friction.Result{
			Clash:            friction.ClashType(rec.Clash),
			Tempo:            friction.Tempo(rec.Tempo),
			GoalsModifier:    rec.GoalsModifier,
			CardsModifier:    rec.CardsModifier,
			CornersModifier:  rec.CornersModifier,
			FirstHalfBias:    rec.FirstHalfBias,
			LateGoalProb:     rec.LateGoalProb,
			PrimaryMarkets:   rec.PrimaryMarkets,
			SecondaryMarkets: rec.SecondaryMarkets,
			AvoidMarkets:     rec.AvoidMarkets,
			Description:      rec.Description,
		})
	}
	return cache, nil
}
