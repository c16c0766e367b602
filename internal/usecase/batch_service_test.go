package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalyzeSlate_MixedOutcomes(t *testing.T) {
	t.Parallel()

	svc := NewBatchService(newSeededService(0, nil), BatchConfig{Workers: 3}, nil)
	fixtures := []Fixture{
		{Home: "Liverpool", Away: "Manchester City"},
		{Home: "Manchester City", Away: "Burnley"},
		{Home: "Liverpool", Away: "Nowhere Rangers"},
	}

	results, err := svc.AnalyzeSlate(context.Background(), fixtures)
	require.NoError(t, err)
	require.Len(t, results, len(fixtures))

	for i, r := range results {
		require.Equal(t, fixtures[i], r.Fixture, "results must preserve input order")
	}
	require.NoError(t, results[0].Err)
	require.NoError(t, results[1].Err)
	require.ErrorIs(t, results[2].Err, ErrTeamNotFound)
	require.Equal(t, "Liverpool", results[0].Analysis.HomeTeam)
}

func TestAnalyzeSlate_EmptyBatch(t *testing.T) {
	t.Parallel()

	svc := NewBatchService(newSeededService(0, nil), BatchConfig{}, nil)
	_, err := svc.AnalyzeSlate(context.Background(), nil)
	require.ErrorIs(t, err, ErrInvalidInput)
}
