package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/oddsforge/matchdna/internal/domain/matchup"
	"github.com/oddsforge/matchdna/internal/platform/logging"
)

const defaultBatchWorkers = 8

// Fixture is one requested pairing in a batch run.
type Fixture struct {
	Home string `json:"home" validate:"required"`
	Away string `json:"away" validate:"required"`
}

// BatchResult pairs a fixture with its analysis or its failure. A failed
// fixture never aborts the rest of the batch.
type BatchResult struct {
	Fixture  Fixture
	Analysis matchup.Analysis
	Err      error
}

type BatchConfig struct {
	Workers int
}

// BatchService fans a slate of fixtures across a bounded worker pool.
type BatchService struct {
	analysis *AnalysisService
	cfg      BatchConfig
	logger   *logging.Logger
}

func NewBatchService(analysis *AnalysisService, cfg BatchConfig, logger *logging.Logger) *BatchService {
	if cfg.Workers <= 0 {
		cfg.Workers = defaultBatchWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &BatchService{
		analysis: analysis,
		cfg:      cfg,
		logger:   logger,
	}
}

// AnalyzeSlate runs every fixture and returns results in input order.
func (s *BatchService) AnalyzeSlate(ctx context.Context, fixtures []Fixture) ([]BatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "BatchService.AnalyzeSlate")
	defer span.End()

	if len(fixtures) == 0 {
		return nil, fmt.Errorf("%w: no fixtures in batch", ErrInvalidInput)
	}

	workers, err := ants.NewPool(s.cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("batch worker pool: %w", err)
	}
	defer workers.Release()

	results := make([]BatchResult, len(fixtures))
	var wg sync.WaitGroup
	for i, fx := range fixtures {
		i, fx := i, fx
		wg.Add(1)
		task := func() {
			defer wg.Done()
			analysis, err := s.analysis.AnalyzeMatch(ctx, fx.Home, fx.Away)
			results[i] = BatchResult{Fixture: fx, Analysis: analysis, Err: err}
		}
		if err := workers.Submit(task); err != nil {
			wg.Done()
			results[i] = BatchResult{Fixture: fx, Err: fmt.Errorf("submit batch task: %w", err)}
		}
	}
	wg.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	s.logger.InfoContext(ctx, "batch slate analyzed",
		"fixtures", len(fixtures), "failed", failed, "workers", s.cfg.Workers)
	return results, nil
}
