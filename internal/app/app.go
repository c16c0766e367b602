package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/oddsforge/matchdna/internal/config"
	"github.com/oddsforge/matchdna/internal/domain/friction"
	"github.com/oddsforge/matchdna/internal/domain/goalevent"
	"github.com/oddsforge/matchdna/internal/domain/names"
	"github.com/oddsforge/matchdna/internal/domain/playerprofile"
	"github.com/oddsforge/matchdna/internal/domain/teamcontext"
	"github.com/oddsforge/matchdna/internal/infrastructure/repository/jsonfile"
	"github.com/oddsforge/matchdna/internal/infrastructure/repository/memory"
	"github.com/oddsforge/matchdna/internal/infrastructure/repository/postgres"
	"github.com/oddsforge/matchdna/internal/infrastructure/webhook"
	"github.com/oddsforge/matchdna/internal/interfaces/httpapi"
	"github.com/oddsforge/matchdna/internal/platform/cache"
	"github.com/oddsforge/matchdna/internal/platform/logging"
	"github.com/oddsforge/matchdna/internal/usecase"
)

type repositories struct {
	goals    goalevent.Repository
	players  playerprofile.RawRepository
	contexts teamcontext.Repository
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	normalizer := names.NewNormalizer(names.DefaultAliases())

	repos, err := buildRepositories(cfg, normalizer)
	if err != nil {
		return nil, fmt.Errorf("build repositories: %w", err)
	}

	profileSvc := usecase.NewProfileService(repos.players, repos.goals, normalizer, logger)

	cacheTTL := cfg.CacheTTL
	if !cfg.CacheEnabled {
		// A nanosecond TTL expires entries immediately, so every request
		// rebuilds while GetOrLoad still collapses concurrent loads.
		cacheTTL = time.Nanosecond
	}
	dnaSvc := usecase.NewDNAService(profileSvc, repos.contexts, normalizer, cache.NewStore(cacheTTL), logger)

	var publisher usecase.AnalysisPublisher
	if cfg.WebhookEnabled {
		publisher = webhook.NewPublisher(webhook.PublisherConfig{
			BaseURL: cfg.WebhookBaseURL,
			Token:   cfg.WebhookToken,
			Timeout: cfg.WebhookTimeout,
		}, logger)
	}

	pairs := friction.NewPairCache()
	if cfg.PairGridFile != "" {
		loaded, err := jsonfile.LoadPairGrid(cfg.PairGridFile, normalizer)
		if err != nil {
			return nil, fmt.Errorf("load pair grid: %w", err)
		}
		pairs = loaded
		logger.Info("pair grid loaded", "file", cfg.PairGridFile, "pairs", pairs.Len())
	}

	analysisSvc := usecase.NewAnalysisService(
		normalizer,
		repos.goals,
		dnaSvc,
		pairs,
		publisher,
		usecase.AnalysisConfig{MinGoalEvents: cfg.MinGoalEvents},
		logger,
	)
	batchSvc := usecase.NewBatchService(analysisSvc, usecase.BatchConfig{Workers: cfg.BatchWorkers}, logger)

	handler := httpapi.NewHandler(analysisSvc, batchSvc, dnaSvc, profileSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func buildRepositories(cfg config.Config, normalizer *names.Normalizer) (repositories, error) {
	switch cfg.DataSource {
	case config.SourceJSON:
		source, err := jsonfile.NewSource(cfg.JSONDataDir, normalizer)
		if err != nil {
			return repositories{}, err
		}
		return repositories{
			goals:    source.Goals(),
			players:  source.Players(),
			contexts: source.Contexts(),
		}, nil
	case config.SourcePostgres:
		db, err := openDB(cfg)
		if err != nil {
			return repositories{}, err
		}
		return repositories{
			goals:    postgres.NewGoalRepository(db),
			players:  postgres.NewPlayerRepository(db),
			contexts: postgres.NewContextRepository(db),
		}, nil
	case config.SourceMemory:
		seed := memory.Seed()
		return repositories{
			goals:    memory.NewGoalRepository(seed.Goals),
			players:  memory.NewPlayerRepository(seed.Players),
			contexts: memory.NewContextRepository(seed.Contexts, seed.Referees, seed.Goalkeepers),
		}, nil
	default:
		return repositories{}, fmt.Errorf("unknown data source %q", cfg.DataSource)
	}
}
