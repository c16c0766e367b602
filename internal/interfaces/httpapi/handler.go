package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/oddsforge/matchdna/internal/platform/logging"
	"github.com/oddsforge/matchdna/internal/usecase"
)

// maxBatchFixtures bounds a single slate request.
const maxBatchFixtures = 100

type Handler struct {
	analysisService *usecase.AnalysisService
	batchService    *usecase.BatchService
	dnaService      *usecase.DNAService
	profileService  *usecase.ProfileService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	analysisService *usecase.AnalysisService,
	batchService *usecase.BatchService,
	dnaService *usecase.DNAService,
	profileService *usecase.ProfileService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		analysisService: analysisService,
		batchService:    batchService,
		dnaService:      dnaService,
		profileService:  profileService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

type analyzeMatchRequest struct {
	Home string `json:"home" validate:"required"`
	Away string `json:"away" validate:"required"`
}

func (h *Handler) AnalyzeMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AnalyzeMatch")
	defer span.End()

	var req analyzeMatchRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	analysis, err := h.analysisService.AnalyzeMatch(ctx, req.Home, req.Away)
	if err != nil {
		h.logger.WarnContext(ctx, "analyze match failed",
			"home", req.Home, "away", req.Away, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, analysisToDTO(analysis))
}

type analyzeSlateRequest struct {
	Fixtures []usecase.Fixture `json:"fixtures" validate:"required,min=1,dive"`
}

func (h *Handler) AnalyzeSlate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AnalyzeSlate")
	defer span.End()

	var req analyzeSlateRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: decode request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}
	if len(req.Fixtures) > maxBatchFixtures {
		writeError(ctx, w, fmt.Errorf("%w: slate exceeds %d fixtures", usecase.ErrInvalidInput, maxBatchFixtures))
		return
	}

	results, err := h.batchService.AnalyzeSlate(ctx, req.Fixtures)
	if err != nil {
		h.logger.WarnContext(ctx, "analyze slate failed",
			"fixtures", len(req.Fixtures), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, batchResultsToDTO(results))
}

func (h *Handler) GetTeamDNA(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamDNA")
	defer span.End()

	team := r.PathValue("team")
	dna, err := h.dnaService.BuildTeam(ctx, team)
	if err != nil {
		h.logger.WarnContext(ctx, "build team dna failed", "team", team, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dnaToDTO(dna, true))
}

func (h *Handler) ListTeamPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamPlayers")
	defer span.End()

	team := r.PathValue("team")
	material, err := h.profileService.BuildTeam(ctx, team)
	if err != nil {
		h.logger.WarnContext(ctx, "build team profiles failed", "team", team, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(material.Profiles))
}

func (h *Handler) InvalidateCaches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.InvalidateCaches")
	defer span.End()

	h.dnaService.Invalidate(ctx)
	h.logger.InfoContext(ctx, "dna cache invalidated")

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "invalidated"})
}
