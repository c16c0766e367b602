package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"

	"github.com/oddsforge/matchdna/internal/domain/friction"
	"github.com/oddsforge/matchdna/internal/domain/names"
	"github.com/oddsforge/matchdna/internal/infrastructure/repository/memory"
	"github.com/oddsforge/matchdna/internal/platform/cache"
	"github.com/oddsforge/matchdna/internal/platform/logging"
	"github.com/oddsforge/matchdna/internal/usecase"
)

const testInternalToken = "internal-test-token"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	seed := memory.Seed()
	goalRepo := memory.NewGoalRepository(seed.Goals)
	playerRepo := memory.NewPlayerRepository(seed.Players)
	contextRepo := memory.NewContextRepository(seed.Contexts, seed.Referees, seed.Goalkeepers)

	normalizer := names.NewNormalizer(names.DefaultAliases())
	profiles := usecase.NewProfileService(playerRepo, goalRepo, normalizer, logging.NewNop())
	dna := usecase.NewDNAService(profiles, contextRepo, normalizer, cache.NewStore(0), logging.NewNop())
	analysis := usecase.NewAnalysisService(
		normalizer,
		goalRepo,
		dna,
		friction.NewPairCache(),
		nil,
		usecase.AnalysisConfig{},
		logging.NewNop(),
	)
	batch := usecase.NewBatchService(analysis, usecase.BatchConfig{Workers: 2}, logging.NewNop())

	handler := NewHandler(analysis, batch, dna, profiles, logging.NewNop())
	return NewRouter(handler, logging.NewNop(), nil, testInternalToken)
}

func doRequest(t *testing.T, router http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) googleResponseEnvelope {
	t.Helper()

	var envelope googleResponseEnvelope
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Equal(t, googleAPIVersion, envelope.APIVersion)
	return envelope
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	require.Nil(t, envelope.Error)
}

func TestRouter_AnalyzeMatch(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/analyses",
		`{"home":"Liverpool","away":"Man City"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	require.Nil(t, envelope.Error)

	raw, err := sonic.Marshal(envelope.Data)
	require.NoError(t, err)
	var analysis analysisDTO
	require.NoError(t, sonic.Unmarshal(raw, &analysis))

	require.Equal(t, "Liverpool", analysis.HomeTeam)
	require.Equal(t, "Manchester City", analysis.AwayTeam)
	require.NotEmpty(t, analysis.Primary)
	require.NotEmpty(t, analysis.Friction.Clash)
	require.NotEmpty(t, analysis.Confidence.Tier)
}

func TestRouter_AnalyzeMatchUnknownTeam(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/analyses",
		`{"home":"Liverpool","away":"Nowhere Rangers"}`, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	require.Equal(t, "NOT_FOUND", envelope.Error.Status)
}

func TestRouter_AnalyzeMatchRejectsBadBody(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/analyses", `{"home":"Liverpool"}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	require.Equal(t, "INVALID_ARGUMENT", envelope.Error.Status)
}

func TestRouter_AnalyzeSlate(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/analyses/slate",
		`{"fixtures":[{"home":"Liverpool","away":"Man City"},{"home":"Burnley","away":"Nowhere Rangers"}]}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	require.Nil(t, envelope.Error)

	raw, err := sonic.Marshal(envelope.Data)
	require.NoError(t, err)
	var results []batchResultDTO
	require.NoError(t, sonic.Unmarshal(raw, &results))

	require.Len(t, results, 2)
	require.NotNil(t, results[0].Analysis)
	require.Empty(t, results[0].Error)
	require.Nil(t, results[1].Analysis)
	require.NotEmpty(t, results[1].Error)
}

func TestRouter_GetTeamDNA(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/teams/Liverpool/dna", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	require.Nil(t, envelope.Error)

	raw, err := sonic.Marshal(envelope.Data)
	require.NoError(t, err)
	var dna dnaDTO
	require.NoError(t, sonic.Unmarshal(raw, &dna))

	require.Equal(t, "Liverpool", dna.Team)
	require.Len(t, dna.Axes, 15)
	require.NotEmpty(t, dna.Players)
	require.NotEmpty(t, dna.Narrative)
}

func TestRouter_GetTeamDNAByAlias(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/teams/Man%20City/dna", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	require.Nil(t, envelope.Error)

	raw, err := sonic.Marshal(envelope.Data)
	require.NoError(t, err)
	var dna dnaDTO
	require.NoError(t, sonic.Unmarshal(raw, &dna))

	// The alias resolves to the canonical roster name on the read path too.
	require.Equal(t, "Manchester City", dna.Team)
	require.Len(t, dna.Axes, 15)
}

func TestRouter_ListTeamPlayers(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/v1/teams/Burnley/players", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	require.Nil(t, envelope.Error)

	raw, err := sonic.Marshal(envelope.Data)
	require.NoError(t, err)
	var players []playerDTO
	require.NoError(t, sonic.Unmarshal(raw, &players))

	require.NotEmpty(t, players)
	for _, p := range players {
		require.Equal(t, "Burnley", p.Team)
	}
}

func TestRouter_InternalInvalidateRequiresToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/v1/internal/caches/invalidate", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/v1/internal/caches/invalidate", "",
		map[string]string{"X-Internal-Token": testInternalToken})
	require.Equal(t, http.StatusOK, rec.Code)
}
