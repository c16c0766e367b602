package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerAnalysisRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/analyses", handler.AnalyzeMatch)
	mux.HandleFunc("POST /v1/analyses/slate", handler.AnalyzeSlate)
	mux.HandleFunc("GET /v1/teams/{team}/dna", handler.GetTeamDNA)
	mux.HandleFunc("GET /v1/teams/{team}/players", handler.ListTeamPlayers)
}

func registerInternalRoutes(mux *http.ServeMux, handler *Handler, internalToken string) {
	mux.Handle("POST /v1/internal/caches/invalidate", RequireInternalToken(internalToken, http.HandlerFunc(handler.InvalidateCaches)))
}
