package webhook

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/require"

	"github.com/oddsforge/matchdna/internal/domain/matchup"
	"github.com/oddsforge/matchdna/internal/platform/logging"
)

func TestPublisher_PostsAnalysis(t *testing.T) {
	var (
		gotPath string
		gotAuth string
		gotBody []byte
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	publisher := NewPublisher(PublisherConfig{
		BaseURL: server.URL,
		Token:   "secret",
	}, logging.NewNop())

	analysis := matchup.Analysis{HomeTeam: "Liverpool", AwayTeam: "Manchester City"}
	require.NoError(t, publisher.Publish(context.Background(), analysis))

	require.Equal(t, "/v1/analyses", gotPath)
	require.Equal(t, "Bearer secret", gotAuth)

	var decoded matchup.Analysis
	require.NoError(t, sonic.Unmarshal(gotBody, &decoded))
	require.Equal(t, "Liverpool", decoded.HomeTeam)
	require.Equal(t, "Manchester City", decoded.AwayTeam)
}

func TestPublisher_NonSuccessStatusIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "downstream exploded", http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewPublisher(PublisherConfig{BaseURL: server.URL}, logging.NewNop())

	err := publisher.Publish(context.Background(), matchup.Analysis{HomeTeam: "A", AwayTeam: "B"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=500")
}

func TestPublisher_RejectsBadBaseURL(t *testing.T) {
	publisher := NewPublisher(PublisherConfig{BaseURL: "ftp://queue.local"}, logging.NewNop())

	err := publisher.Publish(context.Background(), matchup.Analysis{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported scheme")
}
