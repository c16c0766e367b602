package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oddsforge/matchdna/internal/usecase"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid input", fmt.Errorf("%w: empty team", usecase.ErrInvalidInput), http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"team not found", usecase.ErrTeamNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"source unavailable", usecase.ErrSourceUnavailable, http.StatusServiceUnavailable, "UNAVAILABLE"},
		{"data integrity", usecase.ErrDataIntegrity, http.StatusUnprocessableEntity, "FAILED_PRECONDITION"},
		{"insufficient data", usecase.ErrInsufficientData, http.StatusUnprocessableEntity, "FAILED_PRECONDITION"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mapped := mapError(context.Background(), tc.err)
			require.Equal(t, tc.wantStatus, mapped.HTTPStatus)
			require.Equal(t, tc.wantCode, mapped.Status)
		})
	}
}
