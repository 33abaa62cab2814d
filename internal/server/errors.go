package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/learncheck/learncheck/internal/llm"
	"github.com/learncheck/learncheck/internal/material"
	"github.com/learncheck/learncheck/internal/pipeline"
)

// errorBody is the JSON envelope for every failed request. Error is a
// stable machine-readable kind; Details is human-readable.
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, kind, details string) {
	writeJSON(w, status, errorBody{Error: kind, Details: details})
}

// writeDomainError maps domain failures onto HTTP statuses and stable
// error kinds.
func (s *Server) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		qualityErr  *pipeline.QualityError
		rateLimit   *llm.ErrRateLimit
		unavailable *llm.ErrProviderUnavailable
	)

	switch {
	case errors.Is(err, material.ErrNotFound):
		writeError(w, http.StatusNotFound, "material_not_found", err.Error())
	case errors.Is(err, material.ErrEmptyMaterial):
		writeError(w, http.StatusUnprocessableEntity, "empty_material", err.Error())
	case errors.As(err, &qualityErr):
		writeError(w, http.StatusUnprocessableEntity, "quiz_quality", err.Error())
	case errors.As(err, &rateLimit), errors.As(err, &unavailable):
		writeError(w, http.StatusBadGateway, "provider_unavailable", err.Error())
	case errors.Is(err, r.Context().Err()) && r.Context().Err() != nil:
		writeError(w, http.StatusGatewayTimeout, "timeout", err.Error())
	default:
		s.log.Error("unhandled request error",
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "internal", "internal server error")
	}
}
