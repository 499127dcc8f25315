package app

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/a11ykit/achecker-client/internal/checker"
)

// handleReport serves GET /v1/reports?uri=&guide=&id=. The configured web
// service ID is used when the query carries none.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := checker.Options{
		URI:   q.Get("uri"),
		ID:    q.Get("id"),
		Guide: q.Get("guide"),
	}
	if opts.ID == "" {
		opts.ID = s.cfg.ServiceID
	}
	if opts.Guide == "" {
		opts.Guide = s.cfg.Guide
	}

	rep, err := s.checker.Validate(r.Context(), opts)
	if err != nil {
		s.logger.Info("report request failed",
			"request_id", requestIDFrom(r.Context()),
			"uri", opts.URI,
			"err", err,
		)
		writeError(w, statusFor(err), err)
		return
	}

	writeJSON(w, http.StatusOK, rep)
}

func statusFor(err error) int {
	var ferr *checker.FetchError
	var perr *checker.ParseError

	switch {
	case checker.IsInputError(err):
		return http.StatusBadRequest
	case errors.Is(err, checker.ErrInvalidCredential):
		return http.StatusUnauthorized
	case errors.As(err, &ferr), errors.As(err, &perr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
