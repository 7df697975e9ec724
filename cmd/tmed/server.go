package main

import (
	"encoding/json"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/previewkit/tme"
)

// server exposes the resolver operations over a JSON HTTP API.
type server struct {
	resolver tme.Resolver
	logger   zerolog.Logger
	router   chi.Router
}

func newServer(resolver tme.Resolver, logger zerolog.Logger) *server {
	s := &server{
		resolver: resolver,
		logger:   logger,
	}

	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/api/v1/resource/{username}", s.handleResource)
	r.Get("/api/v1/resource/{username}/{postID}", s.handlePostResource)
	r.Get("/api/v1/posts/{username}", s.handlePosts)

	s.router = r
	return s
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *server) handleResource(w http.ResponseWriter, r *http.Request) {
	res, err := s.resolver.Resolve(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

func (s *server) handlePostResource(w http.ResponseWriter, r *http.Request) {
	input := chi.URLParam(r, "username") + "/" + chi.URLParam(r, "postID")
	res, err := s.resolver.Resolve(r.Context(), input)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

func (s *server) handlePosts(w http.ResponseWriter, r *http.Request) {
	posts, err := s.resolver.Posts(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, posts)
}

// requestLogger tags every request with an id and logs its outcome.
func (s *server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		begin := time.Now()
		next.ServeHTTP(ww, r)

		s.logger.Info().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(begin)).
			Msg("request")
	})
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("write response")
	}
}

func (s *server) writeError(w http.ResponseWriter, err error) {
	s.writeJSON(w, statusForCode(tme.ErrorCode(err)), tme.AsErrorResult(err))
}

// statusForCode maps the error taxonomy onto HTTP statuses.
func statusForCode(code string) int {
	switch code {
	case tme.ENOTFOUND, tme.EUNKNOWN:
		return http.StatusNotFound
	case tme.EPRIVATE:
		return http.StatusUnprocessableEntity
	case tme.EINVALID:
		return http.StatusBadRequest
	case tme.EINTERNAL:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
