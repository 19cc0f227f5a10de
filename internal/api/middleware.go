package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/auth"
	"github.com/CrossChainLabs-FIL/filmarket-registry/internal/observability/tracing"
)

// accountHeader carries the caller identity. The value is trusted as
// given: a caller that does not match the registry owner has its
// mutations skipped rather than rejected.
const accountHeader = "X-Account-Id"

func (s *Server) tracingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := tracing.InjectTraceID(r.Context())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		log.Ctx(r.Context()).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	})
}

func (s *Server) accountMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if account := r.Header.Get(accountHeader); account != "" {
			r = r.WithContext(auth.WithAccount(r.Context(), account))
		}
		next.ServeHTTP(w, r)
	})
}
