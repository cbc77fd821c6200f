package backendtest

import (
	"context"
	"net/http"

	"github.com/MKhiriev/guest-list-admin/internal/utils"
)

type subjectCtxKey struct{}

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(utils.RequestIDHeader)
		if !utils.ValidRequestID(requestID) {
			requestID = ""
		}

		s.mu.Lock()
		s.requestIDs = append(s.requestIDs, requestID)
		s.mu.Unlock()

		if requestID != "" {
			w.Header().Set(utils.RequestIDHeader, requestID)
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withInjectedFailure(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		var f *failure
		if len(s.failures) > 0 {
			f = &s.failures[0]
			s.failures = s.failures[1:]
		}
		s.mu.Unlock()

		if f != nil {
			utils.WriteDetail(w, f.detail, f.status)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// auth rejects requests without a valid bearer token with 401, like the
// backend's OAuth2 dependency.
func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			w.Header().Set("WWW-Authenticate", "Bearer")
			utils.WriteDetail(w, "Not authenticated", http.StatusUnauthorized)
			return
		}

		subject, err := utils.ValidateJWTToken(token, s.currentSignKey(), tokenIssuer)
		if err != nil {
			w.Header().Set("WWW-Authenticate", "Bearer")
			utils.WriteDetail(w, "Could not validate credentials", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), subjectCtxKey{}, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
