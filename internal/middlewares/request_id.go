package middlewares

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// ExposeRequestID echoes the id assigned by middleware.RequestID back to the
// client. It must run after middleware.RequestID.
func ExposeRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := middleware.GetReqID(r.Context()); id != "" {
			w.Header().Set(middleware.RequestIDHeader, id)
		}
		next.ServeHTTP(w, r)
	})
}
