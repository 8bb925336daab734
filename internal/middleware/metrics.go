package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// unmatchedRoute labels requests that no route pattern matched (404s, 405s).
const unmatchedRoute = "unmatched"

// RequestObserver receives one observation per served request.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, seconds float64)
}

// NewMetrics returns a middleware that reports every request to obs, labelled
// by the chi route pattern rather than the raw path.
func NewMetrics(obs RequestObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := routePattern(r)
			if route == "" {
				route = unmatchedRoute
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			obs.ObserveRequest(r.Method, route, status, time.Since(start).Seconds())
		})
	}
}
