package middlewarex

import (
	"cmp"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/zenazn/goji/web/mutil"
)

type requestObserver interface {
	ObserveHTTPRequest(route, method, status string)
}

// Metrics counts requests by chi route pattern, so path parameters do not
// blow up label cardinality.
func Metrics(observer requestObserver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lw := mutil.WrapWriter(w)

			next.ServeHTTP(lw, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}

			status := cmp.Or(lw.Status(), http.StatusOK)

			observer.ObserveHTTPRequest(route, r.Method, strconv.Itoa(status))
		})
	}
}
