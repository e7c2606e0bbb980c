package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/2beens/trainingload/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

// PanicRecovery turns a handler panic into a 500, logging the route and the
// caller's user id.
func PanicRecovery(metricsManager *metrics.Manager, userIDHeader string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				log.WithFields(log.Fields{
					"route":   routeName(r),
					"method":  r.Method,
					"user_id": r.Header.Get(userIDHeader),
					"panic":   fmt.Sprint(recovered),
				}).Errorf("handler panic:\n%s", debug.Stack())
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
