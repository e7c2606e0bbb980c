package middleware

import (
	"net/http"

	log "github.com/sirupsen/logrus"
)

// LogRequest logs every incoming request at debug level.
func LogRequest(userIDHeader string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.WithFields(log.Fields{
				"method":  r.Method,
				"path":    r.URL.Path,
				"user_id": r.Header.Get(userIDHeader),
				"ua":      r.Header.Get("User-Agent"),
			}).Debug(" ====> request")
			next.ServeHTTP(w, r)
		})
	}
}
