package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Logging пишет строку access-лога на каждый запрос
func Logging(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			duration := time.Since(start)
			requestID := GetRequestID(r.Context())
			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error("%s %s - %d (%s, %d bytes) request_id=%s", r.Method, r.URL.Path, rec.status, duration, rec.bytes, requestID)
			case rec.status >= http.StatusBadRequest:
				logger.Warn("%s %s - %d (%s, %d bytes) request_id=%s", r.Method, r.URL.Path, rec.status, duration, rec.bytes, requestID)
			default:
				logger.Info("%s %s - %d (%s, %d bytes) request_id=%s", r.Method, r.URL.Path, rec.status, duration, rec.bytes, requestID)
			}
		})
	}
}
