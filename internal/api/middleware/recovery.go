package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
)

// Recovery перехватывает панику в обработчике и отвечает 500
func Recovery(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					logger.Error("%s %s - panic: %v request_id=%s\n%s",
						r.Method, r.URL.Path, rec, GetRequestID(r.Context()), debug.Stack())
					handlers.RespondInternalError(w, "")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
