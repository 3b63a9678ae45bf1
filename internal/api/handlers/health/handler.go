package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/api/handlers"
)

const pingTimeout = 2 * time.Second

type Pinger interface {
	PingContext(ctx context.Context) error
}

type Logger interface {
	Error(format string, v ...interface{})
}

type Handler struct {
	db     Pinger
	logger Logger
}

func NewHandler(db Pinger, logger Logger) *Handler {
	return &Handler{
		db:     db,
		logger: logger,
	}
}

// Handle GET /healthz
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Error("GET /healthz - Database ping failed: %v", err)
		handlers.RespondError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	handlers.RespondSuccess(w, http.StatusOK)
}
