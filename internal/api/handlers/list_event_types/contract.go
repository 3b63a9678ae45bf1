package list_event_types

import (
	"context"

	"github.com/m04kA/SMC-SchedulerService/internal/service/event_types/models"
)

type EventTypeService interface {
	Overview(ctx context.Context) (*models.OverviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
