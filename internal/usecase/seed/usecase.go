package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	eventTypeRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/event_type"
	"github.com/m04kA/SMC-SchedulerService/pkg/ptr"
)

var workingDays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
}

// UseCase начальное заполнение БД
// Повторный запуск ничего не дублирует
type UseCase struct {
	userRepo         UserRepository
	availabilityRepo AvailabilityRepository
	eventTypeRepo    EventTypeRepository
	txManager        TransactionManager
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	userRepo UserRepository,
	availabilityRepo AvailabilityRepository,
	eventTypeRepo EventTypeRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		userRepo:         userRepo,
		availabilityRepo: availabilityRepo,
		eventTypeRepo:    eventTypeRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// Execute создает администратора, его рабочие окна Пн-Пт и типы встреч
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp := &Response{}

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		user, created, err := uc.userRepo.CreateIfNotExists(txCtx, &domain.User{
			Username: req.Username,
			Email:    req.Email,
		})
		if err != nil {
			return fmt.Errorf("%w: create user: %v", ErrInternal, err)
		}
		resp.UserID = user.ID
		resp.UserCreated = created

		existing, err := uc.availabilityRepo.ListByUserID(txCtx, user.ID)
		if err != nil {
			return fmt.Errorf("%w: list availabilities: %v", ErrInternal, err)
		}

		// Рабочие окна создаются, только если у пользователя их ещё нет
		if len(existing) == 0 {
			items := make([]domain.Availability, 0, len(workingDays))
			for _, day := range workingDays {
				items = append(items, domain.Availability{
					UserID:    user.ID,
					DayOfWeek: day,
					StartTime: req.DayStart,
					EndTime:   req.DayEnd,
				})
			}
			if err := uc.availabilityRepo.CreateBatch(txCtx, items); err != nil {
				return fmt.Errorf("%w: create availabilities: %v", ErrInternal, err)
			}
			resp.WindowsCreated = len(items)
		}

		for _, item := range req.EventTypes {
			_, err := uc.eventTypeRepo.GetBySlug(txCtx, item.Slug)
			if err == nil {
				continue
			}
			if !errors.Is(err, eventTypeRepo.ErrEventTypeNotFound) {
				return fmt.Errorf("%w: get event type %s: %v", ErrInternal, item.Slug, err)
			}

			eventType := &domain.EventType{
				UserID:          user.ID,
				Title:           item.Title,
				Slug:            item.Slug,
				DurationMinutes: item.DurationMinutes,
			}
			if item.Description != "" {
				eventType.Description = ptr.Ptr(item.Description)
			}

			if _, err := uc.eventTypeRepo.Create(txCtx, eventType); err != nil {
				return fmt.Errorf("%w: create event type %s: %v", ErrInternal, item.Slug, err)
			}
			resp.EventTypesCreated++
		}

		return nil
	})
	if err != nil {
		uc.logger.Error("Seed: failed: %v", err)
		return nil, err
	}

	uc.logger.Info("Seed: user=%s id=%d created=%t, windows created=%d, event types created=%d",
		req.Username, resp.UserID, resp.UserCreated, resp.WindowsCreated, resp.EventTypesCreated)

	return resp, nil
}
