package event_types

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SchedulerService/internal/domain"
	eventTypeRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/event_type"
	userRepo "github.com/m04kA/SMC-SchedulerService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SchedulerService/internal/service/event_types/models"
	"github.com/m04kA/SMC-SchedulerService/pkg/validation"
)

// Service сервис для работы с типами встреч администратора
type Service struct {
	eventTypeRepo EventTypeRepository
	userRepo      UserRepository
	adminUserID   int64
	logger        Logger
}

// NewService создает новый экземпляр сервиса типов встреч
// Все создаваемые типы встреч принадлежат пользователю adminUserID
func NewService(
	eventTypeRepo EventTypeRepository,
	userRepo UserRepository,
	adminUserID int64,
	logger Logger,
) *Service {
	return &Service{
		eventTypeRepo: eventTypeRepo,
		userRepo:      userRepo,
		adminUserID:   adminUserID,
		logger:        logger,
	}
}

// Create создает новый тип встречи
// Занятый slug возвращается как ErrSlugTaken, в том числе при гонке (нарушение UNIQUE)
func (s *Service) Create(ctx context.Context, req *models.CreateEventTypeRequest) (*models.EventTypeResponse, error) {
	normalize(req)
	s.logger.Info("Create: creating event type slug=%s, duration=%d", req.Slug, req.DurationMinutes)

	// 1. Валидируем входные данные
	if err := validation.Struct(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Проверяем, что slug свободен
	_, err := s.eventTypeRepo.GetBySlug(ctx, req.Slug)
	if err == nil {
		s.logger.Warn("Create: slug=%s already exists", req.Slug)
		return nil, ErrSlugTaken
	}
	if !errors.Is(err, eventTypeRepo.ErrEventTypeNotFound) {
		s.logger.Error("Create: failed to check slug=%s: %v", req.Slug, err)
		return nil, fmt.Errorf("%w: Create - check slug: %v", ErrInternal, err)
	}

	// 3. Создаем тип встречи администратора
	created, err := s.eventTypeRepo.Create(ctx, &domain.EventType{
		UserID:          s.adminUserID,
		Title:           req.Title,
		Slug:            req.Slug,
		DurationMinutes: req.DurationMinutes,
		Description:     req.Description,
	})
	if err != nil {
		if errors.Is(err, eventTypeRepo.ErrDuplicateSlug) {
			s.logger.Warn("Create: slug=%s taken concurrently", req.Slug)
			return nil, ErrSlugTaken
		}
		s.logger.Error("Create: failed to create event type slug=%s: %v", req.Slug, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created event type id=%d slug=%s", created.ID, created.Slug)

	resp := models.FromDomainEventType(created, "")
	return &resp, nil
}

// Overview возвращает администратора и его типы встреч
func (s *Service) Overview(ctx context.Context) (*models.OverviewResponse, error) {
	user, err := s.userRepo.GetByID(ctx, s.adminUserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Overview: admin user id=%d not found", s.adminUserID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("Overview: failed to get user id=%d: %v", s.adminUserID, err)
		return nil, fmt.Errorf("%w: Overview - get user: %v", ErrInternal, err)
	}

	eventTypes, err := s.eventTypeRepo.ListByUserID(ctx, user.ID)
	if err != nil {
		s.logger.Error("Overview: failed to list event types for user=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Overview - list event types: %v", ErrInternal, err)
	}

	resp := &models.OverviewResponse{
		User:       models.FromDomainUser(user),
		EventTypes: make([]models.EventTypeResponse, 0, len(eventTypes)),
	}
	for _, eventType := range eventTypes {
		resp.EventTypes = append(resp.EventTypes, models.FromDomainEventType(eventType, user.Username))
	}

	return resp, nil
}

// GetPublic находит тип встречи по slug и проверяет, что он принадлежит username
func (s *Service) GetPublic(ctx context.Context, username, slug string) (*domain.EventType, error) {
	eventType, err := s.eventTypeRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, eventTypeRepo.ErrEventTypeNotFound) {
			return nil, ErrEventTypeNotFound
		}
		s.logger.Error("GetPublic: failed to get event type slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetPublic - repository error: %v", ErrInternal, err)
	}

	if !eventType.BelongsTo(username) {
		s.logger.Warn("GetPublic: event type slug=%s does not belong to %s", slug, username)
		return nil, ErrEventTypeNotFound
	}

	return eventType, nil
}

func normalize(req *models.CreateEventTypeRequest) {
	req.Title = strings.TrimSpace(req.Title)
	req.Slug = strings.TrimSpace(req.Slug)
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			req.Description = nil
		} else {
			req.Description = &description
		}
	}
}
