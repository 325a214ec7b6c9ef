package usecase

import (
	"context"
	"fmt"
	"time"

	"gym-booking/internal/data/entity"
	"gym-booking/internal/data/repository"
	"gym-booking/internal/dto/request"
	"gym-booking/internal/dto/response"
	"gym-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ClassService interface {
	GetClasses(ctx context.Context) ([]response.ClassResponse, error)
	CreateClass(ctx context.Context, req *request.CreateClassRequest) (*response.ClassResponse, error)
	ToggleClass(ctx context.Context, classID string) (*response.ClassResponse, error)
	DeleteClass(ctx context.Context, classID string) error
}

type classService struct {
	classes repository.ClassRepository
	log     *zap.Logger

	now func() time.Time
}

func NewClassService(classes repository.ClassRepository, log *zap.Logger) ClassService {
	return &classService{
		classes: classes,
		log:     log.With(zap.String("service", "class")),
		now:     time.Now,
	}
}

func (s *classService) GetClasses(ctx context.Context) ([]response.ClassResponse, error) {
	classes, err := s.classes.FindAllWithCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("get classes: %w", err)
	}

	responses := make([]response.ClassResponse, len(classes))
	for i, class := range classes {
		responses[i] = response.ClassWithCountToResponse(class)
	}
	return responses, nil
}

func (s *classService) CreateClass(ctx context.Context, req *request.CreateClassRequest) (*response.ClassResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create class validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	schedule, err := time.Parse(time.RFC3339, req.Schedule)
	if err != nil {
		return nil, fmt.Errorf("%w: schedule must be RFC3339", ErrInvalidInput)
	}

	if req.Capacity <= 0 {
		return nil, ErrCapacityNotPositive
	}

	now := s.now()
	if !schedule.After(now) {
		return nil, ErrScheduleNotInFuture
	}

	var trainerID *uuid.UUID
	if req.TrainerID != nil {
		id, err := uuid.Parse(*req.TrainerID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid trainer ID", ErrInvalidInput)
		}
		trainerID = &id
	}

	class := &entity.FitnessClass{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
		Schedule:    schedule,
		Capacity:    req.Capacity,
		IsActive:    true, // class baru langsung buka untuk booking
		TrainerID:   trainerID,
	}

	if err := s.classes.Create(ctx, class); err != nil {
		s.log.Error("Failed to create class", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create class: %w", err)
	}

	s.log.Info("Class created",
		zap.String("class_id", class.ID.String()),
		zap.String("name", class.Name),
		zap.Time("schedule", class.Schedule),
		zap.Int("capacity", class.Capacity),
	)

	resp := response.ClassToResponse(class)
	return &resp, nil
}

func (s *classService) ToggleClass(ctx context.Context, classID string) (*response.ClassResponse, error) {
	id, err := uuid.Parse(classID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid class ID", ErrInvalidInput)
	}

	class, err := s.classes.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find class: %w", err)
	}
	if class == nil {
		return nil, ErrClassNotFound
	}

	// Flip is_active
	newState := !class.IsActive
	if err := s.classes.SetActive(ctx, id, newState); err != nil {
		s.log.Error("Failed to toggle class", zap.Error(err), zap.String("class_id", classID))
		return nil, fmt.Errorf("toggle class %s: %w", classID, err)
	}

	s.log.Info("Class toggled",
		zap.String("class_id", classID),
		zap.Bool("is_active", newState),
	)

	class.IsActive = newState
	resp := response.ClassToResponse(class)
	return &resp, nil
}

func (s *classService) DeleteClass(ctx context.Context, classID string) error {
	id, err := uuid.Parse(classID)
	if err != nil {
		return fmt.Errorf("%w: invalid class ID", ErrInvalidInput)
	}

	if err := s.classes.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete class", zap.Error(err), zap.String("class_id", classID))
		return fmt.Errorf("delete class %s: %w", classID, err)
	}

	return nil
}
