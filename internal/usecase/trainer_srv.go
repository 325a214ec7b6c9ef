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

type TrainerService interface {
	GetTrainers(ctx context.Context) ([]response.TrainerResponse, error)
	CreateTrainer(ctx context.Context, req *request.CreateTrainerRequest) (*response.TrainerResponse, error)
	DeleteTrainer(ctx context.Context, trainerID string) error
}

type trainerService struct {
	trainers repository.TrainerRepository
	log      *zap.Logger
}

func NewTrainerService(trainers repository.TrainerRepository, log *zap.Logger) TrainerService {
	return &trainerService{
		trainers: trainers,
		log:      log.With(zap.String("service", "trainer")),
	}
}

func (s *trainerService) GetTrainers(ctx context.Context) ([]response.TrainerResponse, error) {
	trainers, err := s.trainers.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get trainers: %w", err)
	}

	responses := make([]response.TrainerResponse, len(trainers))
	for i, trainer := range trainers {
		responses[i] = response.TrainerToResponse(trainer)
	}
	return responses, nil
}

func (s *trainerService) CreateTrainer(ctx context.Context, req *request.CreateTrainerRequest) (*response.TrainerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create trainer validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	trainer := &entity.Trainer{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:      req.Name,
		Specialty: req.Specialty,
		Bio:       req.Bio,
	}

	if err := s.trainers.Create(ctx, trainer); err != nil {
		s.log.Error("Failed to create trainer", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("create trainer: %w", err)
	}

	s.log.Info("Trainer created",
		zap.String("trainer_id", trainer.ID.String()),
		zap.String("name", trainer.Name),
	)

	resp := response.TrainerToResponse(trainer)
	return &resp, nil
}

func (s *trainerService) DeleteTrainer(ctx context.Context, trainerID string) error {
	id, err := uuid.Parse(trainerID)
	if err != nil {
		return fmt.Errorf("%w: invalid trainer ID", ErrInvalidInput)
	}

	if err := s.trainers.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete trainer", zap.Error(err), zap.String("trainer_id", trainerID))
		return fmt.Errorf("delete trainer %s: %w", trainerID, err)
	}

	return nil
}
