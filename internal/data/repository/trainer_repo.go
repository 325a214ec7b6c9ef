package repository

import (
	"context"
	"fmt"

	"gym-booking/internal/data/entity"
	"gym-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TrainerRepository interface {
	Create(ctx context.Context, trainer *entity.Trainer) error
	FindAll(ctx context.Context) ([]*entity.Trainer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type trainerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTrainerRepository(db database.PgxIface, log *zap.Logger) TrainerRepository {
	return &trainerRepository{
		db:  db,
		log: log.With(zap.String("repository", "trainer")),
	}
}

func (r *trainerRepository) Create(ctx context.Context, trainer *entity.Trainer) error {
	query := `
		INSERT INTO trainers (id, name, specialty, bio, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		trainer.ID,
		trainer.Name,
		trainer.Specialty,
		trainer.Bio,
		trainer.ImageURL,
		trainer.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create trainer",
			zap.Error(err),
			zap.String("name", trainer.Name),
		)
		return fmt.Errorf("create trainer %s: %w", trainer.Name, err)
	}

	return nil
}

func (r *trainerRepository) FindAll(ctx context.Context) ([]*entity.Trainer, error) {
	query := `
		SELECT id, name, specialty, bio, image_url, created_at
		FROM trainers
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list trainers", zap.Error(err))
		return nil, fmt.Errorf("list trainers: %w", err)
	}
	defer rows.Close()

	var trainers []*entity.Trainer
	for rows.Next() {
		var trainer entity.Trainer
		err := rows.Scan(
			&trainer.ID,
			&trainer.Name,
			&trainer.Specialty,
			&trainer.Bio,
			&trainer.ImageURL,
			&trainer.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan trainer row", zap.Error(err))
			return nil, fmt.Errorf("scan trainer row: %w", err)
		}
		trainers = append(trainers, &trainer)
	}

	return trainers, nil
}

func (r *trainerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM trainers WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete trainer",
			zap.Error(err),
			zap.String("trainer_id", id.String()),
		)
		return fmt.Errorf("delete trainer %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("trainer %s not found", id.String())
	}

	return nil
}
