package repository

import (
	"context"
	"fmt"

	"gym-booking/internal/data/entity"
	"gym-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ClassRepository interface {
	Create(ctx context.Context, class *entity.FitnessClass) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FitnessClass, error)
	// FindAllWithCounts untuk listing publik: trainer + jumlah booking,
	// urut jadwal paling dekat dulu
	FindAllWithCounts(ctx context.Context) ([]*entity.ClassWithCount, error)
	SetActive(ctx context.Context, id uuid.UUID, isActive bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type classRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewClassRepository(db database.PgxIface, log *zap.Logger) ClassRepository {
	return &classRepository{
		db:  db,
		log: log.With(zap.String("repository", "class")),
	}
}

func (r *classRepository) Create(ctx context.Context, class *entity.FitnessClass) error {
	query := `
		INSERT INTO classes (id, name, description, schedule, capacity, is_active, trainer_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		class.ID,
		class.Name,
		class.Description,
		class.Schedule,
		class.Capacity,
		class.IsActive,
		class.TrainerID,
		class.CreatedAt,
		class.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create class",
			zap.Error(err),
			zap.String("name", class.Name),
		)
		return fmt.Errorf("create class %s: %w", class.Name, err)
	}

	return nil
}

func (r *classRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FitnessClass, error) {
	query := `
		SELECT id, name, description, schedule, capacity, is_active, trainer_id, created_at, updated_at
		FROM classes
		WHERE id = $1
	`

	var class entity.FitnessClass
	err := r.db.QueryRow(ctx, query, id).Scan(
		&class.ID,
		&class.Name,
		&class.Description,
		&class.Schedule,
		&class.Capacity,
		&class.IsActive,
		&class.TrainerID,
		&class.CreatedAt,
		&class.UpdatedAt,
	)

	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find class by ID",
			zap.Error(err),
			zap.String("class_id", id.String()),
		)
		return nil, fmt.Errorf("find class by ID %s: %w", id.String(), err)
	}

	return &class, nil
}

func (r *classRepository) FindAllWithCounts(ctx context.Context) ([]*entity.ClassWithCount, error) {
	query := `
		SELECT c.id, c.name, c.description, c.schedule, c.capacity, c.is_active, c.trainer_id,
		       c.created_at, c.updated_at,
		       (SELECT COUNT(*) FROM bookings b WHERE b.class_id = c.id) AS booking_count,
		       t.name AS trainer_name
		FROM classes c
		LEFT JOIN trainers t ON c.trainer_id = t.id
		ORDER BY c.schedule ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list classes", zap.Error(err))
		return nil, fmt.Errorf("list classes: %w", err)
	}
	defer rows.Close()

	var classes []*entity.ClassWithCount
	for rows.Next() {
		var class entity.ClassWithCount
		err := rows.Scan(
			&class.ID,
			&class.Name,
			&class.Description,
			&class.Schedule,
			&class.Capacity,
			&class.IsActive,
			&class.TrainerID,
			&class.CreatedAt,
			&class.UpdatedAt,
			&class.BookingCount,
			&class.TrainerName,
		)
		if err != nil {
			r.log.Error("Failed to scan class row", zap.Error(err))
			return nil, fmt.Errorf("scan class row: %w", err)
		}
		classes = append(classes, &class)
	}

	return classes, nil
}

func (r *classRepository) SetActive(ctx context.Context, id uuid.UUID, isActive bool) error {
	query := `UPDATE classes SET is_active = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, isActive)
	if err != nil {
		r.log.Error("Failed to toggle class",
			zap.Error(err),
			zap.String("class_id", id.String()),
			zap.Bool("is_active", isActive),
		)
		return fmt.Errorf("toggle class %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("class %s not found", id.String())
	}

	return nil
}

func (r *classRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Bookings ikut terhapus lewat ON DELETE CASCADE
	query := `DELETE FROM classes WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete class",
			zap.Error(err),
			zap.String("class_id", id.String()),
		)
		return fmt.Errorf("delete class %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("class %s not found", id.String())
	}

	r.log.Info("Class deleted", zap.String("class_id", id.String()))
	return nil
}
