package repository

import (
	"context"
	"fmt"
	"time"

	"gym-booking/internal/data/entity"
	"gym-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MembershipRepository interface {
	// FindActive mencari subscription yang window-nya memuat instant at
	// (inklusif dua ujung). Nil kalau tidak ada. Kalau ada beberapa row
	// historis overlap, ambil yang end_date paling jauh.
	FindActive(ctx context.Context, userID uuid.UUID, at time.Time) (*entity.MemberPackage, error)
	Create(ctx context.Context, mp *entity.MemberPackage) error
	FindHistory(ctx context.Context, userID uuid.UUID) ([]*entity.MemberPackage, error)
}

type membershipRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMembershipRepository(db database.PgxIface, log *zap.Logger) MembershipRepository {
	return &membershipRepository{
		db:  db,
		log: log.With(zap.String("repository", "membership")),
	}
}

const memberPackageColumns = `id, user_id, package_id, name, price, start_date, end_date, created_at`

func (r *membershipRepository) FindActive(ctx context.Context, userID uuid.UUID, at time.Time) (*entity.MemberPackage, error) {
	query := `
		SELECT ` + memberPackageColumns + `
		FROM member_packages
		WHERE user_id = $1 AND start_date <= $2 AND end_date >= $2
		ORDER BY end_date DESC
		LIMIT 1
	`

	var mp entity.MemberPackage
	err := r.db.QueryRow(ctx, query, userID, at).Scan(
		&mp.ID,
		&mp.UserID,
		&mp.PackageID,
		&mp.Name,
		&mp.Price,
		&mp.StartDate,
		&mp.EndDate,
		&mp.CreatedAt,
	)

	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find active subscription",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find active subscription for %s: %w", userID.String(), err)
	}

	return &mp, nil
}

func (r *membershipRepository) Create(ctx context.Context, mp *entity.MemberPackage) error {
	query := `
		INSERT INTO member_packages (id, user_id, package_id, name, price, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		mp.ID,
		mp.UserID,
		mp.PackageID,
		mp.Name,
		mp.Price,
		mp.StartDate,
		mp.EndDate,
		mp.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create subscription",
			zap.Error(err),
			zap.String("user_id", mp.UserID.String()),
			zap.String("package_id", mp.PackageID.String()),
		)
		return fmt.Errorf("create subscription for %s: %w", mp.UserID.String(), err)
	}

	return nil
}

func (r *membershipRepository) FindHistory(ctx context.Context, userID uuid.UUID) ([]*entity.MemberPackage, error) {
	query := `
		SELECT ` + memberPackageColumns + `
		FROM member_packages
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to list subscription history",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("list subscription history for %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var history []*entity.MemberPackage
	for rows.Next() {
		var mp entity.MemberPackage
		err := rows.Scan(
			&mp.ID,
			&mp.UserID,
			&mp.PackageID,
			&mp.Name,
			&mp.Price,
			&mp.StartDate,
			&mp.EndDate,
			&mp.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan subscription row", zap.Error(err))
			return nil, fmt.Errorf("scan subscription row: %w", err)
		}
		history = append(history, &mp)
	}

	return history, nil
}
