package repository

import (
	"context"
	"fmt"

	"gym-booking/internal/data/entity"
	"gym-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PackageWithMemberCount untuk listing admin (katalog + jumlah pembeli)
type PackageWithMemberCount struct {
	entity.Package
	MemberCount int
}

type PackageRepository interface {
	Create(ctx context.Context, pkg *entity.Package) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error)
	FindAllActive(ctx context.Context) ([]*entity.Package, error)
	FindAllWithMemberCounts(ctx context.Context) ([]*PackageWithMemberCount, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type packageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPackageRepository(db database.PgxIface, log *zap.Logger) PackageRepository {
	return &packageRepository{
		db:  db,
		log: log.With(zap.String("repository", "package")),
	}
}

func (r *packageRepository) Create(ctx context.Context, pkg *entity.Package) error {
	query := `
		INSERT INTO packages (id, name, price, duration_days, description, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		pkg.ID,
		pkg.Name,
		pkg.Price,
		pkg.DurationDays,
		pkg.Description,
		pkg.IsActive,
		pkg.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create package",
			zap.Error(err),
			zap.String("name", pkg.Name),
		)
		return fmt.Errorf("create package %s: %w", pkg.Name, err)
	}

	return nil
}

func (r *packageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error) {
	query := `
		SELECT id, name, price, duration_days, description, is_active, created_at
		FROM packages
		WHERE id = $1
	`

	var pkg entity.Package
	err := r.db.QueryRow(ctx, query, id).Scan(
		&pkg.ID,
		&pkg.Name,
		&pkg.Price,
		&pkg.DurationDays,
		&pkg.Description,
		&pkg.IsActive,
		&pkg.CreatedAt,
	)

	if isNoRows(err) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find package by ID",
			zap.Error(err),
			zap.String("package_id", id.String()),
		)
		return nil, fmt.Errorf("find package by ID %s: %w", id.String(), err)
	}

	return &pkg, nil
}

func (r *packageRepository) FindAllActive(ctx context.Context) ([]*entity.Package, error) {
	query := `
		SELECT id, name, price, duration_days, description, is_active, created_at
		FROM packages
		WHERE is_active = TRUE
		ORDER BY price ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list active packages", zap.Error(err))
		return nil, fmt.Errorf("list active packages: %w", err)
	}
	defer rows.Close()

	var packages []*entity.Package
	for rows.Next() {
		var pkg entity.Package
		err := rows.Scan(
			&pkg.ID,
			&pkg.Name,
			&pkg.Price,
			&pkg.DurationDays,
			&pkg.Description,
			&pkg.IsActive,
			&pkg.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan package row", zap.Error(err))
			return nil, fmt.Errorf("scan package row: %w", err)
		}
		packages = append(packages, &pkg)
	}

	return packages, nil
}

func (r *packageRepository) FindAllWithMemberCounts(ctx context.Context) ([]*PackageWithMemberCount, error) {
	query := `
		SELECT p.id, p.name, p.price, p.duration_days, p.description, p.is_active, p.created_at,
		       (SELECT COUNT(*) FROM member_packages mp WHERE mp.package_id = p.id) AS member_count
		FROM packages p
		ORDER BY p.price ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list packages with member counts", zap.Error(err))
		return nil, fmt.Errorf("list packages with member counts: %w", err)
	}
	defer rows.Close()

	var packages []*PackageWithMemberCount
	for rows.Next() {
		var pkg PackageWithMemberCount
		err := rows.Scan(
			&pkg.ID,
			&pkg.Name,
			&pkg.Price,
			&pkg.DurationDays,
			&pkg.Description,
			&pkg.IsActive,
			&pkg.CreatedAt,
			&pkg.MemberCount,
		)
		if err != nil {
			r.log.Error("Failed to scan package row", zap.Error(err))
			return nil, fmt.Errorf("scan package row: %w", err)
		}
		packages = append(packages, &pkg)
	}

	return packages, nil
}

func (r *packageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM packages WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete package",
			zap.Error(err),
			zap.String("package_id", id.String()),
		)
		return fmt.Errorf("delete package %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("package %s not found", id.String())
	}

	return nil
}
