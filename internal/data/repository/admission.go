package repository

import (
	"context"
	"fmt"

	"gym-booking/internal/data/entity"
	"gym-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdmissionTx adalah operasi yang tersedia DI DALAM satu transaksi booking.
// Count kursi, cek duplikat, dan insert harus lewat handle ini supaya
// semuanya membaca state yang konsisten dengan transaksi yang sedang jalan.
type AdmissionTx interface {
	// ClassWithBookingCount mengambil class plus jumlah booking-nya,
	// dengan row class di-lock sampai transaksi selesai. Nil kalau
	// class tidak ada.
	ClassWithBookingCount(ctx context.Context, classID uuid.UUID) (*entity.FitnessClass, int, error)
	BookingExists(ctx context.Context, userID, classID uuid.UUID) (bool, error)
	InsertBooking(ctx context.Context, booking *entity.Booking) error
}

// AdmissionRunner membungkus fn dalam satu transaksi database:
// commit kalau fn nil, rollback di semua jalur error. Service layer
// tidak pernah pegang transaksi mentah.
type AdmissionRunner interface {
	RunAdmission(ctx context.Context, fn func(tx AdmissionTx) error) error
}

type pgAdmissionRunner struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAdmissionRunner(db database.PgxIface, log *zap.Logger) AdmissionRunner {
	return &pgAdmissionRunner{
		db:  db,
		log: log.With(zap.String("repository", "admission")),
	}
}

func (r *pgAdmissionRunner) RunAdmission(ctx context.Context, fn func(tx AdmissionTx) error) error {
	pgTx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin booking transaction", zap.Error(err))
		return fmt.Errorf("begin booking transaction: %w", classifyPgError(err))
	}
	// Rollback no-op setelah commit berhasil
	defer pgTx.Rollback(ctx)

	if err := fn(&pgAdmissionTx{q: pgTx}); err != nil {
		return err
	}

	if err := pgTx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit booking transaction", zap.Error(err))
		return fmt.Errorf("commit booking transaction: %w", classifyPgError(err))
	}

	return nil
}

type pgAdmissionTx struct {
	q database.Querier
}

func (t *pgAdmissionTx) ClassWithBookingCount(ctx context.Context, classID uuid.UUID) (*entity.FitnessClass, int, error) {
	// FOR UPDATE: dua booking untuk class yang sama antri di sini
	lockQuery := `
		SELECT id, name, description, schedule, capacity, is_active, trainer_id,
		       created_at, updated_at
		FROM classes
		WHERE id = $1
		FOR UPDATE
	`

	var class entity.FitnessClass
	err := t.q.QueryRow(ctx, lockQuery, classID).Scan(
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
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("lock class %s: %w", classID.String(), classifyPgError(err))
	}

	// Count harus statement kedua, SETELAH lock didapat. Di READ COMMITTED
	// snapshot diambil per statement: kalau count digabung sebagai subquery
	// di statement lock, snapshot-nya diambil sebelum menunggu lock dan
	// tidak melihat insert pesaing yang commit duluan — class bisa kejual
	// melebihi kapasitas. Statement baru mengambil snapshot baru.
	countQuery := `SELECT COUNT(*) FROM bookings WHERE class_id = $1`

	var count int
	if err := t.q.QueryRow(ctx, countQuery, classID).Scan(&count); err != nil {
		return nil, 0, fmt.Errorf("count bookings for class %s: %w", classID.String(), classifyPgError(err))
	}

	return &class, count, nil
}

func (t *pgAdmissionTx) BookingExists(ctx context.Context, userID, classID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM bookings WHERE user_id = $1 AND class_id = $2)`

	var exists bool
	if err := t.q.QueryRow(ctx, query, userID, classID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check existing booking: %w", classifyPgError(err))
	}

	return exists, nil
}

func (t *pgAdmissionTx) InsertBooking(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, class_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := t.q.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.ClassID,
		booking.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", classifyPgError(err))
	}

	return nil
}
