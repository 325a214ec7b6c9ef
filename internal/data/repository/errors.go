package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrTransient menandai kegagalan store yang aman di-retry:
	// serialization conflict, deadlock abort, atau lock timeout.
	// Bukan kegagalan bisnis.
	ErrTransient = errors.New("transient store failure")

	// ErrDuplicateBooking dikembalikan kalau unique constraint
	// (user_id, class_id) kena — backstop kalau pengecekan eksplisit
	// di transaksi terlewati.
	ErrDuplicateBooking = errors.New("duplicate booking")
)

// Postgres error codes
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
	pgLockNotAvailable     = "55P03"
	pgUniqueViolation      = "23505"
)

// classifyPgError memetakan error driver ke sentinel repository.
// Error lain dikembalikan apa adanya.
func classifyPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgSerializationFailure, pgDeadlockDetected, pgLockNotAvailable:
		return ErrTransient
	case pgUniqueViolation:
		return ErrDuplicateBooking
	default:
		return err
	}
}
