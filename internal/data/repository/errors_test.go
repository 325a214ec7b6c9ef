package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifyPgError(t *testing.T) {
	tests := []struct {
		name string
		code string
		want error
	}{
		{"serialization failure", "40001", ErrTransient},
		{"deadlock detected", "40P01", ErrTransient},
		{"lock not available", "55P03", ErrTransient},
		{"unique violation", "23505", ErrDuplicateBooking},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyPgError(&pgconn.PgError{Code: tt.code})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClassifyPgError_PassesThroughOthers(t *testing.T) {
	// constraint violation lain bukan transient, tidak boleh di-retry
	notNull := &pgconn.PgError{Code: "23502"}
	assert.Equal(t, error(notNull), classifyPgError(notNull))

	plain := errors.New("connection refused")
	assert.Equal(t, plain, classifyPgError(plain))
}

func TestClassifyPgError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("exec insert: %w", &pgconn.PgError{Code: "23505"})
	assert.ErrorIs(t, classifyPgError(wrapped), ErrDuplicateBooking)
}
