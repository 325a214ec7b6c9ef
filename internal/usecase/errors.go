package usecase

import "errors"

// Kegagalan bisnis punya sentinel sendiri-sendiri supaya handler bisa
// memetakan tiap jenis ke status dan pesan yang berbeda lewat errors.Is.
// Semuanya terminal — tidak ada yang di-retry otomatis.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNoActiveMembership = errors.New("no active membership")
	ErrClassUnavailable   = errors.New("class not found or inactive")
	ErrClassInPast        = errors.New("class schedule has passed")
	ErrClassFull          = errors.New("class is full")
	ErrAlreadyBooked      = errors.New("already booked")
	ErrNotAllowed         = errors.New("not allowed")

	ErrPackageUnavailable  = errors.New("package not found or inactive")
	ErrActiveSubscription  = errors.New("subscription still active")
	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrClassNotFound       = errors.New("class not found")
	ErrScheduleNotInFuture = errors.New("schedule must be in the future")
	ErrCapacityNotPositive = errors.New("capacity must be greater than 0")
	ErrUserNotFound        = errors.New("user not found")
)
