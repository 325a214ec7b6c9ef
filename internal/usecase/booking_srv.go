package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gym-booking/internal/data/entity"
	"gym-booking/internal/data/repository"
	"gym-booking/internal/dto/request"
	"gym-booking/internal/dto/response"
	"gym-booking/pkg/metrics"
	"gym-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxAdmissionRetries membatasi retry untuk kegagalan transient
// (serialization conflict / deadlock abort). Kegagalan bisnis tidak
// pernah di-retry.
const (
	maxAdmissionRetries = 3
	admissionRetryDelay = 50 * time.Millisecond
)

type BookingService interface {
	// CreateBooking menjalankan transaksi admission: membership aktif,
	// class aktif dan belum lewat, kursi masih ada, belum pernah booking
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) error
	GetUserBookings(ctx context.Context, userID string) ([]response.BookingResponse, error)
	CancelBooking(ctx context.Context, userID string, bookingID string) error
}

type bookingService struct {
	membership repository.MembershipRepository
	bookings   repository.BookingRepository
	admission  repository.AdmissionRunner
	log        *zap.Logger

	// now bisa diganti di test untuk properti batas expiry
	now func() time.Time
}

func NewBookingService(
	membership repository.MembershipRepository,
	bookings repository.BookingRepository,
	admission repository.AdmissionRunner,
	log *zap.Logger,
) BookingService {
	return &bookingService{
		membership: membership,
		bookings:   bookings,
		admission:  admission,
		log:        log.With(zap.String("service", "booking")),
		now:        time.Now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) error {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		metrics.RecordBookingAttempt("invalid_input")
		return fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		metrics.RecordBookingAttempt("invalid_input")
		return fmt.Errorf("%w: invalid user ID", ErrInvalidInput)
	}

	classID, err := uuid.Parse(req.ClassID)
	if err != nil {
		metrics.RecordBookingAttempt("invalid_input")
		return fmt.Errorf("%w: invalid class ID", ErrInvalidInput)
	}

	now := s.now()

	// Gate membership dicek dulu, di luar transaksi — read-only dan
	// tidak ikut menentukan kapasitas
	active, err := s.membership.FindActive(ctx, userUUID, now)
	if err != nil {
		s.log.Error("Failed to check membership",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		metrics.RecordBookingAttempt("error")
		return fmt.Errorf("check membership: %w", err)
	}
	if active == nil {
		metrics.RecordBookingAttempt("no_membership")
		return ErrNoActiveMembership
	}

	// Langkah cek-lalu-insert harus satu transaksi: count kursi yang dibaca
	// di luar transaksi bisa basi saat insert jalan, dan class bisa kejual
	// lebih dari kapasitas
	err = s.runAdmission(ctx, userUUID, classID, now)
	if err != nil {
		metrics.RecordBookingAttempt(admissionOutcome(err))
		return err
	}

	s.log.Info("Booking created",
		zap.String("user_id", userID),
		zap.String("class_id", req.ClassID),
	)
	metrics.RecordBookingAttempt("success")
	return nil
}

// runAdmission menjalankan transaksi admission dengan bounded retry untuk
// kegagalan transient store (lock timeout, serialization abort)
func (s *bookingService) runAdmission(ctx context.Context, userID, classID uuid.UUID, now time.Time) error {
	var attempt int
	for {
		err := s.admission.RunAdmission(ctx, func(tx repository.AdmissionTx) error {
			return s.admitBooking(ctx, tx, userID, classID, now)
		})

		if err == nil {
			return nil
		}

		// Unique constraint kena berarti request duplikat menang duluan
		if errors.Is(err, repository.ErrDuplicateBooking) {
			return ErrAlreadyBooked
		}

		if errors.Is(err, repository.ErrTransient) && attempt < maxAdmissionRetries {
			attempt++
			metrics.RecordBookingTxRetry()
			s.log.Warn("Transient store failure during booking, retrying",
				zap.Error(err),
				zap.Int("attempt", attempt),
				zap.String("class_id", classID.String()),
			)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(attempt) * admissionRetryDelay):
			}
			continue
		}

		if errors.Is(err, repository.ErrTransient) {
			s.log.Error("Booking transaction failed after retries",
				zap.Error(err),
				zap.String("user_id", userID.String()),
				zap.String("class_id", classID.String()),
			)
			return fmt.Errorf("booking transaction: %w", err)
		}

		return err
	}
}

// admitBooking adalah isi transaksi: urutan cek sesuai aturan bisnis,
// tiap kegagalan dapat sentinel sendiri
func (s *bookingService) admitBooking(ctx context.Context, tx repository.AdmissionTx, userID, classID uuid.UUID, now time.Time) error {
	class, count, err := tx.ClassWithBookingCount(ctx, classID)
	if err != nil {
		return err
	}

	if class == nil || !class.IsActive {
		return ErrClassUnavailable
	}

	if !class.Schedule.After(now) {
		return ErrClassInPast
	}

	if count >= class.Capacity {
		return ErrClassFull
	}

	exists, err := tx.BookingExists(ctx, userID, classID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyBooked
	}

	return tx.InsertBooking(ctx, &entity.Booking{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:  userID,
		ClassID: classID,
	})
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string) ([]response.BookingResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID", ErrInvalidInput)
	}

	bookings, err := s.bookings.FindByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to get user bookings",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking)
	}

	return bookingResponses, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, userID string, bookingID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("%w: invalid user ID", ErrInvalidInput)
	}

	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("%w: invalid booking ID", ErrInvalidInput)
	}

	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load booking for cancel",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return fmt.Errorf("load booking: %w", err)
	}

	// "tidak ada" dan "bukan punyamu" sengaja satu jawaban,
	// supaya id booking orang lain tidak bisa diterka
	if booking == nil || booking.UserID != userUUID {
		return ErrNotAllowed
	}

	// Tanpa transaksi: delete hanya mengurangi count, tidak bisa
	// melanggar invariant kapasitas
	if err := s.bookings.Delete(ctx, id); err != nil {
		s.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("user_id", userID),
	)
	metrics.RecordBookingCancellation()
	return nil
}

// admissionOutcome memetakan error ke label metric
func admissionOutcome(err error) string {
	switch {
	case errors.Is(err, ErrClassFull):
		return "class_full"
	case errors.Is(err, ErrAlreadyBooked):
		return "already_booked"
	case errors.Is(err, ErrClassInPast):
		return "class_in_past"
	case errors.Is(err, ErrClassUnavailable):
		return "class_unavailable"
	default:
		return "error"
	}
}
