package usecase

import (
	"context"
	"fmt"
	"time"

	"campus-rides/internal/data/entity"
	"campus-rides/internal/data/repository"
	"campus-rides/internal/dto/request"
	"campus-rides/internal/dto/response"
	"campus-rides/internal/metrics"
	"campus-rides/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	BookRide(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID string) error
	GetUserBookings(ctx context.Context, userID string) ([]response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) BookRide(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Book ride validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", entity.ErrValidation, userID)
	}

	rideID, err := uuid.Parse(req.RideID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid ride ID %s", entity.ErrValidation, req.RideID)
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      userUUID,
		RideID:      rideID,
		BookingTime: now,
		Seats:       req.Seats,
		Status:      entity.BookingStatusConfirmed,
	}

	// The store performs the seat check and decrement atomically; when it does
	// not apply, read the ride back to tell the caller why.
	applied, err := s.repo.Booking.CreateConfirmed(ctx, booking)
	if err != nil {
		s.log.Error("Failed to book ride",
			zap.Error(err),
			zap.String("ride_id", req.RideID),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("book ride %s: %w", req.RideID, err)
	}

	if !applied {
		return nil, s.classifyRejection(ctx, rideID, req.Seats)
	}

	metrics.BookingConfirmed(req.Seats)

	s.log.Info("Ride booked",
		zap.String("booking_id", booking.ID.String()),
		zap.String("ride_id", req.RideID),
		zap.String("user_id", userID),
		zap.Int("seats", req.Seats),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) classifyRejection(ctx context.Context, rideID uuid.UUID, seats int) error {
	ride, err := s.repo.Ride.FindByID(ctx, rideID)
	if err != nil {
		return fmt.Errorf("book ride %s: %w", rideID.String(), err)
	}

	switch {
	case ride == nil:
		metrics.BookingRejected("ride_not_found")
		return fmt.Errorf("ride %s: %w", rideID.String(), entity.ErrNotFound)
	case ride.Status != entity.RideStatusActive:
		metrics.BookingRejected("ride_not_active")
		return fmt.Errorf("ride %s is %s: %w", rideID.String(), ride.Status, entity.ErrInvalidState)
	default:
		metrics.BookingRejected("insufficient_seats")
		s.log.Warn("Booking rejected, not enough seats",
			zap.String("ride_id", rideID.String()),
			zap.Int("requested", seats),
			zap.Int("available", ride.AvailableSeats),
		)
		return fmt.Errorf("ride %s has %d seats left, %d requested: %w",
			rideID.String(), ride.AvailableSeats, seats, entity.ErrInsufficientSeats)
	}
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return fmt.Errorf("%w: invalid booking ID %s", entity.ErrValidation, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find booking", zap.Error(err), zap.String("booking_id", bookingID))
		return fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return fmt.Errorf("booking %s: %w", bookingID, entity.ErrNotFound)
	}
	if booking.Status != entity.BookingStatusConfirmed {
		return fmt.Errorf("booking %s is %s: %w", bookingID, booking.Status, entity.ErrInvalidState)
	}

	rideRestored, err := s.repo.Booking.CancelConfirmed(ctx, booking)
	if err != nil {
		s.log.Error("Failed to cancel booking", zap.Error(err), zap.String("booking_id", bookingID))
		return fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}

	// Policy: the cancellation stands even when the parent ride is gone; only
	// the seat restore is skipped.
	if !rideRestored {
		s.log.Warn("Cancelled booking for a missing ride, seats not restored",
			zap.String("booking_id", bookingID),
			zap.String("ride_id", booking.RideID.String()),
		)
	}

	metrics.BookingCancelled()

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("ride_id", booking.RideID.String()),
		zap.Int("seats", booking.Seats),
	)

	return nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string) ([]response.BookingResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", entity.ErrValidation, userID)
	}

	bookings, err := s.repo.Booking.FindByUserID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get user bookings", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get bookings for %s: %w", userID, err)
	}

	return response.BookingsToResponse(bookings), nil
}
