package repository

import (
	"context"
	"fmt"

	"campus-rides/internal/data/entity"
	"campus-rides/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// CreateConfirmed decrements the ride's seats and inserts the booking in one
	// transaction. Returns false when the conditional decrement did not apply
	// (ride missing, not active, or too few seats); nothing is persisted then.
	CreateConfirmed(ctx context.Context, booking *entity.Booking) (bool, error)

	// CancelConfirmed flips a confirmed booking to cancelled and restores its
	// seats to the ride. Returns entity.ErrInvalidState when the booking is not
	// confirmed. rideRestored is false when the ride row no longer exists; the
	// cancellation itself still commits.
	CancelConfirmed(ctx context.Context, booking *entity.Booking) (rideRestored bool, err error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
	FindConfirmedByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
	FindConfirmedByRideID(ctx context.Context, rideID uuid.UUID) ([]*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, user_id, ride_id, booking_time, seats, status, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RideID,
		&booking.BookingTime,
		&booking.Seats,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) CreateConfirmed(ctx context.Context, booking *entity.Booking) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin booking transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Seat check and decrement in a single conditional update; two concurrent
	// bookings against the last seat cannot both pass.
	decrement := `
		UPDATE rides
		SET available_seats = available_seats - $2, updated_at = NOW()
		WHERE id = $1 AND status = 'active' AND available_seats >= $2
	`

	result, err := tx.Exec(ctx, decrement, booking.RideID, booking.Seats)
	if err != nil {
		r.log.Error("Failed to decrement seats",
			zap.Error(err),
			zap.String("ride_id", booking.RideID.String()),
			zap.Int("seats", booking.Seats),
		)
		return false, fmt.Errorf("decrement seats for ride %s: %w", booking.RideID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return false, nil
	}

	insert := `
		INSERT INTO bookings (id, user_id, ride_id, booking_time, seats, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = tx.Exec(ctx, insert,
		booking.ID,
		booking.UserID,
		booking.RideID,
		booking.BookingTime,
		booking.Seats,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("ride_id", booking.RideID.String()),
			zap.String("user_id", booking.UserID.String()),
		)
		return false, fmt.Errorf("insert booking for ride %s: %w", booking.RideID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit booking transaction: %w", err)
	}

	return true, nil
}

func (r *bookingRepository) CancelConfirmed(ctx context.Context, booking *entity.Booking) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin cancel transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	cancel := `
		UPDATE bookings
		SET status = 'cancelled', updated_at = NOW()
		WHERE id = $1 AND status = 'confirmed'
	`

	result, err := tx.Exec(ctx, cancel, booking.ID)
	if err != nil {
		r.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return false, fmt.Errorf("cancel booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return false, fmt.Errorf("booking %s is not confirmed: %w", booking.ID.String(), entity.ErrInvalidState)
	}

	restore := `
		UPDATE rides
		SET available_seats = available_seats + $2, updated_at = NOW()
		WHERE id = $1
	`

	restored, err := tx.Exec(ctx, restore, booking.RideID, booking.Seats)
	if err != nil {
		r.log.Error("Failed to restore seats",
			zap.Error(err),
			zap.String("ride_id", booking.RideID.String()),
		)
		return false, fmt.Errorf("restore seats for ride %s: %w", booking.RideID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit cancel transaction: %w", err)
	}

	return restored.RowsAffected() > 0, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 ORDER BY booking_time DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) FindConfirmedByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1 AND status = 'confirmed' ORDER BY booking_time DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find confirmed bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find confirmed bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) FindConfirmedByRideID(ctx context.Context, rideID uuid.UUID) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE ride_id = $1 AND status = 'confirmed' ORDER BY booking_time`

	rows, err := r.db.Query(ctx, query, rideID)
	if err != nil {
		r.log.Error("Failed to find confirmed bookings by ride ID",
			zap.Error(err),
			zap.String("ride_id", rideID.String()),
		)
		return nil, fmt.Errorf("find confirmed bookings by ride ID %s: %w", rideID.String(), err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func collectBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}
