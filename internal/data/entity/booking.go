package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Bookings are never hard-deleted; cancellation flips Status only.
type Booking struct {
	Base
	UserID      uuid.UUID     `db:"user_id"`
	RideID      uuid.UUID     `db:"ride_id"`
	BookingTime time.Time     `db:"booking_time"`
	Seats       int           `db:"seats"`
	Status      BookingStatus `db:"status"`
}
