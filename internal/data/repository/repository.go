package repository

import (
	"campus-rides/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Session SessionRepository
	Ride    RideRepository
	Booking BookingRepository
}

// NewRepository wires the Postgres-backed repositories.
func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Session: NewSessionRepository(db, log),
		Ride:    NewRideRepository(db, log),
		Booking: NewBookingRepository(db, log),
	}
}
