package wire

import (
	"campus-rides/internal/adaptor"
	"campus-rides/internal/data/repository"
	"campus-rides/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRide(
	r chi.Router,
	rideHandler *adaptor.RideHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/rides - browse and filter available rides
	r.Get("/api/rides", rideHandler.ListRides)

	// GET /api/rides/{id} - ride details
	r.Get("/api/rides/{id}", rideHandler.GetRide)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/rides - host a new ride
		r.Post("/api/rides", rideHandler.CreateRide)

		// Ride history for the logged-in user
		r.Get("/api/user/rides/hosted", rideHandler.GetHostedRides)
		r.Get("/api/user/rides/booked", rideHandler.GetBookedRides)
	})
}
