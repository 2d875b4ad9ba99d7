package wire

import (
	"campus-rides/internal/adaptor"
	"campus-rides/internal/data/repository"
	"campus-rides/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/bookings - book seats on a ride
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// PUT /api/bookings/{id}/cancel - cancel a booking
		r.Put("/api/bookings/{id}/cancel", bookingHandler.CancelBooking)

		// GET /api/user/bookings - booking history
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)
	})
}
