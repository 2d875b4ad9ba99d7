package adaptor

import (
	"campus-rides/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Ride    *RideHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Ride:    NewRideHandler(service.Ride, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}
