package usecase

import (
	"campus-rides/internal/data/repository"
	"campus-rides/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Ride    RideService
	Booking BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Ride:    NewRideService(repo, log),
		Booking: NewBookingService(repo, log),
	}
}
