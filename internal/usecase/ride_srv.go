package usecase

import (
	"context"
	"fmt"
	"strings"
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

// SearchCriteria filters an already-fetched ride list. Zero-value criteria
// match everything.
type SearchCriteria struct {
	Date        *time.Time
	Origin      string
	Destination string
}

type RideService interface {
	ListAvailableRides(ctx context.Context) ([]response.RideResponse, error)
	SearchRides(ctx context.Context, criteria SearchCriteria) ([]response.RideResponse, error)
	// GetRideByID returns (nil, nil) for an absent ride; absence is a normal
	// outcome, not a failure.
	GetRideByID(ctx context.Context, rideID string) (*response.RideResponse, error)
	GetHostedRides(ctx context.Context, userID string) ([]response.RideResponse, error)
	GetBookedRides(ctx context.Context, userID string) ([]response.RideResponse, error)
	CreateRide(ctx context.Context, userID string, req *request.CreateRideRequest) (*response.RideResponse, error)
}

type rideService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRideService(repo *repository.Repository, log *zap.Logger) RideService {
	return &rideService{
		repo: repo,
		log:  log.With(zap.String("service", "ride")),
	}
}

func (s *rideService) ListAvailableRides(ctx context.Context) ([]response.RideResponse, error) {
	rides, err := s.repo.Ride.FindActive(ctx)
	if err != nil {
		s.log.Error("Failed to list available rides", zap.Error(err))
		return nil, fmt.Errorf("list available rides: %w", err)
	}

	return response.RidesToResponse(rides), nil
}

func (s *rideService) SearchRides(ctx context.Context, criteria SearchCriteria) ([]response.RideResponse, error) {
	rides, err := s.repo.Ride.FindActive(ctx)
	if err != nil {
		s.log.Error("Failed to search rides", zap.Error(err))
		return nil, fmt.Errorf("search rides: %w", err)
	}

	return response.RidesToResponse(FilterRides(rides, criteria)), nil
}

// FilterRides is a pure filter over a fetched list; it never touches the
// store. Origin/destination match case-insensitively by substring, date by
// calendar day.
func FilterRides(rides []*entity.Ride, criteria SearchCriteria) []*entity.Ride {
	origin := strings.ToLower(criteria.Origin)
	destination := strings.ToLower(criteria.Destination)

	var matched []*entity.Ride
	for _, ride := range rides {
		if criteria.Date != nil && !sameDay(ride.DateTime, *criteria.Date) {
			continue
		}
		if origin != "" && !strings.Contains(strings.ToLower(ride.Origin), origin) {
			continue
		}
		if destination != "" && !strings.Contains(strings.ToLower(ride.Destination), destination) {
			continue
		}
		matched = append(matched, ride)
	}
	return matched
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func (s *rideService) GetRideByID(ctx context.Context, rideID string) (*response.RideResponse, error) {
	id, err := uuid.Parse(rideID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid ride ID %s", entity.ErrValidation, rideID)
	}

	ride, err := s.repo.Ride.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get ride", zap.Error(err), zap.String("ride_id", rideID))
		return nil, fmt.Errorf("get ride %s: %w", rideID, err)
	}
	if ride == nil {
		return nil, nil
	}

	resp := response.RideToResponse(ride)
	return &resp, nil
}

func (s *rideService) GetHostedRides(ctx context.Context, userID string) ([]response.RideResponse, error) {
	hostID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", entity.ErrValidation, userID)
	}

	rides, err := s.repo.Ride.FindByHostID(ctx, hostID)
	if err != nil {
		s.log.Error("Failed to get hosted rides", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get hosted rides for %s: %w", userID, err)
	}

	return response.RidesToResponse(rides), nil
}

func (s *rideService) GetBookedRides(ctx context.Context, userID string) ([]response.RideResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", entity.ErrValidation, userID)
	}

	bookings, err := s.repo.Booking.FindConfirmedByUserID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get bookings for booked rides", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get booked rides for %s: %w", userID, err)
	}

	rideIDs := make([]uuid.UUID, len(bookings))
	for i, booking := range bookings {
		rideIDs[i] = booking.RideID
	}

	rides, err := s.repo.Ride.FindByIDs(ctx, rideIDs)
	if err != nil {
		s.log.Error("Failed to get booked rides", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get booked rides for %s: %w", userID, err)
	}

	return response.RidesToResponse(rides), nil
}

func (s *rideService) CreateRide(ctx context.Context, userID string, req *request.CreateRideRequest) (*response.RideResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create ride validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	hostID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", entity.ErrValidation, userID)
	}

	dateTime, err := parseRideTime(req.DateTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date_time %s", entity.ErrValidation, req.DateTime)
	}

	host, err := s.repo.User.FindByID(ctx, hostID)
	if err != nil {
		s.log.Error("Failed to find host", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("find host %s: %w", userID, err)
	}
	if host == nil {
		return nil, fmt.Errorf("host %s: %w", userID, entity.ErrNotFound)
	}

	now := time.Now()
	ride := &entity.Ride{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		HostID: hostID,
		// Snapshot of the host profile at creation time
		HostName:           host.Name,
		HostProfilePicture: host.ProfilePicture,
		Origin:             req.Origin,
		Destination:        req.Destination,
		DateTime:           dateTime,
		TotalSeats:         req.TotalSeats,
		AvailableSeats:     req.TotalSeats,
		Price:              req.Price,
		Notes:              req.Notes,
		Status:             entity.RideStatusActive,
	}

	if err := s.repo.Ride.Create(ctx, ride); err != nil {
		s.log.Error("Failed to create ride",
			zap.Error(err),
			zap.String("host_id", userID),
		)
		return nil, fmt.Errorf("create ride: %w", err)
	}

	metrics.RideCreated()

	s.log.Info("Ride created",
		zap.String("ride_id", ride.ID.String()),
		zap.String("host_id", userID),
		zap.String("origin", ride.Origin),
		zap.String("destination", ride.Destination),
		zap.Int("total_seats", ride.TotalSeats),
	)

	resp := response.RideToResponse(ride)
	return &resp, nil
}

func parseRideTime(value string) (time.Time, error) {
	if t, err := time.Parse(entity.RideTimeLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
