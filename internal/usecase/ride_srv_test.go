package usecase

import (
	"context"
	"testing"
	"time"

	"campus-rides/internal/data/entity"
	"campus-rides/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRideService_ListAvailableRides_ExcludesInactive(t *testing.T) {
	service, repo := newTestService(t)

	host := seedUser(t, repo, "emma@university.edu", "Emma Johnson")
	seedRide(t, repo, host, "University Library", "Downtown Mall", 4, entity.RideStatusActive)
	seedRide(t, repo, host, "Campus Center", "Airport", 3, entity.RideStatusCompleted)
	seedRide(t, repo, host, "Student Union", "Stadium", 2, entity.RideStatusCancelled)

	rides, err := service.Ride.ListAvailableRides(context.Background())

	require.NoError(t, err)
	require.Len(t, rides, 1)
	assert.Equal(t, "University Library", rides[0].Origin)
}

func TestRideService_SearchRides_PartialOrigin(t *testing.T) {
	service, repo := newTestService(t)

	host := seedUser(t, repo, "emma@university.edu", "Emma Johnson")
	seedRide(t, repo, host, "University Library", "Downtown Mall", 4, entity.RideStatusActive)
	seedRide(t, repo, host, "Campus Center", "Airport", 3, entity.RideStatusActive)

	// "lib" matches "University Library" case-insensitively
	rides, err := service.Ride.SearchRides(context.Background(), SearchCriteria{Origin: "lib"})

	require.NoError(t, err)
	require.Len(t, rides, 1)
	assert.Equal(t, "University Library", rides[0].Origin)
}

func TestFilterRides(t *testing.T) {
	host := uuid.New()
	day1 := time.Date(2026, 9, 10, 8, 30, 0, 0, time.UTC)
	day2 := time.Date(2026, 9, 11, 8, 30, 0, 0, time.UTC)

	rides := []*entity.Ride{
		{
			Base:        entity.Base{ID: uuid.New()},
			HostID:      host,
			Origin:      "University Library",
			Destination: "Downtown Mall",
			DateTime:    day1,
		},
		{
			Base:        entity.Base{ID: uuid.New()},
			HostID:      host,
			Origin:      "Campus Center",
			Destination: "Airport",
			DateTime:    day2,
		},
	}

	tests := []struct {
		name     string
		criteria SearchCriteria
		want     int
	}{
		{"no criteria matches all", SearchCriteria{}, 2},
		{"origin substring", SearchCriteria{Origin: "lib"}, 1},
		{"origin case-insensitive", SearchCriteria{Origin: "CAMPUS"}, 1},
		{"origin no match", SearchCriteria{Origin: "beach"}, 0},
		{"destination substring", SearchCriteria{Destination: "mall"}, 1},
		{"date same day", SearchCriteria{Date: &day1}, 1},
		{"origin and destination", SearchCriteria{Origin: "lib", Destination: "airport"}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Len(t, FilterRides(rides, tc.criteria), tc.want)
		})
	}
}

func TestRideService_GetRideByID_NotFound(t *testing.T) {
	service, _ := newTestService(t)

	// Absence is not an error
	ride, err := service.Ride.GetRideByID(context.Background(), uuid.NewString())

	require.NoError(t, err)
	assert.Nil(t, ride)
}

func TestRideService_GetRideByID_InvalidID(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Ride.GetRideByID(context.Background(), "not-a-uuid")

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestRideService_CreateRide_Success(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	picture := "https://cdn.example.edu/emma.png"
	now := time.Now()
	host := &entity.User{
		Base:           entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Email:          "emma@university.edu",
		Name:           "Emma Johnson",
		PasswordHash:   "x",
		ProfilePicture: &picture,
	}
	require.NoError(t, repo.User.Create(ctx, host))

	price := 5.0
	ride, err := service.Ride.CreateRide(ctx, host.ID.String(), &request.CreateRideRequest{
		Origin:      "University Library",
		Destination: "Downtown Shopping Mall",
		DateTime:    "2026-09-10T14:30",
		TotalSeats:  4,
		Price:       &price,
	})

	require.NoError(t, err)
	require.NotNil(t, ride)
	assert.Equal(t, entity.RideStatusActive, ride.Status)
	assert.Equal(t, 4, ride.TotalSeats)
	assert.Equal(t, 4, ride.AvailableSeats)
	assert.Equal(t, "2026-09-10T14:30", ride.DateTime)

	// Host profile is snapshotted onto the ride
	assert.Equal(t, "Emma Johnson", ride.HostName)
	require.NotNil(t, ride.HostProfilePicture)
	assert.Equal(t, picture, *ride.HostProfilePicture)
}

func TestRideService_CreateRide_InvalidSeats(t *testing.T) {
	service, repo := newTestService(t)

	host := seedUser(t, repo, "emma@university.edu", "Emma Johnson")

	_, err := service.Ride.CreateRide(context.Background(), host.ID.String(), &request.CreateRideRequest{
		Origin:      "University Library",
		Destination: "Downtown Mall",
		DateTime:    "2026-09-10T14:30",
		TotalSeats:  0,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestRideService_CreateRide_InvalidDateTime(t *testing.T) {
	service, repo := newTestService(t)

	host := seedUser(t, repo, "emma@university.edu", "Emma Johnson")

	_, err := service.Ride.CreateRide(context.Background(), host.ID.String(), &request.CreateRideRequest{
		Origin:      "University Library",
		Destination: "Downtown Mall",
		DateTime:    "next tuesday",
		TotalSeats:  4,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestRideService_CreateRide_HostNotFound(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Ride.CreateRide(context.Background(), uuid.NewString(), &request.CreateRideRequest{
		Origin:      "University Library",
		Destination: "Downtown Mall",
		DateTime:    "2026-09-10T14:30",
		TotalSeats:  4,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRideService_GetHostedRides(t *testing.T) {
	service, repo := newTestService(t)

	hostA := seedUser(t, repo, "emma@university.edu", "Emma Johnson")
	hostB := seedUser(t, repo, "john@university.edu", "John Smith")
	seedRide(t, repo, hostA, "University Library", "Downtown Mall", 4, entity.RideStatusActive)
	seedRide(t, repo, hostA, "Campus Center", "Airport", 3, entity.RideStatusCompleted)
	seedRide(t, repo, hostB, "Student Union", "Stadium", 2, entity.RideStatusActive)

	rides, err := service.Ride.GetHostedRides(context.Background(), hostA.ID.String())

	require.NoError(t, err)
	// Hosted rides include past ones
	assert.Len(t, rides, 2)
}

func TestRideService_GetBookedRides(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	host := seedUser(t, repo, "emma@university.edu", "Emma Johnson")
	rider := seedUser(t, repo, "john@university.edu", "John Smith")
	booked := seedRide(t, repo, host, "University Library", "Downtown Mall", 4, entity.RideStatusActive)
	seedRide(t, repo, host, "Campus Center", "Airport", 3, entity.RideStatusActive)

	_, err := service.Booking.BookRide(ctx, rider.ID.String(), &request.CreateBookingRequest{
		RideID: booked.ID.String(),
		Seats:  1,
	})
	require.NoError(t, err)

	rides, err := service.Ride.GetBookedRides(ctx, rider.ID.String())

	require.NoError(t, err)
	require.Len(t, rides, 1)
	assert.Equal(t, booked.ID.String(), rides[0].ID)
}
