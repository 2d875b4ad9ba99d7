package usecase

import (
	"context"
	"sync"
	"testing"

	"campus-rides/internal/data/entity"
	"campus-rides/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingService_BookRide_Success(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	host := seedUser(t, repo, "emma@university.edu", "Emma Johnson")
	rider := seedUser(t, repo, "john@university.edu", "John Smith")
	ride := seedRide(t, repo, host, "University Library", "Downtown Mall", 4, entity.RideStatusActive)

	booking, err := service.Booking.BookRide(ctx, rider.ID.String(), &request.CreateBookingRequest{
		RideID: ride.ID.String(),
		Seats:  2,
	})

	require.NoError(t, err)
	require.NotNil(t, booking)
	assert.Equal(t, entity.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, 2, booking.Seats)

	stored, err := repo.Ride.FindByID(ctx, ride.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.AvailableSeats)
	assert.Equal(t, 4, stored.TotalSeats)
}

func TestBookingService_BookRide_InsufficientSeats(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	host := seedUser(t, repo, "emma@university.edu", "Emma Johnson")
	rider := seedUser(t, repo, "john@university.edu", "John Smith")
	ride := seedRide(t, repo, host, "Campus Center", "Airport", 1, entity.RideStatusActive)

	_, err := service.Booking.BookRide(ctx, rider.ID.String(), &request.CreateBookingRequest{
		RideID: ride.ID.String(),
		Seats:  2,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrInsufficientSeats)

	// Nothing was persisted
	stored, err := repo.Ride.FindByID(ctx, ride.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.AvailableSeats)

	bookings, err := repo.Booking.FindConfirmedByRideID(ctx, ride.ID)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestBookingService_BookRide_RideNotFound(t *testing.T) {
	service, repo := newTestService(t)

	rider := seedUser(t, repo, "john@university.edu", "John Smith")

	_, err := service.Booking.BookRide(context.Background(), rider.ID.String(), &request.CreateBookingRequest{
		RideID: uuid.NewString(),
		Seats:  1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestBookingService_BookRide_RideNotActive(t *testing.T) {
	service, repo := newTestService(t)

	host := seedUser(t, repo, "emma@university.edu", "Emma Johnson")
	rider := seedUser(t, repo, "john@university.edu", "John Smith")
	ride := seedRide(t, repo, host, "Student Union", "Beach", 3, entity.RideStatusCompleted)

	_, err := service.Booking.BookRide(context.Background(), rider.ID.String(), &request.CreateBookingRequest{
		RideID: ride.ID.String(),
		Seats:  1,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrInvalidState)
}

func TestBookingService_BookRide_InvalidSeats(t *testing.T) {
	service, repo := newTestService(t)

	host := seedUser(t, repo, "emma@university.edu", "Emma Johnson")
	rider := seedUser(t, repo, "john@university.edu", "John Smith")
	ride := seedRide(t, repo, host, "Campus Center", "Airport", 3, entity.RideStatusActive)

	for _, seats := range []int{0, -1} {
		_, err := service.Booking.BookRide(context.Background(), rider.ID.String(), &request.CreateBookingRequest{
			RideID: ride.ID.String(),
			Seats:  seats,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, entity.ErrValidation)
	}
}

func TestBookingService_BookRide_ConcurrentLastSeat(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	host := seedUser(t, repo, "emma@university.edu", "Emma Johnson")
	riderA := seedUser(t, repo, "john@university.edu", "John Smith")
	riderB := seedUser(t, repo, "sara@university.edu", "Sara Lee")
	ride := seedRide(t, repo, host, "University Library", "Airport", 1, entity.RideStatusActive)

	results := make([]error, 2)
	var wg sync.WaitGroup
	wg.Add(2)

	for i, rider := range []string{riderA.ID.String(), riderB.ID.String()} {
		go func(i int, rider string) {
			defer wg.Done()
			_, results[i] = service.Booking.BookRide(ctx, rider, &request.CreateBookingRequest{
				RideID: ride.ID.String(),
				Seats:  1,
			})
		}(i, rider)
	}
	wg.Wait()

	// Exactly one booking wins the last seat
	successes := 0
	for _, err := range results {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, entity.ErrInsufficientSeats)
		}
	}
	assert.Equal(t, 1, successes)

	stored, err := repo.Ride.FindByID(ctx, ride.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.AvailableSeats)

	bookings, err := repo.Booking.FindConfirmedByRideID(ctx, ride.ID)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestBookingService_CancelBooking_RestoresSeats(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	host := seedUser(t, repo, "emma@university.edu", "Emma Johnson")
	rider := seedUser(t, repo, "john@university.edu", "John Smith")
	ride := seedRide(t, repo, host, "Campus Center", "Stadium", 3, entity.RideStatusActive)

	booking, err := service.Booking.BookRide(ctx, rider.ID.String(), &request.CreateBookingRequest{
		RideID: ride.ID.String(),
		Seats:  2,
	})
	require.NoError(t, err)

	require.NoError(t, service.Booking.CancelBooking(ctx, booking.ID))

	stored, err := repo.Ride.FindByID(ctx, ride.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.AvailableSeats)

	// Second cancel is rejected and does not double-restore
	err = service.Booking.CancelBooking(ctx, booking.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrInvalidState)

	stored, err = repo.Ride.FindByID(ctx, ride.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.AvailableSeats)
}

func TestBookingService_CancelBooking_NotFound(t *testing.T) {
	service, _ := newTestService(t)

	err := service.Booking.CancelBooking(context.Background(), uuid.NewString())

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestBookingService_SeatAccountingScenario(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	host := seedUser(t, repo, "emma@university.edu", "Emma Johnson")
	rider := seedUser(t, repo, "john@university.edu", "John Smith")
	ride := seedRide(t, repo, host, "University Center", "Concert Hall", 3, entity.RideStatusActive)

	// Book 2 of 3 seats
	bookingA, err := service.Booking.BookRide(ctx, rider.ID.String(), &request.CreateBookingRequest{
		RideID: ride.ID.String(),
		Seats:  2,
	})
	require.NoError(t, err)

	stored, _ := repo.Ride.FindByID(ctx, ride.ID)
	assert.Equal(t, 1, stored.AvailableSeats)

	// Booking 2 more fails and changes nothing
	_, err = service.Booking.BookRide(ctx, rider.ID.String(), &request.CreateBookingRequest{
		RideID: ride.ID.String(),
		Seats:  2,
	})
	assert.ErrorIs(t, err, entity.ErrInsufficientSeats)

	stored, _ = repo.Ride.FindByID(ctx, ride.ID)
	assert.Equal(t, 1, stored.AvailableSeats)

	// Confirmed seats always equal claimed capacity
	confirmed, err := repo.Booking.FindConfirmedByRideID(ctx, ride.ID)
	require.NoError(t, err)
	sum := 0
	for _, b := range confirmed {
		sum += b.Seats
	}
	assert.Equal(t, stored.TotalSeats-stored.AvailableSeats, sum)

	// Cancelling restores the seats
	require.NoError(t, service.Booking.CancelBooking(ctx, bookingA.ID))

	stored, _ = repo.Ride.FindByID(ctx, ride.ID)
	assert.Equal(t, 3, stored.AvailableSeats)
}

func TestBookingService_GetUserBookings(t *testing.T) {
	service, repo := newTestService(t)
	ctx := context.Background()

	host := seedUser(t, repo, "emma@university.edu", "Emma Johnson")
	rider := seedUser(t, repo, "john@university.edu", "John Smith")
	ride := seedRide(t, repo, host, "Campus Center", "Airport", 4, entity.RideStatusActive)

	booking, err := service.Booking.BookRide(ctx, rider.ID.String(), &request.CreateBookingRequest{
		RideID: ride.ID.String(),
		Seats:  1,
	})
	require.NoError(t, err)
	require.NoError(t, service.Booking.CancelBooking(ctx, booking.ID))

	// History keeps cancelled bookings
	bookings, err := service.Booking.GetUserBookings(ctx, rider.ID.String())
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, entity.BookingStatusCancelled, bookings[0].Status)
}
