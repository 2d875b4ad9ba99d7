package repository

import (
	"context"
	"testing"
	"time"

	"campus-rides/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	return NewMemoryRepository(zap.NewNop())
}

func testRide(seats int, status entity.RideStatus) *entity.Ride {
	now := time.Now()
	return &entity.Ride{
		Base:           entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		HostID:         uuid.New(),
		HostName:       "Emma Johnson",
		Origin:         "University Library",
		Destination:    "Downtown Mall",
		DateTime:       now.Add(24 * time.Hour),
		TotalSeats:     seats,
		AvailableSeats: seats,
		Status:         status,
	}
}

func testBooking(rideID uuid.UUID, seats int) *entity.Booking {
	now := time.Now()
	return &entity.Booking{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:      uuid.New(),
		RideID:      rideID,
		BookingTime: now,
		Seats:       seats,
		Status:      entity.BookingStatusConfirmed,
	}
}

func TestMemoryBookingRepository_CreateConfirmed(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	ride := testRide(2, entity.RideStatusActive)
	require.NoError(t, repo.Ride.Create(ctx, ride))

	applied, err := repo.Booking.CreateConfirmed(ctx, testBooking(ride.ID, 2))
	require.NoError(t, err)
	assert.True(t, applied)

	stored, err := repo.Ride.FindByID(ctx, ride.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.AvailableSeats)

	// A second booking finds no seats; nothing is written
	applied, err = repo.Booking.CreateConfirmed(ctx, testBooking(ride.ID, 1))
	require.NoError(t, err)
	assert.False(t, applied)

	bookings, err := repo.Booking.FindConfirmedByRideID(ctx, ride.ID)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestMemoryBookingRepository_CreateConfirmed_InactiveRide(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	ride := testRide(3, entity.RideStatusCompleted)
	require.NoError(t, repo.Ride.Create(ctx, ride))

	applied, err := repo.Booking.CreateConfirmed(ctx, testBooking(ride.ID, 1))
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestMemoryBookingRepository_CancelConfirmed(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	ride := testRide(3, entity.RideStatusActive)
	require.NoError(t, repo.Ride.Create(ctx, ride))

	booking := testBooking(ride.ID, 2)
	applied, err := repo.Booking.CreateConfirmed(ctx, booking)
	require.NoError(t, err)
	require.True(t, applied)

	restored, err := repo.Booking.CancelConfirmed(ctx, booking)
	require.NoError(t, err)
	assert.True(t, restored)

	stored, err := repo.Ride.FindByID(ctx, ride.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stored.AvailableSeats)

	// A cancelled booking cannot be cancelled again
	_, err = repo.Booking.CancelConfirmed(ctx, booking)
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrInvalidState)
}

func TestMemoryBookingRepository_CancelConfirmed_MissingRide(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// Booking whose ride was never stored: the cancellation still lands, the
	// seat restore is reported as skipped.
	booking := testBooking(uuid.New(), 1)
	store := repo.Booking.(*memoryBookingRepository).store
	store.bookings[booking.ID] = copyBooking(booking)
	store.bookOrder = append(store.bookOrder, booking.ID)

	restored, err := repo.Booking.CancelConfirmed(ctx, booking)
	require.NoError(t, err)
	assert.False(t, restored)

	stored, err := repo.Booking.FindByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, stored.Status)
}

func TestMemoryRideRepository_FindActive_InsertionOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := testRide(2, entity.RideStatusActive)
	second := testRide(3, entity.RideStatusActive)
	completed := testRide(4, entity.RideStatusCompleted)
	require.NoError(t, repo.Ride.Create(ctx, first))
	require.NoError(t, repo.Ride.Create(ctx, completed))
	require.NoError(t, repo.Ride.Create(ctx, second))

	rides, err := repo.Ride.FindActive(ctx)
	require.NoError(t, err)
	require.Len(t, rides, 2)
	assert.Equal(t, first.ID, rides[0].ID)
	assert.Equal(t, second.ID, rides[1].ID)
}

func TestMemoryRideRepository_CopyOnReturn(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	ride := testRide(3, entity.RideStatusActive)
	require.NoError(t, repo.Ride.Create(ctx, ride))

	got, err := repo.Ride.FindByID(ctx, ride.ID)
	require.NoError(t, err)
	got.AvailableSeats = 0

	// Mutating a returned ride must not touch the store
	again, err := repo.Ride.FindByID(ctx, ride.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, again.AvailableSeats)
}

func TestMemorySessionRepository_Lifecycle(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	session := &entity.Session{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     uuid.New(),
		Token:      uuid.New(),
		ExpiresAt:  time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Session.Create(ctx, session))

	found, err := repo.Session.FindValidSession(ctx, session.Token.String())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, session.UserID, found.UserID)

	require.NoError(t, repo.Session.Revoke(ctx, session.Token.String()))

	found, err = repo.Session.FindValidSession(ctx, session.Token.String())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestMemorySessionRepository_ExpiredSession(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	session := &entity.Session{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     uuid.New(),
		Token:      uuid.New(),
		ExpiresAt:  time.Now().Add(-time.Minute),
	}
	require.NoError(t, repo.Session.Create(ctx, session))

	found, err := repo.Session.FindValidSession(ctx, session.Token.String())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSeedDemoData(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, SeedDemoData(ctx, repo, zap.NewNop()))

	user, err := repo.User.FindByEmail(ctx, "john@university.edu")
	require.NoError(t, err)
	require.NotNil(t, user)

	rides, err := repo.Ride.FindActive(ctx)
	require.NoError(t, err)
	assert.Len(t, rides, 3)
	for _, ride := range rides {
		assert.Equal(t, ride.TotalSeats, ride.AvailableSeats)
	}
}
