package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"campus-rides/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// memoryStore backs the mock-data mode: the same repository interfaces over
// in-process maps. A single mutex serializes every operation, which also
// serializes the seat check-and-decrement required by the booking flow.
type memoryStore struct {
	mu        sync.Mutex
	users     map[uuid.UUID]*entity.User
	sessions  map[string]*entity.Session
	rides     map[uuid.UUID]*entity.Ride
	bookings  map[uuid.UUID]*entity.Booking
	rideOrder []uuid.UUID
	bookOrder []uuid.UUID
}

// NewMemoryRepository wires repositories over an in-memory store. Used for
// local development (MOCK_MODE=true) and unit tests.
func NewMemoryRepository(log *zap.Logger) *Repository {
	store := &memoryStore{
		users:    make(map[uuid.UUID]*entity.User),
		sessions: make(map[string]*entity.Session),
		rides:    make(map[uuid.UUID]*entity.Ride),
		bookings: make(map[uuid.UUID]*entity.Booking),
	}

	return &Repository{
		User:    &memoryUserRepository{store: store},
		Session: &memorySessionRepository{store: store},
		Ride:    &memoryRideRepository{store: store},
		Booking: &memoryBookingRepository{store: store, log: log.With(zap.String("repository", "booking"))},
	}
}

func copyRide(ride *entity.Ride) *entity.Ride {
	c := *ride
	return &c
}

func copyBooking(booking *entity.Booking) *entity.Booking {
	c := *booking
	return &c
}

// ==================== USERS ====================

type memoryUserRepository struct {
	store *memoryStore
}

func (r *memoryUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.users[user.ID]; exists {
		return fmt.Errorf("user %s already exists", user.ID.String())
	}

	c := *user
	r.store.users[user.ID] = &c
	return nil
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, nil
	}
	c := *user
	return &c, nil
}

func (r *memoryUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, user := range r.store.users {
		if user.Email == email {
			c := *user
			return &c, nil
		}
	}
	return nil, nil
}

// ==================== SESSIONS ====================

type memorySessionRepository struct {
	store *memoryStore
}

func (r *memorySessionRepository) Create(ctx context.Context, session *entity.Session) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c := *session
	r.store.sessions[session.Token.String()] = &c
	return nil
}

func (r *memorySessionRepository) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	session, ok := r.store.sessions[token]
	if !ok || session.RevokedAt != nil || session.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	c := *session
	return &c, nil
}

func (r *memorySessionRepository) Revoke(ctx context.Context, token string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	session, ok := r.store.sessions[token]
	if !ok || session.RevokedAt != nil {
		return fmt.Errorf("session %w", entity.ErrNotFound)
	}

	now := time.Now()
	session.RevokedAt = &now
	return nil
}

// ==================== RIDES ====================

type memoryRideRepository struct {
	store *memoryStore
}

func (r *memoryRideRepository) Create(ctx context.Context, ride *entity.Ride) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.rides[ride.ID]; exists {
		return fmt.Errorf("ride %s already exists", ride.ID.String())
	}

	r.store.rides[ride.ID] = copyRide(ride)
	r.store.rideOrder = append(r.store.rideOrder, ride.ID)
	return nil
}

func (r *memoryRideRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ride, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ride, ok := r.store.rides[id]
	if !ok {
		return nil, nil
	}
	return copyRide(ride), nil
}

func (r *memoryRideRepository) FindActive(ctx context.Context) ([]*entity.Ride, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// Insertion order, matching the store-order guarantee of the SQL repo
	var rides []*entity.Ride
	for _, id := range r.store.rideOrder {
		if ride := r.store.rides[id]; ride.Status == entity.RideStatusActive {
			rides = append(rides, copyRide(ride))
		}
	}
	return rides, nil
}

func (r *memoryRideRepository) FindByHostID(ctx context.Context, hostID uuid.UUID) ([]*entity.Ride, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var rides []*entity.Ride
	for _, id := range r.store.rideOrder {
		if ride := r.store.rides[id]; ride.HostID == hostID {
			rides = append(rides, copyRide(ride))
		}
	}
	return rides, nil
}

func (r *memoryRideRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Ride, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	wanted := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	var rides []*entity.Ride
	for _, id := range r.store.rideOrder {
		if wanted[id] {
			rides = append(rides, copyRide(r.store.rides[id]))
		}
	}
	return rides, nil
}

// ==================== BOOKINGS ====================

type memoryBookingRepository struct {
	store *memoryStore
	log   *zap.Logger
}

func (r *memoryBookingRepository) CreateConfirmed(ctx context.Context, booking *entity.Booking) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	// Check and decrement under the store lock; mirrors the SQL repo's
	// conditional UPDATE.
	ride, ok := r.store.rides[booking.RideID]
	if !ok || ride.Status != entity.RideStatusActive || ride.AvailableSeats < booking.Seats {
		return false, nil
	}

	ride.AvailableSeats -= booking.Seats
	ride.UpdatedAt = time.Now()

	r.store.bookings[booking.ID] = copyBooking(booking)
	r.store.bookOrder = append(r.store.bookOrder, booking.ID)
	return true, nil
}

func (r *memoryBookingRepository) CancelConfirmed(ctx context.Context, booking *entity.Booking) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored, ok := r.store.bookings[booking.ID]
	if !ok || stored.Status != entity.BookingStatusConfirmed {
		return false, fmt.Errorf("booking %s is not confirmed: %w", booking.ID.String(), entity.ErrInvalidState)
	}

	stored.Status = entity.BookingStatusCancelled
	stored.UpdatedAt = time.Now()

	ride, ok := r.store.rides[stored.RideID]
	if !ok {
		return false, nil
	}

	ride.AvailableSeats += stored.Seats
	ride.UpdatedAt = time.Now()
	return true, nil
}

func (r *memoryBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	booking, ok := r.store.bookings[id]
	if !ok {
		return nil, nil
	}
	return copyBooking(booking), nil
}

func (r *memoryBookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	return r.findByUser(userID, false)
}

func (r *memoryBookingRepository) FindConfirmedByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	return r.findByUser(userID, true)
}

func (r *memoryBookingRepository) findByUser(userID uuid.UUID, confirmedOnly bool) ([]*entity.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var bookings []*entity.Booking
	for _, id := range r.store.bookOrder {
		booking := r.store.bookings[id]
		if booking.UserID != userID {
			continue
		}
		if confirmedOnly && booking.Status != entity.BookingStatusConfirmed {
			continue
		}
		bookings = append(bookings, copyBooking(booking))
	}
	return bookings, nil
}

func (r *memoryBookingRepository) FindConfirmedByRideID(ctx context.Context, rideID uuid.UUID) ([]*entity.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var bookings []*entity.Booking
	for _, id := range r.store.bookOrder {
		booking := r.store.bookings[id]
		if booking.RideID == rideID && booking.Status == entity.BookingStatusConfirmed {
			bookings = append(bookings, copyBooking(booking))
		}
	}
	return bookings, nil
}
