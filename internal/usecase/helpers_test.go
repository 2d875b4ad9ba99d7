package usecase

import (
	"context"
	"testing"
	"time"

	"campus-rides/internal/data/entity"
	"campus-rides/internal/data/repository"
	"campus-rides/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*Service, *repository.Repository) {
	t.Helper()

	repo := repository.NewMemoryRepository(zap.NewNop())
	config := &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 24},
	}

	return NewService(repo, config, zap.NewNop()), repo
}

func seedUser(t *testing.T, repo *repository.Repository, email, name string) *entity.User {
	t.Helper()

	now := time.Now()
	user := &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Email:        email,
		Name:         name,
		PasswordHash: "x",
	}

	require.NoError(t, repo.User.Create(context.Background(), user))
	return user
}

func seedRide(t *testing.T, repo *repository.Repository, host *entity.User, origin, destination string, seats int, status entity.RideStatus) *entity.Ride {
	t.Helper()

	now := time.Now()
	ride := &entity.Ride{
		Base:           entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		HostID:         host.ID,
		HostName:       host.Name,
		Origin:         origin,
		Destination:    destination,
		DateTime:       now.Add(24 * time.Hour),
		TotalSeats:     seats,
		AvailableSeats: seats,
		Status:         status,
	}

	require.NoError(t, repo.Ride.Create(context.Background(), ride))
	return ride
}
