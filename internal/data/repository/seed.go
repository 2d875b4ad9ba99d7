package repository

import (
	"context"
	"time"

	"campus-rides/internal/data/entity"
	"campus-rides/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SeedDemoData loads sample users and rides into the store so the app is
// browsable in mock mode. Both demo accounts use the password "password123".
func SeedDemoData(ctx context.Context, repo *Repository, log *zap.Logger) error {
	now := time.Now()

	hash, err := utils.HashPassword("password123")
	if err != nil {
		return err
	}

	placeholder := "/placeholder.svg"

	john := &entity.User{
		Base:           entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Email:          "john@university.edu",
		Name:           "John Smith",
		PasswordHash:   hash,
		ProfilePicture: &placeholder,
	}
	emma := &entity.User{
		Base:           entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Email:          "emma@university.edu",
		Name:           "Emma Johnson",
		PasswordHash:   hash,
		ProfilePicture: &placeholder,
	}

	for _, user := range []*entity.User{john, emma} {
		if err := repo.User.Create(ctx, user); err != nil {
			return err
		}
	}

	price := func(v float64) *float64 { return &v }
	notes := func(s string) *string { return &s }

	rides := []*entity.Ride{
		{
			Base:               entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			HostID:             emma.ID,
			HostName:           emma.Name,
			HostProfilePicture: emma.ProfilePicture,
			Origin:             "University Library",
			Destination:        "Downtown Shopping Mall",
			DateTime:           now.Add(24 * time.Hour),
			TotalSeats:         4,
			AvailableSeats:     4,
			Price:              price(5),
			Notes:              notes("Meeting at the library entrance. I have space for small bags."),
			Status:             entity.RideStatusActive,
		},
		{
			Base:               entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			HostID:             john.ID,
			HostName:           john.Name,
			HostProfilePicture: john.ProfilePicture,
			Origin:             "Student Housing Complex",
			Destination:        "Airport",
			DateTime:           now.Add(48 * time.Hour),
			TotalSeats:         3,
			AvailableSeats:     3,
			Price:              price(15),
			Notes:              notes("Early morning ride to catch flights. Can help with luggage."),
			Status:             entity.RideStatusActive,
		},
		{
			Base:               entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			HostID:             emma.ID,
			HostName:           emma.Name,
			HostProfilePicture: emma.ProfilePicture,
			Origin:             "University Center",
			Destination:        "Concert Hall",
			DateTime:           now.Add(72 * time.Hour),
			TotalSeats:         3,
			AvailableSeats:     3,
			Price:              price(7),
			Notes:              notes("Going to the jazz festival! Looking for fellow music lovers."),
			Status:             entity.RideStatusActive,
		},
		{
			Base:               entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			HostID:             john.ID,
			HostName:           john.Name,
			HostProfilePicture: john.ProfilePicture,
			Origin:             "Campus Center",
			Destination:        "Football Stadium",
			DateTime:           now.Add(-5 * 24 * time.Hour),
			TotalSeats:         4,
			AvailableSeats:     0,
			Price:              price(4),
			Status:             entity.RideStatusCompleted,
		},
	}

	for _, ride := range rides {
		if err := repo.Ride.Create(ctx, ride); err != nil {
			return err
		}
	}

	log.Info("Demo data seeded",
		zap.Int("users", 2),
		zap.Int("rides", len(rides)),
	)

	return nil
}
