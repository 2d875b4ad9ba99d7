package repository

import (
	"context"
	"fmt"

	"campus-rides/internal/data/entity"
	"campus-rides/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RideRepository interface {
	Create(ctx context.Context, ride *entity.Ride) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Ride, error)
	FindActive(ctx context.Context) ([]*entity.Ride, error)
	FindByHostID(ctx context.Context, hostID uuid.UUID) ([]*entity.Ride, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Ride, error)
}

type rideRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRideRepository(db database.PgxIface, log *zap.Logger) RideRepository {
	return &rideRepository{
		db:  db,
		log: log.With(zap.String("repository", "ride")),
	}
}

const rideColumns = `id, host_id, host_name, host_profile_picture, origin, destination,
	date_time, total_seats, available_seats, price, notes, status, created_at, updated_at`

func scanRide(row pgx.Row) (*entity.Ride, error) {
	var ride entity.Ride
	err := row.Scan(
		&ride.ID,
		&ride.HostID,
		&ride.HostName,
		&ride.HostProfilePicture,
		&ride.Origin,
		&ride.Destination,
		&ride.DateTime,
		&ride.TotalSeats,
		&ride.AvailableSeats,
		&ride.Price,
		&ride.Notes,
		&ride.Status,
		&ride.CreatedAt,
		&ride.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ride, nil
}

func (r *rideRepository) Create(ctx context.Context, ride *entity.Ride) error {
	query := `
		INSERT INTO rides (id, host_id, host_name, host_profile_picture, origin, destination,
			date_time, total_seats, available_seats, price, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(ctx, query,
		ride.ID,
		ride.HostID,
		ride.HostName,
		ride.HostProfilePicture,
		ride.Origin,
		ride.Destination,
		ride.DateTime,
		ride.TotalSeats,
		ride.AvailableSeats,
		ride.Price,
		ride.Notes,
		ride.Status,
		ride.CreatedAt,
		ride.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create ride",
			zap.Error(err),
			zap.String("host_id", ride.HostID.String()),
		)
		return fmt.Errorf("create ride for host %s: %w", ride.HostID.String(), err)
	}

	return nil
}

func (r *rideRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1`

	ride, err := scanRide(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ride by ID",
			zap.Error(err),
			zap.String("ride_id", id.String()),
		)
		return nil, fmt.Errorf("find ride by ID %s: %w", id.String(), err)
	}

	return ride, nil
}

func (r *rideRepository) FindActive(ctx context.Context) ([]*entity.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE status = 'active' ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find active rides", zap.Error(err))
		return nil, fmt.Errorf("find active rides: %w", err)
	}
	defer rows.Close()

	return collectRides(rows)
}

func (r *rideRepository) FindByHostID(ctx context.Context, hostID uuid.UUID) ([]*entity.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE host_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, hostID)
	if err != nil {
		r.log.Error("Failed to find rides by host ID",
			zap.Error(err),
			zap.String("host_id", hostID.String()),
		)
		return nil, fmt.Errorf("find rides by host ID %s: %w", hostID.String(), err)
	}
	defer rows.Close()

	return collectRides(rows)
}

func (r *rideRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Ride, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = ANY($1) ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to find rides by IDs", zap.Error(err), zap.Int("count", len(ids)))
		return nil, fmt.Errorf("find rides by IDs: %w", err)
	}
	defer rows.Close()

	return collectRides(rows)
}

func collectRides(rows pgx.Rows) ([]*entity.Ride, error) {
	var rides []*entity.Ride
	for rows.Next() {
		ride, err := scanRide(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ride row: %w", err)
		}
		rides = append(rides, ride)
	}
	return rides, rows.Err()
}
