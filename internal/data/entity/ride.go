package entity

import (
	"time"

	"github.com/google/uuid"
)

type RideStatus string

const (
	RideStatusActive    RideStatus = "active"
	RideStatusCompleted RideStatus = "completed"
	RideStatusCancelled RideStatus = "cancelled"
)

// RideTimeLayout is the departure time format accepted from clients.
const RideTimeLayout = "2006-01-02T15:04"

// Ride is a hosted trip with fixed capacity and a remaining-seats counter.
// HostName and HostProfilePicture are snapshots taken at creation; they do
// not track later profile edits.
type Ride struct {
	Base
	HostID             uuid.UUID  `db:"host_id"`
	HostName           string     `db:"host_name"`
	HostProfilePicture *string    `db:"host_profile_picture"`
	Origin             string     `db:"origin"`
	Destination        string     `db:"destination"`
	DateTime           time.Time  `db:"date_time"`
	TotalSeats         int        `db:"total_seats"`
	AvailableSeats     int        `db:"available_seats"`
	Price              *float64   `db:"price"`
	Notes              *string    `db:"notes"`
	Status             RideStatus `db:"status"`
}
