package response

import (
	"time"

	"campus-rides/internal/data/entity"
)

type RideResponse struct {
	ID                 string            `json:"id"`
	HostID             string            `json:"host_id"`
	HostName           string            `json:"host_name"`
	HostProfilePicture *string           `json:"host_profile_picture,omitempty"`
	Origin             string            `json:"origin"`
	Destination        string            `json:"destination"`
	DateTime           string            `json:"date_time"`
	TotalSeats         int               `json:"total_seats"`
	AvailableSeats     int               `json:"available_seats"`
	Price              *float64          `json:"price,omitempty"`
	Notes              *string           `json:"notes,omitempty"`
	Status             entity.RideStatus `json:"status"`
	CreatedAt          time.Time         `json:"created_at"`
}

// Helper converters
func RideToResponse(ride *entity.Ride) RideResponse {
	return RideResponse{
		ID:                 ride.ID.String(),
		HostID:             ride.HostID.String(),
		HostName:           ride.HostName,
		HostProfilePicture: ride.HostProfilePicture,
		Origin:             ride.Origin,
		Destination:        ride.Destination,
		DateTime:           ride.DateTime.Format(entity.RideTimeLayout),
		TotalSeats:         ride.TotalSeats,
		AvailableSeats:     ride.AvailableSeats,
		Price:              ride.Price,
		Notes:              ride.Notes,
		Status:             ride.Status,
		CreatedAt:          ride.CreatedAt,
	}
}

func RidesToResponse(rides []*entity.Ride) []RideResponse {
	responses := make([]RideResponse, len(rides))
	for i, ride := range rides {
		responses[i] = RideToResponse(ride)
	}
	return responses
}
