package response

import (
	"time"

	"campus-rides/internal/data/entity"
)

type BookingResponse struct {
	ID          string               `json:"id"`
	UserID      string               `json:"user_id"`
	RideID      string               `json:"ride_id"`
	BookingTime time.Time            `json:"booking_time"`
	Seats       int                  `json:"seats"`
	Status      entity.BookingStatus `json:"status"`
}

// Helper converters
func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:          booking.ID.String(),
		UserID:      booking.UserID.String(),
		RideID:      booking.RideID.String(),
		BookingTime: booking.BookingTime,
		Seats:       booking.Seats,
		Status:      booking.Status,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	responses := make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = BookingToResponse(booking)
	}
	return responses
}
