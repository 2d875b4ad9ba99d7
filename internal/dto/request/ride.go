package request

type CreateRideRequest struct {
	Origin      string   `json:"origin" validate:"required,max=200"`
	Destination string   `json:"destination" validate:"required,max=200"`
	DateTime    string   `json:"date_time" validate:"required"`
	TotalSeats  int      `json:"total_seats" validate:"required,min=1"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Notes       *string  `json:"notes,omitempty" validate:"omitempty,max=500"`
}
