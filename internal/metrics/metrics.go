package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bookings = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ride_bookings_total",
			Help: "Booking operations by outcome",
		},
		[]string{"outcome"},
	)

	seatsBooked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ride_seats_booked_total",
			Help: "Total seats claimed by confirmed bookings",
		},
	)

	ridesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rides_created_total",
			Help: "Total rides hosted",
		},
	)
)

func RideCreated() {
	ridesCreated.Inc()
}

func BookingConfirmed(seats int) {
	bookings.WithLabelValues("confirmed").Inc()
	seatsBooked.Add(float64(seats))
}

func BookingRejected(reason string) {
	bookings.WithLabelValues(reason).Inc()
}

func BookingCancelled() {
	bookings.WithLabelValues("cancelled").Inc()
}
