package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsAdded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cinebooking_bookings_added_total",
		Help: "Successfully committed add-booking requests.",
	})
	BookingsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cinebooking_bookings_deleted_total",
		Help: "Successfully committed delete-booking requests.",
	})
	BookingsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cinebooking_bookings_rejected_total",
		Help: "Booking requests rejected before or during commit.",
	}, []string{"reason"})
)
