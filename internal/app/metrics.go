package app

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

type metrics struct {
	favoriteUpdates   metric.Int64Counter
	favoriteWriteErrs metric.Int64Counter
	seatSelections    metric.Int64Counter
	bookings          metric.Int64Counter
}

// newMetrics binds the instruments to the global meter provider, which is a
// no-op until telemetry is initialized.
func newMetrics() *metrics {
	meter := otel.Meter(serviceName)

	favoriteUpdates, _ := meter.Int64Counter("favorites.updates",
		metric.WithDescription("Favorite add, remove and toggle operations"))
	favoriteWriteErrs, _ := meter.Int64Counter("favorites.write_failures",
		metric.WithDescription("Favorites that could not be written to durable storage"))
	seatSelections, _ := meter.Int64Counter("seats.selections",
		metric.WithDescription("Seat clicks applied to a seat map"))
	bookings, _ := meter.Int64Counter("trips.bookings",
		metric.WithDescription("Confirmed trip bookings"))

	return &metrics{
		favoriteUpdates:   favoriteUpdates,
		favoriteWriteErrs: favoriteWriteErrs,
		seatSelections:    seatSelections,
		bookings:          bookings,
	}
}
