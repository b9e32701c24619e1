package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Trip is the bus trip offered for a destination. Trips share the id of the
// destination they travel to.
type Trip struct {
	DestinationID     int
	Destination       Destination
	DepartureLocation string
	Dates             []time.Time
	DurationDays      int
	Price             decimal.Decimal
	TotalSeats        int
	UnavailableSeats  []int
}

func (t Trip) SeatMap() (SeatMap, error) {
	return NewSeatMap(t.TotalSeats, t.UnavailableSeats)
}

type TripStatus string

const (
	TripConfirmed TripStatus = "confirmed"
	TripPending   TripStatus = "pending"
	TripCompleted TripStatus = "completed"
	TripCancelled TripStatus = "cancelled"
)

var tripStatusLabels = map[TripStatus]string{
	TripConfirmed: "Confirmada",
	TripPending:   "Pendente",
	TripCompleted: "Concluída",
	TripCancelled: "Cancelada",
}

func (s TripStatus) Label() string {
	if label, ok := tripStatusLabels[s]; ok {
		return label
	}

	return string(s)
}

// Cancellable reports whether a trip in this status may still be cancelled.
func (s TripStatus) Cancellable() bool {
	return s == TripConfirmed
}

type BookedTrip struct {
	ID                int
	DestinationID     int
	DestinationName   string
	ImageURL          string
	DepartureLocation string
	DepartureAt       time.Time
	Seat              int
	Price             decimal.Decimal
	Status            TripStatus
}

// BookingConfirmation acknowledges a seat choice. Confirmations are not
// stored anywhere; the reference only identifies the response.
type BookingConfirmation struct {
	Reference       string
	DestinationID   int
	DestinationName string
	Seat            int
	Price           decimal.Decimal
}

func NewBookingConfirmation(trip *Trip, seatMap SeatMap) (BookingConfirmation, error) {
	seat, ok := seatMap.Selected()
	if !ok {
		return BookingConfirmation{}, ErrNoSeatSelected
	}

	return BookingConfirmation{
		Reference:       uuid.New().String(),
		DestinationID:   trip.DestinationID,
		DestinationName: trip.Destination.Name,
		Seat:            seat,
		Price:           trip.Price,
	}, nil
}

type TripRepository interface {
	GetByDestinationId(ctx context.Context, destinationID int) (*Trip, error)
	GetBookedTrips(ctx context.Context, pagination Pagination) ([]BookedTrip, *Metadata, error)
}
