package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/malapronta/internal/domain"
	"github.com/shopspring/decimal"
)

type PostgresTripRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTripRepository(db *pgxpool.Pool) *PostgresTripRepository {
	return &PostgresTripRepository{
		db: db,
	}
}

func (p *PostgresTripRepository) GetByDestinationId(ctx context.Context, destinationID int) (*domain.Trip, error) {
	query := `
		SELECT
			d.id,
			d.name,
			d.description,
			d.contact,
			d.image_url,
			d.likes,
			t.departure_location,
			t.duration_days,
			t.price,
			t.total_seats,
			t.unavailable_seats,
			COALESCE(
				(SELECT array_agg(td.departure_date ORDER BY td.departure_date)
				FROM trip_dates td
				WHERE td.trip_id = t.destination_id),
				'{}'
			)
		FROM trips t
		JOIN destinations d ON t.destination_id = d.id
		WHERE t.destination_id = $1
	`

	var (
		trip  domain.Trip
		price pgtype.Numeric
		dates []time.Time
	)

	err := p.db.QueryRow(ctx, query, destinationID).Scan(
		&trip.Destination.ID,
		&trip.Destination.Name,
		&trip.Destination.Description,
		&trip.Destination.Contact,
		&trip.Destination.ImageURL,
		&trip.Destination.Likes,
		&trip.DepartureLocation,
		&trip.DurationDays,
		&price,
		&trip.TotalSeats,
		&trip.UnavailableSeats,
		&dates,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	trip.DestinationID = trip.Destination.ID
	trip.Price = toDecimal(price)
	trip.Dates = dates

	return &trip, nil
}

func (p *PostgresTripRepository) GetBookedTrips(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.BookedTrip, *domain.Metadata, error) {

	query := `
		SELECT
			COUNT(*) OVER(),
			b.id,
			d.id,
			d.name,
			d.image_url,
			t.departure_location,
			b.departure_at,
			b.seat,
			b.price,
			b.status
		FROM booked_trips b
		JOIN destinations d ON b.destination_id = d.id
		JOIN trips t ON t.destination_id = d.id
		ORDER BY b.departure_at DESC, b.id
		LIMIT $1 OFFSET $2
	`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	bookedTrips := make([]domain.BookedTrip, 0)
	totalRecords := 0

	for rows.Next() {
		var (
			bookedTrip domain.BookedTrip
			price      pgtype.Numeric
			status     string
		)

		err := rows.Scan(
			&totalRecords,
			&bookedTrip.ID,
			&bookedTrip.DestinationID,
			&bookedTrip.DestinationName,
			&bookedTrip.ImageURL,
			&bookedTrip.DepartureLocation,
			&bookedTrip.DepartureAt,
			&bookedTrip.Seat,
			&price,
			&status,
		)
		if err != nil {
			return nil, nil, err
		}

		bookedTrip.Price = toDecimal(price)
		bookedTrip.Status = domain.TripStatus(status)

		bookedTrips = append(bookedTrips, bookedTrip)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return bookedTrips, metadata, nil
}

func toDecimal(numeric pgtype.Numeric) decimal.Decimal {
	if !numeric.Valid || numeric.Int == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(numeric.Int, numeric.Exp)
}
