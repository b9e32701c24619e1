package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/malapronta/api"
	"github.com/metinatakli/malapronta/internal/domain"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func (app *Application) GetTripDetails(w http.ResponseWriter, r *http.Request, tripID int) {
	trip, ok := app.fetchTrip(w, r, tripID)
	if !ok {
		return
	}

	favorites := app.loadFavorites(r).Set()

	resp := api.TripDetailsResponse{
		Trip: toApiTripDetails(trip, favorites),
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) BookTrip(w http.ResponseWriter, r *http.Request, tripID int) {
	trip, ok := app.fetchTrip(w, r, tripID)
	if !ok {
		return
	}

	seatMap, err := app.restoreSeatMap(r, trip)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	confirmation, err := domain.NewBookingConfirmation(trip, seatMap)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoSeatSelected):
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.sessionManager.Remove(r.Context(), seatSelectionKey(tripID))
	app.metrics.bookings.Add(r.Context(), 1)

	app.contextGetLogger(r).Info("trip booked",
		"trip_id", tripID,
		"seat", confirmation.Seat,
		"reference", confirmation.Reference)

	resp := api.BookingConfirmationResponse{
		Reference:       confirmation.Reference,
		DestinationId:   confirmation.DestinationID,
		DestinationName: confirmation.DestinationName,
		Seat:            confirmation.Seat,
		Price:           confirmation.Price,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMyTrips(w http.ResponseWriter, r *http.Request) {
	var (
		params api.GetMyTripsParams
		err    error
	)

	params.Page, err = readIntQuery(r, "page")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	params.PageSize, err = readIntQuery(r, "pageSize")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	pagination := domain.Pagination{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}
	if params.Page != nil {
		pagination.Page = *params.Page
	}
	if params.PageSize != nil {
		pagination.PageSize = *params.PageSize
	}

	trips, metadata, err := app.tripRepo.GetBookedTrips(r.Context(), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.MyTripsResponse{
		Trips: make([]api.BookedTrip, len(trips)),
	}

	if metadata != nil {
		resp.Metadata = *toApiMetadata(metadata)
	}

	for i, trip := range trips {
		resp.Trips[i] = api.BookedTrip{
			Id:                trip.ID,
			DestinationId:     trip.DestinationID,
			Destination:       trip.DestinationName,
			ImageUrl:          trip.ImageURL,
			DepartureLocation: trip.DepartureLocation,
			DepartureAt:       trip.DepartureAt,
			Seat:              trip.Seat,
			Price:             trip.Price,
			Status:            api.TripStatus(trip.Status),
			StatusLabel:       trip.Status.Label(),
			Cancellable:       trip.Status.Cancellable(),
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// fetchTrip loads the trip or writes the matching error response. The
// returned bool is false when a response has already been written.
func (app *Application) fetchTrip(w http.ResponseWriter, r *http.Request, tripID int) (*domain.Trip, bool) {
	if tripID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("trip ID must be greater than zero"))
		return nil, false
	}

	trip, err := app.tripRepo.GetByDestinationId(r.Context(), tripID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return nil, false
	}

	return trip, true
}

func toApiTripDetails(trip *domain.Trip, favorites domain.FavoriteSet) api.TripDetails {
	dates := make([]openapi_types.Date, len(trip.Dates))
	for i, date := range trip.Dates {
		dates[i] = openapi_types.Date{Time: date}
	}

	return api.TripDetails{
		Destination:       toApiDestination(&trip.Destination, favorites),
		DepartureLocation: trip.DepartureLocation,
		Dates:             dates,
		DurationDays:      trip.DurationDays,
		Price:             trip.Price,
		TotalSeats:        trip.TotalSeats,
	}
}
