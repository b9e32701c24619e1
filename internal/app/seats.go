package app

import (
	"net/http"

	"github.com/metinatakli/malapronta/api"
	"github.com/metinatakli/malapronta/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

func (app *Application) GetSeatMap(w http.ResponseWriter, r *http.Request, tripID int) {
	trip, ok := app.fetchTrip(w, r, tripID)
	if !ok {
		return
	}

	seatMap, err := app.restoreSeatMap(r, trip)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeSeatMap(w, r, tripID, seatMap)
}

func (app *Application) SelectSeat(w http.ResponseWriter, r *http.Request, tripID int) {
	var input api.SelectSeatRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	trip, ok := app.fetchTrip(w, r, tripID)
	if !ok {
		return
	}

	seatMap, err := app.restoreSeatMap(r, trip)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	seatID := *input.SeatId
	applied := seatMap.IsAvailable(seatID)

	seatMap = seatMap.Select(seatID)
	app.storeSeatSelection(r, tripID, seatMap)

	app.metrics.seatSelections.Add(r.Context(), 1,
		metric.WithAttributes(attribute.Bool("applied", applied)))

	if !applied {
		app.contextGetLogger(r).Debug("ignored click on unavailable seat", "trip_id", tripID, "seat", seatID)
	}

	app.writeSeatMap(w, r, tripID, seatMap)
}

func (app *Application) ClearSeatSelection(w http.ResponseWriter, r *http.Request, tripID int) {
	trip, ok := app.fetchTrip(w, r, tripID)
	if !ok {
		return
	}

	seatMap, err := trip.SeatMap()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.sessionManager.Remove(r.Context(), seatSelectionKey(tripID))

	app.writeSeatMap(w, r, tripID, seatMap.Clear())
}

// restoreSeatMap builds the seat map of the trip and reapplies the seat kept
// in the session. A kept seat that is no longer available is dropped.
func (app *Application) restoreSeatMap(r *http.Request, trip *domain.Trip) (domain.SeatMap, error) {
	seatMap, err := trip.SeatMap()
	if err != nil {
		return domain.SeatMap{}, err
	}

	key := seatSelectionKey(trip.DestinationID)

	seatID := app.sessionManager.GetInt(r.Context(), key)
	if seatID == 0 {
		return seatMap, nil
	}

	restored := seatMap.Select(seatID)
	if _, ok := restored.Selected(); !ok {
		app.contextGetLogger(r).Warn("dropping stale seat selection", "trip_id", trip.DestinationID, "seat", seatID)
		app.sessionManager.Remove(r.Context(), key)

		return seatMap, nil
	}

	return restored, nil
}

func (app *Application) storeSeatSelection(r *http.Request, tripID int, seatMap domain.SeatMap) {
	key := seatSelectionKey(tripID)

	if seatID, ok := seatMap.Selected(); ok {
		app.sessionManager.Put(r.Context(), key, seatID)
		return
	}

	app.sessionManager.Remove(r.Context(), key)
}

func (app *Application) writeSeatMap(w http.ResponseWriter, r *http.Request, tripID int, seatMap domain.SeatMap) {
	left, right := seatMap.Columns()

	resp := api.SeatMapResponse{
		TripId:     tripID,
		TotalSeats: seatMap.TotalSeats(),
		Left:       toApiSeats(left),
		Right:      toApiSeats(right),
	}

	if seatID, ok := seatMap.Selected(); ok {
		resp.SelectedSeat = &seatID
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiSeats(seats []domain.SeatView) []api.Seat {
	apiSeats := make([]api.Seat, len(seats))

	for i, seat := range seats {
		apiSeats[i] = api.Seat{
			Id:        seat.ID,
			Available: seat.Available,
			Selected:  seat.Selected,
		}
	}

	return apiSeats
}
