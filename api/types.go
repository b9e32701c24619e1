// Package api holds the JSON payloads of the HTTP API.
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// TripStatus defines model for TripStatus.
type TripStatus string

const (
	Confirmed TripStatus = "confirmed"
	Pending   TripStatus = "pending"
	Completed TripStatus = "completed"
	Cancelled TripStatus = "cancelled"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type SystemInfo struct {
	Environment string `json:"environment"`
	Version     string `json:"version"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

type Destination struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Contact     string `json:"contact"`
	ImageUrl    string `json:"imageUrl"`
	Likes       int    `json:"likes"`
	IsFavorite  bool   `json:"isFavorite"`
}

type GetDestinationsParams struct {
	Term     *string `json:"term,omitempty" validate:"omitempty,max=100,search_term"`
	Page     *int    `json:"page,omitempty" validate:"omitempty,min=1"`
	PageSize *int    `json:"pageSize,omitempty" validate:"omitempty,min=1,max=100"`
}

type DestinationListResponse struct {
	Destinations []Destination `json:"destinations"`
	Metadata     *Metadata     `json:"metadata,omitempty"`
}

type DestinationResponse struct {
	Destination Destination `json:"destination"`
}

type FavoritesResponse struct {
	Ids          []int         `json:"ids"`
	Destinations []Destination `json:"destinations"`
}

type FavoritesUpdateResponse struct {
	Ids       []int `json:"ids"`
	Persisted bool  `json:"persisted"`
}

type TripDetails struct {
	Destination       Destination          `json:"destination"`
	DepartureLocation string               `json:"departureLocation"`
	Dates             []openapi_types.Date `json:"dates"`
	DurationDays      int                  `json:"durationDays"`
	Price             decimal.Decimal      `json:"price"`
	TotalSeats        int                  `json:"totalSeats"`
}

type TripDetailsResponse struct {
	Trip TripDetails `json:"trip"`
}

type Seat struct {
	Id        int  `json:"id"`
	Available bool `json:"available"`
	Selected  bool `json:"selected"`
}

type SeatMapResponse struct {
	TripId       int    `json:"tripId"`
	TotalSeats   int    `json:"totalSeats"`
	SelectedSeat *int   `json:"selectedSeat"`
	Left         []Seat `json:"left"`
	Right        []Seat `json:"right"`
}

type SelectSeatRequest struct {
	SeatId *int `json:"seatId" validate:"required"`
}

type BookingConfirmationResponse struct {
	Reference       string          `json:"reference"`
	DestinationId   int             `json:"destinationId"`
	DestinationName string          `json:"destinationName"`
	Seat            int             `json:"seat"`
	Price           decimal.Decimal `json:"price"`
}

type GetMyTripsParams struct {
	Page     *int `json:"page,omitempty" validate:"omitempty,min=1"`
	PageSize *int `json:"pageSize,omitempty" validate:"omitempty,min=1,max=100"`
}

type BookedTrip struct {
	Id                int             `json:"id"`
	DestinationId     int             `json:"destinationId"`
	Destination       string          `json:"destination"`
	ImageUrl          string          `json:"imageUrl"`
	DepartureLocation string          `json:"departureLocation"`
	DepartureAt       time.Time       `json:"departureAt"`
	Seat              int             `json:"seat"`
	Price             decimal.Decimal `json:"price"`
	Status            TripStatus      `json:"status"`
	StatusLabel       string          `json:"statusLabel"`
	Cancellable       bool            `json:"cancellable"`
}

type MyTripsResponse struct {
	Trips    []BookedTrip `json:"trips"`
	Metadata Metadata     `json:"metadata"`
}
