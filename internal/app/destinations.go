package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/malapronta/api"
	"github.com/metinatakli/malapronta/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

func (app *Application) GetDestinations(w http.ResponseWriter, r *http.Request) {
	params, err := readDestinationsParams(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	destinations, metadata, err := app.destinationRepo.GetAll(r.Context(), toDestinationPagination(params))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	favorites := app.loadFavorites(r).Set()

	resp := api.DestinationListResponse{
		Destinations: toApiDestinations(destinations, favorites),
		Metadata:     toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetDestination(w http.ResponseWriter, r *http.Request, destinationID int) {
	if destinationID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("destination ID must be greater than zero"))
		return
	}

	destination, err := app.destinationRepo.GetById(r.Context(), destinationID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	favorites := app.loadFavorites(r).Set()

	resp := api.DestinationResponse{
		Destination: toApiDestination(destination, favorites),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) LikeDestination(w http.ResponseWriter, r *http.Request, destinationID int) {
	if destinationID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("destination ID must be greater than zero"))
		return
	}

	destination, err := app.destinationRepo.IncrementLikes(r.Context(), destinationID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	favorites := app.loadFavorites(r).Set()

	resp := api.DestinationResponse{
		Destination: toApiDestination(destination, favorites),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func readDestinationsParams(r *http.Request) (api.GetDestinationsParams, error) {
	var (
		params api.GetDestinationsParams
		err    error
	)

	params.Term = readStringQuery(r, "term")

	params.Page, err = readIntQuery(r, "page")
	if err != nil {
		return params, err
	}

	params.PageSize, err = readIntQuery(r, "pageSize")
	if err != nil {
		return params, err
	}

	return params, nil
}

func toDestinationPagination(params api.GetDestinationsParams) domain.Pagination {
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
	if params.Term != nil {
		pagination.Term = *params.Term
	}

	return pagination
}

func toApiDestinations(destinations []*domain.Destination, favorites domain.FavoriteSet) []api.Destination {
	apiDestinations := make([]api.Destination, len(destinations))

	for i, destination := range destinations {
		apiDestinations[i] = toApiDestination(destination, favorites)
	}

	return apiDestinations
}

func toApiDestination(destination *domain.Destination, favorites domain.FavoriteSet) api.Destination {
	if destination == nil {
		return api.Destination{}
	}

	return api.Destination{
		Id:          destination.ID,
		Name:        destination.Name,
		Description: destination.Description,
		Contact:     destination.Contact,
		ImageUrl:    destination.ImageURL,
		Likes:       destination.Likes,
		IsFavorite:  favorites.Contains(destination.ID),
	}
}

func toApiMetadata(metadata *domain.Metadata) *api.Metadata {
	if metadata == nil {
		return nil
	}

	return &api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
