package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/malapronta/api"
	"github.com/metinatakli/malapronta/internal/domain"
	"github.com/metinatakli/malapronta/internal/favorites"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// loadFavorites returns the favorites store of the calling device, already
// loaded from its durable slot.
func (app *Application) loadFavorites(r *http.Request) *favorites.Store {
	key := domain.DeviceFavoritesKey(app.contextGetDeviceId(r))

	store := favorites.NewStore(app.favoritesSlot, key, app.contextGetLogger(r))
	store.Load(r.Context())

	return store
}

func (app *Application) GetFavorites(w http.ResponseWriter, r *http.Request) {
	set := app.loadFavorites(r).Set()
	ids := set.IDs()

	destinations, err := app.destinationRepo.GetByIds(r.Context(), ids)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.FavoritesResponse{
		Ids:          ids,
		Destinations: toApiDestinations(destinations, set),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) AddFavorite(w http.ResponseWriter, r *http.Request, destinationID int) {
	app.updateFavorite(w, r, destinationID, "add", func(ctx context.Context, store *favorites.Store) error {
		return store.Add(ctx, destinationID)
	})
}

func (app *Application) RemoveFavorite(w http.ResponseWriter, r *http.Request, destinationID int) {
	app.updateFavorite(w, r, destinationID, "remove", func(ctx context.Context, store *favorites.Store) error {
		return store.Remove(ctx, destinationID)
	})
}

func (app *Application) ToggleFavorite(w http.ResponseWriter, r *http.Request, destinationID int) {
	app.updateFavorite(w, r, destinationID, "toggle", func(ctx context.Context, store *favorites.Store) error {
		return store.Toggle(ctx, destinationID)
	})
}

func (app *Application) updateFavorite(
	w http.ResponseWriter,
	r *http.Request,
	destinationID int,
	op string,
	mutate func(context.Context, *favorites.Store) error) {

	logger := app.contextGetLogger(r)

	if destinationID < 1 {
		app.badRequestResponse(w, r, fmt.Errorf("destination ID must be greater than zero"))
		return
	}

	store := app.loadFavorites(r)

	addsMember := op == "add" || (op == "toggle" && !store.Contains(destinationID))
	if addsMember {
		_, err := app.destinationRepo.GetById(r.Context(), destinationID)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrRecordNotFound):
				logger.Warn("favorite rejected for unknown destination", "destination_id", destinationID)
				app.notFoundResponse(w, r)
			default:
				app.serverErrorResponse(w, r, err)
			}

			return
		}
	}

	attrs := metric.WithAttributes(attribute.String("op", op))
	app.metrics.favoriteUpdates.Add(r.Context(), 1, attrs)

	persisted := true

	err := mutate(r.Context(), store)
	if err != nil {
		var storageErr *domain.StorageError
		if !errors.As(err, &storageErr) {
			app.serverErrorResponse(w, r, err)
			return
		}

		persisted = false
		app.metrics.favoriteWriteErrs.Add(r.Context(), 1, attrs)
		logger.Warn("favorites not persisted, keeping in-memory state",
			"op", op,
			"destination_id", destinationID,
			"error", storageErr)
	}

	resp := api.FavoritesUpdateResponse{
		Ids:       store.Set().IDs(),
		Persisted: persisted,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
