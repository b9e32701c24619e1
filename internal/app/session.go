package app

import (
	"context"
	"fmt"
	"net/http"
)

type contextKey string

const (
	contextKeyLogger   = contextKey("logger")
	contextKeyDeviceId = contextKey("deviceID")
)

const deviceCookieName = "device_id"

func seatSelectionKey(tripID int) string {
	return fmt.Sprintf("seat_selection:%d", tripID)
}

func contextSetDeviceId(ctx context.Context, deviceID string) context.Context {
	return context.WithValue(ctx, contextKeyDeviceId, deviceID)
}

func (app *Application) contextGetDeviceId(r *http.Request) string {
	deviceID, ok := r.Context().Value(contextKeyDeviceId).(string)
	if !ok {
		panic("missing device id from context")
	}

	return deviceID
}
