package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const deviceCookieMaxAge = 365 * 24 * time.Hour

func (app *Application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")

				app.serverErrorResponse(w, r, fmt.Errorf("%s", err))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (app *Application) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := app.logger.With(
			"request_id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"uri", r.URL.RequestURI(),
		)

		ctx := context.WithValue(r.Context(), contextKeyLogger, logger)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ensureDevice binds the request to a device. Favorites belong to the device,
// not to the session, so the cookie lives much longer than the session does.
func (app *Application) ensureDevice(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var deviceID string

		cookie, err := r.Cookie(deviceCookieName)
		if err == nil {
			if id, err := uuid.Parse(cookie.Value); err == nil {
				deviceID = id.String()
			}
		}

		if deviceID == "" {
			deviceID = uuid.New().String()

			http.SetCookie(w, &http.Cookie{
				Name:     deviceCookieName,
				Value:    deviceID,
				Path:     "/",
				MaxAge:   int(deviceCookieMaxAge.Seconds()),
				HttpOnly: true,
				Secure:   app.config.SecureCookies,
				SameSite: http.SameSiteLaxMode,
			})

			app.contextGetLogger(r).Debug("issued new device id", "device_id", deviceID)
		}

		r = r.WithContext(contextSetDeviceId(r.Context(), deviceID))

		next.ServeHTTP(w, r)
	})
}
