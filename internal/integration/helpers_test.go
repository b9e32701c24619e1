package integration_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/metinatakli/malapronta/internal/domain"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"reference": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []http.Cookie) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, cookie := range cookies {
		req.AddCookie(&cookie)
	}

	return req, nil
}

func deviceCookie(deviceID string) []http.Cookie {
	return []http.Cookie{{Name: "device_id", Value: deviceID}}
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indetermistic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		if nested, ok := m[k].(map[string]any); ok {
			cleanMap(nested)
		}
	}
}

func clearFavorites(t testing.TB, app *TestApp, deviceIDs ...string) {
	keys := make([]string, len(deviceIDs))
	for i, id := range deviceIDs {
		keys[i] = domain.DeviceFavoritesKey(id)
	}

	require.NoError(t, app.Redis.Del(context.Background(), keys...).Err())
}

func storeFavorites(t testing.TB, app *TestApp, deviceID, payload string) {
	err := app.Redis.Set(context.Background(), domain.DeviceFavoritesKey(deviceID), payload, 0).Err()
	require.NoError(t, err)
}

func storedFavorites(t testing.TB, app *TestApp, deviceID string) string {
	payload, err := app.Redis.Get(context.Background(), domain.DeviceFavoritesKey(deviceID)).Result()
	require.NoError(t, err)

	return payload
}
