//go:build api

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "http://localhost:8080"

// End-to-end smoke flow against a running instance: register, login, inspect
// identity, browse the catalog, attempt a booking against a missing workspace.
func TestAPI_AuthAndBookingFlow(t *testing.T) {
	waitForService(t)

	email := fmt.Sprintf("smoke-%d@example.com", time.Now().UnixNano())
	var token string

	t.Run("Register", func(t *testing.T) {
		resp := post(t, "/auth/register", map[string]any{
			"name":     "Smoke Tester",
			"email":    email,
			"password": "password123",
		}, "")
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var user map[string]any
		decodeJSON(t, resp, &user)
		assert.Equal(t, "customer", user["role"])
	})

	t.Run("Login", func(t *testing.T) {
		resp := post(t, "/auth/login", map[string]any{
			"email":    email,
			"password": "password123",
		}, "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		decodeJSON(t, resp, &body)
		token, _ = body["access_token"].(string)
		require.NotEmpty(t, token)
	})

	t.Run("Me", func(t *testing.T) {
		resp := get(t, "/auth/me", token)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var user map[string]any
		decodeJSON(t, resp, &user)
		assert.Equal(t, email, user["email"])
	})

	t.Run("ListWorkspaces", func(t *testing.T) {
		resp := get(t, "/api/v1/workspaces", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("MyBookingsEmpty", func(t *testing.T) {
		resp := get(t, "/api/v1/bookings/my", token)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var bookings []map[string]any
		decodeJSON(t, resp, &bookings)
		assert.Empty(t, bookings)
	})

	t.Run("BookingUnknownWorkspace", func(t *testing.T) {
		resp := post(t, "/api/v1/bookings", map[string]any{
			"workspace_id": 999999,
			"start_time":   "2026-09-02T09:00:00Z",
			"end_time":     "2026-09-02T11:00:00Z",
		}, token)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("BookingWithoutToken", func(t *testing.T) {
		resp := post(t, "/api/v1/bookings", map[string]any{
			"workspace_id": 1,
			"start_time":   "2026-09-02T09:00:00Z",
			"end_time":     "2026-09-02T11:00:00Z",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func waitForService(t *testing.T) {
	t.Helper()
	for i := 0; i < 30; i++ {
		resp, err := http.Get(baseURL + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(time.Second)
	}
	t.Fatal("service did not become healthy")
}

func post(t *testing.T, path string, payload any, token string) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, baseURL+path, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func get(t *testing.T, path, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}
