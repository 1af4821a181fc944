package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ndewijer/fund-analytics/internal/api/response"
)

func TestRespondJSON(t *testing.T) {
	t.Run("writes status, content type and body", func(t *testing.T) {
		w := httptest.NewRecorder()

		response.RespondJSON(w, http.StatusCreated, map[string]string{"fundCode": "000001"})

		if w.Code != http.StatusCreated {
			t.Errorf("Expected 201, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected application/json, got %s", ct)
		}
		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("Failed to decode body: %v", err)
		}
		if body["fundCode"] != "000001" {
			t.Errorf("Unexpected body %v", body)
		}
	})

	t.Run("nil data writes no body", func(t *testing.T) {
		w := httptest.NewRecorder()

		response.RespondJSON(w, http.StatusNoContent, nil)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected 204, got %d", w.Code)
		}
		if w.Body.Len() != 0 {
			t.Errorf("Expected empty body, got %q", w.Body.String())
		}
	})
}

func TestRespondError(t *testing.T) {
	t.Run("includes details when given", func(t *testing.T) {
		w := httptest.NewRecorder()

		response.RespondError(w, http.StatusBadRequest, "validation failed", map[string]string{"fundCode": "fund code must be 6 digits"})

		var body response.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("Failed to decode body: %v", err)
		}
		if body.Error != "validation failed" {
			t.Errorf("Unexpected error message %q", body.Error)
		}
		if body.Details == nil {
			t.Error("Expected details")
		}
	})

	t.Run("omits empty string details", func(t *testing.T) {
		w := httptest.NewRecorder()

		response.RespondError(w, http.StatusNotFound, "fund not on watchlist", "")

		var body map[string]any
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("Failed to decode body: %v", err)
		}
		if _, ok := body["details"]; ok {
			t.Errorf("Expected no details key, got %v", body)
		}
	})
}
