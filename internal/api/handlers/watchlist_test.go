package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndewijer/fund-analytics/internal/api/handlers"
	"github.com/ndewijer/fund-analytics/internal/api/response"
	"github.com/ndewijer/fund-analytics/internal/model"
	"github.com/ndewijer/fund-analytics/internal/testutil"
)

func TestWatchlistHandler_Watchlist(t *testing.T) {
	t.Run("returns empty array when nothing is watched", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewWatchlistHandler(testutil.NewTestWatchlistService(t, db))

		w := httptest.NewRecorder()
		handler.Watchlist(w, httptest.NewRequest(http.MethodGet, "/api/watchlist", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("returns watched funds", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.WatchFund(t, db, "000001")
		testutil.WatchFund(t, db, "110022")
		handler := handlers.NewWatchlistHandler(testutil.NewTestWatchlistService(t, db))

		w := httptest.NewRecorder()
		handler.Watchlist(w, httptest.NewRequest(http.MethodGet, "/api/watchlist", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var body []model.WatchlistEntry
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Len(t, body, 2)
	})

	t.Run("returns 500 when the database is closed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewWatchlistHandler(testutil.NewTestWatchlistService(t, db))
		db.Close()

		w := httptest.NewRecorder()
		handler.Watchlist(w, httptest.NewRequest(http.MethodGet, "/api/watchlist", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestWatchlistHandler_AddFund(t *testing.T) {
	post := func(body string) *http.Request {
		return httptest.NewRequest(http.MethodPost, "/api/watchlist", strings.NewReader(body))
	}

	t.Run("creates an entry", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewWatchlistHandler(testutil.NewTestWatchlistService(t, db))

		w := httptest.NewRecorder()
		handler.AddFund(w, post(`{"fundCode":"110022","note":"consumer"}`))

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		var body model.WatchlistEntry
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "110022", body.FundCode)
		assert.Equal(t, "consumer", body.Note)
		testutil.AssertRowCount(t, db, "watchlist", 1)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewWatchlistHandler(testutil.NewTestWatchlistService(t, db))

		w := httptest.NewRecorder()
		handler.AddFund(w, post(`{"fundCode":`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewWatchlistHandler(testutil.NewTestWatchlistService(t, db))

		w := httptest.NewRecorder()
		handler.AddFund(w, post(`{"fundCode":"110022","portfolioId":"x"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("reports field errors on validation failure", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewWatchlistHandler(testutil.NewTestWatchlistService(t, db))

		w := httptest.NewRecorder()
		handler.AddFund(w, post(`{"fundCode":"11002"}`))

		require.Equal(t, http.StatusBadRequest, w.Code)
		var body struct {
			Error   string            `json:"error"`
			Details map[string]string `json:"details"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "validation failed", body.Error)
		assert.Contains(t, body.Details, "fundCode")
		testutil.AssertRowCount(t, db, "watchlist", 0)
	})

	t.Run("returns 409 for an already watched fund", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.WatchFund(t, db, "110022")
		handler := handlers.NewWatchlistHandler(testutil.NewTestWatchlistService(t, db))

		w := httptest.NewRecorder()
		handler.AddFund(w, post(`{"fundCode":"110022"}`))

		require.Equal(t, http.StatusConflict, w.Code)
		var body response.ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "fund is already on the watchlist", body.Error)
	})
}

func TestWatchlistHandler_RemoveFund(t *testing.T) {
	remove := func(code string) *http.Request {
		return testutil.NewRequestWithURLParams(http.MethodDelete, "/api/watchlist/"+code, map[string]string{"code": code})
	}

	t.Run("removes a watched fund", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.WatchFund(t, db, "110022")
		handler := handlers.NewWatchlistHandler(testutil.NewTestWatchlistService(t, db))

		w := httptest.NewRecorder()
		handler.RemoveFund(w, remove("110022"))

		assert.Equal(t, http.StatusNoContent, w.Code)
		testutil.AssertRowCount(t, db, "watchlist", 0)
	})

	t.Run("returns 404 for an unwatched fund", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewWatchlistHandler(testutil.NewTestWatchlistService(t, db))

		w := httptest.NewRecorder()
		handler.RemoveFund(w, remove("110022"))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
