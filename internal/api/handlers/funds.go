package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndewijer/fund-analytics/internal/api/response"
	"github.com/ndewijer/fund-analytics/internal/service"
)

// FundHandler handles HTTP requests for fund analytics endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// business logic to the fundService.
//
// The fund code is validated by middleware before these handlers run. The service never
// fails, so every endpoint answers 200 and reports missing data through status fields.
type FundHandler struct {
	fundService *service.FundService
}

// NewFundHandler creates a new FundHandler with the provided service dependency.
func NewFundHandler(fundService *service.FundService) *FundHandler {
	return &FundHandler{
		fundService: fundService,
	}
}

// NAV handles GET requests for a fund's NAV series over the trailing year.
//
// Endpoint: GET /api/fund/{code}/nav
// Response: 200 OK with NAVSeries (empty points when the provider has no data)
func (h *FundHandler) NAV(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	response.RespondJSON(w, http.StatusOK, h.fundService.GetNAVSeries(r.Context(), code))
}

// Returns handles GET requests for trailing-period returns.
//
// Endpoint: GET /api/fund/{code}/returns
// Response: 200 OK with PeriodReturns in window order
func (h *FundHandler) Returns(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	response.RespondJSON(w, http.StatusOK, h.fundService.GetPeriodReturns(r.Context(), code))
}

// Risk handles GET requests for maximum drawdown and Sharpe ratio.
//
// Endpoint: GET /api/fund/{code}/risk
// Response: 200 OK with RiskMetrics
func (h *FundHandler) Risk(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	response.RespondJSON(w, http.StatusOK, h.fundService.GetRiskMetrics(r.Context(), code))
}

// Holdings handles GET requests for the top five holdings.
//
// Endpoint: GET /api/fund/{code}/holdings
// Response: 200 OK with Holdings, including the rendered text table
func (h *FundHandler) Holdings(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	response.RespondJSON(w, http.StatusOK, h.fundService.GetTopHoldings(r.Context(), code))
}

// Info handles GET requests for a fund's full name and type.
//
// Endpoint: GET /api/fund/{code}/info
// Response: 200 OK with BasicInfo
func (h *FundHandler) Info(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	response.RespondJSON(w, http.StatusOK, h.fundService.GetBasicInfo(r.Context(), code))
}

// Report handles GET requests for every analytic of a fund in one response.
//
// Endpoint: GET /api/fund/{code}/report
// Response: 200 OK with FundReport
func (h *FundHandler) Report(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	response.RespondJSON(w, http.StatusOK, h.fundService.GetFundReport(r.Context(), code))
}
