package request

// AddWatchlistRequest is the body of POST /api/watchlist.
type AddWatchlistRequest struct {
	FundCode string `json:"fundCode"`
	Note     string `json:"note"`
}
