package model

// Holding is a single stock position reported by a fund.
type Holding struct {
	StockCode string `json:"stockCode"`
	StockName string `json:"stockName"`
	PctOfNAV  string `json:"pctOfNav"` // as reported, e.g. "9.87%"
}

// Holdings is the top of a fund's reported portfolio.
// Table is the rendered fixed-width table, or a placeholder when Status is not ok.
type Holdings struct {
	FundCode string    `json:"fundCode"`
	Status   Status    `json:"status"`
	Rows     []Holding `json:"rows"`
	Table    string    `json:"table"`
}
