package eastmoney

import "time"

// RawNAV is one unparsed entry of a fund's NAV history.
// Value is the provider's number rendered as text; it may be empty or malformed.
type RawNAV struct {
	Date  time.Time
	Value string
}

// HoldingRow is one stock position as reported in the holdings archive.
type HoldingRow struct {
	StockCode string
	StockName string
	PctOfNAV  string
}

// netWorthPoint mirrors an element of Data_netWorthTrend.
type netWorthPoint struct {
	X            int64  `json:"x"`
	Y            any    `json:"y"`
	EquityReturn any    `json:"equityReturn"`
	UnitMoney    string `json:"unitMoney"`
}

// Info field names on the overview page.
const (
	FieldFullName = "基金全称"
	FieldFundType = "基金类型"
)

// Column headers of the holdings table.
const (
	columnStockCode = "股票代码"
	columnStockName = "股票名称"
	columnPctOfNAV  = "占净值比例"
)
