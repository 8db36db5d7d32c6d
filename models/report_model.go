package models

import "time"

// CanonicalDate is the single normalized date form used for grouping and
// display after ingesting the wire's heterogeneous date shapes.
type CanonicalDate struct {
	Display string `json:"display"` // MM/DD/YYYY
	SortKey string `json:"sortKey"` // YYYY-MM-DD
	Parsed  bool   `json:"parsed"`  // false when the raw shape was unrecognized
}

// Quantity kinds for the normalized quantity union.
const (
	QuantityFlat  = "flat"
	QuantitySized = "sized"
)

// Quantity is the normalized stock/sale quantity: either one scalar count or
// a per-size map, never both.
type Quantity struct {
	Kind  string         `json:"kind"`
	Units int            `json:"units"`
	Sizes map[string]int `json:"sizes,omitempty"`
}

// Discount is a typed discount: a flat currency amount or a percentage.
type Discount struct {
	Kind  string  `json:"kind"`
	Value float64 `json:"value"`
}

// SaleDetail is the normalized, fully computed record derived from one Sale
// and its matched Product. All report groupings fold over these.
type SaleDetail struct {
	SaleID             int64    `json:"saleId"`
	ProductID          string   `json:"productId"`
	ProductName        string   `json:"productName"`
	CategoryID         string   `json:"categoryId"`
	TotalQuantity      int      `json:"totalQuantity"`
	Sizes              Quantity `json:"quantity"`
	TotalPurchasePrice float64  `json:"totalPurchasePrice"`
	TotalSellingPrice  float64  `json:"totalSellingPrice"`
	Discount           Discount `json:"discount"`
	Profit             float64  `json:"profit"`
	SaleDate           CanonicalDate `json:"saleDate"`
}

// PeriodTotals holds the running sums of one report bucket.
type PeriodTotals struct {
	TotalSellingPrice  float64 `json:"totalSellingPrice"`
	TotalPurchasePrice float64 `json:"totalPurchasePrice"`
	TotalProfit        float64 `json:"totalProfit"`
}

// ProductGroup is one product's slice of a daily report: its member sales
// (most recent first, display-capped) plus running sums.
type ProductGroup struct {
	ProductID   string       `json:"productId"`
	ProductName string       `json:"productName"`
	Sales       []SaleDetail `json:"sales"`
	TotalUnits  int          `json:"totalUnits"`
	Totals      PeriodTotals `json:"totals"`
}

// DailyReport is the report for one calendar day, sub-grouped by product.
type DailyReport struct {
	Date     string         `json:"date"` // MM/DD/YYYY
	Products []ProductGroup `json:"products"`
	Totals   PeriodTotals   `json:"totals"`
}

// MonthlyReportEntry is the aggregate for one YYYY-MM bucket.
type MonthlyReportEntry struct {
	Month  string       `json:"month"` // YYYY-MM
	Totals PeriodTotals `json:"totals"`
}

// YearlyReportEntry is the aggregate for one YYYY bucket.
type YearlyReportEntry struct {
	Year   string       `json:"year"` // YYYY
	Totals PeriodTotals `json:"totals"`
}

// TopProduct is one entry of the most-sold ranking.
type TopProduct struct {
	ProductID      string  `json:"productId"`
	ProductName    string  `json:"productName"`
	UnitsSold      int     `json:"unitsSold"`
	SoldPercentage float64 `json:"soldPercentage"`
}

// ProfitReportRow is one per-sale line of the profit report.
type ProfitReportRow struct {
	SaleID             int64   `json:"saleId"`
	ProductID          string  `json:"productId"`
	ProductName        string  `json:"productName"`
	CategoryID         string  `json:"categoryId"`
	SoldDate           string  `json:"soldDate"`
	TotalPurchasePrice float64 `json:"totalPurchasePrice"`
	TotalSellingPrice  float64 `json:"totalSellingPrice"`
	Profit             float64 `json:"profit"`
}

// DashboardSummary is the owner dashboard payload.
type DashboardSummary struct {
	TotalProducts    int          `json:"totalProducts"`
	TotalSales       int          `json:"totalSales"`
	DroppedSales     int          `json:"droppedSales"`
	Totals           PeriodTotals `json:"totals"`
	TopProducts      []TopProduct `json:"topProducts"`
	Today            DailyReport  `json:"today"`
}

// SalesInsight contains the qualitative narrative generated from the monthly
// aggregates.
type SalesInsight struct {
	GeneratedAt     time.Time `json:"generatedAt"`
	Summary         string    `json:"summary"`
	PositiveFactors []string  `json:"positive_factors"`
	NegativeFactors []string  `json:"negative_factors"`
}
