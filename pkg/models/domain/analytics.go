package domain

import "time"

// DailyMetric is one day of the trend series. The series is dense: every
// calendar date between the first and last observed order appears, zero
// valued when no orders closed that day.
type DailyMetric struct {
	Date             time.Time
	Sales            float64
	Profit           float64
	TransactionCount int
}

// ItemProfitability aggregates sales, cost and profit per item name.
type ItemProfitability struct {
	Name            string
	Kind            LineKind
	Quantity        int
	TotalSales      float64
	TotalCost       float64
	TotalProfit     float64
	ProfitMarginPct float64 // 0 when TotalSales is 0
}

// DiscountImpact aggregates discounted lines per label and kind.
type DiscountImpact struct {
	Label                 string
	Kind                  LineKind
	TotalDiscount         float64
	UsageCount            int
	EstimatedProfitImpact float64
	AverageDiscount       float64
}

// ProfitSummary is the full KPI aggregate produced from one order set.
type ProfitSummary struct {
	TotalSales        float64
	TotalTransactions int
	AvgTransaction    float64
	TotalProfit       float64
	ProfitMarginPct   float64
	DailyTrends       []DailyMetric
	Items             []ItemProfitability
	Discounts         []DiscountImpact
}

// CategorySales is a per-category sales rollup over a supplied
// name -> category mapping.
type CategorySales struct {
	Category string
	Sales    float64
}
