package api

// JSON-facing shapes for the aggregate output. Dates render as
// YYYY-MM-DD strings so downstream consumers never parse timestamps.

type DailyMetric struct {
	Date             string  `json:"date"`
	Sales            float64 `json:"sales"`
	Profit           float64 `json:"profit"`
	TransactionCount int     `json:"transaction_count"`
}

type ItemProfitability struct {
	Name            string  `json:"name"`
	Kind            string  `json:"kind"`
	Quantity        int     `json:"quantity"`
	TotalSales      float64 `json:"total_sales"`
	TotalCost       float64 `json:"total_cost"`
	TotalProfit     float64 `json:"total_profit"`
	ProfitMarginPct float64 `json:"profit_margin_pct"`
}

type DiscountImpact struct {
	Label                 string  `json:"label"`
	Kind                  string  `json:"kind"`
	TotalDiscount         float64 `json:"total_discount"`
	UsageCount            int     `json:"usage_count"`
	EstimatedProfitImpact float64 `json:"estimated_profit_impact"`
	AverageDiscount       float64 `json:"average_discount"`
}

type ProfitSummary struct {
	TotalSales        float64             `json:"total_sales"`
	TotalTransactions int                 `json:"total_transactions"`
	AvgTransaction    float64             `json:"avg_transaction"`
	TotalProfit       float64             `json:"total_profit"`
	ProfitMarginPct   float64             `json:"profit_margin_pct"`
	DailyTrends       []DailyMetric       `json:"daily_trends"`
	Items             []ItemProfitability `json:"items"`
	Discounts         []DiscountImpact    `json:"discounts"`
}

type CategorySales struct {
	Category string  `json:"category"`
	Sales    float64 `json:"sales"`
}

type Location struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
