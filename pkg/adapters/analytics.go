package adapters

import (
	"github.com/rella-labs/profitkit/pkg/models/api"
	"github.com/rella-labs/profitkit/pkg/models/domain"
)

const dateLayout = "2006-01-02"

func MapDomainProfitSummaryToApi(summary domain.ProfitSummary) api.ProfitSummary {
	out := api.ProfitSummary{
		TotalSales:        summary.TotalSales,
		TotalTransactions: summary.TotalTransactions,
		AvgTransaction:    summary.AvgTransaction,
		TotalProfit:       summary.TotalProfit,
		ProfitMarginPct:   summary.ProfitMarginPct,
		DailyTrends:       make([]api.DailyMetric, 0, len(summary.DailyTrends)),
		Items:             make([]api.ItemProfitability, 0, len(summary.Items)),
		Discounts:         make([]api.DiscountImpact, 0, len(summary.Discounts)),
	}

	for _, metric := range summary.DailyTrends {
		out.DailyTrends = append(out.DailyTrends, api.DailyMetric{
			Date:             metric.Date.Format(dateLayout),
			Sales:            metric.Sales,
			Profit:           metric.Profit,
			TransactionCount: metric.TransactionCount,
		})
	}
	for _, item := range summary.Items {
		out.Items = append(out.Items, api.ItemProfitability{
			Name:            item.Name,
			Kind:            string(item.Kind),
			Quantity:        item.Quantity,
			TotalSales:      item.TotalSales,
			TotalCost:       item.TotalCost,
			TotalProfit:     item.TotalProfit,
			ProfitMarginPct: item.ProfitMarginPct,
		})
	}
	for _, impact := range summary.Discounts {
		out.Discounts = append(out.Discounts, api.DiscountImpact{
			Label:                 impact.Label,
			Kind:                  string(impact.Kind),
			TotalDiscount:         impact.TotalDiscount,
			UsageCount:            impact.UsageCount,
			EstimatedProfitImpact: impact.EstimatedProfitImpact,
			AverageDiscount:       impact.AverageDiscount,
		})
	}
	return out
}

func MapDomainCategorySalesToApi(sales []domain.CategorySales) []api.CategorySales {
	out := make([]api.CategorySales, 0, len(sales))
	for _, cs := range sales {
		out = append(out, api.CategorySales{Category: cs.Category, Sales: cs.Sales})
	}
	return out
}

func MapDomainLocationToApi(location domain.Location) api.Location {
	return api.Location{ID: location.ID, Name: location.Name}
}
