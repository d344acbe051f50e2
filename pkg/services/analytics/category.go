package analytics

import (
	"sort"

	"github.com/rella-labs/profitkit/pkg/models/domain"
)

const uncategorized = "Uncategorized"

// CategorySales rolls order line sales up by the supplied item-category
// mapping. Every known category appears even at zero sales; items with
// no mapping fall into "Uncategorized". Results sort by category name.
func CategorySales(orders []domain.Order, mapping domain.CategoryMapping) []domain.CategorySales {
	totals := make(map[string]float64, len(mapping.Categories))
	for _, category := range mapping.Categories {
		totals[category] = 0
	}

	for _, order := range orders {
		for _, group := range order.LineGroups {
			for _, line := range group.Lines {
				category, ok := mapping.ItemCategory[line.Name]
				if !ok {
					category = uncategorized
				}
				totals[category] += centsToDollars(line.Subtotal)
			}
		}
	}

	out := make([]domain.CategorySales, 0, len(totals))
	for category, sales := range totals {
		out = append(out, domain.CategorySales{Category: category, Sales: roundCents(sales)})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Category < out[j].Category
	})
	return out
}
