package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/rella-labs/profitkit/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedCostResolver returns a constant unit cost for every item.
type fixedCostResolver struct {
	cost float64
}

func (f fixedCostResolver) UnitCost(_ string, _ domain.LineKind, _ float64) float64 {
	return f.cost
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func orderOn(id string, d int, subtotalCents int64, lines ...domain.LineItem) domain.Order {
	return domain.Order{
		ID:         id,
		ClosedAt:   time.Date(2024, 1, d, 14, 30, 0, 0, time.UTC),
		Subtotal:   subtotalCents,
		LineGroups: []domain.LineGroup{{Lines: lines}},
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	engine := NewEngine(fixedCostResolver{})
	summary := engine.Aggregate(context.Background(), nil)

	require.NotNil(t, summary)
	assert.Zero(t, summary.TotalSales)
	assert.Zero(t, summary.TotalTransactions)
	assert.Zero(t, summary.TotalProfit)
	assert.NotNil(t, summary.DailyTrends)
	assert.NotNil(t, summary.Items)
	assert.NotNil(t, summary.Discounts)
	assert.Empty(t, summary.DailyTrends)
}

func TestAggregate_DenseDailySeries(t *testing.T) {
	engine := NewEngine(fixedCostResolver{})
	orders := []domain.Order{
		orderOn("o1", 1, 10000),
		orderOn("o2", 5, 20000),
	}

	summary := engine.Aggregate(context.Background(), orders)

	require.Len(t, summary.DailyTrends, 5)
	for i, metric := range summary.DailyTrends {
		assert.Equal(t, day(i+1), metric.Date)
	}

	assert.Equal(t, 100.0, summary.DailyTrends[0].Sales)
	assert.Equal(t, 1, summary.DailyTrends[0].TransactionCount)
	for _, i := range []int{1, 2, 3} {
		assert.Zero(t, summary.DailyTrends[i].Sales, "day %d", i+1)
		assert.Zero(t, summary.DailyTrends[i].TransactionCount, "day %d", i+1)
	}
	assert.Equal(t, 200.0, summary.DailyTrends[4].Sales)
}

func TestAggregate_Totals(t *testing.T) {
	engine := NewEngine(fixedCostResolver{cost: 5.0})
	orders := []domain.Order{
		orderOn("o1", 1, 10000,
			domain.LineItem{Kind: domain.LineKindProduct, Name: "Shampoo", Quantity: 2, Subtotal: 4000},
			domain.LineItem{Kind: domain.LineKindService, Name: "Haircut", Quantity: 1, Subtotal: 6000},
		),
	}

	summary := engine.Aggregate(context.Background(), orders)

	assert.Equal(t, 100.0, summary.TotalSales)
	assert.Equal(t, 1, summary.TotalTransactions)
	assert.Equal(t, 100.0, summary.AvgTransaction)
	// Order cost = 2*5 + 1*5 = 15, profit = 100 - 15.
	assert.Equal(t, 85.0, summary.TotalProfit)
	assert.Equal(t, 85.0, summary.ProfitMarginPct)
}

func TestAggregate_ItemsSortedByProfit(t *testing.T) {
	engine := NewEngine(fixedCostResolver{cost: 1.0})
	orders := []domain.Order{
		orderOn("o1", 1, 30000,
			domain.LineItem{Kind: domain.LineKindProduct, Name: "Low", Quantity: 1, Subtotal: 2000},
			domain.LineItem{Kind: domain.LineKindProduct, Name: "High", Quantity: 1, Subtotal: 20000},
			domain.LineItem{Kind: domain.LineKindProduct, Name: "Mid", Quantity: 1, Subtotal: 8000},
		),
	}

	summary := engine.Aggregate(context.Background(), orders)

	require.Len(t, summary.Items, 3)
	assert.Equal(t, "High", summary.Items[0].Name)
	assert.Equal(t, "Mid", summary.Items[1].Name)
	assert.Equal(t, "Low", summary.Items[2].Name)

	high := summary.Items[0]
	assert.Equal(t, 200.0, high.TotalSales)
	assert.Equal(t, 1.0, high.TotalCost)
	assert.Equal(t, 199.0, high.TotalProfit)
	assert.Equal(t, 99.5, high.ProfitMarginPct)
}

func TestAggregate_Discounts(t *testing.T) {
	engine := NewEngine(fixedCostResolver{})
	orders := []domain.Order{
		orderOn("o1", 1, 10000,
			domain.LineItem{Kind: domain.LineKindProduct, Name: "A", Quantity: 1, Subtotal: 3000, Discount: 1000},
			domain.LineItem{Kind: domain.LineKindProduct, Name: "B", Quantity: 1, Subtotal: 3000, Discount: 500},
			domain.LineItem{Kind: domain.LineKindService, Name: "C", Quantity: 1, Subtotal: 4000, Discount: 200},
			domain.LineItem{Kind: domain.LineKindService, Name: "D", Quantity: 1, Subtotal: 4000},
		),
	}

	summary := engine.Aggregate(context.Background(), orders)

	require.Len(t, summary.Discounts, 2)
	// Sorted by total discount descending.
	product := summary.Discounts[0]
	assert.Equal(t, domain.LineKindProduct, product.Kind)
	assert.Equal(t, 15.0, product.TotalDiscount)
	assert.Equal(t, 2, product.UsageCount)
	assert.Equal(t, 7.5, product.AverageDiscount)

	service := summary.Discounts[1]
	assert.Equal(t, domain.LineKindService, service.Kind)
	assert.Equal(t, 2.0, service.TotalDiscount)
	assert.Equal(t, 1, service.UsageCount)
}

func TestAggregate_SkipsOrdersWithoutTimestamp(t *testing.T) {
	engine := NewEngine(fixedCostResolver{})
	orders := []domain.Order{
		{ID: "no-ts", Subtotal: 99900},
		orderOn("o1", 2, 10000),
	}

	summary := engine.Aggregate(context.Background(), orders)

	assert.Equal(t, 1, summary.TotalTransactions)
	assert.Equal(t, 100.0, summary.TotalSales)
	assert.Len(t, summary.DailyTrends, 1)
}

func TestAggregate_Idempotent(t *testing.T) {
	engine := NewEngine(fixedCostResolver{cost: 2.0})
	orders := []domain.Order{
		orderOn("o1", 1, 10000,
			domain.LineItem{Kind: domain.LineKindProduct, Name: "A", Quantity: 3, Subtotal: 5000, Discount: 100},
		),
		orderOn("o2", 3, 20000,
			domain.LineItem{Kind: domain.LineKindService, Name: "B", Quantity: 1, Subtotal: 20000},
		),
	}

	first := engine.Aggregate(context.Background(), orders)
	second := engine.Aggregate(context.Background(), orders)
	assert.Equal(t, first, second)
}

func TestCategorySales(t *testing.T) {
	mapping := domain.CategoryMapping{
		Categories: []string{"Retail", "Services"},
		ItemCategory: map[string]string{
			"Shampoo": "Retail",
			"Haircut": "Services",
		},
	}
	orders := []domain.Order{
		orderOn("o1", 1, 10000,
			domain.LineItem{Kind: domain.LineKindProduct, Name: "Shampoo", Quantity: 1, Subtotal: 3000},
			domain.LineItem{Kind: domain.LineKindService, Name: "Haircut", Quantity: 1, Subtotal: 6000},
			domain.LineItem{Kind: domain.LineKindProduct, Name: "Mystery", Quantity: 1, Subtotal: 1000},
		),
	}

	sales := CategorySales(orders, mapping)

	require.Len(t, sales, 3)
	assert.Equal(t, domain.CategorySales{Category: "Retail", Sales: 30.0}, sales[0])
	assert.Equal(t, domain.CategorySales{Category: "Services", Sales: 60.0}, sales[1])
	assert.Equal(t, domain.CategorySales{Category: "Uncategorized", Sales: 10.0}, sales[2])
}

func TestCategorySales_ZeroFillsKnownCategories(t *testing.T) {
	mapping := domain.CategoryMapping{
		Categories:   []string{"Retail", "Services"},
		ItemCategory: map[string]string{},
	}

	sales := CategorySales(nil, mapping)

	require.Len(t, sales, 2)
	assert.Zero(t, sales[0].Sales)
	assert.Zero(t, sales[1].Sales)
}
