package analytics

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/rella-labs/profitkit/pkg/models/domain"
	"github.com/rs/zerolog"
)

// CostResolver supplies a unit cost estimate per item. Satisfied by
// cost.Resolver.
type CostResolver interface {
	UnitCost(name string, kind domain.LineKind, unitPrice float64) float64
}

// marginLossRatios scale a discount amount into an estimated profit
// impact per line kind. Heuristic constants, open to tuning.
var marginLossRatios = map[domain.LineKind]float64{
	domain.LineKindProduct:  0.5,
	domain.LineKindService:  0.65,
	domain.LineKindGratuity: 0,
	domain.LineKindCredit:   1,
}

// Engine folds a finite order set into the KPI aggregate. It carries no
// state between Aggregate calls, so the same input always yields the
// same output.
type Engine struct {
	costs CostResolver
}

func NewEngine(costs CostResolver) *Engine {
	return &Engine{costs: costs}
}

// Aggregate reduces orders into totals, a dense daily trend series,
// per-item profitability sorted by profit, and discount impact sorted by
// total discount. Orders without a close timestamp are skipped with a
// warning. Empty input yields a zeroed summary with non-nil slices.
func (e *Engine) Aggregate(ctx context.Context, orders []domain.Order) *domain.ProfitSummary {
	logger := zerolog.Ctx(ctx)

	summary := &domain.ProfitSummary{
		DailyTrends: []domain.DailyMetric{},
		Items:       []domain.ItemProfitability{},
		Discounts:   []domain.DiscountImpact{},
	}

	days := make(map[time.Time]*dailyBucket)
	items := make(map[string]*domain.ItemProfitability)
	discounts := make(map[string]*domain.DiscountImpact)

	var minDay, maxDay time.Time

	for _, order := range orders {
		if order.ClosedAt.IsZero() {
			logger.Warn().Str("order_id", order.ID).Msg("skipping order without close timestamp")
			continue
		}

		day := truncateToDay(order.ClosedAt)
		if minDay.IsZero() || day.Before(minDay) {
			minDay = day
		}
		if maxDay.IsZero() || day.After(maxDay) {
			maxDay = day
		}

		orderSales := centsToDollars(order.Subtotal)
		summary.TotalSales += orderSales
		summary.TotalTransactions++

		bucket, ok := days[day]
		if !ok {
			bucket = &dailyBucket{}
			days[day] = bucket
		}
		bucket.sales += orderSales
		bucket.count++

		var orderCost float64

		for _, group := range order.LineGroups {
			for _, line := range group.Lines {
				lineSales := centsToDollars(line.Subtotal)
				unitPrice := lineSales
				if line.Quantity > 0 {
					unitPrice = lineSales / float64(line.Quantity)
				}

				unitCost := e.costs.UnitCost(line.Name, line.Kind, unitPrice)
				lineCost := unitCost * float64(line.Quantity)
				lineProfit := lineSales - lineCost
				orderCost += lineCost

				itemKey := line.Name
				if itemKey == "" {
					itemKey = string(line.Kind)
				}
				item, ok := items[itemKey]
				if !ok {
					item = &domain.ItemProfitability{Name: itemKey, Kind: line.Kind}
					items[itemKey] = item
				}
				item.Quantity += line.Quantity
				item.TotalSales += lineSales
				item.TotalCost += lineCost
				item.TotalProfit += lineProfit

				if line.Discount > 0 {
					e.recordDiscount(discounts, line)
				}
			}
		}

		bucket.profit += orderSales - orderCost
		summary.TotalProfit += orderSales - orderCost
	}

	if summary.TotalTransactions > 0 {
		summary.AvgTransaction = roundCents(summary.TotalSales / float64(summary.TotalTransactions))
	}
	if summary.TotalSales > 0 {
		summary.ProfitMarginPct = roundCents(summary.TotalProfit / summary.TotalSales * 100)
	}
	summary.TotalSales = roundCents(summary.TotalSales)
	summary.TotalProfit = roundCents(summary.TotalProfit)

	summary.DailyTrends = densify(days, minDay, maxDay)
	summary.Items = sortedItems(items)
	summary.Discounts = sortedDiscounts(discounts)

	return summary
}

func (e *Engine) recordDiscount(buckets map[string]*domain.DiscountImpact, line domain.LineItem) {
	label := "Discounted " + string(line.Kind)
	key := label + "/" + string(line.Kind)

	impact, ok := buckets[key]
	if !ok {
		impact = &domain.DiscountImpact{Label: label, Kind: line.Kind}
		buckets[key] = impact
	}

	amount := centsToDollars(line.Discount)
	impact.TotalDiscount += amount
	impact.UsageCount++
	impact.EstimatedProfitImpact += amount * marginLossRatios[line.Kind]
}

type dailyBucket struct {
	sales, profit float64
	count         int
}

// densify emits one entry per calendar day between first and last
// observed order dates, zero-filled where nothing closed.
func densify(days map[time.Time]*dailyBucket, minDay, maxDay time.Time) []domain.DailyMetric {
	trends := []domain.DailyMetric{}
	if minDay.IsZero() {
		return trends
	}

	for day := minDay; !day.After(maxDay); day = day.AddDate(0, 0, 1) {
		metric := domain.DailyMetric{Date: day}
		if bucket, ok := days[day]; ok {
			metric.Sales = roundCents(bucket.sales)
			metric.Profit = roundCents(bucket.profit)
			metric.TransactionCount = bucket.count
		}
		trends = append(trends, metric)
	}
	return trends
}

func sortedItems(items map[string]*domain.ItemProfitability) []domain.ItemProfitability {
	out := make([]domain.ItemProfitability, 0, len(items))
	for _, item := range items {
		item.TotalSales = roundCents(item.TotalSales)
		item.TotalCost = roundCents(item.TotalCost)
		item.TotalProfit = roundCents(item.TotalProfit)
		if item.TotalSales > 0 {
			item.ProfitMarginPct = roundCents(item.TotalProfit / item.TotalSales * 100)
		}
		out = append(out, *item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalProfit != out[j].TotalProfit {
			return out[i].TotalProfit > out[j].TotalProfit
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func sortedDiscounts(discounts map[string]*domain.DiscountImpact) []domain.DiscountImpact {
	out := make([]domain.DiscountImpact, 0, len(discounts))
	for _, impact := range discounts {
		impact.TotalDiscount = roundCents(impact.TotalDiscount)
		impact.EstimatedProfitImpact = roundCents(impact.EstimatedProfitImpact)
		if impact.UsageCount > 0 {
			impact.AverageDiscount = roundCents(impact.TotalDiscount / float64(impact.UsageCount))
		}
		out = append(out, *impact)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalDiscount != out[j].TotalDiscount {
			return out[i].TotalDiscount > out[j].TotalDiscount
		}
		return out[i].Label < out[j].Label
	})
	return out
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func centsToDollars(cents int64) float64 {
	return float64(cents) / 100.0
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
