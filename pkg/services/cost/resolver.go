package cost

import (
	"sort"
	"strings"

	"github.com/rella-labs/profitkit/pkg/models/domain"
)

// Config tunes cost resolution. The ratios are heuristics applied when
// no inventory record matches an item; they estimate cost as a fraction
// of the realized unit price.
type Config struct {
	SimilarityThreshold float64
	DefaultCostRatios   map[domain.LineKind]float64
}

func DefaultConfig() Config {
	return Config{
		SimilarityThreshold: 0.8,
		DefaultCostRatios: map[domain.LineKind]float64{
			domain.LineKindProduct:  0.5,
			domain.LineKindService:  0.35,
			domain.LineKindGratuity: 0,
			domain.LineKindCredit:   0,
		},
	}
}

// Resolver maps item names to unit costs. Lookup is three-tiered: an
// exact normalized match wins, then the closest fuzzy match above the
// similarity threshold, then the kind's default ratio of the unit price.
type Resolver struct {
	cfg Config

	// costs keyed by normalized name; names holds the normalized keys
	// sorted, so fuzzy ties resolve the same way on every run.
	costs map[string]float64
	names []string
}

func NewResolver(entries []domain.InventoryCostEntry, cfg Config) *Resolver {
	if cfg.SimilarityThreshold <= 0 {
		cfg.SimilarityThreshold = DefaultConfig().SimilarityThreshold
	}
	if cfg.DefaultCostRatios == nil {
		cfg.DefaultCostRatios = DefaultConfig().DefaultCostRatios
	}

	costs := make(map[string]float64, len(entries))
	for _, e := range entries {
		costs[normalizeName(e.ItemName)] = e.AverageUnitCost
	}

	names := make([]string, 0, len(costs))
	for name := range costs {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Resolver{cfg: cfg, costs: costs, names: names}
}

// UnitCost returns the estimated cost of one unit of the named item.
// unitPrice is in dollars and only feeds the ratio fallback.
func (r *Resolver) UnitCost(name string, kind domain.LineKind, unitPrice float64) float64 {
	normalized := normalizeName(name)

	if cost, ok := r.costs[normalized]; ok {
		return cost
	}

	if best, ok := r.closestMatch(normalized); ok {
		return r.costs[best]
	}

	return unitPrice * r.cfg.DefaultCostRatios[kind]
}

// closestMatch scans the known names for the highest similarity at or
// above the threshold. Names iterate in sorted order and ties keep the
// first candidate, so the answer is deterministic.
func (r *Resolver) closestMatch(name string) (string, bool) {
	var best string
	bestScore := r.cfg.SimilarityThreshold

	for _, candidate := range r.names {
		score := similarity(name, candidate)
		if score > bestScore || (score == bestScore && best == "") {
			best = candidate
			bestScore = score
		}
	}
	return best, best != ""
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// similarity is edit distance scaled to [0, 1], where 1 is an exact
// match.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(editDistance(a, b))/float64(longest)
}

func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,
				curr[j-1]+1,
				prev[j-1]+cost,
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
