package inventory

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rella-labs/profitkit/pkg/models/domain"
)

// Store reads the inventory cost table and the item-category mapping.
// Read-only; the table is maintained elsewhere.
type Store interface {
	GetCostEntries(ctx context.Context) ([]domain.InventoryCostEntry, error)
	GetCategoryMapping(ctx context.Context) (domain.CategoryMapping, error)
}

type inventoryStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &inventoryStore{db: db}, nil
}

func (s *inventoryStore) GetCostEntries(ctx context.Context) ([]domain.InventoryCostEntry, error) {
	query := `
		SELECT name, average_unit_cost
		FROM inventory_costs
		ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query inventory costs: %w", err)
	}
	defer rows.Close()

	var entries []domain.InventoryCostEntry
	for rows.Next() {
		var entry domain.InventoryCostEntry
		if err := rows.Scan(&entry.ItemName, &entry.AverageUnitCost); err != nil {
			return nil, fmt.Errorf("scan inventory cost row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inventory cost rows: %w", err)
	}
	return entries, nil
}

func (s *inventoryStore) GetCategoryMapping(ctx context.Context) (domain.CategoryMapping, error) {
	query := `
		SELECT item_name, category
		FROM item_categories
		ORDER BY item_name`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return domain.CategoryMapping{}, fmt.Errorf("query item categories: %w", err)
	}
	defer rows.Close()

	mapping := domain.CategoryMapping{
		ItemCategory: make(map[string]string),
	}
	seen := make(map[string]bool)

	for rows.Next() {
		var itemName, category string
		if err := rows.Scan(&itemName, &category); err != nil {
			return domain.CategoryMapping{}, fmt.Errorf("scan item category row: %w", err)
		}
		mapping.ItemCategory[itemName] = category
		if !seen[category] {
			seen[category] = true
			mapping.Categories = append(mapping.Categories, category)
		}
	}
	if err := rows.Err(); err != nil {
		return domain.CategoryMapping{}, fmt.Errorf("iterate item category rows: %w", err)
	}
	return mapping, nil
}
