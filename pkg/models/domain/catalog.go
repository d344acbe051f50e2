package domain

// Credentials identify one upstream business account. Immutable per
// process; a fresh signed token is derived from them on every request.
type Credentials struct {
	KeyID         string
	SigningSecret string // base64 encoded
	BusinessID    string
	Endpoint      string
}

type Location struct {
	ID   string
	Name string
}

type CatalogService struct {
	ID           string
	Name         string
	DefaultPrice int64 // cents
}

type CatalogProduct struct {
	ID        string
	Name      string
	SKU       string
	UnitPrice int64 // cents
}

// InventoryCostEntry maps an item display name to its average unit cost,
// supplied read-only by the relational store.
type InventoryCostEntry struct {
	ItemName        string
	AverageUnitCost float64
}

// CategoryMapping is the supplied name -> category lookup table.
// Categories lists every known category so rollups can zero-fill.
type CategoryMapping struct {
	Categories   []string
	ItemCategory map[string]string
}
