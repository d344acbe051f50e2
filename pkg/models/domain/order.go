package domain

import "time"

// LineKind tags the variant of a line item within an order.
type LineKind string

const (
	LineKindProduct  LineKind = "product"
	LineKindService  LineKind = "service"
	LineKindGratuity LineKind = "gratuity"
	LineKindCredit   LineKind = "credit"
)

// LineItem is one priced entry within an order. Amounts are in minor
// currency units (cents). Name and RefID are only populated for product
// and service lines; gratuity and credit lines carry the line id alone.
type LineItem struct {
	Kind     LineKind
	ID       string
	RefID    string // product or service catalog id
	Name     string
	Quantity int
	Subtotal int64 // cents
	Discount int64 // cents, >= 0
}

type LineGroup struct {
	Lines []LineItem
}

// Order is a closed sale fetched from the upstream API. Read-only to this
// module. ClosedAt is the zero time when the upstream omitted it; such
// orders are skipped during aggregation.
type Order struct {
	ID         string
	ClosedAt   time.Time
	Subtotal   int64 // cents
	LineGroups []LineGroup
}

// DateRange is a closed interval of calendar dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}
