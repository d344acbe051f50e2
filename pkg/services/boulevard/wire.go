package boulevard

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rella-labs/profitkit/pkg/models/domain"
)

// Wire models mirror the upstream JSON. Line items arrive as a polymorphic
// union distinguished by __typename; conversion collapses them into the
// tagged domain.LineItem variant.

type wireOrder struct {
	ID       string     `json:"id"`
	ClosedAt *time.Time `json:"closedAt"`
	Summary  struct {
		CurrentSubtotal json.Number `json:"currentSubtotal"`
	} `json:"summary"`
	LineGroups []struct {
		Lines []wireLine `json:"lines"`
	} `json:"lineGroups"`
}

type wireLine struct {
	Typename              string      `json:"__typename"`
	ID                    string      `json:"id"`
	Name                  string      `json:"name"`
	ProductID             string      `json:"productId"`
	ServiceID             string      `json:"serviceId"`
	Quantity              int         `json:"quantity"`
	CurrentSubtotal       json.Number `json:"currentSubtotal"`
	CurrentDiscountAmount json.Number `json:"currentDiscountAmount"`
}

var lineKindByTypename = map[string]domain.LineKind{
	"OrderProductLine":       domain.LineKindProduct,
	"OrderServiceLine":       domain.LineKindService,
	"OrderGratuityLine":      domain.LineKindGratuity,
	"OrderAccountCreditLine": domain.LineKindCredit,
}

func (w wireOrder) toDomain() (domain.Order, error) {
	subtotal, err := numberToCents(w.Summary.CurrentSubtotal)
	if err != nil {
		return domain.Order{}, fmt.Errorf("order %s: non-numeric subtotal %q", w.ID, w.Summary.CurrentSubtotal)
	}

	order := domain.Order{
		ID:       w.ID,
		Subtotal: subtotal,
	}
	if w.ClosedAt != nil {
		order.ClosedAt = *w.ClosedAt
	}

	for _, group := range w.LineGroups {
		lines := make([]domain.LineItem, 0, len(group.Lines))
		for _, line := range group.Lines {
			kind, ok := lineKindByTypename[line.Typename]
			if !ok {
				// Unknown union member; ignore rather than guess.
				continue
			}

			lineSubtotal, err := numberToCents(line.CurrentSubtotal)
			if err != nil {
				return domain.Order{}, fmt.Errorf("order %s line %s: non-numeric subtotal %q", w.ID, line.ID, line.CurrentSubtotal)
			}
			discount, err := numberToCents(line.CurrentDiscountAmount)
			if err != nil {
				return domain.Order{}, fmt.Errorf("order %s line %s: non-numeric discount %q", w.ID, line.ID, line.CurrentDiscountAmount)
			}
			if discount < 0 {
				discount = 0
			}

			refID := line.ProductID
			if kind == domain.LineKindService {
				refID = line.ServiceID
			}

			lines = append(lines, domain.LineItem{
				Kind:     kind,
				ID:       line.ID,
				RefID:    refID,
				Name:     line.Name,
				Quantity: line.Quantity,
				Subtotal: lineSubtotal,
				Discount: discount,
			})
		}
		order.LineGroups = append(order.LineGroups, domain.LineGroup{Lines: lines})
	}

	return order, nil
}

// numberToCents accepts the upstream's integer minor-unit amounts. An
// empty number (field absent) counts as zero.
func numberToCents(n json.Number) (int64, error) {
	if n.String() == "" {
		return 0, nil
	}
	return n.Int64()
}

type wireLocation struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type wireService struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	DefaultPrice json.Number `json:"defaultPrice"`
}

type wireProduct struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	SKU       string      `json:"sku"`
	UnitPrice json.Number `json:"unitPrice"`
}
