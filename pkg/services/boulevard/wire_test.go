package boulevard

import (
	"encoding/json"
	"testing"

	"github.com/rella-labs/profitkit/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWireOrder_ToDomain(t *testing.T) {
	raw := `{
		"id": "order-1",
		"closedAt": "2024-03-10T14:30:00Z",
		"summary": {"currentSubtotal": 12500},
		"lineGroups": [{
			"lines": [
				{"__typename": "OrderProductLine", "id": "l1", "name": "Shampoo", "productId": "p1", "quantity": 2, "currentSubtotal": 4000, "currentDiscountAmount": 500},
				{"__typename": "OrderServiceLine", "id": "l2", "name": "Haircut", "serviceId": "s1", "quantity": 1, "currentSubtotal": 8000, "currentDiscountAmount": 0},
				{"__typename": "OrderGratuityLine", "id": "l3", "quantity": 1, "currentSubtotal": 500, "currentDiscountAmount": -100},
				{"__typename": "SomeFutureLine", "id": "l4", "quantity": 1, "currentSubtotal": 100}
			]
		}]
	}`

	var wo wireOrder
	require.NoError(t, json.Unmarshal([]byte(raw), &wo))

	order, err := wo.toDomain()
	require.NoError(t, err)

	assert.Equal(t, "order-1", order.ID)
	assert.Equal(t, int64(12500), order.Subtotal)
	assert.False(t, order.ClosedAt.IsZero())

	require.Len(t, order.LineGroups, 1)
	lines := order.LineGroups[0].Lines
	// Unknown union members are dropped.
	require.Len(t, lines, 3)

	assert.Equal(t, domain.LineKindProduct, lines[0].Kind)
	assert.Equal(t, "p1", lines[0].RefID)
	assert.Equal(t, int64(500), lines[0].Discount)

	assert.Equal(t, domain.LineKindService, lines[1].Kind)
	assert.Equal(t, "s1", lines[1].RefID)

	assert.Equal(t, domain.LineKindGratuity, lines[2].Kind)
	// Negative discounts clamp to zero.
	assert.Equal(t, int64(0), lines[2].Discount)
}

func TestWireOrder_MissingClosedAt(t *testing.T) {
	var wo wireOrder
	require.NoError(t, json.Unmarshal([]byte(`{"id": "o", "summary": {"currentSubtotal": 100}, "lineGroups": []}`), &wo))

	order, err := wo.toDomain()
	require.NoError(t, err)
	assert.True(t, order.ClosedAt.IsZero())
}
