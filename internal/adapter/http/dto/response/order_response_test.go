package response

import (
	"testing"
	"time"

	"controle_pedidos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func unitPrice(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestFromOrder(t *testing.T) {
	created := time.Date(2024, 5, 7, 15, 0, 0, 0, time.UTC)
	o := entities.Order{
		ID:       "o-1",
		Customer: "Ana",
		Items: []entities.LineItem{
			{Product: "Caneca", Quantity: 2, UnitPrice: unitPrice("10")},
			{Product: "Chaveiro", Quantity: 3, UnitPrice: unitPrice("5.00")},
		},
		Status:    entities.OrderStatusPreparo,
		CreatedAt: created,
	}

	res := FromOrder(o)
	if res.ID != "o-1" || res.Customer != "Ana" || res.Status != "PREPARO" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Total != "35" || res.TotalDisplay != "R$ 35.00" {
		t.Fatalf("unexpected total: %s %s", res.Total, res.TotalDisplay)
	}
	if res.DateLabel != "07/05" || !res.CreatedAt.Equal(created) {
		t.Fatalf("unexpected date: %s", res.DateLabel)
	}
	if res.StatusTone != "warning" {
		t.Fatalf("unexpected tone: %s", res.StatusTone)
	}
	if *res.Items[0].UnitPrice != "10" || *res.Items[0].Total != "20" {
		t.Fatalf("unexpected line: %+v", res.Items[0])
	}
	if res.Items[0].Display != "Caneca x2 @ R$ 10.00 = R$ 20.00" {
		t.Fatalf("unexpected display: %q", res.Items[0].Display)
	}
}

func TestFromOrder_Unpriced(t *testing.T) {
	res := FromOrder(entities.Order{ID: "o-2", Items: []entities.LineItem{{Product: "Pizza", Quantity: 1}}, Status: "saiu"})
	if res.Items[0].UnitPrice != nil || res.Items[0].Total != nil {
		t.Fatalf("expected no pricing: %+v", res.Items[0])
	}
	if res.Items[0].Display != "Pizza x1" || res.Total != "0" || res.StatusTone != "" {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestFromOrder_ExactAmounts(t *testing.T) {
	res := FromOrder(entities.Order{
		ID:     "o-3",
		Items:  []entities.LineItem{{Product: "Parafuso", Quantity: 13, UnitPrice: unitPrice("1.333")}},
		Status: entities.OrderStatusPreparo,
	})
	if *res.Items[0].UnitPrice != "1.333" || *res.Items[0].Total != "17.329" {
		t.Fatalf("amounts must not be rounded: %+v", res.Items[0])
	}
	if res.Total != "17.329" || res.TotalDisplay != "R$ 17.33" {
		t.Fatalf("unexpected total: %s %s", res.Total, res.TotalDisplay)
	}
	if res.Items[0].Display != "Parafuso x13 @ R$ 1.33 = R$ 17.33" {
		t.Fatalf("unexpected display: %q", res.Items[0].Display)
	}

	list := FromOrders([]entities.Order{
		{ID: "a", Items: []entities.LineItem{{Product: "x", Quantity: 1, UnitPrice: unitPrice("0.005")}}},
		{ID: "b", Items: []entities.LineItem{{Product: "y", Quantity: 1, UnitPrice: unitPrice("0.004")}}},
	})
	if list.GrandTotal != "0.009" || list.GrandTotalDisplay != "R$ 0.01" {
		t.Fatalf("unexpected grand total: %s %s", list.GrandTotal, list.GrandTotalDisplay)
	}
}

func TestFromOrders(t *testing.T) {
	empty := FromOrders(nil)
	if empty.Count != 0 || empty.GrandTotal != "0" || empty.Orders == nil {
		t.Fatalf("unexpected empty list: %+v", empty)
	}

	list := FromOrders([]entities.Order{
		{ID: "a", Items: []entities.LineItem{{Product: "x", Quantity: 2, UnitPrice: unitPrice("1.25")}}, Status: entities.OrderStatusFinalizado},
		{ID: "b", Items: []entities.LineItem{{Product: "y", Quantity: 1, UnitPrice: unitPrice("7.5")}}, Status: entities.OrderStatusEntregue},
	})
	if list.Count != 2 || list.Orders[0].ID != "a" || list.Orders[1].ID != "b" {
		t.Fatalf("unexpected order: %+v", list.Orders)
	}
	if list.GrandTotal != "10" || list.GrandTotalDisplay != "R$ 10.00" {
		t.Fatalf("unexpected grand total: %+v", list)
	}
	if list.Orders[0].StatusTone != "success" || list.Orders[1].StatusTone != "muted" {
		t.Fatalf("unexpected tones: %+v", list.Orders)
	}
}

func TestFromSchema(t *testing.T) {
	res := FromSchema(entities.DefaultSchema())
	if len(res.Statuses) != 3 || res.InitialStatus != "PREPARO" || res.FreeTextStatus {
		t.Fatalf("unexpected schema: %+v", res)
	}
	free := FromSchema(entities.Schema{})
	if !free.FreeTextStatus || len(free.Statuses) != 0 {
		t.Fatalf("unexpected schema: %+v", free)
	}
}
