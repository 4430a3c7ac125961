package request

import (
	"encoding/json"
	"testing"

	"controle_pedidos/internal/domain/aggregator"
	"controle_pedidos/internal/domain/entities"
)

func TestFormValue_Unmarshal(t *testing.T) {
	var r LineItemRequest
	if err := json.Unmarshal([]byte(`{"product":"Caneca","quantity":2,"unit_price":"10.50"}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Quantity != "2" || r.UnitPrice != "10.50" {
		t.Fatalf("unexpected values: %+v", r)
	}

	if err := json.Unmarshal([]byte(`{"quantity":null,"unit_price":0.1}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Quantity != "" || r.UnitPrice != "0.1" {
		t.Fatalf("unexpected values: %+v", r)
	}

	if err := json.Unmarshal([]byte(`{"quantity":true}`), &r); err == nil {
		t.Fatalf("expected error for boolean quantity")
	}
}

func TestOrderRequest_ToDraft(t *testing.T) {
	t.Run("multi item", func(t *testing.T) {
		r := OrderRequest{
			Customer: "Ana",
			Items: []LineItemRequest{
				{Product: "Caneca", Quantity: "2", UnitPrice: "10"},
				{Product: "Chaveiro", Quantity: "3", UnitPrice: "5"},
			},
		}
		d := r.ToDraft(entities.DefaultSchema())
		if d.Customer != "Ana" || len(d.Items) != 2 {
			t.Fatalf("unexpected draft: %+v", d)
		}
		if d.Items[1] != (aggregator.LineItemDraft{Product: "Chaveiro", Quantity: "3", UnitPrice: "5"}) {
			t.Fatalf("unexpected item: %+v", d.Items[1])
		}
	})

	t.Run("flat description and quantity", func(t *testing.T) {
		r := OrderRequest{Description: "Pizza", Quantity: "1"}
		d := r.ToDraft(entities.Schema{})
		if len(d.Items) != 1 || d.Items[0].Product != "Pizza" || d.Items[0].Quantity != "1" {
			t.Fatalf("unexpected draft: %+v", d)
		}
	})

	t.Run("no items stays empty", func(t *testing.T) {
		d := OrderRequest{Customer: "Ana"}.ToDraft(entities.DefaultSchema())
		if len(d.Items) != 0 {
			t.Fatalf("expected no items, got %+v", d.Items)
		}
	})
}

func TestStatusRequest_ResolveStatus(t *testing.T) {
	if got := (StatusRequest{Status: " ENTREGUE "}).ResolveStatus(); got != entities.OrderStatusEntregue {
		t.Fatalf("expected ENTREGUE, got %q", got)
	}
}
