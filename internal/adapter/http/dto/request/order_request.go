package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"controle_pedidos/internal/domain/aggregator"
	"controle_pedidos/internal/domain/entities"
)

var ErrInvalidFormValue = errors.New("form value must be a string or a number")

// FormValue accepts a JSON string, number or null and keeps it as typed text,
// so "2", 2 and "" all reach validation unchanged.
type FormValue string

func (v *FormValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return ErrInvalidFormValue
	}
	*v = FormValue(n.String())
	return nil
}

type LineItemRequest struct {
	Product   string    `json:"product"`
	Quantity  FormValue `json:"quantity"`
	UnitPrice FormValue `json:"unit_price"`
}

// OrderRequest is the order form payload.
//
// Multi-item variants send items; the single-item variant may send
// description/quantity at the top level instead.
type OrderRequest struct {
	Customer    string            `json:"customer"`
	Items       []LineItemRequest `json:"items"`
	Description string            `json:"description"`
	Quantity    FormValue         `json:"quantity"`
}

func (r OrderRequest) ToDraft(schema entities.Schema) aggregator.Draft {
	d := aggregator.Draft{Customer: r.Customer}

	if !schema.MultiItem && len(r.Items) == 0 && (r.Description != "" || r.Quantity != "") {
		d.Items = []aggregator.LineItemDraft{{Product: r.Description, Quantity: string(r.Quantity)}}
		return d
	}

	d.Items = make([]aggregator.LineItemDraft, 0, len(r.Items))
	for _, it := range r.Items {
		d.Items = append(d.Items, aggregator.LineItemDraft{
			Product:   it.Product,
			Quantity:  string(it.Quantity),
			UnitPrice: string(it.UnitPrice),
		})
	}
	return d
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r StatusRequest) ResolveStatus() entities.OrderStatus {
	return entities.OrderStatus(strings.TrimSpace(r.Status))
}
