package response

import (
	"fmt"
	"time"

	"controle_pedidos/internal/domain/aggregator"
	"controle_pedidos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const dateLabelLayout = "02/01"

type LineItemResponse struct {
	Product   string  `json:"product"`
	Quantity  int     `json:"quantity"`
	UnitPrice *string `json:"unit_price,omitempty"`
	Total     *string `json:"total,omitempty"`
	Display   string  `json:"display"`
}

type OrderResponse struct {
	ID           string             `json:"id"`
	Customer     string             `json:"customer,omitempty"`
	Items        []LineItemResponse `json:"items"`
	Status       string             `json:"status"`
	StatusTone   string             `json:"status_tone,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	DateLabel    string             `json:"date_label"`
	Total        string             `json:"total"`
	TotalDisplay string             `json:"total_display"`
}

type OrderListResponse struct {
	Orders            []OrderResponse `json:"orders"`
	Count             int             `json:"count"`
	GrandTotal        string          `json:"grand_total"`
	GrandTotalDisplay string          `json:"grand_total_display"`
}

type SchemaResponse struct {
	TrackUnitPrice      bool     `json:"track_unit_price"`
	MultiItem           bool     `json:"multi_item"`
	RequireCustomerName bool     `json:"require_customer_name"`
	FreeTextStatus      bool     `json:"free_text_status"`
	Statuses            []string `json:"statuses"`
	InitialStatus       string   `json:"initial_status"`
}

// FormatMoney renders a value with two decimal places, e.g. "R$ 35.00".
// Only *_display fields are rounded; amount fields carry the exact decimal.
func FormatMoney(v decimal.Decimal) string {
	return "R$ " + v.StringFixed(2)
}

// StatusTone is the row colour hint of a status.
func StatusTone(s entities.OrderStatus) string {
	switch s {
	case entities.OrderStatusPreparo, "EM PREPARO":
		return "warning"
	case entities.OrderStatusFinalizado:
		return "success"
	case entities.OrderStatusEntregue:
		return "muted"
	default:
		return ""
	}
}

func FromLineItem(li entities.LineItem) LineItemResponse {
	res := LineItemResponse{
		Product:  li.Product,
		Quantity: li.Quantity,
		Display:  fmt.Sprintf("%s x%d", li.Product, li.Quantity),
	}
	if total, ok := aggregator.ItemTotal(li); ok {
		unit := li.UnitPrice.String()
		lineTotal := total.String()
		res.UnitPrice = &unit
		res.Total = &lineTotal
		res.Display = fmt.Sprintf("%s @ %s = %s", res.Display, FormatMoney(*li.UnitPrice), FormatMoney(total))
	}
	return res
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]LineItemResponse, 0, len(o.Items))
	for _, li := range o.Items {
		items = append(items, FromLineItem(li))
	}
	total := aggregator.OrderTotal(o)
	return OrderResponse{
		ID:           o.ID,
		Customer:     o.Customer,
		Items:        items,
		Status:       string(o.Status),
		StatusTone:   StatusTone(o.Status),
		CreatedAt:    o.CreatedAt,
		DateLabel:    o.CreatedAt.UTC().Format(dateLabelLayout),
		Total:        total.String(),
		TotalDisplay: FormatMoney(total),
	}
}

// FromOrders keeps the order delivered by the store.
func FromOrders(orders []entities.Order) OrderListResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	grand := aggregator.GrandTotal(orders)
	return OrderListResponse{
		Orders:            out,
		Count:             len(out),
		GrandTotal:        grand.String(),
		GrandTotalDisplay: FormatMoney(grand),
	}
}

func FromSchema(s entities.Schema) SchemaResponse {
	statuses := make([]string, 0, len(s.Statuses))
	for _, st := range s.Statuses {
		statuses = append(statuses, string(st))
	}
	return SchemaResponse{
		TrackUnitPrice:      s.TrackUnitPrice,
		MultiItem:           s.MultiItem,
		RequireCustomerName: s.RequireCustomerName,
		FreeTextStatus:      s.FreeTextStatus(),
		Statuses:            statuses,
		InitialStatus:       string(s.InitialStatus()),
	}
}
