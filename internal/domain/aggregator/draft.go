package aggregator

// Draft field names accepted by SetItemField.
const (
	FieldProduct   = "product"
	FieldQuantity  = "quantity"
	FieldUnitPrice = "unit_price"
)

// LineItemDraft holds one form row exactly as typed.
type LineItemDraft struct {
	Product   string `json:"product"`
	Quantity  string `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

// Draft is an in-progress order owned by a single view.
//
// In the single-item variant Items holds exactly one row carrying the
// description/quantity pair.
type Draft struct {
	Customer string          `json:"customer"`
	Items    []LineItemDraft `json:"items"`
}

// NewDraft starts a draft with one empty row.
func NewDraft() *Draft {
	return &Draft{Items: []LineItemDraft{{}}}
}

// AddItem appends an empty row and returns its index.
func (d *Draft) AddItem() int {
	d.Items = append(d.Items, LineItemDraft{})
	return len(d.Items) - 1
}

// RemoveItem deletes the row at idx. Out of range indexes are ignored.
func (d *Draft) RemoveItem(idx int) {
	if idx < 0 || idx >= len(d.Items) {
		return
	}
	items := make([]LineItemDraft, 0, len(d.Items)-1)
	items = append(items, d.Items[:idx]...)
	d.Items = append(items, d.Items[idx+1:]...)
}

// SetItemField updates one field of the row at idx. It returns false when
// the row or the field does not exist.
func (d *Draft) SetItemField(idx int, field, value string) bool {
	if idx < 0 || idx >= len(d.Items) {
		return false
	}
	switch field {
	case FieldProduct:
		d.Items[idx].Product = value
	case FieldQuantity:
		d.Items[idx].Quantity = value
	case FieldUnitPrice:
		d.Items[idx].UnitPrice = value
	default:
		return false
	}
	return true
}

// Reset clears the form after a successful submission.
func (d *Draft) Reset() {
	d.Customer = ""
	d.Items = []LineItemDraft{{}}
}
