package entities

// Schema selects which order variant the service runs.
//
//   - TrackUnitPrice: items carry a unit price and a computed line total.
//   - MultiItem: orders hold a list of items; otherwise a single
//     description/quantity pair.
//   - RequireCustomerName: the customer name must be present.
//   - Statuses: the closed status list; empty means free text.
type Schema struct {
	TrackUnitPrice      bool
	MultiItem           bool
	RequireCustomerName bool
	Statuses            []OrderStatus
}

// DefaultSchema is the multi-item, priced variant with the default statuses.
func DefaultSchema() Schema {
	statuses := make([]OrderStatus, len(DefaultStatuses))
	copy(statuses, DefaultStatuses)
	return Schema{
		TrackUnitPrice:      true,
		MultiItem:           true,
		RequireCustomerName: true,
		Statuses:            statuses,
	}
}

// FreeTextStatus reports whether any non-empty status is accepted.
func (s Schema) FreeTextStatus() bool {
	return len(s.Statuses) == 0
}

// InitialStatus is the status attached to new orders.
func (s Schema) InitialStatus() OrderStatus {
	if len(s.Statuses) == 0 {
		return OrderStatusPreparo
	}
	return s.Statuses[0]
}
