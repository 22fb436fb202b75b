package models

// OrderItem is a single line in a customer's order. Name and Price are
// snapshots taken at add time, so later catalog changes never retroactively
// affect an existing order.
type OrderItem struct {
	MenuItemID          string  `json:"menu_item_id"`
	Name                string  `json:"name"`
	Quantity            int     `json:"quantity"`
	Price               float64 `json:"price"`
	SpecialInstructions string  `json:"special_instructions,omitempty"`
}

// Order is the cart owned by one conversation session. Items keep insertion
// order; Total always equals the sum of Price*Quantity over all lines, and
// every mutation goes through a method that updates both in the same step.
type Order struct {
	SessionID string      `json:"session_id"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
}

// NewOrder creates an empty order for a session.
func NewOrder(sessionID string) *Order {
	return &Order{
		SessionID: sessionID,
		Items:     []OrderItem{},
	}
}

// Clone returns a copy whose items slice shares nothing with the original,
// so callers can serialize it after releasing the owning session's lock.
func (o *Order) Clone() Order {
	items := make([]OrderItem, len(o.Items))
	copy(items, o.Items)
	return Order{
		SessionID: o.SessionID,
		Items:     items,
		Total:     o.Total,
	}
}

// IsEmpty reports whether the order has no line items.
func (o *Order) IsEmpty() bool {
	return len(o.Items) == 0
}

// Add puts one unit of the given catalog item on the order. If a line for
// the same item already exists its quantity grows by one; otherwise a new
// line is appended at unit price. Returns the line after the change.
func (o *Order) Add(item MenuItem) OrderItem {
	for i := range o.Items {
		if o.Items[i].MenuItemID == item.ID {
			o.Items[i].Quantity++
			o.Total += item.Price
			return o.Items[i]
		}
	}
	line := OrderItem{
		MenuItemID: item.ID,
		Name:       item.Name,
		Quantity:   1,
		Price:      item.Price,
	}
	o.Items = append(o.Items, line)
	o.Total += item.Price
	return line
}

// RemoveOne takes one unit of the given item off the order. A line at
// quantity 1 is removed entirely; quantity never stays at zero. The returned
// line reflects the state after the change (Quantity 0 means the line is
// gone). ok is false when the item is not in the order.
func (o *Order) RemoveOne(menuItemID string) (line OrderItem, ok bool) {
	for i := range o.Items {
		if o.Items[i].MenuItemID != menuItemID {
			continue
		}
		o.Total -= o.Items[i].Price
		if o.Items[i].Quantity > 1 {
			o.Items[i].Quantity--
			return o.Items[i], true
		}
		line = o.Items[i]
		line.Quantity = 0
		o.Items = append(o.Items[:i], o.Items[i+1:]...)
		return line, true
	}
	return OrderItem{}, false
}

// PopLast removes the most recently added line regardless of its quantity
// and subtracts its full Price*Quantity from the total. ok is false on an
// empty order.
func (o *Order) PopLast() (line OrderItem, ok bool) {
	if len(o.Items) == 0 {
		return OrderItem{}, false
	}
	line = o.Items[len(o.Items)-1]
	o.Items = o.Items[:len(o.Items)-1]
	o.Total -= line.Price * float64(line.Quantity)
	return line, true
}
