package domain

// ProductSnapshot is what the cart remembers about a product at the
// moment it was added. Price and stock are copies of the catalog's
// values at query time, not live inventory; the order service is the
// authority at checkout.
type ProductSnapshot struct {
	ID    string
	Title string
	Price *Money
	Image string
	Stock int
}

// LineItem is one product entry in the cart. At most one line item per
// product id exists; quantity is bounded by the stock snapshot.
type LineItem struct {
	ProductID string
	Title     string
	UnitPrice *Money
	Image     string
	Quantity  int
	Stock     int
}

// Subtotal returns unit price times quantity for this line.
func (li *LineItem) Subtotal() *Money {
	return li.UnitPrice.MultiplyInt(int64(li.Quantity))
}

// copy returns an independent copy for snapshots handed to callers.
func (li *LineItem) copy() *LineItem {
	dup := *li
	dup.UnitPrice = li.UnitPrice.Copy()
	return &dup
}
