package checkout

import (
	"github.com/fekuna/omnipos-register-service/internal/model"
	"github.com/shopspring/decimal"
)

// Cart is the in-progress sale for one register session. It is transient
// state: nothing here touches the document store until the cart is settled.
// A Cart belongs to a single session goroutine and is not safe for
// concurrent use.
type Cart struct {
	items      []model.LineItem
	customerID string
	taxRate    decimal.Decimal
}

func NewCart(taxRate decimal.Decimal) *Cart {
	return &Cart{taxRate: taxRate}
}

// AddItem merges by product id: adding an item already in the cart bumps its
// quantity instead of creating a second line. A non-positive quantity counts
// as one.
func (c *Cart) AddItem(item model.LineItem) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity += item.Quantity
			return
		}
	}
	c.items = append(c.items, item)
}

// UpdateQuantity applies a signed delta, clamped at zero. Lines that reach
// zero are removed.
func (c *Cart) UpdateQuantity(itemID string, delta int) {
	for i := range c.items {
		if c.items[i].ID != itemID {
			continue
		}
		q := c.items[i].Quantity + delta
		if q <= 0 {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
		c.items[i].Quantity = q
		return
	}
}

func (c *Cart) SetCustomer(customerID string) {
	c.customerID = customerID
}

func (c *Cart) CustomerID() string {
	return c.customerID
}

func (c *Cart) Items() []model.LineItem {
	items := make([]model.LineItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) Empty() bool {
	return len(c.items) == 0
}

// Clear resets the cart and detaches the active customer.
func (c *Cart) Clear() {
	c.items = nil
	c.customerID = ""
}

func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range c.items {
		sum = sum.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return sum
}

func (c *Cart) Tax() decimal.Decimal {
	return c.Subtotal().Mul(c.taxRate)
}

func (c *Cart) Total() decimal.Decimal {
	return c.Subtotal().Add(c.Tax())
}
