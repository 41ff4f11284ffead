package domain

// CartLine is one menu item with its requested quantity.
type CartLine struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// Cart holds a user's pending selection. Carts live in Redis keyed by
// user id and expire independently of the session.
type Cart struct {
	UserID string     `json:"user_id"`
	Lines  []CartLine `json:"lines"`
}

// Quantity returns the quantity for a menu item, zero when absent.
func (c *Cart) Quantity(menuItemID string) int {
	for _, line := range c.Lines {
		if line.MenuItemID == menuItemID {
			return line.Quantity
		}
	}
	return 0
}

// SetQuantity updates or inserts a line; quantity zero removes it.
func (c *Cart) SetQuantity(menuItemID string, quantity int) {
	for i, line := range c.Lines {
		if line.MenuItemID == menuItemID {
			if quantity <= 0 {
				c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
				return
			}
			c.Lines[i].Quantity = quantity
			return
		}
	}
	if quantity > 0 {
		c.Lines = append(c.Lines, CartLine{MenuItemID: menuItemID, Quantity: quantity})
	}
}
