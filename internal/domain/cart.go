package domain

// CartItem is a single line in the cart. Identity is (ProductID, Size):
// the same product in two sizes makes two distinct lines.
type CartItem struct {
	ProductID int64  `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Image     string `json:"image"`
	Size      string `json:"selectedSize"`
	Quantity  int    `json:"quantity"`
}

type Cart struct {
	Items []CartItem `json:"items"`
}

// Add merges the item into the cart. An existing (ProductID, Size) line has
// its quantity incremented instead of a duplicate line being appended.
func (c *Cart) Add(item CartItem) {
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	for i, line := range c.Items {
		if line.ProductID == item.ProductID && line.Size == item.Size {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}

// UpdateQuantity sets the quantity of a line. Zero or negative removes the line.
func (c *Cart) UpdateQuantity(productID int64, size string, quantity int) {
	for i, line := range c.Items {
		if line.ProductID == productID && line.Size == size {
			if quantity <= 0 {
				c.Items = append(c.Items[:i], c.Items[i+1:]...)
			} else {
				c.Items[i].Quantity = quantity
			}
			return
		}
	}
}

// Remove deletes the (productID, size) line regardless of quantity.
func (c *Cart) Remove(productID int64, size string) {
	for i, line := range c.Items {
		if line.ProductID == productID && line.Size == size {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Subtotal is the sum of price times quantity over all lines.
func (c *Cart) Subtotal() int64 {
	var total int64
	for _, line := range c.Items {
		total += line.Price * int64(line.Quantity)
	}
	return total
}

// Snapshot returns a copy of the cart lines, detached from the live cart.
func (c *Cart) Snapshot() []CartItem {
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	return items
}
