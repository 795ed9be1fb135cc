// store/cart.go
package store

import (
	"sync"

	"cakmak-pos/models"
)

// CartLine is one row of the in-progress selection. Two taps on the same
// product with the same garnitures and note land on the same line.
type CartLine struct {
	ProductID  int     `json:"productId"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unitPrice"`
	Qty        int     `json:"qty"`
	Garnitures string  `json:"garnitures,omitempty"`
	Note       string  `json:"note,omitempty"`
}

// Extra carries the optional modifiers chosen in the garniture/note dialogs.
type Extra struct {
	Garnitures string
	Note       string
}

// Cart holds the items headed for the selected table's tab. All operations
// are total functions over local state; there are no error paths.
type Cart struct {
	mu    sync.Mutex
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

func sameLine(l CartLine, productID int, extra Extra) bool {
	return l.ProductID == productID && l.Garnitures == extra.Garnitures && l.Note == extra.Note
}

// Add puts the product in the cart at its current first listed price,
// merging into an existing line when product and modifiers match.
func (c *Cart) Add(p models.Product, extra Extra) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if sameLine(c.lines[i], p.ID, extra) {
			c.lines[i].Qty++
			return
		}
	}
	c.lines = append(c.lines, CartLine{
		ProductID:  p.ID,
		Name:       p.Name,
		UnitPrice:  p.CurrentPrice(),
		Qty:        1,
		Garnitures: extra.Garnitures,
		Note:       extra.Note,
	})
}

// Increment bumps the first line matching the product id.
func (c *Cart) Increment(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Qty++
			return
		}
	}
}

// Decrement lowers the first matching line by one and drops the line when it
// reaches zero. Unknown product ids are a no-op.
func (c *Cart) Decrement(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Qty--
			if c.lines[i].Qty <= 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			}
			return
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns a copy of the current cart content.
func (c *Cart) Lines() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total is recomputed from the lines on every call, never cached.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var sum float64
	for _, l := range c.lines {
		sum += float64(l.Qty) * l.UnitPrice
	}
	return sum
}

func (c *Cart) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}
