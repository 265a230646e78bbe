package domain

import "time"

// CartLine is one product/quantity pair. A line in a Cart always has
// Quantity >= 1.
type CartLine struct {
	ProductID int64
	Quantity  int32
}

// Cart is an ordered list of lines, unique by ProductID. Lines keep the
// order in which their product was first added.
//
// Add and Remove never modify the receiver's backing array, so a Cart
// handed out as a snapshot stays stable after later mutations.
type Cart struct {
	ID        string
	Lines     []CartLine
	UpdatedAt time.Time
}

func (c Cart) indexOf(productID int64) int {
	for i, ln := range c.Lines {
		if ln.ProductID == productID {
			return i
		}
	}
	return -1
}

// Add increments the line for productID in place, or appends a new line
// with quantity 1.
func (c Cart) Add(productID int64) Cart {
	out := c.Clone()
	if i := out.indexOf(productID); i >= 0 {
		out.Lines[i].Quantity++
		return out
	}
	out.Lines = append(out.Lines, CartLine{ProductID: productID, Quantity: 1})
	return out
}

// Remove decrements the line for productID and drops it once the quantity
// reaches zero. The bool is false when no line matched.
func (c Cart) Remove(productID int64) (Cart, bool) {
	i := c.indexOf(productID)
	if i < 0 {
		return c, false
	}
	out := c.Clone()
	out.Lines[i].Quantity--
	if out.Lines[i].Quantity <= 0 {
		out.Lines = append(out.Lines[:i], out.Lines[i+1:]...)
	}
	return out, true
}

func (c Cart) Clear() Cart {
	out := c
	out.Lines = nil
	return out
}

func (c Cart) Clone() Cart {
	out := c
	if c.Lines != nil {
		out.Lines = make([]CartLine, len(c.Lines))
		copy(out.Lines, c.Lines)
	}
	return out
}

// Quantity returns 0 for products not in the cart.
func (c Cart) Quantity(productID int64) int32 {
	if i := c.indexOf(productID); i >= 0 {
		return c.Lines[i].Quantity
	}
	return 0
}

func (c Cart) ItemCount() int {
	n := 0
	for _, ln := range c.Lines {
		n += int(ln.Quantity)
	}
	return n
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
