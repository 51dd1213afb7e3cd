package domain

// CartLine is a single product entry in the cart.
type CartLine struct {
	// ProductID identifies the product; unique within the cart.
	ProductID int `json:"product_id"`
	// Title is the product title shown to the shopper.
	Title string `json:"title"`
	// UnitPrice is the price of a single unit.
	UnitPrice float64 `json:"unit_price"`
	// ImageRef is the product thumbnail reference.
	ImageRef string `json:"image_ref"`
	// Quantity is the number of units; always >= 1.
	Quantity int `json:"quantity"`
}

// Subtotal returns the line total.
func (l CartLine) Subtotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// LineInput carries the product fields needed to add a line.
type LineInput struct {
	ProductID int
	Title     string
	UnitPrice float64
	ImageRef  string
}

// CartState is an immutable cart snapshot. Lines keep insertion order and
// Total always equals the fold of UnitPrice*Quantity over Lines: every
// transition recomputes it from scratch, it is never adjusted incrementally.
type CartState struct {
	Lines []CartLine `json:"lines"`
	Total float64    `json:"total"`
}

// Empty returns the initial cart state.
func Empty() CartState {
	return CartState{Lines: []CartLine{}}
}

// AddLine returns a new state with the product added. If a line with the
// same product id already exists its quantity is incremented by one,
// otherwise a new line with quantity 1 is appended. Adding is always legal.
func (s CartState) AddLine(in LineInput) CartState {
	lines := cloneLines(s.Lines)

	if i := indexOf(lines, in.ProductID); i >= 0 {
		lines[i].Quantity++
	} else {
		lines = append(lines, CartLine{
			ProductID: in.ProductID,
			Title:     in.Title,
			UnitPrice: in.UnitPrice,
			ImageRef:  in.ImageRef,
			Quantity:  1,
		})
	}

	return CartState{Lines: lines, Total: sumTotal(lines)}
}

// RemoveLine returns a new state without the given product. Removing an
// absent product is a no-op, not an error.
func (s CartState) RemoveLine(productID int) CartState {
	i := indexOf(s.Lines, productID)
	if i < 0 {
		return s
	}

	lines := make([]CartLine, 0, len(s.Lines)-1)
	lines = append(lines, s.Lines[:i]...)
	lines = append(lines, s.Lines[i+1:]...)

	return CartState{Lines: lines, Total: sumTotal(lines)}
}

// SetQuantity returns a new state with the line's quantity overwritten.
// The request only applies when the line exists and quantity >= 1; anything
// below 1 is silently ignored, keeping the previous quantity. Removal goes
// through RemoveLine only.
func (s CartState) SetQuantity(productID, quantity int) CartState {
	if quantity < 1 {
		return s
	}

	i := indexOf(s.Lines, productID)
	if i < 0 {
		return s
	}

	lines := cloneLines(s.Lines)
	lines[i].Quantity = quantity

	return CartState{Lines: lines, Total: sumTotal(lines)}
}

// Cleared returns the empty cart. Used after an order is confirmed.
func (s CartState) Cleared() CartState {
	return Empty()
}

func indexOf(lines []CartLine, productID int) int {
	for i, l := range lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

func cloneLines(lines []CartLine) []CartLine {
	out := make([]CartLine, len(lines))
	copy(out, lines)
	return out
}

func sumTotal(lines []CartLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Subtotal()
	}
	return total
}
