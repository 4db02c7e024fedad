package dto

// CartItemInput mirrors the loosely-shaped cart payload persisted by older
// clients, where the image field was written under several names over time.
type CartItemInput struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Price    int    `json:"price"`
	ImageUrl string `json:"imageUrl"`
	ImageURL string `json:"imageURL"`
	Image    string `json:"image"`
	Qty      int    `json:"qty"`
}

// CartItem is the canonical cart record.
type CartItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Price    int    `json:"price"`
	ImageURL string `json:"imageUrl"`
	Qty      int    `json:"qty"`
}

// Normalize resolves the image field with documented precedence
// (imageUrl, then imageURL, then image) and clamps the quantity to at
// least one.
func (i CartItemInput) Normalize() CartItem {
	image := i.ImageUrl
	if image == "" {
		image = i.ImageURL
	}
	if image == "" {
		image = i.Image
	}
	qty := i.Qty
	if qty < 1 {
		qty = 1
	}
	return CartItem{
		ID:       i.ID,
		Title:    i.Title,
		Price:    i.Price,
		ImageURL: image,
		Qty:      qty,
	}
}

// CartTotal sums price*qty over the cart.
func CartTotal(items []CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Price * item.Qty
	}
	return total
}
