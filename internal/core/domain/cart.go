package domain

import "math"

// CartItem is a single cart line. Name and Price are captured from the
// product at insertion time and are never re-synced with the catalog.
type CartItem struct {
	ProductID string  `json:"productId" bson:"product_id"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

// Cart is embedded in the user document. Count, Subtotal and Total are
// derived from Items and must be recomputed on every mutation.
type Cart struct {
	Items    []CartItem `json:"items" bson:"items"`
	Count    int        `json:"count" bson:"count"`
	Subtotal float64    `json:"subtotal" bson:"subtotal"`
	Discount float64    `json:"discount" bson:"discount"`
	Total    float64    `json:"total" bson:"total"`
}

// NewCart returns an empty cart with zeroed derived fields.
func NewCart() Cart {
	return Cart{Items: []CartItem{}}
}

// Item returns a pointer into Items for productID, or nil when absent.
func (c *Cart) Item(productID string) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// Remove deletes the line for productID and reports whether it was present.
func (c *Cart) Remove(productID string) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Recompute refreshes the derived fields. Lines whose quantity dropped to
// zero or below are removed rather than retained.
func (c *Cart) Recompute() {
	kept := make([]CartItem, 0, len(c.Items))
	count := 0
	subtotal := 0.0
	for _, it := range c.Items {
		if it.Quantity <= 0 {
			continue
		}
		kept = append(kept, it)
		count += it.Quantity
		subtotal += float64(it.Quantity) * it.Price
	}
	c.Items = kept
	c.Count = count
	c.Subtotal = roundCents(subtotal)
	c.Total = roundCents(c.Subtotal - c.Discount)
}

// Clear empties the cart and zeroes every derived field.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.Count = 0
	c.Subtotal = 0
	c.Discount = 0
	c.Total = 0
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
