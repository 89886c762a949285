// internal/domain/cart/entity.go
package cart

import (
	"time"
)

// LineItem represents one product in a session cart. DisplayPrice is
// the verbatim catalog string; UnitAmount is its numeric value captured
// when the item first enters the cart. AddedAt is set at first
// insertion and never updated by quantity changes.
type LineItem struct {
	ProductID    uint      `json:"product_id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	DisplayPrice string    `json:"price"`
	UnitAmount   float64   `json:"unit_amount"`
	Image        string    `json:"image"`
	Quantity     int       `json:"quantity"`
	AddedAt      time.Time `json:"added_at"`
}

// SessionCart represents a cart for one device session (stored in Redis).
// Items keep insertion order; at most one line item exists per product.
type SessionCart struct {
	SessionID string     `json:"session_id"`
	Items     []LineItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// IsEmpty reports whether the cart has no line items
func (c *SessionCart) IsEmpty() bool {
	return len(c.Items) == 0
}

// CartTotals represents calculated cart totals
type CartTotals struct {
	ItemCount     int     `json:"item_count"`     // Number of unique items
	TotalQuantity int     `json:"total_quantity"` // Sum of all quantities
	Amount        float64 `json:"amount"`         // Sum of unit amount * quantity
	GrandTotal    string  `json:"grand_total"`    // Formatted display total
}
