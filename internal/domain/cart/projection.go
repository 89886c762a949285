// internal/domain/cart/projection.go
package cart

import (
	"github.com/kingu-electrical/kingu-backend/internal/pkg/currency"
)

// LineView is one cart line prepared for display
type LineView struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"` // verbatim catalog price string
	Subtotal  string `json:"subtotal"`   // formatted unit amount * quantity
}

// View is a read-only projection of the cart for rendering. The web
// page and the mobile cart modal both consume this same structure; an
// empty cart produces the explicit Empty variant with a call to action
// instead of a zero-length line list.
type View struct {
	Empty         bool       `json:"empty"`
	Items         []LineView `json:"items,omitempty"`
	ItemCount     int        `json:"item_count"`
	TotalQuantity int        `json:"total_quantity"`
	GrandTotal    string     `json:"grand_total,omitempty"`
	CallToAction  string     `json:"call_to_action,omitempty"`
}

// Project builds the display projection from a cart snapshot. It is a
// pure function: no persistence, no mutation of the snapshot.
func Project(cart *SessionCart, currencyCode string) View {
	if cart.IsEmpty() {
		return View{
			Empty:        true,
			CallToAction: "Your cart is empty. Browse products to get started.",
		}
	}

	view := View{
		Items:     make([]LineView, len(cart.Items)),
		ItemCount: len(cart.Items),
	}

	var total float64
	for i, item := range cart.Items {
		subtotal := item.UnitAmount * float64(item.Quantity)
		total += subtotal
		view.TotalQuantity += item.Quantity

		view.Items[i] = LineView{
			ProductID: item.ProductID,
			Name:      item.Name,
			Category:  item.Category,
			Image:     item.Image,
			Quantity:  item.Quantity,
			UnitPrice: item.DisplayPrice,
			Subtotal:  currency.Format(subtotal, currencyCode),
		}
	}
	view.GrandTotal = currency.Format(total, currencyCode)

	return view
}
