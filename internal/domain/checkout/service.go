// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kingu-electrical/kingu-backend/internal/config"
	"github.com/kingu-electrical/kingu-backend/internal/domain/cart"
	"github.com/kingu-electrical/kingu-backend/internal/pkg/currency"
	"github.com/kingu-electrical/kingu-backend/internal/pkg/deeplink"
)

// ErrEmptyCart is returned when a checkout is attempted on an empty
// cart. No deep link is ever produced for an empty order.
var ErrEmptyCart = errors.New("cart is empty, nothing to check out")

// Tracker records analytics events for checkout actions
type Tracker interface {
	Track(ctx context.Context, sessionID, event, page string, extra map[string]interface{}) error
}

// Notifier delivers transient user-facing feedback for checkout actions
type Notifier interface {
	Emit(ctx context.Context, sessionID, message, severity string) error
}

// Service turns a cart snapshot into a WhatsApp order handoff. There
// is no payment or order record behind this: the composed message IS
// the order, and the business picks it up in their WhatsApp inbox.
type Service struct {
	cartService *cart.Service
	tracker     Tracker
	notifier    Notifier
	config      *config.Config
}

// NewService creates a new checkout service
func NewService(cartService *cart.Service, tracker Tracker, notifier Notifier, cfg *config.Config) *Service {
	return &Service{
		cartService: cartService,
		tracker:     tracker,
		notifier:    notifier,
		config:      cfg,
	}
}

// OrderHandoff is the composed order message and the deep link that
// opens it in the messaging app
type OrderHandoff struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
	ItemCount   int    `json:"item_count"`
	TotalAmount string `json:"total_amount"`
}

// ComposeOrder builds the order message and deep link for the current
// cart. The transform is deterministic: the same snapshot always yields
// byte-identical output. Each invocation records exactly one
// checkout_initiated event.
func (s *Service) ComposeOrder(ctx context.Context, sessionID string) (*OrderHandoff, error) {
	snapshot := s.cartService.Get(ctx, sessionID)
	if snapshot.IsEmpty() {
		s.notify(ctx, sessionID, "Your cart is empty", "warning")
		return nil, ErrEmptyCart
	}

	totals := s.cartService.Totals(snapshot)
	message := s.buildOrderMessage(snapshot, totals)

	if s.tracker != nil {
		_ = s.tracker.Track(ctx, sessionID, "checkout_initiated", "shop", map[string]interface{}{
			"items": totals.ItemCount,
			"total": totals.Amount,
		})
	}

	return &OrderHandoff{
		Message:     message,
		WhatsAppURL: deeplink.WhatsApp(s.config.Business.WhatsAppNumber, message),
		ItemCount:   totals.ItemCount,
		TotalAmount: totals.GrandTotal,
	}, nil
}

// buildOrderMessage renders the multi-line order text: header,
// placeholders for the customer details the business collects in chat,
// numbered line items, then the order summary.
func (s *Service) buildOrderMessage(snapshot *cart.SessionCart, totals cart.CartTotals) string {
	code := s.config.Business.Currency

	var b strings.Builder
	fmt.Fprintf(&b, "*ORDER REQUEST - %s*\n\n", strings.ToUpper(s.config.App.Name))
	b.WriteString("Customer: [Please provide your name]\n")
	b.WriteString("Phone: [Please provide your phone]\n")
	b.WriteString("Delivery Address: [Please provide address]\n\n")
	b.WriteString("*Order Details:*\n")

	for i, item := range snapshot.Items {
		subtotal := item.UnitAmount * float64(item.Quantity)
		fmt.Fprintf(&b, "%d. %s\n", i+1, item.Name)
		fmt.Fprintf(&b, "   Quantity: %d\n", item.Quantity)
		fmt.Fprintf(&b, "   Price: %s each\n", item.DisplayPrice)
		fmt.Fprintf(&b, "   Subtotal: %s\n\n", currency.Format(subtotal, code))
	}

	b.WriteString("*Order Summary:*\n")
	fmt.Fprintf(&b, "Total Items: %d\n", totals.TotalQuantity)
	fmt.Fprintf(&b, "Total Amount: %s\n\n", totals.GrandTotal)
	b.WriteString("Please confirm availability and delivery details.")

	return b.String()
}

func (s *Service) notify(ctx context.Context, sessionID, message, severity string) {
	if s.notifier == nil {
		return
	}
	_ = s.notifier.Emit(ctx, sessionID, message, severity)
}
