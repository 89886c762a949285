// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/kingu-electrical/kingu-backend/internal/config"
	"github.com/kingu-electrical/kingu-backend/internal/domain/catalog"
	"github.com/kingu-electrical/kingu-backend/internal/pkg/currency"
)

// ErrConfirmationRequired is returned when Clear is called without the
// caller having confirmed the action with the user.
var ErrConfirmationRequired = errors.New("cart clear requires confirmation")

// Store is the persistence the cart needs: a string value per key with
// full-overwrite writes. Satisfied by the Redis client wrapper.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// Notifier delivers transient user-facing feedback for cart actions.
// Failures are the notifier's problem; cart mutations never depend on
// a toast being shown.
type Notifier interface {
	Emit(ctx context.Context, sessionID, message, severity string) error
}

// Service is the sole owner of session cart state; all mutation goes
// through it and every mutating operation ends with a full overwrite
// of the persisted cart.
type Service struct {
	store    Store
	notifier Notifier
	config   *config.Config
}

// NewService creates a new cart service
func NewService(store Store, notifier Notifier, cfg *config.Config) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		config:   cfg,
	}
}

// Get loads the cart for a session. A missing key, read error or
// corrupt payload all yield a fresh empty cart; persistence failures
// never surface to the caller here.
func (s *Service) Get(ctx context.Context, sessionID string) *SessionCart {
	now := time.Now().UTC()
	empty := &SessionCart{
		SessionID: sessionID,
		Items:     []LineItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if sessionID == "" {
		return empty
	}

	data, err := s.store.Get(ctx, cartKey(sessionID))
	if err != nil || data == "" {
		return empty
	}

	var stored SessionCart
	if err := json.Unmarshal([]byte(data), &stored); err != nil {
		// Corrupt persisted state starts over empty
		return empty
	}
	if stored.Items == nil {
		stored.Items = []LineItem{}
	}
	stored.SessionID = sessionID

	return &stored
}

// Add puts a product into the cart. Re-adding a product already in the
// cart increments its quantity instead of duplicating the line.
func (s *Service) Add(ctx context.Context, sessionID string, product *catalog.Product) (*SessionCart, error) {
	cart := s.Get(ctx, sessionID)

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == product.ID {
			cart.Items[i].Quantity++
			found = true
			break
		}
	}

	if !found {
		unit := product.Amount
		if unit == 0 {
			// Seeded products carry their parsed amount; derive it for
			// anything that arrives with only the display string.
			unit = currency.Parse(product.DisplayPrice)
		}
		cart.Items = append(cart.Items, LineItem{
			ProductID:    product.ID,
			Name:         product.Name,
			Category:     product.Category,
			DisplayPrice: product.DisplayPrice,
			UnitAmount:   unit,
			Image:        product.Image,
			Quantity:     1,
			AddedAt:      time.Now().UTC(),
		})
	}

	if err := s.save(ctx, sessionID, cart); err != nil {
		return nil, err
	}

	s.notify(ctx, sessionID, fmt.Sprintf("%s added to cart!", product.Name), "success")

	return cart, nil
}

// Remove deletes the line item for a product. Removing a product that
// is not in the cart is a no-op, not an error.
func (s *Service) Remove(ctx context.Context, sessionID string, productID uint) (*SessionCart, error) {
	cart := s.Get(ctx, sessionID)

	filtered := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID != productID {
			filtered = append(filtered, item)
		}
	}
	cart.Items = filtered

	if err := s.save(ctx, sessionID, cart); err != nil {
		return nil, err
	}

	s.notify(ctx, sessionID, "Item removed from cart", "info")

	return cart, nil
}

// SetQuantity updates the quantity of a line item. A quantity of zero
// or less removes the item; an unknown product ID is a no-op.
func (s *Service) SetQuantity(ctx context.Context, sessionID string, productID uint, quantity int) (*SessionCart, error) {
	if quantity <= 0 {
		return s.Remove(ctx, sessionID, productID)
	}

	cart := s.Get(ctx, sessionID)

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			found = true
			break
		}
	}
	if !found {
		return cart, nil
	}

	if err := s.save(ctx, sessionID, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

// Clear empties the cart. The caller must have collected an explicit
// yes/no confirmation from the user first; without it the cart is left
// untouched.
func (s *Service) Clear(ctx context.Context, sessionID string, confirmed bool) error {
	if !confirmed {
		return ErrConfirmationRequired
	}

	cart := s.Get(ctx, sessionID)
	cart.Items = []LineItem{}

	if err := s.save(ctx, sessionID, cart); err != nil {
		return err
	}

	s.notify(ctx, sessionID, "Cart cleared", "info")

	return nil
}

// Totals calculates the cart totals from line items
func (s *Service) Totals(cart *SessionCart) CartTotals {
	var totals CartTotals

	totals.ItemCount = len(cart.Items)
	for _, item := range cart.Items {
		totals.TotalQuantity += item.Quantity
		totals.Amount += item.UnitAmount * float64(item.Quantity)
	}
	totals.GrandTotal = currency.Format(totals.Amount, s.config.Business.Currency)

	return totals
}

// Count returns the total quantity across all line items, which is the
// number shown on the cart badge (not the number of distinct lines).
func (s *Service) Count(ctx context.Context, sessionID string) int {
	cart := s.Get(ctx, sessionID)

	total := 0
	for _, item := range cart.Items {
		total += item.Quantity
	}

	return total
}

func (s *Service) save(ctx context.Context, sessionID string, cart *SessionCart) error {
	cart.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to serialize cart: %w", err)
	}

	// No expiration: the cart lives until the user explicitly clears it
	if err := s.store.Set(ctx, cartKey(sessionID), string(data)); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}

	return nil
}

func (s *Service) notify(ctx context.Context, sessionID, message, severity string) {
	if s.notifier == nil {
		return
	}
	_ = s.notifier.Emit(ctx, sessionID, message, severity)
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}
