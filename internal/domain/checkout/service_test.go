// internal/domain/checkout/service_test.go
package checkout

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/kingu-electrical/kingu-backend/internal/config"
	"github.com/kingu-electrical/kingu-backend/internal/domain/cart"
	"github.com/kingu-electrical/kingu-backend/internal/domain/catalog"
)

type fakeStore struct {
	data map[string]string
}

func (f *fakeStore) Get(ctx context.Context, key string) (string, error) {
	return f.data[key], nil
}

func (f *fakeStore) Set(ctx context.Context, key string, value string) error {
	f.data[key] = value
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.data, key)
	}
	return nil
}

type fakeTracker struct {
	events []string
	extras []map[string]interface{}
}

func (f *fakeTracker) Track(ctx context.Context, sessionID, event, page string, extra map[string]interface{}) error {
	f.events = append(f.events, event)
	f.extras = append(f.extras, extra)
	return nil
}

type fakeNotifier struct {
	messages   []string
	severities []string
}

func (f *fakeNotifier) Emit(ctx context.Context, sessionID, message, severity string) error {
	f.messages = append(f.messages, message)
	f.severities = append(f.severities, severity)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "Kingu Electrical"},
		Business: config.BusinessConfig{
			WhatsAppNumber: "+255682843552",
			Currency:       "TZS",
		},
	}
}

func newTestService(t *testing.T) (*Service, *cart.Service, *fakeTracker, *fakeNotifier) {
	t.Helper()
	cfg := testConfig()
	cartService := cart.NewService(&fakeStore{data: map[string]string{}}, nil, cfg)
	tracker := &fakeTracker{}
	notifier := &fakeNotifier{}
	return NewService(cartService, tracker, notifier, cfg), cartService, tracker, notifier
}

func fillCart(t *testing.T, cartService *cart.Service) {
	t.Helper()
	ctx := context.Background()

	products := []*catalog.Product{
		{ID: 1, Name: "Diesel Generator 50kVA", Category: "generators", DisplayPrice: "TZS 8,500,000", Amount: 8500000},
		{ID: 2, Name: "Solar Panel 300W", Category: "solar", DisplayPrice: "TZS 250,000", Amount: 250000},
	}
	for _, p := range products {
		if _, err := cartService.Add(ctx, "s1", p); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := cartService.SetQuantity(ctx, "s1", 2, 3); err != nil {
		t.Fatal(err)
	}
}

func TestComposeOrderMessage(t *testing.T) {
	svc, cartService, _, _ := newTestService(t)
	fillCart(t, cartService)

	handoff, err := svc.ComposeOrder(context.Background(), "s1")
	if err != nil {
		t.Fatal(err)
	}

	wantLines := []string{
		"*ORDER REQUEST - KINGU ELECTRICAL*",
		"Customer: [Please provide your name]",
		"Phone: [Please provide your phone]",
		"Delivery Address: [Please provide address]",
		"*Order Details:*",
		"1. Diesel Generator 50kVA",
		"   Price: TZS 8,500,000 each",
		"2. Solar Panel 300W",
		"   Quantity: 3",
		"   Subtotal: TZS 750,000",
		"*Order Summary:*",
		"Total Items: 4",
		"Total Amount: TZS 9,250,000",
		"Please confirm availability and delivery details.",
	}
	for _, line := range wantLines {
		if !strings.Contains(handoff.Message, line) {
			t.Errorf("message missing line %q\n%s", line, handoff.Message)
		}
	}

	if handoff.ItemCount != 2 {
		t.Errorf("item count = %d, want 2", handoff.ItemCount)
	}
	if handoff.TotalAmount != "TZS 9,250,000" {
		t.Errorf("total = %q", handoff.TotalAmount)
	}
}

func TestComposeOrderDeepLink(t *testing.T) {
	svc, cartService, _, _ := newTestService(t)
	fillCart(t, cartService)

	handoff, err := svc.ComposeOrder(context.Background(), "s1")
	if err != nil {
		t.Fatal(err)
	}

	parsed, err := url.Parse(handoff.WhatsAppURL)
	if err != nil {
		t.Fatal(err)
	}
	if parsed.Host != "wa.me" || parsed.Path != "/255682843552" {
		t.Errorf("unexpected link target: %s", handoff.WhatsAppURL)
	}
	// The messaging app must receive the exact message, line breaks included
	if got := parsed.Query().Get("text"); got != handoff.Message {
		t.Errorf("decoded text differs from message:\n%q\nvs\n%q", got, handoff.Message)
	}
}

func TestComposeOrderIsIdempotent(t *testing.T) {
	svc, cartService, tracker, notifier := newTestService(t)
	fillCart(t, cartService)
	ctx := context.Background()

	first, err := svc.ComposeOrder(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.ComposeOrder(ctx, "s1")
	if err != nil {
		t.Fatal(err)
	}

	if first.Message != second.Message {
		t.Error("same snapshot must yield byte-identical messages")
	}
	if first.WhatsAppURL != second.WhatsAppURL {
		t.Error("same snapshot must yield identical deep links")
	}

	// One analytics event per invocation, no more
	if len(tracker.events) != 2 {
		t.Fatalf("expected 2 tracked events, got %d", len(tracker.events))
	}
	for _, event := range tracker.events {
		if event != "checkout_initiated" {
			t.Errorf("unexpected event %q", event)
		}
	}
	if tracker.extras[0]["items"] != 2 || tracker.extras[0]["total"] != 9250000.0 {
		t.Errorf("unexpected event payload: %+v", tracker.extras[0])
	}
	if len(notifier.messages) != 0 {
		t.Errorf("successful checkout must not raise a toast, got %v", notifier.messages)
	}
}

func TestComposeOrderEmptyCart(t *testing.T) {
	svc, _, tracker, notifier := newTestService(t)

	handoff, err := svc.ComposeOrder(context.Background(), "s1")
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if handoff != nil {
		t.Error("no handoff may be produced for an empty cart")
	}
	if len(tracker.events) != 0 {
		t.Error("an empty-cart attempt must not be tracked as a checkout")
	}
	if len(notifier.messages) != 1 {
		t.Fatalf("expected 1 toast, got %d", len(notifier.messages))
	}
	if notifier.messages[0] != "Your cart is empty" {
		t.Errorf("toast message = %q, want %q", notifier.messages[0], "Your cart is empty")
	}
	if notifier.severities[0] != "warning" {
		t.Errorf("toast severity = %q, want %q", notifier.severities[0], "warning")
	}
}
