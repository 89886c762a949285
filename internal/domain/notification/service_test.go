// internal/domain/notification/service_test.go
package notification

import (
	"context"
	"testing"
	"time"
)

// fakeStore records writes and their TTLs
type fakeStore struct {
	data map[string]string
	ttls map[string]time.Duration
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeStore) Get(ctx context.Context, key string) (string, error) {
	return f.data[key], nil
}

func (f *fakeStore) SetWithTTL(ctx context.Context, key string, value string, ttl time.Duration) error {
	f.data[key] = value
	f.ttls[key] = ttl
	return nil
}

func (f *fakeStore) Delete(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.data, key)
		delete(f.ttls, key)
	}
	return nil
}

func TestEmitAndCurrent(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	ctx := context.Background()

	if err := svc.Emit(ctx, "s1", "Item removed from cart", SeverityInfo); err != nil {
		t.Fatal(err)
	}

	toast, ok := svc.Current(ctx, "s1")
	if !ok {
		t.Fatal("expected a visible toast")
	}
	if toast.Message != "Item removed from cart" {
		t.Errorf("message = %q", toast.Message)
	}
	if toast.Icon != "fas fa-info-circle" {
		t.Errorf("icon = %q", toast.Icon)
	}
}

func TestEmitSupersedesCurrentToast(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	ctx := context.Background()

	if err := svc.Emit(ctx, "s1", "first", SeverityInfo); err != nil {
		t.Fatal(err)
	}
	if err := svc.Emit(ctx, "s1", "second", SeverityWarning); err != nil {
		t.Fatal(err)
	}

	toast, ok := svc.Current(ctx, "s1")
	if !ok {
		t.Fatal("expected a visible toast")
	}
	if toast.Message != "second" || toast.Severity != SeverityWarning {
		t.Errorf("new toast must replace the old one, got %+v", toast)
	}
	if len(store.data) != 1 {
		t.Errorf("at most one toast per session, store holds %d", len(store.data))
	}
}

func TestEmitSetsAutoDismissTTL(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	if err := svc.Emit(context.Background(), "s1", "hello", SeveritySuccess); err != nil {
		t.Fatal(err)
	}

	if ttl := store.ttls["notification:session:s1"]; ttl != DisplayDuration {
		t.Errorf("ttl = %v, want %v", ttl, DisplayDuration)
	}
}

func TestUnknownSeverityCoercedToInfo(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	ctx := context.Background()

	if err := svc.Emit(ctx, "s1", "hello", "shouting"); err != nil {
		t.Fatal(err)
	}

	toast, _ := svc.Current(ctx, "s1")
	if toast.Severity != SeverityInfo {
		t.Errorf("severity = %q, want info", toast.Severity)
	}
}

func TestSeverityIconMapping(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	ctx := context.Background()

	tests := map[string]string{
		SeveritySuccess: "fas fa-check-circle",
		SeverityError:   "fas fa-exclamation-circle",
		SeverityWarning: "fas fa-exclamation-triangle",
		SeverityInfo:    "fas fa-info-circle",
	}

	for severity, icon := range tests {
		if err := svc.Emit(ctx, "s1", "msg", severity); err != nil {
			t.Fatal(err)
		}
		toast, _ := svc.Current(ctx, "s1")
		if toast.Icon != icon {
			t.Errorf("severity %q: icon = %q, want %q", severity, toast.Icon, icon)
		}
	}
}

func TestDismiss(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	ctx := context.Background()

	if err := svc.Emit(ctx, "s1", "hello", SeverityInfo); err != nil {
		t.Fatal(err)
	}
	if err := svc.Dismiss(ctx, "s1"); err != nil {
		t.Fatal(err)
	}

	if _, ok := svc.Current(ctx, "s1"); ok {
		t.Error("dismissed toast must not be visible")
	}
}
