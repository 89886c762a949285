// internal/domain/analytics/service_test.go
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore implements the capped list with a plain slice
type fakeStore struct {
	lists map[string][]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{lists: map[string][]string{}}
}

func (f *fakeStore) Push(ctx context.Context, key string, value string, max int64) error {
	list := append([]string{value}, f.lists[key]...)
	if int64(len(list)) > max {
		list = list[:max]
	}
	f.lists[key] = list
	return nil
}

func (f *fakeStore) List(ctx context.Context, key string, n int64) ([]string, error) {
	list := f.lists[key]
	if int64(len(list)) > n {
		list = list[:n]
	}
	return list, nil
}

func TestTrackAndRecent(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	ctx := context.Background()

	err := svc.Track(ctx, "s1", "checkout_initiated", "shop", map[string]interface{}{
		"items": 2,
		"total": 9250000.0,
	})
	require.NoError(t, err)

	events, err := svc.Recent(ctx, "s1", 10)
	require.NoError(t, err)
	require.Len(t, events, 1)

	assert.Equal(t, "checkout_initiated", events[0].Event)
	assert.Equal(t, "shop", events[0].Page)
	assert.NotEmpty(t, events[0].Timestamp)
	assert.Equal(t, float64(2), events[0].Extra["items"])
	assert.Equal(t, 9250000.0, events[0].Extra["total"])
}

func TestEventRecordIsFlat(t *testing.T) {
	event := Event{
		Event:     "page_view",
		Timestamp: "2026-01-15T09:30:00Z",
		Page:      "services",
		Extra:     map[string]interface{}{"service": "Generator Services"},
	}

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &record))

	// Extra fields sit alongside the fixed ones, not nested
	assert.Equal(t, "page_view", record["event"])
	assert.Equal(t, "services", record["page"])
	assert.Equal(t, "Generator Services", record["service"])
	assert.NotContains(t, record, "extra")
}

func TestRingBufferCapsAtMaxEvents(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	ctx := context.Background()

	for i := 0; i < MaxEvents+20; i++ {
		err := svc.Track(ctx, "s1", fmt.Sprintf("event_%d", i), "home", nil)
		require.NoError(t, err)
	}

	events, err := svc.Recent(ctx, "s1", MaxEvents+20)
	require.NoError(t, err)
	assert.Len(t, events, MaxEvents)

	// Newest first; the oldest 20 were dropped
	assert.Equal(t, fmt.Sprintf("event_%d", MaxEvents+19), events[0].Event)
	assert.Equal(t, "event_20", events[len(events)-1].Event)
}

func TestRecentSkipsCorruptEntries(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	ctx := context.Background()

	require.NoError(t, svc.Track(ctx, "s1", "ok", "home", nil))
	store.lists["events:session:s1"] = append(store.lists["events:session:s1"], "{broken")

	events, err := svc.Recent(ctx, "s1", 10)
	require.NoError(t, err)
	assert.Len(t, events, 1)
	assert.Equal(t, "ok", events[0].Event)
}
