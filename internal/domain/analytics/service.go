// internal/domain/analytics/service.go
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// MaxEvents caps the per-session event log; the oldest entries are
// dropped once the buffer is full.
const MaxEvents = 100

// Event is one tracked user action. Extra carries event-specific
// fields (item counts, totals, service names) flattened alongside the
// fixed fields when serialized.
type Event struct {
	Event     string                 `json:"event"`
	Timestamp string                 `json:"timestamp"` // ISO-8601
	Page      string                 `json:"page"`
	Extra     map[string]interface{} `json:"-"`
}

// MarshalJSON flattens Extra into the top-level object so the stored
// record is {event, timestamp, page, ...extra}.
func (e Event) MarshalJSON() ([]byte, error) {
	record := map[string]interface{}{
		"event":     e.Event,
		"timestamp": e.Timestamp,
		"page":      e.Page,
	}
	for k, v := range e.Extra {
		if k == "event" || k == "timestamp" || k == "page" {
			continue
		}
		record[k] = v
	}
	return json.Marshal(record)
}

// UnmarshalJSON splits the fixed fields back out of a stored record
func (e *Event) UnmarshalJSON(data []byte) error {
	var record map[string]interface{}
	if err := json.Unmarshal(data, &record); err != nil {
		return err
	}

	if v, ok := record["event"].(string); ok {
		e.Event = v
	}
	if v, ok := record["timestamp"].(string); ok {
		e.Timestamp = v
	}
	if v, ok := record["page"].(string); ok {
		e.Page = v
	}
	delete(record, "event")
	delete(record, "timestamp")
	delete(record, "page")
	if len(record) > 0 {
		e.Extra = record
	}

	return nil
}

// Store is the persistence the tracker needs: a capped list per key
type Store interface {
	Push(ctx context.Context, key string, value string, max int64) error
	List(ctx context.Context, key string, n int64) ([]string, error)
}

// Service records user actions into a capped per-session ring buffer.
// Tracking is fire-and-forget for callers: a lost event is never worth
// failing the action it describes.
type Service struct {
	store Store
}

// NewService creates a new analytics service
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Track records an event for the session
func (s *Service) Track(ctx context.Context, sessionID, event, page string, extra map[string]interface{}) error {
	record := Event{
		Event:     event,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Page:      page,
		Extra:     extra,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to serialize event: %w", err)
	}

	if err := s.store.Push(ctx, eventsKey(sessionID), string(data), MaxEvents); err != nil {
		return fmt.Errorf("failed to store event: %w", err)
	}

	return nil
}

// Recent returns up to n events for the session, newest first.
// Unreadable entries are skipped rather than failing the whole read.
func (s *Service) Recent(ctx context.Context, sessionID string, n int64) ([]Event, error) {
	if n <= 0 || n > MaxEvents {
		n = MaxEvents
	}

	values, err := s.store.List(ctx, eventsKey(sessionID), n)
	if err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}

	events := make([]Event, 0, len(values))
	for _, value := range values {
		var event Event
		if err := json.Unmarshal([]byte(value), &event); err != nil {
			continue
		}
		events = append(events, event)
	}

	return events, nil
}

func eventsKey(sessionID string) string {
	return fmt.Sprintf("events:session:%s", sessionID)
}
