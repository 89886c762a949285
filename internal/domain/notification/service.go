// internal/domain/notification/service.go
package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Severity levels for toasts. Anything else is coerced to info.
const (
	SeverityInfo    = "info"
	SeveritySuccess = "success"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// DisplayDuration is how long a toast stays visible before it
// auto-dismisses. Manual dismissal is possible at any time.
const DisplayDuration = 5 * time.Second

// severityIcons maps each severity to its fixed display icon
var severityIcons = map[string]string{
	SeverityInfo:    "fas fa-info-circle",
	SeveritySuccess: "fas fa-check-circle",
	SeverityWarning: "fas fa-exclamation-triangle",
	SeverityError:   "fas fa-exclamation-circle",
}

// Toast is a transient user-facing status message
type Toast struct {
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is the persistence the emitter needs. One key per session;
// writing supersedes whatever toast was showing before.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Service emits at-most-one-visible toast per session
type Service struct {
	store Store
}

// NewService creates a new notification service
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Emit shows a toast for the session, replacing any toast currently
// visible. The toast expires on its own after DisplayDuration.
func (s *Service) Emit(ctx context.Context, sessionID, message, severity string) error {
	icon, ok := severityIcons[severity]
	if !ok {
		severity = SeverityInfo
		icon = severityIcons[SeverityInfo]
	}

	toast := Toast{
		Message:   message,
		Severity:  severity,
		Icon:      icon,
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(toast)
	if err != nil {
		return fmt.Errorf("failed to serialize notification: %w", err)
	}

	if err := s.store.SetWithTTL(ctx, toastKey(sessionID), string(data), DisplayDuration); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	return nil
}

// Current returns the toast currently visible for the session, if any
func (s *Service) Current(ctx context.Context, sessionID string) (*Toast, bool) {
	data, err := s.store.Get(ctx, toastKey(sessionID))
	if err != nil || data == "" {
		return nil, false
	}

	var toast Toast
	if err := json.Unmarshal([]byte(data), &toast); err != nil {
		return nil, false
	}

	return &toast, true
}

// Dismiss removes the current toast regardless of remaining display time
func (s *Service) Dismiss(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, toastKey(sessionID))
}

func toastKey(sessionID string) string {
	return fmt.Sprintf("notification:session:%s", sessionID)
}
