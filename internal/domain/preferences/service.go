// internal/domain/preferences/service.go
package preferences

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kingu-electrical/kingu-backend/internal/config"
)

// Preferences is the per-session settings record. Notifications are on
// unless the user switches them off.
type Preferences struct {
	DarkMode             bool   `json:"dark_mode"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	Favorites            []uint `json:"favorites"`
}

// Store is the persistence the preferences need
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
}

// Service owns per-session preferences. Reads are fail-soft and every
// write is a full overwrite of the stored record.
type Service struct {
	store  Store
	config *config.Config
}

// NewService creates a new preferences service
func NewService(store Store, cfg *config.Config) *Service {
	return &Service{
		store:  store,
		config: cfg,
	}
}

func defaults() *Preferences {
	return &Preferences{
		DarkMode:             false,
		NotificationsEnabled: true,
		Favorites:            []uint{},
	}
}

// Get loads the preferences for a session, falling back to defaults on
// a missing key, read error or corrupt payload.
func (s *Service) Get(ctx context.Context, sessionID string) *Preferences {
	if sessionID == "" {
		return defaults()
	}

	data, err := s.store.Get(ctx, prefsKey(sessionID))
	if err != nil || data == "" {
		return defaults()
	}

	var prefs Preferences
	if err := json.Unmarshal([]byte(data), &prefs); err != nil {
		return defaults()
	}
	if prefs.Favorites == nil {
		prefs.Favorites = []uint{}
	}

	return &prefs
}

// Update replaces the stored preferences with the given record
func (s *Service) Update(ctx context.Context, sessionID string, prefs *Preferences) error {
	if prefs.Favorites == nil {
		prefs.Favorites = []uint{}
	}
	return s.save(ctx, sessionID, prefs)
}

// ToggleDarkMode flips dark mode and returns the updated record
func (s *Service) ToggleDarkMode(ctx context.Context, sessionID string) (*Preferences, error) {
	prefs := s.Get(ctx, sessionID)
	prefs.DarkMode = !prefs.DarkMode

	if err := s.save(ctx, sessionID, prefs); err != nil {
		return nil, err
	}

	return prefs, nil
}

// AddFavorite marks a product as a favorite. Adding a product that is
// already a favorite changes nothing.
func (s *Service) AddFavorite(ctx context.Context, sessionID string, productID uint) (*Preferences, error) {
	prefs := s.Get(ctx, sessionID)

	for _, id := range prefs.Favorites {
		if id == productID {
			return prefs, nil
		}
	}
	prefs.Favorites = append(prefs.Favorites, productID)

	if err := s.save(ctx, sessionID, prefs); err != nil {
		return nil, err
	}

	return prefs, nil
}

// RemoveFavorite unmarks a product. Removing a product that is not a
// favorite is a no-op.
func (s *Service) RemoveFavorite(ctx context.Context, sessionID string, productID uint) (*Preferences, error) {
	prefs := s.Get(ctx, sessionID)

	filtered := prefs.Favorites[:0]
	for _, id := range prefs.Favorites {
		if id != productID {
			filtered = append(filtered, id)
		}
	}
	prefs.Favorites = filtered

	if err := s.save(ctx, sessionID, prefs); err != nil {
		return nil, err
	}

	return prefs, nil
}

// IsFavorite reports whether a product is in the session's favorites
func (s *Service) IsFavorite(ctx context.Context, sessionID string, productID uint) bool {
	for _, id := range s.Get(ctx, sessionID).Favorites {
		if id == productID {
			return true
		}
	}
	return false
}

func (s *Service) save(ctx context.Context, sessionID string, prefs *Preferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to serialize preferences: %w", err)
	}

	if err := s.store.Set(ctx, prefsKey(sessionID), string(data)); err != nil {
		return fmt.Errorf("failed to persist preferences: %w", err)
	}

	return nil
}

func prefsKey(sessionID string) string {
	return fmt.Sprintf("preferences:session:%s", sessionID)
}
