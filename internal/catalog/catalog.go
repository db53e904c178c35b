// Package catalog maintains the menu item catalog: a fixed seed of built-in
// items, admin-created custom items, and the generated-image overlay that
// supplies production image URLs.
package catalog

import "soupshoppe/internal/models"

// Store is the persistence surface the catalog service needs.
type Store interface {
	CustomItems() []models.MenuItem
	GeneratedImages() []models.GeneratedImage
}

// Service resolves item references against the live catalog.
type Service struct {
	store Store
	seed  []models.MenuItem
}

// NewService creates a catalog service over store with the built-in seed.
func NewService(store Store) *Service {
	return &Service{store: store, seed: BuiltinItems()}
}

// Items returns the full merged catalog: seed items overlaid with stored
// image URLs, followed by custom items.
func (s *Service) Items() []models.MenuItem {
	return Merge(s.seed, s.store.CustomItems(), s.store.GeneratedImages(), nil)
}

// Resolve looks up an item id in the merged catalog. A dangling id returns
// nil; that is not an error anywhere in the menu workflow.
func (s *Service) Resolve(id string) *models.MenuItem {
	for _, it := range s.Items() {
		if it.ID == id {
			found := it
			return &found
		}
	}
	return nil
}

// IsBuiltin reports whether id belongs to the seed catalog.
func (s *Service) IsBuiltin(id string) bool {
	for _, it := range s.seed {
		if it.ID == id {
			return true
		}
	}
	return false
}
