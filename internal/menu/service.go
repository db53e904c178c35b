// Package menu implements the daily-menu read/merge and save/publish
// workflow: what a human editor should see for a date, and the image-safety
// gate crossed when a draft becomes the published menu.
package menu

import (
	"fmt"
	"time"

	"soupshoppe/internal/models"
)

// DefaultSoupIDs are the built-in soups pre-filled into a blank menu when no
// previously published menu exists to carry forward.
var DefaultSoupIDs = []string{"s6", "s17", "s63"}

// Store is the persistence surface the menu service needs.
type Store interface {
	GetDailyMenu(date string) (*models.DailyMenu, error)
	LatestPublished() *models.DailyMenu
	SaveDailyMenu(m *models.DailyMenu) (*models.DailyMenu, error)
}

// Catalog resolves item references for freshening and the publish gate.
type Catalog interface {
	Resolve(id string) *models.MenuItem
	IsBuiltin(id string) bool
}

// Service implements the menu workflow over a store and the live catalog.
type Service struct {
	store   Store
	catalog Catalog
}

// NewService creates a menu service.
func NewService(store Store, catalog Catalog) *Service {
	return &Service{store: store, catalog: catalog}
}

// Editor tracks one editing session. The carry-forward from the latest
// published menu is applied at most once per date within a session, so an
// editor who deliberately clears slots afterward is not overwritten. This is
// in-memory only, not a durable lock across sessions.
type Editor struct {
	carried map[string]bool
}

// NewEditor starts a fresh editing session.
func NewEditor() *Editor {
	return &Editor{carried: make(map[string]bool)}
}

// LoadEditableMenu produces the menu an editor should see for a date,
// inferring defaults when no explicit draft exists yet:
//
//   - a stored non-empty or already-published menu is returned verbatim
//   - a blank unpublished date clones the latest published menu's slots
//     (forced back to draft), once per session
//   - with no published menu anywhere, the default soups fill the first
//     slots as a cold-start convenience
//
// The result always has exactly SoupSlotCount soup slots and all four
// special keys. Dangling item ids are carried opaquely; resolution happens
// at render time via Freshen.
func (s *Service) LoadEditableMenu(date string, editor *Editor) *models.DailyMenu {
	stored, err := s.store.GetDailyMenu(date)
	if err != nil || stored == nil {
		stored = models.EmptyDailyMenu(date)
	}
	m := stored.Clone()
	m.Soups = m.Soups.Padded()

	if !m.IsEmpty() || m.IsPublished {
		return m
	}

	latest := s.store.LatestPublished()
	if latest != nil && !latest.IsEmpty() && !editor.carried[date] {
		carried := latest.Clone()
		carried.Date = date
		carried.Soups = carried.Soups.Padded()
		carried.IsPublished = false
		editor.carried[date] = true
		return carried
	}
	if latest != nil && !latest.IsEmpty() {
		// Carry-forward already applied this session; the editor cleared
		// the slots on purpose.
		return m
	}

	for i, id := range DefaultSoupIDs {
		if i >= models.SoupSlotCount {
			break
		}
		v := id
		m.Soups[i] = &v
	}
	return m
}

// ResolvedMenu is a menu with slot references freshened against the live
// catalog: each id is substituted with the item's latest name, description
// and image. A dangling id keeps a nil snapshot and renders as empty.
type ResolvedMenu struct {
	Date        string             `json:"date"`
	Soups       []*models.MenuItem `json:"soups"`
	Panini      *models.MenuItem   `json:"panini"`
	Sandwich    *models.MenuItem   `json:"sandwich"`
	Salad       *models.MenuItem   `json:"salad"`
	Entree      *models.MenuItem   `json:"entree"`
	IsPublished bool               `json:"isPublished"`
}

// Freshen resolves every slot of m against the current catalog.
func (s *Service) Freshen(m *models.DailyMenu) *ResolvedMenu {
	resolve := func(id *string) *models.MenuItem {
		if id == nil || *id == "" {
			return nil
		}
		return s.catalog.Resolve(*id)
	}

	out := &ResolvedMenu{
		Date:        m.Date,
		Soups:       make([]*models.MenuItem, models.SoupSlotCount),
		IsPublished: m.IsPublished,
	}
	for i, id := range m.Soups.Padded() {
		out.Soups[i] = resolve(id)
	}
	out.Panini = resolve(m.PaniniID)
	out.Sandwich = resolve(m.SandwichID)
	out.Salad = resolve(m.SaladID)
	out.Entree = resolve(m.EntreeID)
	return out
}

// SaveMenu persists a menu. A draft save stores the record verbatim beyond
// basic shape checks. A publish save first runs the image-safety gate over
// the four special slots; if any referenced custom item lacks a production
// image URL the whole operation is rejected with a *PublishError naming
// every offending slot, and nothing is persisted.
func (s *Service) SaveMenu(m *models.DailyMenu, publish bool) (*models.DailyMenu, error) {
	if _, err := time.Parse("2006-01-02", m.Date); err != nil {
		return nil, fmt.Errorf("invalid menu date %q: %w", m.Date, err)
	}
	saved := m.Clone()
	saved.Soups = saved.Soups.Padded()

	if publish {
		if err := s.checkPublishable(saved); err != nil {
			return nil, err
		}
		saved.IsPublished = true
	} else {
		saved.IsPublished = false
	}

	return s.store.SaveDailyMenu(saved)
}

// checkPublishable runs the production-image gate. Only the four special
// slots are checked; soups are exempt. All violations are collected so the
// editor can fix everything in one pass.
func (s *Service) checkPublishable(m *models.DailyMenu) error {
	var violations []SlotViolation
	for _, slot := range []string{"panini", "sandwich", "salad", "entree"} {
		id := m.SpecialIDs()[slot]
		if id == nil || *id == "" {
			continue
		}
		if s.catalog.IsBuiltin(*id) {
			continue
		}
		item := s.catalog.Resolve(*id)
		if item != nil && item.HasProductionImage() {
			continue
		}
		name := *id
		if item != nil {
			name = item.Name
		}
		violations = append(violations, SlotViolation{Slot: slot, ItemID: *id, ItemName: name})
	}
	if len(violations) > 0 {
		return &PublishError{Violations: violations}
	}
	return nil
}
