package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
)

// SoupSlotCount is the fixed number of soup positions on a daily menu.
const SoupSlotCount = 6

// StringSlice represents a slice of strings that can be stored in the database
type StringSlice []string

// Value converts the slice to a JSON string for storage
func (s StringSlice) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// Scan converts the database value back to a slice
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported type for StringSlice")
	}
}

// SoupSlots is an ordered list of optional item references. A nil entry is an
// empty slot. Stored as a JSON column so nulls survive the round trip.
type SoupSlots []*string

// Value converts the slots to a JSON string for storage
func (s SoupSlots) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

// Scan converts the database value back to a slot list
func (s *SoupSlots) Scan(value interface{}) error {
	if value == nil {
		*s = SoupSlots{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported type for SoupSlots")
	}
}

// Padded returns a copy extended with nil entries to exactly SoupSlotCount
// positions. Longer lists are truncated.
func (s SoupSlots) Padded() SoupSlots {
	out := make(SoupSlots, SoupSlotCount)
	copy(out, s)
	return out
}

// IsEmpty reports whether every slot is unset.
func (s SoupSlots) IsEmpty() bool {
	for _, id := range s {
		if id != nil && *id != "" {
			return false
		}
	}
	return true
}

// ItemType represents the category of a menu item
type ItemType string

const (
	ItemTypeSoup     ItemType = "soup"
	ItemTypePanini   ItemType = "panini"
	ItemTypeSandwich ItemType = "sandwich"
	ItemTypeSalad    ItemType = "salad"
	ItemTypeEntree   ItemType = "entree"
)

// ValidItemType reports whether t is one of the known item categories.
func ValidItemType(t string) bool {
	switch ItemType(t) {
	case ItemTypeSoup, ItemTypePanini, ItemTypeSandwich, ItemTypeSalad, ItemTypeEntree:
		return true
	}
	return false
}

// MenuItem represents a dish in the catalog. Built-in items are seeded at
// startup with small deterministic ids; custom items are created through the
// admin console with generated ids.
type MenuItem struct {
	ID          string      `gorm:"primary_key" json:"id"`
	Name        string      `gorm:"not null" json:"name"`
	Description string      `json:"description"`
	Type        string      `gorm:"type:varchar(20);not null" json:"type"`
	Tags        StringSlice `gorm:"type:text" json:"tags"`
	Price       string      `json:"price,omitempty"`
	ImageURL    *string     `json:"imageUrl"`
	IsCustom    bool        `json:"isCustom"`
}

// TableName sets the table name for MenuItem
func (MenuItem) TableName() string {
	return "menu_items"
}

// HasProductionImage reports whether the item's image is reachable outside
// the authoring environment, i.e. an absolute externally hosted URL rather
// than a path served only by the local process.
func (mi *MenuItem) HasProductionImage() bool {
	if mi.ImageURL == nil {
		return false
	}
	return IsProductionImageURL(*mi.ImageURL)
}

// IsProductionImageURL reports whether url is an absolute http(s) URL.
func IsProductionImageURL(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

// DailyMenu is the menu for one calendar date. Slots hold weak item
// references by id; a dangling reference is rendered from the last known
// snapshot or treated as empty, never as an integrity error.
type DailyMenu struct {
	Date        string    `gorm:"primary_key;type:varchar(10)" json:"date"`
	Soups       SoupSlots `gorm:"type:text" json:"soups"`
	PaniniID    *string   `json:"paniniId"`
	SandwichID  *string   `json:"sandwichId"`
	SaladID     *string   `json:"saladId"`
	EntreeID    *string   `json:"entreeId"`
	IsPublished bool      `gorm:"not null" json:"isPublished"`
}

// TableName sets the table name for DailyMenu
func (DailyMenu) TableName() string {
	return "daily_menus"
}

// EmptyDailyMenu returns the structurally-empty menu for a date: no soups,
// all special ids null, not published.
func EmptyDailyMenu(date string) *DailyMenu {
	return &DailyMenu{
		Date:  date,
		Soups: SoupSlots{},
	}
}

// IsEmpty reports whether the menu has no item selected in any slot.
func (m *DailyMenu) IsEmpty() bool {
	return m.Soups.IsEmpty() &&
		m.PaniniID == nil && m.SandwichID == nil &&
		m.SaladID == nil && m.EntreeID == nil
}

// SpecialIDs returns the four special slots keyed by their labels.
func (m *DailyMenu) SpecialIDs() map[string]*string {
	return map[string]*string{
		"panini":   m.PaniniID,
		"sandwich": m.SandwichID,
		"salad":    m.SaladID,
		"entree":   m.EntreeID,
	}
}

// Clone returns a deep copy of the menu.
func (m *DailyMenu) Clone() *DailyMenu {
	copyID := func(id *string) *string {
		if id == nil {
			return nil
		}
		v := *id
		return &v
	}
	out := &DailyMenu{
		Date:        m.Date,
		Soups:       make(SoupSlots, len(m.Soups)),
		IsPublished: m.IsPublished,
	}
	for i, id := range m.Soups {
		out.Soups[i] = copyID(id)
	}
	out.PaniniID = copyID(m.PaniniID)
	out.SandwichID = copyID(m.SandwichID)
	out.SaladID = copyID(m.SaladID)
	out.EntreeID = copyID(m.EntreeID)
	return out
}

// GeneratedImage maps an item id to its production image URL. At most one
// record per item; regenerating an image upserts the row.
type GeneratedImage struct {
	ItemID   string `gorm:"primary_key;column:item_id" json:"itemId"`
	ImageURL string `gorm:"not null" json:"imageUrl"`
}

// TableName sets the table name for GeneratedImage
func (GeneratedImage) TableName() string {
	return "generated_images"
}
