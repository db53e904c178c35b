package models

import "time"

// Menu suggestion triage states.
const (
	SuggestionStatusNew         = "new"
	SuggestionStatusReviewed    = "reviewed"
	SuggestionStatusImplemented = "implemented"
)

// ValidSuggestionStatus reports whether s is a known triage state.
func ValidSuggestionStatus(s string) bool {
	switch s {
	case SuggestionStatusNew, SuggestionStatusReviewed, SuggestionStatusImplemented:
		return true
	}
	return false
}

// MenuSuggestion is a guest-submitted idea for a new menu item.
type MenuSuggestion struct {
	ID           string    `gorm:"primary_key" json:"id"`
	GuestName    string    `gorm:"not null" json:"guestName"`
	ContactEmail string    `json:"contactEmail"`
	ContactPhone string    `json:"contactPhone"`
	ItemName     string    `gorm:"not null" json:"itemName"`
	ItemType     string    `gorm:"not null" json:"itemType"`
	Description  string    `json:"description"`
	Status       string    `gorm:"not null;default:'new'" json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TableName sets the table name for MenuSuggestion
func (MenuSuggestion) TableName() string {
	return "menu_suggestions"
}

// DeliveryEnrollment is a guest opting in to delivery text updates.
type DeliveryEnrollment struct {
	ID                     string    `gorm:"primary_key" json:"id"`
	GuestName              string    `gorm:"not null" json:"guestName"`
	PhoneNumber            string    `gorm:"not null" json:"phoneNumber"`
	OptInConfirmed         bool      `gorm:"not null" json:"optInConfirmed"`
	PreferredContactWindow string    `json:"preferredContactWindow"`
	Notes                  string    `json:"notes"`
	CreatedAt              time.Time `json:"createdAt"`
}

// TableName sets the table name for DeliveryEnrollment
func (DeliveryEnrollment) TableName() string {
	return "delivery_enrollments"
}
