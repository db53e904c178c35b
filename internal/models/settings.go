package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JSONValue stores an arbitrary JSON document in a text column.
type JSONValue json.RawMessage

// Value converts the document to a string for storage
func (j JSONValue) Value() (driver.Value, error) {
	if len(j) == 0 {
		return "null", nil
	}
	return string(j), nil
}

// Scan converts the database value back to a document
func (j *JSONValue) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		*j = append((*j)[:0], v...)
		return nil
	case string:
		*j = JSONValue(v)
		return nil
	default:
		return errors.New("unsupported type for JSONValue")
	}
}

// SiteSetting is a key/value row for site-wide configuration blobs.
type SiteSetting struct {
	Key   string    `gorm:"primary_key" json:"key"`
	Value JSONValue `gorm:"type:text;not null" json:"value"`
}

// TableName sets the table name for SiteSetting
func (SiteSetting) TableName() string {
	return "site_settings"
}

// AnnouncementSettings controls the overlay banner shown on the public site.
type AnnouncementSettings struct {
	Enabled         bool   `json:"enabled"`
	Title           string `json:"title"`
	Message         string `json:"message"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
}

// DefaultAnnouncementSettings returns the banner defaults used when nothing
// has been saved yet.
func DefaultAnnouncementSettings() AnnouncementSettings {
	return AnnouncementSettings{
		BackgroundColor: "rgba(0, 0, 0, 0.85)",
		TextColor:       "#ffffff",
	}
}
