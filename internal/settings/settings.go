// Package settings stores site-wide configuration blobs in the key/value
// site_settings table.
package settings

import (
	"encoding/json"
	"fmt"

	"soupshoppe/internal/models"

	"github.com/jinzhu/gorm"
)

const announcementKey = "announcement"

// Service reads and writes site settings.
type Service struct {
	db *gorm.DB
}

// NewService creates a settings service backed by db.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Announcement returns the overlay banner settings. Missing or unreadable
// rows degrade to the defaults.
func (s *Service) Announcement() models.AnnouncementSettings {
	out := models.DefaultAnnouncementSettings()

	var row models.SiteSetting
	err := s.db.Where("key = ?", announcementKey).First(&row).Error
	if err != nil {
		return out
	}
	if err := json.Unmarshal([]byte(row.Value), &out); err != nil {
		return models.DefaultAnnouncementSettings()
	}
	return out
}

// SaveAnnouncement upserts the banner settings.
func (s *Service) SaveAnnouncement(settings models.AnnouncementSettings) error {
	value, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode announcement settings: %w", err)
	}
	row := models.SiteSetting{Key: announcementKey, Value: models.JSONValue(value)}

	var existing models.SiteSetting
	err = s.db.Where("key = ?", announcementKey).First(&existing).Error
	switch {
	case gorm.IsRecordNotFoundError(err):
		if err := s.db.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to create announcement settings: %w", err)
		}
	case err != nil:
		return fmt.Errorf("failed to fetch announcement settings: %w", err)
	default:
		if err := s.db.Save(&row).Error; err != nil {
			return fmt.Errorf("failed to update announcement settings: %w", err)
		}
	}
	return nil
}
