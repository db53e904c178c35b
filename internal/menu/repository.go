package menu

import (
	"fmt"

	"soupshoppe/internal/models"

	"github.com/jinzhu/gorm"
)

// Repository persists daily menus, one row per calendar date.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a menu repository backed by db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetDailyMenu returns the stored menu for a date, or nil if none exists.
func (r *Repository) GetDailyMenu(date string) (*models.DailyMenu, error) {
	var m models.DailyMenu
	err := r.db.Where("date = ?", date).First(&m).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch menu for %s: %w", date, err)
	}
	return &m, nil
}

// LatestPublished returns the most recent published menu across all dates.
// Lookup failures are treated the same as "no published menu yet".
func (r *Repository) LatestPublished() *models.DailyMenu {
	var m models.DailyMenu
	err := r.db.Where("is_published = ?", true).Order("date desc").First(&m).Error
	if err != nil {
		return nil
	}
	return &m
}

// AllMenus returns every stored menu, newest first. Read failures degrade to
// an empty list.
func (r *Repository) AllMenus() []models.DailyMenu {
	var menus []models.DailyMenu
	if err := r.db.Order("date desc").Find(&menus).Error; err != nil {
		return []models.DailyMenu{}
	}
	return menus
}

// SaveDailyMenu upserts the whole record keyed by date. Last write wins;
// there is no version check.
func (r *Repository) SaveDailyMenu(m *models.DailyMenu) (*models.DailyMenu, error) {
	var existing models.DailyMenu
	err := r.db.Where("date = ?", m.Date).First(&existing).Error
	switch {
	case gorm.IsRecordNotFoundError(err):
		if err := r.db.Create(m).Error; err != nil {
			return nil, fmt.Errorf("failed to create menu for %s: %w", m.Date, err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to fetch menu for %s: %w", m.Date, err)
	default:
		if err := r.db.Save(m).Error; err != nil {
			return nil, fmt.Errorf("failed to update menu for %s: %w", m.Date, err)
		}
	}
	return m, nil
}
