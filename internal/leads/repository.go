// Package leads stores guest-submitted menu suggestions and delivery
// program enrollments for the admin console.
package leads

import (
	"fmt"
	"time"

	"soupshoppe/internal/models"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
)

// Repository persists lead-capture records.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a leads repository backed by db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateSuggestion stores a new menu suggestion in triage state "new".
func (r *Repository) CreateSuggestion(s *models.MenuSuggestion) (*models.MenuSuggestion, error) {
	s.ID = uuid.NewString()
	s.Status = models.SuggestionStatusNew
	s.CreatedAt = time.Now()
	if err := r.db.Create(s).Error; err != nil {
		return nil, fmt.Errorf("failed to create menu suggestion: %w", err)
	}
	return s, nil
}

// AllSuggestions returns every suggestion, newest first. Read failures
// degrade to an empty list.
func (r *Repository) AllSuggestions() []models.MenuSuggestion {
	var out []models.MenuSuggestion
	if err := r.db.Order("created_at desc").Find(&out).Error; err != nil {
		return []models.MenuSuggestion{}
	}
	return out
}

// UpdateSuggestionStatus moves a suggestion to a new triage state.
func (r *Repository) UpdateSuggestionStatus(id, status string) (*models.MenuSuggestion, error) {
	var s models.MenuSuggestion
	err := r.db.Where("id = ?", id).First(&s).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch menu suggestion %s: %w", id, err)
	}
	s.Status = status
	if err := r.db.Save(&s).Error; err != nil {
		return nil, fmt.Errorf("failed to update menu suggestion %s: %w", id, err)
	}
	return &s, nil
}

// CreateEnrollment stores a new delivery program enrollment.
func (r *Repository) CreateEnrollment(e *models.DeliveryEnrollment) (*models.DeliveryEnrollment, error) {
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now()
	if err := r.db.Create(e).Error; err != nil {
		return nil, fmt.Errorf("failed to create delivery enrollment: %w", err)
	}
	return e, nil
}

// AllEnrollments returns every enrollment, newest first. Read failures
// degrade to an empty list.
func (r *Repository) AllEnrollments() []models.DeliveryEnrollment {
	var out []models.DeliveryEnrollment
	if err := r.db.Order("created_at desc").Find(&out).Error; err != nil {
		return []models.DeliveryEnrollment{}
	}
	return out
}
