package catalog

import (
	"fmt"

	"soupshoppe/internal/models"

	"github.com/jinzhu/gorm"
)

// Repository persists custom menu items and generated-image records. The
// menu_items table holds admin-created items plus built-ins that have been
// backfilled with a generated image; the seed catalog itself is not stored.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a catalog repository backed by db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CustomItems returns every stored menu item. Read failures degrade to an
// empty list so callers can fall back to the seed catalog.
func (r *Repository) CustomItems() []models.MenuItem {
	var items []models.MenuItem
	if err := r.db.Find(&items).Error; err != nil {
		return []models.MenuItem{}
	}
	return items
}

// GetItem returns a stored item by id, or nil if unknown.
func (r *Repository) GetItem(id string) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.Where("id = ?", id).First(&item).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch menu item %s: %w", id, err)
	}
	return &item, nil
}

// SaveItem upserts a menu item keyed by id.
func (r *Repository) SaveItem(item *models.MenuItem) (*models.MenuItem, error) {
	if item.Tags == nil {
		item.Tags = models.StringSlice{}
	}

	var existing models.MenuItem
	err := r.db.Where("id = ?", item.ID).First(&existing).Error
	switch {
	case gorm.IsRecordNotFoundError(err):
		if err := r.db.Create(item).Error; err != nil {
			return nil, fmt.Errorf("failed to create menu item: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to fetch menu item: %w", err)
	default:
		if err := r.db.Save(item).Error; err != nil {
			return nil, fmt.Errorf("failed to update menu item: %w", err)
		}
	}
	return item, nil
}

// GeneratedImages returns the item-id to image-url overlay. Read failures
// degrade to an empty list.
func (r *Repository) GeneratedImages() []models.GeneratedImage {
	var images []models.GeneratedImage
	if err := r.db.Find(&images).Error; err != nil {
		return []models.GeneratedImage{}
	}
	return images
}

// SaveGeneratedImage upserts the image record for an item and backfills the
// item row: an existing item gets its imageUrl updated; an unknown item is
// created from itemData when provided.
func (r *Repository) SaveGeneratedImage(itemID, imageURL string, itemData *models.MenuItem) (*models.GeneratedImage, error) {
	record := &models.GeneratedImage{ItemID: itemID, ImageURL: imageURL}

	var existing models.GeneratedImage
	err := r.db.Where("item_id = ?", itemID).First(&existing).Error
	switch {
	case gorm.IsRecordNotFoundError(err):
		if err := r.db.Create(record).Error; err != nil {
			return nil, fmt.Errorf("failed to create generated image: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to fetch generated image: %w", err)
	default:
		if err := r.db.Model(&models.GeneratedImage{}).Where("item_id = ?", itemID).
			Update("image_url", imageURL).Error; err != nil {
			return nil, fmt.Errorf("failed to update generated image: %w", err)
		}
	}

	var item models.MenuItem
	err = r.db.Where("id = ?", itemID).First(&item).Error
	switch {
	case err == nil:
		if err := r.db.Model(&models.MenuItem{}).Where("id = ?", itemID).
			Update("image_url", imageURL).Error; err != nil {
			return nil, fmt.Errorf("failed to backfill menu item image: %w", err)
		}
	case gorm.IsRecordNotFoundError(err) && itemData != nil:
		itemData.ID = itemID
		itemData.ImageURL = &imageURL
		itemData.IsCustom = false
		if itemData.Tags == nil {
			itemData.Tags = models.StringSlice{}
		}
		if err := r.db.Create(itemData).Error; err != nil {
			return nil, fmt.Errorf("failed to backfill menu item: %w", err)
		}
	}

	return record, nil
}
