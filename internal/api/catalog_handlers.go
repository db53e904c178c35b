package api

import (
	"errors"
	"net/http"

	"soupshoppe/internal/images"
	"soupshoppe/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetCatalog returns the full merged catalog: built-in items with any
// server-side custom items and generated-image overlays applied.
func (s *Server) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Items())
}

// GetCustomItems returns only the server-stored custom items.
func (s *Server) GetCustomItems(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalogRepo.CustomItems())
}

// SaveCustomItem creates or updates a custom catalog item.
func (s *Server) SaveCustomItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if item.Name == "" || !models.ValidItemType(item.Type) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Item name and a valid type are required"})
		return
	}
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.IsCustom = true

	saved, err := s.catalogRepo.SaveItem(&item)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save item"})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// GetGeneratedImages returns the generated-image overlay records.
func (s *Server) GetGeneratedImages(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalogRepo.GeneratedImages())
}

type generatedImageRequest struct {
	ItemID   string           `json:"itemId" binding:"required"`
	ImageURL string           `json:"imageUrl" binding:"required"`
	ItemData *models.MenuItem `json:"itemData"`
}

// SaveGeneratedImage records an externally hosted image for an item and
// backfills the item row so the image survives catalog merges.
func (s *Server) SaveGeneratedImage(c *gin.Context) {
	var body generatedImageRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "itemId and imageUrl are required"})
		return
	}

	saved, err := s.catalogRepo.SaveGeneratedImage(body.ItemID, body.ImageURL, body.ItemData)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
		return
	}
	c.JSON(http.StatusOK, saved)
}

type generateImageRequest struct {
	ItemID      string `json:"itemId" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
	Size        string `json:"size"`
}

// GenerateImage runs the image pipeline for an item and stores the resulting
// production URL as a generated-image record.
func (s *Server) GenerateImage(c *gin.Context) {
	var body generateImageRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "itemId and name are required"})
		return
	}

	url, err := s.images.GenerateForItem(c.Request.Context(), body.ItemID, body.Name, body.Description, body.Prompt, body.Size)
	if err != nil {
		s.metrics.ImageGenerations.WithLabelValues("failure").Inc()
		if errors.Is(err, images.ErrNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image generation is not configured"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Image generation failed"})
		return
	}
	s.metrics.ImageGenerations.WithLabelValues("success").Inc()

	saved, err := s.catalogRepo.SaveGeneratedImage(body.ItemID, url, &models.MenuItem{
		ID:          body.ItemID,
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store generated image"})
		return
	}
	c.JSON(http.StatusOK, saved)
}
