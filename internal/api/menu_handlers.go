package api

import (
	"errors"
	"net/http"
	"time"

	"soupshoppe/internal/auth"
	"soupshoppe/internal/display"
	"soupshoppe/internal/menu"
	"soupshoppe/internal/models"

	"github.com/gin-gonic/gin"
)

// GetMenu returns the stored menu for a date, or a structurally-empty
// placeholder when none exists. Missing menus are not an error.
func (s *Server) GetMenu(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}

	m, err := s.menuStore.GetDailyMenu(date)
	if err != nil || m == nil {
		c.JSON(http.StatusOK, models.EmptyDailyMenu(date))
		return
	}
	c.JSON(http.StatusOK, m)
}

// GetLatestPublishedMenu returns the most recent published menu, or null.
func (s *Server) GetLatestPublishedMenu(c *gin.Context) {
	m := s.menuStore.LatestPublished()
	if m == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, m)
}

// GetResolvedMenu returns the menu for a date with every slot freshened
// against the live catalog, for the print and TV display views.
func (s *Server) GetResolvedMenu(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}

	m, err := s.menuStore.GetDailyMenu(date)
	if err != nil || m == nil {
		m = models.EmptyDailyMenu(date)
	}
	c.JSON(http.StatusOK, s.menus.Freshen(m))
}

// GetEditableMenu returns the menu the admin editor should start from for a
// date, applying the carry-forward and cold-start defaults.
func (s *Server) GetEditableMenu(c *gin.Context) {
	date := c.Param("date")
	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date"})
		return
	}

	user := auth.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	editable := s.menus.LoadEditableMenu(date, s.editorFor(user.ID))
	c.JSON(http.StatusOK, editable)
}

// ListMenus returns every stored menu, newest first.
func (s *Server) ListMenus(c *gin.Context) {
	c.JSON(http.StatusOK, s.menuStore.AllMenus())
}

// SaveMenu persists a draft or publishes a menu. Publish-time image-safety
// failures come back as a 400 naming every offending slot.
func (s *Server) SaveMenu(c *gin.Context) {
	var body models.DailyMenu
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	saved, err := s.menus.SaveMenu(&body, body.IsPublished)
	if err != nil {
		var pubErr *menu.PublishError
		if errors.As(err, &pubErr) {
			s.metrics.MenuSaves.WithLabelValues("rejected").Inc()
			c.JSON(http.StatusBadRequest, gin.H{
				"error":      "Some items are missing production images",
				"violations": pubErr.Violations,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save menu"})
		return
	}

	if saved.IsPublished {
		s.metrics.MenuSaves.WithLabelValues("published").Inc()
		s.hub.Broadcast(display.Event{Type: "menu-published", Date: saved.Date})
	} else {
		s.metrics.MenuSaves.WithLabelValues("draft").Inc()
	}
	c.JSON(http.StatusOK, saved)
}

func validDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
