package api

import (
	"encoding/csv"
	"fmt"
	"html"
	"net/http"
	"strings"

	"soupshoppe/internal/models"
	"soupshoppe/internal/notify"

	"github.com/gin-gonic/gin"
)

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// SubmitContact forwards a contact-form submission to the notification
// channels. The form succeeds even if every channel is down; the submission
// is never stored.
func (s *Server) SubmitContact(c *gin.Context) {
	var body contactRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email and message are required"})
		return
	}

	s.metrics.FormSubmissions.WithLabelValues("contact").Inc()
	s.notifier.Dispatch(notify.Message{
		Subject: fmt.Sprintf("New contact form message from %s", body.Name),
		HTML: fmt.Sprintf("<h2>Contact Form</h2><p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p><p><strong>Phone:</strong> %s</p><p>%s</p>",
			html.EscapeString(body.Name), html.EscapeString(body.Email),
			html.EscapeString(body.Phone), html.EscapeString(body.Message)),
		Text:    fmt.Sprintf("Contact form from %s (%s): %s", body.Name, body.Email, body.Message),
		ReplyTo: body.Email,
	})
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type cateringRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Phone      string `json:"phone"`
	EventDate  string `json:"eventDate"`
	GuestCount string `json:"guestCount"`
	Details    string `json:"details"`
}

// SubmitCatering forwards a catering inquiry to the notification channels.
func (s *Server) SubmitCatering(c *gin.Context) {
	var body cateringRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and email are required"})
		return
	}

	s.metrics.FormSubmissions.WithLabelValues("catering").Inc()
	s.notifier.Dispatch(notify.Message{
		Subject: fmt.Sprintf("New catering inquiry from %s", body.Name),
		HTML: fmt.Sprintf("<h2>Catering Inquiry</h2><p><strong>Name:</strong> %s</p><p><strong>Email:</strong> %s</p><p><strong>Phone:</strong> %s</p><p><strong>Event date:</strong> %s</p><p><strong>Guests:</strong> %s</p><p>%s</p>",
			html.EscapeString(body.Name), html.EscapeString(body.Email),
			html.EscapeString(body.Phone), html.EscapeString(body.EventDate),
			html.EscapeString(body.GuestCount), html.EscapeString(body.Details)),
		Text:    fmt.Sprintf("Catering inquiry from %s (%s) for %s", body.Name, body.Email, body.EventDate),
		ReplyTo: body.Email,
	})
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// SubmitMenuSuggestion stores a guest's menu-item idea and notifies the
// kitchen.
func (s *Server) SubmitMenuSuggestion(c *gin.Context) {
	var body models.MenuSuggestion
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.GuestName == "" || body.ItemName == "" || body.ItemType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "guestName, itemName and itemType are required"})
		return
	}

	saved, err := s.leads.CreateSuggestion(&body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save suggestion"})
		return
	}

	s.metrics.FormSubmissions.WithLabelValues("menu-suggestion").Inc()
	s.notifier.Dispatch(notify.Message{
		Subject: fmt.Sprintf("New menu suggestion: %s", saved.ItemName),
		HTML: fmt.Sprintf("<h2>Menu Suggestion</h2><p><strong>From:</strong> %s</p><p><strong>Item:</strong> %s (%s)</p><p>%s</p>",
			html.EscapeString(saved.GuestName), html.EscapeString(saved.ItemName),
			html.EscapeString(saved.ItemType), html.EscapeString(saved.Description)),
		Text: fmt.Sprintf("Menu suggestion from %s: %s (%s)", saved.GuestName, saved.ItemName, saved.ItemType),
	})
	c.JSON(http.StatusOK, saved)
}

// SubmitDeliveryEnrollment stores a delivery opt-in. The guest must have
// ticked the consent box.
func (s *Server) SubmitDeliveryEnrollment(c *gin.Context) {
	var body models.DeliveryEnrollment
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.GuestName == "" || body.PhoneNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "guestName and phoneNumber are required"})
		return
	}
	if !body.OptInConfirmed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Opt-in confirmation is required"})
		return
	}

	saved, err := s.leads.CreateEnrollment(&body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save enrollment"})
		return
	}

	s.metrics.FormSubmissions.WithLabelValues("delivery-enrollment").Inc()
	s.notifier.Dispatch(notify.Message{
		Subject: fmt.Sprintf("New delivery enrollment: %s", saved.GuestName),
		HTML: fmt.Sprintf("<h2>Delivery Enrollment</h2><p><strong>Name:</strong> %s</p><p><strong>Phone:</strong> %s</p><p><strong>Window:</strong> %s</p><p>%s</p>",
			html.EscapeString(saved.GuestName), html.EscapeString(saved.PhoneNumber),
			html.EscapeString(saved.PreferredContactWindow), html.EscapeString(saved.Notes)),
		Text: fmt.Sprintf("Delivery enrollment from %s (%s)", saved.GuestName, saved.PhoneNumber),
	})
	c.JSON(http.StatusOK, saved)
}

// ListMenuSuggestions returns every suggestion, newest first.
func (s *Server) ListMenuSuggestions(c *gin.Context) {
	c.JSON(http.StatusOK, s.leads.AllSuggestions())
}

// UpdateMenuSuggestionStatus moves a suggestion through the triage states.
func (s *Server) UpdateMenuSuggestionStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || !models.ValidSuggestionStatus(body.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be new, reviewed or implemented"})
		return
	}

	updated, err := s.leads.UpdateSuggestionStatus(c.Param("id"), body.Status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update suggestion"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Suggestion not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ListDeliveryEnrollments returns every delivery opt-in, newest first.
func (s *Server) ListDeliveryEnrollments(c *gin.Context) {
	c.JSON(http.StatusOK, s.leads.AllEnrollments())
}

// ExportDeliveryEnrollmentsCSV streams the enrollments as a CSV download.
func (s *Server) ExportDeliveryEnrollmentsCSV(c *gin.Context) {
	var buf strings.Builder
	w := csv.NewWriter(&buf)
	w.Write([]string{"id", "guestName", "phoneNumber", "optInConfirmed", "preferredContactWindow", "notes", "createdAt"})
	for _, e := range s.leads.AllEnrollments() {
		w.Write([]string{
			e.ID,
			e.GuestName,
			e.PhoneNumber,
			fmt.Sprintf("%t", e.OptInConfirmed),
			e.PreferredContactWindow,
			e.Notes,
			e.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	w.Flush()

	c.Header("Content-Disposition", `attachment; filename="delivery-enrollments.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(buf.String()))
}

// GetAnnouncement returns the public announcement banner settings.
func (s *Server) GetAnnouncement(c *gin.Context) {
	c.JSON(http.StatusOK, s.settings.Announcement())
}

// SaveAnnouncement replaces the announcement banner settings.
func (s *Server) SaveAnnouncement(c *gin.Context) {
	var body models.AnnouncementSettings
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.settings.SaveAnnouncement(body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save announcement"})
		return
	}
	c.JSON(http.StatusOK, body)
}
