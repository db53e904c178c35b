package api

import (
	"errors"
	"net/http"

	"soupshoppe/internal/auth"

	"github.com/gin-gonic/gin"
)

type credentials struct {
	Username         string `json:"username" binding:"required"`
	Password         string `json:"password" binding:"required"`
	RegistrationCode string `json:"registrationCode"`
}

// Register creates a new admin account. When a registration code is
// configured the request must carry it.
func (s *Server) Register(c *gin.Context) {
	var body credentials
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	user, err := s.auth.Register(body.Username, body.Password, body.RegistrationCode)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrRegistrationRestricted):
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid registration code"})
		case errors.Is(err, auth.ErrUsernameTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username is already taken"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": user.ID, "username": user.Username})
}

// Login checks credentials and issues a session token, returned both in the
// body and as an httponly cookie.
func (s *Server) Login(c *gin.Context) {
	var body credentials
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	user, err := s.auth.Login(body.Username, body.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token, err := s.auth.IssueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue session"})
		return
	}

	auth.SetSessionCookie(c, token, s.auth.TokenTTL())
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  gin.H{"id": user.ID, "username": user.Username},
	})
}

// Logout clears the session cookie.
func (s *Server) Logout(c *gin.Context) {
	auth.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GetUser returns the authenticated user.
func (s *Server) GetUser(c *gin.Context) {
	user := auth.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": user.ID, "username": user.Username})
}
