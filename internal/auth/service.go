// Package auth implements admin console authentication: username/password
// accounts with scrypt-hashed storage and signed session tokens.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"soupshoppe/internal/models"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
)

// FallbackAdminID identifies the environment-backed admin account that works
// even when the users table is unreachable.
const FallbackAdminID = "admin-fallback"

const sessionCookie = "session"

// ErrInvalidCredentials is returned when no account matches the supplied
// username and password.
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrUsernameTaken is returned when registering an existing username.
var ErrUsernameTaken = errors.New("username already exists")

// ErrRegistrationRestricted is returned when the admin code is missing or
// wrong.
var ErrRegistrationRestricted = errors.New("registration is restricted")

// Service authenticates users and mints session tokens.
type Service struct {
	db *gorm.DB

	secret        []byte
	adminPassword string // fallback admin password, may be empty
	adminCode     string // registration gate
	tokenTTL      time.Duration
}

// NewService creates an auth service. secret signs session tokens;
// adminPassword enables the fallback admin account when non-empty;
// adminCode gates registration.
func NewService(db *gorm.DB, secret, adminPassword, adminCode string) *Service {
	return &Service{
		db:            db,
		secret:        []byte(secret),
		adminPassword: adminPassword,
		adminCode:     adminCode,
		tokenTTL:      7 * 24 * time.Hour,
	}
}

// Register creates an account. adminCode must match the configured
// registration code.
func (s *Service) Register(username, password, adminCode string) (*models.User, error) {
	if s.adminCode == "" || adminCode != s.adminCode {
		return nil, ErrRegistrationRestricted
	}

	var existing models.User
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		ID:       uuid.NewString(),
		Username: username,
		Password: hashed,
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login validates credentials and returns the matched user. When the users
// table fails or no row matches, the fallback admin account is tried.
func (s *Service) Login(username, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if err == nil && ComparePasswords(password, user.Password) {
		return &user, nil
	}

	if s.adminPassword != "" && username == "admin" && password == s.adminPassword {
		return &models.User{ID: FallbackAdminID, Username: "admin"}, nil
	}
	return nil, ErrInvalidCredentials
}

// IssueToken mints a signed session token for a user.
func (s *Service) IssueToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken validates a session token and returns the user it identifies.
func (s *Service) ParseToken(tokenString string) (*models.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	id, _ := claims["sub"].(string)
	username, _ := claims["username"].(string)
	if id == "" {
		return nil, ErrInvalidCredentials
	}

	if id == FallbackAdminID {
		return &models.User{ID: FallbackAdminID, Username: "admin"}, nil
	}
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		// Tolerate a flaky users table for an otherwise valid token.
		return &models.User{ID: id, Username: username}, nil
	}
	return &user, nil
}

// SetSessionCookie attaches the session token to the response.
func SetSessionCookie(c *gin.Context, token string, maxAge time.Duration) {
	c.SetCookie(sessionCookie, token, int(maxAge.Seconds()), "/", "", false, true)
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
}

// TokenTTL returns the session token lifetime.
func (s *Service) TokenTTL() time.Duration {
	return s.tokenTTL
}

// Middleware rejects requests without a valid session. The token is read
// from the Authorization header (with or without a Bearer prefix) or the
// session cookie. The authenticated user is stored on the context.
func (s *Service) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if len(tokenString) > 7 && tokenString[:7] == "Bearer " {
			tokenString = tokenString[7:]
		}
		if tokenString == "" {
			tokenString, _ = c.Cookie(sessionCookie)
		}
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		user, err := s.ParseToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by Middleware, if any.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get("user")
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
