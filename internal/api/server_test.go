package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"soupshoppe/internal/auth"
	"soupshoppe/internal/catalog"
	"soupshoppe/internal/display"
	"soupshoppe/internal/images"
	"soupshoppe/internal/leads"
	"soupshoppe/internal/menu"
	"soupshoppe/internal/models"
	"soupshoppe/internal/monitoring"
	"soupshoppe/internal/notify"
	"soupshoppe/internal/settings"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open("sqlite3", filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.MenuItem{}, &models.DailyMenu{}, &models.GeneratedImage{},
		&models.User{}, &models.SiteSetting{},
		&models.MenuSuggestion{}, &models.DeliveryEnrollment{},
	).Error)
	t.Cleanup(func() { db.Close() })

	catalogRepo := catalog.NewRepository(db)
	catalogSvc := catalog.NewService(catalogRepo)
	menuStore := menu.NewRepository(db)
	menuSvc := menu.NewService(menuStore, catalogSvc)
	authSvc := auth.NewService(db, "test-secret", "fallback-pw", "join-code")
	imageSvc := images.NewService(images.NewPromptStylist(nil), nil, nil)

	return NewServer(menuSvc, menuStore, catalogSvc, catalogRepo,
		settings.NewService(db), leads.NewRepository(db), authSvc,
		notify.NewDispatcher(), imageSvc, display.NewHub(), monitoring.New())
}

func doJSON(t *testing.T, s *Server, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func adminToken(t *testing.T, s *Server) string {
	t.Helper()
	w := doJSON(t, s, "POST", "/api/login", gin.H{"username": "admin", "password": "fallback-pw"}, "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestGetMenuMissingDateReturnsEmptyShape(t *testing.T) {
	s := testServer(t)

	w := doJSON(t, s, "GET", "/api/menu/2024-01-15", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2024-01-15", resp["date"])
	assert.Equal(t, []interface{}{}, resp["soups"])
	assert.Nil(t, resp["paniniId"])
	assert.Equal(t, false, resp["isPublished"])
}

func TestGetMenuRejectsBadDate(t *testing.T) {
	s := testServer(t)

	w := doJSON(t, s, "GET", "/api/menu/yesterday", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveMenuRequiresAuth(t *testing.T) {
	s := testServer(t)

	w := doJSON(t, s, "POST", "/api/menu", gin.H{"date": "2024-01-15"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSaveAndPublishMenu(t *testing.T) {
	s := testServer(t)
	token := adminToken(t, s)

	w := doJSON(t, s, "POST", "/api/menu", gin.H{
		"date":        "2024-01-15",
		"soups":       []interface{}{"s6", nil, "s17"},
		"paniniId":    "p1",
		"isPublished": true,
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	var saved models.DailyMenu
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	assert.True(t, saved.IsPublished)
	assert.Len(t, saved.Soups, models.SoupSlotCount)

	w = doJSON(t, s, "GET", "/api/menu/latest-published", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var latest models.DailyMenu
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &latest))
	assert.Equal(t, "2024-01-15", latest.Date)
}

func TestLatestPublishedEmptyIsNull(t *testing.T) {
	s := testServer(t)

	w := doJSON(t, s, "GET", "/api/menu/latest-published", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())
}

func TestPublishRejectedForCustomItemWithoutImage(t *testing.T) {
	s := testServer(t)
	token := adminToken(t, s)

	w := doJSON(t, s, "POST", "/api/custom-items", gin.H{
		"id":   "custom-1",
		"name": "Lobster Panini",
		"type": "panini",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, "POST", "/api/menu", gin.H{
		"date":        "2024-01-15",
		"paniniId":    "custom-1",
		"isPublished": true,
	}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Violations []menu.SlotViolation `json:"violations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Violations, 1)
	assert.Equal(t, "panini", resp.Violations[0].Slot)
	assert.Equal(t, "Lobster Panini", resp.Violations[0].ItemName)

	// The rejected menu was not stored.
	w = doJSON(t, s, "GET", "/api/menu/2024-01-15", nil, "")
	var m models.DailyMenu
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	assert.Nil(t, m.PaniniID)
}

func TestPublishAllowedAfterGeneratedImage(t *testing.T) {
	s := testServer(t)
	token := adminToken(t, s)

	w := doJSON(t, s, "POST", "/api/custom-items", gin.H{
		"id":   "custom-1",
		"name": "Lobster Panini",
		"type": "panini",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, "POST", "/api/generated-images", gin.H{
		"itemId":   "custom-1",
		"imageUrl": "https://cdn.example.com/custom-1.png",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, "POST", "/api/menu", gin.H{
		"date":        "2024-01-15",
		"paniniId":    "custom-1",
		"isPublished": true,
	}, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestEditableMenuColdStartDefaults(t *testing.T) {
	s := testServer(t)
	token := adminToken(t, s)

	w := doJSON(t, s, "GET", "/api/menu/2024-01-15/editable", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var m models.DailyMenu
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	require.Len(t, m.Soups, models.SoupSlotCount)
	require.NotNil(t, m.Soups[0])
	assert.Equal(t, "s6", *m.Soups[0])
	assert.False(t, m.IsPublished)
}

func TestEditableMenuCarriesForwardPublished(t *testing.T) {
	s := testServer(t)
	token := adminToken(t, s)

	w := doJSON(t, s, "POST", "/api/menu", gin.H{
		"date":        "2024-01-14",
		"soups":       []interface{}{"s1"},
		"isPublished": true,
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, "GET", "/api/menu/2024-01-15/editable", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var m models.DailyMenu
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	assert.Equal(t, "2024-01-15", m.Date)
	require.NotNil(t, m.Soups[0])
	assert.Equal(t, "s1", *m.Soups[0])
	assert.False(t, m.IsPublished)
}

func TestResolvedMenuFreshensSlots(t *testing.T) {
	s := testServer(t)
	token := adminToken(t, s)

	w := doJSON(t, s, "POST", "/api/menu", gin.H{
		"date":  "2024-01-15",
		"soups": []interface{}{"s6", "gone"},
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, "GET", "/api/menu/2024-01-15/resolved", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resolved menu.ResolvedMenu
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resolved))
	require.NotNil(t, resolved.Soups[0])
	assert.Equal(t, "Black Angus Beef Chilli", resolved.Soups[0].Name)
	assert.Nil(t, resolved.Soups[1])
}

func TestCatalogIncludesCustomItems(t *testing.T) {
	s := testServer(t)
	token := adminToken(t, s)

	w := doJSON(t, s, "GET", "/api/catalog", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var before []models.MenuItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &before))
	require.NotEmpty(t, before)

	w = doJSON(t, s, "POST", "/api/custom-items", gin.H{
		"name": "Daily Special",
		"type": "entree",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)
	var created models.MenuItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID) // server assigns an id
	assert.True(t, created.IsCustom)

	w = doJSON(t, s, "GET", "/api/catalog", nil, "")
	var after []models.MenuItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &after))
	assert.Len(t, after, len(before)+1)
}

func TestSaveCustomItemValidatesType(t *testing.T) {
	s := testServer(t)
	token := adminToken(t, s)

	w := doJSON(t, s, "POST", "/api/custom-items", gin.H{
		"name": "Mystery",
		"type": "dessert",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateImageUnconfigured(t *testing.T) {
	s := testServer(t)
	token := adminToken(t, s)

	w := doJSON(t, s, "POST", "/api/generate-image", gin.H{
		"itemId": "custom-1",
		"name":   "Lobster Panini",
	}, token)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRegisterRequiresCode(t *testing.T) {
	s := testServer(t)

	w := doJSON(t, s, "POST", "/api/register", gin.H{
		"username": "chef",
		"password": "hunter2",
	}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, s, "POST", "/api/register", gin.H{
		"username":         "chef",
		"password":         "hunter2",
		"registrationCode": "join-code",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserEndpoint(t *testing.T) {
	s := testServer(t)

	w := doJSON(t, s, "GET", "/api/user", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token := adminToken(t, s)
	w = doJSON(t, s, "GET", "/api/user", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "admin", resp["username"])
	assert.Equal(t, auth.FallbackAdminID, resp["id"])
}

func TestMenuSuggestionLifecycle(t *testing.T) {
	s := testServer(t)

	w := doJSON(t, s, "POST", "/api/menu-suggestions", gin.H{
		"guestName": "Pat",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, s, "POST", "/api/menu-suggestions", gin.H{
		"guestName": "Pat",
		"itemName":  "Clam Chowder",
		"itemType":  "soup",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	var created models.MenuSuggestion
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.SuggestionStatusNew, created.Status)

	token := adminToken(t, s)
	w = doJSON(t, s, "GET", "/api/admin/menu-suggestions", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.MenuSuggestion
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)

	w = doJSON(t, s, "PATCH", "/api/admin/menu-suggestions/"+created.ID, gin.H{
		"status": "reviewed",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.MenuSuggestion
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, models.SuggestionStatusReviewed, updated.Status)

	w = doJSON(t, s, "PATCH", "/api/admin/menu-suggestions/"+created.ID, gin.H{
		"status": "rejected",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, s, "PATCH", "/api/admin/menu-suggestions/nope", gin.H{
		"status": "reviewed",
	}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeliveryEnrollmentRequiresOptIn(t *testing.T) {
	s := testServer(t)

	w := doJSON(t, s, "POST", "/api/delivery-enrollment", gin.H{
		"guestName":   "Pat",
		"phoneNumber": "555-0100",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, s, "POST", "/api/delivery-enrollment", gin.H{
		"guestName":      "Pat",
		"phoneNumber":    "555-0100",
		"optInConfirmed": true,
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeliveryEnrollmentCSVExport(t *testing.T) {
	s := testServer(t)
	token := adminToken(t, s)

	w := doJSON(t, s, "POST", "/api/delivery-enrollment", gin.H{
		"guestName":      "Pat",
		"phoneNumber":    "555-0100",
		"optInConfirmed": true,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, "GET", "/api/admin/delivery-enrollments/csv", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Body.String(), "guestName")
	assert.Contains(t, w.Body.String(), "555-0100")
}

func TestAnnouncementDefaultsAndSave(t *testing.T) {
	s := testServer(t)

	w := doJSON(t, s, "GET", "/api/announcement", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var defaults models.AnnouncementSettings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &defaults))
	assert.False(t, defaults.Enabled)

	token := adminToken(t, s)
	w = doJSON(t, s, "POST", "/api/admin/announcement", gin.H{
		"enabled": true,
		"message": "Closed for the holiday",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, "GET", "/api/announcement", nil, "")
	var saved models.AnnouncementSettings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &saved))
	assert.True(t, saved.Enabled)
	assert.Equal(t, "Closed for the holiday", saved.Message)
}

func TestContactFormValidation(t *testing.T) {
	s := testServer(t)

	w := doJSON(t, s, "POST", "/api/contact", gin.H{"name": "Pat"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, s, "POST", "/api/contact", gin.H{
		"name":    "Pat",
		"email":   "pat@example.com",
		"message": "Do you have the chilli today?",
	}, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	s := testServer(t)

	w := doJSON(t, s, "GET", "/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, float64(0), resp["displays"])
}
