// Package api wires the HTTP surface of the site: public menu and catalog
// reads, lead-capture forms, and the session-authenticated admin console.
package api

import (
	"net/http"
	"sync"

	"soupshoppe/internal/auth"
	"soupshoppe/internal/catalog"
	"soupshoppe/internal/display"
	"soupshoppe/internal/images"
	"soupshoppe/internal/leads"
	"soupshoppe/internal/menu"
	"soupshoppe/internal/monitoring"
	"soupshoppe/internal/notify"
	"soupshoppe/internal/settings"

	"github.com/gin-gonic/gin"
)

// Server represents the main API handler for the site
type Server struct {
	Router *gin.Engine

	menus       *menu.Service
	menuStore   *menu.Repository
	catalog     *catalog.Service
	catalogRepo *catalog.Repository
	settings    *settings.Service
	leads       *leads.Repository
	auth        *auth.Service
	notifier    *notify.Dispatcher
	images      *images.Service
	hub         *display.Hub
	metrics     *monitoring.Metrics

	// One carry-forward guard per admin session; menu edits from the same
	// login share a guard, separate logins do not.
	editorsMu sync.Mutex
	editors   map[string]*menu.Editor
}

// NewServer creates the API server and registers all routes.
func NewServer(
	menus *menu.Service,
	menuStore *menu.Repository,
	catalogSvc *catalog.Service,
	catalogRepo *catalog.Repository,
	settingsSvc *settings.Service,
	leadsRepo *leads.Repository,
	authSvc *auth.Service,
	notifier *notify.Dispatcher,
	imageSvc *images.Service,
	hub *display.Hub,
	metrics *monitoring.Metrics,
) *Server {
	s := &Server{
		Router:      gin.Default(),
		menus:       menus,
		menuStore:   menuStore,
		catalog:     catalogSvc,
		catalogRepo: catalogRepo,
		settings:    settingsSvc,
		leads:       leadsRepo,
		auth:        authSvc,
		notifier:    notifier,
		images:      imageSvc,
		hub:         hub,
		metrics:     metrics,
		editors:     make(map[string]*menu.Editor),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes() {
	s.Router.Use(s.metrics.Middleware())

	s.Router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "displays": s.hub.ConnectedDisplays()})
	})
	s.Router.GET("/ws/display", s.hub.Handle)

	api := s.Router.Group("/api")
	{
		// Session management
		api.POST("/register", s.Register)
		api.POST("/login", s.Login)
		api.POST("/logout", s.Logout)
		api.GET("/user", s.auth.Middleware(), s.GetUser)

		// Daily menus
		api.GET("/menu/latest-published", s.GetLatestPublishedMenu)
		api.GET("/menu/:date", s.GetMenu)
		api.GET("/menu/:date/resolved", s.GetResolvedMenu)
		api.POST("/menu", s.auth.Middleware(), s.SaveMenu)
		api.GET("/menus", s.auth.Middleware(), s.ListMenus)
		api.GET("/menu/:date/editable", s.auth.Middleware(), s.GetEditableMenu)

		// Catalog
		api.GET("/catalog", s.GetCatalog)
		api.GET("/custom-items", s.GetCustomItems)
		api.POST("/custom-items", s.auth.Middleware(), s.SaveCustomItem)
		api.GET("/generated-images", s.GetGeneratedImages)
		api.POST("/generated-images", s.auth.Middleware(), s.SaveGeneratedImage)
		api.POST("/generate-image", s.auth.Middleware(), s.GenerateImage)

		// Lead capture
		api.POST("/contact", s.SubmitContact)
		api.POST("/catering", s.SubmitCatering)
		api.POST("/menu-suggestions", s.SubmitMenuSuggestion)
		api.POST("/delivery-enrollment", s.SubmitDeliveryEnrollment)

		// Announcement banner
		api.GET("/announcement", s.GetAnnouncement)

		admin := api.Group("/admin", s.auth.Middleware())
		{
			admin.GET("/menu-suggestions", s.ListMenuSuggestions)
			admin.PATCH("/menu-suggestions/:id", s.UpdateMenuSuggestionStatus)
			admin.GET("/delivery-enrollments", s.ListDeliveryEnrollments)
			admin.GET("/delivery-enrollments/csv", s.ExportDeliveryEnrollmentsCSV)
			admin.POST("/announcement", s.SaveAnnouncement)
		}
	}
}

// editorFor returns the carry-forward guard for an admin session.
func (s *Server) editorFor(userID string) *menu.Editor {
	s.editorsMu.Lock()
	defer s.editorsMu.Unlock()
	e, ok := s.editors[userID]
	if !ok {
		e = menu.NewEditor()
		s.editors[userID] = e
	}
	return e
}
