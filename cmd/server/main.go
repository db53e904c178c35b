package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"soupshoppe/internal/api"
	"soupshoppe/internal/auth"
	"soupshoppe/internal/catalog"
	"soupshoppe/internal/config"
	"soupshoppe/internal/database"
	"soupshoppe/internal/display"
	"soupshoppe/internal/images"
	"soupshoppe/internal/leads"
	"soupshoppe/internal/menu"
	"soupshoppe/internal/monitoring"
	"soupshoppe/internal/notify"
	"soupshoppe/internal/settings"

	"github.com/gin-gonic/gin"
	"github.com/tmc/langchaingo/llms/openai"
)

var (
	port        = flag.Int("port", 0, "API server port (overrides config)")
	metricsPort = flag.Int("metrics-port", 0, "Metrics server port (overrides config)")
	configFile  = flag.String("config", "configs/config.yaml", "Path to configuration file")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *metricsPort != 0 {
		cfg.Server.MetricsPort = *metricsPort
	}

	if err := database.InitDB(cfg.Database.Dialect, cfg.Database.Source); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	db := database.GetDB()

	catalogRepo := catalog.NewRepository(db)
	catalogSvc := catalog.NewService(catalogRepo)
	menuStore := menu.NewRepository(db)
	menuSvc := menu.NewService(menuStore, catalogSvc)
	settingsSvc := settings.NewService(db)
	leadsRepo := leads.NewRepository(db)
	authSvc := auth.NewService(db, cfg.Auth.SessionSecret, cfg.Auth.AdminPassword, cfg.Auth.AdminCode)

	notifier := notify.NewDispatcher(buildSenders(cfg)...)
	imageSvc := buildImageService(cfg)
	hub := display.NewHub()
	metrics := monitoring.New()

	server := api.NewServer(menuSvc, menuStore, catalogSvc, catalogRepo,
		settingsSvc, leadsRepo, authSvc, notifier, imageSvc, hub, metrics)

	go startMetricsServer(cfg.Server.MetricsPort, metrics)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.Router,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down servers...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("API server shutdown error: %v", err)
		}
	}()

	log.Printf("Starting API server on port %d", cfg.Server.Port)
	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("API server error: %v", err)
	}
}

// buildSenders assembles the configured notification channels. Unconfigured
// channels are skipped, not stubbed.
func buildSenders(cfg *config.Config) []notify.Sender {
	var senders []notify.Sender

	if email := notify.NewEmailSender(cfg.Email.ResendAPIKey, cfg.Email.From, cfg.Email.To); email != nil {
		senders = append(senders, email)
	}
	if pushover := notify.NewPushoverSender(cfg.Pushover.UserKey, cfg.Pushover.APIToken); pushover != nil {
		senders = append(senders, pushover)
	}
	telegram, err := notify.NewTelegramSender(cfg.Telegram.Token, cfg.Telegram.ChatID)
	if err != nil {
		log.Printf("Telegram notifications disabled: %v", err)
	} else if telegram != nil {
		senders = append(senders, telegram)
	}

	if len(senders) == 0 {
		log.Println("No notification channels configured; form submissions will only be logged")
	}
	return senders
}

// buildImageService wires the image-generation pipeline. Any missing
// credential leaves the pipeline in its not-configured state.
func buildImageService(cfg *config.Config) *images.Service {
	var stylist *images.PromptStylist
	var generator *images.Generator
	var uploader *images.Uploader

	if cfg.Images.OpenAIKey != "" {
		llm, err := openai.New(openai.WithToken(cfg.Images.OpenAIKey))
		if err != nil {
			log.Printf("Prompt styling disabled: %v", err)
			stylist = images.NewPromptStylist(nil)
		} else {
			stylist = images.NewPromptStylist(llm)
		}
		generator = images.NewGenerator(cfg.Images.OpenAIKey, cfg.Images.OpenAIBaseURL)
	} else {
		stylist = images.NewPromptStylist(nil)
	}

	cl := cfg.Images.Cloudinary
	if cl.CloudName != "" && cl.APIKey != "" && cl.APISecret != "" {
		uploader = images.NewUploader(cl.CloudName, cl.APIKey, cl.APISecret)
	}

	return images.NewService(stylist, generator, uploader)
}

func startMetricsServer(port int, metrics *monitoring.Metrics) {
	metricsRouter := gin.Default()
	metricsRouter.GET("/metrics", gin.WrapH(metrics.Handler()))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: metricsRouter,
	}

	log.Printf("Starting metrics server on port %d", port)
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Printf("Metrics server error: %v", err)
	}
}
