package main

import (
	"log"
	"path/filepath"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"necesitovisa/config"
	"necesitovisa/handlers"
	"necesitovisa/middleware"
	"necesitovisa/services"
	"necesitovisa/templates"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize artifact storage (R2 or local fallback)
	services.InitializeStorage(cfg)

	// Compute asset versions for cache busting
	middleware.InitAssetVersions()

	store := services.NewDatasetStore(cfg.GeneratedDir,
		filepath.Join(cfg.GeneratedDir, "henley", "visa-matrix.json"))

	// Create Echo instance
	e := echo.New()

	renderer, err := templates.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}
	e.Renderer = renderer

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Static files
	e.Static("/static", "static")

	visa := handlers.NewVisaHandler(store)
	sitemap := handlers.NewSitemapHandler(store)

	// Public routes
	e.GET("/", visa.Home)
	e.GET("/visa", visa.VisaIndex)
	e.GET("/visa/:origen", visa.Origin)
	e.GET("/visa/:origen/:destino", visa.Destination)
	e.GET("/faq", visa.Faq)
	e.GET("/sitemap.xml", sitemap.Get)
	e.GET("/robots.txt", handlers.Robots)

	// Admin routes (key protected)
	admin := handlers.NewAdminHandler(store)
	adminRoutes := e.Group("/admin")
	adminRoutes.Use(middleware.AdminRateLimiter.Middleware())
	adminRoutes.Use(middleware.RequireAdminKey(cfg.AdminKey))
	{
		adminRoutes.GET("", admin.Dashboard)
		adminRoutes.GET("/export.xlsx", admin.Export, middleware.ExportRateLimiter.Middleware())
	}

	// Start server
	log.Printf("Server starting on port %s (%s)", cfg.ServerPort, cfg.AppURL)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
