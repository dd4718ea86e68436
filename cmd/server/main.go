package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"inventoria_backend/internal/config"
	"inventoria_backend/internal/database"
	"inventoria_backend/internal/router"
	"inventoria_backend/pkg/utils"
)

func main() {
	// Initialize Logger
	utils.InitLogger() // Initialize zerolog

	// Load .env if present; real environment variables win.
	if err := godotenv.Load(); err == nil {
		utils.LogInfo("Loaded environment from .env file")
	}

	// Load application configuration (workbook path, app settings)
	dataDir := utils.Getenv("INVENTORIA_DATA_DIR", "data")
	cfg := config.Load(dataDir)
	utils.LogInfo("Configuration loaded", map[string]interface{}{
		"data_dir": dataDir,
		"app_name": cfg.AppSettings().AppName,
	})

	// Initialize the workbook at the active path
	store := database.NewSheetStore(cfg.WorkbookPath)
	if err := store.Init(); err != nil {
		utils.LogError(err, "Failed to initialize workbook")
		log.Fatalf("Failed to initialize workbook: %v", err)
	}
	utils.LogInfo("Workbook initialized", map[string]interface{}{"path": cfg.WorkbookPath()})

	// Ensure the media directory exists before serving it
	if err := os.MkdirAll(cfg.ImagesDir(), 0o755); err != nil {
		utils.LogError(err, "Failed to create images directory")
		log.Fatalf("Failed to create images directory: %v", err)
	}

	engine := gin.Default()

	// Add GinLogger middleware for request logging
	engine.Use(utils.GinLogger())

	// CORS configuration
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"} // Default origins
	}

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = allowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.AllowCredentials = true
	engine.Use(cors.New(corsConfig))

	// Serve QR and barcode images as static files from the images directory;
	// /qr-codes is kept as a legacy alias of /images.
	engine.Static("/images", cfg.ImagesDir())
	engine.Static("/qr-codes", cfg.ImagesDir())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Server is running"})
	})

	// Setup all application routes
	router.Setup(engine, store, cfg)

	// Server port configuration
	port := utils.Getenv("PORT", "3000") // Default to 3000 if not set
	utils.LogInfo("Server starting", map[string]interface{}{"port": port})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
