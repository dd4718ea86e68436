package router

import (
	"github.com/gin-gonic/gin"

	"inventoria_backend/internal/config"
	"inventoria_backend/internal/database"
	"inventoria_backend/internal/handlers"
	"inventoria_backend/internal/repositories"
	"inventoria_backend/internal/services"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, store *database.SheetStore, cfg *config.Config) {
	// Initialize Repositories
	productRepo := repositories.NewProductRepository(store)
	categoryRepo := repositories.NewCategoryRepository(store)
	storageRepo := repositories.NewStorageRepository(store)

	// Initialize Services
	productService := services.NewProductService(productRepo, cfg.ImagesDir)
	categoryService := services.NewCategoryService(categoryRepo)
	storageService := services.NewStorageService(storageRepo)

	// Initialize Handlers
	productHandler := handlers.NewProductHandler(productService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	storageHandler := handlers.NewStorageHandler(storageService)
	codeHandler := handlers.NewCodeHandler(productService)
	settingHandler := handlers.NewSettingHandler(cfg, store)

	api := engine.Group("/api")

	SetupProductRoutes(api, productHandler)
	SetupCategoryRoutes(api, categoryHandler)
	SetupStorageRoutes(api, storageHandler)
	SetupCodeRoutes(api, codeHandler)
	SetupSettingRoutes(api, settingHandler)
}
