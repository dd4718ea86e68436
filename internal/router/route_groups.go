package router

import (
	"github.com/gin-gonic/gin"

	"inventoria_backend/internal/handlers"
)

// SetupProductRoutes sets up the product CRUD routes.
func SetupProductRoutes(apiGroup *gin.RouterGroup, productHandler *handlers.ProductHandler) {
	productRoutes := apiGroup.Group("/products")
	{
		productRoutes.GET("", productHandler.GetProducts)
		productRoutes.GET("/:id", productHandler.GetProductByID)
		productRoutes.POST("", productHandler.CreateProduct)
		productRoutes.PUT("/:id", productHandler.UpdateProduct)
		productRoutes.DELETE("/:id", productHandler.DeleteProduct)
	}
}

// SetupCategoryRoutes sets up the category CRUD routes.
func SetupCategoryRoutes(apiGroup *gin.RouterGroup, categoryHandler *handlers.CategoryHandler) {
	categoryRoutes := apiGroup.Group("/categories")
	{
		categoryRoutes.GET("", categoryHandler.GetCategories)
		categoryRoutes.GET("/:id", categoryHandler.GetCategoryByID)
		categoryRoutes.POST("", categoryHandler.CreateCategory)
		categoryRoutes.PUT("/:id", categoryHandler.UpdateCategory)
		categoryRoutes.DELETE("/:id", categoryHandler.DeleteCategory)
	}
}

// SetupStorageRoutes sets up the storage location CRUD routes.
func SetupStorageRoutes(apiGroup *gin.RouterGroup, storageHandler *handlers.StorageHandler) {
	storageRoutes := apiGroup.Group("/storage")
	{
		storageRoutes.GET("", storageHandler.GetStorageLocations)
		storageRoutes.GET("/:id", storageHandler.GetStorageLocationByID)
		storageRoutes.POST("", storageHandler.CreateStorageLocation)
		storageRoutes.PUT("/:id", storageHandler.UpdateStorageLocation)
		storageRoutes.DELETE("/:id", storageHandler.DeleteStorageLocation)
	}
}

// SetupCodeRoutes sets up the QR-code and barcode routes.
func SetupCodeRoutes(apiGroup *gin.RouterGroup, codeHandler *handlers.CodeHandler) {
	apiGroup.POST("/generate-qr", codeHandler.GenerateQR)
	apiGroup.GET("/qr/:productId", codeHandler.GetQRImage)
	apiGroup.POST("/generate-barcode", codeHandler.GenerateBarcode)
	apiGroup.GET("/barcode/:productId", codeHandler.GetBarcodeImage)
	apiGroup.GET("/barcode-types", codeHandler.GetBarcodeTypes)
}

// SetupSettingRoutes sets up the application settings routes.
func SetupSettingRoutes(apiGroup *gin.RouterGroup, settingHandler *handlers.SettingHandler) {
	settingRoutes := apiGroup.Group("/settings")
	{
		settingRoutes.GET("", settingHandler.GetAppSettings)
		settingRoutes.PUT("", settingHandler.UpdateAppSettings)
		settingRoutes.GET("/database-path", settingHandler.GetDatabasePath)
		settingRoutes.PUT("/database-path", settingHandler.SetDatabasePath)
		settingRoutes.DELETE("/database-path", settingHandler.ResetDatabasePath)
		settingRoutes.POST("/refresh-database", settingHandler.RefreshDatabase)
	}
}
