package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"inventoria_backend/internal/services"
	"inventoria_backend/pkg/utils"
)

// ProductHandler holds the product service.
type ProductHandler struct {
	productService services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(ps services.ProductService) *ProductHandler {
	return &ProductHandler{productService: ps}
}

// GetProducts handles fetching all products.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	utils.RespondSuccess(c, http.StatusOK, h.productService.List())
}

// GetProductByID handles fetching a single product by ID.
func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id := c.Param("id")

	product, err := h.productService.GetByID(id)
	if err != nil {
		utils.LogError(err, "GetProductByID: Error from productService.GetByID for ID "+id)
		if errors.Is(err, services.ErrProductNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Product not found"))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch product"))
		}
		return
	}
	utils.RespondSuccess(c, http.StatusOK, product)
}

// CreateProduct handles the creation of a new product.
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req services.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateProduct: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error()))
		return
	}

	product, warning, err := h.productService.Create(req)
	if err != nil {
		utils.LogError(err, "CreateProduct: Error from productService.Create")
		if errors.Is(err, services.ErrProductValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Name and category are required"))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to add product"))
		}
		return
	}

	if warning != "" {
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": product, "warning": warning})
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, product)
}

// UpdateProduct handles updating a product.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateProduct: Failed to bind JSON for ID "+id)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error()))
		return
	}

	product, warning, err := h.productService.Update(id, req)
	if err != nil {
		utils.LogError(err, "UpdateProduct: Error from productService.Update for ID "+id)
		if errors.Is(err, services.ErrProductNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Product not found"))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update product"))
		}
		return
	}

	if warning != "" {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": product, "warning": warning})
		return
	}
	utils.RespondSuccess(c, http.StatusOK, product)
}

// DeleteProduct handles deleting a product and its code files.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	if err := h.productService.Delete(id); err != nil {
		utils.LogError(err, "DeleteProduct: Error from productService.Delete for ID "+id)
		if errors.Is(err, services.ErrProductNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Product not found"))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete product"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product, QR code, and barcode deleted successfully"})
}
