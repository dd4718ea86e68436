package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"inventoria_backend/internal/services"
	"inventoria_backend/pkg/utils"
)

// CategoryHandler holds the category service.
type CategoryHandler struct {
	categoryService services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(cs services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: cs}
}

// GetCategories handles fetching all categories.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	utils.RespondSuccess(c, http.StatusOK, h.categoryService.List())
}

// GetCategoryByID handles fetching a single category by ID.
func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	id := c.Param("id")

	category, err := h.categoryService.GetByID(id)
	if err != nil {
		utils.LogError(err, "GetCategoryByID: Error from categoryService.GetByID for ID "+id)
		if errors.Is(err, services.ErrCategoryNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Category not found"))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch category"))
		}
		return
	}
	utils.RespondSuccess(c, http.StatusOK, category)
}

// CreateCategory handles the creation of a new category.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req services.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateCategory: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error()))
		return
	}

	category, err := h.categoryService.Create(req)
	if err != nil {
		utils.LogError(err, "CreateCategory: Error from categoryService.Create")
		if errors.Is(err, services.ErrCategoryValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Name is required"))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to add category"))
		}
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, category)
}

// UpdateCategory handles updating a category.
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id := c.Param("id")

	var req services.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateCategory: Failed to bind JSON for ID "+id)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error()))
		return
	}

	category, err := h.categoryService.Update(id, req)
	if err != nil {
		utils.LogError(err, "UpdateCategory: Error from categoryService.Update for ID "+id)
		if errors.Is(err, services.ErrCategoryNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Category not found"))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update category"))
		}
		return
	}
	utils.RespondSuccess(c, http.StatusOK, category)
}

// DeleteCategory handles deleting a category.
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id := c.Param("id")

	if err := h.categoryService.Delete(id); err != nil {
		utils.LogError(err, "DeleteCategory: Error from categoryService.Delete for ID "+id)
		if errors.Is(err, services.ErrCategoryNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Category not found"))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete category"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category deleted successfully"})
}
