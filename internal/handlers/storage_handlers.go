package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"inventoria_backend/internal/services"
	"inventoria_backend/pkg/utils"
)

// StorageHandler holds the storage location service.
type StorageHandler struct {
	storageService services.StorageService
}

// NewStorageHandler creates a new StorageHandler.
func NewStorageHandler(ss services.StorageService) *StorageHandler {
	return &StorageHandler{storageService: ss}
}

// GetStorageLocations handles fetching all storage locations.
func (h *StorageHandler) GetStorageLocations(c *gin.Context) {
	utils.RespondSuccess(c, http.StatusOK, h.storageService.List())
}

// GetStorageLocationByID handles fetching a single storage location by ID.
func (h *StorageHandler) GetStorageLocationByID(c *gin.Context) {
	id := c.Param("id")

	location, err := h.storageService.GetByID(id)
	if err != nil {
		utils.LogError(err, "GetStorageLocationByID: Error from storageService.GetByID for ID "+id)
		if errors.Is(err, services.ErrStorageNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Storage location not found"))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch storage location"))
		}
		return
	}
	utils.RespondSuccess(c, http.StatusOK, location)
}

// CreateStorageLocation handles the creation of a new storage location.
func (h *StorageHandler) CreateStorageLocation(c *gin.Context) {
	var req services.CreateStorageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateStorageLocation: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error()))
		return
	}

	location, err := h.storageService.Create(req)
	if err != nil {
		utils.LogError(err, "CreateStorageLocation: Error from storageService.Create")
		if errors.Is(err, services.ErrStorageValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Name is required"))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to add storage location"))
		}
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, location)
}

// UpdateStorageLocation handles updating a storage location.
func (h *StorageHandler) UpdateStorageLocation(c *gin.Context) {
	id := c.Param("id")

	var req services.UpdateStorageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateStorageLocation: Failed to bind JSON for ID "+id)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error()))
		return
	}

	location, err := h.storageService.Update(id, req)
	if err != nil {
		utils.LogError(err, "UpdateStorageLocation: Error from storageService.Update for ID "+id)
		if errors.Is(err, services.ErrStorageNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Storage location not found"))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update storage location"))
		}
		return
	}
	utils.RespondSuccess(c, http.StatusOK, location)
}

// DeleteStorageLocation handles deleting a storage location.
func (h *StorageHandler) DeleteStorageLocation(c *gin.Context) {
	id := c.Param("id")

	if err := h.storageService.Delete(id); err != nil {
		utils.LogError(err, "DeleteStorageLocation: Error from storageService.Delete for ID "+id)
		if errors.Is(err, services.ErrStorageNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Storage location not found"))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete storage location"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Storage location deleted successfully"})
}
