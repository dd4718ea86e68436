package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"inventoria_backend/internal/config"
	"inventoria_backend/internal/database"
	"inventoria_backend/pkg/utils"
)

// SettingHandler exposes the desktop-shell command set over REST: app
// display-name settings and workbook-path management.
type SettingHandler struct {
	cfg   *config.Config
	store *database.SheetStore
}

// NewSettingHandler creates a new SettingHandler.
func NewSettingHandler(cfg *config.Config, store *database.SheetStore) *SettingHandler {
	return &SettingHandler{cfg: cfg, store: store}
}

// GetAppSettings returns the current application settings.
func (h *SettingHandler) GetAppSettings(c *gin.Context) {
	utils.RespondSuccess(c, http.StatusOK, h.cfg.AppSettings())
}

// UpdateAppSettings merges and persists application settings.
func (h *SettingHandler) UpdateAppSettings(c *gin.Context) {
	var settings config.AppSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error()))
		return
	}

	if err := h.cfg.SetAppSettings(settings); err != nil {
		utils.LogError(err, "UpdateAppSettings: Failed to save settings")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to save app settings"))
		return
	}
	utils.RespondSuccess(c, http.StatusOK, h.cfg.AppSettings())
}

// GetDatabasePath returns the user-chosen workbook path, empty if unset.
func (h *SettingHandler) GetDatabasePath(c *gin.Context) {
	utils.RespondSuccess(c, http.StatusOK, gin.H{"databasePath": h.cfg.DatabasePath()})
}

type setDatabasePathRequest struct {
	DatabasePath string `json:"databasePath"`
}

// SetDatabasePath repoints the store at a custom workbook file and
// initializes it if missing.
func (h *SettingHandler) SetDatabasePath(c *gin.Context) {
	var req setDatabasePathRequest
	if err := c.ShouldBindJSON(&req); err != nil || utils.IsEmpty(req.DatabasePath) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Database path is required"))
		return
	}

	if err := h.cfg.SetDatabasePath(req.DatabasePath); err != nil {
		utils.LogError(err, "SetDatabasePath: Failed to save config")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to save database path"))
		return
	}
	if err := h.store.Init(); err != nil {
		utils.LogError(err, "SetDatabasePath: Failed to initialize workbook at "+req.DatabasePath)
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to initialize database at new path"))
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"databasePath": h.cfg.DatabasePath()})
}

// ResetDatabasePath reverts to the default workbook location.
func (h *SettingHandler) ResetDatabasePath(c *gin.Context) {
	if err := h.cfg.SetDatabasePath(""); err != nil {
		utils.LogError(err, "ResetDatabasePath: Failed to save config")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to reset database path"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Database path reset to default"})
}

// RefreshDatabase re-initializes the workbook at the active path.
func (h *SettingHandler) RefreshDatabase(c *gin.Context) {
	if err := h.store.Init(); err != nil {
		utils.LogError(err, "RefreshDatabase: Failed to initialize workbook")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to refresh database"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Database refreshed"})
}
