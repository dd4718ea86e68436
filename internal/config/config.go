package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"inventoria_backend/pkg/utils"
)

const (
	configFileName  = "config.json"
	defaultAppName  = "Inventoria"
	workbookName    = "data.xlsx"
	databaseDirName = "database"
	imagesDirName   = "images"
)

// AppSettings holds the user-facing application settings.
type AppSettings struct {
	AppName string `json:"appName"`
}

// fileFormat is the on-disk shape of config.json. It mirrors the settings
// file written by the desktop shell, so both sides can read it.
type fileFormat struct {
	DatabasePath string      `json:"databasePath"`
	AppSettings  AppSettings `json:"appSettings"`
}

// Config is the explicitly-passed application configuration. It owns the
// load/save lifecycle of config.json under the data directory and resolves
// the active workbook path.
type Config struct {
	mu           sync.RWMutex
	dataDir      string
	databasePath string // user-chosen workbook path; empty means default
	appSettings  AppSettings
}

// Load reads config.json from dataDir, falling back to defaults when the
// file is missing or unreadable.
func Load(dataDir string) *Config {
	cfg := &Config{
		dataDir:     dataDir,
		appSettings: AppSettings{AppName: defaultAppName},
	}

	raw, err := os.ReadFile(filepath.Join(dataDir, configFileName))
	if err != nil {
		if !os.IsNotExist(err) {
			utils.LogError(err, "Failed to read config file, using defaults")
		}
		return cfg
	}

	var ff fileFormat
	if err := json.Unmarshal(raw, &ff); err != nil {
		utils.LogError(err, "Failed to parse config file, using defaults")
		return cfg
	}

	cfg.databasePath = ff.DatabasePath
	if ff.AppSettings.AppName != "" {
		cfg.appSettings.AppName = ff.AppSettings.AppName
	}
	return cfg
}

// Save writes the current configuration back to config.json.
func (c *Config) Save() error {
	c.mu.RLock()
	ff := fileFormat{DatabasePath: c.databasePath, AppSettings: c.appSettings}
	dataDir := c.dataDir
	c.mu.RUnlock()

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(ff, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dataDir, configFileName), raw, 0o644)
}

// DatabasePath returns the user-chosen workbook path, empty if unset.
func (c *Config) DatabasePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.databasePath
}

// SetDatabasePath stores a custom workbook path (empty resets to the
// default) and persists the change.
func (c *Config) SetDatabasePath(path string) error {
	c.mu.Lock()
	c.databasePath = path
	c.mu.Unlock()
	return c.Save()
}

// AppSettings returns a copy of the current application settings.
func (c *Config) AppSettings() AppSettings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.appSettings
}

// SetAppSettings merges non-empty fields of settings and persists the change.
func (c *Config) SetAppSettings(settings AppSettings) error {
	c.mu.Lock()
	if settings.AppName != "" {
		c.appSettings.AppName = settings.AppName
	}
	c.mu.Unlock()
	return c.Save()
}

// WorkbookPath resolves the active workbook location: the user-chosen path
// when set, the default under the data directory otherwise.
func (c *Config) WorkbookPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.databasePath != "" {
		return c.databasePath
	}
	return filepath.Join(c.dataDir, databaseDirName, workbookName)
}

// ImagesDir is the media directory holding the generated QR and barcode files.
func (c *Config) ImagesDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return filepath.Join(c.dataDir, imagesDirName)
}
