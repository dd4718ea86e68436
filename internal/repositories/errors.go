package repositories

import (
	"inventoria_backend/internal/database"
)

var (
	// ErrNotFound is returned when a specific record is not found.
	ErrNotFound = database.ErrNotFound

	// ErrStoreError is returned for unexpected sheet store errors.
	// It can be used to wrap more specific workbook errors.
	ErrStoreError = database.ErrStoreError
)
