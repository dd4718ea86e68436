package repositories

import (
	"inventoria_backend/internal/database"
	"inventoria_backend/internal/models"
)

// StorageRepository defines sheet-backed access to the Storage collection.
type StorageRepository interface {
	GetAll() []models.StorageLocation
	GetByID(id string) (*models.StorageLocation, error)
	Create(location *models.StorageLocation) error
	Update(id string, patch map[string]string) (*models.StorageLocation, error)
	Delete(id string) error
}

type storageRepository struct {
	store *database.SheetStore
}

// NewStorageRepository creates a new instance of StorageRepository.
func NewStorageRepository(store *database.SheetStore) StorageRepository {
	return &storageRepository{store: store}
}

func (r *storageRepository) GetAll() []models.StorageLocation {
	rows := r.store.ReadSheet(database.SheetStorage)
	locations := make([]models.StorageLocation, 0, len(rows))
	for _, row := range rows {
		locations = append(locations, models.StorageLocationFromRow(row))
	}
	return locations
}

func (r *storageRepository) GetByID(id string) (*models.StorageLocation, error) {
	row, err := r.store.GetRowByID(database.SheetStorage, id)
	if err != nil {
		return nil, err
	}
	location := models.StorageLocationFromRow(row)
	return &location, nil
}

func (r *storageRepository) Create(location *models.StorageLocation) error {
	return r.store.AppendRow(database.SheetStorage, location.ToRow())
}

func (r *storageRepository) Update(id string, patch map[string]string) (*models.StorageLocation, error) {
	row, err := r.store.UpdateRow(database.SheetStorage, id, patch)
	if err != nil {
		return nil, err
	}
	location := models.StorageLocationFromRow(row)
	return &location, nil
}

func (r *storageRepository) Delete(id string) error {
	return r.store.DeleteRow(database.SheetStorage, id)
}
