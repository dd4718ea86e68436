package services

import (
	"errors"
	"fmt"

	"inventoria_backend/internal/models"
	"inventoria_backend/internal/repositories"
	"inventoria_backend/pkg/utils"
)

// --- Custom Service Errors for Storage Locations ---
var (
	ErrStorageNotFound   = errors.New("storage location not found")
	ErrStorageValidation = errors.New("storage location validation error")
)

// --- Storage DTOs ---

type CreateStorageRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

type UpdateStorageRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
}

// --- StorageService Interface ---

// StorageService provides CRUD over the Storage collection.
type StorageService interface {
	List() []models.StorageLocation
	GetByID(id string) (*models.StorageLocation, error)
	Create(req CreateStorageRequest) (*models.StorageLocation, error)
	Update(id string, req UpdateStorageRequest) (*models.StorageLocation, error)
	Delete(id string) error
}

type storageService struct {
	storageRepo repositories.StorageRepository
}

// NewStorageService creates a new StorageService.
func NewStorageService(storageRepo repositories.StorageRepository) StorageService {
	return &storageService{storageRepo: storageRepo}
}

func (s *storageService) List() []models.StorageLocation {
	return s.storageRepo.GetAll()
}

func (s *storageService) GetByID(id string) (*models.StorageLocation, error) {
	location, err := s.storageRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStorageNotFound
		}
		return nil, err
	}
	return location, nil
}

func (s *storageService) Create(req CreateStorageRequest) (*models.StorageLocation, error) {
	if utils.IsEmpty(req.Name) {
		return nil, fmt.Errorf("%w: name is required", ErrStorageValidation)
	}

	now := nowStamp()
	location := &models.StorageLocation{
		ID:        NewID(),
		Name:      req.Name,
		Location:  req.Location,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.storageRepo.Create(location); err != nil {
		return nil, err
	}
	return location, nil
}

func (s *storageService) Update(id string, req UpdateStorageRequest) (*models.StorageLocation, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}

	patch := map[string]string{}
	if req.Name != nil && !utils.IsEmpty(*req.Name) {
		patch["name"] = *req.Name
	}
	if req.Location != nil {
		patch["location"] = *req.Location
	}

	updated, err := s.storageRepo.Update(id, patch)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStorageNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *storageService) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.storageRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrStorageNotFound
		}
		return err
	}
	return nil
}
