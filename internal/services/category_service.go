package services

import (
	"errors"
	"fmt"

	"inventoria_backend/internal/models"
	"inventoria_backend/internal/repositories"
	"inventoria_backend/pkg/utils"
)

// --- Custom Service Errors for Categories ---
var (
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryValidation = errors.New("category validation error")
)

// --- Category DTOs ---

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name"` // Pointer to distinguish between empty and not provided
}

// --- CategoryService Interface ---

// CategoryService provides CRUD over the Categories collection. Category
// names are not required to be unique, and products referencing a category
// by name are not touched when it is renamed or deleted.
type CategoryService interface {
	List() []models.Category
	GetByID(id string) (*models.Category, error)
	Create(req CreateCategoryRequest) (*models.Category, error)
	Update(id string, req UpdateCategoryRequest) (*models.Category, error)
	Delete(id string) error
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) List() []models.Category {
	return s.categoryRepo.GetAll()
}

func (s *categoryService) GetByID(id string) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Create(req CreateCategoryRequest) (*models.Category, error) {
	if utils.IsEmpty(req.Name) {
		return nil, fmt.Errorf("%w: name is required", ErrCategoryValidation)
	}

	now := nowStamp()
	category := &models.Category{
		ID:        NewID(),
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Update(id string, req UpdateCategoryRequest) (*models.Category, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}

	patch := map[string]string{}
	if req.Name != nil && !utils.IsEmpty(*req.Name) {
		patch["name"] = *req.Name
	}

	updated, err := s.categoryRepo.Update(id, patch)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (s *categoryService) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	if err := s.categoryRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}
