package repositories

import (
	"inventoria_backend/internal/database"
	"inventoria_backend/internal/models"
)

// CategoryRepository defines sheet-backed access to the Categories collection.
type CategoryRepository interface {
	GetAll() []models.Category
	GetByID(id string) (*models.Category, error)
	Create(category *models.Category) error
	Update(id string, patch map[string]string) (*models.Category, error)
	Delete(id string) error
}

type categoryRepository struct {
	store *database.SheetStore
}

// NewCategoryRepository creates a new instance of CategoryRepository.
func NewCategoryRepository(store *database.SheetStore) CategoryRepository {
	return &categoryRepository{store: store}
}

func (r *categoryRepository) GetAll() []models.Category {
	rows := r.store.ReadSheet(database.SheetCategories)
	categories := make([]models.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, models.CategoryFromRow(row))
	}
	return categories
}

func (r *categoryRepository) GetByID(id string) (*models.Category, error) {
	row, err := r.store.GetRowByID(database.SheetCategories, id)
	if err != nil {
		return nil, err
	}
	category := models.CategoryFromRow(row)
	return &category, nil
}

func (r *categoryRepository) Create(category *models.Category) error {
	return r.store.AppendRow(database.SheetCategories, category.ToRow())
}

func (r *categoryRepository) Update(id string, patch map[string]string) (*models.Category, error) {
	row, err := r.store.UpdateRow(database.SheetCategories, id, patch)
	if err != nil {
		return nil, err
	}
	category := models.CategoryFromRow(row)
	return &category, nil
}

func (r *categoryRepository) Delete(id string) error {
	return r.store.DeleteRow(database.SheetCategories, id)
}
