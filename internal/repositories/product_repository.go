package repositories

import (
	"inventoria_backend/internal/database"
	"inventoria_backend/internal/models"
)

// ProductRepository defines sheet-backed access to the Products collection.
type ProductRepository interface {
	// GetAll returns every product. It fails soft: store trouble yields an
	// empty slice, never an error.
	GetAll() []models.Product
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	// Update merges patch onto the stored row; keys absent from patch are
	// left untouched, present-but-empty values overwrite.
	Update(id string, patch map[string]string) (*models.Product, error)
	Delete(id string) error
}

type productRepository struct {
	store *database.SheetStore
}

// NewProductRepository creates a new instance of ProductRepository.
func NewProductRepository(store *database.SheetStore) ProductRepository {
	return &productRepository{store: store}
}

func (r *productRepository) GetAll() []models.Product {
	rows := r.store.ReadSheet(database.SheetProducts)
	products := make([]models.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, models.ProductFromRow(row))
	}
	return products
}

func (r *productRepository) GetByID(id string) (*models.Product, error) {
	row, err := r.store.GetRowByID(database.SheetProducts, id)
	if err != nil {
		return nil, err
	}
	product := models.ProductFromRow(row)
	return &product, nil
}

func (r *productRepository) Create(product *models.Product) error {
	return r.store.AppendRow(database.SheetProducts, product.ToRow())
}

func (r *productRepository) Update(id string, patch map[string]string) (*models.Product, error) {
	row, err := r.store.UpdateRow(database.SheetProducts, id, patch)
	if err != nil {
		return nil, err
	}
	product := models.ProductFromRow(row)
	return &product, nil
}

func (r *productRepository) Delete(id string) error {
	return r.store.DeleteRow(database.SheetProducts, id)
}
