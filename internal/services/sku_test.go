package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"inventoria_backend/internal/models"
)

func productsWithSKUs(skus ...string) []models.Product {
	products := make([]models.Product, 0, len(skus))
	for _, sku := range skus {
		products = append(products, models.Product{SKU: sku})
	}
	return products
}

func TestGenerateSKUInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Widget Pro", "WP"},
		{"widget pro", "WP"},
		{"Widget", "W"},
		{"3D Printer Filament", "3PF"},
		{"  spaced   out  name ", "SON"},
		{"#hash tag", "T"}, // words starting with symbols contribute nothing
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GenerateSKU(tt.name, nil), "name %q", tt.name)
	}
}

func TestGenerateSKUCollisionSuffix(t *testing.T) {
	existing := productsWithSKUs("AB", "AB-2")
	assert.Equal(t, "AB-3", GenerateSKU("Alpha Beta", existing))
}

func TestGenerateSKUCollisionIsCaseInsensitive(t *testing.T) {
	existing := productsWithSKUs("ab")
	assert.Equal(t, "AB-2", GenerateSKU("Alpha Beta", existing))
}

func TestGenerateSKUDeterministic(t *testing.T) {
	existing := productsWithSKUs("WP", "X")
	first := GenerateSKU("Widget Pro", existing)
	second := GenerateSKU("Widget Pro", existing)
	assert.Equal(t, first, second)
	assert.Equal(t, "WP-2", first)
}

func TestNewIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.NotEmpty(t, id)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
