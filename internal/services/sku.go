package services

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"inventoria_backend/internal/models"
	"inventoria_backend/pkg/utils"
)

// NewID returns a fresh universally-unique record identifier.
func NewID() string {
	return uuid.NewString()
}

// GenerateSKU derives a stock-keeping unit from the product name: the
// uppercase initials of its words, suffixed with -2, -3, ... until the result
// collides with no existing SKU (case-insensitive). Deterministic for a given
// name and product list; collisions are resolved against the live collection
// at call time, not reserved in advance.
func GenerateSKU(name string, existing []models.Product) string {
	base := utils.Initials(name)
	candidate := base
	counter := 1
	for skuTaken(candidate, existing) {
		counter++
		candidate = base + "-" + strconv.Itoa(counter)
	}
	return candidate
}

func skuTaken(candidate string, existing []models.Product) bool {
	for _, p := range existing {
		if strings.EqualFold(p.SKU, candidate) {
			return true
		}
	}
	return false
}
