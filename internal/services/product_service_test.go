package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventoria_backend/internal/database"
	"inventoria_backend/internal/repositories"
)

func newTestProductService(t *testing.T) (ProductService, string) {
	t.Helper()
	dir := t.TempDir()
	workbook := filepath.Join(dir, "database", "data.xlsx")
	store := database.NewSheetStore(func() string { return workbook })
	require.NoError(t, store.Init())

	imagesDir := filepath.Join(dir, "images")
	repo := repositories.NewProductRepository(store)
	return NewProductService(repo, func() string { return imagesDir }), imagesDir
}

func strPtr(s string) *string    { return &s }
func intPtr(n int) *int          { return &n }
func floatPtr(f float64) *float64 { return &f }

func TestCreateProduct(t *testing.T) {
	svc, imagesDir := newTestProductService(t)

	product, warning, err := svc.Create(CreateProductRequest{
		Name:     "Widget Pro",
		Category: "Electronics",
		Price:    9.99,
		Stock:    5,
	})
	require.NoError(t, err)
	assert.Empty(t, warning)

	assert.NotEmpty(t, product.ID)
	assert.Equal(t, "WP", product.SKU)
	assert.Equal(t, 9.99, product.Price)
	assert.Equal(t, 5, product.Stock)
	assert.Equal(t, "code128", product.BarcodeType)
	assert.Equal(t, product.CreatedAt, product.UpdatedAt)

	// Both artifacts exist on disk and their paths are recorded.
	require.NotEmpty(t, product.QRCodePath)
	require.NotEmpty(t, product.BarcodePath)
	assert.FileExists(t, product.QRCodePath)
	assert.FileExists(t, product.BarcodePath)
	assert.Equal(t, imagesDir, filepath.Dir(product.QRCodePath))

	// IDs are unique across creations.
	second, _, err := svc.Create(CreateProductRequest{Name: "Widget Pro", Category: "Electronics"})
	require.NoError(t, err)
	assert.NotEqual(t, product.ID, second.ID)
	assert.Equal(t, "WP-2", second.SKU)
}

func TestCreateProductValidation(t *testing.T) {
	svc, _ := newTestProductService(t)

	_, _, err := svc.Create(CreateProductRequest{Name: "", Category: "Electronics"})
	assert.True(t, errors.Is(err, ErrProductValidation))

	_, _, err = svc.Create(CreateProductRequest{Name: "Widget", Category: "   "})
	assert.True(t, errors.Is(err, ErrProductValidation))
}

func TestCreateProductManualSKUNotDeduplicated(t *testing.T) {
	svc, _ := newTestProductService(t)

	first, _, err := svc.Create(CreateProductRequest{Name: "Widget", Category: "Tools", SKU: "AB"})
	require.NoError(t, err)
	second, _, err := svc.Create(CreateProductRequest{Name: "Wrench", Category: "Tools", SKU: "AB"})
	require.NoError(t, err)

	// Manually supplied SKUs bypass the uniqueness suffixing.
	assert.Equal(t, "AB", first.SKU)
	assert.Equal(t, "AB", second.SKU)
}

func TestCreateProductWarnsWhenArtifactsFail(t *testing.T) {
	dir := t.TempDir()
	workbook := filepath.Join(dir, "data.xlsx")
	store := database.NewSheetStore(func() string { return workbook })
	require.NoError(t, store.Init())

	// A regular file where the media directory should be makes generation fail.
	blocked := filepath.Join(dir, "images")
	require.NoError(t, os.WriteFile(blocked, []byte("not a dir"), 0o644))

	svc := NewProductService(repositories.NewProductRepository(store), func() string { return blocked })

	product, warning, err := svc.Create(CreateProductRequest{Name: "Widget Pro", Category: "Electronics"})
	require.NoError(t, err)
	assert.Equal(t, WarnCodeGeneration, warning)

	// The record write stands even though enrichment failed.
	stored, err := svc.GetByID(product.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.QRCodePath)
	assert.Empty(t, stored.BarcodePath)
}

func TestUpdateProductPatchSemantics(t *testing.T) {
	svc, _ := newTestProductService(t)
	created, _, err := svc.Create(CreateProductRequest{
		Name: "Widget Pro", Category: "Electronics", Price: 9.99, Stock: 5,
	})
	require.NoError(t, err)

	// {stock: 0} persists the zero; the absent sku stays untouched.
	updated, warning, err := svc.Update(created.ID, UpdateProductRequest{Stock: intPtr(0)})
	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.Equal(t, 0, updated.Stock)
	assert.Equal(t, "WP", updated.SKU)
	assert.Equal(t, 9.99, updated.Price)

	stored, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Stock)
	assert.Equal(t, "WP", stored.SKU)
}

func TestUpdateProductSKUChangeSwapsArtifacts(t *testing.T) {
	svc, imagesDir := newTestProductService(t)
	created, _, err := svc.Create(CreateProductRequest{Name: "Alpha Beta", Category: "Tools", SKU: "AB"})
	require.NoError(t, err)
	oldQR, oldBarcode := created.QRCodePath, created.BarcodePath
	require.FileExists(t, oldQR)
	require.FileExists(t, oldBarcode)

	updated, warning, err := svc.Update(created.ID, UpdateProductRequest{SKU: strPtr("CD")})
	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.Equal(t, "CD", updated.SKU)

	// Old artifacts are gone, the new pair exists, nothing else is left over.
	assert.NoFileExists(t, oldQR)
	assert.NoFileExists(t, oldBarcode)
	assert.FileExists(t, updated.QRCodePath)
	assert.FileExists(t, updated.BarcodePath)
	assert.NotEqual(t, oldQR, updated.QRCodePath)

	entries, err := os.ReadDir(imagesDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestUpdateProductSameSKUKeepsArtifacts(t *testing.T) {
	svc, _ := newTestProductService(t)
	created, _, err := svc.Create(CreateProductRequest{Name: "Alpha Beta", Category: "Tools", SKU: "AB"})
	require.NoError(t, err)

	updated, _, err := svc.Update(created.ID, UpdateProductRequest{
		SKU:   strPtr("AB"),
		Price: floatPtr(19.99),
	})
	require.NoError(t, err)
	assert.Equal(t, created.QRCodePath, updated.QRCodePath)
	assert.FileExists(t, updated.QRCodePath)
	assert.Equal(t, 19.99, updated.Price)
}

func TestUpdateProductNotFound(t *testing.T) {
	svc, _ := newTestProductService(t)
	_, _, err := svc.Update("missing", UpdateProductRequest{Name: strPtr("x")})
	assert.True(t, errors.Is(err, ErrProductNotFound))
}

func TestDeleteProductRemovesRecordAndArtifacts(t *testing.T) {
	svc, imagesDir := newTestProductService(t)
	created, _, err := svc.Create(CreateProductRequest{Name: "Widget Pro", Category: "Electronics"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))

	_, err = svc.GetByID(created.ID)
	assert.True(t, errors.Is(err, ErrProductNotFound))
	assert.NoFileExists(t, created.QRCodePath)
	assert.NoFileExists(t, created.BarcodePath)

	entries, err := os.ReadDir(imagesDir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.True(t, errors.Is(svc.Delete(created.ID), ErrProductNotFound))
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	svc, _ := newTestProductService(t)
	created, _, err := svc.Create(CreateProductRequest{
		Name:        "Widget Pro",
		Category:    "Electronics",
		Price:       9.99,
		Stock:       5,
		Description: "A very professional widget",
		Location:    "Shelf A",
	})
	require.NoError(t, err)

	stored, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, stored)
}

func TestGenerateQRUsesSKUPayload(t *testing.T) {
	svc, _ := newTestProductService(t)
	created, _, err := svc.Create(CreateProductRequest{Name: "Widget Pro", Category: "Electronics"})
	require.NoError(t, err)

	product, qrPath, err := svc.GenerateQR(created.ID)
	require.NoError(t, err)
	assert.FileExists(t, qrPath)
	assert.Equal(t, qrPath, product.QRCodePath)

	_, _, err = svc.GenerateQR("missing")
	assert.True(t, errors.Is(err, ErrProductNotFound))
}

func TestGenerateBarcodeTypeHandling(t *testing.T) {
	svc, _ := newTestProductService(t)
	created, _, err := svc.Create(CreateProductRequest{Name: "Widget Pro", Category: "Electronics"})
	require.NoError(t, err)

	_, _, _, err = svc.GenerateBarcode(created.ID, "pdf417")
	assert.True(t, errors.Is(err, ErrUnsupportedBarcodeType))

	product, barcodePath, barcodeType, err := svc.GenerateBarcode(created.ID, "")
	require.NoError(t, err)
	assert.Equal(t, "code128", barcodeType)
	assert.FileExists(t, barcodePath)
	assert.Equal(t, barcodePath, product.BarcodePath)

	// The SKU "WP" cannot be encoded as EAN-13; the failure surfaces.
	_, _, _, err = svc.GenerateBarcode(created.ID, "ean13")
	assert.Error(t, err)
}
