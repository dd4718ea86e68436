package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gosimple/slug"

	"inventoria_backend/internal/codes"
	"inventoria_backend/internal/database"
	"inventoria_backend/internal/models"
	"inventoria_backend/internal/repositories"
	"inventoria_backend/pkg/utils"
)

// --- Custom Service Errors for Products ---
var (
	ErrProductNotFound        = errors.New("product not found")
	ErrProductValidation      = errors.New("product validation error")
	ErrUnsupportedBarcodeType = codes.ErrUnsupportedType
)

// WarnCodeGeneration is surfaced when a record write succeeded but the
// QR/barcode files could not be produced. The record write stands.
const WarnCodeGeneration = "Product created but QR code/barcode generation failed"

// --- Product DTOs ---

type CreateProductRequest struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	SKU         string  `json:"sku"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
}

// UpdateProductRequest uses pointers to distinguish "field absent" (nil,
// leave the stored value untouched) from "reset to zero/empty" (non-nil zero
// value, written through).
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	SKU         *string  `json:"sku"`
	Description *string  `json:"description"`
	Location    *string  `json:"location"`
	QRCodePath  *string  `json:"qrCodePath"`
}

// --- ProductService Interface ---

// ProductService orchestrates product CRUD, SKU assignment and the derived
// QR/barcode artifact lifecycle. Create and Update return a warning string
// when the record was persisted but artifact generation failed.
type ProductService interface {
	List() []models.Product
	GetByID(id string) (*models.Product, error)
	Create(req CreateProductRequest) (*models.Product, string, error)
	Update(id string, req UpdateProductRequest) (*models.Product, string, error)
	Delete(id string) error

	GenerateQR(productID string) (*models.Product, string, error)
	GenerateBarcode(productID, barcodeType string) (*models.Product, string, string, error)
}

type productService struct {
	productRepo repositories.ProductRepository
	imagesDir   func() string
}

// NewProductService creates a new ProductService writing artifacts into the
// directory returned by imagesDir.
func NewProductService(productRepo repositories.ProductRepository, imagesDir func() string) ProductService {
	return &productService{productRepo: productRepo, imagesDir: imagesDir}
}

func (s *productService) List() []models.Product {
	return s.productRepo.GetAll()
}

func (s *productService) GetByID(id string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) Create(req CreateProductRequest) (*models.Product, string, error) {
	if utils.IsEmpty(req.Name) || utils.IsEmpty(req.Category) {
		return nil, "", fmt.Errorf("%w: name and category are required", ErrProductValidation)
	}

	sku := req.SKU
	if utils.IsEmpty(sku) {
		// Recomputed against the current collection on every create; manually
		// supplied SKUs are deliberately not deduplicated.
		sku = GenerateSKU(req.Name, s.productRepo.GetAll())
	}

	now := nowStamp()
	product := &models.Product{
		ID:          NewID(),
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		SKU:         sku,
		BarcodeType: codes.DefaultBarcodeType,
		Description: req.Description,
		Location:    req.Location,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, "", err
	}

	qrPath, barcodePath, err := s.generateArtifacts(product, codes.DefaultBarcodeType)
	if err != nil {
		utils.LogWarn(err, "Failed to generate codes for new product "+product.ID)
		return product, WarnCodeGeneration, nil
	}

	// Recording the artifact paths is part of creation, so the explicit
	// updatedAt keeps createdAt == updatedAt on the stored record.
	updated, err := s.productRepo.Update(product.ID, map[string]string{
		"qrCodePath":  qrPath,
		"barcodePath": barcodePath,
		"barcodeType": codes.DefaultBarcodeType,
		"updatedAt":   product.CreatedAt,
	})
	if err != nil {
		utils.LogWarn(err, "Failed to record code paths for new product "+product.ID)
		return product, WarnCodeGeneration, nil
	}
	return updated, "", nil
}

func (s *productService) Update(id string, req UpdateProductRequest) (*models.Product, string, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, "", err
	}

	skuChanged := req.SKU != nil && *req.SKU != existing.SKU

	patch := map[string]string{}
	if req.Name != nil && !utils.IsEmpty(*req.Name) {
		patch["name"] = *req.Name
	}
	if req.Category != nil && !utils.IsEmpty(*req.Category) {
		patch["category"] = *req.Category
	}
	if req.Price != nil {
		patch["price"] = utils.FloatToStr(*req.Price)
	}
	if req.Stock != nil {
		patch["stock"] = utils.IntToStr(*req.Stock)
	}
	if req.SKU != nil {
		patch["sku"] = *req.SKU
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}
	if req.Location != nil {
		patch["location"] = *req.Location
	}
	if req.QRCodePath != nil && *req.QRCodePath != "" {
		patch["qrCodePath"] = *req.QRCodePath
	}

	updated, err := s.productRepo.Update(id, patch)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, "", ErrProductNotFound
		}
		return nil, "", err
	}

	if !skuChanged {
		return updated, "", nil
	}

	// The SKU names the artifact files, so the old ones are stale now.
	removeArtifacts(existing)

	qrPath, barcodePath, err := s.generateArtifacts(updated, codes.DefaultBarcodeType)
	if err != nil {
		utils.LogWarn(err, "Failed to regenerate codes after SKU change for product "+id)
		return updated, WarnCodeGeneration, nil
	}
	updated, err = s.productRepo.Update(id, map[string]string{
		"qrCodePath":  qrPath,
		"barcodePath": barcodePath,
		"barcodeType": codes.DefaultBarcodeType,
	})
	if err != nil {
		utils.LogWarn(err, "Failed to record regenerated code paths for product "+id)
		return nil, WarnCodeGeneration, nil
	}
	return updated, "", nil
}

func (s *productService) Delete(id string) error {
	existing, err := s.GetByID(id)
	if err != nil {
		return err
	}

	// Artifact cleanup failures are logged and swallowed, never blocking
	// the record deletion.
	removeArtifacts(existing)

	if err := s.productRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	return nil
}

func (s *productService) GenerateQR(productID string) (*models.Product, string, error) {
	product, err := s.GetByID(productID)
	if err != nil {
		return nil, "", err
	}

	payload := codePayload(product)
	qrPath := filepath.Join(s.imagesDir(), "qr_"+fileToken(payload)+".png")
	if err := codes.GenerateQRCode(payload, qrPath); err != nil {
		return nil, "", err
	}

	updated, err := s.productRepo.Update(productID, map[string]string{"qrCodePath": qrPath})
	if err != nil {
		return nil, "", err
	}
	return updated, qrPath, nil
}

func (s *productService) GenerateBarcode(productID, barcodeType string) (*models.Product, string, string, error) {
	if barcodeType == "" {
		barcodeType = codes.DefaultBarcodeType
	}
	if !codes.IsSupported(barcodeType) {
		return nil, "", "", fmt.Errorf("%w: %s", ErrUnsupportedBarcodeType, barcodeType)
	}

	product, err := s.GetByID(productID)
	if err != nil {
		return nil, "", "", err
	}

	payload := codePayload(product)
	barcodePath := filepath.Join(s.imagesDir(), "barcode_"+fileToken(payload)+".png")
	if err := codes.GenerateBarcode(payload, barcodePath, barcodeType); err != nil {
		return nil, "", "", err
	}

	updated, err := s.productRepo.Update(productID, map[string]string{
		"barcodePath": barcodePath,
		"barcodeType": barcodeType,
	})
	if err != nil {
		return nil, "", "", err
	}
	return updated, barcodePath, barcodeType, nil
}

// generateArtifacts produces both code images for the product and returns
// their paths. Idempotent: same payload and directory overwrite in place.
func (s *productService) generateArtifacts(product *models.Product, barcodeType string) (string, string, error) {
	payload := codePayload(product)
	token := fileToken(payload)
	dir := s.imagesDir()
	qrPath := filepath.Join(dir, "qr_"+token+".png")
	barcodePath := filepath.Join(dir, "barcode_"+token+".png")

	if err := codes.GenerateQRCode(payload, qrPath); err != nil {
		return "", "", err
	}
	if err := codes.GenerateBarcode(payload, barcodePath, barcodeType); err != nil {
		return "", "", err
	}
	return qrPath, barcodePath, nil
}

// codePayload is the data encoded into both artifacts: the SKU, falling back
// to the record id when no SKU is set.
func codePayload(product *models.Product) string {
	if product.SKU != "" {
		return product.SKU
	}
	return product.ID
}

// fileToken sanitizes a code payload into a filesystem-safe file name part.
func fileToken(payload string) string {
	return slug.Make(payload)
}

// nowStamp returns the timestamp string stored in createdAt/updatedAt.
func nowStamp() string {
	return database.Now()
}

func removeArtifacts(product *models.Product) {
	for _, path := range []string{product.QRCodePath, product.BarcodePath} {
		if path == "" {
			continue
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			utils.LogWarn(err, "Failed to delete code file "+path)
		}
	}
}
