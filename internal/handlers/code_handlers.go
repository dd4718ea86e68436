package handlers

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"inventoria_backend/internal/codes"
	"inventoria_backend/internal/services"
	"inventoria_backend/pkg/utils"
)

// CodeHandler serves QR-code and barcode generation and retrieval.
type CodeHandler struct {
	productService services.ProductService
}

// NewCodeHandler creates a new CodeHandler.
func NewCodeHandler(ps services.ProductService) *CodeHandler {
	return &CodeHandler{productService: ps}
}

type generateQRRequest struct {
	ProductID string `json:"productId"`
}

type generateBarcodeRequest struct {
	ProductID   string `json:"productId"`
	BarcodeType string `json:"barcodeType"`
}

// GenerateQR regenerates the QR code for a product and records its path.
func (h *CodeHandler) GenerateQR(c *gin.Context) {
	var req generateQRRequest
	if err := c.ShouldBindJSON(&req); err != nil || utils.IsEmpty(req.ProductID) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Product ID is required"))
		return
	}

	product, qrPath, err := h.productService.GenerateQR(req.ProductID)
	if err != nil {
		utils.LogError(err, "GenerateQR: Error from productService.GenerateQR for ID "+req.ProductID)
		if errors.Is(err, services.ErrProductNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Product not found"))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to generate QR code"))
		}
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{"product": product, "qrCodePath": qrPath})
}

// GetQRImage streams the QR code image generated for a product.
func (h *CodeHandler) GetQRImage(c *gin.Context) {
	productID := c.Param("productId")

	product, err := h.productService.GetByID(productID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Product not found"))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch QR code"))
		}
		return
	}

	if product.QRCodePath == "" || !fileExists(product.QRCodePath) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "QR code not found for this product"))
		return
	}
	c.File(product.QRCodePath)
}

// GenerateBarcode regenerates the barcode for a product under the requested
// symbology and records its path and type.
func (h *CodeHandler) GenerateBarcode(c *gin.Context) {
	var req generateBarcodeRequest
	if err := c.ShouldBindJSON(&req); err != nil || utils.IsEmpty(req.ProductID) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Product ID is required"))
		return
	}

	product, barcodePath, barcodeType, err := h.productService.GenerateBarcode(req.ProductID, req.BarcodeType)
	if err != nil {
		utils.LogError(err, "GenerateBarcode: Error from productService.GenerateBarcode for ID "+req.ProductID)
		if errors.Is(err, services.ErrProductNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Product not found"))
		} else if errors.Is(err, services.ErrUnsupportedBarcodeType) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Unsupported barcode type: "+req.BarcodeType))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to generate barcode"))
		}
		return
	}
	utils.RespondSuccess(c, http.StatusOK, gin.H{
		"product":     product,
		"barcodePath": barcodePath,
		"barcodeType": barcodeType,
	})
}

// GetBarcodeImage streams the barcode image generated for a product.
func (h *CodeHandler) GetBarcodeImage(c *gin.Context) {
	productID := c.Param("productId")

	product, err := h.productService.GetByID(productID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Product not found"))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch barcode"))
		}
		return
	}

	if product.BarcodePath == "" || !fileExists(product.BarcodePath) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Barcode not found for this product"))
		return
	}
	c.File(product.BarcodePath)
}

// GetBarcodeTypes returns the fixed catalog of supported barcode symbologies.
func (h *CodeHandler) GetBarcodeTypes(c *gin.Context) {
	utils.RespondSuccess(c, http.StatusOK, codes.Types())
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
