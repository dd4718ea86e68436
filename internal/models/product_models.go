package models

import (
	"inventoria_backend/pkg/utils"
)

// Product represents one catalog entry of the Products sheet.
//
// Category and Location are denormalized name references, not foreign keys:
// they are never validated against the Categories/Storage collections and
// renaming or deleting a category does not cascade to products.
// Timestamps are the RFC 3339 strings stored in the sheet cells.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	SKU         string  `json:"sku"`
	QRCodePath  string  `json:"qrCodePath"`
	BarcodePath string  `json:"barcodePath"`
	BarcodeType string  `json:"barcodeType"`
	Description string  `json:"description,omitempty"`
	Location    string  `json:"location,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToRow serializes the product into a sheet row.
func (p Product) ToRow() map[string]string {
	return map[string]string{
		"id":          p.ID,
		"name":        p.Name,
		"category":    p.Category,
		"price":       utils.FloatToStr(p.Price),
		"stock":       utils.IntToStr(p.Stock),
		"sku":         p.SKU,
		"qrCodePath":  p.QRCodePath,
		"barcodePath": p.BarcodePath,
		"barcodeType": p.BarcodeType,
		"description": p.Description,
		"location":    p.Location,
		"createdAt":   p.CreatedAt,
		"updatedAt":   p.UpdatedAt,
	}
}

// ProductFromRow parses a sheet row into a Product. Malformed numeric cells
// come back as zero values.
func ProductFromRow(row map[string]string) Product {
	return Product{
		ID:          row["id"],
		Name:        row["name"],
		Category:    row["category"],
		Price:       utils.StrToFloat(row["price"]),
		Stock:       utils.StrToInt(row["stock"]),
		SKU:         row["sku"],
		QRCodePath:  row["qrCodePath"],
		BarcodePath: row["barcodePath"],
		BarcodeType: row["barcodeType"],
		Description: row["description"],
		Location:    row["location"],
		CreatedAt:   row["createdAt"],
		UpdatedAt:   row["updatedAt"],
	}
}
