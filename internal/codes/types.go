package codes

import "errors"

// ErrUnsupportedType is returned when a barcode symbology outside the
// supported catalog is requested.
var ErrUnsupportedType = errors.New("unsupported barcode type")

// Default symbology used when callers do not specify one.
const DefaultBarcodeType = "code128"

// BarcodeType describes one entry of the supported symbology catalog.
type BarcodeType struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Types returns the fixed catalog of supported barcode symbologies.
func Types() []BarcodeType {
	return []BarcodeType{
		{Value: "code128", Label: "Code 128", Description: "Most versatile, supports all ASCII characters"},
		{Value: "code39", Label: "Code 39", Description: "Supports letters, numbers, and some symbols"},
		{Value: "ean13", Label: "EAN-13", Description: "13-digit European Article Number"},
		{Value: "ean8", Label: "EAN-8", Description: "8-digit European Article Number"},
		{Value: "upca", Label: "UPC-A", Description: "12-digit Universal Product Code"},
		{Value: "upce", Label: "UPC-E", Description: "8-digit Universal Product Code"},
		{Value: "interleaved2of5", Label: "Interleaved 2 of 5", Description: "Numeric only, high density"},
		{Value: "datamatrix", Label: "Data Matrix", Description: "2D matrix barcode"},
	}
}

// IsSupported reports whether value names a symbology from the catalog.
func IsSupported(value string) bool {
	for _, t := range Types() {
		if t.Value == value {
			return true
		}
	}
	return false
}
