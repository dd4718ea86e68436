package codes

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/code39"
	"github.com/boombuler/barcode/datamatrix"
	"github.com/boombuler/barcode/ean"
	"github.com/boombuler/barcode/twooffive"
)

const (
	barcodeWidth  = 300
	barcodeHeight = 120
	matrixSize    = 200
)

// GenerateBarcode encodes data under the requested symbology into a PNG
// written to filePath. An empty barcodeType falls back to Code 128; values
// outside the catalog return ErrUnsupportedType. Content that is invalid for
// the symbology (e.g. non-numeric EAN data) surfaces as an encoder error.
func GenerateBarcode(data, filePath, barcodeType string) error {
	if barcodeType == "" {
		barcodeType = DefaultBarcodeType
	}

	var (
		bc  barcode.Barcode
		err error
	)
	switch barcodeType {
	case "code128":
		bc, err = code128.Encode(data)
	case "code39":
		bc, err = code39.Encode(data, true, true)
	case "ean13", "ean8":
		bc, err = ean.Encode(data)
	case "upca":
		bc, err = encodeUPCA(data)
	case "upce":
		bc, err = encodeUPCE(data)
	case "interleaved2of5":
		bc, err = twooffive.Encode(data, true)
	case "datamatrix":
		bc, err = datamatrix.Encode(data)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, barcodeType)
	}
	if err != nil {
		return fmt.Errorf("encoding %s barcode: %w", barcodeType, err)
	}

	width, height := barcodeWidth, barcodeHeight
	if barcodeType == "datamatrix" {
		width, height = matrixSize, matrixSize
	}
	scaled, err := barcode.Scale(bc, width, height)
	if err != nil {
		return fmt.Errorf("scaling %s barcode: %w", barcodeType, err)
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return err
	}
	out, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer out.Close()
	return png.Encode(out, scaled)
}

// encodeUPCA renders a UPC-A code as its EAN-13 equivalent (leading zero).
// Accepts 11 digits (check digit appended by the encoder) or 12 digits
// including the check digit.
func encodeUPCA(data string) (barcode.Barcode, error) {
	if len(data) != 11 && len(data) != 12 {
		return nil, fmt.Errorf("upc-a content must be 11 or 12 digits, got %d", len(data))
	}
	return ean.Encode("0" + data)
}

// encodeUPCE expands a zero-suppressed UPC-E code to UPC-A and renders that.
// Accepts the 6-digit core or the full 8 digits (number system + core +
// check digit).
func encodeUPCE(data string) (barcode.Barcode, error) {
	core := data
	if len(core) == 8 {
		if core[0] != '0' {
			return nil, fmt.Errorf("upc-e number system must be 0, got %c", core[0])
		}
		core = core[1:7]
	}
	if len(core) != 6 {
		return nil, fmt.Errorf("upc-e content must be 6 or 8 digits, got %d", len(data))
	}
	for _, r := range core {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("upc-e content must be numeric")
		}
	}
	return encodeUPCA(expandUPCE(core))
}

// expandUPCE maps a 6-digit UPC-E core onto the 11-digit UPC-A body
// (number system 0, check digit omitted) per the standard expansion rules.
func expandUPCE(core string) string {
	d := core
	switch d[5] {
	case '0', '1', '2':
		return "0" + d[0:2] + string(d[5]) + "0000" + d[2:5]
	case '3':
		return "0" + d[0:3] + "00000" + d[3:5]
	case '4':
		return "0" + d[0:4] + "00000" + string(d[4])
	default:
		return "0" + d[0:5] + "0000" + string(d[5])
	}
}
