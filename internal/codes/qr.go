package codes

import (
	"os"
	"path/filepath"

	qrcode "github.com/skip2/go-qrcode"
)

const qrImageSize = 256

// GenerateQRCode encodes data into a QR PNG written to filePath. Regenerating
// with the same data and path overwrites the file in place.
func GenerateQRCode(data, filePath string) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return err
	}
	return qrcode.WriteFile(data, qrcode.Medium, qrImageSize, filePath)
}
