// services/qrcode_service.go
package services

import (
	"github.com/skip2/go-qrcode"
)

// GenerateQRCode renders a PNG QR code pointing at the public
// registration form, for printing at venues.
func GenerateQRCode(formURL string, size int) ([]byte, error) {
	png, err := qrcode.Encode(formURL, qrcode.Medium, size)
	if err != nil {
		return nil, err
	}
	return png, nil
}
