package utils

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

const (
	MinQRSize     = 128
	MaxQRSize     = 1024
	DefaultQRSize = 256
)

// GenerateQRCodePNG encodes content as a PNG of size pixels square. Sizes
// outside [MinQRSize, MaxQRSize] fall back to DefaultQRSize.
func GenerateQRCodePNG(content string, size int) ([]byte, error) {
	if size < MinQRSize || size > MaxQRSize {
		size = DefaultQRSize
	}

	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	return png, nil
}
