package utils

import (
	"bytes"
	"image/png"
	"testing"
)

func TestGenerateQRCodePNG(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{256, 256},
		{512, 512},
		{0, DefaultQRSize},
		{64, DefaultQRSize},
		{4096, DefaultQRSize},
	}

	for _, tt := range tests {
		data, err := GenerateQRCodePNG("http://localhost:5173/events/1", tt.size)
		if err != nil {
			t.Fatalf("size %d: %v", tt.size, err)
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("size %d: not a PNG: %v", tt.size, err)
		}
		if w := img.Bounds().Dx(); w != tt.want {
			t.Errorf("size %d: expected %dpx, got %dpx", tt.size, tt.want, w)
		}
	}
}
