package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"indocafe/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "https://order.indocafe.in")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_MenuURL(t *testing.T) {
	outletID := uuid.MustParse("0190a6f4-4c1b-7b7e-9d2c-3a1f0e5b6c7d")

	service := NewQRCodeService(256, "M", "https://order.indocafe.in/")
	assert.Equal(t, "https://order.indocafe.in/menu/0190a6f4-4c1b-7b7e-9d2c-3a1f0e5b6c7d", service.MenuURL(outletID))

	fallback := NewFromConfig(&config.Config{})
	assert.Equal(t, "http://localhost:8080/menu/0190a6f4-4c1b-7b7e-9d2c-3a1f0e5b6c7d", fallback.MenuURL(outletID))
}

func TestQRCodeService_GenerateOutletMenuQR(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M", "https://order.indocafe.in")

			qrBytes, err := service.GenerateOutletMenuQR(uuid.New())
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(qrBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.size, img.Bounds().Dx())
			assert.Equal(t, tt.size, img.Bounds().Dy())
		})
	}
}
