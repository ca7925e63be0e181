package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateOutletMenuQR renders a PNG QR code that opens the outlet's public menu.
	GenerateOutletMenuQR(outletID uuid.UUID) ([]byte, error)

	// MenuURL returns the public menu URL encoded in the outlet QR code.
	MenuURL(outletID uuid.UUID) string
}
