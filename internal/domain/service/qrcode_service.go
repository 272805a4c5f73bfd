package service

// BuildingQRCode holds the generated identity artifacts for a building.
type BuildingQRCode struct {
	// UniqueIdentifier is the stable code encoded into the image, in the
	// form BLD_ followed by 16 hex characters.
	UniqueIdentifier string

	// Image is the encoded QR code as PNG bytes.
	Image []byte
}

// QRCodeService defines the interface for building QR code generation.
type QRCodeService interface {
	// GenerateBuildingQR mints a fresh unique identifier and renders it as
	// a QR code image. Called once per building at creation time.
	GenerateBuildingQR() (*BuildingQRCode, error)
}
