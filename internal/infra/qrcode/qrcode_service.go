// Package qrcode renders building access QR codes.
package qrcode

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/skip2/go-qrcode"

	"gatedesk/internal/domain/service"
)

const identifierPrefix = "BLD_"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateBuildingQR mints a fresh building identifier and renders it as a PNG QR code.
func (s *qrcodeService) GenerateBuildingQR() (*service.BuildingQRCode, error) {
	identifier, err := newIdentifier()
	if err != nil {
		return nil, fmt.Errorf("failed to generate identifier: %w", err)
	}

	qrCode, err := qrcode.New(identifier, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return &service.BuildingQRCode{
		UniqueIdentifier: identifier,
		Image:            pngBytes,
	}, nil
}

// newIdentifier returns BLD_ followed by 16 hex characters of randomness.
func newIdentifier() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return identifierPrefix + hex.EncodeToString(buf), nil
}
