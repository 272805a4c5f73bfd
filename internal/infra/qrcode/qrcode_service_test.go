package qrcode

import (
	"bytes"
	"image/png"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBuildingQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	code, err := svc.GenerateBuildingQR()
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^BLD_[0-9a-f]{16}$`), code.UniqueIdentifier)

	img, err := png.Decode(bytes.NewReader(code.Image))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestGenerateBuildingQR_IdentifiersAreUnique(t *testing.T) {
	svc := NewQRCodeService(128, "L")

	seen := make(map[string]bool)
	for range 100 {
		code, err := svc.GenerateBuildingQR()
		require.NoError(t, err)
		assert.False(t, seen[code.UniqueIdentifier])
		seen[code.UniqueIdentifier] = true
	}
}

func TestNewQRCodeService_UnknownLevelFallsBackToMedium(t *testing.T) {
	svc := NewQRCodeService(64, "bogus").(*qrcodeService)
	assert.Equal(t, NewQRCodeService(64, "M").(*qrcodeService).errorCorrectionLevel, svc.errorCorrectionLevel)
}
