package service

import "context"

// QRStorage defines the interface for persisting rendered QR code images.
type QRStorage interface {
	// SaveImage stores PNG bytes under the given key and returns a URL the
	// image can later be fetched from.
	SaveImage(ctx context.Context, key string, png []byte) (string, error)
}
