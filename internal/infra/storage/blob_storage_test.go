package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_SaveImage(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobStorage(bucket, "https://cdn.example.com/qr/")
	ctx := context.Background()

	url, err := store.SaveImage(ctx, "buildings/abc.png", []byte{0x89, 0x50, 0x4e, 0x47})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/qr/buildings/abc.png", url)

	stored, err := bucket.ReadAll(ctx, "buildings/abc.png")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, stored)

	attrs, err := bucket.Attributes(ctx, "buildings/abc.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)
}

func TestBlobStorage_SaveImage_OverwritesExistingKey(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewBlobStorage(bucket, "https://cdn.example.com")
	ctx := context.Background()

	_, err := store.SaveImage(ctx, "k.png", []byte("one"))
	require.NoError(t, err)
	_, err = store.SaveImage(ctx, "k.png", []byte("two"))
	require.NoError(t, err)

	stored, err := bucket.ReadAll(ctx, "k.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), stored)
}
