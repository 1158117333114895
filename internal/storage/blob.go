package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	gcs "cloud.google.com/go/storage"
)

// BlobStore wraps the GCS bucket that holds console-uploaded images.
type BlobStore struct {
	bucket     *gcs.BucketHandle
	bucketName string
}

func NewBlobStore(ctx context.Context, bucketName string) (*BlobStore, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage.NewClient: %w", err)
	}
	return &BlobStore{
		bucket:     client.Bucket(bucketName),
		bucketName: bucketName,
	}, nil
}

// UploadImage writes the image bytes under images/ and returns the
// object path and its public download URL. Uploads get a timestamp
// prefix so repeated uploads of the same filename never collide.
func (b *BlobStore) UploadImage(ctx context.Context, name, contentType string, r io.Reader) (objectPath, downloadURL string, err error) {
	objectPath = path.Join("images", fmt.Sprintf("%d_%s", time.Now().UnixMilli(), sanitizeName(path.Base(name))))

	w := b.bucket.Object(objectPath).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", "", fmt.Errorf("failed to write image %s: %w", objectPath, err)
	}
	if err := w.Close(); err != nil {
		return "", "", fmt.Errorf("failed to finalize image %s: %w", objectPath, err)
	}

	downloadURL = fmt.Sprintf("https://storage.googleapis.com/%s/%s", b.bucketName, objectPath)
	return objectPath, downloadURL, nil
}

// sanitizeName keeps object names URL-safe without escaping.
func sanitizeName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
