package service

import (
	"context"
	"io"
	"time"
)

// StoredImage is an open image read back from the store. Callers must close Body.
type StoredImage struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
	ModTime     time.Time
}

// ImageStore is the image hosting sink. It stores the blob and returns a stable URL;
// callers persist only the URL.
type ImageStore interface {
	// Upload writes the content under key and returns its public URL.
	Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error)

	// Open reads back an uploaded image. Unknown keys yield ErrNotFound.
	Open(ctx context.Context, key string) (*StoredImage, error)
}
