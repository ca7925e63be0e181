// Package imagestore hosts menu item images in a gocloud.dev blob bucket.
package imagestore

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"strings"

	"indocafe/config"
	"indocafe/internal/domain/constants"
	domainerrors "indocafe/internal/domain/errors"
	"indocafe/internal/domain/service"
	"indocafe/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for single-node deployments
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets for development
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
)

const defaultBucketURL = "mem://"

type bucketStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	maxSizeBytes  int64
}

// Params holds dependencies for the image store, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket. Without configuration an in-memory bucket is used.
func New(params Params) (service.ImageStore, error) {
	cfg := params.Config.ImageStore
	if cfg == nil {
		cfg = &config.ImageStoreConfig{}
	}

	bucketURL := cfg.BucketURL
	if bucketURL == "" {
		params.Logger.Warn("Image store not configured, uploads are kept in memory")
		bucketURL = defaultBucketURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open image bucket %s", bucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	params.Logger.Info("Image store initialized", slog.String("bucket_url", bucketURL))

	return NewBucketStore(bucket, cfg.PublicBaseURL, cfg.MaxSizeBytes), nil
}

// NewBucketStore wraps an open bucket. maxSizeBytes <= 0 selects the default limit.
func NewBucketStore(bucket *blob.Bucket, publicBaseURL string, maxSizeBytes int64) service.ImageStore {
	if maxSizeBytes <= 0 {
		maxSizeBytes = constants.DefaultImageMaxSizeBytes
	}

	return &bucketStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		maxSizeBytes:  maxSizeBytes,
	}
}

// Upload streams r into the bucket under key. Content above the size limit aborts the write
// so no partial object is left behind.
func (s *bucketStore) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return "", domainerrors.ErrInvalidArgument.WithDetails("only image uploads are accepted")
	}

	writeCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w, err := s.bucket.NewWriter(writeCtx, key, &blob.WriterOptions{ContentType: mediaType})
	if err != nil {
		return "", domainerrors.NewStorageUnavailableError(err, "failed to open image writer")
	}

	written, err := io.Copy(w, io.LimitReader(r, s.maxSizeBytes+1))
	if err != nil {
		cancel()
		_ = w.Close()

		return "", domainerrors.NewStorageUnavailableError(err, "failed to write image")
	}
	if written > s.maxSizeBytes {
		cancel()
		_ = w.Close()

		return "", domainerrors.ErrInvalidArgument.WithDetails("image exceeds the maximum upload size of " + util.FormatBytes(s.maxSizeBytes))
	}

	if err := w.Close(); err != nil {
		return "", domainerrors.NewStorageUnavailableError(err, "failed to store image")
	}

	return s.publicURL(key), nil
}

// Open streams an uploaded image. Keys outside the image prefix are reported as missing.
func (s *bucketStore) Open(ctx context.Context, key string) (*service.StoredImage, error) {
	if !strings.HasPrefix(key, constants.ImageKeyPrefix) || strings.Contains(key, "..") {
		return nil, domainerrors.ErrNotFound.WithMessage("Image not found")
	}

	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, domainerrors.ErrNotFound.WithMessage("Image not found")
		}

		return nil, domainerrors.NewStorageUnavailableError(err, "failed to open image")
	}

	return &service.StoredImage{
		Body:        r,
		ContentType: r.ContentType(),
		Size:        r.Size(),
		ModTime:     r.ModTime(),
	}, nil
}

// publicURL joins the base URL and key. Without a base URL the key is returned as an absolute path.
func (s *bucketStore) publicURL(key string) string {
	return s.publicBaseURL + "/" + strings.TrimLeft(key, "/")
}
