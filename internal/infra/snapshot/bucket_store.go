// Package snapshot publishes effective menu snapshots as JSON objects in a gocloud.dev blob bucket.
package snapshot

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"indocafe/config"
	"indocafe/internal/domain/constants"
	"indocafe/internal/domain/entity"
	domainerrors "indocafe/internal/domain/errors"
	"indocafe/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

const (
	defaultBucketURL = "mem://"
	cacheControl     = "public, max-age=60"
)

type bucketStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params holds dependencies for the snapshot store, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured snapshot bucket.
func New(params Params) (service.MenuSnapshotStore, error) {
	cfg := params.Config.Snapshot
	if cfg == nil {
		cfg = &config.SnapshotConfig{}
	}

	bucketURL := cfg.BucketURL
	if bucketURL == "" {
		params.Logger.Warn("Snapshot bucket not configured, snapshots are kept in memory")
		bucketURL = defaultBucketURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open snapshot bucket %s", bucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	params.Logger.Info("Snapshot store initialized", slog.String("bucket_url", bucketURL))

	return NewBucketStore(bucket, cfg.PublicBaseURL), nil
}

// NewBucketStore wraps an open bucket.
func NewBucketStore(bucket *blob.Bucket, publicBaseURL string) service.MenuSnapshotStore {
	return &bucketStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Key returns the object key of an outlet's snapshot.
func Key(snapshot *entity.MenuSnapshot) string {
	return constants.SnapshotKeyPrefix + snapshot.OutletID.String() + ".json"
}

// Put overwrites the outlet's snapshot object.
func (s *bucketStore) Put(ctx context.Context, snapshot *entity.MenuSnapshot) (string, error) {
	body, err := json.Marshal(snapshot)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode menu snapshot")
	}

	key := Key(snapshot)
	if err := s.bucket.WriteAll(ctx, key, body, &blob.WriterOptions{
		ContentType:  "application/json",
		CacheControl: cacheControl,
	}); err != nil {
		return "", domainerrors.NewStorageUnavailableError(err, "failed to write menu snapshot")
	}

	return s.publicBaseURL + "/" + key, nil
}
