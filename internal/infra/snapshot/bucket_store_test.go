package snapshot

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"indocafe/internal/domain/entity"
	domainerrors "indocafe/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBucketStore_PutWritesJSONObject(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBucketStore(bucket, "https://cdn.indocafe.id/")
	ctx := context.Background()

	outletID := uuid.Must(uuid.NewV7())
	snapshot := &entity.MenuSnapshot{
		OutletID:    outletID,
		OutletName:  "Kemang",
		GeneratedAt: time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC),
		Items: []*entity.EffectiveMenuEntry{{
			ID:            uuid.Must(uuid.NewV7()),
			Name:          "Nasi Goreng",
			Price:         decimal.NewFromInt(300),
			OriginalPrice: decimal.NewFromInt(250),
			IsAvailable:   true,
		}},
	}

	location, err := store.Put(ctx, snapshot)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.indocafe.id/menus/"+outletID.String()+".json", location)

	attrs, err := bucket.Attributes(ctx, Key(snapshot))
	require.NoError(t, err)
	assert.Equal(t, "application/json", attrs.ContentType)
	assert.Equal(t, cacheControl, attrs.CacheControl)

	raw, err := bucket.ReadAll(ctx, Key(snapshot))
	require.NoError(t, err)

	var decoded entity.MenuSnapshot
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, outletID, decoded.OutletID)
	require.Len(t, decoded.Items, 1)
	assert.True(t, decoded.Items[0].Price.Equal(decimal.NewFromInt(300)))
}

func TestBucketStore_PutOverwrites(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBucketStore(bucket, "")
	ctx := context.Background()
	snapshot := &entity.MenuSnapshot{OutletID: uuid.Must(uuid.NewV7()), OutletName: "Old"}

	_, err := store.Put(ctx, snapshot)
	require.NoError(t, err)

	snapshot.OutletName = "New"
	location, err := store.Put(ctx, snapshot)
	require.NoError(t, err)
	assert.Equal(t, "/"+Key(snapshot), location)

	raw, err := bucket.ReadAll(ctx, Key(snapshot))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"outletName":"New"`)
}

func TestBucketStore_ClosedBucketIsStorageUnavailable(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	store := NewBucketStore(bucket, "")
	require.NoError(t, bucket.Close())

	_, err := store.Put(context.Background(), &entity.MenuSnapshot{OutletID: uuid.Must(uuid.NewV7())})
	require.Error(t, err)
	assert.True(t, domainerrors.IsStorageUnavailable(err))
}
