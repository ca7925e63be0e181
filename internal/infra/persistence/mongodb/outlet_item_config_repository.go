package mongodb

import (
	"context"
	"time"

	"indocafe/internal/domain/entity"
	domainerrors "indocafe/internal/domain/errors"
	"indocafe/internal/domain/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type outletItemConfigRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewOutletItemConfigRepository returns an override repository backed by the outlet_item_configs collection.
func NewOutletItemConfigRepository(db *mongo.Database) repository.OutletItemConfigRepository {
	return &outletItemConfigRepository{coll: db.Collection(collectionOutletItemConfigs), now: time.Now}
}

func (repo *outletItemConfigRepository) FindByOutlet(ctx context.Context, outletID uuid.UUID) ([]*entity.OutletItemConfig, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{"outletId": outletID.String()})
	if err != nil {
		return nil, domainerrors.NewStorageUnavailableError(err, "failed to list outlet item configs")
	}

	var docs []*outletItemConfigDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewStorageUnavailableError(err, "failed to decode outlet item configs")
	}

	configs := make([]*entity.OutletItemConfig, 0, len(docs))
	for _, doc := range docs {
		cfg, err := toOutletItemConfigDomain(doc)
		if err != nil {
			return nil, domainerrors.NewStorageUnavailableError(err, "corrupt outlet item config document")
		}
		configs = append(configs, cfg)
	}

	return configs, nil
}

// Upsert runs findOneAndUpdate with upsert on the unique (outletId, menuItemId) key.
// Supplied fields go to $set; defaults for the rest go to $setOnInsert so they never
// overwrite stored values. Two concurrent first writes can both attempt the insert; the
// loser gets E11000 and is retried once, which then takes the update path.
func (repo *outletItemConfigRepository) Upsert(
	ctx context.Context,
	outletID, menuItemID uuid.UUID,
	patch entity.OutletItemPatch,
) (*entity.OutletItemConfig, error) {
	update, err := repo.buildUpdate(patch)
	if err != nil {
		return nil, domainerrors.ErrInvalidArgument.WithDetails(err.Error())
	}

	filter := bson.M{"outletId": outletID.String(), "menuItemId": menuItemID.String()}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc outletItemConfigDocument
	err = repo.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if mongo.IsDuplicateKeyError(err) {
		err = repo.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	}
	if err != nil {
		return nil, domainerrors.NewStorageUnavailableError(err, "failed to upsert outlet item config")
	}

	cfg, err := toOutletItemConfigDomain(&doc)
	if err != nil {
		return nil, domainerrors.NewStorageUnavailableError(err, "corrupt outlet item config document")
	}

	return cfg, nil
}

func (repo *outletItemConfigRepository) buildUpdate(patch entity.OutletItemPatch) (bson.M, error) {
	now := repo.now()

	set := bson.M{"updatedAt": now}
	setOnInsert := bson.M{"_id": uuid.NewString(), "createdAt": now}

	if patch.IsAvailable != nil {
		set["isAvailable"] = *patch.IsAvailable
	} else {
		setOnInsert["isAvailable"] = true
	}

	if patch.CustomPrice.Set {
		price, err := toDecimal128Ptr(patch.CustomPrice.Value)
		if err != nil {
			return nil, err
		}
		set["customPrice"] = price
	} else {
		setOnInsert["customPrice"] = nil
	}

	return bson.M{"$set": set, "$setOnInsert": setOnInsert}, nil
}
