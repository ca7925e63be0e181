package mongodb

import (
	"context"

	"indocafe/internal/domain/entity"
	domainerrors "indocafe/internal/domain/errors"
	"indocafe/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type outletRepository struct {
	coll *mongo.Collection
}

// NewOutletRepository returns an outlet registry backed by the outlets collection.
func NewOutletRepository(db *mongo.Database) repository.OutletRepository {
	return &outletRepository{coll: db.Collection(collectionOutlets)}
}

func (repo *outletRepository) Create(ctx context.Context, outlet *entity.Outlet) error {
	if _, err := repo.coll.InsertOne(ctx, fromOutletDomain(outlet)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrConflict.WithDetails("outlet id already exists")
		}

		return domainerrors.NewStorageUnavailableError(err, "failed to create outlet")
	}

	return nil
}

func (repo *outletRepository) FindAll(ctx context.Context) ([]*entity.Outlet, error) {
	cursor, err := repo.coll.Find(ctx, bson.D{}, insertionOrder())
	if err != nil {
		return nil, domainerrors.NewStorageUnavailableError(err, "failed to list outlets")
	}

	var docs []*outletDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewStorageUnavailableError(err, "failed to decode outlets")
	}

	outlets := make([]*entity.Outlet, 0, len(docs))
	for _, doc := range docs {
		outlet, err := toOutletDomain(doc)
		if err != nil {
			return nil, domainerrors.NewStorageUnavailableError(err, "corrupt outlet document")
		}
		outlets = append(outlets, outlet)
	}

	return outlets, nil
}

func (repo *outletRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Outlet, error) {
	var doc outletDocument
	if err := repo.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrOutletNotFound
		}

		return nil, domainerrors.NewStorageUnavailableError(err, "failed to find outlet by id")
	}

	outlet, err := toOutletDomain(&doc)
	if err != nil {
		return nil, domainerrors.NewStorageUnavailableError(err, "corrupt outlet document")
	}

	return outlet, nil
}
