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

type menuItemRepository struct {
	coll *mongo.Collection
}

// NewMenuItemRepository returns a catalog repository backed by the menu_items collection.
func NewMenuItemRepository(db *mongo.Database) repository.MenuItemRepository {
	return &menuItemRepository{coll: db.Collection(collectionMenuItems)}
}

func (repo *menuItemRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	doc, err := fromMenuItemDomain(item)
	if err != nil {
		return domainerrors.ErrInvalidArgument.WithDetails(err.Error())
	}

	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrConflict.WithDetails("menu item id already exists")
		}

		return domainerrors.NewStorageUnavailableError(err, "failed to create menu item")
	}

	return nil
}

func (repo *menuItemRepository) FindAll(ctx context.Context) ([]*entity.MenuItem, error) {
	cursor, err := repo.coll.Find(ctx, bson.D{}, insertionOrder())
	if err != nil {
		return nil, domainerrors.NewStorageUnavailableError(err, "failed to list menu items")
	}

	var docs []*menuItemDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewStorageUnavailableError(err, "failed to decode menu items")
	}

	items := make([]*entity.MenuItem, 0, len(docs))
	for _, doc := range docs {
		item, err := toMenuItemDomain(doc)
		if err != nil {
			return nil, domainerrors.NewStorageUnavailableError(err, "corrupt menu item document")
		}
		items = append(items, item)
	}

	return items, nil
}

func (repo *menuItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var doc menuItemDocument
	if err := repo.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrMenuItemNotFound
		}

		return nil, domainerrors.NewStorageUnavailableError(err, "failed to find menu item by id")
	}

	item, err := toMenuItemDomain(&doc)
	if err != nil {
		return nil, domainerrors.NewStorageUnavailableError(err, "corrupt menu item document")
	}

	return item, nil
}
