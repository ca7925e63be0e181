package mongodb

import (
	"time"

	"indocafe/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type menuItemDocument struct {
	ID          string               `bson:"_id"`
	Name        string               `bson:"name"`
	Description string               `bson:"description"`
	BasePrice   primitive.Decimal128 `bson:"basePrice"`
	Category    string               `bson:"category"`
	IsVeg       bool                 `bson:"isVeg"`
	Pieces      *int                 `bson:"pieces,omitempty"`
	Tags        []string             `bson:"tags,omitempty"`
	Image       string               `bson:"image,omitempty"`
	CreatedAt   time.Time            `bson:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt"`
}

// geoPoint is stored as GeoJSON so a 2dsphere index can be added without a data migration.
type geoPoint struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}

type outletDocument struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Address     string    `bson:"address"`
	Type        string    `bson:"type"`
	PhoneNumber string    `bson:"phoneNumber,omitempty"`
	Location    geoPoint  `bson:"location"`
	IsActive    bool      `bson:"isActive"`
	CreatedAt   time.Time `bson:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt"`
}

type outletItemConfigDocument struct {
	ID          string                `bson:"_id"`
	OutletID    string                `bson:"outletId"`
	MenuItemID  string                `bson:"menuItemId"`
	IsAvailable bool                  `bson:"isAvailable"`
	CustomPrice *primitive.Decimal128 `bson:"customPrice"`
	CreatedAt   time.Time             `bson:"createdAt"`
	UpdatedAt   time.Time             `bson:"updatedAt"`
}

type userDocument struct {
	ID                string    `bson:"_id"`
	Name              string    `bson:"name"`
	Email             string    `bson:"email"`
	PasswordHash      string    `bson:"passwordHash"`
	Role              string    `bson:"role"`
	PhoneNumber       string    `bson:"phoneNumber,omitempty"`
	DefaultOutletID   *string   `bson:"defaultOutletId"`
	AssignedOutletIDs []string  `bson:"assignedOutletIds,omitempty"`
	IsActive          bool      `bson:"isActive"`
	CreatedAt         time.Time `bson:"createdAt"`
	UpdatedAt         time.Time `bson:"updatedAt"`
}

// --- Decimal conversion ---

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	value, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, errors.Wrapf(err, "convert %s to decimal128", d.String())
	}

	return value, nil
}

func toDecimal128Ptr(d *decimal.Decimal) (*primitive.Decimal128, error) {
	if d == nil {
		return nil, nil
	}

	value, err := toDecimal128(*d)
	if err != nil {
		return nil, err
	}

	return &value, nil
}

func fromDecimal128(value primitive.Decimal128) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value.String())
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(err, "convert decimal128 %s", value.String())
	}

	return d, nil
}

// --- Mapper Functions ---

func fromMenuItemDomain(item *entity.MenuItem) (*menuItemDocument, error) {
	price, err := toDecimal128(item.BasePrice)
	if err != nil {
		return nil, err
	}

	return &menuItemDocument{
		ID:          item.ID.String(),
		Name:        item.Name,
		Description: item.Description,
		BasePrice:   price,
		Category:    item.Category.String(),
		IsVeg:       item.IsVeg,
		Pieces:      item.Pieces,
		Tags:        item.Tags,
		Image:       item.Image,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}, nil
}

func toMenuItemDomain(doc *menuItemDocument) (*entity.MenuItem, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, errors.Wrap(err, "parse menu item id")
	}
	price, err := fromDecimal128(doc.BasePrice)
	if err != nil {
		return nil, err
	}

	return &entity.MenuItem{
		ID:          id,
		Name:        doc.Name,
		Description: doc.Description,
		BasePrice:   price,
		Category:    entity.Category(doc.Category),
		IsVeg:       doc.IsVeg,
		Pieces:      doc.Pieces,
		Tags:        doc.Tags,
		Image:       doc.Image,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}, nil
}

func fromOutletDomain(outlet *entity.Outlet) *outletDocument {
	point := geojson.NewGeometry(outlet.Location)

	return &outletDocument{
		ID:          outlet.ID.String(),
		Name:        outlet.Name,
		Address:     outlet.Address,
		Type:        string(outlet.Type),
		PhoneNumber: outlet.PhoneNumber,
		Location:    geoPoint{Type: point.Type, Coordinates: []float64{outlet.Longitude(), outlet.Latitude()}},
		IsActive:    outlet.IsActive,
		CreatedAt:   outlet.CreatedAt,
		UpdatedAt:   outlet.UpdatedAt,
	}
}

func toOutletDomain(doc *outletDocument) (*entity.Outlet, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, errors.Wrap(err, "parse outlet id")
	}

	var location orb.Point
	if len(doc.Location.Coordinates) == 2 {
		location = orb.Point{doc.Location.Coordinates[0], doc.Location.Coordinates[1]}
	}

	return &entity.Outlet{
		ID:          id,
		Name:        doc.Name,
		Address:     doc.Address,
		Type:        entity.OutletType(doc.Type),
		PhoneNumber: doc.PhoneNumber,
		Location:    location,
		IsActive:    doc.IsActive,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}, nil
}

func toOutletItemConfigDomain(doc *outletItemConfigDocument) (*entity.OutletItemConfig, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, errors.Wrap(err, "parse outlet item config id")
	}
	outletID, err := uuid.Parse(doc.OutletID)
	if err != nil {
		return nil, errors.Wrap(err, "parse outlet id")
	}
	menuItemID, err := uuid.Parse(doc.MenuItemID)
	if err != nil {
		return nil, errors.Wrap(err, "parse menu item id")
	}

	cfg := &entity.OutletItemConfig{
		ID:          id,
		OutletID:    outletID,
		MenuItemID:  menuItemID,
		IsAvailable: doc.IsAvailable,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
	if doc.CustomPrice != nil {
		price, err := fromDecimal128(*doc.CustomPrice)
		if err != nil {
			return nil, err
		}
		cfg.CustomPrice = &price
	}

	return cfg, nil
}

func fromUserDomain(user *entity.User) *userDocument {
	doc := &userDocument{
		ID:           user.ID.String(),
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role.String(),
		PhoneNumber:  user.PhoneNumber,
		IsActive:     user.IsActive,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
	if user.DefaultOutletID != nil {
		outletID := user.DefaultOutletID.String()
		doc.DefaultOutletID = &outletID
	}
	for _, outletID := range user.AssignedOutletIDs {
		doc.AssignedOutletIDs = append(doc.AssignedOutletIDs, outletID.String())
	}

	return doc
}

func toUserDomain(doc *userDocument) (*entity.User, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, errors.Wrap(err, "parse user id")
	}

	user := &entity.User{
		ID:           id,
		Name:         doc.Name,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		Role:         entity.Role(doc.Role),
		PhoneNumber:  doc.PhoneNumber,
		IsActive:     doc.IsActive,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
	if doc.DefaultOutletID != nil {
		outletID, err := uuid.Parse(*doc.DefaultOutletID)
		if err != nil {
			return nil, errors.Wrap(err, "parse default outlet id")
		}
		user.DefaultOutletID = &outletID
	}
	for _, raw := range doc.AssignedOutletIDs {
		outletID, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.Wrap(err, "parse assigned outlet id")
		}
		user.AssignedOutletIDs = append(user.AssignedOutletIDs, outletID)
	}

	return user, nil
}
