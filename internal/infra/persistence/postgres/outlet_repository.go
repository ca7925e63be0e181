package postgres

import (
	"context"

	"indocafe/internal/domain/entity"
	domainerrors "indocafe/internal/domain/errors"
	"indocafe/internal/domain/repository"
	"indocafe/internal/infra/persistence/model"
	"indocafe/internal/infra/persistence/postgres/query"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// outletRepository implements the repository.OutletRepository interface using GORM.
type outletRepository struct {
	q *query.Query
}

// NewOutletRepository is the constructor for outletRepository.
func NewOutletRepository(db *gorm.DB) repository.OutletRepository {
	return &outletRepository{
		q: query.Use(db),
	}
}

func (repo *outletRepository) Create(ctx context.Context, outlet *entity.Outlet) error {
	outletM := fromOutletDomain(outlet)
	if err := repo.q.OutletModel.WithContext(ctx).Create(outletM); err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WithDetails("outlet id already exists")
		}

		return domainerrors.NewStorageUnavailableError(err, "failed to create outlet")
	}

	outlet.CreatedAt = outletM.CreatedAt
	outlet.UpdatedAt = outletM.UpdatedAt

	return nil
}

func (repo *outletRepository) FindAll(ctx context.Context) ([]*entity.Outlet, error) {
	o := repo.q.OutletModel
	outletsM, err := o.WithContext(ctx).Order(o.CreatedAt, o.ID).Find()
	if err != nil {
		return nil, domainerrors.NewStorageUnavailableError(err, "failed to list outlets")
	}

	outlets := make([]*entity.Outlet, 0, len(outletsM))
	for _, outletM := range outletsM {
		outlets = append(outlets, toOutletDomain(outletM))
	}

	return outlets, nil
}

func (repo *outletRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Outlet, error) {
	o := repo.q.OutletModel
	outletM, err := o.WithContext(ctx).Where(o.ID.Eq(id)).First()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOutletNotFound
		}

		return nil, domainerrors.NewStorageUnavailableError(err, "failed to find outlet by id")
	}

	return toOutletDomain(outletM), nil
}

func toOutletDomain(data *model.OutletModel) *entity.Outlet {
	if data == nil {
		return nil
	}

	return &entity.Outlet{
		ID:          data.ID,
		Name:        data.Name,
		Address:     data.Address,
		Type:        entity.OutletType(data.Type),
		PhoneNumber: data.PhoneNumber,
		Location:    orb.Point{data.Longitude, data.Latitude},
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromOutletDomain(data *entity.Outlet) *model.OutletModel {
	if data == nil {
		return nil
	}

	return &model.OutletModel{
		ID:          data.ID,
		Name:        data.Name,
		Address:     data.Address,
		Type:        string(data.Type),
		PhoneNumber: data.PhoneNumber,
		Latitude:    data.Latitude(),
		Longitude:   data.Longitude(),
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
