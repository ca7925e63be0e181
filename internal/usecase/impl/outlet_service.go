package impl

import (
	"cmp"
	"context"
	"log/slog"
	"math"
	"slices"
	"strings"
	"time"

	deliverycontext "indocafe/internal/delivery/context"
	"indocafe/internal/domain/entity"
	domainerrors "indocafe/internal/domain/errors"
	"indocafe/internal/domain/repository"
	"indocafe/internal/domain/service"
	"indocafe/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	metersPerKm = 1000.0
	// maxNearbyRadiusKm bounds radius queries.
	maxNearbyRadiusKm = 100.0
)

// outletService implements the OutletUsecase interface.
type outletService struct {
	outletRepo repository.OutletRepository
	qrcode     service.QRCodeService
	now        func() time.Time
	logger     *slog.Logger
}

// OutletServiceParams holds dependencies for OutletService, injected by Fx.
type OutletServiceParams struct {
	fx.In

	OutletRepo repository.OutletRepository
	QRCode     service.QRCodeService
	Logger     *slog.Logger
}

// NewOutletService is the constructor for outletService.
func NewOutletService(params OutletServiceParams) usecase.OutletUsecase {
	return &outletService{
		outletRepo: params.OutletRepo,
		qrcode:     params.QRCode,
		now:        time.Now,
		logger:     params.Logger,
	}
}

func (srv *outletService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOutlet validates and registers a new outlet. Outlets are active unless stated otherwise.
func (srv *outletService) CreateOutlet(ctx context.Context, input *usecase.CreateOutletInput) (*entity.Outlet, error) {
	if err := validateOutletInput(input); err != nil {
		return nil, err
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	now := srv.now()
	outlet := &entity.Outlet{
		ID:          id,
		Name:        strings.TrimSpace(input.Name),
		Address:     strings.TrimSpace(input.Address),
		Type:        input.Type,
		PhoneNumber: strings.TrimSpace(input.PhoneNumber),
		Location:    orb.Point{input.Longitude, input.Latitude},
		IsActive:    isActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.outletRepo.Create(ctx, outlet); err != nil {
		return nil, errors.Wrap(err, "failed to create outlet")
	}

	srv.log(ctx).Info("Outlet created",
		slog.String("outlet_id", outlet.ID.String()),
		slog.String("type", string(outlet.Type)),
	)

	return outlet, nil
}

// ListOutlets returns the listing projection of every outlet.
func (srv *outletService) ListOutlets(ctx context.Context) ([]*entity.OutletSummary, error) {
	outlets, err := srv.outletRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list outlets")
	}

	summaries := make([]*entity.OutletSummary, 0, len(outlets))
	for _, outlet := range outlets {
		summaries = append(summaries, outlet.Summary())
	}

	return summaries, nil
}

// FindNearbyOutlets returns active outlets within the radius, nearest first.
func (srv *outletService) FindNearbyOutlets(ctx context.Context, input *usecase.NearbyOutletsInput) ([]*entity.NearbyOutlet, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("location is required")
	}
	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}
	if !isFinite(input.RadiusKm) || input.RadiusKm <= 0 || input.RadiusKm > maxNearbyRadiusKm {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("radiusKm must be greater than 0 and at most 100")
	}

	outlets, err := srv.outletRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list outlets")
	}

	origin := orb.Point{input.Longitude, input.Latitude}
	nearby := make([]*entity.NearbyOutlet, 0)
	for _, outlet := range outlets {
		if !outlet.IsActive {
			continue
		}

		distanceKm := geo.DistanceHaversine(origin, outlet.Location) / metersPerKm
		if distanceKm > input.RadiusKm {
			continue
		}
		nearby = append(nearby, &entity.NearbyOutlet{Outlet: outlet, DistanceKm: distanceKm})
	}

	slices.SortStableFunc(nearby, func(a, b *entity.NearbyOutlet) int {
		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})

	return nearby, nil
}

// GenerateMenuQRCode renders the QR code of an existing outlet's public menu.
func (srv *outletService) GenerateMenuQRCode(ctx context.Context, rawOutletID string) ([]byte, error) {
	outletID, err := parseID(rawOutletID, "outletId")
	if err != nil {
		return nil, err
	}

	if _, err := srv.outletRepo.FindByID(ctx, outletID); err != nil {
		if errors.Is(err, repository.ErrOutletNotFound) {
			return nil, domainerrors.ErrOutletNotFound
		}

		return nil, errors.Wrap(err, "failed to find outlet")
	}

	png, err := srv.qrcode.GenerateOutletMenuQR(outletID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate outlet QR code")
	}

	return png, nil
}

func validateOutletInput(input *usecase.CreateOutletInput) error {
	switch {
	case input == nil:
		return domainerrors.ErrInvalidArgument.WithDetails("outlet is required")
	case strings.TrimSpace(input.Name) == "":
		return domainerrors.ErrInvalidArgument.WithDetails("name is required")
	case strings.TrimSpace(input.Address) == "":
		return domainerrors.ErrInvalidArgument.WithDetails("address is required")
	case !input.Type.IsValid():
		return domainerrors.ErrInvalidArgument.WithDetails("type must be one of dine_in, cloud_kitchen, hybrid")
	case strings.TrimSpace(input.PhoneNumber) == "":
		return domainerrors.ErrInvalidArgument.WithDetails("phoneNumber is required")
	}

	return validateCoordinates(input.Latitude, input.Longitude)
}

// validateCoordinates rejects NaN as well, which every range comparison would let through.
func validateCoordinates(lat, lng float64) error {
	if !isFinite(lat) || lat < -90 || lat > 90 {
		return domainerrors.ErrInvalidArgument.WithDetails("latitude must be between -90 and 90")
	}
	if !isFinite(lng) || lng < -180 || lng > 180 {
		return domainerrors.ErrInvalidArgument.WithDetails("longitude must be between -180 and 180")
	}

	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
