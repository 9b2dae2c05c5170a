package impl

import (
	"context"
	"log/slog"

	deliverycontext "apothecary/internal/delivery/context"
	"apothecary/internal/domain/entity"
	domainerrors "apothecary/internal/domain/errors"
	"apothecary/internal/domain/repository"
	"apothecary/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// potionService implements the PotionUsecase interface.
type potionService struct {
	potionRepo repository.PotionRepository
	logger     *slog.Logger
}

// PotionServiceParams holds dependencies for potionService, injected by Fx.
type PotionServiceParams struct {
	fx.In

	PotionRepo repository.PotionRepository
	Logger     *slog.Logger
}

// NewPotionService is the constructor for potionService.
func NewPotionService(params PotionServiceParams) usecase.PotionUsecase {
	return &potionService{
		potionRepo: params.PotionRepo,
		logger:     params.Logger,
	}
}

func (srv *potionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *potionService) List(ctx context.Context) ([]*entity.Potion, error) {
	return srv.potionRepo.FindAll(ctx)
}

func (srv *potionService) ListNames(ctx context.Context) ([]string, error) {
	return srv.potionRepo.FindNames(ctx)
}

func (srv *potionService) ListByVendor(ctx context.Context, vendorID string) ([]*entity.Potion, error) {
	return srv.potionRepo.FindByVendor(ctx, vendorID)
}

// ListByPriceRange retrieves potions priced within [min, max], both bounds
// inclusive.
func (srv *potionService) ListByPriceRange(ctx context.Context, min, max float64) ([]*entity.Potion, error) {
	if min > max {
		return nil, domainerrors.ErrInvalidParameter.WithDetails("min must not exceed max")
	}

	return srv.potionRepo.FindByPriceRange(ctx, min, max)
}

func (srv *potionService) GetByID(ctx context.Context, id string) (*entity.Potion, error) {
	potion, err := srv.potionRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrPotionNotFound) {
		return nil, domainerrors.ErrNotFound.WithDetails("no potion with id " + id)
	}
	if err != nil {
		return nil, err
	}

	return potion, nil
}

func (srv *potionService) Create(ctx context.Context, input *usecase.PotionInput) (*entity.Potion, error) {
	potion := toPotionEntity(input)
	if err := srv.potionRepo.Insert(ctx, potion); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Potion created", slog.String("potionID", potion.ID))

	return potion, nil
}

// Replace fully replaces the document stored under id with the supplied
// fields; the identifier itself is preserved.
func (srv *potionService) Replace(ctx context.Context, id string, input *usecase.PotionInput) (*entity.Potion, error) {
	potion := toPotionEntity(input)
	err := srv.potionRepo.Replace(ctx, id, potion)
	if errors.Is(err, repository.ErrPotionNotFound) {
		return nil, domainerrors.ErrNotFound.WithDetails("no potion with id " + id)
	}
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Potion replaced", slog.String("potionID", id))

	return potion, nil
}

func (srv *potionService) Delete(ctx context.Context, id string) error {
	err := srv.potionRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrPotionNotFound) {
		return domainerrors.ErrNotFound.WithDetails("no potion with id " + id)
	}
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Potion deleted", slog.String("potionID", id))

	return nil
}

func toPotionEntity(input *usecase.PotionInput) *entity.Potion {
	return &entity.Potion{
		Name:        input.Name,
		Price:       input.Price,
		Score:       input.Score,
		Ingredients: input.Ingredients,
		Ratings:     input.Ratings,
		TryDate:     input.TryDate,
		Categories:  input.Categories,
		VendorID:    input.VendorID,
	}
}
