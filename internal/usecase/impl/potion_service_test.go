package impl

import (
	"context"
	"testing"

	"apothecary/internal/domain/entity"
	domainerrors "apothecary/internal/domain/errors"
	"apothecary/internal/domain/repository"
	"apothecary/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPotionService(repo *fakePotionRepo) usecase.PotionUsecase {
	return NewPotionService(PotionServiceParams{
		PotionRepo: repo,
		Logger:     discardLogger(),
	})
}

func TestPotionService_List(t *testing.T) {
	repo := &fakePotionRepo{potions: []*entity.Potion{
		{ID: "a", Name: "Elixir of Vigor"},
		{ID: "b", Name: "Moonshade Draught"},
	}}

	potions, err := newPotionService(repo).List(context.Background())

	require.NoError(t, err)
	require.Len(t, potions, 2)
	assert.Equal(t, "Elixir of Vigor", potions[0].Name)
}

func TestPotionService_ListByPriceRange_RejectsInvertedBounds(t *testing.T) {
	repo := &fakePotionRepo{}

	_, err := newPotionService(repo).ListByPriceRange(context.Background(), 50, 10)

	require.ErrorIs(t, err, domainerrors.ErrInvalidParameter)
}

func TestPotionService_ListByPriceRange_BoundsInclusive(t *testing.T) {
	repo := &fakePotionRepo{potions: []*entity.Potion{{ID: "a"}}}

	potions, err := newPotionService(repo).ListByPriceRange(context.Background(), 10, 10)

	require.NoError(t, err)
	assert.Len(t, potions, 1)
}

func TestPotionService_GetByID_NotFound(t *testing.T) {
	repo := &fakePotionRepo{findErr: repository.ErrPotionNotFound}

	_, err := newPotionService(repo).GetByID(context.Background(), "66f0000000000000000000aa")

	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "66f0000000000000000000aa")
}

func TestPotionService_Create_FillsGeneratedID(t *testing.T) {
	repo := &fakePotionRepo{}

	potion, err := newPotionService(repo).Create(context.Background(), &usecase.PotionInput{
		Name:     "Elixir of Vigor",
		Price:    12.5,
		VendorID: "vendor-7",
	})

	require.NoError(t, err)
	assert.Equal(t, "potion-1", potion.ID)
	assert.Equal(t, "Elixir of Vigor", potion.Name)
}

func TestPotionService_Replace_NotFound(t *testing.T) {
	repo := &fakePotionRepo{replaceErr: repository.ErrPotionNotFound}

	_, err := newPotionService(repo).Replace(context.Background(), "missing", &usecase.PotionInput{Name: "X"})

	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestPotionService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := &fakePotionRepo{}
		require.NoError(t, newPotionService(repo).Delete(context.Background(), "potion-1"))
	})

	t.Run("not found", func(t *testing.T) {
		repo := &fakePotionRepo{deleteErr: repository.ErrPotionNotFound}
		err := newPotionService(repo).Delete(context.Background(), "missing")
		require.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}
