// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"apothecary/internal/domain/entity"
)

// PotionInput defines the caller-supplied fields of a potion. It is used
// both for creation and for full replacement by identifier.
type PotionInput struct {
	Name        string         `json:"name"`
	Price       float64        `json:"price"`
	Score       float64        `json:"score"`
	Ingredients []any          `json:"ingredients"`
	Ratings     entity.Ratings `json:"ratings"`
	TryDate     *time.Time     `json:"tryDate"`
	Categories  []string       `json:"categories"`
	VendorID    string         `json:"vendor_id"`
}

// PotionUsecase defines the interface for potion catalog operations.
// This is the contract that the delivery layer depends on.
type PotionUsecase interface {
	List(ctx context.Context) ([]*entity.Potion, error)
	ListNames(ctx context.Context) ([]string, error)
	ListByVendor(ctx context.Context, vendorID string) ([]*entity.Potion, error)
	ListByPriceRange(ctx context.Context, min, max float64) ([]*entity.Potion, error)
	GetByID(ctx context.Context, id string) (*entity.Potion, error)
	Create(ctx context.Context, input *PotionInput) (*entity.Potion, error)
	Replace(ctx context.Context, id string, input *PotionInput) (*entity.Potion, error)
	Delete(ctx context.Context, id string) error
}
