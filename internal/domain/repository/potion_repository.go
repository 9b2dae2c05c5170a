// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"apothecary/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrPotionNotFound is a domain-specific error returned when a potion is
// not found by identifier. An identifier that cannot possibly address a
// stored document counts as not found.
var ErrPotionNotFound = errors.New("potion not found")

// PotionRepository defines the standard operations for potion persistence.
// The application layer depends on this interface, not the concrete store.
type PotionRepository interface {
	// FindAll retrieves every potion in the collection.
	FindAll(ctx context.Context) ([]*entity.Potion, error)

	// FindNames retrieves only the name of every potion.
	FindNames(ctx context.Context) ([]string, error)

	// FindByVendor retrieves the potions of a single vendor.
	FindByVendor(ctx context.Context, vendorID string) ([]*entity.Potion, error)

	// FindByPriceRange retrieves potions with min <= price <= max.
	FindByPriceRange(ctx context.Context, min, max float64) ([]*entity.Potion, error)

	// FindByID retrieves a single potion by its identifier.
	FindByID(ctx context.Context, id string) (*entity.Potion, error)

	// Insert persists a new potion and fills in its generated identifier.
	Insert(ctx context.Context, potion *entity.Potion) error

	// Replace fully replaces the potion stored under id.
	Replace(ctx context.Context, id string, potion *entity.Potion) error

	// Delete removes the potion stored under id.
	Delete(ctx context.Context, id string) error

	// Aggregate runs an aggregation pipeline over the collection and
	// returns the raw result rows. Read-only.
	Aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]bson.M, error)
}
