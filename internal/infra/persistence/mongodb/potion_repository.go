package mongodb

import (
	"context"

	"apothecary/internal/domain/entity"
	domainerrors "apothecary/internal/domain/errors"
	"apothecary/internal/domain/repository"
	"apothecary/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// potionRepository implements repository.PotionRepository over a MongoDB
// collection.
type potionRepository struct {
	coll *mongo.Collection
}

// NewPotionRepository is the constructor for potionRepository.
// It returns the repository as a domain interface, adhering to dependency
// inversion.
func NewPotionRepository(db *mongo.Database) repository.PotionRepository {
	return &potionRepository{
		coll: db.Collection(potionCollection),
	}
}

// FindAll retrieves every potion in the collection.
func (repo *potionRepository) FindAll(ctx context.Context) ([]*entity.Potion, error) {
	return repo.find(ctx, bson.D{})
}

// FindNames retrieves only the name field of every potion.
func (repo *potionRepository) FindNames(ctx context.Context) ([]string, error) {
	projection := options.Find().SetProjection(bson.D{
		{Key: "name", Value: 1},
		{Key: "_id", Value: 0},
	})

	cursor, err := repo.coll.Find(ctx, bson.D{}, projection)
	if err != nil {
		return nil, domainerrors.NewStoreFailureError(err, "failed to find potion names")
	}

	var docs []struct {
		Name string `bson:"name"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewStoreFailureError(err, "failed to decode potion names")
	}

	names := make([]string, 0, len(docs))
	for _, doc := range docs {
		names = append(names, doc.Name)
	}

	return names, nil
}

// FindByVendor retrieves the potions of a single vendor.
func (repo *potionRepository) FindByVendor(ctx context.Context, vendorID string) ([]*entity.Potion, error) {
	return repo.find(ctx, bson.D{{Key: "vendor_id", Value: vendorID}})
}

// FindByPriceRange retrieves potions with min <= price <= max.
func (repo *potionRepository) FindByPriceRange(ctx context.Context, min, max float64) ([]*entity.Potion, error) {
	filter := bson.D{{Key: "price", Value: bson.D{
		{Key: "$gte", Value: min},
		{Key: "$lte", Value: max},
	}}}

	return repo.find(ctx, filter)
}

// FindByID retrieves a single potion by its identifier. An identifier
// that is not a valid ObjectID cannot address any stored document, so it
// reports the same not-found error as a missing one.
func (repo *potionRepository) FindByID(ctx context.Context, id string) (*entity.Potion, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrPotionNotFound
	}

	var m model.PotionModel
	err = repo.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrPotionNotFound
	}
	if err != nil {
		return nil, domainerrors.NewStoreFailureError(err, "failed to find potion by id")
	}

	return model.ToPotionDomain(&m), nil
}

// Insert persists a new potion and fills in the generated identifier.
func (repo *potionRepository) Insert(ctx context.Context, potion *entity.Potion) error {
	m, err := model.FromPotionDomain(potion)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid potion identifier")
	}

	res, err := repo.coll.InsertOne(ctx, m)
	if err != nil {
		return domainerrors.NewStoreFailureError(err, "failed to insert potion")
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		potion.ID = oid.Hex()
	}

	return nil
}

// Replace fully replaces the potion stored under id.
func (repo *potionRepository) Replace(ctx context.Context, id string, potion *entity.Potion) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrPotionNotFound
	}

	replacement, err := model.FromPotionDomain(potion)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("invalid potion identifier")
	}
	replacement.ID = oid

	res, err := repo.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: oid}}, replacement)
	if err != nil {
		return domainerrors.NewStoreFailureError(err, "failed to replace potion")
	}
	if res.MatchedCount == 0 {
		return repository.ErrPotionNotFound
	}

	potion.ID = id

	return nil
}

// Delete removes the potion stored under id.
func (repo *potionRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrPotionNotFound
	}

	res, err := repo.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return domainerrors.NewStoreFailureError(err, "failed to delete potion")
	}
	if res.DeletedCount == 0 {
		return repository.ErrPotionNotFound
	}

	return nil
}

// Aggregate runs an aggregation pipeline over the collection. An empty
// result set decodes to an empty slice, never an error.
func (repo *potionRepository) Aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]bson.M, error) {
	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, domainerrors.NewStoreFailureError(err, "failed to run aggregation")
	}

	rows := []bson.M{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, domainerrors.NewStoreFailureError(err, "failed to decode aggregation rows")
	}

	return rows, nil
}

func (repo *potionRepository) find(ctx context.Context, filter bson.D) ([]*entity.Potion, error) {
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, domainerrors.NewStoreFailureError(err, "failed to find potions")
	}

	var models []*model.PotionModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, domainerrors.NewStoreFailureError(err, "failed to decode potions")
	}

	potions := make([]*entity.Potion, 0, len(models))
	for _, m := range models {
		potions = append(potions, model.ToPotionDomain(m))
	}

	return potions, nil
}
