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
)

// userRepository implements repository.UserRepository over a MongoDB
// collection.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		coll: db.Collection(userCollection),
	}
}

// FindByName retrieves a single user by their unique name.
func (repo *userRepository) FindByName(ctx context.Context, name string) (*entity.User, error) {
	var m model.UserModel
	err := repo.coll.FindOne(ctx, bson.D{{Key: "name", Value: name}}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, domainerrors.NewStoreFailureError(err, "failed to find user by name")
	}

	return model.ToUserDomain(&m), nil
}

// Create persists a new user. The unique index on name turns a concurrent
// duplicate registration into ErrUserExists here, at write time.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	res, err := repo.coll.InsertOne(ctx, model.FromUserDomain(user))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrUserExists
		}

		return domainerrors.NewStoreFailureError(err, "failed to create user")
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid.Hex()
	}

	return nil
}
