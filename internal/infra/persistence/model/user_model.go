package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"apothecary/internal/domain/entity"
)

// UserModel is the stored shape of a user document. The password field
// only ever holds the salted hash.
type UserModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// FromUserDomain maps a pure domain entity to its persistence model.
func FromUserDomain(user *entity.User) *UserModel {
	return &UserModel{
		Name:      user.Name,
		Password:  user.PasswordHash,
		CreatedAt: time.Now(),
	}
}

// ToUserDomain maps a persistence model back to a pure domain entity.
func ToUserDomain(m *UserModel) *entity.User {
	return &entity.User{
		ID:           m.ID.Hex(),
		Name:         m.Name,
		PasswordHash: m.Password,
	}
}
