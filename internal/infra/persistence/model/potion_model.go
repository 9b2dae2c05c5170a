// Package model contains the persistence representations of domain
// entities, decorated with bson tags for the document store.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"apothecary/internal/domain/entity"
)

// PotionModel is the stored shape of a potion document.
type PotionModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Price       float64            `bson:"price"`
	Score       float64            `bson:"score"`
	Ingredients []any              `bson:"ingredients"`
	Ratings     RatingsModel       `bson:"ratings"`
	TryDate     *time.Time         `bson:"tryDate,omitempty"`
	Categories  []string           `bson:"categories"`
	VendorID    string             `bson:"vendor_id"`
}

// RatingsModel is the embedded ratings object of a potion document.
type RatingsModel struct {
	Strength float64 `bson:"strength"`
	Flavor   float64 `bson:"flavor"`
}

// FromPotionDomain maps a pure domain entity to its persistence model.
// An unset entity ID maps to the zero ObjectID so the store assigns one.
func FromPotionDomain(potion *entity.Potion) (*PotionModel, error) {
	m := &PotionModel{
		Name:        potion.Name,
		Price:       potion.Price,
		Score:       potion.Score,
		Ingredients: potion.Ingredients,
		Ratings: RatingsModel{
			Strength: potion.Ratings.Strength,
			Flavor:   potion.Ratings.Flavor,
		},
		TryDate:    potion.TryDate,
		Categories: potion.Categories,
		VendorID:   potion.VendorID,
	}

	if potion.ID != "" {
		oid, err := primitive.ObjectIDFromHex(potion.ID)
		if err != nil {
			return nil, err
		}
		m.ID = oid
	}

	return m, nil
}

// ToPotionDomain maps a persistence model back to a pure domain entity.
func ToPotionDomain(m *PotionModel) *entity.Potion {
	return &entity.Potion{
		ID:          m.ID.Hex(),
		Name:        m.Name,
		Price:       m.Price,
		Score:       m.Score,
		Ingredients: m.Ingredients,
		Ratings: entity.Ratings{
			Strength: m.Ratings.Strength,
			Flavor:   m.Ratings.Flavor,
		},
		TryDate:    m.TryDate,
		Categories: m.Categories,
		VendorID:   m.VendorID,
	}
}
