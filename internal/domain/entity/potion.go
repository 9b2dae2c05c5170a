// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Potion is the central document of the catalog. The identifier is assigned
// by the store on insert; every other field is caller-supplied and optional.
type Potion struct {
	ID          string     `json:"_id,omitempty"`
	Name        string     `json:"name"`
	Price       float64    `json:"price"`
	Score       float64    `json:"score"`
	Ingredients []any      `json:"ingredients"`
	Ratings     Ratings    `json:"ratings"`
	TryDate     *time.Time `json:"tryDate,omitempty"`
	Categories  []string   `json:"categories"`
	VendorID    string     `json:"vendor_id"`
}

// Ratings holds the two rating axes of a potion.
type Ratings struct {
	Strength float64 `json:"strength"`
	Flavor   float64 `json:"flavor"`
}
