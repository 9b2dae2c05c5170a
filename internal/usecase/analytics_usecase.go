package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// CategoryCountOutput is the distinct category count report row.
type CategoryCountOutput struct {
	DistinctCategoryCount int `json:"distinctCategoryCount"`
}

// SearchInput carries the raw, unvalidated report parameters as supplied
// by the caller. Validation happens inside the usecase, before any
// pipeline construction.
type SearchInput struct {
	GroupBy string
	Metric  string
	Field   string
}

// AnalyticsUsecase defines the reporting operations over the potion
// collection. All operations are pure reads; an empty collection yields
// empty results, never an error.
type AnalyticsUsecase interface {
	DistinctCategoryCount(ctx context.Context) (*CategoryCountOutput, error)
	AverageScoreByVendor(ctx context.Context) ([]bson.M, error)
	AverageScoreByCategory(ctx context.Context) ([]bson.M, error)
	StrengthFlavorRatio(ctx context.Context) ([]bson.M, error)
	Search(ctx context.Context, input *SearchInput) ([]bson.M, error)
}
