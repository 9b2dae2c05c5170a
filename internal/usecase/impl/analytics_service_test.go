package impl

import (
	"context"
	"testing"

	domainerrors "apothecary/internal/domain/errors"
	"apothecary/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func newAnalyticsService(repo *fakePotionRepo) usecase.AnalyticsUsecase {
	return NewAnalyticsService(AnalyticsServiceParams{
		PotionRepo: repo,
		Logger:     discardLogger(),
	})
}

func TestAnalyticsService_DistinctCategoryCount(t *testing.T) {
	tests := []struct {
		name string
		rows []bson.M
		want int
	}{
		{name: "int32 count", rows: []bson.M{{"distinctCategoryCount": int32(7)}}, want: 7},
		{name: "int64 count", rows: []bson.M{{"distinctCategoryCount": int64(7)}}, want: 7},
		{name: "empty collection yields zero", rows: []bson.M{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakePotionRepo{aggregateRows: tt.rows}

			out, err := newAnalyticsService(repo).DistinctCategoryCount(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.want, out.DistinctCategoryCount)
		})
	}
}

func TestAnalyticsService_AverageScoreByVendor(t *testing.T) {
	repo := &fakePotionRepo{aggregateRows: []bson.M{
		{"_id": "vendor-7", "average": 4.5},
	}}

	rows, err := newAnalyticsService(repo).AverageScoreByVendor(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "vendor-7", rows[0]["_id"])
}

func TestAnalyticsService_Search_ValidParameters(t *testing.T) {
	repo := &fakePotionRepo{aggregateRows: []bson.M{}}

	rows, err := newAnalyticsService(repo).Search(context.Background(), &usecase.SearchInput{
		GroupBy: "categories",
		Metric:  "avg",
		Field:   "ratings.strength",
	})

	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Equal(t, 1, repo.aggregateCalls)
}

func TestAnalyticsService_Search_RejectionSkipsStore(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.SearchInput
	}{
		{name: "unknown group", input: usecase.SearchInput{GroupBy: "price", Metric: "avg", Field: "score"}},
		{name: "unknown metric", input: usecase.SearchInput{GroupBy: "vendor_id", Metric: "median", Field: "score"}},
		{name: "unknown field", input: usecase.SearchInput{GroupBy: "vendor_id", Metric: "avg", Field: "password"}},
		{name: "operator injection", input: usecase.SearchInput{GroupBy: "$ROOT", Metric: "avg", Field: "score"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakePotionRepo{}

			_, err := newAnalyticsService(repo).Search(context.Background(), &tt.input)

			require.ErrorIs(t, err, domainerrors.ErrInvalidParameter)
			assert.Zero(t, repo.aggregateCalls, "store must not be touched")
		})
	}
}
