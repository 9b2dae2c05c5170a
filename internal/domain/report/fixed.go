package report

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// DistinctCategoryCountKey is the single attribute of the distinct
// category count result row.
const DistinctCategoryCountKey = "distinctCategoryCount"

// DistinctCategoryCountPipeline counts the distinct values across all
// category arrays: unwind, bucket per category, count buckets.
func DistinctCategoryCountPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$categories"}},
		{{Key: "$group", Value: bson.D{{Key: "_id", Value: "$categories"}}}},
		{{Key: "$count", Value: DistinctCategoryCountKey}},
	}
}

// AverageScoreByVendorPipeline produces one row per vendor with the
// arithmetic mean of score over that vendor's documents.
func AverageScoreByVendorPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: false},
			{Key: "score", Value: true},
			{Key: "vendor_id", Value: true},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$vendor_id"},
			{Key: "average", Value: bson.D{{Key: "$avg", Value: "$score"}}},
		}}},
	}
}

// AverageScoreByCategoryPipeline unwinds the category arrays and produces
// one row per category with the mean score of documents carrying it.
func AverageScoreByCategoryPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$unwind", Value: "$categories"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$categories"},
			{Key: "average", Value: bson.D{{Key: "$avg", Value: "$score"}}},
		}}},
	}
}

// StrengthFlavorRatioPipeline computes strength/flavor per potion.
// Documents with a missing or non-positive flavor rating are excluded
// up front so the division can never hit a zero divisor.
func StrengthFlavorRatioPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "ratings.flavor", Value: bson.D{
			{Key: "$exists", Value: true},
			{Key: "$gt", Value: 0},
		}}}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: false},
			{Key: "name", Value: true},
			{Key: "ratio", Value: bson.D{{Key: "$divide", Value: bson.A{"$ratings.strength", "$ratings.flavor"}}}},
		}}},
	}
}
