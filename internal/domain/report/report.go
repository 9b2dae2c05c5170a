// Package report builds aggregation pipelines for the potion collection.
//
// Caller-supplied report parameters are parsed into closed enum types and
// matched against explicit allow-lists before any pipeline is assembled.
// Only the constants below ever reach a field-path position; raw request
// strings never do.
package report

import (
	"fmt"
	"strings"

	domainerrors "apothecary/internal/domain/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GroupBy is the dimension documents are bucketed by.
type GroupBy string

// Metric is the aggregate computed within each bucket.
type Metric string

// Field is the value field path the metric is computed over.
type Field string

const (
	GroupByVendor     GroupBy = "vendor_id"
	GroupByCategories GroupBy = "categories"

	MetricAvg   Metric = "avg"
	MetricSum   Metric = "sum"
	MetricCount Metric = "count"

	FieldScore    Field = "score"
	FieldPrice    Field = "price"
	FieldStrength Field = "ratings.strength"
	FieldFlavor   Field = "ratings.flavor"
)

var (
	groupBys = []GroupBy{GroupByVendor, GroupByCategories}
	metrics  = []Metric{MetricAvg, MetricSum, MetricCount}
	fields   = []Field{FieldScore, FieldPrice, FieldStrength, FieldFlavor}
)

// ParseGroupBy validates a caller-supplied group dimension.
func ParseGroupBy(s string) (GroupBy, error) {
	for _, g := range groupBys {
		if s == string(g) {
			return g, nil
		}
	}

	return "", domainerrors.ErrInvalidParameter.WithDetails(
		fmt.Sprintf("unknown group type %q; accepted values: %s", s, join(groupBys)))
}

// ParseMetric validates a caller-supplied aggregation metric.
func ParseMetric(s string) (Metric, error) {
	for _, m := range metrics {
		if s == string(m) {
			return m, nil
		}
	}

	return "", domainerrors.ErrInvalidParameter.WithDetails(
		fmt.Sprintf("unknown metric %q; accepted values: %s", s, join(metrics)))
}

// ParseField validates a caller-supplied value field path.
func ParseField(s string) (Field, error) {
	for _, f := range fields {
		if s == string(f) {
			return f, nil
		}
	}

	return "", domainerrors.ErrInvalidParameter.WithDetails(
		fmt.Sprintf("unknown field %q; accepted values: %s", s, join(fields)))
}

// Definition is a validated report request: group dimension, metric and
// value field. Construct it through NewDefinition.
type Definition struct {
	GroupBy GroupBy
	Metric  Metric
	Field   Field
}

// NewDefinition parses and validates the three report parameters.
// The field still participates in the result attribute name when the
// metric is count, even though its values are not read.
func NewDefinition(groupBy, metric, field string) (Definition, error) {
	g, err := ParseGroupBy(groupBy)
	if err != nil {
		return Definition{}, err
	}

	m, err := ParseMetric(metric)
	if err != nil {
		return Definition{}, err
	}

	f, err := ParseField(field)
	if err != nil {
		return Definition{}, err
	}

	return Definition{GroupBy: g, Metric: m, Field: f}, nil
}

// ResultKey is the name of the computed attribute in each result row:
// the field path with dots replaced by underscores, suffixed by the metric.
func (d Definition) ResultKey() string {
	return strings.ReplaceAll(string(d.Field), ".", "_") + "_" + string(d.Metric)
}

// Pipeline assembles the aggregation stages for this definition.
//
// Grouping by categories first unwinds the array so each document
// contributes one row per category value. The projection keeps only the
// group dimension and, for value metrics, the value field. The group
// stage buckets by the dimension and computes the metric under ResultKey.
func (d Definition) Pipeline() mongo.Pipeline {
	var pipeline mongo.Pipeline

	if d.GroupBy == GroupByCategories {
		pipeline = append(pipeline, bson.D{{Key: "$unwind", Value: "$" + string(GroupByCategories)}})
	}

	projection := bson.D{
		{Key: "_id", Value: false},
		{Key: string(d.GroupBy), Value: true},
	}
	if d.Metric != MetricCount {
		projection = append(projection, bson.E{Key: string(d.Field), Value: true})
	}
	pipeline = append(pipeline, bson.D{{Key: "$project", Value: projection}})

	var accumulator bson.D
	switch d.Metric {
	case MetricAvg:
		accumulator = bson.D{{Key: "$avg", Value: "$" + string(d.Field)}}
	case MetricSum:
		accumulator = bson.D{{Key: "$sum", Value: "$" + string(d.Field)}}
	case MetricCount:
		accumulator = bson.D{{Key: "$sum", Value: 1}}
	}

	pipeline = append(pipeline, bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: "$" + string(d.GroupBy)},
		{Key: d.ResultKey(), Value: accumulator},
	}}})

	return pipeline
}

func join[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}

	return strings.Join(parts, ", ")
}
