package impl

import (
	"context"
	"log/slog"

	deliverycontext "apothecary/internal/delivery/context"
	"apothecary/internal/domain/report"
	"apothecary/internal/domain/repository"
	"apothecary/internal/usecase"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/fx"
)

// analyticsService implements the AnalyticsUsecase interface. Every
// operation delegates pipeline construction to the report package and
// runs it read-only against the potion collection.
type analyticsService struct {
	potionRepo repository.PotionRepository
	logger     *slog.Logger
}

// AnalyticsServiceParams holds dependencies for analyticsService, injected by Fx.
type AnalyticsServiceParams struct {
	fx.In

	PotionRepo repository.PotionRepository
	Logger     *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		potionRepo: params.PotionRepo,
		logger:     params.Logger,
	}
}

func (srv *analyticsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DistinctCategoryCount counts the distinct values across all category
// arrays. An empty collection produces a zero count, not an error.
func (srv *analyticsService) DistinctCategoryCount(ctx context.Context) (*usecase.CategoryCountOutput, error) {
	rows, err := srv.potionRepo.Aggregate(ctx, report.DistinctCategoryCountPipeline())
	if err != nil {
		return nil, err
	}

	out := &usecase.CategoryCountOutput{}
	if len(rows) > 0 {
		out.DistinctCategoryCount = asInt(rows[0][report.DistinctCategoryCountKey])
	}

	return out, nil
}

func (srv *analyticsService) AverageScoreByVendor(ctx context.Context) ([]bson.M, error) {
	return srv.potionRepo.Aggregate(ctx, report.AverageScoreByVendorPipeline())
}

func (srv *analyticsService) AverageScoreByCategory(ctx context.Context) ([]bson.M, error) {
	return srv.potionRepo.Aggregate(ctx, report.AverageScoreByCategoryPipeline())
}

func (srv *analyticsService) StrengthFlavorRatio(ctx context.Context) ([]bson.M, error) {
	return srv.potionRepo.Aggregate(ctx, report.StrengthFlavorRatioPipeline())
}

// Search validates the three report parameters against their allow-lists
// and runs the assembled pipeline. Invalid parameters are rejected before
// the store is touched.
func (srv *analyticsService) Search(ctx context.Context, input *usecase.SearchInput) ([]bson.M, error) {
	def, err := report.NewDefinition(input.GroupBy, input.Metric, input.Field)
	if err != nil {
		srv.log(ctx).Warn("Rejected report parameters",
			slog.String("groupBy", input.GroupBy),
			slog.String("metric", input.Metric),
			slog.String("field", input.Field))

		return nil, err
	}

	return srv.potionRepo.Aggregate(ctx, def.Pipeline())
}

// asInt normalizes the numeric types the bson decoder may produce for a
// count value.
func asInt(v any) int {
	switch n := v.(type) {
	case int32:
		return int(n)
	case int64:
		return int(n)
	case int:
		return n
	case float64:
		return int(n)
	default:
		return 0
	}
}
