package handler

import (
	"log/slog"
	"net/http"

	"apothecary/internal/delivery/http/response"
	"apothecary/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Report parameter defaults applied when a query parameter is absent.
// A parameter that is present but unrecognized is still rejected.
const (
	defaultGroupType = "vendor_id"
	defaultMetric    = "avg"
	defaultField     = "score"
)

// AnalyticsHandler holds dependencies for the reporting handlers.
type AnalyticsHandler struct {
	uc     usecase.AnalyticsUsecase
	logger *slog.Logger
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler, injected by Fx.
func NewAnalyticsHandler(uc usecase.AnalyticsUsecase, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		uc:     uc,
		logger: logger,
	}
}

// DistinctCategories returns the count of distinct category values.
func (h *AnalyticsHandler) DistinctCategories(c echo.Context) error {
	output, err := h.uc.DistinctCategoryCount(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, output)
}

// AverageScoreByVendor returns one {_id, average} row per vendor.
func (h *AnalyticsHandler) AverageScoreByVendor(c echo.Context) error {
	rows, err := h.uc.AverageScoreByVendor(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, rows)
}

// AverageScoreByCategory returns one {_id, average} row per category.
func (h *AnalyticsHandler) AverageScoreByCategory(c echo.Context) error {
	rows, err := h.uc.AverageScoreByCategory(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, rows)
}

// StrengthFlavorRatio returns one {name, ratio} row per potion with a
// positive flavor rating.
func (h *AnalyticsHandler) StrengthFlavorRatio(c echo.Context) error {
	rows, err := h.uc.StrengthFlavorRatio(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, rows)
}

// Search runs the parameterized report over groupType, metric and field.
func (h *AnalyticsHandler) Search(c echo.Context) error {
	input := &usecase.SearchInput{
		GroupBy: queryOrDefault(c, "groupType", defaultGroupType),
		Metric:  queryOrDefault(c, "metric", defaultMetric),
		Field:   queryOrDefault(c, "field", defaultField),
	}

	rows, err := h.uc.Search(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, rows)
}

func queryOrDefault(c echo.Context, name, fallback string) string {
	if v := c.QueryParam(name); v != "" {
		return v
	}

	return fallback
}
