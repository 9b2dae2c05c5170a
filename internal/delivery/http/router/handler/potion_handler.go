package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"apothecary/internal/delivery/http/response"
	domainerrors "apothecary/internal/domain/errors"
	"apothecary/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PotionHandler holds dependencies for the potion catalog handlers.
type PotionHandler struct {
	uc     usecase.PotionUsecase
	logger *slog.Logger
}

// NewPotionHandler is the constructor for PotionHandler, injected by Fx.
func NewPotionHandler(uc usecase.PotionUsecase, logger *slog.Logger) *PotionHandler {
	return &PotionHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns every potion in the catalog.
func (h *PotionHandler) List(c echo.Context) error {
	potions, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, potions)
}

// ListNames returns a bare array of potion names.
func (h *PotionHandler) ListNames(c echo.Context) error {
	names, err := h.uc.ListNames(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, names)
}

// ListByVendor returns the potions of the vendor in the path.
func (h *PotionHandler) ListByVendor(c echo.Context) error {
	potions, err := h.uc.ListByVendor(c.Request().Context(), c.Param("vendor_id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, potions)
}

// ListByPriceRange returns potions priced within the inclusive
// [min, max] interval taken from the query string.
func (h *PotionHandler) ListByPriceRange(c echo.Context) error {
	min, err := strconv.ParseFloat(c.QueryParam("min"), 64)
	if err != nil {
		return domainerrors.ErrInvalidParameter.WithDetails("min must be a number")
	}
	max, err := strconv.ParseFloat(c.QueryParam("max"), 64)
	if err != nil {
		return domainerrors.ErrInvalidParameter.WithDetails("max must be a number")
	}

	potions, err := h.uc.ListByPriceRange(c.Request().Context(), min, max)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, potions)
}

// Get returns a single potion by identifier.
func (h *PotionHandler) Get(c echo.Context) error {
	potion, err := h.uc.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, potion)
}

// Create inserts a new potion with caller-supplied fields.
func (h *PotionHandler) Create(c echo.Context) error {
	var input *usecase.PotionInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "invalid potion body")
	}

	potion, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, potion)
}

// Replace fully replaces the potion under the path identifier and returns
// the replaced document, identifier included.
func (h *PotionHandler) Replace(c echo.Context) error {
	var input *usecase.PotionInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "invalid potion body")
	}

	potion, err := h.uc.Replace(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, potion)
}

// Delete removes the potion under the path identifier.
func (h *PotionHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
