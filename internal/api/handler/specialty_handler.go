package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/medagenda/console/internal/core/ports"
)

// SpecialtyHandler proxies specialty catalog management to the scheduling API.
type SpecialtyHandler struct {
	api ports.SchedulingAPI
}

func NewSpecialtyHandler(api ports.SchedulingAPI) *SpecialtyHandler {
	return &SpecialtyHandler{api: api}
}

func (h *SpecialtyHandler) List(c echo.Context) error {
	filters := ports.SpecialtyFilters{Search: c.QueryParam("search")}

	if raw := c.QueryParam("isActive"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "isActive must be true or false")
		}
		filters.IsActive = &active
	}

	var err error
	if filters.Page, err = intQueryParam(c, "page"); err != nil {
		return err
	}
	if filters.Limit, err = intQueryParam(c, "limit"); err != nil {
		return err
	}

	page, err := h.api.ListSpecialties(c.Request().Context(), filters)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

func (h *SpecialtyHandler) Get(c echo.Context) error {
	specialty, err := h.api.GetSpecialty(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, specialty)
}

func (h *SpecialtyHandler) Create(c echo.Context) error {
	var req createSpecialtyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	specialty, err := h.api.CreateSpecialty(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, specialty)
}

func (h *SpecialtyHandler) Update(c echo.Context) error {
	var req updateSpecialtyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	specialty, err := h.api.UpdateSpecialty(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, specialty)
}

func (h *SpecialtyHandler) Delete(c echo.Context) error {
	res, err := h.api.DeleteSpecialty(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
