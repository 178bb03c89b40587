package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/medagenda/console/internal/core/domain"
	"github.com/medagenda/console/internal/core/ports"
)

// UserHandler proxies user management to the scheduling API. Upstream
// rejections pass through with their own status and message; this layer only
// adds request validation and filter parsing.
type UserHandler struct {
	api ports.SchedulingAPI
}

func NewUserHandler(api ports.SchedulingAPI) *UserHandler {
	return &UserHandler{api: api}
}

// List serves GET /console/users with the same filter surface the remote
// API exposes: repeated roles/specialties, isActive, search, page, limit.
func (h *UserHandler) List(c echo.Context) error {
	filters := ports.UserFilters{
		Search:      c.QueryParam("search"),
		Specialties: c.QueryParams()["specialties"],
	}

	for _, raw := range c.QueryParams()["roles"] {
		role := domain.Role(raw)
		if !role.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s: %q", domain.ErrInvalidRole, raw))
		}
		filters.Roles = append(filters.Roles, role)
	}

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

	page, err := h.api.ListUsers(c.Request().Context(), filters)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.api.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.api.CreateUser(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.api.UpdateUser(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c echo.Context) error {
	res, err := h.api.DeleteUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

func (h *UserHandler) Stats(c echo.Context) error {
	stats, err := h.api.UserStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *UserHandler) CheckEmail(c echo.Context) error {
	var req checkEmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	res, err := h.api.CheckEmail(c.Request().Context(), req.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

func (h *UserHandler) DoctorsBySpecialty(c echo.Context) error {
	page, err := intQueryParam(c, "page")
	if err != nil {
		return err
	}
	limit, err := intQueryParam(c, "limit")
	if err != nil {
		return err
	}

	res, err := h.api.DoctorsBySpecialty(c.Request().Context(), c.Param("specialtyId"), page, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// intQueryParam parses an optional positive integer query parameter;
// absent yields zero, which downstream treats as "not set".
func intQueryParam(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("%s must be a positive integer", name))
	}
	return n, nil
}
