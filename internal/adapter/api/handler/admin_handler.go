package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"skillswap/internal/usecase"
	"skillswap/pkg/errors"
	"skillswap/pkg/response"
	"skillswap/pkg/utils"
)

type AdminHandler struct {
	adminUseCase  *usecase.AdminUseCase
	reviewUseCase *usecase.ReviewUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase, reviewUseCase *usecase.ReviewUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase:  adminUseCase,
		reviewUseCase: reviewUseCase,
	}
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	users, total, err := h.adminUseCase.ListUsers(
		c.Request().Context(),
		c.QueryParam("role"),
		c.QueryParam("status"),
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, users, total, pagination.Page, pagination.PageSize)
}

func (h *AdminHandler) GetUser(c echo.Context) error {
	user, err := h.adminUseCase.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *AdminHandler) SuspendUser(c echo.Context) error {
	var req struct {
		Reason string `json:"reason" validate:"omitempty,max=500"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.adminUseCase.SuspendUser(c.Request().Context(), c.Param("id"), req.Reason)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *AdminHandler) ReactivateUser(c echo.Context) error {
	user, err := h.adminUseCase.ReactivateUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *AdminHandler) RemoveProject(c echo.Context) error {
	var req struct {
		Reason string `json:"reason" validate:"omitempty,max=500"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.adminUseCase.RemoveProject(c.Request().Context(), c.Param("id"), req.Reason); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Project removed"})
}

func (h *AdminHandler) GetPlatformStats(c echo.Context) error {
	stats, err := h.adminUseCase.GetPlatformStats(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, stats)
}

func (h *AdminHandler) GetSignupSeries(c echo.Context) error {
	days, _ := strconv.Atoi(c.QueryParam("days"))

	series, err := h.adminUseCase.SignupSeries(c.Request().Context(), days)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, series)
}

func (h *AdminHandler) GetBidAverages(c echo.Context) error {
	averages, err := h.adminUseCase.GetBidAverages(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, averages)
}

func (h *AdminHandler) GetTopSkills(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	skills, err := h.adminUseCase.TopSkills(c.Request().Context(), limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, skills)
}

func (h *AdminHandler) HideReview(c echo.Context) error {
	review, err := h.reviewUseCase.HideReview(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, review)
}
