package handler

import (
	"github.com/labstack/echo/v4"

	"skillswap/internal/usecase"
	"skillswap/pkg/errors"
	"skillswap/pkg/response"
	"skillswap/pkg/utils"
)

type FreelancerHandler struct {
	freelancerUseCase *usecase.FreelancerUseCase
}

func NewFreelancerHandler(freelancerUseCase *usecase.FreelancerUseCase) *FreelancerHandler {
	return &FreelancerHandler{
		freelancerUseCase: freelancerUseCase,
	}
}

func (h *FreelancerHandler) GetMyProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	profile, err := h.freelancerUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

func (h *FreelancerHandler) UpdateProfile(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req struct {
		Title        string   `json:"title" validate:"omitempty,max=120"`
		Skills       []string `json:"skills"`
		HourlyRate   float64  `json:"hourly_rate" validate:"omitempty,gt=0"`
		Availability string   `json:"availability" validate:"omitempty,oneof=available busy unavailable"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	profile, err := h.freelancerUseCase.UpdateProfile(c.Request().Context(), uid, usecase.UpdateFreelancerProfileInput{
		Title:        req.Title,
		Skills:       req.Skills,
		HourlyRate:   req.HourlyRate,
		Availability: req.Availability,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

func (h *FreelancerHandler) AddPortfolioItem(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req struct {
		Title       string `json:"title" validate:"required,max=120"`
		Description string `json:"description" validate:"omitempty,max=2000"`
		URL         string `json:"url" validate:"omitempty,url"`
		ImageURL    string `json:"image_url" validate:"omitempty,url"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	profile, err := h.freelancerUseCase.AddPortfolioItem(c.Request().Context(), uid, usecase.PortfolioItemInput{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, profile)
}

func (h *FreelancerHandler) RemovePortfolioItem(c echo.Context) error {
	uid := c.Get("uid").(string)

	profile, err := h.freelancerUseCase.RemovePortfolioItem(c.Request().Context(), uid, c.Param("itemId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

func (h *FreelancerHandler) Search(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	profiles, total, err := h.freelancerUseCase.Search(
		c.Request().Context(),
		c.QueryParam("skill"),
		c.QueryParam("availability"),
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, profiles, total, pagination.Page, pagination.PageSize)
}

func (h *FreelancerHandler) Dashboard(c echo.Context) error {
	uid := c.Get("uid").(string)

	dashboard, err := h.freelancerUseCase.Dashboard(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, dashboard)
}
