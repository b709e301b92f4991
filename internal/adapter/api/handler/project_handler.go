package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"skillswap/internal/usecase"
	"skillswap/pkg/errors"
	"skillswap/pkg/response"
	"skillswap/pkg/utils"
)

type ProjectHandler struct {
	projectUseCase *usecase.ProjectUseCase
}

func NewProjectHandler(projectUseCase *usecase.ProjectUseCase) *ProjectHandler {
	return &ProjectHandler{
		projectUseCase: projectUseCase,
	}
}

type projectRequest struct {
	Title       string     `json:"title" validate:"required,min=3,max=200"`
	Description string     `json:"description" validate:"required,min=10"`
	Category    string     `json:"category" validate:"required"`
	Skills      []string   `json:"skills" validate:"required,min=1"`
	BudgetMin   float64    `json:"budget_min" validate:"gte=0"`
	BudgetMax   float64    `json:"budget_max" validate:"gte=0"`
	Deadline    *time.Time `json:"deadline"`
	Attachments []string   `json:"attachments"`
}

func (r projectRequest) toInput() usecase.CreateProjectInput {
	return usecase.CreateProjectInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Skills:      r.Skills,
		BudgetMin:   r.BudgetMin,
		BudgetMax:   r.BudgetMax,
		Deadline:    r.Deadline,
		Attachments: r.Attachments,
	}
}

func (h *ProjectHandler) CreateProject(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	project, err := h.projectUseCase.CreateProject(c.Request().Context(), uid, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, project)
}

func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	project, err := h.projectUseCase.UpdateProject(c.Request().Context(), c.Param("id"), uid, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, project)
}

func (h *ProjectHandler) GetProject(c echo.Context) error {
	project, err := h.projectUseCase.GetProjectByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, project)
}

func (h *ProjectHandler) ListProjects(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)
	minBudget, _ := strconv.ParseFloat(c.QueryParam("min_budget"), 64)
	maxBudget, _ := strconv.ParseFloat(c.QueryParam("max_budget"), 64)

	projects, total, err := h.projectUseCase.ListProjects(
		c.Request().Context(),
		c.QueryParam("category"),
		c.QueryParam("skill"),
		c.QueryParam("status"),
		minBudget,
		maxBudget,
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, projects, total, pagination.Page, pagination.PageSize)
}

func (h *ProjectHandler) SearchProjects(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	projects, total, err := h.projectUseCase.SearchProjects(
		c.Request().Context(),
		c.QueryParam("q"),
		c.QueryParam("category"),
		c.QueryParam("skill"),
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, projects, total, pagination.Page, pagination.PageSize)
}

func (h *ProjectHandler) ListMyProjects(c echo.Context) error {
	uid := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	projects, total, err := h.projectUseCase.ListMyProjects(
		c.Request().Context(),
		uid,
		c.QueryParam("status"),
		pagination.Page,
		pagination.PageSize,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, projects, total, pagination.Page, pagination.PageSize)
}

func (h *ProjectHandler) CancelProject(c echo.Context) error {
	uid := c.Get("uid").(string)

	project, err := h.projectUseCase.CancelProject(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, project)
}

func (h *ProjectHandler) AddMilestone(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req struct {
		Title   string     `json:"title" validate:"required,max=200"`
		Amount  float64    `json:"amount" validate:"required,gt=0"`
		DueDate *time.Time `json:"due_date"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	project, err := h.projectUseCase.AddMilestone(c.Request().Context(), c.Param("id"), uid, usecase.MilestoneInput{
		Title:   req.Title,
		Amount:  req.Amount,
		DueDate: req.DueDate,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, project)
}

func (h *ProjectHandler) SubmitMilestone(c echo.Context) error {
	uid := c.Get("uid").(string)

	project, err := h.projectUseCase.SubmitMilestone(c.Request().Context(), c.Param("id"), c.Param("milestoneId"), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, project)
}

func (h *ProjectHandler) ApproveMilestone(c echo.Context) error {
	uid := c.Get("uid").(string)

	project, err := h.projectUseCase.ApproveMilestone(c.Request().Context(), c.Param("id"), c.Param("milestoneId"), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, project)
}

func (h *ProjectHandler) SubmitWork(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req struct {
		Message     string   `json:"message" validate:"omitempty,max=5000"`
		Attachments []string `json:"attachments"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	project, err := h.projectUseCase.SubmitWork(c.Request().Context(), c.Param("id"), uid, usecase.SubmitWorkInput{
		Message:     req.Message,
		Attachments: req.Attachments,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, project)
}

func (h *ProjectHandler) MarkComplete(c echo.Context) error {
	uid := c.Get("uid").(string)

	project, err := h.projectUseCase.MarkComplete(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, project)
}

func (h *ProjectHandler) ClientDashboard(c echo.Context) error {
	uid := c.Get("uid").(string)

	dashboard, err := h.projectUseCase.ClientDashboard(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, dashboard)
}
