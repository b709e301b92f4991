package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"skillswap/internal/usecase"
	"skillswap/pkg/errors"
	"skillswap/pkg/response"
	"skillswap/pkg/utils"
)

type NotificationHandler struct {
	notificationUseCase *usecase.NotificationUseCase
	schedulerUseCase    *usecase.SchedulerUseCase
}

func NewNotificationHandler(notificationUseCase *usecase.NotificationUseCase, schedulerUseCase *usecase.SchedulerUseCase) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
		schedulerUseCase:    schedulerUseCase,
	}
}

func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	uid := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)
	unreadOnly := c.QueryParam("unread") == "true"

	notifications, total, err := h.notificationUseCase.List(c.Request().Context(), uid, unreadOnly, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, notifications, total, pagination.Page, pagination.PageSize)
}

func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	uid := c.Get("uid").(string)

	count, err := h.notificationUseCase.UnreadCount(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]int64{"unread": count})
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.notificationUseCase.MarkRead(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Notification marked as read"})
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.notificationUseCase.MarkAllRead(c.Request().Context(), uid); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "All notifications marked as read"})
}

func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.notificationUseCase.Delete(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Notification deleted"})
}

type templateRequest struct {
	Name     string   `json:"name" validate:"required,min=3,max=100"`
	Subject  string   `json:"subject" validate:"required,max=200"`
	Body     string   `json:"body" validate:"required"`
	Channels []string `json:"channels" validate:"required,min=1,dive,oneof=in_app email sms"`
	Active   *bool    `json:"active"`
}

func (r templateRequest) toInput() usecase.TemplateInput {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return usecase.TemplateInput{
		Name:     r.Name,
		Subject:  r.Subject,
		Body:     r.Body,
		Channels: r.Channels,
		Active:   active,
	}
}

func (h *NotificationHandler) CreateTemplate(c echo.Context) error {
	var req templateRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	template, err := h.notificationUseCase.CreateTemplate(c.Request().Context(), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, template)
}

func (h *NotificationHandler) UpdateTemplate(c echo.Context) error {
	var req templateRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	template, err := h.notificationUseCase.UpdateTemplate(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, template)
}

func (h *NotificationHandler) DeleteTemplate(c echo.Context) error {
	if err := h.notificationUseCase.DeleteTemplate(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Template deleted"})
}

func (h *NotificationHandler) ListTemplates(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	templates, total, err := h.notificationUseCase.ListTemplates(c.Request().Context(), pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, templates, total, pagination.Page, pagination.PageSize)
}

func (h *NotificationHandler) CreateSchedule(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req struct {
		TemplateID   string            `json:"template_id" validate:"required"`
		AudienceRole string            `json:"audience_role" validate:"omitempty,oneof=client freelancer"`
		UserIDs      []string          `json:"user_ids"`
		Params       map[string]string `json:"params"`
		Kind         string            `json:"kind" validate:"required,oneof=once recurring"`
		RunAt        *time.Time        `json:"run_at"`
		CronExpr     string            `json:"cron_expr"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	scheduled, err := h.schedulerUseCase.CreateSchedule(c.Request().Context(), uid, usecase.ScheduleNotificationInput{
		TemplateID:   req.TemplateID,
		AudienceRole: req.AudienceRole,
		UserIDs:      req.UserIDs,
		Params:       req.Params,
		Kind:         req.Kind,
		RunAt:        req.RunAt,
		CronExpr:     req.CronExpr,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, scheduled)
}

func (h *NotificationHandler) ListSchedules(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	schedules, total, err := h.schedulerUseCase.ListSchedules(c.Request().Context(), c.QueryParam("status"), pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, schedules, total, pagination.Page, pagination.PageSize)
}

func (h *NotificationHandler) GetSchedule(c echo.Context) error {
	scheduled, err := h.schedulerUseCase.GetSchedule(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, scheduled)
}

func (h *NotificationHandler) CancelSchedule(c echo.Context) error {
	scheduled, err := h.schedulerUseCase.CancelSchedule(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, scheduled)
}
